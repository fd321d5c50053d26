package storage

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// ErrInvalidFileName is returned for names that would escape the storage directory
var ErrInvalidFileName = errors.New("invalid file name")

// localStorage keeps uploaded files in a single directory on the local filesystem
type localStorage struct {
	basePath string
}

// NewLocalStorage creates a new localStorage instance
func NewLocalStorage(basePath string) *localStorage {
	return &localStorage{
		basePath: basePath,
	}
}

// path resolves a stored file name inside the base directory.
// Names containing path separators are rejected.
func (s *localStorage) path(name string) (string, error) {
	if name == "" || name != filepath.Base(name) || name == "." || name == ".." {
		return "", fmt.Errorf("%w %q", ErrInvalidFileName, name)
	}
	return filepath.Join(s.basePath, name), nil
}

// Create creates a new file and returns a WriteCloser.
// An existing file with the same name is never overwritten.
func (s *localStorage) Create(name string) (io.WriteCloser, error) {
	path, err := s.path(name)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(s.basePath, 0755); err != nil {
		return nil, err
	}

	return os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
}

// Open opens a stored file for reading
func (s *localStorage) Open(name string) (io.ReadCloser, error) {
	path, err := s.path(name)
	if err != nil {
		return nil, err
	}
	return os.Open(path)
}

// Delete removes a stored file
func (s *localStorage) Delete(name string) error {
	path, err := s.path(name)
	if err != nil {
		return err
	}
	return os.Remove(path)
}
