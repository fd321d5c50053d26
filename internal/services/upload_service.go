package services

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"strings"

	"github.com/coursehub/backend/internal/storage"
	"github.com/coursehub/backend/libs/apperrors"
	"go.uber.org/zap"
)

// Storage defines the interface for file storage operations
type Storage interface {
	// Create creates a new file and returns a WriteCloser
	Create(name string) (io.WriteCloser, error)

	// Open opens a stored file for reading
	Open(name string) (io.ReadCloser, error)

	// Delete removes a file
	Delete(name string) error
}

// FileNamer generates unique stored file names
type FileNamer interface {
	GenerateFileName(original string) string
}

// UploadService stores uploaded files and returns their public URL
type UploadService struct {
	storage Storage
	namer   FileNamer
	baseURL string
	logger  *zap.Logger
}

// NewUploadService creates a new upload service.
// baseURL is the public path prefix the stored files are served under.
func NewUploadService(storage Storage, namer FileNamer, baseURL string, logger *zap.Logger) *UploadService {
	return &UploadService{
		storage: storage,
		namer:   namer,
		baseURL: strings.TrimRight(baseURL, "/"),
		logger:  logger,
	}
}

// Upload writes the file under a timestamp-prefixed sanitized name and returns its URL
func (s *UploadService) Upload(ctx context.Context, reader io.Reader, originalName string) (string, error) {
	name := s.namer.GenerateFileName(originalName)

	writeCloser, err := s.storage.Create(name)
	if err != nil {
		return "", apperrors.Internal("failed to create file", err)
	}

	sizeWriter := storage.NewSizeWriter()
	_, err = io.Copy(writeCloser, io.TeeReader(reader, sizeWriter))
	if closeErr := writeCloser.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		// Cleanup: delete the partial file
		if delErr := s.storage.Delete(name); delErr != nil {
			s.logger.Warn("failed to delete partial upload", zap.String("file", name), zap.Error(delErr))
		}
		return "", apperrors.Internal("failed to write file", err)
	}

	s.logger.Info("file uploaded",
		zap.String("file", name),
		zap.Int64("size", sizeWriter.Size()),
	)

	return s.baseURL + "/" + name, nil
}

// Open returns the content of a stored file.
// Unknown or malformed names are reported as not found.
func (s *UploadService) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	file, err := s.storage.Open(name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) || errors.Is(err, storage.ErrInvalidFileName) {
			return nil, apperrors.NotFound("file not found")
		}
		return nil, apperrors.Internal("failed to open file", err)
	}
	return file, nil
}
