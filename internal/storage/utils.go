package storage

import (
	"regexp"
	"strconv"
	"sync/atomic"
	"time"
)

var unsafeFileNameChars = regexp.MustCompile(`[^a-zA-Z0-9._-]`)

// SanitizeFileName keeps only letters, digits, dot, underscore and hyphen.
// Names that end up empty or made only of dots become "file".
func SanitizeFileName(name string) string {
	cleaned := unsafeFileNameChars.ReplaceAllString(name, "")
	if cleaned == "" || cleaned == "." || cleaned == ".." {
		return "file"
	}
	return cleaned
}

// MillisClock hands out strictly increasing Unix millisecond timestamps
type MillisClock struct {
	last atomic.Int64
	now  func() time.Time
}

// NewMillisClock creates a clock backed by time.Now
func NewMillisClock() *MillisClock {
	return &MillisClock{now: time.Now}
}

// Next returns the current Unix milliseconds, or last+1 when time has not advanced
func (c *MillisClock) Next() int64 {
	for {
		last := c.last.Load()
		next := c.now().UnixMilli()
		if next <= last {
			next = last + 1
		}
		if c.last.CompareAndSwap(last, next) {
			return next
		}
	}
}

// GenerateFileName builds the stored name for an upload: "<millis>_<sanitized original>"
func (c *MillisClock) GenerateFileName(original string) string {
	return strconv.FormatInt(c.Next(), 10) + "_" + SanitizeFileName(original)
}

// sizeWriter tracks the total number of bytes written
type sizeWriter struct {
	size int64
}

// Write implements io.Writer
func (sw *sizeWriter) Write(p []byte) (int, error) {
	sw.size += int64(len(p))
	return len(p), nil
}

// Size returns the total number of bytes written
func (sw *sizeWriter) Size() int64 {
	return sw.size
}

// NewSizeWriter creates a new sizeWriter instance
func NewSizeWriter() *sizeWriter {
	return &sizeWriter{}
}
