// Package blobstore reads and writes whole binary files for the cipher
// tools. Files are loaded in one piece: the size is determined up front and
// a transfer that moves fewer bytes than expected is an error, never a
// silent truncation.
package blobstore

import (
	"errors"
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"

	"github.com/provide-io/xorpad/pkg/buffer"
)

var (
	// I/O errors 📦
	ErrEmptyInput = errors.New("❌ input file is empty")
	ErrShortRead  = errors.New("❌ short read")
	ErrShortWrite = errors.New("❌ short write")
)

// Store loads and saves binary blobs.
type Store struct {
	logger hclog.Logger
}

// NewStore creates a store with no logging.
func NewStore() *Store {
	return NewStoreWithLogger(hclog.NewNullLogger())
}

// NewStoreWithLogger creates a store with a custom logger
func NewStoreWithLogger(logger hclog.Logger) *Store {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Store{logger: logger}
}

// ReadFile loads the whole file at path into a fresh buffer. Empty files
// and files whose size cannot be determined are rejected.
func (s *Store) ReadFile(path string) (buffer.Buffer, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("getting size of %s: %w", path, err)
	}
	size := info.Size()
	if size == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrEmptyInput)
	}

	s.logger.Debug("📥 reading blob", "path", path, "size", size)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	if int64(len(data)) != size {
		return nil, fmt.Errorf("%s: %w", path, ErrShortRead)
	}
	return buffer.Buffer(data), nil
}

// WriteFile writes buf to path, replacing any existing file. The write must
// transfer the full buffer.
func (s *Store) WriteFile(path string, buf buffer.Buffer) error {
	s.logger.Debug("📤 writing blob", "path", path, "size", buf.Len())

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	n, err := f.Write(buf)
	if err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if n != buf.Len() {
		f.Close()
		return fmt.Errorf("%s: %w", path, ErrShortWrite)
	}
	return f.Close()
}
