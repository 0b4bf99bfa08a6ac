// Package persistence owns the date file on disk for the lifetime of the process.
package persistence

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/ASHISH26940/birthdays/internal/store"
)

// ErrAlreadyPersisted is returned when Persist is called a second time.
var ErrAlreadyPersisted = errors.New("date file already written")

// DateFile is the handle on the persisted date file.
// It is read once at startup and written once at shutdown.
type DateFile struct {
	file      *os.File
	path      string
	truncate  bool
	persisted bool
}

// Option configures a DateFile.
type Option func(*DateFile)

// WithTruncate controls whether Persist truncates the file before writing.
// When false, bytes beyond the end of the new content are left in place.
func WithTruncate(truncate bool) Option {
	return func(f *DateFile) {
		f.truncate = truncate
	}
}

// Open opens the date file for reading and writing, creating it if it does not exist.
func Open(path string, opts ...Option) (*DateFile, error) {
	file, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open date file %s: %w", path, err)
	}

	f := &DateFile{
		file:     file,
		path:     path,
		truncate: true,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f, nil
}

// Path returns the file's path.
func (f *DateFile) Path() string {
	return f.path
}

// ReadAll returns the whole content of the file.
func (f *DateFile) ReadAll() (string, error) {
	if _, err := f.file.Seek(0, io.SeekStart); err != nil {
		return "", err
	}
	data, err := io.ReadAll(f.file)
	if err != nil {
		return "", fmt.Errorf("failed to read date file %s: %w", f.path, err)
	}
	return string(data), nil
}

// Persist writes s to the file, starting at offset 0. It may only succeed once.
func (f *DateFile) Persist(s *store.Store) error {
	if f.persisted {
		return ErrAlreadyPersisted
	}

	if f.truncate {
		if err := f.file.Truncate(0); err != nil {
			return fmt.Errorf("failed to truncate date file %s: %w", f.path, err)
		}
	}
	if _, err := f.file.Seek(0, io.SeekStart); err != nil {
		return err
	}
	if err := s.Save(f.file); err != nil {
		return fmt.Errorf("failed to save date file %s: %w", f.path, err)
	}
	f.persisted = true
	return f.file.Sync()
}

// Close releases the file handle.
func (f *DateFile) Close() error {
	return f.file.Close()
}
