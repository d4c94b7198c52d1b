// Package fs provides filesystem adapters for the toolkit.
package fs

import (
	"errors"
	"io"
	iofs "io/fs"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"go.trai.ch/scaffold/internal/core/domain"
)

// OSFS implements ports.FileSystem on the host filesystem.
type OSFS struct{}

// NewOSFS creates a new OSFS instance.
func NewOSFS() *OSFS {
	return &OSFS{}
}

// Stat returns file info for the given path.
func (o *OSFS) Stat(path string) (iofs.FileInfo, error) {
	return os.Stat(path)
}

// ReadFile reads the entire file at path.
func (o *OSFS) ReadFile(path string) ([]byte, error) {
	// #nosec G304 -- path comes from project configuration
	return os.ReadFile(path)
}

// Glob returns the regular files under root matching pattern, as absolute paths.
func (o *OSFS) Glob(root, pattern string) ([]string, error) {
	matches, err := doublestar.Glob(os.DirFS(root), filepath.ToSlash(pattern), doublestar.WithFilesOnly())
	if err != nil {
		return nil, err
	}
	for i, m := range matches {
		matches[i] = filepath.Join(root, filepath.FromSlash(m))
	}
	return matches, nil
}

// Touch creates an empty file, and its parent directories, if it does not exist.
func (o *OSFS) Touch(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), domain.DirPerm); err != nil {
		return err
	}
	// #nosec G304 -- path comes from project configuration
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY, domain.FilePerm)
	if err != nil {
		return err
	}
	return f.Close()
}

// OpenAppend opens path for appending, creating it if needed.
func (o *OSFS) OpenAppend(path string) (io.WriteCloser, error) {
	// #nosec G304 -- path comes from project configuration
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, domain.FilePerm)
}

// Remove deletes the file at path. A missing file is not an error.
func (o *OSFS) Remove(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, iofs.ErrNotExist) {
		return err
	}
	return nil
}
