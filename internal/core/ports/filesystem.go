package ports

import (
	"io"
	"io/fs"
)

// FileSystem abstracts the filesystem operations used by the toolkit.
//
//go:generate mockgen -source=filesystem.go -destination=mocks/mock_filesystem.go -package=mocks
type FileSystem interface {
	// Stat returns file info for the given path.
	Stat(path string) (fs.FileInfo, error)
	// ReadFile reads the entire file at path.
	ReadFile(path string) ([]byte, error)
	// Glob returns the files matching a doublestar pattern relative to root.
	Glob(root, pattern string) ([]string, error)
	// Touch creates an empty file, and its parent directories, if it does not exist.
	Touch(path string) error
	// OpenAppend opens path for appending, creating it if needed.
	OpenAppend(path string) (io.WriteCloser, error)
	// Remove deletes the file at path.
	Remove(path string) error
}
