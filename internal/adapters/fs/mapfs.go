package fs

import (
	"bytes"
	"io"
	iofs "io/fs"
	"path/filepath"
	"strings"
	"sync"
	"testing/fstest"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"go.trai.ch/scaffold/internal/core/domain"
)

// MapFSAdapter adapts fstest.MapFS to ports.FileSystem for testing.
// Writes go to the map, so it can stand in for a project tree end to end.
type MapFSAdapter struct {
	mu   sync.Mutex
	FS   fstest.MapFS
	Root string // simulated root path
}

// NewMapFSAdapter creates a new MapFSAdapter with the given root path and filesystem.
func NewMapFSAdapter(root string, fsys fstest.MapFS) *MapFSAdapter {
	if fsys == nil {
		fsys = fstest.MapFS{}
	}
	return &MapFSAdapter{
		FS:   fsys,
		Root: root,
	}
}

// Stat returns file info for the given path.
func (m *MapFSAdapter) Stat(path string) (iofs.FileInfo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return iofs.Stat(m.FS, m.toRelPath(path))
}

// ReadFile reads the entire file at path.
func (m *MapFSAdapter) ReadFile(path string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return iofs.ReadFile(m.FS, m.toRelPath(path))
}

// Glob returns the files under root matching pattern, as absolute paths.
func (m *MapFSAdapter) Glob(root, pattern string) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	rel := m.toRelPath(root)
	if rel == "" {
		rel = "."
	}
	sub, err := iofs.Sub(m.FS, rel)
	if err != nil {
		return nil, err
	}

	matches, err := doublestar.Glob(sub, filepath.ToSlash(pattern), doublestar.WithFilesOnly())
	if err != nil {
		return nil, err
	}
	for i, match := range matches {
		matches[i] = filepath.Join(root, filepath.FromSlash(match))
	}
	return matches, nil
}

// Touch creates an empty file if it does not exist.
func (m *MapFSAdapter) Touch(path string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	rel := m.toRelPath(path)
	if f, ok := m.FS[rel]; ok {
		if f.Mode.IsDir() {
			return &iofs.PathError{Op: "touch", Path: path, Err: iofs.ErrExist}
		}
		return nil
	}
	m.FS[rel] = &fstest.MapFile{Mode: domain.FilePerm, ModTime: time.Now()}
	return nil
}

// OpenAppend returns a writer appending to the file at path, creating it if needed.
func (m *MapFSAdapter) OpenAppend(path string) (io.WriteCloser, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	rel := m.toRelPath(path)
	if f, ok := m.FS[rel]; ok && f.Mode.IsDir() {
		return nil, &iofs.PathError{Op: "open", Path: path, Err: iofs.ErrInvalid}
	}
	return &mapAppender{fs: m, rel: rel}, nil
}

// Remove deletes the file at path. A missing file is not an error.
func (m *MapFSAdapter) Remove(path string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.FS, m.toRelPath(path))
	return nil
}

// toRelPath converts an absolute path to a path within the map.
// Paths outside root are returned unchanged, so lookups fail with not-exist errors.
func (m *MapFSAdapter) toRelPath(absPath string) string {
	if !filepath.IsAbs(absPath) {
		return filepath.ToSlash(absPath)
	}
	if m.Root != "/" && absPath != m.Root && !strings.HasPrefix(absPath, m.Root+string(filepath.Separator)) {
		return absPath
	}
	rel := strings.TrimPrefix(absPath, m.Root)
	rel = strings.TrimPrefix(rel, string(filepath.Separator))
	return filepath.ToSlash(rel)
}

type mapAppender struct {
	fs  *MapFSAdapter
	rel string
	buf bytes.Buffer
}

func (a *mapAppender) Write(p []byte) (int, error) {
	return a.buf.Write(p)
}

func (a *mapAppender) Close() error {
	a.fs.mu.Lock()
	defer a.fs.mu.Unlock()

	f, ok := a.fs.FS[a.rel]
	if !ok {
		f = &fstest.MapFile{Mode: domain.FilePerm}
		a.fs.FS[a.rel] = f
	}
	f.Data = append(f.Data, a.buf.Bytes()...)
	f.ModTime = time.Now()
	return nil
}
