// Package watcher follows log files as they grow.
package watcher

import (
	"bytes"
	"context"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"go.trai.ch/scaffold/internal/core/domain"
	"go.trai.ch/scaffold/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

var _ ports.LogFollower = (*Follower)(nil)

const eventChannelBuffer = 16

// Follower implements ports.LogFollower using fsnotify.
type Follower struct {
	// FromStart writes the existing content of the file before following it.
	FromStart bool
}

// NewFollower creates a Follower that starts at the current end of the file.
func NewFollower() *Follower {
	return &Follower{}
}

// Follow writes complete lines appended to path to w until ctx is cancelled.
// When the file is removed, recreated or truncated, reading restarts at offset 0.
func (f *Follower) Follow(ctx context.Context, path string, w io.Writer) error {
	path = filepath.Clean(path)

	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return zerr.Wrap(err, domain.ErrFollowFailed.Error())
	}
	defer func() {
		_ = fsWatcher.Close()
	}()

	// The directory is watched so the file can be removed and created again.
	if err := fsWatcher.Add(filepath.Dir(path)); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrFollowFailed.Error()), "path", path)
	}

	t := &tail{path: path, w: w}
	if !f.FromStart {
		if info, err := os.Stat(path); err == nil {
			t.offset = info.Size()
		}
	}
	if err := t.read(); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrFollowFailed.Error()), "path", path)
	}

	ops := make(chan fsnotify.Op, eventChannelBuffer)
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer close(ops)
		for {
			select {
			case <-ctx.Done():
				return nil
			case event, ok := <-fsWatcher.Events:
				if !ok {
					return nil
				}
				if filepath.Clean(event.Name) != path {
					continue
				}
				select {
				case ops <- event.Op:
				case <-ctx.Done():
					return nil
				}
			case err, ok := <-fsWatcher.Errors:
				if !ok {
					return nil
				}
				return zerr.With(zerr.Wrap(err, domain.ErrFollowFailed.Error()), "path", path)
			}
		}
	})

	g.Go(func() error {
		for op := range ops {
			switch {
			case op.Has(fsnotify.Remove), op.Has(fsnotify.Rename):
				// Content is read once the file is created again.
				t.reset()
				continue
			case op.Has(fsnotify.Create):
				t.reset()
			default:
			}
			if err := t.read(); err != nil {
				return zerr.With(zerr.Wrap(err, domain.ErrFollowFailed.Error()), "path", path)
			}
		}
		return nil
	})

	return g.Wait()
}

// tail tracks the read position in a followed file.
type tail struct {
	path    string
	w       io.Writer
	offset  int64
	pending []byte
}

func (t *tail) reset() {
	t.offset = 0
	t.pending = nil
}

// read writes every complete line past offset to w. A missing file is not an error.
func (t *tail) read() error {
	file, err := os.Open(t.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return err
	}
	defer func() {
		_ = file.Close()
	}()

	info, err := file.Stat()
	if err != nil {
		return err
	}
	if info.Size() < t.offset {
		t.reset()
	}

	if _, err := file.Seek(t.offset, io.SeekStart); err != nil {
		return err
	}
	data, err := io.ReadAll(file)
	if err != nil {
		return err
	}
	t.offset += int64(len(data))

	t.pending = append(t.pending, data...)
	end := bytes.LastIndexByte(t.pending, '\n')
	if end < 0 {
		return nil
	}

	if _, err := t.w.Write(t.pending[:end+1]); err != nil {
		return err
	}
	t.pending = append([]byte(nil), t.pending[end+1:]...)
	return nil
}
