package registry

import (
	"context"
	"io"
	"os"

	"github.com/jonboulle/clockwork"
	"go.trai.ch/scaffold/internal/core/domain"
	"go.trai.ch/scaffold/internal/core/ports"
)

// Names of the capabilities registered by RegisterSystem.
const (
	ClockCapability   = "clock"
	StreamsCapability = "streams"
	FSCapability      = "fs"
)

// Streams are the process output streams.
type Streams struct {
	Stdout io.Writer
	Stderr io.Writer
}

// OSStreams returns the current process streams.
func OSStreams() Streams {
	return Streams{Stdout: os.Stdout, Stderr: os.Stderr}
}

// RegisterSystem registers the clock, the process streams and the filesystem.
// The streams provider is evaluated on every resolve.
func RegisterSystem(reg *Registry, streams func() Streams, fsys ports.FileSystem) error {
	clock := clockwork.NewRealClock()
	if err := reg.Register(ClockCapability, clock); err != nil {
		return err
	}
	if err := reg.Provide(StreamsCapability, func(context.Context) (domain.Capability, error) {
		return streams(), nil
	}); err != nil {
		return err
	}
	return reg.Register(FSCapability, fsys)
}
