package console

import (
	"context"
	"errors"
	"io"

	"github.com/jonboulle/clockwork"
	"go.trai.ch/scaffold/internal/adapters/registry" //nolint:depguard // capability names
	"go.trai.ch/scaffold/internal/core/domain"
	"go.trai.ch/scaffold/internal/core/ports"
	"go.trai.ch/scaffold/internal/engine/inject"
)

// Factory opens consoles whose clock, streams and filesystem are injected capabilities.
type Factory struct {
	ctor inject.Callable
}

// NewFactory creates a Factory resolving capabilities through injector.
func NewFactory(injector *inject.Injector) *Factory {
	return &Factory{
		ctor: inject.Apply(inject.Func(construct),
			injector.MustInject(registry.ClockCapability, ""),
			injector.MustInject(registry.StreamsCapability, "Stdout"),
			injector.MustInject(registry.StreamsCapability, "Stderr"),
			injector.MustInject(registry.FSCapability, ""),
		),
	}
}

// Open creates a Console for cfg.
func (f *Factory) Open(ctx context.Context, cfg domain.LogConfig) (ports.Console, error) {
	c, err := inject.Construct[*Console](ctx, f.ctor, cfg)
	if err != nil {
		return nil, errors.Join(domain.ErrConsoleOpenFailed, err)
	}
	return c, nil
}

// construct expects the config followed by the injected clock, stdout, stderr and filesystem.
func construct(_ context.Context, args ...any) (any, error) {
	cfg, err := inject.Arg[domain.LogConfig](args, 0)
	if err != nil {
		return nil, err
	}
	clock, err := inject.Arg[clockwork.Clock](args, 1)
	if err != nil {
		return nil, err
	}
	stdout, err := inject.Arg[io.Writer](args, 2)
	if err != nil {
		return nil, err
	}
	stderr, err := inject.Arg[io.Writer](args, 3)
	if err != nil {
		return nil, err
	}
	fsys, err := inject.Arg[ports.FileSystem](args, 4)
	if err != nil {
		return nil, err
	}
	return New(cfg, clock, stdout, stderr, fsys), nil
}
