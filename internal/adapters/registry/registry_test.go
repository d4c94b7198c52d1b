package registry_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/scaffold/internal/adapters/registry"
	"go.trai.ch/scaffold/internal/core/domain"
	"go.trai.ch/scaffold/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

type greeter struct {
	Name   string
	hidden string
}

func (g *greeter) Greet() string { return "hello " + g.Name }

type namespace map[string]domain.Capability

func (n namespace) Member(name string) (domain.Capability, bool) {
	c, ok := n[name]
	return c, ok
}

func TestRegistry_Resolve(t *testing.T) {
	reg := registry.New()
	require.NoError(t, reg.Register("answer", 42))

	got, err := reg.Resolve(context.Background(), "answer")
	require.NoError(t, err)
	assert.Equal(t, 42, got)

	_, err = reg.Resolve(context.Background(), "question")
	require.ErrorIs(t, err, domain.ErrCapabilityNotFound)
	assert.Contains(t, err.Error(), "question")
}

func TestRegistry_ProviderRunsOnEveryResolve(t *testing.T) {
	reg := registry.New()
	calls := 0
	require.NoError(t, reg.Provide("counter", func(context.Context) (domain.Capability, error) {
		calls++
		return calls, nil
	}))

	first, err := reg.Resolve(context.Background(), "counter")
	require.NoError(t, err)
	second, err := reg.Resolve(context.Background(), "counter")
	require.NoError(t, err)

	assert.Equal(t, 1, first)
	assert.Equal(t, 2, second)
}

func TestRegistry_ProviderError(t *testing.T) {
	reg := registry.New()
	boom := errors.New("boom")
	require.NoError(t, reg.Provide("broken", func(context.Context) (domain.Capability, error) {
		return nil, boom
	}))

	_, err := reg.Resolve(context.Background(), "broken")
	require.ErrorIs(t, err, boom)
}

func TestRegistry_Duplicate(t *testing.T) {
	reg := registry.New()
	require.NoError(t, reg.Register("clock", 1))

	err := reg.Register("clock", 2)
	require.ErrorIs(t, err, domain.ErrDuplicateCapability)
	assert.Equal(t, []string{"clock"}, reg.Names())
}

func TestRegistry_Narrow(t *testing.T) {
	reg := registry.New()
	g := &greeter{Name: "ada", hidden: "x"}

	tests := []struct {
		name       string
		capability domain.Capability
		attribute  string
		check      func(t *testing.T, got domain.Capability)
	}{
		{
			name:       "namespace",
			capability: namespace{"sleep": "zzz"},
			attribute:  "sleep",
			check: func(t *testing.T, got domain.Capability) {
				t.Helper()
				assert.Equal(t, "zzz", got)
			},
		},
		{
			name:       "map",
			capability: map[string]int{"port": 8080},
			attribute:  "port",
			check: func(t *testing.T, got domain.Capability) {
				t.Helper()
				assert.Equal(t, 8080, got)
			},
		},
		{
			name:       "map case-insensitive",
			capability: map[string]int{"Port": 8080},
			attribute:  "port",
			check: func(t *testing.T, got domain.Capability) {
				t.Helper()
				assert.Equal(t, 8080, got)
			},
		},
		{
			name:       "map exact key first",
			capability: map[string]int{"PORT": 1, "port": 2},
			attribute:  "port",
			check: func(t *testing.T, got domain.Capability) {
				t.Helper()
				assert.Equal(t, 2, got)
			},
		},
		{
			name:       "field",
			capability: g,
			attribute:  "Name",
			check: func(t *testing.T, got domain.Capability) {
				t.Helper()
				assert.Equal(t, "ada", got)
			},
		},
		{
			name:       "field case-insensitive",
			capability: *g,
			attribute:  "name",
			check: func(t *testing.T, got domain.Capability) {
				t.Helper()
				assert.Equal(t, "ada", got)
			},
		},
		{
			name:       "method",
			capability: g,
			attribute:  "greet",
			check: func(t *testing.T, got domain.Capability) {
				t.Helper()
				fn, ok := got.(func() string)
				require.True(t, ok)
				assert.Equal(t, "hello ada", fn())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := reg.Narrow(tt.capability, tt.attribute)
			require.NoError(t, err)
			tt.check(t, got)
		})
	}
}

func TestRegistry_Narrow_NotFound(t *testing.T) {
	reg := registry.New()

	for name, c := range map[string]domain.Capability{
		"nil":        nil,
		"namespace":  namespace{},
		"map":        map[string]int{},
		"unexported": &greeter{},
		"scalar":     7,
		"nil ptr":    (*greeter)(nil),
	} {
		t.Run(name, func(t *testing.T) {
			attr := "hidden"
			_, err := reg.Narrow(c, attr)
			require.ErrorIs(t, err, domain.ErrAttributeNotFound)
			assert.Contains(t, err.Error(), attr)
		})
	}
}

func TestRegisterSystem(t *testing.T) {
	ctrl := gomock.NewController(t)
	fsys := mocks.NewMockFileSystem(ctrl)

	var stdout, stderr bytes.Buffer
	reg := registry.New()
	require.NoError(t, registry.RegisterSystem(reg, func() registry.Streams {
		return registry.Streams{Stdout: &stdout, Stderr: &stderr}
	}, fsys))

	assert.Equal(t, []string{"clock", "fs", "streams"}, reg.Names())

	clock, err := reg.Resolve(context.Background(), registry.ClockCapability)
	require.NoError(t, err)
	assert.Implements(t, (*clockwork.Clock)(nil), clock)

	streams, err := reg.Resolve(context.Background(), registry.StreamsCapability)
	require.NoError(t, err)
	out, err := reg.Narrow(streams, "Stdout")
	require.NoError(t, err)
	assert.Same(t, &stdout, out)

	got, err := reg.Resolve(context.Background(), registry.FSCapability)
	require.NoError(t, err)
	assert.Same(t, fsys, got)

	require.ErrorIs(t, registry.RegisterSystem(reg, registry.OSStreams, fsys), domain.ErrDuplicateCapability)
}
