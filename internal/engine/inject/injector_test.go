package inject_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/scaffold/internal/core/domain"
	"go.trai.ch/scaffold/internal/core/ports/mocks"
	"go.trai.ch/scaffold/internal/engine/inject"
	"go.uber.org/mock/gomock"
)

// recorder returns a Func that records the arguments it was called with.
func recorder(calls *[][]any) inject.Func {
	return func(_ context.Context, args ...any) (any, error) {
		*calls = append(*calls, args)
		return len(args), nil
	}
}

func TestInject_MissingTarget(t *testing.T) {
	ctrl := gomock.NewController(t)
	resolver := mocks.NewMockCapabilityResolver(ctrl)

	injector := inject.New(resolver)

	_, err := injector.Inject("", "sleep")
	require.ErrorIs(t, err, domain.ErrMissingInjectionTarget)

	assert.Panics(t, func() {
		injector.MustInject("", "")
	})
}

func TestInjected_AppendsCapability(t *testing.T) {
	ctrl := gomock.NewController(t)
	resolver := mocks.NewMockCapabilityResolver(ctrl)
	resolver.EXPECT().Resolve(gomock.Any(), "time").Return("time-module", nil)

	dec, err := inject.New(resolver).Inject("time", "")
	require.NoError(t, err)

	var calls [][]any
	out, err := dec.Decorate(recorder(&calls)).Call(context.Background(), 1, "two")
	require.NoError(t, err)

	assert.Equal(t, 3, out)
	require.Len(t, calls, 1)
	assert.Equal(t, []any{1, "two", "time-module"}, calls[0])
}

func TestInjected_NarrowsAttribute(t *testing.T) {
	ctrl := gomock.NewController(t)
	resolver := mocks.NewMockCapabilityResolver(ctrl)
	resolver.EXPECT().Resolve(gomock.Any(), "time").Return("time-module", nil)
	resolver.EXPECT().Narrow("time-module", "sleep").Return("sleep-func", nil)

	dec, err := inject.New(resolver).Inject("time", "sleep")
	require.NoError(t, err)
	assert.Equal(t, domain.InjectionRequest{Target: "time", Attribute: "sleep"}, dec.Request())

	var calls [][]any
	_, err = dec.Decorate(recorder(&calls)).Call(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []any{"sleep-func"}, calls[0])
}

func TestInjected_ResolvesOnEveryCall(t *testing.T) {
	ctrl := gomock.NewController(t)
	resolver := mocks.NewMockCapabilityResolver(ctrl)
	gomock.InOrder(
		resolver.EXPECT().Resolve(gomock.Any(), "clock").Return("first", nil),
		resolver.EXPECT().Resolve(gomock.Any(), "clock").Return("second", nil),
	)

	dec, err := inject.New(resolver).Inject("clock", "")
	require.NoError(t, err)

	var calls [][]any
	fn := dec.Decorate(recorder(&calls))

	_, err = fn.Call(context.Background())
	require.NoError(t, err)
	_, err = fn.Call(context.Background())
	require.NoError(t, err)

	assert.Equal(t, [][]any{{"first"}, {"second"}}, calls)
}

func TestInjected_ResolveFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	resolver := mocks.NewMockCapabilityResolver(ctrl)
	cause := errors.New("no such module")
	resolver.EXPECT().Resolve(gomock.Any(), "urllib").Return(nil, cause)

	dec, err := inject.New(resolver).Inject("urllib", "")
	require.NoError(t, err)

	var calls [][]any
	_, err = dec.Decorate(recorder(&calls)).Call(context.Background(), "arg")

	require.ErrorIs(t, err, domain.ErrResolutionFailed)
	require.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "urllib")
	assert.Empty(t, calls, "wrapped function must not run")

	var resErr *domain.ResolutionError
	require.ErrorAs(t, err, &resErr)
	assert.Equal(t, "urllib", resErr.Request.Target)
}

func TestInjected_NarrowFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	resolver := mocks.NewMockCapabilityResolver(ctrl)
	resolver.EXPECT().Resolve(gomock.Any(), "time").Return("time-module", nil)
	resolver.EXPECT().Narrow("time-module", "warp").Return(nil, domain.ErrAttributeNotFound)

	dec, err := inject.New(resolver).Inject("time", "warp")
	require.NoError(t, err)

	var calls [][]any
	_, err = dec.Decorate(recorder(&calls)).Call(context.Background())

	require.ErrorIs(t, err, domain.ErrResolutionFailed)
	require.ErrorIs(t, err, domain.ErrAttributeNotFound)
	assert.Contains(t, err.Error(), "time")
	assert.Contains(t, err.Error(), "warp")
	assert.Empty(t, calls)
}

func TestInjected_StackingOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	resolver := mocks.NewMockCapabilityResolver(ctrl)
	resolver.EXPECT().Resolve(gomock.Any(), "a").Return("resolved-a", nil)
	resolver.EXPECT().Resolve(gomock.Any(), "b").Return("resolved-b", nil)

	injector := inject.New(resolver)
	decA := injector.MustInject("a", "")
	decB := injector.MustInject("b", "")

	var calls [][]any
	// decA applied over decB: decB is innermost.
	fn := decA.Decorate(decB.Decorate(recorder(&calls)))

	_, err := fn.Call(context.Background(), "x")
	require.NoError(t, err)

	assert.Equal(t, []any{"x", "resolved-b", "resolved-a"}, calls[0])
	assert.Equal(t, []domain.InjectionRequest{{Target: "b"}, {Target: "a"}}, fn.Requests())
}

func TestApply_OrderMatchesDecorate(t *testing.T) {
	ctrl := gomock.NewController(t)
	resolver := mocks.NewMockCapabilityResolver(ctrl)
	resolver.EXPECT().Resolve(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, name string) (domain.Capability, error) {
			return "cap-" + name, nil
		},
	).Times(3)

	injector := inject.New(resolver)

	var calls [][]any
	fn := inject.Apply(recorder(&calls),
		injector.MustInject("first", ""),
		injector.MustInject("second", ""),
		injector.MustInject("third", ""),
	)

	_, err := fn.Call(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []any{"cap-first", "cap-second", "cap-third"}, calls[0])
}

func TestArg(t *testing.T) {
	args := []any{"name", 42}

	s, err := inject.Arg[string](args, 0)
	require.NoError(t, err)
	assert.Equal(t, "name", s)

	_, err = inject.Arg[string](args, 1)
	require.ErrorIs(t, err, domain.ErrInvalidArgument)
	assert.Contains(t, err.Error(), "want string")

	_, err = inject.Arg[int](args, 5)
	require.ErrorIs(t, err, domain.ErrInvalidArgument)
}

type widget struct {
	name  string
	clock string
}

func TestConstruct(t *testing.T) {
	ctrl := gomock.NewController(t)
	resolver := mocks.NewMockCapabilityResolver(ctrl)
	resolver.EXPECT().Resolve(gomock.Any(), "clock").Return("fake-clock", nil)

	newWidget := inject.Func(func(_ context.Context, args ...any) (any, error) {
		name, err := inject.Arg[string](args, 0)
		if err != nil {
			return nil, err
		}
		clock, err := inject.Arg[string](args, 1)
		if err != nil {
			return nil, err
		}
		return &widget{name: name, clock: clock}, nil
	})

	ctor := inject.Apply(newWidget, inject.New(resolver).MustInject("clock", ""))

	w, err := inject.Construct[*widget](context.Background(), ctor, "gear")
	require.NoError(t, err)
	assert.Equal(t, &widget{name: "gear", clock: "fake-clock"}, w)

	_, err = inject.Construct[string](context.Background(), inject.Func(func(context.Context, ...any) (any, error) {
		return 1, nil
	}))
	require.ErrorIs(t, err, domain.ErrInvalidArgument)
}
