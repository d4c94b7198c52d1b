// Package inject supplies resolved capabilities to functions as trailing arguments.
//
// A Decorator is created eagerly from a target name and wraps a function so that,
// every time it is called, the target is resolved through a ports.CapabilityResolver
// and appended to the call's positional arguments:
//
//	clock, err := injector.Inject("clock", "")
//	if err != nil {
//		return err
//	}
//	now := inject.Apply(inject.Func(func(_ context.Context, args ...any) (any, error) {
//		c, err := inject.Arg[clockwork.Clock](args, 0)
//		if err != nil {
//			return nil, err
//		}
//		return c.Now(), nil
//	}), clock)
//	t, err := now.Call(ctx)
package inject

import (
	"context"
	"fmt"
	"reflect"

	"go.trai.ch/scaffold/internal/core/domain"
	"go.trai.ch/scaffold/internal/core/ports"
	"go.trai.ch/zerr"
)

// Callable is anything that can be invoked with positional arguments.
type Callable interface {
	Call(ctx context.Context, args ...any) (any, error)
}

// Func adapts an ordinary function to Callable.
type Func func(ctx context.Context, args ...any) (any, error)

// Call invokes f.
func (f Func) Call(ctx context.Context, args ...any) (any, error) {
	return f(ctx, args...)
}

// Injector creates decorators bound to a capability resolver.
type Injector struct {
	resolver ports.CapabilityResolver
}

// New creates an Injector resolving capabilities through resolver.
func New(resolver ports.CapabilityResolver) *Injector {
	return &Injector{resolver: resolver}
}

// Inject returns a decorator that supplies the capability named target, narrowed to
// attribute when attribute is not empty. A missing target is reported here rather
// than when the decorated function runs.
func (i *Injector) Inject(target, attribute string) (Decorator, error) {
	if target == "" {
		return Decorator{}, domain.ErrMissingInjectionTarget
	}

	return Decorator{
		binding: binding{
			request:  domain.InjectionRequest{Target: target, Attribute: attribute},
			resolver: i.resolver,
		},
	}, nil
}

// MustInject is like Inject but panics when target is empty.
// It is meant for package-level declarations with constant names.
func (i *Injector) MustInject(target, attribute string) Decorator {
	d, err := i.Inject(target, attribute)
	if err != nil {
		panic(err)
	}
	return d
}

type binding struct {
	request  domain.InjectionRequest
	resolver ports.CapabilityResolver
}

func (b binding) resolve(ctx context.Context) (domain.Capability, error) {
	capability, err := b.resolver.Resolve(ctx, b.request.Target)
	if err != nil {
		return nil, &domain.ResolutionError{Request: b.request, Err: err}
	}

	if !b.request.Narrowed() {
		return capability, nil
	}

	member, err := b.resolver.Narrow(capability, b.request.Attribute)
	if err != nil {
		return nil, &domain.ResolutionError{Request: b.request, Err: err}
	}
	return member, nil
}

// Decorator wraps functions so they receive one resolved capability.
type Decorator struct {
	binding binding
}

// Request returns the injection request of the decorator.
func (d Decorator) Request() domain.InjectionRequest {
	return d.binding.request
}

// Decorate wraps c. Decorating an already injected function stacks onto it: the
// capabilities are appended in the order the decorators were applied, innermost first.
func (d Decorator) Decorate(c Callable) *Injected {
	if inner, ok := c.(*Injected); ok {
		bindings := make([]binding, 0, len(inner.bindings)+1)
		bindings = append(bindings, inner.bindings...)
		bindings = append(bindings, d.binding)
		return &Injected{target: inner.target, bindings: bindings}
	}

	return &Injected{target: c, bindings: []binding{d.binding}}
}

// Apply decorates c with every decorator in order, so decorators[0] is the innermost.
func Apply(c Callable, decorators ...Decorator) Callable {
	for _, d := range decorators {
		c = d.Decorate(c)
	}
	return c
}

// Injected is a function decorated with one or more capability injections.
type Injected struct {
	target   Callable
	bindings []binding
}

// Requests returns the injection requests in the order their capabilities are appended.
func (in *Injected) Requests() []domain.InjectionRequest {
	requests := make([]domain.InjectionRequest, len(in.bindings))
	for i, b := range in.bindings {
		requests[i] = b.request
	}
	return requests
}

// Call resolves every injected capability and calls the wrapped function with args
// followed by the capabilities. The wrapped function is not called when any
// resolution fails.
func (in *Injected) Call(ctx context.Context, args ...any) (any, error) {
	full := make([]any, 0, len(args)+len(in.bindings))
	full = append(full, args...)

	for _, b := range in.bindings {
		capability, err := b.resolve(ctx)
		if err != nil {
			return nil, err
		}
		full = append(full, capability)
	}

	return in.target.Call(ctx, full...)
}

// Arg returns args[i] as a T.
func Arg[T any](args []any, i int) (T, error) {
	var zero T
	if i < 0 || i >= len(args) {
		return zero, zerr.With(
			zerr.Wrap(domain.ErrInvalidArgument, fmt.Sprintf("missing argument %d", i)),
			"count", len(args),
		)
	}

	v, ok := args[i].(T)
	if !ok {
		return zero, zerr.With(
			zerr.Wrap(domain.ErrInvalidArgument, fmt.Sprintf("argument %d is %T, want %s", i, args[i], reflect.TypeFor[T]())),
			"index", i,
		)
	}
	return v, nil
}

// Construct calls c and returns its result as a T. It is used for decorated constructors.
func Construct[T any](ctx context.Context, c Callable, args ...any) (T, error) {
	var zero T
	out, err := c.Call(ctx, args...)
	if err != nil {
		return zero, err
	}

	v, ok := out.(T)
	if !ok {
		return zero, zerr.Wrap(domain.ErrInvalidArgument, fmt.Sprintf("constructor returned %T, want %s", out, reflect.TypeFor[T]()))
	}
	return v, nil
}
