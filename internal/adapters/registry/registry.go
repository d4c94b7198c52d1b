// Package registry implements a named capability store used by the injector.
package registry

import (
	"context"
	"reflect"
	"sort"
	"strings"
	"sync"

	"go.trai.ch/scaffold/internal/core/domain"
	"go.trai.ch/scaffold/internal/core/ports"
	"go.trai.ch/zerr"
)

// Provider produces a capability. It runs every time the capability is resolved.
type Provider func(ctx context.Context) (domain.Capability, error)

// Registry implements ports.CapabilityResolver over a set of named providers.
type Registry struct {
	mu        sync.RWMutex
	providers map[string]Provider
}

// New creates an empty Registry.
func New() *Registry {
	return &Registry{providers: make(map[string]Provider)}
}

// Provide registers a provider under name.
func (r *Registry) Provide(name string, p Provider) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.providers[name]; ok {
		return zerr.With(zerr.Wrap(domain.ErrDuplicateCapability, "capability "+name+" already registered"), "capability", name)
	}
	r.providers[name] = p
	return nil
}

// Register registers a fixed value under name.
func (r *Registry) Register(name string, value domain.Capability) error {
	return r.Provide(name, func(context.Context) (domain.Capability, error) {
		return value, nil
	})
}

// Names returns the registered capability names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.providers))
	for name := range r.providers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Resolve runs the provider registered under name.
func (r *Registry) Resolve(ctx context.Context, name string) (domain.Capability, error) {
	r.mu.RLock()
	p, ok := r.providers[name]
	r.mu.RUnlock()

	if !ok {
		return nil, zerr.With(zerr.Wrap(domain.ErrCapabilityNotFound, "no capability named "+name), "capability", name)
	}
	return p(ctx)
}

// Narrow returns the member of capability called attribute. Namespaces are asked
// directly; otherwise string-keyed maps, exported struct fields and methods are
// looked up, falling back to a case-insensitive match.
func (r *Registry) Narrow(capability domain.Capability, attribute string) (domain.Capability, error) {
	if ns, ok := capability.(ports.Namespace); ok {
		if member, found := ns.Member(attribute); found {
			return member, nil
		}
		return nil, attributeNotFound(capability, attribute)
	}

	if capability == nil {
		return nil, attributeNotFound(capability, attribute)
	}

	v := reflect.ValueOf(capability)

	if m, ok := lookupMethod(v, attribute); ok {
		return m.Interface(), nil
	}

	elem := v
	for elem.Kind() == reflect.Pointer || elem.Kind() == reflect.Interface {
		if elem.IsNil() {
			return nil, attributeNotFound(capability, attribute)
		}
		elem = elem.Elem()
	}

	switch elem.Kind() {
	case reflect.Map:
		if elem.Type().Key().Kind() != reflect.String {
			break
		}
		if member, ok := lookupKey(elem, attribute); ok {
			return member.Interface(), nil
		}
	case reflect.Struct:
		if f, ok := lookupField(elem, attribute); ok {
			return f.Interface(), nil
		}
	default:
	}

	return nil, attributeNotFound(capability, attribute)
}

func lookupMethod(v reflect.Value, name string) (reflect.Value, bool) {
	if m := v.MethodByName(name); m.IsValid() {
		return m, true
	}
	t := v.Type()
	for i := range t.NumMethod() {
		if strings.EqualFold(t.Method(i).Name, name) {
			return v.Method(i), true
		}
	}
	return reflect.Value{}, false
}

func lookupKey(v reflect.Value, name string) (reflect.Value, bool) {
	if member := v.MapIndex(reflect.ValueOf(name).Convert(v.Type().Key())); member.IsValid() {
		return member, true
	}
	keys := v.MapKeys()
	sort.Slice(keys, func(i, j int) bool { return keys[i].String() < keys[j].String() })
	for _, k := range keys {
		if strings.EqualFold(k.String(), name) {
			return v.MapIndex(k), true
		}
	}
	return reflect.Value{}, false
}

func lookupField(v reflect.Value, name string) (reflect.Value, bool) {
	t := v.Type()
	if sf, ok := t.FieldByName(name); ok && sf.IsExported() {
		return v.FieldByIndex(sf.Index), true
	}
	for i := range t.NumField() {
		sf := t.Field(i)
		if sf.IsExported() && strings.EqualFold(sf.Name, name) {
			return v.Field(i), true
		}
	}
	return reflect.Value{}, false
}

func attributeNotFound(capability domain.Capability, attribute string) error {
	return zerr.With(
		zerr.Wrap(domain.ErrAttributeNotFound, "capability has no attribute "+attribute),
		"type", reflect.TypeOf(capability),
	)
}
