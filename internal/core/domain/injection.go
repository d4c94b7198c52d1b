package domain

import "fmt"

// Capability is a value supplied by a capability resolver.
type Capability any

// InjectionRequest names the capability an injection resolves at call time.
type InjectionRequest struct {
	// Target is the capability name passed to the resolver.
	Target string
	// Attribute optionally narrows the resolved capability to one of its members.
	Attribute string
}

// Narrowed reports whether the request selects a member of the capability.
func (r InjectionRequest) Narrowed() bool {
	return r.Attribute != ""
}

func (r InjectionRequest) String() string {
	if !r.Narrowed() {
		return r.Target
	}
	return r.Target + "." + r.Attribute
}

// ResolutionError is returned when an injected capability cannot be resolved or narrowed.
// It matches ErrResolutionFailed as well as the resolver's own error.
type ResolutionError struct {
	Request InjectionRequest
	Err     error
}

func (e *ResolutionError) Error() string {
	attribute := e.Request.Attribute
	if attribute == "" {
		attribute = "<none>"
	}
	return fmt.Sprintf("%s: %q with attribute %q: %v", ErrResolutionFailed.Error(), e.Request.Target, attribute, e.Err)
}

// Unwrap exposes both the resolution sentinel and the underlying cause.
func (e *ResolutionError) Unwrap() []error {
	return []error{ErrResolutionFailed, e.Err}
}
