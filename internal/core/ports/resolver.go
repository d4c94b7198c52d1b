package ports

import (
	"context"

	"go.trai.ch/scaffold/internal/core/domain"
)

// CapabilityResolver looks up named capabilities for injection.
//
//go:generate mockgen -source=resolver.go -destination=mocks/mock_resolver.go -package=mocks
type CapabilityResolver interface {
	// Resolve returns the capability registered under name.
	// It is called every time an injected function runs.
	Resolve(ctx context.Context, name string) (domain.Capability, error)

	// Narrow returns the member of capability called attribute.
	Narrow(capability domain.Capability, attribute string) (domain.Capability, error)
}

// Namespace is implemented by capabilities that expose their members by name.
type Namespace interface {
	Member(name string) (domain.Capability, bool)
}
