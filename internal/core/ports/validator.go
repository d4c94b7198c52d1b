package ports

import "go.trai.ch/scaffold/internal/core/domain"

// StructureValidator checks a project tree against its expected layout.
//
//go:generate mockgen -source=validator.go -destination=mocks/mock_validator.go -package=mocks
type StructureValidator interface {
	// Validate checks root against layout and stops at the first invalid entry.
	// The report lists every entry checked, including the failing one.
	Validate(root string, layout domain.Layout) (*domain.StructureReport, error)
}
