package ports

import "go.trai.ch/scaffold/internal/core/domain"

// ManifestParser reads the dependency manifest of a project.
//
//go:generate mockgen -source=manifest.go -destination=mocks/mock_manifest.go -package=mocks
type ManifestParser interface {
	Parse(path string) ([]domain.Dependency, error)
}
