package ports

import "go.trai.ch/scaffold/internal/core/domain"

// ConfigLoader defines the interface for loading the project configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load discovers the configuration file starting at cwd and walking up.
	// When none is found the defaults for cwd are returned.
	Load(cwd string) (*domain.Config, error)
}
