package ports

import "go.trai.ch/repin/internal/core/domain"

// ConfigLoader defines the interface for loading the sync configuration.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration for the given working directory.
	// An explicit path takes precedence over discovery; when nothing is
	// found the built-in defaults are returned.
	Load(cwd, explicitPath string) (*domain.Config, error)
}
