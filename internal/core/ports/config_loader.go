package ports

import "github.com/lade-build/lade/internal/core/domain"

// ConfigLoader defines the interface for loading the project configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads and validates the configuration file at the given path.
	// An empty path means the default lade.yaml in the working directory.
	Load(path string) (*domain.Project, error)
}
