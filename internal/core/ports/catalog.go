package ports

import "github.com/lade-build/lade/internal/core/domain"

// CatalogStore persists the cross-platform bundle catalog.
//
//go:generate mockgen -source=catalog.go -destination=mocks/mock_catalog.go -package=mocks
type CatalogStore interface {
	// Load reads the catalog at the given path.
	// A missing catalog is an empty catalog, not an error.
	Load(path string) ([]domain.Bundle, error)

	// Save writes the full catalog, sorted by bundle name.
	Save(path string, bundles []domain.Bundle) error

	// Replace merges freshly built records into the stored catalog:
	// records with the same name are superseded, all others are kept.
	// It returns the persisted set.
	Replace(path string, merged []domain.Bundle) ([]domain.Bundle, error)
}
