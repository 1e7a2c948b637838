// Package catalog implements the file-backed bundle catalog store.
//
// The catalog file is a versioned document wrapping the interchange
// record list, so external tooling can read the records through the
// same codec while the store stamps its own metadata around them.
package catalog

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"go.trai.ch/zerr"

	"github.com/lade-build/lade/internal/adapters/codec"
	"github.com/lade-build/lade/internal/build"
	"github.com/lade-build/lade/internal/core/domain"
)

// catalogVersion is the current catalog document format version.
const catalogVersion = "1"

// catalogDocument is the on-disk form of the catalog file. The record
// list is embedded raw so the codec stays the single owner of the
// record format.
type catalogDocument struct {
	Version   string          `json:"version"`
	Generator string          `json:"generator"`
	UpdatedAt string          `json:"updatedAt"`
	Bundles   json.RawMessage `json:"bundles"`
}

// Store reads and writes the persisted bundle catalog.
type Store struct {
	codec *codec.Codec
	now   func() time.Time
}

// NewStore creates a catalog store.
func NewStore() *Store {
	return &Store{
		codec: codec.New(codec.WithPath("bundles")),
		now:   time.Now,
	}
}

// Load reads the catalog at the given path. A missing or empty file is
// an empty catalog, not an error; the first Save creates it.
func (s *Store) Load(path string) ([]domain.Bundle, error) {
	path = filepath.Clean(path)

	//nolint:gosec // Path is cleaned and comes from project configuration
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(errors.Join(domain.ErrCatalogReadFailed, err), "path", path)
	}
	if len(data) == 0 {
		return nil, nil
	}

	bundles, err := s.codec.Decode(data)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}
	return bundles, nil
}

// Save writes the full catalog, sorted by bundle name.
func (s *Store) Save(path string, bundles []domain.Bundle) error {
	path = filepath.Clean(path)

	sorted := make([]domain.Bundle, len(bundles))
	copy(sorted, bundles)
	domain.SortBundles(sorted)

	list, err := s.codec.Encode(sorted)
	if err != nil {
		return zerr.With(err, "path", path)
	}

	doc := catalogDocument{
		Version:   catalogVersion,
		Generator: "lade " + build.Version,
		UpdatedAt: s.now().UTC().Format(time.RFC3339),
		Bundles:   list,
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return zerr.With(errors.Join(domain.ErrCatalogMarshalFailed, err), "path", path)
	}

	if err := os.MkdirAll(filepath.Dir(path), domain.DirPerm); err != nil {
		return zerr.With(errors.Join(domain.ErrCatalogWriteFailed, err), "path", path)
	}
	//nolint:gosec // Path is cleaned and comes from project configuration
	if err := os.WriteFile(path, data, domain.FilePerm); err != nil {
		return zerr.With(errors.Join(domain.ErrCatalogWriteFailed, err), "path", path)
	}
	return nil
}

// Replace folds freshly merged records into the stored catalog. A
// merged record supersedes the stored record of the same name; stored
// records the merge did not touch are kept, so every historical bundle
// stays resolvable. Returns the persisted set.
func (s *Store) Replace(path string, merged []domain.Bundle) ([]domain.Bundle, error) {
	existing, err := s.Load(path)
	if err != nil {
		return nil, err
	}

	byName := make(map[string]domain.Bundle, len(existing)+len(merged))
	for _, bundle := range existing {
		byName[bundle.Name] = bundle
	}
	for _, bundle := range merged {
		byName[bundle.Name] = bundle.Clone()
	}

	bundles := make([]domain.Bundle, 0, len(byName))
	for _, bundle := range byName {
		bundles = append(bundles, bundle)
	}
	domain.SortBundles(bundles)

	if err := s.Save(path, bundles); err != nil {
		return nil, err
	}
	return bundles, nil
}
