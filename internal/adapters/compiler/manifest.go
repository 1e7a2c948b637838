// Package compiler reads the per-platform manifests the external build
// pipeline writes next to its compiled bundle files, and exposes them
// through the pipeline ports.
package compiler

import (
	"slices"

	"go.trai.ch/zerr"

	"github.com/lade-build/lade/internal/core/domain"
	"github.com/lade-build/lade/internal/core/ports"
)

// manifestEntry is one bundle's record inside a manifest.
type manifestEntry struct {
	hash         domain.Hash
	dependencies []string
}

// manifest is the in-memory ports.BuildManifest built from one
// manifest file.
type manifest struct {
	platform domain.Platform
	names    []string
	entries  map[string]manifestEntry
}

var _ ports.BuildManifest = (*manifest)(nil)

// Bundles returns the bundle names in the manifest, sorted.
func (m *manifest) Bundles() []string {
	return slices.Clone(m.names)
}

// HashOf returns the content hash recorded for the named bundle.
func (m *manifest) HashOf(name string) (domain.Hash, error) {
	entry, ok := m.entries[name]
	if !ok {
		err := zerr.With(domain.ErrBundleNotInManifest, "bundle", name)
		return domain.Hash{}, zerr.With(err, "platform", m.platform.String())
	}
	return entry.hash, nil
}

// DependenciesOf returns the direct dependency names recorded for the
// named bundle.
func (m *manifest) DependenciesOf(name string) ([]string, error) {
	entry, ok := m.entries[name]
	if !ok {
		err := zerr.With(domain.ErrBundleNotInManifest, "bundle", name)
		return nil, zerr.With(err, "platform", m.platform.String())
	}
	return slices.Clone(entry.dependencies), nil
}
