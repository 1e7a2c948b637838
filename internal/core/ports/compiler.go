// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"github.com/lade-build/lade/internal/core/domain"
)

// BuildManifest describes the output of one platform build: which
// bundles were built, their content hashes, and their dependencies as
// computed on that platform.
//
//go:generate mockgen -source=compiler.go -destination=mocks/mock_compiler.go -package=mocks
type BuildManifest interface {
	// Bundles returns the names of all bundles in the manifest, sorted.
	Bundles() []string

	// HashOf returns the content hash recorded for the named bundle.
	// Returns domain.ErrBundleNotInManifest if the bundle is absent.
	HashOf(name string) (domain.Hash, error)

	// DependenciesOf returns the direct dependency names recorded for
	// the named bundle. Returns domain.ErrBundleNotInManifest if the
	// bundle is absent.
	DependenciesOf(name string) ([]string, error)
}

// BundleCompiler is the view onto the external build pipeline that
// compiles bundles and reports what it produced.
type BundleCompiler interface {
	// Build produces the manifest for a single platform. Returns
	// domain.ErrPlatformNotBuilt if the pipeline has no output for it.
	Build(ctx context.Context, platform domain.Platform) (BuildManifest, error)

	// BuildMany produces manifests for the requested platforms keyed by
	// canonical platform. A nil or empty request means every platform
	// the pipeline built.
	BuildMany(ctx context.Context, platforms []domain.Platform) (map[domain.Platform]BuildManifest, error)
}

// CompilerFactory opens pipeline views. The compiler output root is
// only known once the project configuration is loaded, so views are
// created per run rather than at wiring time.
type CompilerFactory interface {
	// NewCompiler returns the pipeline view rooted at the given
	// compiler output directory.
	NewCompiler(outputRoot string) BundleCompiler
}
