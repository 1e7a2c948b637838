package compiler

import (
	"context"

	"go.trai.ch/zerr"

	"github.com/lade-build/lade/internal/core/domain"
	"github.com/lade-build/lade/internal/core/ports"
)

// ManifestCompiler implements ports.BundleCompiler over the output
// directory of a pipeline run that already happened: building a
// platform means reading the manifest the pipeline wrote for it.
type ManifestCompiler struct {
	loader *Loader
	root   string
}

var _ ports.BundleCompiler = (*ManifestCompiler)(nil)

// NewManifestCompiler creates a pipeline view rooted at the given
// compiler output directory.
func NewManifestCompiler(loader *Loader, root string) *ManifestCompiler {
	return &ManifestCompiler{loader: loader, root: root}
}

// Build returns the manifest for a single platform.
func (c *ManifestCompiler) Build(ctx context.Context, platform domain.Platform) (ports.BuildManifest, error) {
	manifests, err := c.BuildMany(ctx, []domain.Platform{platform})
	if err != nil {
		return nil, err
	}
	return manifests[platform], nil
}

// BuildMany returns manifests for the requested platforms. A nil or
// empty request returns every platform the pipeline built.
func (c *ManifestCompiler) BuildMany(_ context.Context, platforms []domain.Platform) (map[domain.Platform]ports.BuildManifest, error) {
	available, err := c.loader.LoadDir(c.root)
	if err != nil {
		return nil, err
	}
	if len(platforms) == 0 {
		return available, nil
	}

	requested := make(map[domain.Platform]ports.BuildManifest, len(platforms))
	for _, platform := range platforms {
		m, ok := available[platform]
		if !ok {
			err := zerr.With(domain.ErrPlatformNotBuilt, "platform", platform.String())
			return nil, zerr.With(err, "dir", c.root)
		}
		requested[platform] = m
	}
	return requested, nil
}

// Factory implements ports.CompilerFactory.
type Factory struct {
	loader *Loader
}

var _ ports.CompilerFactory = (*Factory)(nil)

// NewFactory creates a compiler factory around the given loader.
func NewFactory(loader *Loader) *Factory {
	return &Factory{loader: loader}
}

// NewCompiler returns the pipeline view rooted at outputRoot.
func (f *Factory) NewCompiler(outputRoot string) ports.BundleCompiler {
	return NewManifestCompiler(f.loader, outputRoot)
}
