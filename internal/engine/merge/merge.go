// Package merge implements the cross-platform manifest merge engine.
//
// Each platform build reports its own manifest. The merge engine folds
// those per-platform views into one catalog record per bundle: the
// record carries every platform's content hash, while the dependency
// list is taken from the first platform (in sorted platform order) that
// built the bundle. Later platforms that disagree on dependencies are
// reported as divergences, never silently merged.
package merge

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"go.trai.ch/zerr"

	"github.com/lade-build/lade/internal/core/domain"
	"github.com/lade-build/lade/internal/core/ports"
)

// Divergence records a dependency disagreement between platforms for
// one bundle. Got is the dependency set reported by Platform; Want is
// the set already recorded by an earlier platform.
type Divergence struct {
	Bundle   string
	Platform domain.Platform
	Got      []string
	Want     []string
}

// String renders the divergence for logs.
func (d Divergence) String() string {
	return fmt.Sprintf("bundle %q: dependencies diverge on %s: got %v, keeping %v",
		d.Bundle, d.Platform, d.Got, d.Want)
}

// Result holds the merged catalog records and any divergences found.
type Result struct {
	// Bundles is sorted by bundle name.
	Bundles []domain.Bundle

	// Warnings lists dependency divergences in the order they were
	// detected. A divergence is a warning, not an error.
	Warnings []Divergence
}

// Merger folds per-platform build manifests into catalog records.
type Merger struct {
	logger ports.Logger
	tracer ports.Tracer
}

// NewMerger creates a new Merger with the given dependencies.
func NewMerger(logger ports.Logger, tracer ports.Tracer) *Merger {
	return &Merger{
		logger: logger,
		tracer: tracer,
	}
}

// Merge combines the given manifests, keyed by canonical platform, into
// one record per bundle name. Platforms are processed in sorted key
// order so the outcome never depends on map iteration. Entries with
// invalid names or unreadable manifest data are collected as per-bundle
// errors and returned joined, next to the records that did merge; one
// bad entry never discards the rest.
func (m *Merger) Merge(ctx context.Context, manifests map[domain.Platform]ports.BuildManifest) (*Result, error) {
	_, span := m.tracer.Start(ctx, "merge")
	defer span.End()

	platforms := make([]domain.Platform, 0, len(manifests))
	for platform := range manifests {
		platforms = append(platforms, platform)
	}
	domain.SortPlatforms(platforms)
	span.SetAttribute("platforms", len(platforms))

	accumulated := make(map[string]domain.Bundle)
	result := &Result{}
	var errs error

	for _, platform := range platforms {
		manifest := manifests[platform]
		for _, name := range manifest.Bundles() {
			if err := m.mergeEntry(accumulated, result, platform, manifest, name); err != nil {
				errs = errors.Join(errs, err)
			}
		}
	}

	result.Bundles = make([]domain.Bundle, 0, len(accumulated))
	for _, bundle := range accumulated {
		result.Bundles = append(result.Bundles, bundle)
	}
	domain.SortBundles(result.Bundles)

	span.SetAttribute("bundles", len(result.Bundles))
	span.SetAttribute("divergences", len(result.Warnings))
	if errs != nil {
		span.RecordError(errs)
	}

	for _, warning := range result.Warnings {
		m.logger.Warn(warning.String())
	}
	m.logger.Info(fmt.Sprintf("merged %d bundles across %d platforms", len(result.Bundles), len(platforms)))

	return result, errs
}

// mergeEntry folds a single manifest entry into the accumulator.
func (m *Merger) mergeEntry(
	accumulated map[string]domain.Bundle,
	result *Result,
	platform domain.Platform,
	manifest ports.BuildManifest,
	name string,
) error {
	if err := domain.ValidateBundleName(name); err != nil {
		return zerr.With(err, "platform", platform.String())
	}

	hash, err := manifest.HashOf(name)
	if err != nil {
		err = zerr.With(zerr.Wrap(err, "failed to read bundle hash"), "bundle", name)
		return zerr.With(err, "platform", platform.String())
	}
	dependencies, err := manifest.DependenciesOf(name)
	if err != nil {
		err = zerr.With(zerr.Wrap(err, "failed to read bundle dependencies"), "bundle", name)
		return zerr.With(err, "platform", platform.String())
	}

	bundle, seen := accumulated[name]
	if !seen {
		// First platform to build this bundle defines its dependencies.
		bundle = domain.NewBundle(name, dependencies)
		accumulated[name] = bundle
	} else if divergence, diverged := dependencyDivergence(bundle, platform, dependencies); diverged {
		result.Warnings = append(result.Warnings, divergence)
	}

	bundle.Hashes[platform] = hash
	return nil
}

// dependencyDivergence compares a later platform's dependency set
// against the recorded one. Order and duplicates are not divergence;
// only set inequality is.
func dependencyDivergence(bundle domain.Bundle, platform domain.Platform, dependencies []string) (Divergence, bool) {
	got := slices.Clone(dependencies)
	slices.Sort(got)
	got = slices.Compact(got)

	if slices.Equal(got, bundle.Dependencies) {
		return Divergence{}, false
	}
	return Divergence{
		Bundle:   bundle.Name,
		Platform: platform,
		Got:      got,
		Want:     slices.Clone(bundle.Dependencies),
	}, true
}
