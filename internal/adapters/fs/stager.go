package fs

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/zerr"

	"github.com/lade-build/lade/internal/core/domain"
)

// Stager copies compiled bundle files into the staging directory under
// their canonical names, verifying content against the catalog records
// on the way in, and parses the staged set back out.
type Stager struct {
	hasher *Hasher
}

// NewStager creates a new Stager.
func NewStager(hasher *Hasher) *Stager {
	return &Stager{hasher: hasher}
}

// Stage copies outputRoot/<platform>/<name> to stagingDir under the
// canonical {name}_{platform}_{hash}.bundle file name for every built
// (bundle, platform) pair. The source content hash must match the
// record's hash; a stale or missing compiler output is a per-file
// error, collected and returned joined beside the files that staged.
func (s *Stager) Stage(outputRoot, stagingDir string, bundles []domain.Bundle) ([]domain.StagedBundle, error) {
	if err := os.MkdirAll(stagingDir, domain.DirPerm); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to create staging directory"), "path", stagingDir)
	}

	sorted := make([]domain.Bundle, len(bundles))
	copy(sorted, bundles)
	domain.SortBundles(sorted)

	var staged []domain.StagedBundle
	var errs error

	for _, bundle := range sorted {
		for _, platform := range bundle.Platforms() {
			result, err := s.stageFile(outputRoot, stagingDir, bundle, platform)
			if err != nil {
				errs = errors.Join(errs, err)
				continue
			}
			staged = append(staged, result)
		}
	}

	return staged, errs
}

// stageFile stages a single (bundle, platform) pair.
func (s *Stager) stageFile(outputRoot, stagingDir string, bundle domain.Bundle, platform domain.Platform) (domain.StagedBundle, error) {
	src := filepath.Join(outputRoot, platform.String(), bundle.Name)
	want := bundle.Hashes[platform]

	got, err := s.hasher.HashFile(src)
	if err != nil {
		err = zerr.With(zerr.Wrap(err, "failed to read compiler output"), "bundle", bundle.Name)
		return domain.StagedBundle{}, zerr.With(err, "platform", platform.String())
	}
	if got != want {
		err := zerr.With(domain.ErrStagedHashMismatch, "bundle", bundle.Name)
		err = zerr.With(err, "platform", platform.String())
		err = zerr.With(err, "want", want.String())
		return domain.StagedBundle{}, zerr.With(err, "got", got.String())
	}

	fileName, err := domain.BundleFileName(bundle.Name, platform, want)
	if err != nil {
		return domain.StagedBundle{}, err
	}
	dst := filepath.Join(stagingDir, fileName)

	if err := copyFile(src, dst); err != nil {
		err = zerr.With(zerr.Wrap(err, "failed to stage bundle file"), "bundle", bundle.Name)
		return domain.StagedBundle{}, zerr.With(err, "platform", platform.String())
	}

	return domain.StagedBundle{
		Name:     bundle.Name,
		Platform: platform,
		Hash:     want,
		Path:     dst,
	}, nil
}

// List parses the staging directory back into staged bundles. Files
// whose names do not decode are returned as per-file errors; entries
// come back in directory order, which is sorted by file name.
func (s *Stager) List(stagingDir string) ([]domain.StagedBundle, []error) {
	entries, err := os.ReadDir(stagingDir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, []error{zerr.With(zerr.Wrap(err, "failed to read staging directory"), "path", stagingDir)}
	}

	var staged []domain.StagedBundle
	var errs []error

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name, platform, hash, err := domain.ParseBundleFileName(entry.Name())
		if err != nil {
			errs = append(errs, err)
			continue
		}
		staged = append(staged, domain.StagedBundle{
			Name:     name,
			Platform: platform,
			Hash:     hash,
			Path:     filepath.Join(stagingDir, entry.Name()),
		})
	}

	return staged, errs
}

// copyFile copies src to dst, truncating any previous content.
func copyFile(src, dst string) error {
	in, err := os.Open(src) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return err
	}
	defer in.Close() //nolint:errcheck // Best effort close in defer

	//nolint:gosec // Staged files share the default file permissions
	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, domain.FilePerm)
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close() //nolint:errcheck,gosec // Write error takes precedence
		return err
	}
	return out.Close()
}
