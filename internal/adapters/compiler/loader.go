package compiler

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"go.trai.ch/zerr"

	"github.com/lade-build/lade/internal/core/domain"
	"github.com/lade-build/lade/internal/core/ports"
)

// ManifestFileSuffix is the suffix every pipeline manifest file carries.
const ManifestFileSuffix = ".manifest.json"

// manifestFile is the wire form of one per-platform manifest. The
// target is the pipeline's raw build target, normalized on load.
type manifestFile struct {
	Target  string                      `json:"target"`
	Bundles map[string]manifestEntryDTO `json:"bundles"`
}

// manifestEntryDTO is the wire form of one bundle record.
type manifestEntryDTO struct {
	Hash         string   `json:"hash"`
	Dependencies []string `json:"dependencies"`
}

// Loader reads pipeline manifest files.
type Loader struct {
	logger ports.Logger
}

// NewLoader creates a new Loader.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{logger: logger}
}

// Load reads a single manifest file and returns the canonical platform
// it was built for together with the in-memory manifest view.
func (l *Loader) Load(path string) (domain.Platform, ports.BuildManifest, error) {
	//nolint:gosec // Path comes from project configuration
	data, err := os.ReadFile(path)
	if err != nil {
		return "", nil, zerr.With(errors.Join(domain.ErrManifestReadFailed, err), "path", path)
	}

	var file manifestFile
	if err := json.Unmarshal(data, &file); err != nil {
		return "", nil, zerr.With(errors.Join(domain.ErrManifestParseFailed, err), "path", path)
	}

	platform, err := domain.NormalizeTarget(file.Target)
	if err != nil {
		return "", nil, zerr.With(err, "path", path)
	}

	m := &manifest{
		platform: platform,
		entries:  make(map[string]manifestEntry, len(file.Bundles)),
	}
	for name, dto := range file.Bundles {
		hash, err := domain.ParseHash(dto.Hash)
		if err != nil {
			err = zerr.With(err, "bundle", name)
			return "", nil, zerr.With(err, "path", path)
		}
		m.entries[name] = manifestEntry{
			hash:         hash,
			dependencies: slices.Clone(dto.Dependencies),
		}
		m.names = append(m.names, name)
	}
	slices.Sort(m.names)

	return platform, m, nil
}

// LoadDir reads every *.manifest.json in the directory, keyed by
// canonical platform. Manifests for build targets this tool does not
// support are skipped with a warning; two manifests normalizing to the
// same platform are an error because their bundle sets would shadow
// each other.
func (l *Loader) LoadDir(dir string) (map[domain.Platform]ports.BuildManifest, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*"+ManifestFileSuffix))
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to scan for manifests"), "dir", dir)
	}

	manifests := make(map[domain.Platform]ports.BuildManifest)
	sources := make(map[domain.Platform]string)

	for _, path := range paths {
		platform, m, err := l.Load(path)
		if err != nil {
			if errors.Is(err, domain.ErrUnsupportedPlatform) {
				l.logger.Warn(fmt.Sprintf("skipping %s: unsupported build target", filepath.Base(path)))
				continue
			}
			return nil, err
		}

		if prev, dup := sources[platform]; dup {
			dupErr := zerr.With(domain.ErrDuplicatePlatformManifest, "platform", platform.String())
			dupErr = zerr.With(dupErr, "first", filepath.Base(prev))
			return nil, zerr.With(dupErr, "duplicate", filepath.Base(path))
		}

		manifests[platform] = m
		sources[platform] = path
	}

	if len(manifests) == 0 {
		l.logger.Warn(fmt.Sprintf("no build manifests found in %s", dir))
	}

	return manifests, nil
}
