// Package config provides the configuration loader for lade.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"

	"github.com/lade-build/lade/internal/core/domain"
	"github.com/lade-build/lade/internal/core/ports"
)

// supportedConfigVersion is the config schema version this build
// understands. Newer versions load best-effort with a warning.
const supportedConfigVersion = "1"

var validProjectNameRegex = regexp.MustCompile("^[a-zA-Z0-9_-]+$")

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load reads and validates the configuration file at the given path.
// An empty path means the default lade.yaml in the working directory.
// Relative paths in the file resolve against the config file's
// directory, so the returned Project is usable from anywhere.
func (l *Loader) Load(path string) (*domain.Project, error) {
	if path == "" {
		path = domain.ConfigFileName
	}

	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, zerr.With(domain.ErrConfigNotFound, "path", path)
		}
		return nil, zerr.With(errors.Join(domain.ErrConfigReadFailed, err), "path", path)
	}

	var ladefile Ladefile
	if err := yaml.Unmarshal(data, &ladefile); err != nil {
		return nil, zerr.With(errors.Join(domain.ErrConfigParseFailed, err), "path", path)
	}

	if ladefile.Version == "" {
		return nil, zerr.With(domain.ErrMissingConfigVersion, "path", path)
	}
	if ladefile.Version != supportedConfigVersion {
		l.Logger.Warn(fmt.Sprintf("config version %q is newer than this build understands, loading best-effort", ladefile.Version))
	}

	if ladefile.Project != "" && !validProjectNameRegex.MatchString(ladefile.Project) {
		projErr := zerr.With(domain.ErrInvalidProjectName, "project", ladefile.Project)
		return nil, zerr.With(projErr, "path", path)
	}

	remote, err := buildRemoteSettings(ladefile.Remote)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}

	root := filepath.Dir(path)
	return &domain.Project{
		Name:        ladefile.Project,
		OutputDir:   resolveProjectPath(root, ladefile.Output, domain.DefaultOutputPath()),
		StagingDir:  resolveProjectPath(root, ladefile.Staging, domain.DefaultStagingPath()),
		CatalogPath: resolveProjectPath(root, ladefile.Catalog, domain.DefaultCatalogPath()),
		Remote:      remote,
	}, nil
}

// buildRemoteSettings validates the remote section and fills omitted
// policy values with the domain defaults. A zero value means
// unconfigured, so an explicit 0 falls back to the default as well.
func buildRemoteSettings(dto RemoteDTO) (domain.RemoteSettings, error) {
	settings := domain.RemoteSettings{
		Concurrency: domain.DefaultConcurrency,
		MaxRetries:  domain.DefaultMaxRetries,
		RetryDelay:  domain.DefaultRetryDelay,
	}

	// An empty URL leaves the remote unconfigured. Operations that need
	// the store reject it when they open a probe.
	if dto.URL != "" {
		normalized, err := domain.NormalizeRemoteURL(dto.URL)
		if err != nil {
			return domain.RemoteSettings{}, err
		}
		settings.URL = normalized
	}

	if dto.Concurrency < 0 {
		policyErr := zerr.With(domain.ErrInvalidRetryPolicy, "field", "concurrency")
		return domain.RemoteSettings{}, zerr.With(policyErr, "value", dto.Concurrency)
	}
	if dto.Concurrency > 0 {
		settings.Concurrency = dto.Concurrency
	}

	if dto.MaxRetries < 0 {
		policyErr := zerr.With(domain.ErrInvalidRetryPolicy, "field", "maxRetries")
		return domain.RemoteSettings{}, zerr.With(policyErr, "value", dto.MaxRetries)
	}
	if dto.MaxRetries > 0 {
		settings.MaxRetries = dto.MaxRetries
	}

	if dto.RetryDelay != "" {
		delay, err := time.ParseDuration(dto.RetryDelay)
		if err != nil || delay < 0 {
			policyErr := zerr.With(domain.ErrInvalidRetryPolicy, "field", "retryDelay")
			return domain.RemoteSettings{}, zerr.With(policyErr, "value", dto.RetryDelay)
		}
		settings.RetryDelay = delay
	}

	return settings, nil
}

// resolveProjectPath resolves a configured path against the project
// root, falling back to the default layout when unset. Absolute paths
// are kept as written.
func resolveProjectPath(root, configured, fallback string) string {
	if configured == "" {
		configured = fallback
	}
	if filepath.IsAbs(configured) {
		return filepath.Clean(configured)
	}
	return filepath.Clean(filepath.Join(root, configured))
}
