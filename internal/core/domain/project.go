package domain

import (
	"net/url"
	"strings"
	"time"

	"go.trai.ch/zerr"
)

// Default reconciliation policy applied when the configuration omits a
// value. The reconcile engine falls back to the same constants, so an
// unconfigured project and a zero-value engine behave identically.
const (
	// DefaultConcurrency caps simultaneous existence probes.
	DefaultConcurrency = 4

	// DefaultMaxRetries caps retry attempts after an indeterminate probe.
	DefaultMaxRetries = 2

	// DefaultRetryDelay is the pause between retry attempts.
	DefaultRetryDelay = 2 * time.Second
)

// NormalizeRemoteURL validates and canonicalizes a remote store base
// URL. The scheme and host are required; a trailing slash is trimmed so
// probe URLs join cleanly.
func NormalizeRemoteURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return "", zerr.With(ErrInvalidRemoteURL, "url", raw)
	}
	return strings.TrimSuffix(u.String(), "/"), nil
}

// RemoteSettings holds the remote store endpoint and probe policy.
type RemoteSettings struct {
	// URL is the normalized base URL of the remote bundle store.
	URL string

	// Concurrency caps simultaneous existence probes.
	Concurrency int

	// MaxRetries caps retry attempts for indeterminate probes.
	MaxRetries int

	// RetryDelay is the pause between retry attempts.
	RetryDelay time.Duration
}

// Project is the validated project configuration, constructed by the
// config adapter from lade.yaml. All paths are relative to the project
// root unless written absolute.
type Project struct {
	// Name identifies the project in logs.
	Name string

	// OutputDir is the compiler output root holding the per-platform
	// build manifests and compiled bundle files.
	OutputDir string

	// StagingDir is where bundle files are staged under their canonical
	// names before reconciliation.
	StagingDir string

	// CatalogPath is the location of the persisted bundle catalog.
	CatalogPath string

	// Remote configures the remote store existence probes.
	Remote RemoteSettings
}
