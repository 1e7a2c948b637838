package ports

import (
	"context"

	"github.com/lade-build/lade/internal/core/domain"
)

// ProbeResult is the three-valued outcome of a remote existence check.
// Indeterminate is deliberately distinct from NotFound: a probe that
// could not complete must never be read as confirmed absence.
type ProbeResult uint8

const (
	// ProbeIndeterminate means existence could not be determined.
	ProbeIndeterminate ProbeResult = iota
	// ProbeFound means the remote store confirmed the file exists.
	ProbeFound
	// ProbeNotFound means the remote store confirmed the file is absent.
	ProbeNotFound
)

// String returns a short name for logging and span attributes.
func (r ProbeResult) String() string {
	switch r {
	case ProbeFound:
		return "found"
	case ProbeNotFound:
		return "not-found"
	default:
		return "indeterminate"
	}
}

// ExistenceProbe checks whether a staged bundle file already exists in
// the remote store.
//
//go:generate mockgen -source=probe.go -destination=mocks/mock_probe.go -package=mocks
type ExistenceProbe interface {
	// Probe checks the named file. On ProbeIndeterminate the returned
	// error carries the cause; for the other results it is nil.
	// Implementations must be safe for concurrent use.
	Probe(ctx context.Context, fileName string) (ProbeResult, error)
}

// ProbeFactory opens existence probes against a remote store. The
// store location is only known once the project configuration is
// loaded, so probes are created per run rather than at wiring time.
type ProbeFactory interface {
	// NewProbe builds a probe for the given remote settings.
	// Returns an error if the settings do not describe a usable store.
	NewProbe(settings domain.RemoteSettings) (ExistenceProbe, error)
}
