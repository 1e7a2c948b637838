// Package remote implements the ExistenceProbe port against an HTTP
// bundle store using HEAD requests.
package remote

import (
	"context"
	"errors"
	"net/http"
	"time"

	"go.trai.ch/zerr"

	"github.com/lade-build/lade/internal/core/domain"
	"github.com/lade-build/lade/internal/core/ports"
)

// defaultTimeout bounds a single probe request when no client is injected.
const defaultTimeout = 10 * time.Second

// Probe checks staged bundle existence with HTTP HEAD requests against
// the remote store's base URL. Safe for concurrent use.
type Probe struct {
	baseURL string
	client  *http.Client
}

// NewProbe creates a probe for the given base URL. A nil client falls
// back to a default with a 10 second timeout.
func NewProbe(baseURL string, client *http.Client) (*Probe, error) {
	normalized, err := domain.NormalizeRemoteURL(baseURL)
	if err != nil {
		return nil, err
	}
	if client == nil {
		client = &http.Client{Timeout: defaultTimeout}
	}
	return &Probe{baseURL: normalized, client: client}, nil
}

// Probe issues a HEAD request for baseURL/{fileName}. A 2xx status
// confirms existence, 404 and 410 confirm absence, and every other
// outcome is indeterminate with the cause attached. A missing file must
// never be inferred from a failed request.
func (p *Probe) Probe(ctx context.Context, fileName string) (ports.ProbeResult, error) {
	fileURL := p.baseURL + "/" + fileName

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, fileURL, http.NoBody)
	if err != nil {
		return ports.ProbeIndeterminate, zerr.With(errors.Join(domain.ErrRemoteRequestFailed, err), "url", fileURL)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return ports.ProbeIndeterminate, zerr.With(errors.Join(domain.ErrRemoteRequestFailed, err), "url", fileURL)
	}
	//nolint:errcheck // Best effort close in defer
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices:
		return ports.ProbeFound, nil
	case resp.StatusCode == http.StatusNotFound, resp.StatusCode == http.StatusGone:
		return ports.ProbeNotFound, nil
	default:
		probeErr := zerr.With(domain.ErrRemoteRequestFailed, "status", resp.StatusCode)
		return ports.ProbeIndeterminate, zerr.With(probeErr, "url", fileURL)
	}
}

// Factory opens probes from project remote settings.
type Factory struct{}

// NewFactory creates a probe factory.
func NewFactory() *Factory {
	return &Factory{}
}

// NewProbe builds an HTTP probe for the configured store.
func (f *Factory) NewProbe(settings domain.RemoteSettings) (ports.ExistenceProbe, error) {
	return NewProbe(settings.URL, nil)
}
