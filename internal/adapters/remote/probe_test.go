package remote_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/zerr"

	"github.com/lade-build/lade/internal/adapters/remote"
	"github.com/lade-build/lade/internal/core/domain"
	"github.com/lade-build/lade/internal/core/ports"
)

const testFileName = "characters_WindowsPlayer_0011223344556677.bundle"

func newServer(t *testing.T, status int) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodHead {
			t.Errorf("method = %s, want HEAD", r.Method)
		}
		if r.URL.Path != "/"+testFileName {
			t.Errorf("path = %s, want /%s", r.URL.Path, testFileName)
		}
		w.WriteHeader(status)
	}))
	t.Cleanup(server.Close)
	return server
}

func TestProbe_Found(t *testing.T) {
	t.Parallel()

	for _, status := range []int{http.StatusOK, http.StatusNoContent} {
		t.Run(strconv.Itoa(status), func(t *testing.T) {
			t.Parallel()

			probe, err := remote.NewProbe(newServer(t, status).URL, nil)
			require.NoError(t, err)

			result, err := probe.Probe(context.Background(), testFileName)
			require.NoError(t, err)
			assert.Equal(t, ports.ProbeFound, result)
		})
	}
}

func TestProbe_NotFound(t *testing.T) {
	t.Parallel()

	for _, status := range []int{http.StatusNotFound, http.StatusGone} {
		t.Run(strconv.Itoa(status), func(t *testing.T) {
			t.Parallel()

			probe, err := remote.NewProbe(newServer(t, status).URL, nil)
			require.NoError(t, err)

			result, err := probe.Probe(context.Background(), testFileName)
			require.NoError(t, err)
			assert.Equal(t, ports.ProbeNotFound, result)
		})
	}
}

func TestProbe_Indeterminate(t *testing.T) {
	t.Parallel()

	statuses := []int{
		http.StatusUnauthorized,
		http.StatusForbidden,
		http.StatusTooManyRequests,
		http.StatusInternalServerError,
		http.StatusServiceUnavailable,
	}
	for _, status := range statuses {
		t.Run(strconv.Itoa(status), func(t *testing.T) {
			t.Parallel()

			probe, err := remote.NewProbe(newServer(t, status).URL, nil)
			require.NoError(t, err)

			result, err := probe.Probe(context.Background(), testFileName)
			require.ErrorIs(t, err, domain.ErrRemoteRequestFailed)
			assert.Equal(t, ports.ProbeIndeterminate, result)

			zErr, ok := err.(*zerr.Error)
			require.True(t, ok, "expected *zerr.Error, got %T", err)
			meta := zErr.Metadata()
			assert.Equal(t, status, meta["status"])
			assert.Contains(t, meta["url"], testFileName)
		})
	}
}

func TestProbe_TransportError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	url := server.URL
	server.Close()

	probe, err := remote.NewProbe(url, nil)
	require.NoError(t, err)

	result, err := probe.Probe(context.Background(), testFileName)
	require.ErrorIs(t, err, domain.ErrRemoteRequestFailed)
	assert.Equal(t, ports.ProbeIndeterminate, result)
}

func TestProbe_ContextCanceled(t *testing.T) {
	t.Parallel()

	probe, err := remote.NewProbe(newServer(t, http.StatusOK).URL, nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := probe.Probe(ctx, testFileName)
	require.ErrorIs(t, err, domain.ErrRemoteRequestFailed)
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, ports.ProbeIndeterminate, result)
}

func TestProbe_JoinsBasePath(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/bundles/"+testFileName {
			t.Errorf("path = %s, want /bundles/%s", r.URL.Path, testFileName)
		}
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(server.Close)

	// Trailing slash is trimmed during normalization.
	probe, err := remote.NewProbe(server.URL+"/bundles/", nil)
	require.NoError(t, err)

	result, err := probe.Probe(context.Background(), testFileName)
	require.NoError(t, err)
	assert.Equal(t, ports.ProbeFound, result)
}

func TestNewProbe_InvalidURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		url  string
	}{
		{name: "empty", url: ""},
		{name: "missing scheme", url: "cdn.example.com/bundles"},
		{name: "missing host", url: "https://"},
		{name: "unparseable", url: "://bundles"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := remote.NewProbe(tt.url, nil)
			require.ErrorIs(t, err, domain.ErrInvalidRemoteURL)
		})
	}
}

func TestFactory_NewProbe(t *testing.T) {
	t.Parallel()

	server := newServer(t, http.StatusNotFound)
	factory := remote.NewFactory()

	probe, err := factory.NewProbe(domain.RemoteSettings{URL: server.URL})
	require.NoError(t, err)

	result, err := probe.Probe(context.Background(), testFileName)
	require.NoError(t, err)
	assert.Equal(t, ports.ProbeNotFound, result)
}

func TestFactory_NewProbe_InvalidSettings(t *testing.T) {
	t.Parallel()

	_, err := remote.NewFactory().NewProbe(domain.RemoteSettings{URL: "not a url"})
	require.ErrorIs(t, err, domain.ErrInvalidRemoteURL)
}
