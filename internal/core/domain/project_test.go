package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lade-build/lade/internal/core/domain"
)

func TestNormalizeRemoteURL(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "plain", raw: "https://cdn.example.com/bundles", want: "https://cdn.example.com/bundles"},
		{name: "trailing slash trimmed", raw: "https://cdn.example.com/bundles/", want: "https://cdn.example.com/bundles"},
		{name: "bare host", raw: "https://cdn.example.com", want: "https://cdn.example.com"},
		{name: "http scheme", raw: "http://localhost:9000/store", want: "http://localhost:9000/store"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := domain.NormalizeRemoteURL(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeRemoteURL_Invalid(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "empty", raw: ""},
		{name: "missing scheme", raw: "cdn.example.com/bundles"},
		{name: "missing host", raw: "https://"},
		{name: "unparseable", raw: "://bundles"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := domain.NormalizeRemoteURL(tt.raw)
			require.ErrorIs(t, err, domain.ErrInvalidRemoteURL)
		})
	}
}
