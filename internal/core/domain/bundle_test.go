package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lade-build/lade/internal/core/domain"
)

func TestNewBundle(t *testing.T) {
	t.Run("Dependencies are sorted and deduplicated", func(t *testing.T) {
		bundle := domain.NewBundle("characters", []string{"shared", "animations", "shared", "audio"})

		assert.Equal(t, []string{"animations", "audio", "shared"}, bundle.Dependencies)
	})

	t.Run("No dependencies", func(t *testing.T) {
		bundle := domain.NewBundle("characters", nil)

		assert.Empty(t, bundle.Dependencies)
		assert.Empty(t, bundle.Hashes)
		assert.NotNil(t, bundle.Hashes, "hash map must be ready for platform inserts")
	})
}

func TestValidateBundleName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "Simple", input: "characters"},
		{name: "Hyphenated", input: "main-menu"},
		{name: "Dotted", input: "ui.icons"},
		{name: "Empty", input: "", wantErr: true},
		{name: "Contains separator", input: "main_menu", wantErr: true},
		{name: "Separator only", input: "_", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := domain.ValidateBundleName(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, domain.ErrInvalidBundleName)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestBundle_Equal(t *testing.T) {
	base := func() domain.Bundle {
		bundle := domain.NewBundle("characters", []string{"shared", "audio"})
		bundle.Hashes[domain.PlatformWindows] = domain.NewHash(0x1111)
		bundle.Hashes[domain.PlatformAndroid] = domain.NewHash(0x2222)
		return bundle
	}

	t.Run("Identical bundles are equal", func(t *testing.T) {
		assert.True(t, base().Equal(base()))
	})

	t.Run("Dependency order does not matter", func(t *testing.T) {
		other := base()
		other.Dependencies = []string{"shared", "audio"}

		assert.True(t, base().Equal(other))
	})

	t.Run("Duplicate dependencies do not matter", func(t *testing.T) {
		other := base()
		other.Dependencies = []string{"audio", "shared", "audio"}

		assert.True(t, base().Equal(other))
	})

	t.Run("Different name", func(t *testing.T) {
		other := base()
		other.Name = "props"

		assert.False(t, base().Equal(other))
	})

	t.Run("Different hash on one platform", func(t *testing.T) {
		other := base()
		other.Hashes[domain.PlatformWindows] = domain.NewHash(0x9999)

		assert.False(t, base().Equal(other))
	})

	t.Run("Missing platform", func(t *testing.T) {
		other := base()
		delete(other.Hashes, domain.PlatformAndroid)

		assert.False(t, base().Equal(other))
	})

	t.Run("Different dependency set", func(t *testing.T) {
		other := base()
		other.Dependencies = []string{"audio"}

		assert.False(t, base().Equal(other))
	})

	t.Run("Zero platforms on both sides", func(t *testing.T) {
		a := domain.NewBundle("retired", nil)
		b := domain.NewBundle("retired", nil)

		assert.True(t, a.Equal(b))
	})
}

func TestBundle_Digest(t *testing.T) {
	t.Run("Deterministic across assembly order", func(t *testing.T) {
		a := domain.NewBundle("characters", []string{"shared", "audio"})
		a.Hashes[domain.PlatformWindows] = domain.NewHash(0x1111)
		a.Hashes[domain.PlatformAndroid] = domain.NewHash(0x2222)

		b := domain.NewBundle("characters", []string{"audio", "shared"})
		b.Hashes[domain.PlatformAndroid] = domain.NewHash(0x2222)
		b.Hashes[domain.PlatformWindows] = domain.NewHash(0x1111)

		assert.Equal(t, a.Digest(), b.Digest())
	})

	t.Run("Sensitive to every field", func(t *testing.T) {
		base := domain.NewBundle("characters", []string{"shared"})
		base.Hashes[domain.PlatformWindows] = domain.NewHash(0x1111)

		renamed := base.Clone()
		renamed.Name = "props"
		assert.NotEqual(t, base.Digest(), renamed.Digest())

		rehashed := base.Clone()
		rehashed.Hashes[domain.PlatformWindows] = domain.NewHash(0x9999)
		assert.NotEqual(t, base.Digest(), rehashed.Digest())

		grown := base.Clone()
		grown.Hashes[domain.PlatformAndroid] = domain.NewHash(0x2222)
		assert.NotEqual(t, base.Digest(), grown.Digest())

		redeps := base.Clone()
		redeps.Dependencies = []string{"audio"}
		assert.NotEqual(t, base.Digest(), redeps.Digest())
	})

	t.Run("Platform move is not a hash move", func(t *testing.T) {
		// The same hash on a different platform must change the digest.
		a := domain.NewBundle("characters", nil)
		a.Hashes[domain.PlatformWindows] = domain.NewHash(0x1111)

		b := domain.NewBundle("characters", nil)
		b.Hashes[domain.PlatformAndroid] = domain.NewHash(0x1111)

		assert.NotEqual(t, a.Digest(), b.Digest())
	})

	t.Run("Non-zero for empty bundle", func(t *testing.T) {
		bundle := domain.NewBundle("retired", nil)
		assert.False(t, bundle.Digest().IsZero())
	})
}

func TestBundle_Platforms(t *testing.T) {
	bundle := domain.NewBundle("characters", nil)
	bundle.Hashes[domain.PlatformIOS] = domain.NewHash(3)
	bundle.Hashes[domain.PlatformAndroid] = domain.NewHash(1)
	bundle.Hashes[domain.PlatformWindows] = domain.NewHash(2)

	assert.Equal(t, []domain.Platform{
		domain.PlatformAndroid,
		domain.PlatformWindows,
		domain.PlatformIOS,
	}, bundle.Platforms())
}

func TestBundle_Clone(t *testing.T) {
	original := domain.NewBundle("characters", []string{"shared"})
	original.Hashes[domain.PlatformWindows] = domain.NewHash(0x1111)

	clone := original.Clone()
	require.True(t, original.Equal(clone))

	// Mutating the clone must not leak into the original.
	clone.Hashes[domain.PlatformAndroid] = domain.NewHash(0x2222)
	clone.Dependencies[0] = "other"

	assert.NotContains(t, original.Hashes, domain.PlatformAndroid)
	assert.Equal(t, []string{"shared"}, original.Dependencies)
}

func TestSortBundles(t *testing.T) {
	bundles := []domain.Bundle{
		domain.NewBundle("props", nil),
		domain.NewBundle("audio", nil),
		domain.NewBundle("characters", nil),
	}

	domain.SortBundles(bundles)

	names := make([]string, 0, len(bundles))
	for _, bundle := range bundles {
		names = append(names, bundle.Name)
	}
	assert.Equal(t, []string{"audio", "characters", "props"}, names)
}
