package domain

import (
	"encoding/binary"
	"maps"
	"slices"
	"strings"

	"github.com/cespare/xxhash/v2"

	"go.trai.ch/zerr"
)

// Bundle describes one named build artifact across every platform it was
// built for. The name is the stable identity; the per-platform hashes
// track content, and the dependency list names the bundles that must be
// loaded before this one.
type Bundle struct {
	// Name is the author-assigned tag, unique within a project.
	Name string

	// Hashes maps each platform the bundle was built for to the content
	// hash of that build. A platform absent from the map means the bundle
	// does not exist there. An empty map is a valid terminal state for a
	// bundle that is no longer built anywhere.
	Hashes map[Platform]Hash

	// Dependencies lists the names of bundles this one loads at runtime.
	// The slice is kept sorted and deduplicated; ordering carries no
	// meaning.
	Dependencies []string
}

// NewBundle creates a bundle with no platform hashes recorded yet.
// Dependencies are canonicalized on the way in.
func NewBundle(name string, dependencies []string) Bundle {
	return Bundle{
		Name:         name,
		Hashes:       make(map[Platform]Hash),
		Dependencies: canonicalNames(dependencies),
	}
}

// ValidateBundleName checks the constraints a name must satisfy before it
// can enter the system: non-empty and free of the file-name separator.
func ValidateBundleName(name string) error {
	if name == "" {
		return zerr.Wrap(ErrInvalidBundleName, "bundle name is empty")
	}
	if strings.Contains(name, bundleFileSep) {
		err := zerr.Wrap(ErrInvalidBundleName, "bundle name contains separator")
		return zerr.With(err, "name", name)
	}
	return nil
}

// Equal reports whether two bundles describe the same artifact: same
// name, same per-platform hashes and the same dependency set. The
// comparison is independent of map iteration and slice order.
func (b Bundle) Equal(other Bundle) bool {
	if b.Name != other.Name {
		return false
	}
	if !maps.Equal(b.Hashes, other.Hashes) {
		return false
	}
	return slices.Equal(canonicalNames(b.Dependencies), canonicalNames(other.Dependencies))
}

// Digest computes a deterministic content digest over the whole bundle
// record. Equal bundles always produce equal digests regardless of how
// they were assembled.
func (b Bundle) Digest() Hash {
	hasher := xxhash.New()

	_, _ = hasher.WriteString(b.Name)
	_, _ = hasher.Write([]byte{0})

	for _, platform := range b.Platforms() {
		_, _ = hasher.WriteString(platform.String())
		_, _ = hasher.Write([]byte{0})
		_ = binary.Write(hasher, binary.LittleEndian, b.Hashes[platform].Sum64())
	}
	_, _ = hasher.Write([]byte{0}) // Section separator

	for _, dep := range canonicalNames(b.Dependencies) {
		_, _ = hasher.WriteString(dep)
		_, _ = hasher.Write([]byte{0})
	}

	return NewHash(hasher.Sum64())
}

// Platforms returns the platforms the bundle was built for, sorted.
func (b Bundle) Platforms() []Platform {
	platforms := make([]Platform, 0, len(b.Hashes))
	for platform := range b.Hashes {
		platforms = append(platforms, platform)
	}
	SortPlatforms(platforms)
	return platforms
}

// Clone returns a deep copy. Catalog records are treated as immutable;
// supersession writes a fresh record instead of mutating in place.
func (b Bundle) Clone() Bundle {
	return Bundle{
		Name:         b.Name,
		Hashes:       maps.Clone(b.Hashes),
		Dependencies: slices.Clone(b.Dependencies),
	}
}

// canonicalNames returns a sorted, deduplicated copy of a name list.
func canonicalNames(names []string) []string {
	sorted := slices.Clone(names)
	slices.Sort(sorted)
	return slices.Compact(sorted)
}

// SortBundles orders bundles by name for deterministic output.
func SortBundles(bundles []Bundle) {
	slices.SortFunc(bundles, func(a, b Bundle) int {
		return strings.Compare(a.Name, b.Name)
	})
}
