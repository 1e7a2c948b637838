// Package domain contains the core domain models for bundle identity,
// merging and reconciliation.
package domain

import (
	"slices"
	"strings"

	"go.trai.ch/zerr"
)

// Platform is the canonical runtime platform a bundle is built for.
// Raw build targets normalize many-to-one onto these values: the
// 32/64-bit and universal desktop variants collapse onto their player
// platform, and editor targets collapse onto the player they stand in
// for, so a bundle built from the editor is interchangeable with one
// built for the player.
type Platform string

const (
	// PlatformWindows is the canonical platform for Windows player builds.
	PlatformWindows Platform = "WindowsPlayer"
	// PlatformOSX is the canonical platform for macOS player builds.
	PlatformOSX Platform = "OSXPlayer"
	// PlatformLinux is the canonical platform for Linux player builds.
	PlatformLinux Platform = "LinuxPlayer"
	// PlatformAndroid is the canonical platform for Android builds.
	PlatformAndroid Platform = "Android"
	// PlatformIOS is the canonical platform for iOS builds.
	PlatformIOS Platform = "iOS"
	// PlatformWebGL is the canonical platform for WebGL builds.
	PlatformWebGL Platform = "WebGL"
)

// rawTargets maps every supported raw build target onto its canonical
// platform. Canonical values map to themselves, which makes
// NormalizeTarget idempotent.
var rawTargets = map[string]Platform{
	"WindowsPlayer":       PlatformWindows,
	"StandaloneWindows":   PlatformWindows,
	"StandaloneWindows64": PlatformWindows,
	"WindowsEditor":       PlatformWindows,

	"OSXPlayer":              PlatformOSX,
	"StandaloneOSX":          PlatformOSX,
	"StandaloneOSXIntel64":   PlatformOSX,
	"StandaloneOSXUniversal": PlatformOSX,
	"OSXEditor":              PlatformOSX,

	"LinuxPlayer":              PlatformLinux,
	"StandaloneLinux64":        PlatformLinux,
	"StandaloneLinuxUniversal": PlatformLinux,
	"LinuxEditor":              PlatformLinux,

	"Android": PlatformAndroid,

	"iOS":          PlatformIOS,
	"iPhonePlayer": PlatformIOS,

	"WebGL": PlatformWebGL,
}

// canonicalPlatforms is the set of valid Platform values, used for
// strict parsing of interchange documents and staged file names.
var canonicalPlatforms = map[Platform]bool{
	PlatformWindows: true,
	PlatformOSX:     true,
	PlatformLinux:   true,
	PlatformAndroid: true,
	PlatformIOS:     true,
	PlatformWebGL:   true,
}

// NormalizeTarget collapses a raw build target identifier into its
// canonical Platform. The mapping is pure and many-to-one; it never
// depends on processing order. Unknown targets return
// ErrUnsupportedPlatform so callers can skip or surface a single
// platform without aborting a multi-platform run.
func NormalizeTarget(raw string) (Platform, error) {
	platform, ok := rawTargets[raw]
	if !ok {
		return "", zerr.With(ErrUnsupportedPlatform, "target", raw)
	}
	return platform, nil
}

// ParsePlatform parses a canonical platform key string. Unlike
// NormalizeTarget it accepts only canonical values: interchange
// documents and staged file names are written with canonical keys, so
// anything else there signals corruption rather than a build variant.
func ParsePlatform(s string) (Platform, error) {
	platform := Platform(s)
	if !canonicalPlatforms[platform] {
		return "", zerr.With(ErrUnknownPlatform, "platform", s)
	}
	return platform, nil
}

// String returns the canonical key string.
func (p Platform) String() string {
	return string(p)
}

// SortPlatforms sorts platforms into the fixed order used for
// deterministic hashing and serialization (lexicographic by key).
func SortPlatforms(platforms []Platform) {
	slices.SortFunc(platforms, func(a, b Platform) int {
		return strings.Compare(string(a), string(b))
	})
}
