package domain

import "go.trai.ch/zerr"

var (
	// ErrUnsupportedPlatform is returned when a raw build target cannot be normalized to a canonical platform.
	ErrUnsupportedPlatform = zerr.New("unsupported build target")

	// ErrUnknownPlatform is returned when a platform string is not one of the canonical platform keys.
	ErrUnknownPlatform = zerr.New("unknown platform")

	// ErrInvalidHash is returned when a content hash string is not 16 lowercase hex digits.
	ErrInvalidHash = zerr.New("invalid content hash")

	// ErrInvalidBundleName is returned when a bundle name is empty or contains the file-name separator.
	ErrInvalidBundleName = zerr.New("invalid bundle name")

	// ErrMalformedBundleFileName is returned when a file name does not follow the {name}_{platform}_{hash}.bundle form.
	ErrMalformedBundleFileName = zerr.New("malformed bundle file name")

	// ErrBundleNotInManifest is returned when a build manifest is asked about a bundle it does not contain.
	ErrBundleNotInManifest = zerr.New("bundle not in manifest")

	// ErrDuplicatePlatformManifest is returned when two manifest files normalize to the same canonical platform.
	ErrDuplicatePlatformManifest = zerr.New("duplicate manifest for platform")

	// ErrPlatformNotBuilt is returned when the build pipeline has no manifest for a requested platform.
	ErrPlatformNotBuilt = zerr.New("platform has no build manifest")

	// ErrStagedHashMismatch is returned when a staged file's content hash does not match the manifest hash.
	ErrStagedHashMismatch = zerr.New("staged file hash mismatch")

	// ErrProbeIndeterminate is returned when remote existence could not be determined after all retries.
	ErrProbeIndeterminate = zerr.New("remote existence indeterminate")

	// ErrRemoteRequestFailed is returned when an existence probe request could not complete or came back with an unexpected status.
	ErrRemoteRequestFailed = zerr.New("remote store request failed")

	// ErrManifestReadFailed is returned when a build manifest file cannot be read.
	ErrManifestReadFailed = zerr.New("failed to read build manifest")

	// ErrManifestParseFailed is returned when a build manifest file cannot be parsed.
	ErrManifestParseFailed = zerr.New("failed to parse build manifest")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrConfigNotFound is returned when no lade.yaml can be found.
	ErrConfigNotFound = zerr.New("could not find lade.yaml")

	// ErrMissingConfigVersion is returned when the config file omits the version field.
	ErrMissingConfigVersion = zerr.New("missing config version")

	// ErrInvalidProjectName is returned when the configured project name contains invalid characters.
	ErrInvalidProjectName = zerr.New("invalid project name")

	// ErrInvalidRemoteURL is returned when the configured remote URL is missing a scheme or host.
	ErrInvalidRemoteURL = zerr.New("invalid remote URL")

	// ErrInvalidRetryPolicy is returned when the configured retry or concurrency values are out of bounds.
	ErrInvalidRetryPolicy = zerr.New("invalid retry policy")

	// ErrCatalogReadFailed is returned when the catalog file cannot be read.
	ErrCatalogReadFailed = zerr.New("failed to read catalog")

	// ErrCatalogWriteFailed is returned when the catalog file cannot be written.
	ErrCatalogWriteFailed = zerr.New("failed to write catalog")

	// ErrCatalogMarshalFailed is returned when catalog records cannot be marshaled.
	ErrCatalogMarshalFailed = zerr.New("failed to marshal catalog")

	// ErrCatalogUnmarshalFailed is returned when catalog records cannot be unmarshaled.
	ErrCatalogUnmarshalFailed = zerr.New("failed to unmarshal catalog")
)
