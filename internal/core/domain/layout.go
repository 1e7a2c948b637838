package domain

import "path/filepath"

const (
	// LadeDirName is the name of the internal metadata directory.
	LadeDirName = ".lade"

	// ConfigFileName is the name of the project configuration file.
	ConfigFileName = "lade.yaml"

	// BuildDirName is the name of the build output root.
	BuildDirName = "Build"

	// BundlesDirName is the name of the compiler output directory under the build root.
	BundlesDirName = "Bundles"

	// StagingDirName is the name of the staging directory under the build root.
	StagingDirName = "Staging"

	// CatalogFileName is the name of the persisted bundle catalog file.
	CatalogFileName = "bundles.json"

	// DebugLogFile is the name of the debug log file.
	DebugLogFile = "debug.log"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644

	// PrivateFilePerm is the default permission for private files (rw-------).
	PrivateFilePerm = 0o600
)

// DefaultOutputPath returns the default compiler output root.
// It joins Build and Bundles.
func DefaultOutputPath() string {
	return filepath.Join(BuildDirName, BundlesDirName)
}

// DefaultStagingPath returns the default staging directory.
// It joins Build and Staging.
func DefaultStagingPath() string {
	return filepath.Join(BuildDirName, StagingDirName)
}

// DefaultCatalogPath returns the default path for the bundle catalog.
// It joins Build and bundles.json.
func DefaultCatalogPath() string {
	return filepath.Join(BuildDirName, CatalogFileName)
}

// DefaultDebugLogPath returns the default path for the debug log.
// It joins .lade and debug.log.
func DefaultDebugLogPath() string {
	return filepath.Join(LadeDirName, DebugLogFile)
}
