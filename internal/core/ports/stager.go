package ports

import "github.com/lade-build/lade/internal/core/domain"

// Stager moves compiled bundle files into the staging directory under
// their canonical names and reads the staged set back.
//
//go:generate mockgen -source=stager.go -destination=mocks/mock_stager.go -package=mocks
type Stager interface {
	// Stage copies each built (bundle, platform) file from the compiler
	// output root into the staging directory under its canonical file
	// name, verifying content hashes against the catalog records on the
	// way. Per-file failures are collected and returned joined beside
	// the files that did stage.
	Stage(outputRoot, stagingDir string, bundles []domain.Bundle) ([]domain.StagedBundle, error)

	// List parses the staging directory back into staged bundles.
	// Files that do not carry a canonical bundle file name are returned
	// as per-file errors; the rest of the directory still lists.
	List(stagingDir string) ([]domain.StagedBundle, []error)
}
