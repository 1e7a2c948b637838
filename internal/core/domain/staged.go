package domain

import "fmt"

// StagedBundle is one platform build of a bundle sitting in the local
// staging directory, ready to be probed against the remote store and
// uploaded if missing.
type StagedBundle struct {
	// Name is the bundle name the file was staged for.
	Name string

	// Platform is the canonical platform the file was built for.
	Platform Platform

	// Hash is the content hash recorded at staging time.
	Hash Hash

	// Path is the absolute location of the staged file on disk.
	Path string
}

// FileName returns the canonical file name the staged bundle carries in
// the staging directory and in the remote store. The fields are valid by
// construction, so encoding cannot fail here.
func (s StagedBundle) FileName() string {
	return fmt.Sprintf("%s%s%s%s%s%s", s.Name, bundleFileSep, s.Platform, bundleFileSep, s.Hash, BundleFileExt)
}
