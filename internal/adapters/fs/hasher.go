// Package fs implements the local filesystem adapters: content hashing
// and bundle staging.
package fs

import (
	"io"
	"os"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/zerr"

	"github.com/lade-build/lade/internal/core/domain"
)

// Hasher computes content hashes of files on disk.
type Hasher struct{}

// NewHasher creates a new Hasher.
func NewHasher() *Hasher {
	return &Hasher{}
}

// HashFile computes the content hash of a file, streaming so large
// bundle files never load into memory whole.
func (h *Hasher) HashFile(path string) (domain.Hash, error) {
	f, err := os.Open(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return domain.Hash{}, zerr.With(zerr.Wrap(err, "failed to open file"), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	hasher := xxhash.New()
	if _, err := io.Copy(hasher, f); err != nil {
		return domain.Hash{}, zerr.With(zerr.Wrap(err, "failed to hash file content"), "path", path)
	}

	return domain.NewHash(hasher.Sum64()), nil
}
