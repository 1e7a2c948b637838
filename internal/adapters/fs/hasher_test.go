package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lade-build/lade/internal/adapters/fs"
	"github.com/lade-build/lade/internal/core/domain"
)

// emptyFileHash is the hardcoded golden hash of an empty file. If this
// changes, every previously staged bundle stops matching its catalog
// record. Validate the change carefully before updating this constant.
const emptyFileHash = "ef46db3751d8e999"

// abcHash is the xxhash64 reference vector for the content "abc".
const abcHash = "44bc2cf5ad770999"

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), domain.FilePerm))
	return path
}

func TestHasher_HashFile_Golden(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	hasher := fs.NewHasher()

	empty, err := hasher.HashFile(writeFile(t, tmpDir, "empty.bundle", ""))
	require.NoError(t, err)
	require.Equal(t, emptyFileHash, empty.String(), "hash algorithm changed! Verify if this is intentional.")

	abc, err := hasher.HashFile(writeFile(t, tmpDir, "abc.bundle", "abc"))
	require.NoError(t, err)
	require.Equal(t, abcHash, abc.String(), "hash algorithm changed! Verify if this is intentional.")
}

func TestHasher_HashFile_ContentDetermined(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	hasher := fs.NewHasher()

	first, err := hasher.HashFile(writeFile(t, tmpDir, "one.bundle", "shared content"))
	require.NoError(t, err)
	second, err := hasher.HashFile(writeFile(t, tmpDir, "two.bundle", "shared content"))
	require.NoError(t, err)
	changed, err := hasher.HashFile(writeFile(t, tmpDir, "three.bundle", "different content"))
	require.NoError(t, err)

	// Identical content hashes identically regardless of file name;
	// any content change moves the hash.
	assert.Equal(t, first, second)
	assert.NotEqual(t, first, changed)
}

func TestHasher_HashFile_Missing(t *testing.T) {
	t.Parallel()

	_, err := fs.NewHasher().HashFile(filepath.Join(t.TempDir(), "nope.bundle"))
	require.Error(t, err)
}
