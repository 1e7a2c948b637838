package domain

import (
	"fmt"
	"strings"

	"go.trai.ch/zerr"
)

const (
	// BundleFileExt is the extension shared by every staged bundle file.
	BundleFileExt = ".bundle"

	// bundleFileSep separates the name, platform and hash fields inside a
	// bundle file name. Bundle names must never contain it.
	bundleFileSep = "_"
)

// BundleFileName renders the canonical file name for one platform build
// of a bundle: {name}_{platform}_{hash}.bundle. Embedding the platform
// lets every platform variant sit in one flat directory; embedding the
// hash lets current and superseded builds coexist in a remote store.
func BundleFileName(name string, platform Platform, hash Hash) (string, error) {
	if err := ValidateBundleName(name); err != nil {
		return "", err
	}
	return fmt.Sprintf("%s%s%s%s%s%s", name, bundleFileSep, platform, bundleFileSep, hash, BundleFileExt), nil
}

// ParseBundleFileName decodes a file name produced by BundleFileName. It
// is the exact inverse: every encoder output parses back to its inputs,
// and everything else fails with ErrMalformedBundleFileName. The hash
// and platform fields never contain the separator, so splitting on the
// last two separators recovers the fields even though the grammar is
// otherwise ambiguous.
func ParseBundleFileName(fileName string) (string, Platform, Hash, error) {
	stem, ok := strings.CutSuffix(fileName, BundleFileExt)
	if !ok {
		err := zerr.Wrap(ErrMalformedBundleFileName, "missing bundle extension")
		return "", "", Hash{}, zerr.With(err, "file", fileName)
	}

	rest, hashField, ok := cutLast(stem, bundleFileSep)
	if !ok {
		err := zerr.Wrap(ErrMalformedBundleFileName, "missing hash field")
		return "", "", Hash{}, zerr.With(err, "file", fileName)
	}
	name, platformField, ok := cutLast(rest, bundleFileSep)
	if !ok {
		err := zerr.Wrap(ErrMalformedBundleFileName, "missing platform field")
		return "", "", Hash{}, zerr.With(err, "file", fileName)
	}

	if err := ValidateBundleName(name); err != nil {
		combined := zerr.Wrap(ErrMalformedBundleFileName, "invalid bundle name field")
		return "", "", Hash{}, zerr.With(combined, "file", fileName)
	}
	platform, err := ParsePlatform(platformField)
	if err != nil {
		combined := zerr.With(zerr.Wrap(ErrMalformedBundleFileName, "invalid platform field"), "platform", platformField)
		return "", "", Hash{}, zerr.With(combined, "file", fileName)
	}
	hash, err := ParseHash(hashField)
	if err != nil {
		combined := zerr.With(zerr.Wrap(ErrMalformedBundleFileName, "invalid hash field"), "hash", hashField)
		return "", "", Hash{}, zerr.With(combined, "file", fileName)
	}

	return name, platform, hash, nil
}

// cutLast splits s around the final occurrence of sep.
func cutLast(s, sep string) (before, after string, found bool) {
	idx := strings.LastIndex(s, sep)
	if idx < 0 {
		return s, "", false
	}
	return s[:idx], s[idx+len(sep):], true
}
