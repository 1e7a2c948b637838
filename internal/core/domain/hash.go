package domain

import (
	"fmt"
	"strconv"

	"go.trai.ch/zerr"
)

// hashHexLen is the fixed width of a rendered content hash: a 64-bit
// sum printed as zero-padded lowercase hex.
const hashHexLen = 16

// Hash is the opaque content hash of one bundle build. Two builds of
// identical content on the same platform produce the same Hash; any
// content change produces a different one. The value is comparable and
// has a single fixed string form, 16 lowercase hex digits.
type Hash struct {
	sum uint64
}

// NewHash wraps a raw 64-bit sum.
func NewHash(sum uint64) Hash {
	return Hash{sum: sum}
}

// ParseHash parses the fixed string form of a content hash. It accepts
// exactly 16 lowercase hex digits and nothing else, so that parsing is
// the exact inverse of String.
func ParseHash(s string) (Hash, error) {
	if len(s) != hashHexLen {
		return Hash{}, zerr.With(ErrInvalidHash, "hash", s)
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return Hash{}, zerr.With(ErrInvalidHash, "hash", s)
		}
	}
	sum, err := strconv.ParseUint(s, 16, 64)
	if err != nil {
		return Hash{}, zerr.With(ErrInvalidHash, "hash", s)
	}
	return Hash{sum: sum}, nil
}

// String renders the hash in its fixed form.
func (h Hash) String() string {
	return fmt.Sprintf("%016x", h.sum)
}

// Sum64 returns the raw 64-bit sum, for feeding into composite digests.
func (h Hash) Sum64() uint64 {
	return h.sum
}

// IsZero reports whether the hash is the zero value, i.e. unset.
func (h Hash) IsZero() bool {
	return h.sum == 0
}
