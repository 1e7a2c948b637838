// Package codec implements the bundle catalog interchange format: an
// ordered JSON list of bundle records shared between the catalog file
// and any external tooling that consumes it.
package codec

import (
	"encoding/json"
	"errors"
	"slices"
	"strings"

	"go.trai.ch/zerr"

	"github.com/lade-build/lade/internal/core/domain"
)

// bundleRecord is the wire form of one bundle.
type bundleRecord struct {
	Name         string            `json:"name"`
	Hashes       map[string]string `json:"hashes"`
	Dependencies []string          `json:"dependencies"`
}

// Option configures a Codec.
type Option func(*Codec)

// WithPath makes Decode read the record list from a nested object field
// of a larger document instead of the document root. Unknown sibling
// fields are ignored, so callers can wrap the list in their own
// metadata without the codec knowing about it.
func WithPath(path ...string) Option {
	return func(c *Codec) {
		c.path = path
	}
}

// WithHashParser replaces the hash parser applied to every decoded
// hash string. The default is domain.ParseHash.
func WithHashParser(parse func(string) (domain.Hash, error)) Option {
	return func(c *Codec) {
		c.parseHash = parse
	}
}

// Codec encodes and decodes bundle record lists. The zero configuration
// reads and writes the list at the document root with strict hash
// parsing. A Codec is safe for concurrent use once constructed.
type Codec struct {
	path      []string
	parseHash func(string) (domain.Hash, error)
}

// New creates a Codec with the given options applied.
func New(opts ...Option) *Codec {
	c := &Codec{
		parseHash: domain.ParseHash,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Encode renders bundles as the interchange list, preserving the given
// record order. Within each record the hash keys and dependencies are
// sorted, so identical input always produces identical bytes.
func (c *Codec) Encode(bundles []domain.Bundle) ([]byte, error) {
	records := make([]bundleRecord, 0, len(bundles))
	for _, bundle := range bundles {
		record := bundleRecord{
			Name:         bundle.Name,
			Hashes:       make(map[string]string, len(bundle.Hashes)),
			Dependencies: sortedDependencies(bundle.Dependencies),
		}
		for platform, hash := range bundle.Hashes {
			record.Hashes[platform.String()] = hash.String()
		}
		records = append(records, record)
	}

	data, err := json.Marshal(records)
	if err != nil {
		return nil, errors.Join(domain.ErrCatalogMarshalFailed, err)
	}
	return data, nil
}

// Decode parses an interchange document back into bundles. Decoding is
// strict: unknown platform keys, malformed hashes and invalid names are
// errors, never skipped. A record silently dropped here would later
// read as a bundle that was never built.
func (c *Codec) Decode(data []byte) ([]domain.Bundle, error) {
	listData, err := c.recordListData(data)
	if err != nil {
		return nil, err
	}

	var records []bundleRecord
	if err := json.Unmarshal(listData, &records); err != nil {
		return nil, errors.Join(domain.ErrCatalogUnmarshalFailed, err)
	}

	bundles := make([]domain.Bundle, 0, len(records))
	for _, record := range records {
		bundle, err := c.decodeRecord(record)
		if err != nil {
			return nil, err
		}
		bundles = append(bundles, bundle)
	}
	return bundles, nil
}

// recordListData locates the raw record list inside the document by
// walking the configured path of nested object fields.
func (c *Codec) recordListData(data []byte) (json.RawMessage, error) {
	current := json.RawMessage(data)
	for i, field := range c.path {
		var doc map[string]json.RawMessage
		if err := json.Unmarshal(current, &doc); err != nil {
			return nil, errors.Join(domain.ErrCatalogUnmarshalFailed, err)
		}
		next, ok := doc[field]
		if !ok {
			err := zerr.Wrap(domain.ErrCatalogUnmarshalFailed, "record list missing from document")
			return nil, zerr.With(err, "path", strings.Join(c.path[:i+1], "."))
		}
		current = next
	}
	return current, nil
}

// decodeRecord converts one wire record into a domain bundle.
func (c *Codec) decodeRecord(record bundleRecord) (domain.Bundle, error) {
	if err := domain.ValidateBundleName(record.Name); err != nil {
		return domain.Bundle{}, err
	}

	bundle := domain.NewBundle(record.Name, record.Dependencies)
	for key, value := range record.Hashes {
		platform, err := domain.ParsePlatform(key)
		if err != nil {
			return domain.Bundle{}, zerr.With(err, "bundle", record.Name)
		}
		hash, err := c.parseHash(value)
		if err != nil {
			err = zerr.With(err, "bundle", record.Name)
			return domain.Bundle{}, zerr.With(err, "platform", key)
		}
		bundle.Hashes[platform] = hash
	}
	return bundle, nil
}

// sortedDependencies returns a sorted, deduplicated, never-nil copy so
// an empty dependency list encodes as [] rather than null.
func sortedDependencies(deps []string) []string {
	sorted := make([]string, 0, len(deps))
	sorted = append(sorted, deps...)
	slices.Sort(sorted)
	return slices.Compact(sorted)
}
