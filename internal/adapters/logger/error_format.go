package logger

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
)

// messager describes an error that can report its own message without the chain.
// This matches the Message() method provided by zerr.Error (go.trai.ch/zerr v0.3.0+).
// If zerr's API changes, errors will gracefully fall back to standard error handling.
type messager interface {
	Message() string
}

// metadater describes an error carrying structured metadata, matching
// the Metadata() method of zerr.Error.
type metadater interface {
	Metadata() map[string]any
}

// ErrorEntry is one link of an error chain: the link's own message plus
// any metadata attached to it. Metadata is nil for errors outside zerr.
type ErrorEntry struct {
	Message  string
	Metadata map[string]any
}

// collectErrorEntries flattens err's unwrap chain into display entries.
// Each zerr link contributes its raw message and metadata; the first
// non-zerr error terminates the walk with its full Error() text, since
// plain errors cannot separate their message from their cause.
func collectErrorEntries(err error) []ErrorEntry {
	var entries []ErrorEntry

	for current := err; current != nil; {
		m, ok := current.(messager)
		if !ok {
			entries = append(entries, ErrorEntry{Message: current.Error()})
			break
		}

		entry := ErrorEntry{Message: m.Message(), Metadata: map[string]any{}}
		if md, ok := current.(metadater); ok {
			maps.Copy(entry.Metadata, md.Metadata())
		}
		entries = append(entries, entry)

		current = errors.Unwrap(current)
	}

	return entries
}

// formatErrorEntries renders collected entries hierarchically: the main
// error first, then each cause behind an arrow, with metadata lines
// indented under the message they belong to.
func formatErrorEntries(entries []ErrorEntry) string {
	var lines []string

	for i, entry := range entries {
		msgLines := strings.Split(entry.Message, "\n")

		if i == 0 {
			lines = append(lines, "Error: "+msgLines[0])
			for _, line := range msgLines[1:] {
				lines = append(lines, "       "+line)
			}
			lines = append(lines, metadataLines(entry.Metadata, "       ")...)
			continue
		}

		if i == 1 {
			lines = append(lines, "", "  Caused by:")
		}
		lines = append(lines, "    → "+msgLines[0])
		for _, line := range msgLines[1:] {
			lines = append(lines, "      "+line)
		}
		lines = append(lines, metadataLines(entry.Metadata, "      ")...)
	}

	return strings.Join(lines, "\n")
}

// metadataLines renders metadata key/value pairs sorted by key.
func metadataLines(metadata map[string]any, indent string) []string {
	keys := slices.Sorted(maps.Keys(metadata))

	lines := make([]string, 0, len(keys))
	for _, key := range keys {
		lines = append(lines, fmt.Sprintf("%s%s: %v", indent, key, metadata[key]))
	}
	return lines
}
