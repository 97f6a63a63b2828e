// Package resume normalizes raw resume documents into the canonical form
// consumed by the scoring engine, and flattens them into plain text for
// readability and keyword-coverage analysis.
package resume

import (
	"sort"
	"strings"

	"github.com/tmorita/ats-analytics/internal/types"
)

// FlattenDocument flattens a raw resume document into its text corpus.
func FlattenDocument(doc types.ResumeDocument) string {
	return Flatten(map[string]any(doc))
}

// Flatten converts any JSON-like value into a single space-joined string
// containing every string leaf and every object key, recursively. It is a
// total function: nil and unsupported types map to the empty string.
//
// Object keys are visited in sorted order so output is deterministic for
// map inputs; list order is preserved.
func Flatten(v any) string {
	var parts []string
	collect(v, &parts)
	return strings.Join(parts, " ")
}

func collect(v any, parts *[]string) {
	switch val := v.(type) {
	case nil:
		return
	case string:
		if val != "" {
			*parts = append(*parts, val)
		}
	case []any:
		for _, item := range val {
			collect(item, parts)
		}
	case []string:
		for _, item := range val {
			if item != "" {
				*parts = append(*parts, item)
			}
		}
	case map[string]any:
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			if k != "" {
				*parts = append(*parts, k)
			}
			collect(val[k], parts)
		}
	}
	// Numbers and booleans carry no text and are skipped.
}
