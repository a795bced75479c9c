package arr

import (
	"strconv"
	"strings"
)

// ─────────────────────────────────────────────────────────────────────────────
// Dot-notation lookup for decoded documents
//
// These functions walk values produced by a YAML or JSON decoder
// (map[string]any, map[any]any and []any) using dot-separated paths.
// A segment that addresses a list must be a decimal index; negative indices
// count from the end.
//
//	doc := map[string]any{
//	    "data": map[string]any{
//	        "items": []any{"A", "B", "C"},
//	    },
//	}
//
//	Get(doc, "data.items")    → []any{"A", "B", "C"}
//	Get(doc, "data.items.-1") → "C"
//	Has(doc, "data.missing")  → false
// ─────────────────────────────────────────────────────────────────────────────

// Get retrieves the value at the dot-notation path inside doc.
// An empty path returns doc itself.
// Returns def[0] (or nil) when the path does not resolve.
func Get(doc any, path string, def ...any) any {
	v, ok := lookup(doc, path)
	if !ok {
		if len(def) > 0 {
			return def[0]
		}
		return nil
	}
	return v
}

// Has reports whether the dot-notation path resolves inside doc.
func Has(doc any, path string) bool {
	_, ok := lookup(doc, path)
	return ok
}

func lookup(doc any, path string) (any, bool) {
	if path == "" {
		return doc, true
	}
	current := doc
	for _, seg := range strings.Split(path, ".") {
		next, ok := step(current, seg)
		if !ok {
			return nil, false
		}
		current = next
	}
	return current, true
}

func step(current any, seg string) (any, bool) {
	switch node := current.(type) {
	case map[string]any:
		v, ok := node[seg]
		return v, ok
	case map[any]any:
		v, ok := node[seg]
		return v, ok
	case []any:
		n, err := strconv.Atoi(seg)
		if err != nil {
			return nil, false
		}
		i, ok := Index(len(node), n)
		if !ok {
			return nil, false
		}
		return node[i], true
	default:
		return nil, false
	}
}
