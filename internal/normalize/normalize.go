// Package normalize rewrites identifier fields in document-shaped tool
// arguments into MongoDB's native ObjectID type.
package normalize

import (
	"strings"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Document normalizes an arbitrary nested value decoded from JSON. For every
// map key equal to "_id" or ending in "Id", a string value of exactly 24
// lowercase hex characters is replaced by the equivalent bson.ObjectID; all
// other values pass through untouched. The input is never mutated and the
// transform never fails.
//
// The "Id" suffix match is a heuristic: a field like "buildId" holding an
// unrelated 24-hex string is converted too, and identifier fields with other
// names (e.g. "ref") are not. Tool consumers depend on exactly this behavior,
// so it is intentionally not configurable.
func Document(v any) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, elem := range val {
			if isIDKey(k) {
				out[k] = coerceID(elem)
				continue
			}
			switch elem.(type) {
			case map[string]any, []any:
				out[k] = Document(elem)
			default:
				out[k] = elem
			}
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, elem := range val {
			out[i] = Document(elem)
		}
		return out
	default:
		// nil and scalars are returned as-is
		return v
	}
}

// isIDKey reports whether a map key names an identifier field
func isIDKey(key string) bool {
	return key == "_id" || strings.HasSuffix(key, "Id")
}

// coerceID converts a valid 24-character lowercase hex string into an
// ObjectID. Anything else, including values that are already ObjectIDs,
// arrays, or non-conforming strings, is returned unchanged.
func coerceID(v any) any {
	s, ok := v.(string)
	if !ok {
		return v
	}
	if !isHex24(s) {
		return v
	}
	oid, err := bson.ObjectIDFromHex(s)
	if err != nil {
		return v
	}
	return oid
}

func isHex24(s string) bool {
	if len(s) != 24 {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return false
		}
	}
	return true
}
