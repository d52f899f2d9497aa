package ado

import (
	"encoding/json"
	"strings"
)

// GetField resolves a dotted field path against a record's field map.
//
// Intermediate string values are tentatively decoded as JSON when more
// segments remain, so API fields that serialize nested data as JSON
// strings project transparently. A failed decode keeps the string as-is,
// which then fails the next segment lookup. The final segment is always
// returned raw, even when it happens to contain JSON.
func GetField(fields map[string]any, path string) (any, error) {
	segments := strings.Split(path, ".")

	var current any = fields

	for i, segment := range segments {
		m, ok := current.(map[string]any)
		if !ok {
			return nil, &FieldError{Path: path}
		}

		current, ok = m[segment]
		if !ok {
			return nil, &FieldError{Path: path}
		}

		if s, isString := current.(string); isString && i < len(segments)-1 {
			var decoded any
			if err := json.Unmarshal([]byte(s), &decoded); err == nil {
				current = decoded
			}
		}
	}

	return current, nil
}
