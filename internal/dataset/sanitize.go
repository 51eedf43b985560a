package dataset

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
	"unicode"
)

// SanitizeValue normalizes a raw cell value for storage. Strings lose NUL
// bytes and trailing whitespace; numbers, booleans and times pass through;
// maps and slices are deep-copied; nil becomes ""; anything else is
// stringified.
func SanitizeValue(v any) any {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return sanitizeString(x)
	case bool, time.Time,
		float64, float32, int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64:
		return x
	case json.Number:
		return x
	case map[string]any:
		return cloneMap(x)
	case []any:
		return cloneSlice(x)
	default:
		return sanitizeString(fmt.Sprint(x))
	}
}

func sanitizeString(s string) string {
	s = strings.ReplaceAll(s, "\x00", "")
	return strings.TrimRightFunc(s, unicode.IsSpace)
}

func cloneMap(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneSlice(s []any) []any {
	out := make([]any, len(s))
	for i, v := range s {
		out[i] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch x := v.(type) {
	case map[string]any:
		return cloneMap(x)
	case []any:
		return cloneSlice(x)
	default:
		return x
	}
}
