package merge

import (
	"strconv"
	"strings"
)

// Lookup resolves a dotted path against a record. Each segment selects a
// map key; numeric segments also index into slices. A segment that cannot
// be resolved yields nil.
func Lookup(record map[string]any, path string) any {
	if record == nil {
		return nil
	}
	var cur any = record
	for _, seg := range strings.Split(path, ".") {
		switch v := cur.(type) {
		case map[string]any:
			next, ok := v[seg]
			if !ok {
				return nil
			}
			cur = next
		case []any:
			i, err := strconv.Atoi(seg)
			if err != nil || i < 0 || i >= len(v) {
				return nil
			}
			cur = v[i]
		default:
			return nil
		}
	}
	return cur
}
