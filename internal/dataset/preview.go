package dataset

import "strings"

// DefaultPreviewLimit is the number of rows Preview returns by default.
const DefaultPreviewLimit = 100

// Preview returns at most limit leading rows (DefaultPreviewLimit when limit <= 0).
func Preview(ds *Dataset, limit int) []Record {
	if ds == nil {
		return nil
	}
	if limit <= 0 {
		limit = DefaultPreviewLimit
	}
	return ds.Rows[:min(limit, len(ds.Rows))]
}

// SampleValue returns the first non-empty value of key, or nil.
func SampleValue(ds *Dataset, key string) any {
	if ds == nil {
		return nil
	}
	for _, r := range ds.Rows {
		v, ok := r[key]
		if !ok || v == nil {
			continue
		}
		if s, isStr := v.(string); isStr && strings.TrimSpace(s) == "" {
			continue
		}
		return v
	}
	return nil
}

// FormatFieldType returns a display label such as "Currency".
func FormatFieldType(t FieldType) string {
	s := string(t)
	if s == "" {
		return ""
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// FilterFields returns fields whose label, key or type label contains query,
// case-insensitively. An empty query returns all fields.
func FilterFields(fields []Field, query string) []Field {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return fields
	}
	var out []Field
	for _, f := range fields {
		for _, s := range []string{f.Label, f.Key, FormatFieldType(f.Type)} {
			if strings.Contains(strings.ToLower(s), q) {
				out = append(out, f)
				break
			}
		}
	}
	return out
}
