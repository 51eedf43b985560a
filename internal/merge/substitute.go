package merge

import (
	"html"
	"regexp"
	"strings"
)

var (
	tokenPattern   = regexp.MustCompile(`\{\{\s*([\w.]+)\s*\}\}`)
	unsafeFilename = regexp.MustCompile(`[/\\?%*:|"<>]`)
	repeatedUnder  = regexp.MustCompile(`_{2,}`)
)

// DefaultFilename is used when neither the pattern nor the fallback yields a
// usable name.
const DefaultFilename = "document"

// Substitute replaces every {{path}} token in text with the HTML-escaped
// formatted value of that path in record. Unresolved paths become "".
func Substitute(text string, record map[string]any) string {
	return substitute(text, record, html.EscapeString)
}

// SubstituteRaw is Substitute without HTML escaping.
func SubstituteRaw(text string, record map[string]any) string {
	return substitute(text, record, nil)
}

func substitute(text string, record map[string]any, escape func(string) string) string {
	if !strings.Contains(text, "{{") {
		return text
	}
	return tokenPattern.ReplaceAllStringFunc(text, func(match string) string {
		sub := tokenPattern.FindStringSubmatch(match)
		v := FormatValue(Lookup(record, sub[1]))
		if escape != nil {
			return escape(v)
		}
		return v
	})
}

// RenderFilename expands pattern against record and sanitizes the result
// for use as a file name. An empty expansion falls back to fallback.
func RenderFilename(pattern string, record map[string]any, fallback string) string {
	base := strings.TrimSpace(SubstituteRaw(pattern, record))
	if base == "" {
		base = fallback
	}
	if name := sanitizeFilename(base); name != "" {
		return name
	}
	if name := sanitizeFilename(fallback); name != "" {
		return name
	}
	return DefaultFilename
}

func sanitizeFilename(s string) string {
	s = unsafeFilename.ReplaceAllString(s, "_")
	s = repeatedUnder.ReplaceAllString(s, "_")
	return strings.Trim(s, "_")
}
