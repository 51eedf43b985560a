// Package dateutil formats timestamps from user-facing date patterns such
// as "YYYY-MM-DD", used for bundle names and filename stamps.
package dateutil

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidDateFormat indicates a pattern that cannot be converted.
var ErrInvalidDateFormat = errors.New("invalid date format")

// MaxDateFormatLength bounds pattern length.
const MaxDateFormatLength = 50

// DefaultDateFormat applies to a bare "auto".
const DefaultDateFormat = "YYYY-MM-DD"

// Tokens are matched longest first.
var dateTokens = []struct {
	token  string
	layout string
}{
	{"YYYY", "2006"},
	{"MMMM", "January"},
	{"MMM", "Jan"},
	{"YY", "06"},
	{"MM", "01"},
	{"DD", "02"},
	{"HH", "15"},
	{"mm", "04"},
	{"ss", "05"},
	{"M", "1"},
	{"D", "2"},
}

// DatePresets are named patterns accepted after "auto:".
var DatePresets = map[string]string{
	"iso":      "YYYY-MM-DD",
	"compact":  "YYYYMMDD",
	"stamp":    "YYYYMMDD-HHmmss",
	"european": "DD-MM-YYYY",
	"us":       "MM-DD-YYYY",
}

// ParseDateFormat converts a pattern into a Go time layout. Text inside
// brackets is literal; other characters that are not tokens are kept.
func ParseDateFormat(format string) (string, error) {
	if format == "" {
		return "", fmt.Errorf("%w: format cannot be empty", ErrInvalidDateFormat)
	}
	if len(format) > MaxDateFormatLength {
		return "", fmt.Errorf("%w: format exceeds %d characters", ErrInvalidDateFormat, MaxDateFormatLength)
	}

	var out strings.Builder
	for i := 0; i < len(format); {
		if format[i] == '[' {
			end := strings.IndexByte(format[i+1:], ']')
			if end < 0 {
				return "", fmt.Errorf("%w: unclosed bracket at position %d", ErrInvalidDateFormat, i)
			}
			out.WriteString(format[i+1 : i+1+end])
			i += end + 2
			continue
		}
		i += writeToken(&out, format[i:])
	}
	return out.String(), nil
}

// writeToken writes the layout for the token at the start of s, or its
// first byte, and returns how many bytes were consumed.
func writeToken(out *strings.Builder, s string) int {
	for _, t := range dateTokens {
		if strings.HasPrefix(s, t.token) {
			out.WriteString(t.layout)
			return len(t.token)
		}
	}
	out.WriteByte(s[0])
	return 1
}

// ResolveDate expands "auto" (DefaultDateFormat) and "auto:PATTERN" or
// "auto:PRESET" against t. Any other value is returned unchanged.
func ResolveDate(value string, t time.Time) (string, error) {
	lower := strings.ToLower(value)
	if !strings.HasPrefix(lower, "auto") {
		return value, nil
	}

	pattern := DefaultDateFormat
	switch {
	case lower == "auto":
	case strings.HasPrefix(lower, "auto:"):
		pattern = value[len("auto:"):]
		if pattern == "" {
			return "", fmt.Errorf("%w: format cannot be empty after \"auto:\"", ErrInvalidDateFormat)
		}
		if preset, ok := DatePresets[strings.ToLower(pattern)]; ok {
			pattern = preset
		}
	default:
		return "", fmt.Errorf("%w: invalid auto syntax %q, use \"auto\" or \"auto:FORMAT\"", ErrInvalidDateFormat, value)
	}

	layout, err := ParseDateFormat(pattern)
	if err != nil {
		return "", err
	}
	return t.Format(layout), nil
}
