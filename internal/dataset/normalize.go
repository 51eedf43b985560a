package dataset

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// fallbackKey replaces headers that normalize to nothing.
const fallbackKey = "field"

var (
	nonWordRun         = regexp.MustCompile(`[^\p{L}\p{Nd}]+`)
	repeatedUnderscore = regexp.MustCompile(`_{2,}`)
)

// NormalizeHeader turns a raw header into a field key: runs of characters
// that are not letters or digits become "_", edge underscores are stripped,
// and the result is lowercased. Empty results become "field".
func NormalizeHeader(raw string) string {
	key := strings.TrimSpace(raw)
	key = nonWordRun.ReplaceAllString(key, "_")
	key = repeatedUnderscore.ReplaceAllString(key, "_")
	key = strings.Trim(key, "_")
	// Casers are stateful; one per call.
	key = cases.Lower(language.Und).String(key)
	if key == "" {
		return fallbackKey
	}
	return key
}

// UniqueKeys normalizes headers and resolves collisions by appending
// _1, _2, ... to later duplicates. Suffixed keys are checked too, so
// "name", "name", "name_1" becomes name, name_1, name_1_1.
func UniqueKeys(headers []string) []HeaderMapping {
	taken := make(map[string]bool, len(headers))
	mappings := make([]HeaderMapping, len(headers))

	for i, h := range headers {
		base := NormalizeHeader(h)
		key := base
		for n := 1; taken[key]; n++ {
			key = base + "_" + strconv.Itoa(n)
		}
		taken[key] = true
		mappings[i] = HeaderMapping{Original: h, Key: key}
	}
	return mappings
}

// truncateRunes cuts s to at most max runes and reports whether it did.
func truncateRunes(s string, max int) (string, bool) {
	if utf8.RuneCountInString(s) <= max {
		return s, false
	}
	n := 0
	for i := range s {
		if n == max {
			return s[:i], true
		}
		n++
	}
	return s, false
}
