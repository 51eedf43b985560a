package export

import (
	"path/filepath"
	"strconv"
	"strings"
)

// knownExtensions are stripped from a name before the format's extension
// is added. Other dotted suffixes are part of the name.
var knownExtensions = map[string]bool{
	".pdf":  true,
	".docx": true,
	".html": true,
	".htm":  true,
}

// FileName returns base with the extension for format, replacing a trailing
// known document extension.
func FileName(base string, format Format) string {
	if ext := filepath.Ext(base); knownExtensions[strings.ToLower(ext)] {
		base = strings.TrimSuffix(base, ext)
	}
	if base == "" {
		base = "document"
	}
	return base + format.Extension()
}

// uniqueNamer hands out names that are unique within one batch. Repeats get
// _2, _3 and so on before the extension. Comparison ignores case so that
// the names are also distinct on case-insensitive filesystems.
type uniqueNamer struct {
	seen map[string]bool
}

func newUniqueNamer() *uniqueNamer {
	return &uniqueNamer{seen: make(map[string]bool)}
}

func (u *uniqueNamer) next(name string) string {
	ext := filepath.Ext(name)
	stem := strings.TrimSuffix(name, ext)
	candidate := name
	for n := 2; u.seen[strings.ToLower(candidate)]; n++ {
		candidate = stem + "_" + strconv.Itoa(n) + ext
	}
	u.seen[strings.ToLower(candidate)] = true
	return candidate
}
