package dataset

import (
	"bytes"
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Encoding names reported by DecodeText.
const (
	EncodingUTF8        = "utf-8"
	EncodingUTF8BOM     = "utf-8-bom"
	EncodingUTF16LE     = "utf-16le"
	EncodingUTF16BE     = "utf-16be"
	EncodingWindows1252 = "windows-1252"
)

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

// DecodeText converts raw file bytes to a UTF-8 string. A UTF-8 or UTF-16
// byte order mark selects the decoder and is removed; unmarked input that
// is not valid UTF-8 is read as Windows-1252.
func DecodeText(data []byte) (string, string, error) {
	var name string
	switch {
	case bytes.HasPrefix(data, bomUTF8):
		name = EncodingUTF8BOM
	case bytes.HasPrefix(data, bomUTF16LE):
		name = EncodingUTF16LE
	case bytes.HasPrefix(data, bomUTF16BE):
		name = EncodingUTF16BE
	case utf8.Valid(data):
		return string(data), EncodingUTF8, nil
	default:
		out, _, err := transform.Bytes(charmap.Windows1252.NewDecoder(), data)
		if err != nil {
			return "", "", fmt.Errorf("%w: %v", ErrDecode, err)
		}
		return string(out), EncodingWindows1252, nil
	}

	out, _, err := transform.Bytes(unicode.BOMOverride(unicode.UTF8.NewDecoder()), data)
	if err != nil {
		return "", "", fmt.Errorf("%w: %s: %v", ErrDecode, name, err)
	}
	return string(out), name, nil
}
