package dataset

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    []byte
		want     string
		encoding string
	}{
		{"plain utf-8", []byte("a,b\n"), "a,b\n", EncodingUTF8},
		{"utf-8 bom", append([]byte{0xEF, 0xBB, 0xBF}, "a,b"...), "a,b", EncodingUTF8BOM},
		{"utf-16le bom", []byte{0xFF, 0xFE, 'a', 0x00, ',', 0x00, 'b', 0x00}, "a,b", EncodingUTF16LE},
		{"utf-16be bom", []byte{0xFE, 0xFF, 0x00, 'a', 0x00, ',', 0x00, 'b'}, "a,b", EncodingUTF16BE},
		{"windows-1252 fallback", []byte{'c', 'a', 'f', 0xE9}, "café", EncodingWindows1252},
		{"empty", []byte{}, "", EncodingUTF8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, enc, err := DecodeText(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.encoding, enc)
		})
	}
}

func TestImport_Dispatch(t *testing.T) {
	t.Parallel()

	res, err := Import("people.CSV", []byte("name\nAda\n"), DefaultLimits())
	require.NoError(t, err)
	assert.Equal(t, "people.CSV", res.Dataset.SourceMeta.Name)
	assert.Equal(t, int64(9), res.Dataset.SourceMeta.Size)
	assert.Equal(t, SourceCSV, res.Dataset.SourceMeta.Type)

	res, err = Import("people.json", []byte(`[{"name":"Ada"}]`), DefaultLimits())
	require.NoError(t, err)
	assert.Equal(t, SourceJSON, res.Dataset.SourceMeta.Type)

	_, err = Import("people.txt", []byte("name\nAda\n"), DefaultLimits())
	assert.ErrorIs(t, err, ErrUnsupportedFileType)
}

func TestImport_UTF16CSV(t *testing.T) {
	t.Parallel()

	// "name\nZoé\n" as UTF-16LE with BOM.
	data := []byte{0xFF, 0xFE}
	for _, r := range "name\nZoé\n" {
		data = append(data, byte(r), byte(r>>8))
	}

	res, err := Import("names.csv", data, DefaultLimits())
	require.NoError(t, err)
	require.Len(t, res.Dataset.Rows, 1)
	assert.Equal(t, "Zoé", res.Dataset.Rows[0]["name"])
}

func TestImportFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "data.csv")
	require.NoError(t, os.WriteFile(path, []byte("id,amount\n1,$5.00\n2,$7.50\n"), 0o600))

	before := time.Now().UTC().Add(-time.Second)
	res, err := ImportFile(path, DefaultLimits())
	require.NoError(t, err)

	assert.Equal(t, "data.csv", res.Dataset.SourceMeta.Name)
	assert.True(t, res.Dataset.SourceMeta.ImportedAt.After(before))
	assert.Equal(t, TypeCurrency, res.Dataset.Fields[1].Type)

	_, err = ImportFile(filepath.Join(dir, "missing.csv"), DefaultLimits())
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestSanitizeValue(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "ab", SanitizeValue("a\x00b \t\n"))
	assert.Equal(t, "  lead", SanitizeValue("  lead"))
	assert.Equal(t, "", SanitizeValue(nil))
	assert.Equal(t, 3.5, SanitizeValue(3.5))
	assert.Equal(t, true, SanitizeValue(true))

	orig := map[string]any{"inner": []any{"x"}}
	clone := SanitizeValue(orig).(map[string]any)
	clone["inner"].([]any)[0] = "changed"
	assert.Equal(t, "x", orig["inner"].([]any)[0])

	type custom struct{ A int }
	assert.Equal(t, "{1}", SanitizeValue(custom{A: 1}))
}

func TestPreviewAndSamples(t *testing.T) {
	t.Parallel()

	ds := &Dataset{
		Fields: []Field{
			{Key: "name", Label: "Name", Type: TypeString},
			{Key: "total", Label: "Total Due", Type: TypeCurrency},
		},
	}
	for i := range 150 {
		name := ""
		if i == 3 {
			name = "Dora"
		}
		ds.Rows = append(ds.Rows, Record{"name": name, "total": "$1.00"})
	}

	assert.Len(t, Preview(ds, 0), DefaultPreviewLimit)
	assert.Len(t, Preview(ds, 10), 10)
	assert.Equal(t, "Dora", SampleValue(ds, "name"))
	assert.Nil(t, SampleValue(ds, "missing"))

	assert.Equal(t, "Currency", FormatFieldType(TypeCurrency))
	assert.Len(t, FilterFields(ds.Fields, ""), 2)
	assert.Equal(t, "total", FilterFields(ds.Fields, "due")[0].Key)
	assert.Equal(t, "total", FilterFields(ds.Fields, "CURRENCY")[0].Key)
	assert.Empty(t, FilterFields(ds.Fields, "zzz"))
}
