package fileutil_test

// Notes:
// - The write and close failure branches of WriteTempFile need a failing
//   disk and are not exercised.

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alnah/go-docmerge/internal/fileutil"
)

// ---------------------------------------------------------------------------
// TestValidateExtension - Extension Safety
// ---------------------------------------------------------------------------

func TestValidateExtension(t *testing.T) {
	t.Parallel()

	tests := []struct {
		extension string
		wantErr   error
	}{
		{"html", nil},
		{"", fileutil.ErrExtensionEmpty},
		{"../x", fileutil.ErrUnsafeName},
		{`..\x`, fileutil.ErrUnsafeName},
		{"html\x00exe", fileutil.ErrUnsafeName},
	}

	for _, tt := range tests {
		t.Run(tt.extension, func(t *testing.T) {
			t.Parallel()
			if err := fileutil.ValidateExtension(tt.extension); !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateExtension(%q) = %v, want %v", tt.extension, err, tt.wantErr)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestWriteTempFile - Temporary Files
// ---------------------------------------------------------------------------

func TestWriteTempFile(t *testing.T) {
	t.Parallel()

	path, cleanup, err := fileutil.WriteTempFile("<p>hi</p>", "html")
	if err != nil {
		t.Fatalf("WriteTempFile() unexpected error: %v", err)
	}

	if !strings.HasPrefix(filepath.Base(path), "docmerge-") || filepath.Ext(path) != ".html" {
		t.Errorf("temp path = %q, want docmerge-*.html", path)
	}
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading temp file: %v", err)
	}
	if string(got) != "<p>hi</p>" {
		t.Errorf("content = %q", got)
	}

	cleanup()
	if fileutil.FileExists(path) {
		t.Error("cleanup did not remove the file")
	}
}

func TestWriteTempFile_InvalidExtension(t *testing.T) {
	t.Parallel()

	if _, _, err := fileutil.WriteTempFile("x", "a/b"); !errors.Is(err, fileutil.ErrUnsafeName) {
		t.Errorf("WriteTempFile() error = %v, want ErrUnsafeName", err)
	}
}

// ---------------------------------------------------------------------------
// TestWriteOutput - Output Files
// ---------------------------------------------------------------------------

func TestWriteOutput(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "out", "nested")
	path, err := fileutil.WriteOutput(dir, "letter.pdf", []byte("data"))
	if err != nil {
		t.Fatalf("WriteOutput() unexpected error: %v", err)
	}
	if path != filepath.Join(dir, "letter.pdf") {
		t.Errorf("path = %q", path)
	}
	if !fileutil.FileExists(path) {
		t.Error("output file missing")
	}

	for _, name := range []string{"", "..", "../escape.pdf", "a\\b.pdf"} {
		if _, err := fileutil.WriteOutput(dir, name, nil); !errors.Is(err, fileutil.ErrUnsafeName) {
			t.Errorf("WriteOutput(%q) error = %v, want ErrUnsafeName", name, err)
		}
	}
}

// ---------------------------------------------------------------------------
// TestFileExists - Regular Files Only
// ---------------------------------------------------------------------------

func TestFileExists(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := filepath.Join(dir, "f.txt")
	if err := os.WriteFile(file, []byte("x"), 0o600); err != nil {
		t.Fatal(err)
	}

	if !fileutil.FileExists(file) {
		t.Error("FileExists(file) = false, want true")
	}
	if fileutil.FileExists(dir) {
		t.Error("FileExists(dir) = true, want false")
	}
	if fileutil.FileExists(filepath.Join(dir, "missing")) {
		t.Error("FileExists(missing) = true, want false")
	}
}
