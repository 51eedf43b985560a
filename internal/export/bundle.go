package export

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/klauspost/compress/zip"

	"github.com/alnah/go-docmerge/internal/dateutil"
)

// DefaultBundleName produces documents-YYYY-MM-DD.zip.
const DefaultBundleName = "documents-{date}"

// File is one exported document.
type File struct {
	Name string
	Data []byte
}

// Bundle returns the single file unchanged, or packs several files into
// documents-YYYY-MM-DD.zip dated by now in UTC.
func Bundle(files []File, now time.Time) (File, error) {
	return BundleNamed(files, DefaultBundleName, now)
}

// BundleNamed is Bundle with a custom archive name. A "{date}" placeholder
// in name is replaced by the ISO date. "auto" and "auto:FORMAT" are
// resolved as date patterns. The ".zip"
// extension is added when missing.
func BundleNamed(files []File, name string, now time.Time) (File, error) {
	switch len(files) {
	case 0:
		return File{}, ErrNoArtifacts
	case 1:
		return files[0], nil
	}

	archiveName, err := bundleName(name, now.UTC())
	if err != nil {
		return File{}, fmt.Errorf("%w: %v", ErrBundle, err)
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, f := range files {
		w, err := zw.CreateHeader(&zip.FileHeader{
			Name:     f.Name,
			Method:   zip.Deflate,
			Modified: now,
		})
		if err != nil {
			return File{}, fmt.Errorf("%w: %v", ErrBundle, err)
		}
		if _, err := w.Write(f.Data); err != nil {
			return File{}, fmt.Errorf("%w: %v", ErrBundle, err)
		}
	}
	if err := zw.Close(); err != nil {
		return File{}, fmt.Errorf("%w: %v", ErrBundle, err)
	}

	return File{Name: archiveName, Data: buf.Bytes()}, nil
}

func bundleName(name string, now time.Time) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		name = DefaultBundleName
	}
	name = strings.ReplaceAll(name, "{date}", now.Format(time.DateOnly))

	resolved := name
	if lower := strings.ToLower(name); lower == "auto" || strings.HasPrefix(lower, "auto:") {
		var err error
		if resolved, err = dateutil.ResolveDate(name, now); err != nil {
			return "", err
		}
	}
	if !strings.HasSuffix(strings.ToLower(resolved), ".zip") {
		resolved += ".zip"
	}
	return resolved, nil
}
