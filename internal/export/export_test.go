package export

// Notes:
// - FileName / uniqueNamer: extension handling and batch-unique names
// - ParseFormat: accepted spellings and rejection
// - Exporter: format dispatch, PDF page geometry, cancellation, Close
// - HTMLToDOCX: package parts and block mapping
// - Bundle: single passthrough, zip naming and contents
// The PDF path uses mockPDFRenderer; no browser is started.

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/klauspost/compress/zip"

	"github.com/alnah/go-docmerge/internal/content"
)

type mockPDFRenderer struct {
	calls  []string
	pages  []content.Page
	err    error
	closed bool
}

func (m *mockPDFRenderer) RenderPDF(_ context.Context, htmlContent string, page content.Page) ([]byte, error) {
	m.calls = append(m.calls, htmlContent)
	m.pages = append(m.pages, page)
	if m.err != nil {
		return nil, m.err
	}
	return []byte("%PDF-" + htmlContent), nil
}

func (m *mockPDFRenderer) Close() error {
	m.closed = true
	return nil
}

var _ PDFRenderer = (*mockPDFRenderer)(nil)

var fixedNow = time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC)

func readZip(t *testing.T, data []byte) map[string]string {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("opening zip: %v", err)
	}
	files := make(map[string]string)
	for _, f := range zr.File {
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("opening %s: %v", f.Name, err)
		}
		b, err := io.ReadAll(rc)
		_ = rc.Close()
		if err != nil {
			t.Fatalf("reading %s: %v", f.Name, err)
		}
		files[f.Name] = string(b)
	}
	return files
}

// ---------------------------------------------------------------------------
// TestFileName - Extension Handling
// ---------------------------------------------------------------------------

func TestFileName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		base   string
		format Format
		want   string
	}{
		{"letter", FormatPDF, "letter.pdf"},
		{"letter.PDF", FormatPDF, "letter.pdf"},
		{"letter.html", FormatDOCX, "letter.docx"},
		{"v1.2", FormatHTML, "v1.2.html"},
		{"", FormatHTML, "document.html"},
	}

	for _, tt := range tests {
		t.Run(tt.base, func(t *testing.T) {
			t.Parallel()
			if got := FileName(tt.base, tt.format); got != tt.want {
				t.Errorf("FileName(%q, %s) = %q, want %q", tt.base, tt.format, got, tt.want)
			}
		})
	}
}

func TestUniqueNamer(t *testing.T) {
	t.Parallel()

	u := newUniqueNamer()
	got := []string{u.next("a.pdf"), u.next("A.pdf"), u.next("a.pdf"), u.next("b.pdf")}
	want := []string{"a.pdf", "A_2.pdf", "a_3.pdf", "b.pdf"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("name %d = %q, want %q", i, got[i], want[i])
		}
	}
}

// ---------------------------------------------------------------------------
// TestParseFormat - Format Names
// ---------------------------------------------------------------------------

func TestParseFormat(t *testing.T) {
	t.Parallel()

	for _, s := range []string{"pdf", " DOCX ", "Html"} {
		if _, err := ParseFormat(s); err != nil {
			t.Errorf("ParseFormat(%q) unexpected error: %v", s, err)
		}
	}
	if _, err := ParseFormat("odt"); !errors.Is(err, ErrInvalidFormat) {
		t.Errorf("ParseFormat(odt) error = %v, want ErrInvalidFormat", err)
	}
	if got := FormatPDF.MIMEType(); got != "application/pdf" {
		t.Errorf("FormatPDF.MIMEType() = %q", got)
	}
}

// ---------------------------------------------------------------------------
// TestExporter - Format Dispatch
// ---------------------------------------------------------------------------

func TestExporter_HTML(t *testing.T) {
	t.Parallel()

	e := New()
	files, err := e.Export(context.Background(), []Document{
		{Name: "a", HTML: "<p>1</p>"},
		{Name: "a", HTML: "<p>2</p>"},
	}, FormatHTML, content.DefaultPage())
	if err != nil {
		t.Fatalf("Export() unexpected error: %v", err)
	}
	if len(files) != 2 {
		t.Fatalf("Export() returned %d files, want 2", len(files))
	}
	if files[0].Name != "a.html" || files[1].Name != "a_2.html" {
		t.Errorf("names = %q, %q", files[0].Name, files[1].Name)
	}
	if string(files[1].Data) != "<p>2</p>" {
		t.Errorf("data = %q", files[1].Data)
	}
}

func TestExporter_PDF(t *testing.T) {
	t.Parallel()

	mock := &mockPDFRenderer{}
	e := New(WithPDFRenderer(mock), WithTimeout(time.Second))
	page := content.Page{Size: content.PageA4, Orientation: content.OrientationLandscape}

	files, err := e.Export(context.Background(), []Document{{Name: "x", HTML: "doc"}}, FormatPDF, page)
	if err != nil {
		t.Fatalf("Export() unexpected error: %v", err)
	}
	if files[0].Name != "x.pdf" || string(files[0].Data) != "%PDF-doc" {
		t.Errorf("file = %+v", files[0])
	}
	if len(mock.pages) != 1 || mock.pages[0] != page {
		t.Errorf("renderer got pages %+v, want %+v", mock.pages, page)
	}

	if err := e.Close(); err != nil {
		t.Errorf("Close() unexpected error: %v", err)
	}
	if !mock.closed {
		t.Error("Close() did not close the renderer")
	}
}

func TestExporter_PDFError(t *testing.T) {
	t.Parallel()

	mock := &mockPDFRenderer{err: ErrPageLoad}
	e := New(WithPDFRenderer(mock))
	_, err := e.Export(context.Background(), []Document{{Name: "x", HTML: "doc"}}, FormatPDF, content.DefaultPage())
	if !errors.Is(err, ErrPageLoad) {
		t.Errorf("Export() error = %v, want ErrPageLoad", err)
	}
}

func TestExporter_Errors(t *testing.T) {
	t.Parallel()

	e := New()
	if _, err := e.Export(context.Background(), nil, FormatHTML, content.DefaultPage()); !errors.Is(err, ErrNoArtifacts) {
		t.Errorf("empty batch error = %v, want ErrNoArtifacts", err)
	}
	if _, err := e.Export(context.Background(), []Document{{}}, Format("odt"), content.DefaultPage()); !errors.Is(err, ErrInvalidFormat) {
		t.Errorf("bad format error = %v, want ErrInvalidFormat", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	files, err := e.Export(ctx, []Document{{Name: "a"}}, FormatHTML, content.DefaultPage())
	if !errors.Is(err, context.Canceled) {
		t.Errorf("canceled error = %v, want context.Canceled", err)
	}
	if len(files) != 0 {
		t.Errorf("canceled export returned %d files", len(files))
	}

	if err := e.Close(); err != nil {
		t.Errorf("Close() without renderer: %v", err)
	}
}

// ---------------------------------------------------------------------------
// TestHTMLToDOCX - WordprocessingML Package
// ---------------------------------------------------------------------------

func TestHTMLToDOCX(t *testing.T) {
	t.Parallel()

	src := `<!DOCTYPE html><html><head><title>t</title><style>p{}</style></head><body>` +
		`<article class="dm-document">` +
		`<h2 style="text-align: center">Hello &amp; welcome</h2>` +
		`<p>Dear <strong>Ada</strong>, see <a href="https://example.com/?a=1&amp;b=2">site</a></p>` +
		`<ul><li><p>one</p></li><li><p>two</p></li></ul>` +
		`<table><tbody><tr><th colspan="2">Head</th></tr><tr><td>a</td><td>b</td></tr></tbody></table>` +
		`<pre><code>line1
line2</code></pre>` +
		`</article></body></html>`

	data, err := HTMLToDOCX(src, "Letter <Ada>", fixedNow)
	if err != nil {
		t.Fatalf("HTMLToDOCX() unexpected error: %v", err)
	}
	parts := readZip(t, data)

	for _, name := range []string{
		"[Content_Types].xml", "_rels/.rels", "docProps/core.xml",
		"word/document.xml", "word/styles.xml", "word/numbering.xml", "word/_rels/document.xml.rels",
	} {
		if _, ok := parts[name]; !ok {
			t.Errorf("missing part %s", name)
		}
	}

	doc := parts["word/document.xml"]
	for _, want := range []string{
		`<w:pStyle w:val="Heading2"/>`,
		`<w:jc w:val="center"/>`,
		`Hello &amp; welcome`,
		`<w:b/></w:rPr><w:t xml:space="preserve">Ada</w:t>`,
		`<w:hyperlink r:id="rId3">`,
		`<w:numId w:val="1"/>`,
		`<w:gridSpan w:val="2"/>`,
		`<w:pStyle w:val="Code"/>`,
		`<w:br/>`,
	} {
		if !strings.Contains(doc, want) {
			t.Errorf("document.xml missing %q", want)
		}
	}
	if strings.Contains(doc, "p{}") {
		t.Error("style element content leaked into the document")
	}

	rels := parts["word/_rels/document.xml.rels"]
	if !strings.Contains(rels, `Target="https://example.com/?a=1&amp;b=2"`) {
		t.Errorf("hyperlink relationship missing: %s", rels)
	}
	if core := parts["docProps/core.xml"]; !strings.Contains(core, "<dc:title>Letter &lt;Ada&gt;</dc:title>") ||
		!strings.Contains(core, "2025-03-14T10:00:00Z") {
		t.Errorf("core properties = %s", core)
	}
}

// ---------------------------------------------------------------------------
// TestBundle - Zip Packaging
// ---------------------------------------------------------------------------

func TestBundle(t *testing.T) {
	t.Parallel()

	single := File{Name: "a.pdf", Data: []byte("x")}
	got, err := Bundle([]File{single}, fixedNow)
	if err != nil {
		t.Fatalf("Bundle(single) unexpected error: %v", err)
	}
	if got.Name != "a.pdf" {
		t.Errorf("single file name = %q, want a.pdf", got.Name)
	}

	if _, err := Bundle(nil, fixedNow); !errors.Is(err, ErrNoArtifacts) {
		t.Errorf("Bundle(nil) error = %v, want ErrNoArtifacts", err)
	}

	bundle, err := Bundle([]File{single, {Name: "b.pdf", Data: []byte("yy")}}, fixedNow)
	if err != nil {
		t.Fatalf("Bundle() unexpected error: %v", err)
	}
	if bundle.Name != "documents-2025-03-14.zip" {
		t.Errorf("bundle name = %q", bundle.Name)
	}
	entries := readZip(t, bundle.Data)
	if entries["a.pdf"] != "x" || entries["b.pdf"] != "yy" {
		t.Errorf("bundle entries = %v", entries)
	}
}

func TestBundleNamed(t *testing.T) {
	t.Parallel()

	files := []File{{Name: "a"}, {Name: "b"}}
	tests := []struct {
		name string
		want string
	}{
		{"", "documents-2025-03-14.zip"},
		{"letters", "letters.zip"},
		{"letters.ZIP", "letters.ZIP"},
		{"auto:compact", "20250314.zip"},
		{"run-{date}", "run-2025-03-14.zip"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := BundleNamed(files, tt.name, fixedNow)
			if err != nil {
				t.Fatalf("BundleNamed(%q) unexpected error: %v", tt.name, err)
			}
			if got.Name != tt.want {
				t.Errorf("BundleNamed(%q) name = %q, want %q", tt.name, got.Name, tt.want)
			}
		})
	}

	if _, err := BundleNamed(files, "auto:[bad", fixedNow); !errors.Is(err, ErrBundle) {
		t.Errorf("bad pattern error = %v, want ErrBundle", err)
	}
}
