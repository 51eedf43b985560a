package docmerge

import (
	"context"

	"github.com/alnah/go-docmerge/internal/content"
	"github.com/alnah/go-docmerge/internal/export"
)

// Exporter turns artifacts into files. It keeps one headless browser for
// PDF output until Close, and runs one batch at a time.
type Exporter struct {
	cfg   settings
	inner *export.Exporter
}

// NewExporter creates an Exporter. The browser is started on the first
// PDF export.
func NewExporter(opts ...Option) *Exporter {
	cfg := newSettings(opts)
	inner := []export.Option{
		export.WithLogger(cfg.logger),
		export.WithClock(cfg.now),
		export.WithTimeout(cfg.pdfTimeout),
	}
	if cfg.pdfRenderer != nil {
		inner = append(inner, export.WithPDFRenderer(cfg.pdfRenderer))
	}
	return &Exporter{cfg: cfg, inner: export.New(inner...)}
}

// Export encodes artifacts in format. PDF pages take their size,
// orientation and margins from tmpl; a nil tmpl uses the defaults. Each
// file is named from its artifact with the format's extension, and
// repeated names get _2, _3 and so on.
func (e *Exporter) Export(ctx context.Context, artifacts []Artifact, tmpl *TemplateDoc, format Format) ([]File, error) {
	page := content.DefaultPage()
	if tmpl != nil {
		page = tmpl.Page
	}
	docs := make([]export.Document, len(artifacts))
	for i, a := range artifacts {
		docs[i] = export.Document{Name: a.Filename, Title: a.Filename, HTML: a.HTML}
	}
	return e.inner.Export(ctx, docs, format, page)
}

// Bundle returns a single file unchanged and zips several into one
// archive. The archive is named by WithBundleName: "{date}" expands to
// the current UTC date, "auto" and "auto:FORMAT" are date patterns, and
// the default is documents-YYYY-MM-DD.zip.
func (e *Exporter) Bundle(files []File) (File, error) {
	return export.BundleNamed(files, e.cfg.bundleName, e.cfg.now().UTC())
}

// Close stops the browser, if one was started.
func (e *Exporter) Close() error {
	return e.inner.Close()
}
