package docmerge

import (
	"io"
	"log/slog"
	"time"

	"github.com/alnah/go-docmerge/internal/export"
)

// PDFRenderer prints a standalone HTML page to PDF. The default renderer
// drives headless Chrome.
type PDFRenderer = export.PDFRenderer

// settings is shared by NewGenerator and NewExporter; each reads the
// fields it needs.
type settings struct {
	logger         *slog.Logger
	style          string
	highlightStyle string
	assetPath      string
	pdfTimeout     time.Duration
	pdfRenderer    PDFRenderer
	bundleName     string
	now            func() time.Time
}

func newSettings(opts []Option) settings {
	s := settings{
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		pdfTimeout: export.DefaultPDFTimeout,
		bundleName: export.DefaultBundleName,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// Option configures a Generator or an Exporter.
type Option func(*settings)

// WithLogger sets the structured logger. The default discards output.
func WithLogger(l *slog.Logger) Option {
	return func(s *settings) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithStyle selects the document stylesheet by name ("default", "classic").
func WithStyle(name string) Option {
	return func(s *settings) {
		s.style = name
	}
}

// WithHighlightStyle selects the chroma style used for code blocks.
func WithHighlightStyle(name string) Option {
	return func(s *settings) {
		s.highlightStyle = name
	}
}

// WithAssetPath adds a directory of styles/ and templates/ overrides.
// Names missing there fall back to the embedded assets.
func WithAssetPath(path string) Option {
	return func(s *settings) {
		s.assetPath = path
	}
}

// WithPDFTimeout bounds the rendering of one PDF.
func WithPDFTimeout(d time.Duration) Option {
	return func(s *settings) {
		if d > 0 {
			s.pdfTimeout = d
		}
	}
}

// WithPDFRenderer replaces the headless Chrome renderer.
func WithPDFRenderer(r PDFRenderer) Option {
	return func(s *settings) {
		s.pdfRenderer = r
	}
}

// WithBundleName names the zip archive built by Exporter.Bundle. See
// Exporter.Bundle for the accepted forms.
func WithBundleName(name string) Option {
	return func(s *settings) {
		if name != "" {
			s.bundleName = name
		}
	}
}

// WithClock sets the time source for bundle names and DOCX metadata.
func WithClock(now func() time.Time) Option {
	return func(s *settings) {
		if now != nil {
			s.now = now
		}
	}
}
