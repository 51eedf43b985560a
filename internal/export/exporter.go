package export

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/alnah/go-docmerge/internal/content"
)

// Document is a rendered HTML document waiting to be exported.
type Document struct {
	Name  string
	Title string
	HTML  string
}

// Option configures an Exporter.
type Option func(*Exporter)

// WithPDFRenderer replaces the headless Chrome renderer.
func WithPDFRenderer(r PDFRenderer) Option {
	return func(e *Exporter) {
		e.pdf = r
	}
}

// WithLogger sets the logger. The default discards output.
func WithLogger(l *slog.Logger) Option {
	return func(e *Exporter) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithClock sets the time source used for document metadata.
func WithClock(now func() time.Time) Option {
	return func(e *Exporter) {
		if now != nil {
			e.now = now
		}
	}
}

// WithTimeout bounds each PDF render.
func WithTimeout(d time.Duration) Option {
	return func(e *Exporter) {
		if d > 0 {
			e.timeout = d
		}
	}
}

// Exporter converts documents to files. It runs one batch at a time and
// keeps one browser for all PDF renders until Close.
type Exporter struct {
	mu      sync.Mutex
	pdf     PDFRenderer
	logger  *slog.Logger
	now     func() time.Time
	timeout time.Duration
}

// New creates an Exporter.
func New(opts ...Option) *Exporter {
	e := &Exporter{
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		now:     time.Now,
		timeout: DefaultPDFTimeout,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Export converts docs in order. Names get the format's extension and are
// made unique within the batch. The context is checked between documents;
// on cancellation the files finished so far are returned with the error.
func (e *Exporter) Export(ctx context.Context, docs []Document, format Format, page content.Page) ([]File, error) {
	if !format.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidFormat, format)
	}
	if len(docs) == 0 {
		return nil, ErrNoArtifacts
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	names := newUniqueNamer()
	files := make([]File, 0, len(docs))
	for i, doc := range docs {
		if err := ctx.Err(); err != nil {
			return files, err
		}

		name := names.next(FileName(doc.Name, format))
		data, err := e.encode(ctx, doc, format, page)
		if err != nil {
			return files, fmt.Errorf("exporting %s: %w", name, err)
		}
		e.logger.Debug("document exported", "index", i, "name", name, "bytes", len(data))
		files = append(files, File{Name: name, Data: data})
	}
	return files, nil
}

func (e *Exporter) encode(ctx context.Context, doc Document, format Format, page content.Page) ([]byte, error) {
	switch format {
	case FormatPDF:
		if e.pdf == nil {
			e.pdf = NewRodRenderer(e.timeout)
		}
		ctx, cancel := context.WithTimeout(ctx, e.timeout)
		defer cancel()
		return e.pdf.RenderPDF(ctx, doc.HTML, page)
	case FormatDOCX:
		return HTMLToDOCX(doc.HTML, doc.Title, e.now())
	default:
		return []byte(doc.HTML), nil
	}
}

// Close releases the browser, if one was started.
func (e *Exporter) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.pdf == nil {
		return nil
	}
	return e.pdf.Close()
}
