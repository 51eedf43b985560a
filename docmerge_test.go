package docmerge

// Notes:
// - shared fixtures for the root package tests
// - templates are built from JSON so the tests exercise LoadTemplate too

import (
	"context"
	"sync"
	"testing"

	"github.com/alnah/go-docmerge/internal/content"
)

const templatePrefix = `{"page":{"size":"Letter","orientation":"portrait","margins":{"top":72,"right":72,"bottom":72,"left":72}},` +
	`"styles":{"fontFamily":"Inter","baseFontSize":14,"theme":"light"},"content":`

func mustTemplate(t *testing.T, contentJSON string) *TemplateDoc {
	t.Helper()
	tmpl, err := LoadTemplate([]byte(templatePrefix + contentJSON + "}"))
	if err != nil {
		t.Fatalf("LoadTemplate() unexpected error: %v", err)
	}
	return tmpl
}

func testDataset() *Dataset {
	return &Dataset{
		Fields: []Field{
			{Key: "name", Label: "Name", Type: TypeString},
			{Key: "amount", Label: "Amount", Type: TypeNumber},
			{Key: "city", Label: "City", Type: TypeString},
		},
		Rows: []Record{
			{"name": "Ada", "amount": 12.5, "city": "London"},
			{"name": "Grace", "amount": 40.0, "city": ""},
			{"name": "Linus", "amount": "7", "city": "Helsinki"},
		},
	}
}

type fakePDFRenderer struct {
	mu     sync.Mutex
	pages  []content.Page
	closed bool
}

var _ PDFRenderer = (*fakePDFRenderer)(nil)

func (f *fakePDFRenderer) RenderPDF(_ context.Context, html string, page content.Page) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pages = append(f.pages, page)
	return []byte("%PDF-" + html[:min(len(html), 8)]), nil
}

func (f *fakePDFRenderer) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	return nil
}
