package docmerge

// Notes:
// - Build: order, filenames, merge tags, text tokens, pruning
// - end to end: CSV import through conditional blocks to distinct filenames
// - failure policy: placeholder artifacts, logged warnings, panics recovered
// - cancellation between rows returns partial results

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/alnah/go-docmerge/internal/content"
	"github.com/alnah/go-docmerge/internal/testutil"
)

const invoiceContent = `{"type":"doc","content":[` +
	`{"type":"heading","attrs":{"level":1},"content":[{"type":"text","text":"Invoice for "},{"type":"mergeTag","attrs":{"fieldKey":"name","label":"Name"}}]},` +
	`{"type":"paragraph","content":[{"type":"text","text":"Total: {{amount}}"}]},` +
	`{"type":"paragraph","content":[{"type":"text","text":"City: "},{"type":"mergeTag","attrs":{"fieldKey":"city","suppressIfEmpty":true}}]}` +
	`]}`

// ---------------------------------------------------------------------------
// TestGenerator_Build - Happy Path
// ---------------------------------------------------------------------------

func TestGenerator_Build(t *testing.T) {
	t.Parallel()

	g := NewGenerator(WithLogger(testutil.NewTestLogger(t)))
	tmpl := mustTemplate(t, invoiceContent)

	artifacts, err := g.Build(context.Background(), testDataset(), tmpl, GenerationOptions{
		Format:          FormatHTML,
		Range:           RangeSelection,
		Selection:       []int{1, 0},
		FilenamePattern: "{{name}}_invoice",
	})
	if err != nil {
		t.Fatalf("Build() unexpected error: %v", err)
	}
	if len(artifacts) != 2 {
		t.Fatalf("len(artifacts) = %d, want 2", len(artifacts))
	}

	grace, ada := artifacts[0], artifacts[1]
	if grace.Index != 1 || ada.Index != 0 {
		t.Errorf("indices = %d, %d, want 1, 0", grace.Index, ada.Index)
	}
	if grace.Filename != "Grace_invoice" || ada.Filename != "Ada_invoice" {
		t.Errorf("filenames = %q, %q", grace.Filename, ada.Filename)
	}

	for _, want := range []string{
		"<!DOCTYPE html>",
		`<span class="merge-tag" data-merge-tag="name" data-label="Name">Ada</span>`,
		"Total: 12.5",
		`data-merge-tag="city" data-suppress-empty="true">London</span>`,
		"<title>Ada_invoice</title>",
	} {
		if !strings.Contains(ada.HTML, want) {
			t.Errorf("Ada artifact missing %q", want)
		}
	}

	if strings.Contains(grace.HTML, "City:") {
		t.Error("paragraph with only an empty suppressible tag should be pruned")
	}
	if !strings.Contains(grace.HTML, "Total: 40") {
		t.Error("Grace artifact missing substituted total")
	}
	for _, a := range artifacts {
		if a.Err != nil {
			t.Errorf("artifact %d unexpected error: %v", a.Index, a.Err)
		}
	}
}

const letterContent = `{"type":"doc","content":[` +
	`{"type":"paragraph","content":[{"type":"text","text":"Dear "},{"type":"mergeTag","attrs":{"fieldKey":"name"}}]},` +
	`{"type":"paragraph","content":[{"type":"mergeTag","attrs":{"fieldKey":"address_line_2","suppressIfEmpty":true}}]},` +
	`{"type":"table","content":[{"type":"tableRow","attrs":{"suppressIfEmpty":true},"content":[` +
	`{"type":"tableCell","content":[{"type":"paragraph","content":[{"type":"text","text":"Fee"}]}]},` +
	`{"type":"tableCell","content":[{"type":"paragraph","content":[{"type":"mergeTag","attrs":{"fieldKey":"fee","suppressIfEmpty":true}}]}]}` +
	`]}]}` +
	`]}`

func TestGenerator_Build_EndToEnd(t *testing.T) {
	t.Parallel()

	imported, err := Import("clients.csv", []byte("Name,Address Line 2,Fee\nAda,Flat 4,120\nGrace,,0\nLinus,,\n"), Limits{})
	if err != nil {
		t.Fatalf("Import() unexpected error: %v", err)
	}

	g := NewGenerator(WithLogger(testutil.NewTestLogger(t)))
	artifacts, err := g.Build(context.Background(), imported.Dataset, mustTemplate(t, letterContent), GenerationOptions{
		Format:          FormatHTML,
		Range:           RangeAll,
		FilenamePattern: "Letter_{{name}}",
	})
	if err != nil {
		t.Fatalf("Build() unexpected error: %v", err)
	}
	if len(artifacts) != 3 {
		t.Fatalf("len(artifacts) = %d, want 3", len(artifacts))
	}

	seen := map[string]bool{}
	for i, a := range artifacts {
		if a.Err != nil {
			t.Errorf("artifact %d unexpected error: %v", i, a.Err)
		}
		if seen[a.Filename] {
			t.Errorf("duplicate filename %q", a.Filename)
		}
		seen[a.Filename] = true
	}
	for i, want := range []string{"Letter_Ada", "Letter_Grace", "Letter_Linus"} {
		if artifacts[i].Filename != want {
			t.Errorf("artifacts[%d].Filename = %q, want %q", i, artifacts[i].Filename, want)
		}
	}

	tests := []struct {
		name        string
		html        string
		wantAddress bool
		wantTable   bool
	}{
		{"all values", artifacts[0].HTML, true, true},
		{"zero fee keeps row", artifacts[1].HTML, false, true},
		{"no optional values", artifacts[2].HTML, false, false},
	}
	for _, tt := range tests {
		if got := strings.Contains(tt.html, `data-merge-tag="address_line_2"`); got != tt.wantAddress {
			t.Errorf("%s: address line present = %v, want %v", tt.name, got, tt.wantAddress)
		}
		if got := strings.Contains(tt.html, "<table"); got != tt.wantTable {
			t.Errorf("%s: fee table present = %v, want %v", tt.name, got, tt.wantTable)
		}
	}
	if !strings.Contains(artifacts[1].HTML, `data-merge-tag="fee" data-suppress-empty="true">0</span>`) {
		t.Error("zero fee should render as 0")
	}
}

func TestGenerator_Build_FallbackFilename(t *testing.T) {
	t.Parallel()

	g := NewGenerator()
	artifacts, err := g.Build(context.Background(), testDataset(), mustTemplate(t, invoiceContent), GenerationOptions{
		FilenamePattern: "{{missing}}",
	})
	if err != nil {
		t.Fatalf("Build() unexpected error: %v", err)
	}
	for i, a := range artifacts {
		want := "document_" + string(rune('1'+i))
		if a.Filename != want {
			t.Errorf("artifacts[%d].Filename = %q, want %q", i, a.Filename, want)
		}
	}
}

func TestGenerator_Build_ValuesAreInert(t *testing.T) {
	t.Parallel()

	ds := &Dataset{
		Fields: []Field{{Key: "name"}, {Key: "secret"}},
		Rows:   []Record{{"name": "<b>{{secret}}</b>", "secret": "leaked"}},
	}
	tmpl := mustTemplate(t, `{"type":"doc","content":[{"type":"paragraph","content":[{"type":"mergeTag","attrs":{"fieldKey":"name"}}]}]}`)

	artifacts, err := NewGenerator().Build(context.Background(), ds, tmpl, GenerationOptions{})
	if err != nil {
		t.Fatalf("Build() unexpected error: %v", err)
	}
	html := artifacts[0].HTML
	if strings.Contains(html, "leaked") {
		t.Error("a value containing a token was expanded")
	}
	if strings.Contains(html, "<b>") {
		t.Error("a value was inserted without escaping")
	}
}

// ---------------------------------------------------------------------------
// TestGenerator_Build - Failures
// ---------------------------------------------------------------------------

func TestGenerator_Build_RowFailureContinues(t *testing.T) {
	t.Parallel()

	logger, logs := testutil.NewCapturingLogger()
	g := NewGenerator(WithLogger(logger))

	tmpl := content.DefaultTemplate()
	tmpl.Content = &content.Node{Type: content.TypeDoc, Content: []*content.Node{{Type: "callout"}}}

	artifacts, err := g.Build(context.Background(), testDataset(), tmpl, GenerationOptions{})
	if err != nil {
		t.Fatalf("Build() unexpected error: %v", err)
	}
	if len(artifacts) != 3 {
		t.Fatalf("len(artifacts) = %d, want 3", len(artifacts))
	}
	for _, a := range artifacts {
		if a.Err == nil {
			t.Errorf("artifact %d: Err = nil, want render error", a.Index)
		}
		if !strings.Contains(a.HTML, PlaceholderBody) {
			t.Errorf("artifact %d: missing placeholder body", a.Index)
		}
	}

	out := logs.String()
	if !strings.Contains(out, "row failed") || !strings.Contains(out, "failed=3") {
		t.Errorf("logs missing failure records:\n%s", out)
	}
}

func TestGenerator_Build_Canceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	artifacts, err := NewGenerator().Build(ctx, testDataset(), mustTemplate(t, invoiceContent), GenerationOptions{})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Build() error = %v, want context.Canceled", err)
	}
	if len(artifacts) != 0 {
		t.Errorf("len(artifacts) = %d, want 0", len(artifacts))
	}
}

func TestGenerator_Build_Errors(t *testing.T) {
	t.Parallel()

	tmpl := mustTemplate(t, invoiceContent)
	ds := testDataset()
	g := NewGenerator()

	tests := []struct {
		name    string
		ds      *Dataset
		tmpl    *TemplateDoc
		opts    GenerationOptions
		wantErr error
	}{
		{"nil dataset", nil, tmpl, GenerationOptions{}, ErrNilDataset},
		{"nil template", ds, nil, GenerationOptions{}, ErrNilTemplate},
		{"template without content", ds, &TemplateDoc{}, GenerationOptions{}, ErrNilTemplate},
		{"invalid range", ds, tmpl, GenerationOptions{Range: "odd"}, ErrInvalidRange},
		{"invalid selection", ds, tmpl, GenerationOptions{Range: RangeSelection, Selection: []int{9}}, ErrSelectionOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := g.Build(context.Background(), tt.ds, tt.tmpl, tt.opts)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Build() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestGenerator_UnknownStyle(t *testing.T) {
	t.Parallel()

	_, err := NewGenerator(WithStyle("nope")).Build(context.Background(), testDataset(), mustTemplate(t, invoiceContent), GenerationOptions{})
	if err == nil {
		t.Error("Build() with unknown style should fail")
	}
}

// ---------------------------------------------------------------------------
// TestGenerator_Preview
// ---------------------------------------------------------------------------

func TestGenerator_Preview(t *testing.T) {
	t.Parallel()

	g := NewGenerator(WithStyle("classic"))
	html, err := g.Preview(mustTemplate(t, invoiceContent), Record{"name": "Preview Person", "amount": 1})
	if err != nil {
		t.Fatalf("Preview() unexpected error: %v", err)
	}
	if !strings.Contains(html, "Preview Person") || !strings.Contains(html, "Total: 1") {
		t.Errorf("Preview() missing record values:\n%s", html)
	}

	if _, err := g.Preview(nil, nil); !errors.Is(err, ErrNilTemplate) {
		t.Errorf("Preview(nil) error = %v, want ErrNilTemplate", err)
	}
}
