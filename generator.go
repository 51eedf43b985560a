package docmerge

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/alnah/go-docmerge/internal/assets"
	"github.com/alnah/go-docmerge/internal/merge"
	"github.com/alnah/go-docmerge/internal/prune"
	"github.com/alnah/go-docmerge/internal/render"
)

// PlaceholderBody replaces the body of a row that failed to render.
const PlaceholderBody = "<p>Unable to render document.</p>"

// Generator builds per-row HTML artifacts from a template.
type Generator struct {
	cfg settings
}

// NewGenerator creates a Generator. Assets are loaded on each Build, so a
// Generator can be reused after asset files change.
func NewGenerator(opts ...Option) *Generator {
	return &Generator{cfg: newSettings(opts)}
}

func (g *Generator) renderer() (*render.Renderer, error) {
	opts := []render.Option{
		render.WithStyle(g.cfg.style),
		render.WithHighlightStyle(g.cfg.highlightStyle),
	}
	if g.cfg.assetPath != "" {
		resolver, err := assets.NewAssetResolver(g.cfg.assetPath)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", render.ErrLoadAssets, err)
		}
		opts = append(opts, render.WithAssets(resolver))
	}
	return render.New(opts...)
}

// Build renders one artifact per selected row, in selection order.
//
// Rows are processed one at a time. A row that fails, including by panic,
// is logged and yields an artifact with PlaceholderBody and Err set; the
// batch continues. If ctx is canceled between rows, Build returns the
// artifacts finished so far together with ctx.Err().
func (g *Generator) Build(ctx context.Context, ds *Dataset, tmpl *TemplateDoc, opts GenerationOptions) ([]Artifact, error) {
	if ds == nil {
		return nil, ErrNilDataset
	}
	if tmpl == nil || tmpl.Content == nil {
		return nil, ErrNilTemplate
	}
	if err := opts.Validate(ds); err != nil {
		return nil, err
	}

	r, err := g.renderer()
	if err != nil {
		return nil, err
	}

	indices := SelectRows(ds, opts)
	batch := uuid.NewString()
	log := g.cfg.logger.With("batch", batch)
	log.Debug("generation started", "rows", len(indices), "format", string(opts.Format))

	artifacts := make([]Artifact, 0, len(indices))
	failed := 0
	for _, i := range indices {
		if err := ctx.Err(); err != nil {
			log.Debug("generation canceled", "artifacts", len(artifacts))
			return artifacts, err
		}

		row := ds.Rows[i]
		a := Artifact{
			Index:    i,
			Filename: merge.RenderFilename(opts.FilenamePattern, row, fmt.Sprintf("document_%d", i+1)),
		}
		a.HTML, a.Err = renderRow(r, tmpl, row, a.Filename)
		if a.Err != nil {
			failed++
			log.Warn("row failed", "row", i, "error", a.Err)
			a.HTML = placeholder(r, tmpl, a.Filename)
		}
		artifacts = append(artifacts, a)
	}

	log.Debug("generation finished", "artifacts", len(artifacts), "failed", failed)
	return artifacts, nil
}

// Preview renders a single record the way Build renders a row, without
// the placeholder fallback.
func (g *Generator) Preview(tmpl *TemplateDoc, record Record) (string, error) {
	if tmpl == nil || tmpl.Content == nil {
		return "", ErrNilTemplate
	}
	r, err := g.renderer()
	if err != nil {
		return "", err
	}
	return renderRow(r, tmpl, record, "Preview")
}

func renderRow(r *render.Renderer, tmpl *TemplateDoc, row Record, title string) (html string, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("rendering panicked: %v", p)
		}
	}()

	pruned := prune.Prune(tmpl.Content, row)
	body, err := r.Fragment(pruned, row)
	if err != nil {
		return "", err
	}
	// Merge tag nodes are already resolved; this pass handles tokens typed
	// as plain text.
	body = merge.Substitute(body, row)
	return r.Document(tmpl, title, body)
}

func placeholder(r *render.Renderer, tmpl *TemplateDoc, title string) string {
	html, err := r.Document(tmpl, title, PlaceholderBody)
	if err != nil {
		return PlaceholderBody
	}
	return html
}
