package docmerge

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-docmerge/internal/content"
	"github.com/alnah/go-docmerge/internal/markdown"
)

// DefaultTemplate returns an empty Letter portrait template.
func DefaultTemplate() *TemplateDoc {
	return content.DefaultTemplate()
}

// LoadTemplate validates and decodes a JSON template. Structural problems
// are reported as ErrMalformedTemplate with the offending path.
func LoadTemplate(data []byte) (*TemplateDoc, error) {
	return content.ParseTemplate(data)
}

// LoadMarkdownTemplate converts Markdown with merge tag tokens into a
// template with default page and styles.
func LoadMarkdownTemplate(ctx context.Context, src []byte) (*TemplateDoc, error) {
	return markdown.New().Template(ctx, src)
}

// LoadTemplateFile reads a template by extension: .md and .markdown are
// converted from Markdown, anything else is parsed as JSON.
func LoadTemplateFile(path string) (*TemplateDoc, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- user-provided path
	if err != nil {
		return nil, fmt.Errorf("reading template: %w", err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown":
		return LoadMarkdownTemplate(context.Background(), data)
	default:
		return LoadTemplate(data)
	}
}

// MarshalTemplate encodes tmpl as indented JSON that LoadTemplate accepts.
func MarshalTemplate(tmpl *TemplateDoc) ([]byte, error) {
	return content.MarshalTemplate(tmpl)
}

// MergeTagKeys lists the field keys a template references, in order of
// first use.
func MergeTagKeys(tmpl *TemplateDoc) []string {
	if tmpl == nil {
		return nil
	}
	return content.MergeTagKeys(tmpl.Content)
}
