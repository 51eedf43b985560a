package render

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/styles"

	"github.com/alnah/go-docmerge/internal/assets"
	"github.com/alnah/go-docmerge/internal/content"
)

// DefaultHighlightStyle is the chroma style used for code blocks.
const DefaultHighlightStyle = "github"

// Renderer renders content trees to HTML. It is safe for sequential reuse
// across records; it keeps no per-record state.
type Renderer struct {
	loader         assets.AssetLoader
	styleName      string
	templateName   string
	highlightStyle string

	tmpl      *template.Template
	baseCSS   string
	formatter *chromahtml.Formatter
	chroma    *chroma.Style
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithAssets sets the loader for the stylesheet and document template.
func WithAssets(l assets.AssetLoader) Option {
	return func(r *Renderer) {
		if l != nil {
			r.loader = l
		}
	}
}

// WithStyle selects the base stylesheet by name.
func WithStyle(name string) Option {
	return func(r *Renderer) {
		if name != "" {
			r.styleName = name
		}
	}
}

// WithHighlightStyle selects the chroma style for code blocks.
func WithHighlightStyle(name string) Option {
	return func(r *Renderer) {
		if name != "" {
			r.highlightStyle = name
		}
	}
}

// New loads assets and prepares the highlighter.
func New(opts ...Option) (*Renderer, error) {
	r := &Renderer{
		loader:         assets.NewEmbeddedLoader(),
		styleName:      assets.DefaultStyleName,
		templateName:   assets.DefaultTemplateName,
		highlightStyle: DefaultHighlightStyle,
	}
	for _, opt := range opts {
		opt(r)
	}

	css, err := r.loader.LoadStyle(r.styleName)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadAssets, err)
	}
	src, err := r.loader.LoadTemplate(r.templateName)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadAssets, err)
	}
	tmpl, err := template.New("document").Parse(src)
	if err != nil {
		return nil, fmt.Errorf("%w: parsing document template: %v", ErrLoadAssets, err)
	}

	r.tmpl = tmpl
	r.formatter = chromahtml.New(chromahtml.WithClasses(true))
	r.chroma = styles.Get(r.highlightStyle)

	var hl strings.Builder
	if err := r.formatter.WriteCSS(&hl, r.chroma); err != nil {
		return nil, fmt.Errorf("%w: highlight css: %v", ErrLoadAssets, err)
	}
	r.baseCSS = css + "\n" + hl.String()
	return r, nil
}

// Fragment renders root to an HTML fragment, resolving merge tags against
// record. Merge tag values are escaped so that they can never form a new
// {{token}}.
func (r *Renderer) Fragment(root *content.Node, record map[string]any) (string, error) {
	w := &writer{r: r, record: record}
	if err := w.node(root); err != nil {
		return "", err
	}
	return w.buf.String(), nil
}

type documentData struct {
	Title string
	Theme string
	CSS   template.CSS
	Body  template.HTML
}

// Document wraps an already rendered body in a standalone HTML page styled
// from doc's page and typography settings.
func (r *Renderer) Document(doc *content.TemplateDoc, title, body string) (string, error) {
	page, styles := content.DefaultPage(), content.DefaultStyles()
	if doc != nil {
		page, styles = doc.Page, doc.Styles
	}

	css := r.baseCSS + "\n" + StyleSheet(page, styles)
	data := documentData{
		Title: title,
		Theme: themeName(styles.Theme),
		// #nosec G203 -- closing tags are neutralized by sanitizeCSS
		CSS: template.CSS(sanitizeCSS(css)),
		// #nosec G203 -- body is produced by Fragment, which escapes all text
		Body: template.HTML(body),
	}

	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("%w: %v", ErrDocumentBody, err)
	}
	return buf.String(), nil
}

func themeName(theme string) string {
	if theme == content.ThemeDark {
		return content.ThemeDark
	}
	return content.ThemeLight
}

// sanitizeCSS keeps stylesheet text from closing the <style> element.
func sanitizeCSS(css string) string {
	return strings.ReplaceAll(css, "</", `<\/`)
}
