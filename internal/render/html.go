package render

import (
	"fmt"
	"html"
	"regexp"
	"strconv"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"

	"github.com/alnah/go-docmerge/internal/content"
	"github.com/alnah/go-docmerge/internal/merge"
)

var (
	classToken = regexp.MustCompile(`^[a-z0-9-]+$`)
	schemeLike = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9+.-]*:`)
)

var textAligns = map[string]bool{"left": true, "center": true, "right": true, "justify": true}

type writer struct {
	r      *Renderer
	record map[string]any
	buf    strings.Builder
}

func (w *writer) str(parts ...string) {
	for _, p := range parts {
		w.buf.WriteString(p)
	}
}

func (w *writer) children(n *content.Node) error {
	for _, c := range n.Content {
		if err := w.node(c); err != nil {
			return err
		}
	}
	return nil
}

// wrap renders n's children inside <tag attrs>...</tag>.
func (w *writer) wrap(tag, attrs string, n *content.Node) error {
	w.str("<", tag, attrs, ">")
	if err := w.children(n); err != nil {
		return err
	}
	w.str("</", tag, ">")
	return nil
}

func (w *writer) node(n *content.Node) error {
	if n == nil {
		return nil
	}

	switch n.Type {
	case content.TypeDoc:
		return w.children(n)

	case content.TypeText:
		w.text(n)
		return nil

	case content.TypeParagraph:
		a, _ := n.Attrs.(content.ParagraphAttrs)
		return w.wrap("p", alignAttr(a.TextAlign), n)

	case content.TypeHeading:
		a, ok := n.Attrs.(content.HeadingAttrs)
		if !ok {
			a.Level = 1
		}
		return w.wrap("h"+strconv.Itoa(a.Level), alignAttr(a.TextAlign), n)

	case content.TypeHardBreak:
		w.str("<br>")
		return nil

	case content.TypeHorizontalRule:
		w.str("<hr>")
		return nil

	case content.TypeBulletList:
		return w.wrap("ul", "", n)

	case content.TypeOrderedList:
		var attrs string
		if a, ok := n.Attrs.(content.OrderedListAttrs); ok && a.Start != 1 {
			attrs = ` start="` + strconv.Itoa(a.Start) + `"`
		}
		return w.wrap("ol", attrs, n)

	case content.TypeListItem:
		return w.wrap("li", "", n)

	case content.TypeBlockquote:
		return w.wrap("blockquote", "", n)

	case content.TypeCodeBlock:
		return w.codeBlock(n)

	case content.TypeImage:
		w.image(n)
		return nil

	case content.TypeTable:
		return w.table(n)

	case content.TypeTableBody:
		return w.wrap("tbody", "", n)

	case content.TypeTableRow:
		return w.wrap("tr", "", n)

	case content.TypeTableHeader:
		return w.wrap("th", cellAttrs(n.Attrs), n)

	case content.TypeTableCell:
		return w.wrap("td", cellAttrs(n.Attrs), n)

	case content.TypeMergeTag:
		w.mergeTag(n)
		return nil

	default:
		return fmt.Errorf("%w: %q", ErrUnknownNode, n.Type)
	}
}

func (w *writer) text(n *content.Node) {
	var closers []string
	for _, m := range n.Marks {
		open, closeTag := markTags(m)
		if open == "" {
			continue
		}
		w.str(open)
		closers = append(closers, closeTag)
	}
	w.str(html.EscapeString(n.Text))
	for i := len(closers) - 1; i >= 0; i-- {
		w.str(closers[i])
	}
}

// mergeTag emits the record value. Braces are encoded so the later token
// pass cannot expand data as a template.
func (w *writer) mergeTag(n *content.Node) {
	a, _ := n.MergeTag()
	value := merge.FormatValue(merge.Lookup(w.record, a.FieldKey))

	w.str(`<span class="merge-tag" data-merge-tag="`, escapeInert(a.FieldKey), `"`)
	if a.Label != "" {
		w.str(` data-label="`, escapeInert(a.Label), `"`)
	}
	if a.SuppressIfEmpty {
		w.str(` data-suppress-empty="true"`)
	}
	w.str(">", escapeInert(value), "</span>")
}

func (w *writer) codeBlock(n *content.Node) error {
	a, _ := n.Attrs.(content.CodeBlockAttrs)
	var code strings.Builder
	for _, c := range n.Content {
		code.WriteString(c.Text)
	}

	lang := strings.ToLower(strings.TrimSpace(a.Language))
	if lang != "" {
		if lexer := lexers.Get(lang); lexer != nil {
			it, err := chroma.Coalesce(lexer).Tokenise(nil, code.String())
			if err == nil {
				return w.r.formatter.Format(&w.buf, w.r.chroma, it)
			}
		}
	}

	w.str("<pre><code")
	if lang != "" && classToken.MatchString(lang) {
		w.str(` class="language-`, lang, `"`)
	}
	w.str(">", html.EscapeString(code.String()), "</code></pre>")
	return nil
}

func (w *writer) image(n *content.Node) {
	a, _ := n.Attrs.(content.ImageAttrs)
	if !safeURL(a.Src, true) {
		return
	}
	w.str(`<img src="`, html.EscapeString(a.Src), `"`)
	if a.Alt != "" {
		w.str(` alt="`, html.EscapeString(a.Alt), `"`)
	}
	if a.Title != "" {
		w.str(` title="`, html.EscapeString(a.Title), `"`)
	}
	if a.Alignment != "" && a.Alignment != content.DefaultImageAlignment && classToken.MatchString(a.Alignment) {
		w.str(` class="dm-image-`, a.Alignment, `"`)
	}
	if a.WidthPercent > 0 {
		w.str(` style="width: `, formatFloat(a.WidthPercent), `%;"`)
	}
	w.str(">")
}

func (w *writer) table(n *content.Node) error {
	a, ok := n.Attrs.(content.TableAttrs)
	if !ok {
		a = content.TableAttrs{
			TableStyle: content.DefaultTableStyle,
			Stripe:     content.DefaultTableStripe,
		}
	}
	style := classOr(a.TableStyle, content.DefaultTableStyle)
	stripe := classOr(a.Stripe, content.DefaultTableStripe)

	w.str(`<table class="dm-table dm-table-`, style, ` dm-table-stripe-`, stripe, `"`)
	vars := cssDecls(
		"--dm-table-border-color", a.BorderColor,
		"--dm-table-border-width", a.BorderWidth,
		"--dm-table-border-style", a.BorderStyle,
		"--dm-table-stripe-color", a.StripeColor,
	)
	if vars != "" {
		w.str(` style="`, html.EscapeString(vars), `"`)
	}
	w.str(">")

	hasBody := len(n.Content) > 0 && n.Content[0].Type == content.TypeTableBody
	if !hasBody {
		w.str("<tbody>")
	}
	if err := w.children(n); err != nil {
		return err
	}
	if !hasBody {
		w.str("</tbody>")
	}
	w.str("</table>")
	return nil
}

func cellAttrs(attrs content.Attrs) string {
	a, ok := attrs.(content.CellAttrs)
	if !ok {
		return ""
	}
	var b strings.Builder
	if a.Colspan > 1 {
		b.WriteString(` colspan="` + strconv.Itoa(a.Colspan) + `"`)
	}
	if a.Rowspan > 1 {
		b.WriteString(` rowspan="` + strconv.Itoa(a.Rowspan) + `"`)
	}
	var width string
	if len(a.Colwidth) == 1 && a.Colwidth[0] > 0 {
		width = strconv.Itoa(a.Colwidth[0]) + "px"
	}
	if decls := cssDecls("background-color", a.BackgroundColor, "width", width); decls != "" {
		b.WriteString(` style="` + html.EscapeString(decls) + `"`)
	}
	return b.String()
}

func markTags(m content.Mark) (open, closeTag string) {
	switch m.Type {
	case content.MarkBold:
		return "<strong>", "</strong>"
	case content.MarkItalic:
		return "<em>", "</em>"
	case content.MarkUnderline:
		return "<u>", "</u>"
	case content.MarkStrike:
		return "<s>", "</s>"
	case content.MarkCode:
		return "<code>", "</code>"
	case content.MarkSubscript:
		return "<sub>", "</sub>"
	case content.MarkSuperscript:
		return "<sup>", "</sup>"
	case content.MarkLink:
		href := m.StringAttr("href")
		if !safeURL(href, false) {
			return "", ""
		}
		return `<a href="` + html.EscapeString(href) + `" target="_blank" rel="noopener noreferrer nofollow">`, "</a>"
	case content.MarkHighlight:
		if decls := cssDecls("background-color", m.StringAttr("color")); decls != "" {
			return `<mark style="` + html.EscapeString(decls) + `">`, "</mark>"
		}
		return "<mark>", "</mark>"
	case content.MarkTextStyle:
		decls := cssDecls(
			"color", m.StringAttr("color"),
			"font-family", m.StringAttr("fontFamily"),
			"font-size", m.StringAttr("fontSize"),
		)
		if decls == "" {
			return "", ""
		}
		return `<span style="` + html.EscapeString(decls) + `">`, "</span>"
	default:
		return "", ""
	}
}

func alignAttr(align string) string {
	if align == "" || align == "left" || !textAligns[align] {
		return ""
	}
	return ` style="text-align: ` + align + `"`
}

// safeURL allows relative references and http(s), mailto and tel links.
// Images additionally accept inline data:image URLs.
func safeURL(u string, image bool) bool {
	u = strings.TrimSpace(u)
	if u == "" {
		return false
	}
	if !schemeLike.MatchString(u) {
		return true
	}
	lower := strings.ToLower(u)
	switch {
	case strings.HasPrefix(lower, "http://"), strings.HasPrefix(lower, "https://"):
		return true
	case image:
		return strings.HasPrefix(lower, "data:image/")
	default:
		return strings.HasPrefix(lower, "mailto:") || strings.HasPrefix(lower, "tel:")
	}
}

func classOr(v, def string) string {
	if classToken.MatchString(v) {
		return v
	}
	return def
}

// escapeInert HTML-escapes s and encodes "{" so the text cannot start a
// merge token.
func escapeInert(s string) string {
	return strings.ReplaceAll(html.EscapeString(s), "{", "&#123;")
}
