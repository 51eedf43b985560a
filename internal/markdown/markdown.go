package markdown

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"

	"github.com/alnah/go-docmerge/internal/content"
)

// ErrConversion indicates the Markdown could not be converted.
var ErrConversion = errors.New("markdown conversion failed")

// Highlight delimiters survive goldmark parsing as Private Use Area runes.
const (
	highlightStart = "\uE000"
	highlightEnd   = "\uE001"
)

var (
	crlfOrCR         = regexp.MustCompile(`\r\n?`)
	highlightPattern = regexp.MustCompile(`==([^=\n]+?)==`)
	fencePattern     = regexp.MustCompile("(?m)^ {0,3}(```|~~~)")
	tagPattern       = regexp.MustCompile(`\{\{\s*([\w.]+)(\?)?\s*(?:\|\s*([^}]*?)\s*)?\}\}`)
)

// Converter turns Markdown into content trees.
type Converter struct {
	md goldmark.Markdown
}

// New creates a Converter with the GFM extensions (tables,
// strikethrough, autolinks, task lists).
func New() *Converter {
	return &Converter{md: goldmark.New(goldmark.WithExtensions(extension.GFM))}
}

// Convert parses src into a doc node.
func (c *Converter) Convert(ctx context.Context, src []byte) (*content.Node, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	normalized := []byte(preprocess(string(src)))
	root := c.md.Parser().Parse(text.NewReader(normalized))

	b := &builder{src: normalized}
	doc := &content.Node{Type: content.TypeDoc}
	var err error
	doc.Content, err = b.blocks(root)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConversion, err)
	}
	if len(doc.Content) == 0 {
		doc.Content = []*content.Node{{Type: content.TypeParagraph, Attrs: content.ParagraphAttrs{}}}
	}
	return doc, nil
}

// Template wraps the converted tree in a TemplateDoc with default page
// and styles.
func (c *Converter) Template(ctx context.Context, src []byte) (*content.TemplateDoc, error) {
	doc, err := c.Convert(ctx, src)
	if err != nil {
		return nil, err
	}
	t := content.DefaultTemplate()
	t.Content = doc
	return t, nil
}

// preprocess normalizes line endings and rewrites ==text== outside fenced
// code into highlight delimiters.
func preprocess(s string) string {
	s = crlfOrCR.ReplaceAllString(s, "\n")

	var out strings.Builder
	inFence := false
	for i, line := range strings.Split(s, "\n") {
		if i > 0 {
			out.WriteByte('\n')
		}
		if fencePattern.MatchString(line) {
			inFence = !inFence
			out.WriteString(line)
			continue
		}
		if inFence {
			out.WriteString(line)
			continue
		}
		out.WriteString(highlightPattern.ReplaceAllString(line, highlightStart+"$1"+highlightEnd))
	}
	return out.String()
}

type builder struct {
	src []byte
}

func (b *builder) blocks(parent ast.Node) ([]*content.Node, error) {
	var out []*content.Node
	for n := parent.FirstChild(); n != nil; n = n.NextSibling() {
		nodes, err := b.block(n)
		if err != nil {
			return nil, err
		}
		out = append(out, nodes...)
	}
	return out, nil
}

func (b *builder) block(n ast.Node) ([]*content.Node, error) {
	switch n := n.(type) {
	case *ast.Paragraph, *ast.TextBlock:
		return []*content.Node{b.paragraph(n, "")}, nil

	case *ast.Heading:
		return []*content.Node{{
			Type:    content.TypeHeading,
			Attrs:   content.HeadingAttrs{Level: n.Level},
			Content: b.inlines(n),
		}}, nil

	case *ast.ThematicBreak:
		return []*content.Node{{Type: content.TypeHorizontalRule}}, nil

	case *ast.CodeBlock:
		return []*content.Node{b.codeBlock(n, "")}, nil

	case *ast.FencedCodeBlock:
		return []*content.Node{b.codeBlock(n, string(n.Language(b.src)))}, nil

	case *ast.Blockquote:
		children, err := b.blocks(n)
		if err != nil {
			return nil, err
		}
		return []*content.Node{{Type: content.TypeBlockquote, Content: children}}, nil

	case *ast.List:
		return b.list(n)

	case *east.Table:
		return []*content.Node{b.table(n)}, nil

	case *ast.HTMLBlock:
		// Raw HTML is not part of the content model.
		return nil, nil

	default:
		return nil, fmt.Errorf("unsupported block %s", n.Kind())
	}
}

func (b *builder) paragraph(n ast.Node, align string) *content.Node {
	return &content.Node{
		Type:    content.TypeParagraph,
		Attrs:   content.ParagraphAttrs{TextAlign: align},
		Content: b.inlines(n),
	}
}

func (b *builder) codeBlock(n ast.Node, lang string) *content.Node {
	var code bytes.Buffer
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		code.Write(seg.Value(b.src))
	}
	node := &content.Node{
		Type:  content.TypeCodeBlock,
		Attrs: content.CodeBlockAttrs{Language: lang},
	}
	if s := strings.TrimSuffix(code.String(), "\n"); s != "" {
		node.Content = []*content.Node{{Type: content.TypeText, Text: s}}
	}
	return node
}

func (b *builder) list(n *ast.List) ([]*content.Node, error) {
	list := &content.Node{Type: content.TypeBulletList}
	if n.IsOrdered() {
		list.Type = content.TypeOrderedList
		list.Attrs = content.OrderedListAttrs{Start: n.Start}
	}
	for item := n.FirstChild(); item != nil; item = item.NextSibling() {
		children, err := b.blocks(item)
		if err != nil {
			return nil, err
		}
		list.Content = append(list.Content, &content.Node{Type: content.TypeListItem, Content: children})
	}
	return []*content.Node{list}, nil
}

func (b *builder) table(n *east.Table) *content.Node {
	table := &content.Node{
		Type: content.TypeTable,
		Attrs: content.TableAttrs{
			TableStyle: content.DefaultTableStyle,
			Stripe:     content.DefaultTableStripe,
		},
	}
	for r := n.FirstChild(); r != nil; r = r.NextSibling() {
		cellType := content.TypeTableCell
		if _, ok := r.(*east.TableHeader); ok {
			cellType = content.TypeTableHeader
		}

		row := &content.Node{Type: content.TypeTableRow}
		for c := r.FirstChild(); c != nil; c = c.NextSibling() {
			cell := &content.Node{Type: cellType, Attrs: content.CellAttrs{Colspan: 1, Rowspan: 1}}
			var align string
			if tc, ok := c.(*east.TableCell); ok {
				align = cellAlign(tc.Alignment)
			}
			cell.Content = []*content.Node{b.paragraph(c, align)}
			row.Content = append(row.Content, cell)
		}
		row.Attrs = content.TableRowAttrs{SuppressIfEmpty: hasSuppressibleTag(row)}
		table.Content = append(table.Content, row)
	}
	return table
}

func cellAlign(a east.Alignment) string {
	switch a {
	case east.AlignCenter:
		return "center"
	case east.AlignRight:
		return "right"
	default:
		return ""
	}
}

func hasSuppressibleTag(n *content.Node) bool {
	found := false
	content.Walk(n, func(c *content.Node) bool {
		if a, ok := c.MergeTag(); ok && a.SuppressIfEmpty {
			found = true
		}
		return !found
	})
	return found
}
