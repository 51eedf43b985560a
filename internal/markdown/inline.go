package markdown

import (
	"reflect"
	"strings"

	"github.com/yuin/goldmark/ast"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/util"

	"github.com/alnah/go-docmerge/internal/content"
)

// span is one inline piece before merge tags are split out. node is set
// for non-text inlines such as images and hard breaks.
type span struct {
	text  string
	marks []content.Mark
	node  *content.Node
}

// inlines converts the inline children of n. Adjacent text with the same
// marks is joined first so that tokens split by the parser are whole again.
func (b *builder) inlines(n ast.Node) []*content.Node {
	var spans []span
	b.collect(n, nil, &spans)
	return splitSpans(joinSpans(spans))
}

func (b *builder) collect(parent ast.Node, marks []content.Mark, out *[]span) {
	for n := parent.FirstChild(); n != nil; n = n.NextSibling() {
		switch n := n.(type) {
		case *ast.Text:
			*out = append(*out, span{text: string(util.UnescapePunctuations(n.Segment.Value(b.src))), marks: marks})
			switch {
			case n.HardLineBreak():
				*out = append(*out, span{node: &content.Node{Type: content.TypeHardBreak}})
			case n.SoftLineBreak():
				*out = append(*out, span{text: " ", marks: marks})
			}

		case *ast.String:
			*out = append(*out, span{text: string(n.Value), marks: marks})

		case *ast.CodeSpan:
			*out = append(*out, span{text: b.plainText(n), marks: withMark(marks, content.Mark{Type: content.MarkCode})})

		case *ast.Emphasis:
			mark := content.MarkItalic
			if n.Level >= 2 {
				mark = content.MarkBold
			}
			b.collect(n, withMark(marks, content.Mark{Type: mark}), out)

		case *east.Strikethrough:
			b.collect(n, withMark(marks, content.Mark{Type: content.MarkStrike}), out)

		case *ast.Link:
			b.collect(n, withMark(marks, linkMark(string(n.Destination), string(n.Title))), out)

		case *ast.AutoLink:
			*out = append(*out, span{
				text:  string(n.Label(b.src)),
				marks: withMark(marks, linkMark(string(n.URL(b.src)), "")),
			})

		case *ast.Image:
			attrs := content.ImageAttrs{
				Src:       string(n.Destination),
				Alt:       b.plainText(n),
				Title:     string(n.Title),
				Alignment: content.DefaultImageAlignment,
			}
			*out = append(*out, span{node: &content.Node{Type: content.TypeImage, Attrs: attrs}})

		case *east.TaskCheckBox:
			box := "☐ "
			if n.IsChecked {
				box = "☑ "
			}
			*out = append(*out, span{text: box, marks: marks})

		case *ast.RawHTML:
			// Inline HTML is dropped.

		default:
			b.collect(n, marks, out)
		}
	}
}

// plainText concatenates the text beneath n.
func (b *builder) plainText(n ast.Node) string {
	var sb strings.Builder
	_ = ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch c := c.(type) {
		case *ast.Text:
			sb.Write(c.Segment.Value(b.src))
			if c.SoftLineBreak() {
				sb.WriteByte(' ')
			}
		case *ast.String:
			sb.Write(c.Value)
		}
		return ast.WalkContinue, nil
	})
	return strings.NewReplacer(highlightStart, "", highlightEnd, "").Replace(sb.String())
}

func linkMark(href, title string) content.Mark {
	attrs := map[string]any{"href": href}
	if title != "" {
		attrs["title"] = title
	}
	return content.Mark{Type: content.MarkLink, Attrs: attrs}
}

func withMark(marks []content.Mark, m content.Mark) []content.Mark {
	out := make([]content.Mark, 0, len(marks)+1)
	out = append(out, marks...)
	return append(out, m)
}

func joinSpans(spans []span) []span {
	var out []span
	for _, s := range spans {
		if s.node == nil && s.text == "" {
			continue
		}
		if n := len(out); n > 0 && s.node == nil && out[n-1].node == nil && reflect.DeepEqual(out[n-1].marks, s.marks) {
			out[n-1].text += s.text
			continue
		}
		out = append(out, s)
	}
	return out
}

// splitSpans applies highlight delimiters and turns merge tag tokens into
// mergeTag nodes.
func splitSpans(spans []span) []*content.Node {
	var out []*content.Node
	highlighted := false

	emitText := func(s string, marks []content.Mark) {
		if s == "" {
			return
		}
		if highlighted {
			marks = withMark(marks, content.Mark{Type: content.MarkHighlight})
		}
		out = append(out, splitTags(s, marks)...)
	}

	for _, s := range spans {
		if s.node != nil {
			out = append(out, s.node)
			continue
		}
		rest := s.text
		for rest != "" {
			i := strings.IndexAny(rest, highlightStart+highlightEnd)
			if i < 0 {
				emitText(rest, s.marks)
				break
			}
			emitText(rest[:i], s.marks)
			highlighted = strings.HasPrefix(rest[i:], highlightStart)
			rest = rest[i+len(highlightStart):]
		}
	}
	return out
}

// splitTags cuts s around {{field}}, {{field?}} and {{field|Label}}.
func splitTags(s string, marks []content.Mark) []*content.Node {
	var out []*content.Node
	text := func(t string) {
		if t != "" {
			out = append(out, &content.Node{Type: content.TypeText, Text: t, Marks: marks})
		}
	}

	last := 0
	for _, m := range tagPattern.FindAllStringSubmatchIndex(s, -1) {
		text(s[last:m[0]])
		attrs := content.MergeTagAttrs{
			FieldKey:        s[m[2]:m[3]],
			SuppressIfEmpty: m[4] >= 0,
		}
		if m[6] >= 0 {
			attrs.Label = s[m[6]:m[7]]
		}
		out = append(out, &content.Node{Type: content.TypeMergeTag, Attrs: attrs})
		last = m[1]
	}
	text(s[last:])
	return out
}
