package content

import (
	"encoding/json"
	"errors"
	"fmt"
	"maps"
)

// Node types understood by the renderer and pruner.
const (
	TypeDoc            = "doc"
	TypeParagraph      = "paragraph"
	TypeHeading        = "heading"
	TypeText           = "text"
	TypeHardBreak      = "hardBreak"
	TypeBulletList     = "bulletList"
	TypeOrderedList    = "orderedList"
	TypeListItem       = "listItem"
	TypeBlockquote     = "blockquote"
	TypeCodeBlock      = "codeBlock"
	TypeHorizontalRule = "horizontalRule"
	TypeImage          = "image"
	TypeTable          = "table"
	TypeTableBody      = "tbody"
	TypeTableRow       = "tableRow"
	TypeTableHeader    = "tableHeader"
	TypeTableCell      = "tableCell"
	TypeMergeTag       = "mergeTag"
)

// Mark types applied to text nodes.
const (
	MarkBold        = "bold"
	MarkItalic      = "italic"
	MarkUnderline   = "underline"
	MarkStrike      = "strike"
	MarkCode        = "code"
	MarkLink        = "link"
	MarkTextStyle   = "textStyle"
	MarkHighlight   = "highlight"
	MarkSubscript   = "subscript"
	MarkSuperscript = "superscript"
)

// ErrInvalidNode reports a node that cannot be decoded.
var ErrInvalidNode = errors.New("invalid node")

// Node is one element of a template content tree. Its JSON form matches the
// editor document format: {"type", "attrs", "content", "text", "marks"}.
type Node struct {
	Type    string
	Attrs   Attrs
	Content []*Node
	Text    string
	Marks   []Mark
}

// Mark is inline formatting on a text node.
type Mark struct {
	Type  string         `json:"type"`
	Attrs map[string]any `json:"attrs,omitempty"`
}

// StringAttr returns a string mark attribute, or "".
func (m Mark) StringAttr(name string) string {
	s, _ := m.Attrs[name].(string)
	return s
}

type wireNode struct {
	Type    string          `json:"type"`
	Attrs   json.RawMessage `json:"attrs,omitempty"`
	Content []*Node         `json:"content,omitempty"`
	Text    string          `json:"text,omitempty"`
	Marks   []Mark          `json:"marks,omitempty"`
}

type wireNodeOut struct {
	Type    string  `json:"type"`
	Attrs   Attrs   `json:"attrs,omitempty"`
	Content []*Node `json:"content,omitempty"`
	Text    string  `json:"text,omitempty"`
	Marks   []Mark  `json:"marks,omitempty"`
}

// UnmarshalJSON decodes a node and validates its attributes for its type.
func (n *Node) UnmarshalJSON(data []byte) error {
	var w wireNode
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	if w.Type == "" {
		return fmt.Errorf("%w: missing type", ErrInvalidNode)
	}
	for i, c := range w.Content {
		if c == nil {
			return fmt.Errorf("%w: %s: null child at %d", ErrInvalidNode, w.Type, i)
		}
	}

	attrs, err := decodeAttrs(w.Type, w.Attrs)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidNode, err)
	}

	*n = Node{
		Type:    w.Type,
		Attrs:   attrs,
		Content: w.Content,
		Text:    w.Text,
		Marks:   w.Marks,
	}
	return nil
}

// MarshalJSON encodes the node in editor document format.
func (n *Node) MarshalJSON() ([]byte, error) {
	return json.Marshal(wireNodeOut{
		Type:    n.Type,
		Attrs:   n.Attrs,
		Content: n.Content,
		Text:    n.Text,
		Marks:   n.Marks,
	})
}

// MergeTag returns the node's merge tag attributes when it is a merge tag.
func (n *Node) MergeTag() (MergeTagAttrs, bool) {
	if n == nil || n.Type != TypeMergeTag {
		return MergeTagAttrs{}, false
	}
	a, ok := n.Attrs.(MergeTagAttrs)
	return a, ok
}

// SuppressIfEmpty reports whether a merge tag or table row carries the
// suppress-if-empty flag.
func (n *Node) SuppressIfEmpty() bool {
	switch a := n.Attrs.(type) {
	case MergeTagAttrs:
		return a.SuppressIfEmpty
	case TableRowAttrs:
		return a.SuppressIfEmpty
	}
	return false
}

// Clone returns a deep copy of the tree rooted at n.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	out := &Node{Type: n.Type, Attrs: cloneAttrs(n.Attrs), Text: n.Text}
	if n.Marks != nil {
		out.Marks = make([]Mark, len(n.Marks))
		for i, m := range n.Marks {
			out.Marks[i] = Mark{Type: m.Type, Attrs: maps.Clone(m.Attrs)}
		}
	}
	if n.Content != nil {
		out.Content = make([]*Node, len(n.Content))
		for i, c := range n.Content {
			out.Content[i] = c.Clone()
		}
	}
	return out
}

func cloneAttrs(a Attrs) Attrs {
	switch x := a.(type) {
	case GenericAttrs:
		return maps.Clone(x)
	case CellAttrs:
		x.Colwidth = append([]int(nil), x.Colwidth...)
		return x
	default:
		// Remaining attrs are plain values.
		return a
	}
}

// Walk calls fn for n and each descendant in document order. Returning
// false from fn skips the node's children.
func Walk(n *Node, fn func(*Node) bool) {
	if n == nil || !fn(n) {
		return
	}
	for _, c := range n.Content {
		Walk(c, fn)
	}
}

// MergeTagKeys returns the distinct field keys referenced by merge tags,
// in first-seen order.
func MergeTagKeys(root *Node) []string {
	var keys []string
	seen := make(map[string]bool)
	Walk(root, func(n *Node) bool {
		if a, ok := n.MergeTag(); ok && !seen[a.FieldKey] {
			seen[a.FieldKey] = true
			keys = append(keys, a.FieldKey)
		}
		return true
	})
	return keys
}
