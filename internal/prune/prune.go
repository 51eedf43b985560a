// Package prune removes template content that has no data for a record.
//
// Merge tags flagged suppressIfEmpty disappear when their value is blank.
// Blocks whose flagged tags were all suppressed go with them, as do
// suppressible table rows without any value and containers left empty.
package prune

import (
	"strings"

	"github.com/alnah/go-docmerge/internal/content"
	"github.com/alnah/go-docmerge/internal/merge"
)

// result summarizes a pruned subtree.
type result struct {
	node         *content.Node
	hasValue     bool
	suppressible int
	suppressed   int
}

func (r *result) add(child result) {
	r.hasValue = r.hasValue || child.hasValue
	r.suppressible += child.suppressible
	r.suppressed += child.suppressed
}

// Prune returns a copy of root with suppressed content removed for record.
// The root itself is always kept. A nil record returns root unchanged.
func Prune(root *content.Node, record map[string]any) *content.Node {
	if root == nil || record == nil {
		return root
	}
	if len(root.Content) == 0 {
		return root.Clone()
	}
	out := shallowCopy(root)
	out.Content = make([]*content.Node, 0, len(root.Content))
	for _, child := range root.Content {
		if r := pruneNode(child, record); r.node != nil {
			out.Content = append(out.Content, r.node)
		}
	}
	return out
}

func pruneNode(n *content.Node, record map[string]any) result {
	if tag, ok := n.MergeTag(); ok {
		return pruneMergeTag(n, tag, record)
	}

	if len(n.Content) == 0 {
		return result{node: n.Clone()}
	}

	out := shallowCopy(n)
	var r result
	out.Content = make([]*content.Node, 0, len(n.Content))
	for _, child := range n.Content {
		cr := pruneNode(child, record)
		r.add(cr)
		if cr.node != nil {
			out.Content = append(out.Content, cr.node)
		}
	}

	if !shouldDrop(out, r) {
		r.node = out
	}
	return r
}

func pruneMergeTag(n *content.Node, tag content.MergeTagAttrs, record map[string]any) result {
	hasValue := strings.TrimSpace(merge.FormatValue(merge.Lookup(record, tag.FieldKey))) != ""
	r := result{hasValue: hasValue}
	if tag.SuppressIfEmpty {
		r.suppressible = 1
		if !hasValue {
			r.suppressed = 1
			return r
		}
	}
	r.node = n.Clone()
	return r
}

// shouldDrop applies the removal rules to a node whose children have
// already been pruned.
func shouldDrop(n *content.Node, r result) bool {
	switch n.Type {
	case content.TypeTableRow:
		return n.SuppressIfEmpty() && !r.hasValue
	case content.TypeParagraph, content.TypeHeading, content.TypeBlockquote, content.TypeListItem:
		return r.suppressible > 0 && r.suppressible == r.suppressed && !r.hasValue
	case content.TypeBulletList, content.TypeOrderedList, content.TypeTable, content.TypeTableBody:
		return len(n.Content) == 0
	default:
		return false
	}
}

// shallowCopy copies n without its children. Attribute values are
// duplicated so the copy never aliases the input.
func shallowCopy(n *content.Node) *content.Node {
	return (&content.Node{Type: n.Type, Attrs: n.Attrs, Text: n.Text, Marks: n.Marks}).Clone()
}
