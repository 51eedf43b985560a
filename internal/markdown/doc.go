// Package markdown converts Markdown templates into the content tree used
// for generation.
//
// GitHub Flavored Markdown is parsed with goldmark. Merge tags are written
// inline as {{field}}, or {{field?}} to suppress the enclosing block when
// the value is empty; {{field|Label}} sets the tag's label. A table row
// that holds a suppressible tag is itself marked suppressIfEmpty, so rows
// of optional figures disappear together. ==text== becomes a highlight.
package markdown
