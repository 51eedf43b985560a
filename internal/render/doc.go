// Package render turns a template content tree into HTML.
//
// A Renderer is built once per generation batch. It holds the document
// template, the base stylesheet and the code highlighter; Fragment renders
// one record's content and Document wraps a fragment with the template's
// page and typography CSS.
package render
