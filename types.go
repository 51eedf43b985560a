package docmerge

import (
	"github.com/alnah/go-docmerge/internal/content"
	"github.com/alnah/go-docmerge/internal/dataset"
	"github.com/alnah/go-docmerge/internal/export"
)

// Dataset types.
type (
	Dataset       = dataset.Dataset
	Field         = dataset.Field
	FieldType     = dataset.FieldType
	Record        = dataset.Record
	Issue         = dataset.Issue
	HeaderMapping = dataset.HeaderMapping
	ImportResult  = dataset.Result
	Limits        = dataset.Limits
)

// Field types.
const (
	TypeString   = dataset.TypeString
	TypeNumber   = dataset.TypeNumber
	TypeDate     = dataset.TypeDate
	TypeBoolean  = dataset.TypeBoolean
	TypeCurrency = dataset.TypeCurrency
)

// Template types.
type (
	TemplateDoc = content.TemplateDoc
	Node        = content.Node
	Page        = content.Page
	Styles      = content.Styles
)

// Format is an export file format.
type Format = export.Format

// Export formats.
const (
	FormatPDF  = export.FormatPDF
	FormatDOCX = export.FormatDOCX
	FormatHTML = export.FormatHTML
)

// File is an exported document or bundle.
type File = export.File

// Artifact is one generated document before export.
type Artifact struct {
	// Index is the source row in Dataset.Rows.
	Index    int
	Filename string
	HTML     string
	// Err is set when the row failed and HTML holds the placeholder.
	Err error
}

// DefaultLimits returns the default import limits.
func DefaultLimits() Limits {
	return dataset.DefaultLimits()
}

// ParseFormat accepts pdf, docx or html in any case.
func ParseFormat(s string) (Format, error) {
	return export.ParseFormat(s)
}
