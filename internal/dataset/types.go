package dataset

import "time"

// FieldType is the inferred kind of a dataset column.
type FieldType string

// Field types, in tie-break order.
const (
	TypeString   FieldType = "string"
	TypeNumber   FieldType = "number"
	TypeDate     FieldType = "date"
	TypeBoolean  FieldType = "boolean"
	TypeCurrency FieldType = "currency"
)

// fieldTypeOrder is the enumeration order used to break inference ties.
var fieldTypeOrder = []FieldType{TypeString, TypeNumber, TypeDate, TypeBoolean, TypeCurrency}

// Field describes one dataset column.
type Field struct {
	Key         string    `json:"key"`
	Label       string    `json:"label"`
	Type        FieldType `json:"type"`
	SourceLabel string    `json:"sourceLabel,omitempty"` // header before normalization
}

// Record maps field keys to cell values.
type Record map[string]any

// SourceType identifies the import format.
type SourceType string

// Supported source types.
const (
	SourceCSV  SourceType = "csv"
	SourceJSON SourceType = "json"
	SourceXLSX SourceType = "xlsx"
)

// SourceMeta describes where a dataset came from.
type SourceMeta struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Type       SourceType `json:"type"`
	Size       int64      `json:"size"`
	ImportedAt time.Time  `json:"importedAt"`
}

// Dataset is an imported table. Every row carries exactly the field key set.
type Dataset struct {
	Fields     []Field    `json:"fields"`
	Rows       []Record   `json:"rows"`
	SourceMeta SourceMeta `json:"sourceMeta"`
}

// FieldByKey returns the field with the given key.
func (d *Dataset) FieldByKey(key string) (Field, bool) {
	for _, f := range d.Fields {
		if f.Key == key {
			return f, true
		}
	}
	return Field{}, false
}

// Issue is a non-fatal import problem. Row is 1-based with the header as row 1.
type Issue struct {
	Row     int    `json:"row"`
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

// HeaderMapping pairs an original header with its normalized key.
type HeaderMapping struct {
	Original string `json:"original"`
	Key      string `json:"key"`
}

// Result is the outcome of a successful import.
type Result struct {
	Dataset *Dataset        `json:"dataset"`
	Issues  []Issue         `json:"issues"`
	Headers []HeaderMapping `json:"headers"`
}

// Default import limits.
const (
	DefaultMaxRows         = 5000
	DefaultMaxColumns      = 200
	DefaultMaxHeaderLength = 120
	DefaultMaxCellLength   = 10000
)

// Limits bounds an import. Zero values fall back to the defaults.
type Limits struct {
	MaxRows         int
	MaxColumns      int
	MaxHeaderLength int
	MaxCellLength   int
}

// DefaultLimits returns the default import limits.
func DefaultLimits() Limits {
	return Limits{
		MaxRows:         DefaultMaxRows,
		MaxColumns:      DefaultMaxColumns,
		MaxHeaderLength: DefaultMaxHeaderLength,
		MaxCellLength:   DefaultMaxCellLength,
	}
}

func (l Limits) withDefaults() Limits {
	if l.MaxRows <= 0 {
		l.MaxRows = DefaultMaxRows
	}
	if l.MaxColumns <= 0 {
		l.MaxColumns = DefaultMaxColumns
	}
	if l.MaxHeaderLength <= 0 {
		l.MaxHeaderLength = DefaultMaxHeaderLength
	}
	if l.MaxCellLength <= 0 {
		l.MaxCellLength = DefaultMaxCellLength
	}
	return l
}
