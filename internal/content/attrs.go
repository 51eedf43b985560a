package content

import (
	"encoding/json"
	"fmt"
)

// Attrs is the typed attribute set of a node. Known node types decode into
// their own struct; unknown types keep a GenericAttrs map.
type Attrs interface {
	isAttrs()
}

// MergeTagAttrs binds an inline placeholder to a dataset field.
type MergeTagAttrs struct {
	FieldKey        string `json:"fieldKey"`
	Label           string `json:"label,omitempty"`
	SuppressIfEmpty bool   `json:"suppressIfEmpty,omitempty"`
}

// TableRowAttrs controls row suppression.
type TableRowAttrs struct {
	SuppressIfEmpty bool `json:"suppressIfEmpty,omitempty"`
}

// HeadingAttrs describes a heading block.
type HeadingAttrs struct {
	Level     int    `json:"level"`
	TextAlign string `json:"textAlign,omitempty"`
}

// ParagraphAttrs describes a paragraph block.
type ParagraphAttrs struct {
	TextAlign string `json:"textAlign,omitempty"`
}

// OrderedListAttrs describes an ordered list.
type OrderedListAttrs struct {
	Start int `json:"start"`
}

// CodeBlockAttrs describes a fenced code block.
type CodeBlockAttrs struct {
	Language string `json:"language,omitempty"`
}

// ImageAttrs describes an image. WidthPercent is relative to the page body.
type ImageAttrs struct {
	Src          string  `json:"src"`
	Alt          string  `json:"alt,omitempty"`
	Title        string  `json:"title,omitempty"`
	WidthPercent float64 `json:"widthPercent,omitempty"`
	Alignment    string  `json:"alignment,omitempty"` // inline, left, center, right
}

// TableAttrs describes table presentation.
type TableAttrs struct {
	TableStyle  string `json:"tableStyle,omitempty"` // grid, minimal, ...
	Stripe      string `json:"stripe,omitempty"`     // none, rows, ...
	BorderColor string `json:"borderColor,omitempty"`
	BorderWidth string `json:"borderWidth,omitempty"`
	BorderStyle string `json:"borderStyle,omitempty"`
	StripeColor string `json:"stripeColor,omitempty"`
}

// CellAttrs describes a table cell or header cell.
type CellAttrs struct {
	Colspan         int    `json:"colspan,omitempty"`
	Rowspan         int    `json:"rowspan,omitempty"`
	Colwidth        []int  `json:"colwidth,omitempty"`
	BackgroundColor string `json:"backgroundColor,omitempty"`
}

// GenericAttrs holds attributes of node types without a typed schema.
type GenericAttrs map[string]any

func (MergeTagAttrs) isAttrs()    {}
func (TableRowAttrs) isAttrs()    {}
func (HeadingAttrs) isAttrs()     {}
func (ParagraphAttrs) isAttrs()   {}
func (OrderedListAttrs) isAttrs() {}
func (CodeBlockAttrs) isAttrs()   {}
func (ImageAttrs) isAttrs()       {}
func (TableAttrs) isAttrs()       {}
func (CellAttrs) isAttrs()        {}
func (GenericAttrs) isAttrs()     {}

// Table defaults.
const (
	DefaultTableStyle       = "grid"
	DefaultTableStripe      = "none"
	DefaultTableBorderColor = "#e2e8f0"
	DefaultTableBorderWidth = "1px"
	DefaultTableBorderStyle = "solid"
	DefaultTableStripeColor = "rgba(148, 163, 184, 0.12)"
	DefaultImageWidth       = 60
	DefaultImageAlignment   = "inline"
)

// decodeAttrs decodes raw attributes for nodeType and validates them.
// A missing attrs object yields the type's defaults.
func decodeAttrs(nodeType string, raw json.RawMessage) (Attrs, error) {
	empty := len(raw) == 0 || string(raw) == "null"

	switch nodeType {
	case TypeMergeTag:
		var a MergeTagAttrs
		if err := unmarshalAttrs(raw, empty, &a); err != nil {
			return nil, err
		}
		if a.FieldKey == "" {
			return nil, fmt.Errorf("mergeTag: fieldKey is required")
		}
		return a, nil

	case TypeTableRow:
		var a TableRowAttrs
		if err := unmarshalAttrs(raw, empty, &a); err != nil {
			return nil, err
		}
		return a, nil

	case TypeHeading:
		a := HeadingAttrs{Level: 1}
		if err := unmarshalAttrs(raw, empty, &a); err != nil {
			return nil, err
		}
		if a.Level < 1 || a.Level > 6 {
			return nil, fmt.Errorf("heading: level %d out of range 1-6", a.Level)
		}
		return a, nil

	case TypeParagraph:
		var a ParagraphAttrs
		if err := unmarshalAttrs(raw, empty, &a); err != nil {
			return nil, err
		}
		return a, nil

	case TypeOrderedList:
		a := OrderedListAttrs{Start: 1}
		if err := unmarshalAttrs(raw, empty, &a); err != nil {
			return nil, err
		}
		return a, nil

	case TypeCodeBlock:
		var a CodeBlockAttrs
		if err := unmarshalAttrs(raw, empty, &a); err != nil {
			return nil, err
		}
		return a, nil

	case TypeImage:
		a := ImageAttrs{WidthPercent: DefaultImageWidth, Alignment: DefaultImageAlignment}
		if err := unmarshalAttrs(raw, empty, &a); err != nil {
			return nil, err
		}
		if a.WidthPercent < 0 || a.WidthPercent > 100 {
			return nil, fmt.Errorf("image: widthPercent %v out of range 0-100", a.WidthPercent)
		}
		return a, nil

	case TypeTable:
		a := TableAttrs{
			TableStyle:  DefaultTableStyle,
			Stripe:      DefaultTableStripe,
			BorderColor: DefaultTableBorderColor,
			BorderWidth: DefaultTableBorderWidth,
			BorderStyle: DefaultTableBorderStyle,
			StripeColor: DefaultTableStripeColor,
		}
		if err := unmarshalAttrs(raw, empty, &a); err != nil {
			return nil, err
		}
		return a, nil

	case TypeTableCell, TypeTableHeader:
		a := CellAttrs{Colspan: 1, Rowspan: 1}
		if err := unmarshalAttrs(raw, empty, &a); err != nil {
			return nil, err
		}
		if a.Colspan < 1 || a.Rowspan < 1 {
			return nil, fmt.Errorf("%s: colspan and rowspan must be positive", nodeType)
		}
		return a, nil

	default:
		if empty {
			return nil, nil
		}
		var a GenericAttrs
		if err := json.Unmarshal(raw, &a); err != nil {
			return nil, fmt.Errorf("%s: attrs: %v", nodeType, err)
		}
		return a, nil
	}
}

func unmarshalAttrs(raw json.RawMessage, empty bool, dst any) error {
	if empty {
		return nil
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("attrs: %v", err)
	}
	return nil
}
