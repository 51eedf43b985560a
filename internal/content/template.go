package content

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
)

// ErrMalformedTemplate is returned when a template document fails shape
// validation.
var ErrMalformedTemplate = errors.New("imported template is malformed")

// Page sizes.
const (
	PageLetter = "Letter"
	PageA4     = "A4"
)

// Orientations.
const (
	OrientationPortrait  = "portrait"
	OrientationLandscape = "landscape"
)

// Themes.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// Style defaults.
const (
	DefaultFontFamily       = "Inter, system-ui, sans-serif"
	DefaultBaseFontSize     = 14
	DefaultTextColor        = "#0f172a"
	DefaultHeadingColor     = "#111827"
	DefaultHeadingWeight    = "700"
	DefaultLineHeight       = 1.6
	DefaultParagraphSpacing = 16
	DefaultLinkColor        = "#2563eb"
	DefaultHighlightColor   = "#fef08a"
	DefaultBulletStyle      = "disc"
	DefaultNumberedStyle    = "decimal"
	DefaultMarginPt         = 72

	darkTextColor    = "#e2e8f0"
	darkHeadingColor = "#f8fafc"
)

// Margins are page margins in points.
type Margins struct {
	Top    float64 `json:"top"`
	Right  float64 `json:"right"`
	Bottom float64 `json:"bottom"`
	Left   float64 `json:"left"`
}

// Page holds page geometry.
type Page struct {
	Size        string  `json:"size"`
	Orientation string  `json:"orientation"`
	Margins     Margins `json:"margins"`
}

// Styles is the document typography.
type Styles struct {
	FontFamily        string  `json:"fontFamily"`
	BaseFontSize      float64 `json:"baseFontSize"`
	Theme             string  `json:"theme"`
	TextColor         string  `json:"textColor,omitempty"`
	HeadingFontFamily string  `json:"headingFontFamily,omitempty"`
	HeadingWeight     string  `json:"headingWeight,omitempty"`
	HeadingColor      string  `json:"headingColor,omitempty"`
	HeadingTransform  string  `json:"headingTransform,omitempty"`
	TextTransform     string  `json:"textTransform,omitempty"`
	ParagraphAlign    string  `json:"paragraphAlign,omitempty"`
	LineHeight        float64 `json:"lineHeight,omitempty"`
	ParagraphSpacing  float64 `json:"paragraphSpacing,omitempty"`
	LetterSpacing     float64 `json:"letterSpacing"`
	BulletStyle       string  `json:"bulletStyle,omitempty"`
	NumberedStyle     string  `json:"numberedStyle,omitempty"`
	LinkColor         string  `json:"linkColor,omitempty"`
	HighlightColor    string  `json:"highlightColor,omitempty"`
}

// TemplateDoc is a complete template: content tree, page geometry and
// typography.
type TemplateDoc struct {
	Content *Node  `json:"content"`
	Page    Page   `json:"page"`
	Styles  Styles `json:"styles"`
}

// DefaultPage returns Letter portrait with one-inch margins.
func DefaultPage() Page {
	return Page{
		Size:        PageLetter,
		Orientation: OrientationPortrait,
		Margins:     Margins{DefaultMarginPt, DefaultMarginPt, DefaultMarginPt, DefaultMarginPt},
	}
}

// DefaultStyles returns the light theme typography.
func DefaultStyles() Styles {
	return Styles{
		FontFamily:        DefaultFontFamily,
		BaseFontSize:      DefaultBaseFontSize,
		Theme:             ThemeLight,
		TextColor:         DefaultTextColor,
		HeadingFontFamily: DefaultFontFamily,
		HeadingWeight:     DefaultHeadingWeight,
		HeadingColor:      DefaultHeadingColor,
		HeadingTransform:  "none",
		TextTransform:     "none",
		ParagraphAlign:    "left",
		LineHeight:        DefaultLineHeight,
		ParagraphSpacing:  DefaultParagraphSpacing,
		BulletStyle:       DefaultBulletStyle,
		NumberedStyle:     DefaultNumberedStyle,
		LinkColor:         DefaultLinkColor,
		HighlightColor:    DefaultHighlightColor,
	}
}

// DefaultTemplate returns an empty document with default page and styles.
func DefaultTemplate() *TemplateDoc {
	return &TemplateDoc{
		Content: &Node{Type: TypeDoc, Content: []*Node{{Type: TypeParagraph, Attrs: ParagraphAttrs{}}}},
		Page:    DefaultPage(),
		Styles:  DefaultStyles(),
	}
}

// ResolvedTextColor returns the body color, swapping the light default for
// its dark counterpart under the dark theme.
func (s Styles) ResolvedTextColor() string {
	c := s.TextColor
	if c == "" {
		c = DefaultTextColor
	}
	if s.Theme == ThemeDark && c == DefaultTextColor {
		return darkTextColor
	}
	return c
}

// ResolvedHeadingColor is ResolvedTextColor for headings.
func (s Styles) ResolvedHeadingColor() string {
	c := s.HeadingColor
	if c == "" {
		c = DefaultHeadingColor
	}
	if s.Theme == ThemeDark && c == DefaultHeadingColor {
		return darkHeadingColor
	}
	return c
}

// withDefaults fills unset optional fields.
func (s Styles) withDefaults() Styles {
	d := DefaultStyles()
	setString := func(dst *string, def string) {
		if *dst == "" {
			*dst = def
		}
	}
	setString(&s.TextColor, d.TextColor)
	setString(&s.HeadingFontFamily, s.FontFamily)
	setString(&s.HeadingWeight, d.HeadingWeight)
	setString(&s.HeadingColor, d.HeadingColor)
	setString(&s.HeadingTransform, d.HeadingTransform)
	setString(&s.TextTransform, d.TextTransform)
	setString(&s.ParagraphAlign, d.ParagraphAlign)
	setString(&s.BulletStyle, d.BulletStyle)
	setString(&s.NumberedStyle, d.NumberedStyle)
	setString(&s.LinkColor, d.LinkColor)
	setString(&s.HighlightColor, d.HighlightColor)
	if s.LineHeight == 0 {
		s.LineHeight = d.LineHeight
	}
	if s.ParagraphSpacing == 0 {
		s.ParagraphSpacing = d.ParagraphSpacing
	}
	return s
}

// DimensionsPx returns the page width and height in CSS pixels at 96 dpi.
func (p Page) DimensionsPx() (width, height float64) {
	width, height = 816, 1056
	if p.Size == PageA4 {
		width, height = 794, 1123
	}
	if p.Orientation == OrientationLandscape {
		width, height = height, width
	}
	return width, height
}

// DimensionsInches returns the page width and height in inches.
func (p Page) DimensionsInches() (width, height float64) {
	w, h := p.DimensionsPx()
	return w / 96, h / 96
}

// PtToPx converts points to CSS pixels.
func PtToPx(v float64) float64 {
	return v / 72 * 96
}

// ParseTemplate decodes and validates a template document. Required fields
// are content, page (size, orientation, four margins) and styles
// (fontFamily, baseFontSize, theme). Optional style fields get defaults.
func ParseTemplate(data []byte) (*TemplateDoc, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, malformed("$", err.Error())
	}

	content, ok := raw["content"]
	if !ok || !isJSONObject(content) {
		return nil, malformed("content", "must be an object")
	}
	var root Node
	if err := json.Unmarshal(content, &root); err != nil {
		return nil, malformed("content", err.Error())
	}

	page, err := parsePage(raw["page"])
	if err != nil {
		return nil, err
	}
	styles, err := parseStyles(raw["styles"])
	if err != nil {
		return nil, err
	}

	return &TemplateDoc{Content: &root, Page: page, Styles: styles.withDefaults()}, nil
}

func parsePage(data json.RawMessage) (Page, error) {
	if !isJSONObject(data) {
		return Page{}, malformed("page", "must be an object")
	}
	var w struct {
		Size        string `json:"size"`
		Orientation string `json:"orientation"`
		Margins     *struct {
			Top, Right, Bottom, Left *float64
		} `json:"margins"`
	}
	if err := json.Unmarshal(data, &w); err != nil {
		return Page{}, malformed("page", err.Error())
	}
	if w.Size != PageLetter && w.Size != PageA4 {
		return Page{}, malformed("page.size", fmt.Sprintf("%q is not Letter or A4", w.Size))
	}
	if w.Orientation != OrientationPortrait && w.Orientation != OrientationLandscape {
		return Page{}, malformed("page.orientation", fmt.Sprintf("%q is not portrait or landscape", w.Orientation))
	}
	if w.Margins == nil {
		return Page{}, malformed("page.margins", "required")
	}
	m := w.Margins
	sides := []struct {
		name string
		v    *float64
	}{{"top", m.Top}, {"right", m.Right}, {"bottom", m.Bottom}, {"left", m.Left}}
	for _, s := range sides {
		if s.v == nil {
			return Page{}, malformed("page.margins."+s.name, "required")
		}
	}
	return Page{
		Size:        w.Size,
		Orientation: w.Orientation,
		Margins:     Margins{Top: *m.Top, Right: *m.Right, Bottom: *m.Bottom, Left: *m.Left},
	}, nil
}

func parseStyles(data json.RawMessage) (Styles, error) {
	if !isJSONObject(data) {
		return Styles{}, malformed("styles", "must be an object")
	}
	var probe struct {
		FontFamily   *string  `json:"fontFamily"`
		BaseFontSize *float64 `json:"baseFontSize"`
		Theme        string   `json:"theme"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return Styles{}, malformed("styles", err.Error())
	}
	if probe.FontFamily == nil {
		return Styles{}, malformed("styles.fontFamily", "required")
	}
	if probe.BaseFontSize == nil || math.IsNaN(*probe.BaseFontSize) || math.IsInf(*probe.BaseFontSize, 0) {
		return Styles{}, malformed("styles.baseFontSize", "must be a finite number")
	}
	if probe.Theme != ThemeLight && probe.Theme != ThemeDark {
		return Styles{}, malformed("styles.theme", fmt.Sprintf("%q is not light or dark", probe.Theme))
	}

	var s Styles
	if err := json.Unmarshal(data, &s); err != nil {
		return Styles{}, malformed("styles", err.Error())
	}
	return s, nil
}

// MarshalTemplate encodes a template document as indented JSON.
func MarshalTemplate(doc *TemplateDoc) ([]byte, error) {
	if doc == nil || doc.Content == nil {
		return nil, malformed("content", "must be an object")
	}
	return json.MarshalIndent(doc, "", "  ")
}

func isJSONObject(data json.RawMessage) bool {
	trimmed := bytes.TrimSpace(data)
	return len(trimmed) > 0 && trimmed[0] == '{'
}

func malformed(path, reason string) error {
	return fmt.Errorf("%w: %s: %s", ErrMalformedTemplate, path, reason)
}
