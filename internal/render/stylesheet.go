package render

import (
	"strconv"
	"strings"

	"github.com/alnah/go-docmerge/internal/content"
)

const (
	lightBackground = "#ffffff"
	darkBackground  = "#0f172a"
)

// StyleSheet builds the page rules and document variables for one
// template. Values that could escape a declaration are replaced by their
// defaults.
func StyleSheet(page content.Page, s content.Styles) string {
	d := content.DefaultStyles()
	widthIn, heightIn := page.DimensionsInches()
	m := page.Margins
	widthPx, _ := page.DimensionsPx()

	background := lightBackground
	if s.Theme == content.ThemeDark {
		background = darkBackground
	}
	baseSize := s.BaseFontSize
	if baseSize <= 0 {
		baseSize = d.BaseFontSize
	}
	lineHeight := s.LineHeight
	if lineHeight <= 0 {
		lineHeight = d.LineHeight
	}

	var b strings.Builder

	b.WriteString("@page {\n")
	b.WriteString("  size: " + formatFloat(widthIn) + "in " + formatFloat(heightIn) + "in;\n")
	b.WriteString("  margin: " + pt(m.Top) + " " + pt(m.Right) + " " + pt(m.Bottom) + " " + pt(m.Left) + ";\n")
	b.WriteString("}\n\n")

	b.WriteString(":root {\n")
	writeVar(&b, "--dm-page-background", background)
	writeVar(&b, "--dm-body-color", cssValue(s.ResolvedTextColor(), content.DefaultTextColor))
	writeVar(&b, "--dm-heading-font-family", cssValue(s.HeadingFontFamily, cssValue(s.FontFamily, d.FontFamily)))
	writeVar(&b, "--dm-heading-weight", cssValue(s.HeadingWeight, d.HeadingWeight))
	writeVar(&b, "--dm-heading-color", cssValue(s.ResolvedHeadingColor(), content.DefaultHeadingColor))
	writeVar(&b, "--dm-heading-transform", cssValue(s.HeadingTransform, d.HeadingTransform))
	writeVar(&b, "--dm-paragraph-spacing", formatFloat(nonNegative(s.ParagraphSpacing))+"px")
	writeVar(&b, "--dm-link-color", cssValue(s.LinkColor, d.LinkColor))
	writeVar(&b, "--dm-highlight-color", cssValue(s.HighlightColor, d.HighlightColor))
	writeVar(&b, "--dm-bullet-style", cssValue(s.BulletStyle, d.BulletStyle))
	writeVar(&b, "--dm-number-style", cssValue(s.NumberedStyle, d.NumberedStyle))
	b.WriteString("}\n\n")

	b.WriteString(".dm-document {\n")
	b.WriteString("  font-family: " + cssValue(s.FontFamily, d.FontFamily) + ";\n")
	b.WriteString("  font-size: " + formatFloat(baseSize) + "px;\n")
	b.WriteString("  line-height: " + formatFloat(lineHeight) + ";\n")
	b.WriteString("  letter-spacing: " + formatFloat(s.LetterSpacing) + "px;\n")
	b.WriteString("  text-transform: " + cssValue(s.TextTransform, d.TextTransform) + ";\n")
	b.WriteString("  text-align: " + cssValue(s.ParagraphAlign, d.ParagraphAlign) + ";\n")
	b.WriteString("  color: var(--dm-body-color);\n")
	b.WriteString("}\n\n")

	// On screen the margins become padding around a page-width column.
	b.WriteString("@media screen {\n")
	b.WriteString("  .dm-document {\n")
	b.WriteString("    max-width: " + formatFloat(widthPx) + "px;\n")
	b.WriteString("    margin: 0 auto;\n")
	b.WriteString("    padding: " + px(m.Top) + " " + px(m.Right) + " " + px(m.Bottom) + " " + px(m.Left) + ";\n")
	b.WriteString("  }\n")
	b.WriteString("}\n")

	return b.String()
}

func writeVar(b *strings.Builder, name, value string) {
	b.WriteString("  " + name + ": " + value + ";\n")
}

// cssValue returns v unless it is empty or could break out of a single
// declaration.
func cssValue(v, def string) string {
	v = strings.TrimSpace(v)
	if v == "" || strings.ContainsAny(v, ";{}<>\\\n\r") {
		return def
	}
	return v
}

// cssDecls joins name/value pairs into inline declarations, skipping
// empty or unsafe values.
func cssDecls(pairs ...string) string {
	var parts []string
	for i := 0; i+1 < len(pairs); i += 2 {
		if v := cssValue(pairs[i+1], ""); v != "" {
			parts = append(parts, pairs[i]+": "+v)
		}
	}
	return strings.Join(parts, "; ")
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func nonNegative(f float64) float64 {
	if f < 0 {
		return 0
	}
	return f
}

func pt(v float64) string {
	return formatFloat(nonNegative(v)) + "pt"
}

func px(v float64) string {
	return formatFloat(content.PtToPx(nonNegative(v))) + "px"
}
