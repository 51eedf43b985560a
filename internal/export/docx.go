package export

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/klauspost/compress/zip"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Numbering definitions declared in numbering.xml.
const (
	numBullet  = 1
	numDecimal = 2
	maxListLvl = 8
)

type runProps struct {
	bold, italic, underline, strike bool
	code, highlight                 bool
	vertAlign                       string // superscript, subscript
	link                            string // relationship id
}

type run struct {
	text  string
	br    bool
	props runProps
}

type paragraph struct {
	style string
	align string
	numID int
	ilvl  int
	runs  []run
}

type listCtx struct {
	numID int
}

// docxBuilder walks parsed HTML and writes WordprocessingML body content.
type docxBuilder struct {
	out   *bytes.Buffer
	cur   *paragraph
	lists []listCtx
	pre   bool
	rels  *relations
}

// relations collects hyperlink targets for document.xml.rels.
type relations struct {
	links []string
}

func (r *relations) add(target string) string {
	r.links = append(r.links, target)
	// rId1 and rId2 are taken by styles and numbering.
	return "rId" + strconv.Itoa(len(r.links)+2)
}

// HTMLToDOCX converts a rendered HTML document into a .docx package.
func HTMLToDOCX(htmlContent, title string, now time.Time) ([]byte, error) {
	root, err := html.Parse(strings.NewReader(htmlContent))
	if err != nil {
		return nil, fmt.Errorf("%w: parsing HTML: %v", ErrDOCXGeneration, err)
	}

	b := &docxBuilder{out: &bytes.Buffer{}, rels: &relations{}}
	b.blockChildren(findBody(root), runProps{})
	b.flush()

	var doc bytes.Buffer
	doc.WriteString(xml.Header)
	doc.WriteString(`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main" xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships"><w:body>`)
	doc.Write(b.out.Bytes())
	doc.WriteString(`<w:sectPr><w:pgSz w:w="12240" w:h="15840"/><w:pgMar w:top="1440" w:right="1440" w:bottom="1440" w:left="1440" w:header="720" w:footer="720" w:gutter="0"/></w:sectPr>`)
	doc.WriteString(`</w:body></w:document>`)

	parts := []struct {
		name string
		data string
	}{
		{"[Content_Types].xml", contentTypesXML},
		{"_rels/.rels", packageRelsXML},
		{"docProps/core.xml", corePropsXML(title, now)},
		{"word/document.xml", doc.String()},
		{"word/styles.xml", stylesXML},
		{"word/numbering.xml", numberingXML},
		{"word/_rels/document.xml.rels", documentRelsXML(b.rels)},
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, p := range parts {
		w, err := zw.CreateHeader(&zip.FileHeader{Name: p.name, Method: zip.Deflate, Modified: now})
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrDOCXGeneration, err)
		}
		if _, err := w.Write([]byte(p.data)); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrDOCXGeneration, err)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDOCXGeneration, err)
	}
	return buf.Bytes(), nil
}

// findBody returns the <body> element, or root when there is none.
func findBody(root *html.Node) *html.Node {
	var find func(*html.Node) *html.Node
	find = func(n *html.Node) *html.Node {
		if n.Type == html.ElementNode && n.DataAtom == atom.Body {
			return n
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if b := find(c); b != nil {
				return b
			}
		}
		return nil
	}
	if b := find(root); b != nil {
		return b
	}
	return root
}

func (b *docxBuilder) blockChildren(n *html.Node, props runProps) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		b.visit(c, props)
	}
}

func (b *docxBuilder) visit(n *html.Node, props runProps) {
	switch n.Type {
	case html.TextNode:
		b.text(n.Data, props)
		return
	case html.ElementNode:
	default:
		return
	}

	switch n.DataAtom {
	case atom.Head, atom.Style, atom.Script, atom.Title:
		return

	case atom.P:
		b.block(n, "", props)

	case atom.Div, atom.Article, atom.Section, atom.Main, atom.Header, atom.Footer:
		// Containers only break paragraphs; loose text inside them opens
		// one on demand.
		b.flush()
		b.blockChildren(n, props)
		b.flush()

	case atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6:
		b.block(n, "Heading"+n.Data[1:], props)

	case atom.Blockquote:
		b.flush()
		b.blockChildrenStyled(n, "Quote", props)

	case atom.Pre:
		b.flush()
		b.pre = true
		b.startParagraph("Code", "")
		b.blockChildren(n, props)
		b.flush()
		b.pre = false

	case atom.Ul, atom.Ol:
		b.flush()
		id := numBullet
		if n.DataAtom == atom.Ol {
			id = numDecimal
		}
		b.lists = append(b.lists, listCtx{numID: id})
		b.blockChildren(n, props)
		b.flush()
		b.lists = b.lists[:len(b.lists)-1]

	case atom.Li:
		b.flush()
		b.startListItem()
		b.blockChildren(n, props)
		b.flush()

	case atom.Table:
		b.flush()
		b.table(n, props)

	case atom.Hr:
		b.flush()
		b.out.WriteString(`<w:p><w:pPr><w:pBdr><w:bottom w:val="single" w:sz="6" w:space="1" w:color="auto"/></w:pBdr></w:pPr></w:p>`)

	case atom.Br:
		b.ensureParagraph()
		b.cur.runs = append(b.cur.runs, run{br: true, props: props})

	case atom.Img:
		if alt := attr(n, "alt"); alt != "" {
			p := props
			p.italic = true
			b.text("["+alt+"]", p)
		}

	default:
		b.blockChildren(n, inlineProps(n, props, b.rels))
	}
}

// blockChildrenStyled applies style to paragraphs started inside n that
// have none of their own.
func (b *docxBuilder) blockChildrenStyled(n *html.Node, style string, props runProps) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.DataAtom == atom.P {
			b.block(c, style, props)
			continue
		}
		b.visit(c, props)
	}
	b.flush()
}

func (b *docxBuilder) block(n *html.Node, style string, props runProps) {
	// The first paragraph of a list item carries the item's numbering.
	if b.cur == nil || b.cur.numID == 0 || len(b.cur.runs) > 0 {
		b.flush()
		b.startParagraph(style, alignment(attr(n, "style")))
	}
	b.blockChildren(n, props)
	b.flush()
}

func (b *docxBuilder) startParagraph(style, align string) {
	b.cur = &paragraph{style: style, align: align}
}

func (b *docxBuilder) startListItem() {
	l := b.lists[len(b.lists)-1]
	lvl := len(b.lists) - 1
	if lvl > maxListLvl {
		lvl = maxListLvl
	}
	b.cur = &paragraph{style: "ListParagraph", numID: l.numID, ilvl: lvl}
}

func (b *docxBuilder) ensureParagraph() {
	if b.cur == nil {
		b.startParagraph("", "")
	}
}

func (b *docxBuilder) text(s string, props runProps) {
	if b.pre {
		b.ensureParagraph()
		lines := strings.Split(s, "\n")
		for i, line := range lines {
			if i > 0 {
				b.cur.runs = append(b.cur.runs, run{br: true, props: props})
			}
			if line != "" {
				b.cur.runs = append(b.cur.runs, run{text: line, props: props})
			}
		}
		return
	}

	collapsed := strings.Join(strings.Fields(s), " ")
	if collapsed == "" {
		// Whitespace between blocks is dropped; inside a paragraph it
		// separates words.
		if b.cur != nil && len(b.cur.runs) > 0 {
			b.cur.runs = append(b.cur.runs, run{text: " ", props: props})
		}
		return
	}
	if isSpace(s[0]) && b.cur != nil && len(b.cur.runs) > 0 {
		collapsed = " " + collapsed
	}
	if isSpace(s[len(s)-1]) {
		collapsed += " "
	}
	b.ensureParagraph()
	b.cur.runs = append(b.cur.runs, run{text: collapsed, props: props})
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\n' || c == '\t' || c == '\r' || c == '\f'
}

func (b *docxBuilder) flush() {
	if b.cur == nil {
		return
	}
	p := b.cur
	b.cur = nil
	writeParagraph(b.out, p)
}

func (b *docxBuilder) table(n *html.Node, props runProps) {
	var rows []*html.Node
	var collect func(*html.Node)
	collect = func(n *html.Node) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			switch c.DataAtom {
			case atom.Tr:
				rows = append(rows, c)
			case atom.Thead, atom.Tbody, atom.Tfoot:
				collect(c)
			}
		}
	}
	collect(n)
	if len(rows) == 0 {
		return
	}

	cols := 0
	for _, r := range rows {
		span := 0
		for c := r.FirstChild; c != nil; c = c.NextSibling {
			if c.DataAtom == atom.Td || c.DataAtom == atom.Th {
				span += colspan(c)
			}
		}
		cols = max(cols, span)
	}
	if cols == 0 {
		return
	}
	width := 9360 / cols // text width in twips for Letter with 1in margins

	b.out.WriteString(`<w:tbl><w:tblPr><w:tblStyle w:val="TableGrid"/><w:tblW w:w="0" w:type="auto"/></w:tblPr><w:tblGrid>`)
	for range cols {
		b.out.WriteString(`<w:gridCol w:w="` + strconv.Itoa(width) + `"/>`)
	}
	b.out.WriteString(`</w:tblGrid>`)

	for _, r := range rows {
		b.out.WriteString(`<w:tr>`)
		for c := r.FirstChild; c != nil; c = c.NextSibling {
			if c.DataAtom != atom.Td && c.DataAtom != atom.Th {
				continue
			}
			b.out.WriteString(`<w:tc><w:tcPr>`)
			b.out.WriteString(`<w:tcW w:w="` + strconv.Itoa(width*colspan(c)) + `" w:type="dxa"/>`)
			if span := colspan(c); span > 1 {
				b.out.WriteString(`<w:gridSpan w:val="` + strconv.Itoa(span) + `"/>`)
			}
			b.out.WriteString(`</w:tcPr>`)

			cellProps := props
			if c.DataAtom == atom.Th {
				cellProps.bold = true
			}
			cell := &docxBuilder{out: &bytes.Buffer{}, rels: b.rels}
			cell.blockChildren(c, cellProps)
			cell.flush()
			if cell.out.Len() == 0 {
				cell.out.WriteString(`<w:p/>`)
			}
			b.out.Write(cell.out.Bytes())
			b.out.WriteString(`</w:tc>`)
		}
		b.out.WriteString(`</w:tr>`)
	}
	b.out.WriteString(`</w:tbl>`)
	// Word requires a paragraph between adjacent tables.
	b.out.WriteString(`<w:p/>`)
}

func colspan(n *html.Node) int {
	v, err := strconv.Atoi(attr(n, "colspan"))
	if err != nil || v < 1 {
		return 1
	}
	return v
}

func inlineProps(n *html.Node, props runProps, rels *relations) runProps {
	switch n.DataAtom {
	case atom.Strong, atom.B:
		props.bold = true
	case atom.Em, atom.I:
		props.italic = true
	case atom.U:
		props.underline = true
	case atom.S, atom.Strike, atom.Del:
		props.strike = true
	case atom.Code:
		props.code = true
	case atom.Mark:
		props.highlight = true
	case atom.Sup:
		props.vertAlign = "superscript"
	case atom.Sub:
		props.vertAlign = "subscript"
	case atom.A:
		if href := attr(n, "href"); href != "" {
			props.link = rels.add(href)
		}
	}
	return props
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// alignment reads text-align from an inline style attribute.
func alignment(style string) string {
	for decl := range strings.SplitSeq(style, ";") {
		name, value, ok := strings.Cut(decl, ":")
		if !ok || strings.TrimSpace(name) != "text-align" {
			continue
		}
		switch v := strings.TrimSpace(value); v {
		case "center", "right", "left":
			return v
		case "justify":
			return "both"
		}
	}
	return ""
}

func writeParagraph(out *bytes.Buffer, p *paragraph) {
	out.WriteString(`<w:p>`)
	if p.style != "" || p.align != "" || p.numID != 0 {
		out.WriteString(`<w:pPr>`)
		if p.style != "" {
			out.WriteString(`<w:pStyle w:val="` + p.style + `"/>`)
		}
		if p.numID != 0 {
			out.WriteString(`<w:numPr><w:ilvl w:val="` + strconv.Itoa(p.ilvl) + `"/><w:numId w:val="` + strconv.Itoa(p.numID) + `"/></w:numPr>`)
		}
		if p.align != "" {
			out.WriteString(`<w:jc w:val="` + p.align + `"/>`)
		}
		out.WriteString(`</w:pPr>`)
	}

	openLink := ""
	for _, r := range p.runs {
		if r.props.link != openLink {
			if openLink != "" {
				out.WriteString(`</w:hyperlink>`)
			}
			if r.props.link != "" {
				out.WriteString(`<w:hyperlink r:id="` + r.props.link + `">`)
			}
			openLink = r.props.link
		}
		writeRun(out, r)
	}
	if openLink != "" {
		out.WriteString(`</w:hyperlink>`)
	}
	out.WriteString(`</w:p>`)
}

func writeRun(out *bytes.Buffer, r run) {
	out.WriteString(`<w:r>`)
	if rpr := runPropsXML(r.props); rpr != "" {
		out.WriteString(`<w:rPr>` + rpr + `</w:rPr>`)
	}
	if r.br {
		out.WriteString(`<w:br/>`)
	} else {
		out.WriteString(`<w:t xml:space="preserve">`)
		_ = xml.EscapeText(out, []byte(r.text))
		out.WriteString(`</w:t>`)
	}
	out.WriteString(`</w:r>`)
}

func runPropsXML(p runProps) string {
	var b strings.Builder
	if p.link != "" {
		b.WriteString(`<w:rStyle w:val="Hyperlink"/>`)
	}
	if p.code {
		b.WriteString(`<w:rFonts w:ascii="Courier New" w:hAnsi="Courier New" w:cs="Courier New"/>`)
	}
	if p.bold {
		b.WriteString(`<w:b/>`)
	}
	if p.italic {
		b.WriteString(`<w:i/>`)
	}
	if p.strike {
		b.WriteString(`<w:strike/>`)
	}
	if p.highlight {
		b.WriteString(`<w:highlight w:val="yellow"/>`)
	}
	if p.underline {
		b.WriteString(`<w:u w:val="single"/>`)
	}
	if p.vertAlign != "" {
		b.WriteString(`<w:vertAlign w:val="` + p.vertAlign + `"/>`)
	}
	return b.String()
}

func documentRelsXML(r *relations) string {
	var b strings.Builder
	b.WriteString(xml.Header)
	b.WriteString(`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">`)
	b.WriteString(`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/styles" Target="styles.xml"/>`)
	b.WriteString(`<Relationship Id="rId2" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/numbering" Target="numbering.xml"/>`)
	for i, target := range r.links {
		b.WriteString(`<Relationship Id="rId` + strconv.Itoa(i+3) + `" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/hyperlink" Target="`)
		_ = xml.EscapeText(&b, []byte(target))
		b.WriteString(`" TargetMode="External"/>`)
	}
	b.WriteString(`</Relationships>`)
	return b.String()
}

func corePropsXML(title string, now time.Time) string {
	var t bytes.Buffer
	_ = xml.EscapeText(&t, []byte(title))
	stamp := now.UTC().Format(time.RFC3339)
	return xml.Header +
		`<cp:coreProperties xmlns:cp="http://schemas.openxmlformats.org/package/2006/metadata/core-properties" xmlns:dc="http://purl.org/dc/elements/1.1/" xmlns:dcterms="http://purl.org/dc/terms/" xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance">` +
		`<dc:title>` + t.String() + `</dc:title>` +
		`<dcterms:created xsi:type="dcterms:W3CDTF">` + stamp + `</dcterms:created>` +
		`<dcterms:modified xsi:type="dcterms:W3CDTF">` + stamp + `</dcterms:modified>` +
		`</cp:coreProperties>`
}

const contentTypesXML = xml.Header + `<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">` +
	`<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>` +
	`<Default Extension="xml" ContentType="application/xml"/>` +
	`<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>` +
	`<Override PartName="/word/styles.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.styles+xml"/>` +
	`<Override PartName="/word/numbering.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.numbering+xml"/>` +
	`<Override PartName="/docProps/core.xml" ContentType="application/vnd.openxmlformats-package.core-properties+xml"/>` +
	`</Types>`

const packageRelsXML = xml.Header + `<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
	`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>` +
	`<Relationship Id="rId2" Type="http://schemas.openxmlformats.org/package/2006/relationships/metadata/core-properties" Target="docProps/core.xml"/>` +
	`</Relationships>`

const stylesXML = xml.Header + `<w:styles xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">` +
	`<w:docDefaults><w:rPrDefault><w:rPr><w:rFonts w:ascii="Calibri" w:hAnsi="Calibri" w:cs="Calibri"/><w:sz w:val="22"/></w:rPr></w:rPrDefault>` +
	`<w:pPrDefault><w:pPr><w:spacing w:after="160" w:line="259" w:lineRule="auto"/></w:pPr></w:pPrDefault></w:docDefaults>` +
	`<w:style w:type="paragraph" w:default="1" w:styleId="Normal"><w:name w:val="Normal"/></w:style>` +
	`<w:style w:type="paragraph" w:styleId="Heading1"><w:name w:val="heading 1"/><w:basedOn w:val="Normal"/><w:next w:val="Normal"/><w:pPr><w:keepNext/><w:outlineLvl w:val="0"/></w:pPr><w:rPr><w:b/><w:sz w:val="40"/></w:rPr></w:style>` +
	`<w:style w:type="paragraph" w:styleId="Heading2"><w:name w:val="heading 2"/><w:basedOn w:val="Normal"/><w:next w:val="Normal"/><w:pPr><w:keepNext/><w:outlineLvl w:val="1"/></w:pPr><w:rPr><w:b/><w:sz w:val="32"/></w:rPr></w:style>` +
	`<w:style w:type="paragraph" w:styleId="Heading3"><w:name w:val="heading 3"/><w:basedOn w:val="Normal"/><w:next w:val="Normal"/><w:pPr><w:keepNext/><w:outlineLvl w:val="2"/></w:pPr><w:rPr><w:b/><w:sz w:val="28"/></w:rPr></w:style>` +
	`<w:style w:type="paragraph" w:styleId="Heading4"><w:name w:val="heading 4"/><w:basedOn w:val="Normal"/><w:next w:val="Normal"/><w:pPr><w:keepNext/><w:outlineLvl w:val="3"/></w:pPr><w:rPr><w:b/><w:sz w:val="24"/></w:rPr></w:style>` +
	`<w:style w:type="paragraph" w:styleId="Heading5"><w:name w:val="heading 5"/><w:basedOn w:val="Normal"/><w:next w:val="Normal"/><w:pPr><w:keepNext/><w:outlineLvl w:val="4"/></w:pPr><w:rPr><w:b/><w:sz w:val="22"/></w:rPr></w:style>` +
	`<w:style w:type="paragraph" w:styleId="Heading6"><w:name w:val="heading 6"/><w:basedOn w:val="Normal"/><w:next w:val="Normal"/><w:pPr><w:keepNext/><w:outlineLvl w:val="5"/></w:pPr><w:rPr><w:b/><w:i/><w:sz w:val="22"/></w:rPr></w:style>` +
	`<w:style w:type="paragraph" w:styleId="Quote"><w:name w:val="Quote"/><w:basedOn w:val="Normal"/><w:pPr><w:ind w:left="720"/></w:pPr><w:rPr><w:i/></w:rPr></w:style>` +
	`<w:style w:type="paragraph" w:styleId="Code"><w:name w:val="Code"/><w:basedOn w:val="Normal"/><w:pPr><w:spacing w:after="0"/></w:pPr><w:rPr><w:rFonts w:ascii="Courier New" w:hAnsi="Courier New" w:cs="Courier New"/><w:sz w:val="20"/></w:rPr></w:style>` +
	`<w:style w:type="paragraph" w:styleId="ListParagraph"><w:name w:val="List Paragraph"/><w:basedOn w:val="Normal"/><w:pPr><w:spacing w:after="60"/></w:pPr></w:style>` +
	`<w:style w:type="character" w:styleId="Hyperlink"><w:name w:val="Hyperlink"/><w:rPr><w:color w:val="2563EB"/><w:u w:val="single"/></w:rPr></w:style>` +
	`<w:style w:type="table" w:styleId="TableGrid"><w:name w:val="Table Grid"/><w:tblPr><w:tblBorders>` +
	`<w:top w:val="single" w:sz="4" w:space="0" w:color="CBD5E1"/><w:left w:val="single" w:sz="4" w:space="0" w:color="CBD5E1"/>` +
	`<w:bottom w:val="single" w:sz="4" w:space="0" w:color="CBD5E1"/><w:right w:val="single" w:sz="4" w:space="0" w:color="CBD5E1"/>` +
	`<w:insideH w:val="single" w:sz="4" w:space="0" w:color="CBD5E1"/><w:insideV w:val="single" w:sz="4" w:space="0" w:color="CBD5E1"/>` +
	`</w:tblBorders><w:tblCellMar><w:left w:w="108" w:type="dxa"/><w:right w:w="108" w:type="dxa"/></w:tblCellMar></w:tblPr></w:style>` +
	`</w:styles>`

var numberingXML = buildNumberingXML()

func buildNumberingXML() string {
	bullets := []string{"•", "◦", "▪"}
	var b strings.Builder
	b.WriteString(xml.Header)
	b.WriteString(`<w:numbering xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">`)

	b.WriteString(`<w:abstractNum w:abstractNumId="0"><w:multiLevelType w:val="hybridMultilevel"/>`)
	for lvl := 0; lvl <= maxListLvl; lvl++ {
		b.WriteString(`<w:lvl w:ilvl="` + strconv.Itoa(lvl) + `"><w:start w:val="1"/><w:numFmt w:val="bullet"/><w:lvlText w:val="` + bullets[lvl%len(bullets)] + `"/><w:lvlJc w:val="left"/>`)
		b.WriteString(`<w:pPr><w:ind w:left="` + strconv.Itoa(720*(lvl+1)) + `" w:hanging="360"/></w:pPr></w:lvl>`)
	}
	b.WriteString(`</w:abstractNum>`)

	formats := []string{"decimal", "lowerLetter", "lowerRoman"}
	b.WriteString(`<w:abstractNum w:abstractNumId="1"><w:multiLevelType w:val="hybridMultilevel"/>`)
	for lvl := 0; lvl <= maxListLvl; lvl++ {
		b.WriteString(`<w:lvl w:ilvl="` + strconv.Itoa(lvl) + `"><w:start w:val="1"/><w:numFmt w:val="` + formats[lvl%len(formats)] + `"/><w:lvlText w:val="%` + strconv.Itoa(lvl+1) + `."/><w:lvlJc w:val="left"/>`)
		b.WriteString(`<w:pPr><w:ind w:left="` + strconv.Itoa(720*(lvl+1)) + `" w:hanging="360"/></w:pPr></w:lvl>`)
	}
	b.WriteString(`</w:abstractNum>`)

	b.WriteString(`<w:num w:numId="1"><w:abstractNumId w:val="0"/></w:num>`)
	b.WriteString(`<w:num w:numId="2"><w:abstractNumId w:val="1"/></w:num>`)
	b.WriteString(`</w:numbering>`)
	return b.String()
}
