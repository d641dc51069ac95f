package document

import (
	"archive/zip"
	"fmt"
	"io"
	"strings"
)

// The .docx export is assembled by hand: a zip with the minimal OOXML parts
// (content types, package rels, word/document.xml and an optional letterhead
// image). No library in use here covers WordprocessingML, and the documents
// only need paragraphs, simple tables and one inline picture.

// Align values for paragraphs.
const (
	AlignLeft   = "left"
	AlignCenter = "center"
	AlignRight  = "right"
	AlignBoth   = "both"
)

// Run is a styled span of text within a paragraph.
type Run struct {
	Text      string
	Bold      bool
	Underline bool
	Italic    bool
}

// Paragraph is one block of runs with an alignment.
type Paragraph struct {
	Align string
	Runs  []Run
}

// Text builds a single-run paragraph.
func Text(align, text string) Paragraph {
	return Paragraph{Align: align, Runs: []Run{{Text: text}}}
}

// TableCell holds paragraphs plus a width in fiftieths of a percent.
type TableCell struct {
	Width      int
	Paragraphs []Paragraph
}

// TableRow is one row of cells.
type TableRow struct {
	Cells []TableCell
}

// Table is a full-width table, optionally with single borders.
type Table struct {
	Borders bool
	Rows    []TableRow
}

// Doc is a word-processor document under construction.
type Doc struct {
	blocks   []interface{}
	image    []byte
	imageExt string
}

// NewDoc creates an empty document.
func NewDoc() *Doc {
	return &Doc{}
}

// SetHeaderImage places an image paragraph at the top of the document.
// ext must be "png" or "jpeg".
func (d *Doc) SetHeaderImage(data []byte, ext string) {
	d.image = data
	d.imageExt = ext
}

// AddParagraph appends a paragraph.
func (d *Doc) AddParagraph(p Paragraph) {
	d.blocks = append(d.blocks, p)
}

// AddTable appends a table.
func (d *Doc) AddTable(t Table) {
	d.blocks = append(d.blocks, t)
}

// Write serializes the document as a .docx zip.
func (d *Doc) Write(w io.Writer) error {
	zw := zip.NewWriter(w)

	if err := writeZipFile(zw, "[Content_Types].xml", d.contentTypes()); err != nil {
		return err
	}
	if err := writeZipFile(zw, "_rels/.rels", packageRels); err != nil {
		return err
	}
	if err := writeZipFile(zw, "word/_rels/document.xml.rels", d.documentRels()); err != nil {
		return err
	}
	if err := writeZipFile(zw, "word/document.xml", d.documentXML()); err != nil {
		return err
	}
	if d.image != nil {
		f, err := zw.Create("word/media/image1." + d.imageExt)
		if err != nil {
			return err
		}
		if _, err := f.Write(d.image); err != nil {
			return err
		}
	}
	return zw.Close()
}

func writeZipFile(zw *zip.Writer, name, content string) error {
	f, err := zw.Create(name)
	if err != nil {
		return err
	}
	_, err = io.WriteString(f, content)
	return err
}

const packageRels = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>
</Relationships>`

func (d *Doc) contentTypes() string {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>`)
	b.WriteString(`<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">`)
	b.WriteString(`<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>`)
	b.WriteString(`<Default Extension="xml" ContentType="application/xml"/>`)
	if d.image != nil {
		switch d.imageExt {
		case "png":
			b.WriteString(`<Default Extension="png" ContentType="image/png"/>`)
		default:
			b.WriteString(`<Default Extension="jpeg" ContentType="image/jpeg"/>`)
		}
	}
	b.WriteString(`<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>`)
	b.WriteString(`</Types>`)
	return b.String()
}

func (d *Doc) documentRels() string {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>`)
	b.WriteString(`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">`)
	if d.image != nil {
		b.WriteString(`<Relationship Id="rIdImg1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/image" Target="media/image1.` + d.imageExt + `"/>`)
	}
	b.WriteString(`</Relationships>`)
	return b.String()
}

func (d *Doc) documentXML() string {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>`)
	b.WriteString(`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"` +
		` xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships"` +
		` xmlns:wp="http://schemas.openxmlformats.org/drawingml/2006/wordprocessingDrawing">`)
	b.WriteString(`<w:body>`)

	if d.image != nil {
		b.WriteString(d.imageParagraph())
	}
	for _, block := range d.blocks {
		switch v := block.(type) {
		case Paragraph:
			writeParagraph(&b, v)
		case Table:
			writeTable(&b, v)
		}
	}

	// A4 portrait with 2.5cm margins.
	b.WriteString(`<w:sectPr><w:pgSz w:w="11906" w:h="16838"/>` +
		`<w:pgMar w:top="1418" w:right="1418" w:bottom="1418" w:left="1418"/></w:sectPr>`)
	b.WriteString(`</w:body></w:document>`)
	return b.String()
}

// imageParagraph emits the inline drawing for the letterhead image,
// stretched to the text width (16.5cm) at a fixed banner height.
func (d *Doc) imageParagraph() string {
	const (
		widthEMU  = 5940000
		heightEMU = 1080000
	)
	return fmt.Sprintf(`<w:p><w:pPr><w:jc w:val="center"/></w:pPr><w:r><w:drawing>`+
		`<wp:inline distT="0" distB="0" distL="0" distR="0">`+
		`<wp:extent cx="%d" cy="%d"/>`+
		`<wp:docPr id="1" name="Letterhead"/>`+
		`<a:graphic xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main">`+
		`<a:graphicData uri="http://schemas.openxmlformats.org/drawingml/2006/picture">`+
		`<pic:pic xmlns:pic="http://schemas.openxmlformats.org/drawingml/2006/picture">`+
		`<pic:nvPicPr><pic:cNvPr id="1" name="Letterhead"/><pic:cNvPicPr/></pic:nvPicPr>`+
		`<pic:blipFill><a:blip r:embed="rIdImg1"/><a:stretch><a:fillRect/></a:stretch></pic:blipFill>`+
		`<pic:spPr><a:xfrm><a:off x="0" y="0"/><a:ext cx="%d" cy="%d"/></a:xfrm>`+
		`<a:prstGeom prst="rect"><a:avLst/></a:prstGeom></pic:spPr>`+
		`</pic:pic></a:graphicData></a:graphic></wp:inline></w:drawing></w:r></w:p>`,
		widthEMU, heightEMU, widthEMU, heightEMU)
}

func writeParagraph(b *strings.Builder, p Paragraph) {
	b.WriteString(`<w:p>`)
	if p.Align != "" && p.Align != AlignLeft {
		b.WriteString(`<w:pPr><w:jc w:val="` + p.Align + `"/></w:pPr>`)
	}
	for _, r := range p.Runs {
		writeRun(b, r)
	}
	b.WriteString(`</w:p>`)
}

func writeRun(b *strings.Builder, r Run) {
	b.WriteString(`<w:r>`)
	if r.Bold || r.Underline || r.Italic {
		b.WriteString(`<w:rPr>`)
		if r.Bold {
			b.WriteString(`<w:b/>`)
		}
		if r.Italic {
			b.WriteString(`<w:i/>`)
		}
		if r.Underline {
			b.WriteString(`<w:u w:val="single"/>`)
		}
		b.WriteString(`</w:rPr>`)
	}
	b.WriteString(`<w:t xml:space="preserve">` + xmlEscape(r.Text) + `</w:t>`)
	b.WriteString(`</w:r>`)
}

func writeTable(b *strings.Builder, t Table) {
	b.WriteString(`<w:tbl><w:tblPr><w:tblW w:w="5000" w:type="pct"/>`)
	if t.Borders {
		b.WriteString(`<w:tblBorders>` +
			`<w:top w:val="single" w:sz="4" w:color="000000"/>` +
			`<w:left w:val="single" w:sz="4" w:color="000000"/>` +
			`<w:bottom w:val="single" w:sz="4" w:color="000000"/>` +
			`<w:right w:val="single" w:sz="4" w:color="000000"/>` +
			`<w:insideH w:val="single" w:sz="4" w:color="000000"/>` +
			`<w:insideV w:val="single" w:sz="4" w:color="000000"/>` +
			`</w:tblBorders>`)
	}
	b.WriteString(`</w:tblPr>`)
	for _, row := range t.Rows {
		b.WriteString(`<w:tr>`)
		for _, cell := range row.Cells {
			b.WriteString(`<w:tc><w:tcPr>`)
			if cell.Width > 0 {
				b.WriteString(fmt.Sprintf(`<w:tcW w:w="%d" w:type="pct"/>`, cell.Width))
			}
			b.WriteString(`</w:tcPr>`)
			if len(cell.Paragraphs) == 0 {
				b.WriteString(`<w:p/>`)
			}
			for _, p := range cell.Paragraphs {
				writeParagraph(b, p)
			}
			b.WriteString(`</w:tc>`)
		}
		b.WriteString(`</w:tr>`)
	}
	b.WriteString(`</w:tbl>`)
}

func xmlEscape(s string) string {
	replacer := strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
		"'", "&apos;",
	)
	return replacer.Replace(s)
}
