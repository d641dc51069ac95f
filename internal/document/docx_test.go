package document

import (
	"archive/zip"
	"bytes"
	"io"
	"strings"
	"testing"
)

func readZipParts(t *testing.T, data []byte) map[string]string {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("archive is not a valid zip: %v", err)
	}
	parts := make(map[string]string, len(zr.File))
	for _, f := range zr.File {
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("open %s: %v", f.Name, err)
		}
		content, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			t.Fatalf("read %s: %v", f.Name, err)
		}
		parts[f.Name] = string(content)
	}
	return parts
}

func TestDocWrite(t *testing.T) {
	doc := NewDoc()
	doc.AddParagraph(Text(AlignCenter, "SURAT TUGAS"))
	doc.AddParagraph(Paragraph{Runs: []Run{{Text: "Nomor: 090/ST/2024", Bold: true}}})
	doc.AddTable(Table{Borders: true, Rows: []TableRow{
		{Cells: []TableCell{
			{Width: 50, Paragraphs: []Paragraph{Text(AlignLeft, "kiri")}},
			{Width: 50, Paragraphs: []Paragraph{Text(AlignRight, "kanan")}},
		}},
	}})

	var buf bytes.Buffer
	if err := doc.Write(&buf); err != nil {
		t.Fatalf("Write: %v", err)
	}
	parts := readZipParts(t, buf.Bytes())

	for _, name := range []string{"[Content_Types].xml", "_rels/.rels", "word/document.xml"} {
		if _, ok := parts[name]; !ok {
			t.Errorf("archive missing part %s", name)
		}
	}
	if _, ok := parts["word/media/image1.png"]; ok {
		t.Error("archive carries an image part without a header image set")
	}

	body := parts["word/document.xml"]
	for _, want := range []string{"SURAT TUGAS", "Nomor: 090/ST/2024", "<w:tbl>", "kiri", "kanan", "w:val=\"center\""} {
		if !strings.Contains(body, want) {
			t.Errorf("document.xml missing %q", want)
		}
	}
}

func TestDocWriteWithImage(t *testing.T) {
	doc := NewDoc()
	doc.SetHeaderImage([]byte{0x89, 0x50, 0x4e, 0x47}, "png")
	doc.AddParagraph(Text(AlignLeft, "isi"))

	var buf bytes.Buffer
	if err := doc.Write(&buf); err != nil {
		t.Fatalf("Write: %v", err)
	}
	parts := readZipParts(t, buf.Bytes())

	if _, ok := parts["word/media/image1.png"]; !ok {
		t.Fatal("archive missing image part")
	}
	if !strings.Contains(parts["word/_rels/document.xml.rels"], "media/image1.png") {
		t.Error("document rels missing image relationship")
	}
	if !strings.Contains(parts["[Content_Types].xml"], "image/png") {
		t.Error("content types missing png registration")
	}
	if !strings.Contains(parts["word/document.xml"], "rIdImg1") {
		t.Error("document body missing image reference")
	}
}

func TestXMLEscape(t *testing.T) {
	if got := xmlEscape(`a<b>&"c"`); got != "a&lt;b&gt;&amp;&quot;c&quot;" {
		t.Errorf("xmlEscape = %q", got)
	}
}
