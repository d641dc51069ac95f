package document

import (
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/siperdin/siperdin_api/internal/models"
)

// LetterData bundles everything a rendered assignment letter needs. The
// employee slice is already resolved in assignment order; callers substitute
// a placeholder entry for any id that no longer exists.
type LetterData struct {
	Letter      *models.AssignmentLetter
	Employees   []models.Employee
	Destination string
	Signer      Signer
	Layout      SignatureLayout
	Letterhead  Letterhead
	IssuedAt    string
}

// LetterFilename derives the download name from the letter number, with
// slashes flattened so the number survives as a single path segment.
func LetterFilename(number string) string {
	return "Surat_Tugas_" + strings.ReplaceAll(number, "/", "-") + ".docx"
}

// BuildLetterDocx assembles the Surat Tugas as a docx document.
func BuildLetterDocx(data LetterData) *Doc {
	doc := NewDoc()
	data.Letterhead.apply(doc)
	letter := data.Letter

	doc.AddParagraph(Paragraph{Align: AlignCenter, Runs: []Run{{Text: "SURAT TUGAS", Bold: true, Underline: true}}})
	doc.AddParagraph(Text(AlignCenter, "Nomor: "+letter.Number))
	doc.AddParagraph(Paragraph{})

	doc.AddTable(Table{Rows: []TableRow{
		labelRow("Dasar", letter.Basis),
	}})
	doc.AddParagraph(Paragraph{})
	doc.AddParagraph(Paragraph{Align: AlignCenter, Runs: []Run{{Text: "MENUGASKAN", Bold: true}}})
	doc.AddParagraph(Text(AlignLeft, "Kepada:"))

	doc.AddTable(employeeTable(data.Employees))
	doc.AddParagraph(Paragraph{})

	doc.AddTable(Table{Rows: []TableRow{
		labelRow("Untuk", assignmentSentence(letter, data.Destination)),
	}})
	doc.AddParagraph(Paragraph{})
	doc.AddParagraph(Text(AlignLeft, "Demikian Surat Tugas ini dibuat untuk dilaksanakan dengan penuh tanggung jawab."))
	doc.AddParagraph(Paragraph{})

	addSignatureBlock(doc, IssuedLine(data.IssuedAt, letter.Date), data.Layout, data.Signer)
	return doc
}

// IssuedLine formats the enactment line printed above the signature block.
func IssuedLine(city string, date time.Time) string {
	return fmt.Sprintf("Ditetapkan di %s, pada tanggal %s", city, FormatLongDate(date))
}

func assignmentSentence(l *models.AssignmentLetter, destination string) string {
	dest := destination
	if l.DestinationAddress != "" {
		dest = dest + " (" + l.DestinationAddress + ")"
	}
	return fmt.Sprintf("%s di %s selama %s, terhitung mulai tanggal %s sampai dengan %s.",
		l.Subject, dest, FormatDuration(l.Duration),
		FormatLongDate(l.StartDate), FormatLongDate(l.EndDate))
}

// labelRow renders a "Label : value" table row with a fixed label column.
func labelRow(label, value string) TableRow {
	return TableRow{Cells: []TableCell{
		{Width: 700, Paragraphs: []Paragraph{Text(AlignLeft, label)}},
		{Width: 150, Paragraphs: []Paragraph{Text(AlignLeft, ":")}},
		{Width: 4150, Paragraphs: []Paragraph{Text(AlignBoth, value)}},
	}}
}

// employeeTable lists the assigned employees 1-based, four facts each.
func employeeTable(employees []models.Employee) Table {
	var rows []TableRow
	for i, emp := range employees {
		no := fmt.Sprintf("%d.", i+1)
		rows = append(rows,
			employeeFactRow(no, "Nama", emp.Name, true),
			employeeFactRow("", "NIP", FormatNIP(emp.NIP), false),
			employeeFactRow("", "Pangkat/Gol.", strings.TrimSuffix(emp.Rank+" / "+emp.Grade, " / "), false),
			employeeFactRow("", "Jabatan", emp.Position, false),
		)
	}
	return Table{Rows: rows}
}

func employeeFactRow(no, label, value string, bold bool) TableRow {
	return TableRow{Cells: []TableCell{
		{Width: 300, Paragraphs: []Paragraph{Text(AlignLeft, no)}},
		{Width: 1200, Paragraphs: []Paragraph{Text(AlignLeft, label)}},
		{Width: 150, Paragraphs: []Paragraph{Text(AlignLeft, ":")}},
		{Width: 3350, Paragraphs: []Paragraph{{Align: AlignLeft, Runs: []Run{{Text: value, Bold: bold}}}}},
	}}
}

// addSignatureBlock lays the issued line and signature lines in a
// right-hand column so the block sits on the right half of the page.
func addSignatureBlock(doc *Doc, issuedLine string, layout SignatureLayout, signer Signer) {
	paras := []Paragraph{Text(AlignLeft, issuedLine)}
	for _, line := range SignatureLines(layout, signer) {
		paras = append(paras, Paragraph{Align: AlignLeft, Runs: []Run{{
			Text:      line.Text,
			Bold:      line.Bold,
			Underline: line.Underline,
		}}})
	}
	doc.AddTable(Table{Rows: []TableRow{{Cells: []TableCell{
		{Width: 2500},
		{Width: 2500, Paragraphs: paras},
	}}}})
}

var letterHTMLTmpl = template.Must(template.New("letter").Parse(`<!DOCTYPE html>
<html lang="id">
<head>
<meta charset="utf-8">
<title>Surat Tugas {{.Number}}</title>
<style>
body { font-family: "Times New Roman", serif; font-size: 12pt; margin: 2.5cm; }
.letterhead { text-align: center; border-bottom: 3px double #000; padding-bottom: 8px; margin-bottom: 16px; }
.letterhead img { max-width: 100%; }
.letterhead .line { font-weight: bold; }
.letterhead .line:last-child { font-weight: normal; font-size: 10pt; }
h1 { text-align: center; font-size: 12pt; text-decoration: underline; margin-bottom: 0; }
.number { text-align: center; margin-top: 2px; }
.menugaskan { text-align: center; font-weight: bold; margin: 12px 0; }
table.facts { border-collapse: collapse; }
table.facts td { vertical-align: top; padding: 1px 4px; }
.signature { margin-top: 24px; margin-left: 55%; }
.signature .bold { font-weight: bold; }
.signature .name { font-weight: bold; text-decoration: underline; }
.gap { height: 5em; }
@media print { body { margin: 0; } }
</style>
</head>
<body onload="window.print()">
<div class="letterhead">
{{- if .LetterheadImage}}
<img src="{{.LetterheadImage}}" alt="Kop Surat">
{{- else}}
{{- range .LetterheadLines}}
<div class="line">{{.}}</div>
{{- end}}
{{- end}}
</div>
<h1>SURAT TUGAS</h1>
<div class="number">Nomor: {{.Number}}</div>
<table class="facts">
<tr><td style="width:7em">Dasar</td><td>:</td><td>{{.Basis}}</td></tr>
</table>
<div class="menugaskan">MENUGASKAN</div>
<div>Kepada:</div>
<table class="facts">
{{- range .Employees}}
<tr><td style="width:2em">{{.No}}</td><td style="width:8em">Nama</td><td>:</td><td><b>{{.Name}}</b></td></tr>
<tr><td></td><td>NIP</td><td>:</td><td>{{.NIP}}</td></tr>
<tr><td></td><td>Pangkat/Gol.</td><td>:</td><td>{{.RankGrade}}</td></tr>
<tr><td></td><td>Jabatan</td><td>:</td><td>{{.Position}}</td></tr>
{{- end}}
</table>
<table class="facts" style="margin-top:8px">
<tr><td style="width:7em">Untuk</td><td>:</td><td>{{.Assignment}}</td></tr>
</table>
<p>Demikian Surat Tugas ini dibuat untuk dilaksanakan dengan penuh tanggung jawab.</p>
<div class="signature">
<div>{{.IssuedLine}}</div>
{{- range .SignatureLines}}
{{- if .Blank}}
<div class="gap"></div>
{{- else}}
<div class="{{.Class}}">{{.Text}}</div>
{{- end}}
{{- end}}
</div>
</body>
</html>
`))

type letterHTMLEmployee struct {
	No        int
	Name      string
	NIP       string
	RankGrade string
	Position  string
}

type htmlSignatureLine struct {
	Text  string
	Class string
	Blank bool
}

// RenderLetterHTML renders the print view of a Surat Tugas. The page calls
// window.print on load so the browser opens the print dialog directly.
func RenderLetterHTML(data LetterData) (string, error) {
	letter := data.Letter
	view := struct {
		Number          string
		Basis           string
		Assignment      string
		IssuedLine      string
		LetterheadImage template.URL
		LetterheadLines []string
		Employees       []letterHTMLEmployee
		SignatureLines  []htmlSignatureLine
	}{
		Number:          letter.Number,
		Basis:           letter.Basis,
		Assignment:      assignmentSentence(letter, data.Destination),
		IssuedLine:      IssuedLine(data.IssuedAt, letter.Date),
		LetterheadImage: letterheadDataURI(data.Letterhead),
		LetterheadLines: data.Letterhead.Lines,
		SignatureLines:  htmlSignatureLines(data.Layout, data.Signer),
	}
	for i, emp := range data.Employees {
		view.Employees = append(view.Employees, letterHTMLEmployee{
			No:        i + 1,
			Name:      emp.Name,
			NIP:       FormatNIP(emp.NIP),
			RankGrade: strings.TrimSuffix(emp.Rank+" / "+emp.Grade, " / "),
			Position:  emp.Position,
		})
	}

	var b strings.Builder
	if err := letterHTMLTmpl.Execute(&b, view); err != nil {
		return "", err
	}
	return b.String(), nil
}

func htmlSignatureLines(layout SignatureLayout, signer Signer) []htmlSignatureLine {
	var out []htmlSignatureLine
	blanks := 0
	for _, line := range SignatureLines(layout, signer) {
		if line.Text == "" {
			blanks++
			continue
		}
		class := ""
		switch {
		case line.Bold && line.Underline:
			class = "name"
		case line.Bold:
			class = "bold"
		}
		if blanks > 0 {
			out = append(out, htmlSignatureLine{Blank: true})
			blanks = 0
		}
		out = append(out, htmlSignatureLine{Text: line.Text, Class: class})
	}
	return out
}
