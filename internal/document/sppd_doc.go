package document

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/siperdin/siperdin_api/internal/models"
)

// SPPDData bundles everything a rendered travel order needs. Employees come
// resolved in assignment order; the first is the traveler named on the form
// and the rest are listed as followers.
type SPPDData struct {
	SPPD        *models.SPPD
	Letter      *models.AssignmentLetter
	Employees   []models.Employee
	Destination string
	Transport   string
	Funding     *models.FundingSource
	Signer      Signer
	Layout      SignatureLayout
	Letterhead  Letterhead
	IssuedAt    string
	OriginCity  string
}

// SPPDFilename derives the download name from the parent letter number.
func SPPDFilename(number string) string {
	return "SPPD_" + strings.ReplaceAll(number, "/", "-") + ".docx"
}

type sppdRow struct {
	No    string
	Label string
	Value string
}

// sppdRows lays out the numbered form rows of the SPPD table.
func sppdRows(data SPPDData) []sppdRow {
	var traveler models.Employee
	if len(data.Employees) > 0 {
		traveler = data.Employees[0]
	}

	var followers []string
	for i, emp := range data.Employees {
		if i == 0 {
			continue
		}
		followers = append(followers, fmt.Sprintf("%d. %s (NIP. %s)", i, emp.Name, FormatNIP(emp.NIP)))
	}
	followerText := "-"
	if len(followers) > 0 {
		followerText = strings.Join(followers, "; ")
	}

	funding := "-"
	if data.Funding != nil {
		funding = fmt.Sprintf("%s (%s) Tahun Anggaran %d", data.Funding.Name, data.Funding.Code, data.Funding.BudgetYear)
	}
	transport := data.Transport
	if transport == "" {
		transport = "-"
	}

	return []sppdRow{
		{"1.", "Pejabat berwenang yang memberi perintah", data.Signer.RoleName},
		{"2.", "Nama pegawai yang diperintahkan", traveler.Name},
		{"3.", "Pangkat dan Golongan / NIP / Jabatan", strings.Join([]string{
			strings.TrimSuffix(traveler.Rank+" / "+traveler.Grade, " / "),
			"NIP. " + FormatNIP(traveler.NIP),
			traveler.Position,
		}, "; ")},
		{"4.", "Maksud perjalanan dinas", data.Letter.Subject},
		{"5.", "Alat angkutan yang dipergunakan", transport},
		{"6.", "Tempat berangkat / Tempat tujuan", data.OriginCity + " / " + data.Destination},
		{"7.", "Lamanya perjalanan dinas / Tanggal berangkat / Tanggal kembali", strings.Join([]string{
			FormatDuration(data.Letter.Duration),
			FormatLongDate(data.SPPD.StartDate),
			FormatLongDate(data.SPPD.EndDate),
		}, " / ")},
		{"8.", "Pengikut", followerText},
		{"9.", "Pembebanan anggaran", funding},
		{"10.", "Keterangan", "Dasar: Surat Tugas Nomor " + data.Letter.Number},
	}
}

// BuildSPPDDocx assembles the SPPD form as a docx document.
func BuildSPPDDocx(data SPPDData) *Doc {
	doc := NewDoc()
	data.Letterhead.apply(doc)

	doc.AddParagraph(Paragraph{Align: AlignCenter, Runs: []Run{{Text: "SURAT PERINTAH PERJALANAN DINAS", Bold: true, Underline: true}}})
	doc.AddParagraph(Text(AlignCenter, "(SPPD)"))
	doc.AddParagraph(Text(AlignCenter, "Nomor: "+data.Letter.Number))
	doc.AddParagraph(Paragraph{})

	var rows []TableRow
	for _, r := range sppdRows(data) {
		rows = append(rows, TableRow{Cells: []TableCell{
			{Width: 350, Paragraphs: []Paragraph{Text(AlignLeft, r.No)}},
			{Width: 2150, Paragraphs: []Paragraph{Text(AlignLeft, r.Label)}},
			{Width: 2500, Paragraphs: []Paragraph{Text(AlignLeft, r.Value)}},
		}})
	}
	doc.AddTable(Table{Borders: true, Rows: rows})
	doc.AddParagraph(Paragraph{})

	addSignatureBlock(doc, IssuedLine(data.IssuedAt, data.SPPD.CreatedAt), data.Layout, data.Signer)
	return doc
}

var sppdHTMLTmpl = template.Must(template.New("sppd").Parse(`<!DOCTYPE html>
<html lang="id">
<head>
<meta charset="utf-8">
<title>SPPD {{.Number}}</title>
<style>
body { font-family: "Times New Roman", serif; font-size: 12pt; margin: 2.5cm; }
.letterhead { text-align: center; border-bottom: 3px double #000; padding-bottom: 8px; margin-bottom: 16px; }
.letterhead img { max-width: 100%; }
.letterhead .line { font-weight: bold; }
.letterhead .line:last-child { font-weight: normal; font-size: 10pt; }
h1 { text-align: center; font-size: 12pt; text-decoration: underline; margin-bottom: 0; }
.number { text-align: center; margin-top: 2px; margin-bottom: 12px; }
table.form { border-collapse: collapse; width: 100%; }
table.form td { border: 1px solid #000; vertical-align: top; padding: 4px 6px; }
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
<h1>SURAT PERINTAH PERJALANAN DINAS</h1>
<div class="number">(SPPD)<br>Nomor: {{.Number}}</div>
<table class="form">
{{- range .Rows}}
<tr><td style="width:2em">{{.No}}</td><td style="width:40%">{{.Label}}</td><td>{{.Value}}</td></tr>
{{- end}}
</table>
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

// RenderSPPDHTML renders the print view of an SPPD.
func RenderSPPDHTML(data SPPDData) (string, error) {
	view := struct {
		Number          string
		IssuedLine      string
		LetterheadImage template.URL
		LetterheadLines []string
		Rows            []sppdRow
		SignatureLines  []htmlSignatureLine
	}{
		Number:          data.Letter.Number,
		IssuedLine:      IssuedLine(data.IssuedAt, data.SPPD.CreatedAt),
		LetterheadImage: letterheadDataURI(data.Letterhead),
		LetterheadLines: data.Letterhead.Lines,
		Rows:            sppdRows(data),
		SignatureLines:  htmlSignatureLines(data.Layout, data.Signer),
	}

	var b strings.Builder
	if err := sppdHTMLTmpl.Execute(&b, view); err != nil {
		return "", err
	}
	return b.String(), nil
}
