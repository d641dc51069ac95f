package document

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/siperdin/siperdin_api/internal/models"
)

// ReceiptData bundles everything a rendered kwitansi needs. The three
// officials may be nil when the receipt does not name them; their columns
// are then left out.
type ReceiptData struct {
	Receipt     *models.Receipt
	Letter      *models.AssignmentLetter
	Employees   []models.Employee
	Destination string
	Treasurer   *Signer
	PPTK        *Signer
	KPA         *Signer
	Letterhead  Letterhead
	IssuedAt    string
}

// ReceiptFilename derives the download name from the parent letter number.
func ReceiptFilename(number string) string {
	return "Kwitansi_" + strings.ReplaceAll(number, "/", "-") + ".docx"
}

type costRow struct {
	Label  string
	Detail string
	Amount string
}

// costRows lists the visible components in display order. Hidden components
// never appear, matching how the total is computed.
func costRows(c models.CostComponents) []costRow {
	var rows []costRow
	if c.DailyAllowance.Visible {
		rows = append(rows, costRow{
			Label:  "Uang Harian",
			Detail: fmt.Sprintf("%s x %s", FormatDuration(c.DailyAllowance.Days), FormatRupiah(c.DailyAllowance.AmountPerDay)),
			Amount: FormatRupiah(c.DailyAllowance.Total),
		})
	}
	for _, item := range []struct {
		label string
		cost  models.CostItem
	}{
		{"Transportasi", c.Transport},
		{"Penginapan", c.Accommodation},
		{"BBM", c.Fuel},
		{"Tol", c.Toll},
		{"Representasi", c.Representation},
		{"Lain-lain", c.Other},
	} {
		if !item.cost.Visible {
			continue
		}
		rows = append(rows, costRow{
			Label:  item.label,
			Detail: item.cost.Description,
			Amount: FormatRupiah(item.cost.Amount),
		})
	}
	return rows
}

func travelerNames(employees []models.Employee) string {
	names := make([]string, 0, len(employees))
	for _, emp := range employees {
		names = append(names, emp.Name)
	}
	return strings.Join(names, ", ")
}

func receiptPurpose(data ReceiptData) string {
	return fmt.Sprintf("Biaya perjalanan dinas a.n. %s ke %s sesuai Surat Tugas Nomor %s tanggal %s.",
		travelerNames(data.Employees), data.Destination, data.Letter.Number, FormatLongDate(data.Letter.Date))
}

// officialCell renders one signing column: role label, space, name, NIP.
func officialCell(role string, s *Signer) []Paragraph {
	if s == nil {
		return []Paragraph{{}}
	}
	paras := []Paragraph{
		{Align: AlignCenter, Runs: []Run{{Text: role, Bold: true}}},
	}
	for i := 0; i < 4; i++ {
		paras = append(paras, Paragraph{})
	}
	paras = append(paras,
		Paragraph{Align: AlignCenter, Runs: []Run{{Text: s.Name, Bold: true, Underline: true}}},
		Text(AlignCenter, "NIP. "+FormatNIP(s.NIP)),
	)
	return paras
}

// BuildReceiptDocx assembles the kwitansi as a docx document.
func BuildReceiptDocx(data ReceiptData) *Doc {
	doc := NewDoc()
	data.Letterhead.apply(doc)
	receipt := data.Receipt

	doc.AddParagraph(Paragraph{Align: AlignCenter, Runs: []Run{{Text: "KWITANSI", Bold: true, Underline: true}}})
	doc.AddParagraph(Paragraph{})

	doc.AddTable(Table{Rows: []TableRow{
		labelRow("Sudah terima dari", "Bendahara Pengeluaran"),
		labelRow("Uang sebanyak", FormatRupiah(receipt.TotalAmount)),
		labelRow("Untuk pembayaran", receiptPurpose(data)),
	}})
	doc.AddParagraph(Paragraph{})
	doc.AddParagraph(Paragraph{Runs: []Run{{Text: "Rincian Biaya:", Bold: true}}})

	rows := []TableRow{{Cells: []TableCell{
		{Width: 2600, Paragraphs: []Paragraph{{Align: AlignCenter, Runs: []Run{{Text: "Uraian", Bold: true}}}}},
		{Width: 1400, Paragraphs: []Paragraph{{Align: AlignCenter, Runs: []Run{{Text: "Keterangan", Bold: true}}}}},
		{Width: 1000, Paragraphs: []Paragraph{{Align: AlignCenter, Runs: []Run{{Text: "Jumlah", Bold: true}}}}},
	}}}
	for _, r := range costRows(receipt.Components) {
		rows = append(rows, TableRow{Cells: []TableCell{
			{Width: 2600, Paragraphs: []Paragraph{Text(AlignLeft, r.Label)}},
			{Width: 1400, Paragraphs: []Paragraph{Text(AlignLeft, r.Detail)}},
			{Width: 1000, Paragraphs: []Paragraph{Text(AlignRight, r.Amount)}},
		}})
	}
	rows = append(rows, TableRow{Cells: []TableCell{
		{Width: 4000, Paragraphs: []Paragraph{{Align: AlignRight, Runs: []Run{{Text: "Total", Bold: true}}}}},
		{Width: 1000, Paragraphs: []Paragraph{{Align: AlignRight, Runs: []Run{{Text: FormatRupiah(receipt.TotalAmount), Bold: true}}}}},
	}})
	doc.AddTable(Table{Borders: true, Rows: rows})
	doc.AddParagraph(Paragraph{})

	doc.AddParagraph(Text(AlignRight, IssuedLine(data.IssuedAt, receipt.Date)))
	doc.AddParagraph(Paragraph{})
	doc.AddTable(Table{Rows: []TableRow{{Cells: []TableCell{
		{Width: 1666, Paragraphs: officialCell("Kuasa Pengguna Anggaran", data.KPA)},
		{Width: 1666, Paragraphs: officialCell("PPTK", data.PPTK)},
		{Width: 1666, Paragraphs: officialCell("Bendahara Pengeluaran", data.Treasurer)},
	}}}})
	return doc
}

var receiptHTMLTmpl = template.Must(template.New("receipt").Parse(`<!DOCTYPE html>
<html lang="id">
<head>
<meta charset="utf-8">
<title>Kwitansi {{.Number}}</title>
<style>
body { font-family: "Times New Roman", serif; font-size: 12pt; margin: 2.5cm; }
.letterhead { text-align: center; border-bottom: 3px double #000; padding-bottom: 8px; margin-bottom: 16px; }
.letterhead img { max-width: 100%; }
.letterhead .line { font-weight: bold; }
.letterhead .line:last-child { font-weight: normal; font-size: 10pt; }
h1 { text-align: center; font-size: 12pt; text-decoration: underline; margin-bottom: 12px; }
table.facts { border-collapse: collapse; }
table.facts td { vertical-align: top; padding: 1px 4px; }
table.costs { border-collapse: collapse; width: 100%; margin-top: 8px; }
table.costs th, table.costs td { border: 1px solid #000; padding: 4px 6px; }
table.costs td.amount { text-align: right; }
.issued { text-align: right; margin-top: 16px; }
table.officials { width: 100%; margin-top: 12px; text-align: center; }
table.officials .role { font-weight: bold; }
table.officials .name { font-weight: bold; text-decoration: underline; }
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
<h1>KWITANSI</h1>
<table class="facts">
<tr><td style="width:10em">Sudah terima dari</td><td>:</td><td>Bendahara Pengeluaran</td></tr>
<tr><td>Uang sebanyak</td><td>:</td><td><b>{{.Total}}</b></td></tr>
<tr><td>Untuk pembayaran</td><td>:</td><td>{{.Purpose}}</td></tr>
</table>
<table class="costs">
<tr><th>Uraian</th><th>Keterangan</th><th>Jumlah</th></tr>
{{- range .Rows}}
<tr><td>{{.Label}}</td><td>{{.Detail}}</td><td class="amount">{{.Amount}}</td></tr>
{{- end}}
<tr><td colspan="2" style="text-align:right"><b>Total</b></td><td class="amount"><b>{{.Total}}</b></td></tr>
</table>
<div class="issued">{{.IssuedLine}}</div>
<table class="officials">
<tr>
{{- range .Officials}}
<td>
<div class="role">{{.Role}}</div>
<div class="gap"></div>
<div class="name">{{.Name}}</div>
<div>NIP. {{.NIP}}</div>
</td>
{{- end}}
</tr>
</table>
</body>
</html>
`))

type htmlOfficial struct {
	Role string
	Name string
	NIP  string
}

// RenderReceiptHTML renders the print view of a kwitansi.
func RenderReceiptHTML(data ReceiptData) (string, error) {
	var officials []htmlOfficial
	for _, o := range []struct {
		role string
		s    *Signer
	}{
		{"Kuasa Pengguna Anggaran", data.KPA},
		{"PPTK", data.PPTK},
		{"Bendahara Pengeluaran", data.Treasurer},
	} {
		if o.s == nil {
			continue
		}
		officials = append(officials, htmlOfficial{Role: o.role, Name: o.s.Name, NIP: FormatNIP(o.s.NIP)})
	}

	view := struct {
		Number          string
		Total           string
		Purpose         string
		IssuedLine      string
		LetterheadImage template.URL
		LetterheadLines []string
		Rows            []costRow
		Officials       []htmlOfficial
	}{
		Number:          data.Letter.Number,
		Total:           FormatRupiah(data.Receipt.TotalAmount),
		Purpose:         receiptPurpose(data),
		IssuedLine:      IssuedLine(data.IssuedAt, data.Receipt.Date),
		LetterheadImage: letterheadDataURI(data.Letterhead),
		LetterheadLines: data.Letterhead.Lines,
		Rows:            costRows(data.Receipt.Components),
		Officials:       officials,
	}

	var b strings.Builder
	if err := receiptHTMLTmpl.Execute(&b, view); err != nil {
		return "", err
	}
	return b.String(), nil
}
