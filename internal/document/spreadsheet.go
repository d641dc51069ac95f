package document

import (
	"html"
	"strings"
	"text/template"

	"github.com/siperdin/siperdin_api/internal/repository"
)

// Spreadsheet exports are Excel-flavored HTML served with the
// application/vnd.ms-excel content type. Excel opens them as worksheets,
// which keeps the export path free of a real xlsx writer. text/template is
// used on purpose: html/template strips the mso conditional comment that
// names the worksheet, so every data field is escaped before it enters the
// view instead.

// SpreadsheetContentType is the MIME type for the HTML spreadsheet exports.
const SpreadsheetContentType = "application/vnd.ms-excel"

const spreadsheetHeader = `<html xmlns:o="urn:schemas-microsoft-com:office:office" xmlns:x="urn:schemas-microsoft-com:office:excel">
<head>
<meta charset="utf-8">
<!--[if gte mso 9]><xml>
<x:ExcelWorkbook><x:ExcelWorksheets><x:ExcelWorksheet>
<x:Name>{{.Sheet}}</x:Name>
<x:WorksheetOptions><x:DisplayGridlines/></x:WorksheetOptions>
</x:ExcelWorksheet></x:ExcelWorksheets></x:ExcelWorkbook>
</xml><![endif]-->
<style>
th { background: #d9d9d9; border: 1px solid #000; font-weight: bold; }
td { border: 1px solid #000; }
td.num { mso-number-format: "#,##0"; text-align: right; }
</style>
</head>
<body>
`

var employeeTemplateTmpl = template.Must(template.New("employeeTemplate").Parse(spreadsheetHeader + `<table>
<tr><th>NIP</th><th>Nama</th><th>Jabatan</th><th>Pangkat</th><th>Golongan</th></tr>
<tr><td>199001012015031001</td><td>Contoh Nama Pegawai</td><td>Staf Subbagian Umum</td><td>Penata Muda</td><td>III/a</td></tr>
</table>
</body>
</html>
`))

// EmployeeImportTemplate renders the downloadable import template with the
// expected column order and one sample row.
func EmployeeImportTemplate() (string, error) {
	var b strings.Builder
	err := employeeTemplateTmpl.Execute(&b, struct{ Sheet string }{Sheet: "Pegawai"})
	return b.String(), err
}

var recapExportTmpl = template.Must(template.New("recapExport").Parse(spreadsheetHeader + `<h3>Rekapitulasi Perjalanan Dinas {{.Period}}</h3>
<table>
<tr><th>No</th><th>Tanggal</th><th>Nomor Surat Tugas</th><th>Uraian</th><th>Pegawai</th><th>Tujuan</th><th>Sumber Dana</th><th>Jumlah</th><th>Status</th></tr>
{{- range .Rows}}
<tr>
<td>{{.No}}</td>
<td>{{.Date}}</td>
<td>{{.LetterNumber}}</td>
<td>{{.Subject}}</td>
<td>{{.EmployeeNames}}</td>
<td>{{.Destination}}</td>
<td>{{.FundingCode}}</td>
<td class="num">{{.TotalAmount}}</td>
<td>{{.Status}}</td>
</tr>
{{- end}}
<tr><td colspan="7"><b>Total</b></td><td class="num"><b>{{.Total}}</b></td><td></td></tr>
</table>
</body>
</html>
`))

type recapExportRow struct {
	No            int
	Date          string
	LetterNumber  string
	Subject       string
	EmployeeNames string
	Destination   string
	FundingCode   string
	TotalAmount   int64
	Status        string
}

// RecapExport renders the monthly recap as a spreadsheet. Broken references
// in a row come through as empty strings and are shown as a dash.
func RecapExport(period string, rows []repository.RecapRow) (string, error) {
	view := struct {
		Sheet  string
		Period string
		Rows   []recapExportRow
		Total  int64
	}{
		Sheet:  cellText("Rekap " + period),
		Period: cellText(period),
	}
	for i, r := range rows {
		view.Rows = append(view.Rows, recapExportRow{
			No:            i + 1,
			Date:          cellText(r.Date),
			LetterNumber:  cellText(orDash(r.LetterNumber)),
			Subject:       cellText(orDash(r.Subject)),
			EmployeeNames: cellText(orDash(r.EmployeeNames)),
			Destination:   cellText(orDash(r.Destination)),
			FundingCode:   cellText(orDash(r.FundingCode)),
			TotalAmount:   r.TotalAmount,
			Status:        cellText(r.Status),
		})
		view.Total += r.TotalAmount
	}

	var b strings.Builder
	err := recapExportTmpl.Execute(&b, view)
	return b.String(), err
}

func cellText(s string) string {
	return html.EscapeString(s)
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}
