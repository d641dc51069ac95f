package document

import (
	"strings"
	"testing"

	"github.com/siperdin/siperdin_api/internal/repository"
)

func TestEmployeeImportTemplate(t *testing.T) {
	out, err := EmployeeImportTemplate()
	if err != nil {
		t.Fatalf("EmployeeImportTemplate: %v", err)
	}
	for _, want := range []string{
		"<x:Name>Pegawai</x:Name>",
		"<th>NIP</th><th>Nama</th><th>Jabatan</th><th>Pangkat</th><th>Golongan</th>",
		"Contoh Nama Pegawai",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("template missing %q", want)
		}
	}
}

func TestRecapExport(t *testing.T) {
	rows := []repository.RecapRow{
		{
			Date:          "2024-08-05",
			LetterNumber:  "090/ST/2024",
			Subject:       "Rapat koordinasi",
			EmployeeNames: "Budi Santoso, Siti Aminah",
			Destination:   "Pontianak",
			FundingCode:   "5.1.02.04",
			TotalAmount:   1500000,
			Status:        "Paid",
		},
		{
			Date:        "2024-08-20",
			Subject:     "Monitoring & evaluasi",
			TotalAmount: 500000,
			Status:      "Draft",
		},
	}

	out, err := RecapExport("2024-08", rows)
	if err != nil {
		t.Fatalf("RecapExport: %v", err)
	}

	for _, want := range []string{
		"<x:Name>Rekap 2024-08</x:Name>",
		"Rekapitulasi Perjalanan Dinas 2024-08",
		"090/ST/2024",
		"Monitoring &amp; evaluasi",
		`<td class="num">1500000</td>`,
		`<td class="num"><b>2000000</b></td>`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("export missing %q", want)
		}
	}

	// broken references render as dashes, not empty cells
	if got := strings.Count(out, "<td>-</td>"); got < 3 {
		t.Errorf("expected at least 3 dash cells for the sparse row, got %d", got)
	}
	if !strings.Contains(out, "<!--[if gte mso 9]>") {
		t.Error("export lost the mso worksheet-name block")
	}
}

func TestRecapExportEmpty(t *testing.T) {
	out, err := RecapExport("2024-01", nil)
	if err != nil {
		t.Fatalf("RecapExport: %v", err)
	}
	if !strings.Contains(out, `<td class="num"><b>0</b></td>`) {
		t.Error("empty export should still render a zero total row")
	}
}
