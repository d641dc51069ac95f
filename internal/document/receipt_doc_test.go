package document

import (
	"strings"
	"testing"
	"time"

	"github.com/siperdin/siperdin_api/internal/models"
)

func TestReceiptFilename(t *testing.T) {
	if got := ReceiptFilename("090/ST/2024"); got != "Kwitansi_090-ST-2024.docx" {
		t.Errorf("ReceiptFilename = %q", got)
	}
}

func TestCostRows(t *testing.T) {
	rows := costRows(models.CostComponents{
		DailyAllowance: models.DailyAllowanceItem{Days: 3, AmountPerDay: 150000, Total: 450000, Visible: true},
		Transport:      models.CostItem{Amount: 300000, Description: "Tiket pesawat PP", Visible: true},
		Accommodation:  models.CostItem{Amount: 800000, Visible: false},
		Other:          models.CostItem{Amount: 50000, Visible: true},
	})

	if len(rows) != 3 {
		t.Fatalf("got %d rows, want 3", len(rows))
	}
	if rows[0].Label != "Uang Harian" || rows[0].Detail != "3 hari x Rp 150.000" || rows[0].Amount != "Rp 450.000" {
		t.Errorf("daily allowance row = %+v", rows[0])
	}
	if rows[1].Label != "Transportasi" || rows[1].Detail != "Tiket pesawat PP" {
		t.Errorf("transport row = %+v", rows[1])
	}
	if rows[2].Label != "Lain-lain" {
		t.Errorf("last row = %+v", rows[2])
	}
}

func sampleReceiptData() ReceiptData {
	return ReceiptData{
		Receipt: &models.Receipt{
			TotalAmount: 750000,
			Date:        time.Date(2024, 8, 10, 0, 0, 0, 0, time.UTC),
			Components: models.CostComponents{
				DailyAllowance: models.DailyAllowanceItem{Days: 3, AmountPerDay: 150000, Total: 450000, Visible: true},
				Transport:      models.CostItem{Amount: 300000, Visible: true},
			},
		},
		Letter: &models.AssignmentLetter{
			Number: "090/ST/2024",
			Date:   time.Date(2024, 8, 1, 0, 0, 0, 0, time.UTC),
		},
		Employees:   []models.Employee{{Name: "Budi Santoso"}, {Name: "Siti Aminah"}},
		Destination: "Pontianak",
		Treasurer:   &Signer{Name: "Rina Wati", NIP: "198203152008012002"},
		IssuedAt:    "Sungai Raya",
	}
}

func TestReceiptPurpose(t *testing.T) {
	got := receiptPurpose(sampleReceiptData())
	want := "Biaya perjalanan dinas a.n. Budi Santoso, Siti Aminah ke Pontianak sesuai Surat Tugas Nomor 090/ST/2024 tanggal 1 Agustus 2024."
	if got != want {
		t.Errorf("receiptPurpose = %q, want %q", got, want)
	}
}

func TestRenderReceiptHTML(t *testing.T) {
	html, err := RenderReceiptHTML(sampleReceiptData())
	if err != nil {
		t.Fatalf("RenderReceiptHTML: %v", err)
	}
	for _, want := range []string{
		"KWITANSI",
		"Bendahara Pengeluaran",
		"Rp 750.000",
		"Uang Harian",
		"Rina Wati",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("receipt HTML missing %q", want)
		}
	}
	// officials not named on the receipt stay off the document
	if strings.Contains(html, "Kuasa Pengguna Anggaran") {
		t.Error("receipt HTML should omit the unset KPA column")
	}
}

func TestBuildReceiptDocxOmitsUnsetOfficials(t *testing.T) {
	doc := BuildReceiptDocx(sampleReceiptData())
	body := doc.documentXML()
	if !strings.Contains(body, "Rina Wati") {
		t.Error("receipt docx missing treasurer")
	}
	if strings.Contains(body, "PPTK") {
		t.Error("receipt docx should omit the unset PPTK label")
	}
}
