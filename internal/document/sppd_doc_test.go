package document

import (
	"strings"
	"testing"
	"time"

	"github.com/siperdin/siperdin_api/internal/models"
)

func sampleSPPDData() SPPDData {
	return SPPDData{
		SPPD: &models.SPPD{
			StartDate: time.Date(2024, 8, 5, 0, 0, 0, 0, time.UTC),
			EndDate:   time.Date(2024, 8, 7, 0, 0, 0, 0, time.UTC),
			CreatedAt: time.Date(2024, 8, 2, 0, 0, 0, 0, time.UTC),
		},
		Letter: &models.AssignmentLetter{
			Number:   "090/ST/2024",
			Subject:  "Mengikuti rapat koordinasi",
			Duration: 3,
		},
		Employees: []models.Employee{
			{Name: "Budi Santoso", NIP: "196805171990031003", Position: "Kepala Seksi", Rank: "Penata", Grade: "III/c"},
			{Name: "Siti Aminah", NIP: "198203152008012002"},
		},
		Destination: "Pontianak",
		Transport:   "Kendaraan Dinas",
		Funding: &models.FundingSource{
			Name:       "APBD Kabupaten",
			Code:       "5.1.02.04",
			BudgetYear: 2024,
		},
		Signer:     testSigner,
		Layout:     DirectSignature{},
		IssuedAt:   "Sungai Raya",
		OriginCity: "Sungai Raya",
	}
}

func TestSPPDFilename(t *testing.T) {
	if got := SPPDFilename("090/ST/2024"); got != "SPPD_090-ST-2024.docx" {
		t.Errorf("SPPDFilename = %q", got)
	}
}

func TestSPPDRows(t *testing.T) {
	rows := sppdRows(sampleSPPDData())
	if len(rows) != 10 {
		t.Fatalf("got %d rows, want 10", len(rows))
	}
	if rows[0].Value != "Kepala Dinas" {
		t.Errorf("row 1 = %q", rows[0].Value)
	}
	if rows[1].Value != "Budi Santoso" {
		t.Errorf("row 2 = %q", rows[1].Value)
	}
	if rows[2].Value != "Penata / III/c; NIP. 19680517 199003 1 003; Kepala Seksi" {
		t.Errorf("row 3 = %q", rows[2].Value)
	}
	if rows[4].Value != "Kendaraan Dinas" {
		t.Errorf("row 5 = %q", rows[4].Value)
	}
	if rows[5].Value != "Sungai Raya / Pontianak" {
		t.Errorf("row 6 = %q", rows[5].Value)
	}
	if rows[6].Value != "3 hari / 5 Agustus 2024 / 7 Agustus 2024" {
		t.Errorf("row 7 = %q", rows[6].Value)
	}
	if rows[7].Value != "1. Siti Aminah (NIP. 19820315 200801 2 002)" {
		t.Errorf("row 8 = %q", rows[7].Value)
	}
	if rows[8].Value != "APBD Kabupaten (5.1.02.04) Tahun Anggaran 2024" {
		t.Errorf("row 9 = %q", rows[8].Value)
	}
	if rows[9].Value != "Dasar: Surat Tugas Nomor 090/ST/2024" {
		t.Errorf("row 10 = %q", rows[9].Value)
	}
}

func TestSPPDRowsSoloTraveler(t *testing.T) {
	data := sampleSPPDData()
	data.Employees = data.Employees[:1]
	data.Transport = ""
	data.Funding = nil

	rows := sppdRows(data)
	if rows[4].Value != "-" {
		t.Errorf("transport row = %q, want dash", rows[4].Value)
	}
	if rows[7].Value != "-" {
		t.Errorf("follower row = %q, want dash", rows[7].Value)
	}
	if rows[8].Value != "-" {
		t.Errorf("funding row = %q, want dash", rows[8].Value)
	}
}

func TestRenderSPPDHTML(t *testing.T) {
	html, err := RenderSPPDHTML(sampleSPPDData())
	if err != nil {
		t.Fatalf("RenderSPPDHTML: %v", err)
	}
	for _, want := range []string{
		"SURAT PERINTAH PERJALANAN DINAS",
		"Nomor: 090/ST/2024",
		"Budi Santoso",
		"Pengikut",
		"Siti Aminah",
		"window.print()",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("SPPD HTML missing %q", want)
		}
	}
}
