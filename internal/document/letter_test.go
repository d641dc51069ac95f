package document

import (
	"strings"
	"testing"
	"time"

	"github.com/siperdin/siperdin_api/internal/models"
)

func TestLetterFilename(t *testing.T) {
	tests := []struct {
		number string
		want   string
	}{
		{"090/ST/2024", "Surat_Tugas_090-ST-2024.docx"},
		{"090/ST/DISKOMINFO/VIII/2024", "Surat_Tugas_090-ST-DISKOMINFO-VIII-2024.docx"},
		{"12", "Surat_Tugas_12.docx"},
	}
	for _, tt := range tests {
		if got := LetterFilename(tt.number); got != tt.want {
			t.Errorf("LetterFilename(%q) = %q, want %q", tt.number, got, tt.want)
		}
	}
}

func TestIssuedLine(t *testing.T) {
	got := IssuedLine("Sungai Raya", time.Date(2024, 8, 17, 0, 0, 0, 0, time.UTC))
	want := "Ditetapkan di Sungai Raya, pada tanggal 17 Agustus 2024"
	if got != want {
		t.Errorf("IssuedLine = %q, want %q", got, want)
	}
}

func sampleLetterData() LetterData {
	return LetterData{
		Letter: &models.AssignmentLetter{
			Number:    "090/ST/2024",
			Basis:     "DPA Tahun Anggaran 2024",
			Subject:   "Mengikuti rapat koordinasi",
			Date:      time.Date(2024, 8, 1, 0, 0, 0, 0, time.UTC),
			StartDate: time.Date(2024, 8, 5, 0, 0, 0, 0, time.UTC),
			EndDate:   time.Date(2024, 8, 7, 0, 0, 0, 0, time.UTC),
			Duration:  3,
		},
		Employees: []models.Employee{
			{Name: "Budi Santoso", NIP: "196805171990031003", Position: "Kepala Seksi", Rank: "Penata", Grade: "III/c"},
			{Name: "Siti Aminah", NIP: "-", Position: "Staf"},
		},
		Destination: "Pontianak",
		Signer:      testSigner,
		Layout:      DirectSignature{},
		Letterhead: Letterhead{
			Lines: []string{"PEMERINTAH KABUPATEN KUBU RAYA", "DINAS KOMUNIKASI DAN INFORMATIKA"},
		},
		IssuedAt: "Sungai Raya",
	}
}

func TestRenderLetterHTML(t *testing.T) {
	html, err := RenderLetterHTML(sampleLetterData())
	if err != nil {
		t.Fatalf("RenderLetterHTML: %v", err)
	}

	for _, want := range []string{
		"SURAT TUGAS",
		"Nomor: 090/ST/2024",
		"Budi Santoso",
		"19680517 199003 1 003",
		"Siti Aminah",
		"Mengikuti rapat koordinasi di Pontianak selama 3 hari",
		"terhitung mulai tanggal 5 Agustus 2024 sampai dengan 7 Agustus 2024",
		"Ditetapkan di Sungai Raya, pada tanggal 1 Agustus 2024",
		"PEMERINTAH KABUPATEN KUBU RAYA",
		"KEPALA DINAS",
		"window.print()",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("letter HTML missing %q", want)
		}
	}
	if strings.Contains(html, "<img") {
		t.Error("text letterhead should not render an image tag")
	}
}

func TestBuildLetterDocx(t *testing.T) {
	doc := BuildLetterDocx(sampleLetterData())

	body := doc.documentXML()
	for _, want := range []string{
		"SURAT TUGAS",
		"Nomor: 090/ST/2024",
		"MENUGASKAN",
		"Budi Santoso",
		"Siti Aminah",
		"Demikian Surat Tugas ini dibuat",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("letter docx missing %q", want)
		}
	}
}

func TestAssignmentSentenceWithAddress(t *testing.T) {
	l := &models.AssignmentLetter{
		Subject:            "Monitoring jaringan",
		DestinationAddress: "Jl. Ahmad Yani No. 1",
		Duration:           1,
		StartDate:          time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC),
		EndDate:            time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC),
	}
	got := assignmentSentence(l, "Pontianak")
	want := "Monitoring jaringan di Pontianak (Jl. Ahmad Yani No. 1) selama 1 hari, terhitung mulai tanggal 4 Maret 2024 sampai dengan 4 Maret 2024."
	if got != want {
		t.Errorf("assignmentSentence = %q, want %q", got, want)
	}
}
