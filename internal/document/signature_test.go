package document

import (
	"testing"

	"github.com/siperdin/siperdin_api/internal/models"
)

var testSigner = Signer{
	Name:     "Drs. H. Muda Mahendrawan",
	Rank:     "pembina utama",
	NIP:      "196805171990031003",
	RoleName: "Kepala Dinas",
}

func TestSignatureLinesDirect(t *testing.T) {
	lines := SignatureLines(DirectSignature{}, testSigner)
	if len(lines) != 8 {
		t.Fatalf("got %d lines, want 8", len(lines))
	}
	if lines[0].Text != "KEPALA DINAS" || !lines[0].Bold {
		t.Errorf("role line = %+v", lines[0])
	}
	for i := 1; i <= 4; i++ {
		if lines[i].Text != "" {
			t.Errorf("line %d should be signing space, got %q", i, lines[i].Text)
		}
	}
	if lines[5].Text != testSigner.Name || !lines[5].Bold || !lines[5].Underline {
		t.Errorf("name line = %+v", lines[5])
	}
	if lines[6].Text != "Pembina Utama" {
		t.Errorf("rank line = %q", lines[6].Text)
	}
	if lines[7].Text != "NIP. 19680517 199003 1 003" {
		t.Errorf("NIP line = %q", lines[7].Text)
	}
}

func TestSignatureLinesAN(t *testing.T) {
	lines := SignatureLines(ANSignature{UpperTitle: "Bupati Kubu Raya"}, testSigner)
	if len(lines) != 9 {
		t.Fatalf("got %d lines, want 9", len(lines))
	}
	if lines[0].Text != "a.n. Bupati Kubu Raya" || lines[0].Bold {
		t.Errorf("a.n. line = %+v", lines[0])
	}
	if lines[1].Text != "KEPALA DINAS" {
		t.Errorf("role line = %q", lines[1].Text)
	}
}

func TestSignatureLinesUB(t *testing.T) {
	lines := SignatureLines(UBSignature{
		UpperTitle:        "Bupati Kubu Raya",
		IntermediateTitle: "Sekretaris Daerah",
	}, testSigner)
	if len(lines) != 11 {
		t.Fatalf("got %d lines, want 11", len(lines))
	}
	if lines[0].Text != "a.n. Bupati Kubu Raya" {
		t.Errorf("a.n. line = %q", lines[0].Text)
	}
	if lines[1].Text != "Sekretaris Daerah," {
		t.Errorf("intermediate line = %q", lines[1].Text)
	}
	if lines[2].Text != "u.b." {
		t.Errorf("u.b. line = %q", lines[2].Text)
	}
	if lines[3].Text != "KEPALA DINAS" || !lines[3].Bold {
		t.Errorf("role line = %+v", lines[3])
	}
}

func TestLayoutFromLetter(t *testing.T) {
	letter := &models.AssignmentLetter{
		SignatureType:     models.SignatureUB,
		UpperTitle:        "Bupati",
		IntermediateTitle: "Sekda",
	}
	if l, ok := LayoutFromLetter(letter).(UBSignature); !ok || l.UpperTitle != "Bupati" || l.IntermediateTitle != "Sekda" {
		t.Errorf("ub layout = %#v", LayoutFromLetter(letter))
	}

	letter.SignatureType = models.SignatureAN
	if l, ok := LayoutFromLetter(letter).(ANSignature); !ok || l.UpperTitle != "Bupati" {
		t.Errorf("an layout = %#v", LayoutFromLetter(letter))
	}

	letter.SignatureType = ""
	if _, ok := LayoutFromLetter(letter).(DirectSignature); !ok {
		t.Errorf("default layout = %#v", LayoutFromLetter(letter))
	}
}
