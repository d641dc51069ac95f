package service

import (
	"strings"
	"testing"
)

func TestParseEmployeeFileComma(t *testing.T) {
	input := "NIP,Nama,Jabatan,Pangkat,Golongan\n" +
		"198001012005011001,Budi Santoso,Kepala Seksi,Penata,III/c\n" +
		"198203152008012002,Siti Aminah,Staf,Pengatur,II/c\n"

	employees, err := ParseEmployeeFile(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ParseEmployeeFile: %v", err)
	}
	if len(employees) != 2 {
		t.Fatalf("got %d employees, want 2", len(employees))
	}
	if employees[0].NIP != "198001012005011001" {
		t.Errorf("NIP = %q", employees[0].NIP)
	}
	if employees[0].Name != "Budi Santoso" {
		t.Errorf("Name = %q", employees[0].Name)
	}
	if employees[0].Position != "Kepala Seksi" || employees[0].Rank != "Penata" || employees[0].Grade != "III/c" {
		t.Errorf("optional columns = %q %q %q", employees[0].Position, employees[0].Rank, employees[0].Grade)
	}
	if employees[0].ID == "" || employees[1].ID == "" {
		t.Error("imported rows must get generated IDs")
	}
	if employees[0].ID == employees[1].ID {
		t.Error("generated IDs must be unique")
	}
}

func TestParseEmployeeFileSemicolon(t *testing.T) {
	input := "198001012005011001;Budi Santoso;Kepala Seksi\n" +
		"198203152008012002;Siti Aminah\n"

	employees, err := ParseEmployeeFile(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ParseEmployeeFile: %v", err)
	}
	if len(employees) != 2 {
		t.Fatalf("got %d employees, want 2", len(employees))
	}
	if employees[1].Name != "Siti Aminah" {
		t.Errorf("Name = %q", employees[1].Name)
	}
	if employees[1].Position != "" {
		t.Errorf("missing column should stay empty, got %q", employees[1].Position)
	}
}

func TestParseEmployeeFileSkipsBadRows(t *testing.T) {
	input := "nip,nama\n" +
		"198001012005011001,\n" +
		"justonefield\n" +
		"198203152008012002,Siti Aminah\n"

	employees, err := ParseEmployeeFile(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ParseEmployeeFile: %v", err)
	}
	if len(employees) != 1 {
		t.Fatalf("got %d employees, want 1", len(employees))
	}
	if employees[0].Name != "Siti Aminah" {
		t.Errorf("Name = %q", employees[0].Name)
	}
}

func TestParseEmployeeFileEmpty(t *testing.T) {
	employees, err := ParseEmployeeFile(strings.NewReader(""))
	if err != nil {
		t.Fatalf("ParseEmployeeFile: %v", err)
	}
	if len(employees) != 0 {
		t.Fatalf("got %d employees, want 0", len(employees))
	}
}

func TestSniffDelimiter(t *testing.T) {
	tests := []struct {
		line string
		want rune
	}{
		{"a;b;c", ';'},
		{"a,b,c", ','},
		{"a,b;c", ','},
		{"a;b,c\nnext;line;ignored", ','},
		{"", ','},
	}
	for _, tt := range tests {
		if got := sniffDelimiter(tt.line); got != tt.want {
			t.Errorf("sniffDelimiter(%q) = %q, want %q", tt.line, got, tt.want)
		}
	}
}
