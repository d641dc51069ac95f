package document

import (
	"testing"
	"time"
)

func TestFormatLongDate(t *testing.T) {
	tests := []struct {
		date time.Time
		want string
	}{
		{time.Date(2024, 8, 17, 0, 0, 0, 0, time.UTC), "17 Agustus 2024"},
		{time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), "1 Januari 2025"},
		{time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC), "31 Desember 2023"},
	}
	for _, tt := range tests {
		if got := FormatLongDate(tt.date); got != tt.want {
			t.Errorf("FormatLongDate(%v) = %q, want %q", tt.date, got, tt.want)
		}
	}
}

func TestFormatRupiah(t *testing.T) {
	tests := []struct {
		amount int64
		want   string
	}{
		{0, "Rp 0"},
		{500, "Rp 500"},
		{1000, "Rp 1.000"},
		{1234567, "Rp 1.234.567"},
		{100000000, "Rp 100.000.000"},
		{-250000, "-Rp 250.000"},
	}
	for _, tt := range tests {
		if got := FormatRupiah(tt.amount); got != tt.want {
			t.Errorf("FormatRupiah(%d) = %q, want %q", tt.amount, got, tt.want)
		}
	}
}

func TestFormatDuration(t *testing.T) {
	if got := FormatDuration(3); got != "3 hari" {
		t.Errorf("FormatDuration(3) = %q", got)
	}
	if got := FormatDuration(1); got != "1 hari" {
		t.Errorf("FormatDuration(1) = %q", got)
	}
}

func TestFormatNIP(t *testing.T) {
	tests := []struct {
		nip  string
		want string
	}{
		{"196805171990031003", "19680517 199003 1 003"},
		{"19680517 199003 1 003", "19680517 199003 1 003"},
		{"12345", "12345"},
		{"-", "-"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := FormatNIP(tt.nip); got != tt.want {
			t.Errorf("FormatNIP(%q) = %q, want %q", tt.nip, got, tt.want)
		}
	}
}

func TestTitleCase(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"penata muda", "Penata Muda"},
		{"PEMBINA UTAMA", "Pembina Utama"},
		{"penata", "Penata"},
		{"", ""},
		{"  spaced   words ", "Spaced Words"},
	}
	for _, tt := range tests {
		if got := TitleCase(tt.in); got != tt.want {
			t.Errorf("TitleCase(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
