package document

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/siperdin/siperdin_api/internal/models"
)

func TestFetchLetterheadImage(t *testing.T) {
	payload := []byte{0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		w.Write(payload)
	}))
	defer srv.Close()

	settings := &models.AgencySettings{KopSuratURL: srv.URL}
	lh := FetchLetterhead(context.Background(), srv.Client(), settings, time.Second)

	if lh.ImageExt != "png" {
		t.Errorf("ImageExt = %q, want png", lh.ImageExt)
	}
	if string(lh.Image) != string(payload) {
		t.Error("fetched image bytes differ from served bytes")
	}
	if len(lh.Lines) != 0 {
		t.Errorf("image letterhead should carry no text lines, got %v", lh.Lines)
	}
}

func TestFetchLetterheadFallsBackOnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	settings := &models.AgencySettings{
		Name:        "Pemerintah Kabupaten Kubu Raya",
		Department:  "Dinas Komunikasi dan Informatika",
		Address:     "Jl. Arteri Supadio",
		KopSuratURL: srv.URL,
	}
	lh := FetchLetterhead(context.Background(), srv.Client(), settings, time.Second)

	if lh.Image != nil {
		t.Fatal("failed fetch must not keep image bytes")
	}
	if len(lh.Lines) != 3 {
		t.Fatalf("got %d lines, want 3: %v", len(lh.Lines), lh.Lines)
	}
	if lh.Lines[0] != "PEMERINTAH KABUPATEN KUBU RAYA" {
		t.Errorf("first line = %q", lh.Lines[0])
	}
	if lh.Lines[2] != "Jl. Arteri Supadio" {
		t.Errorf("contact line = %q", lh.Lines[2])
	}
}

func TestFetchLetterheadNoURL(t *testing.T) {
	lh := FetchLetterhead(context.Background(), http.DefaultClient, nil, time.Second)
	if len(lh.Lines) != 1 || lh.Lines[0] != "PEMERINTAH DAERAH" {
		t.Errorf("nil settings letterhead = %v", lh.Lines)
	}
}

func TestImageExt(t *testing.T) {
	tests := []struct {
		contentType string
		url         string
		want        string
	}{
		{"image/png", "http://x/kop", "png"},
		{"image/jpeg", "http://x/kop", "jpeg"},
		{"application/octet-stream", "http://x/kop.PNG", "png"},
		{"", "http://x/kop.jpg", "jpeg"},
		{"text/html", "http://x/kop", ""},
	}
	for _, tt := range tests {
		if got := imageExt(tt.contentType, tt.url); got != tt.want {
			t.Errorf("imageExt(%q, %q) = %q, want %q", tt.contentType, tt.url, got, tt.want)
		}
	}
}

func TestLetterheadDataURI(t *testing.T) {
	uri := letterheadDataURI(Letterhead{Image: []byte{1, 2, 3}, ImageExt: "png"})
	if !strings.HasPrefix(string(uri), "data:image/png;base64,") {
		t.Errorf("data URI = %q", uri)
	}
	if letterheadDataURI(Letterhead{}) != "" {
		t.Error("text letterhead should produce no data URI")
	}
}
