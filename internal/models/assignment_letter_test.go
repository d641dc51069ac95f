package models

import (
	"testing"
	"time"
)

func TestDurationDays(t *testing.T) {
	day := func(d int) time.Time {
		return time.Date(2024, 5, d, 0, 0, 0, 0, time.UTC)
	}
	cases := []struct {
		start, end time.Time
		want       int
	}{
		{day(1), day(1), 1},
		{day(1), day(3), 3},
		{day(3), day(1), 3},
		{day(1), day(31), 31},
		{time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC), time.Date(2024, 5, 2, 17, 0, 0, 0, time.UTC), 3},
	}
	for _, tc := range cases {
		if got := DurationDays(tc.start, tc.end); got != tc.want {
			t.Errorf("DurationDays(%v, %v) = %d, want %d", tc.start, tc.end, got, tc.want)
		}
	}
}

func TestAssignmentLetterNormalize(t *testing.T) {
	letter := AssignmentLetter{
		StartDate: time.Date(2024, 8, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2024, 8, 5, 0, 0, 0, 0, time.UTC),
		Duration:  99,
	}
	letter.Normalize()

	if letter.Duration != 5 {
		t.Fatalf("Normalize duration = %d, want 5", letter.Duration)
	}
	if letter.Status != LetterPending {
		t.Fatalf("Normalize status = %s, want %s", letter.Status, LetterPending)
	}
	if letter.SignatureType != SignatureDirect {
		t.Fatalf("Normalize signature type = %s, want %s", letter.SignatureType, SignatureDirect)
	}
}

func TestValidLetterStatus(t *testing.T) {
	for _, s := range []string{"Pending", "Verified", "Approved", "Rejected"} {
		if !ValidLetterStatus(s) {
			t.Errorf("ValidLetterStatus(%q) = false", s)
		}
	}
	for _, s := range []string{"", "pending", "Done", "Paid"} {
		if ValidLetterStatus(s) {
			t.Errorf("ValidLetterStatus(%q) = true", s)
		}
	}
}
