package models

import (
	"math"
	"time"

	"github.com/lib/pq"
)

// LetterStatus is the workflow state of an assignment letter.
type LetterStatus string

const (
	LetterPending  LetterStatus = "Pending"
	LetterVerified LetterStatus = "Verified"
	LetterApproved LetterStatus = "Approved"
	LetterRejected LetterStatus = "Rejected"
)

// ValidLetterStatus reports whether s is a known letter status.
func ValidLetterStatus(s string) bool {
	switch LetterStatus(s) {
	case LetterPending, LetterVerified, LetterApproved, LetterRejected:
		return true
	}
	return false
}

// SignatureType selects the signature-block layout of a generated document.
type SignatureType string

const (
	SignatureDirect SignatureType = "Direct"
	SignatureAN     SignatureType = "AN"
	SignatureUB     SignatureType = "UB"
)

// AssignmentLetter (Surat Tugas) is the workflow root: it assigns one or
// more employees to travel and must be approved before an SPPD can exist.
type AssignmentLetter struct {
	ID                 string         `db:"id" json:"id"`
	Number             string         `db:"number" json:"number"`
	Date               time.Time      `db:"date" json:"date"`
	Basis              string         `db:"basis" json:"basis"`
	EmployeeIDs        pq.StringArray `db:"employee_ids" json:"employeeIds"`
	Subject            string         `db:"subject" json:"subject"`
	DestinationID      string         `db:"destination_id" json:"destinationId"`
	DestinationAddress string         `db:"destination_address" json:"destinationAddress,omitempty"`
	StartDate          time.Time      `db:"start_date" json:"startDate"`
	EndDate            time.Time      `db:"end_date" json:"endDate"`
	Duration           int            `db:"duration" json:"duration"`
	SignatoryID        string         `db:"signatory_id" json:"signatoryId"`
	Status             LetterStatus   `db:"status" json:"status"`
	SignatureType      SignatureType  `db:"signature_type" json:"signatureType"`
	UpperTitle         string         `db:"upper_title" json:"upperTitle,omitempty"`
	IntermediateTitle  string         `db:"intermediate_title" json:"intermediateTitle,omitempty"`
	Version            int            `db:"version" json:"version"`
	CreatedAt          time.Time      `db:"created_at" json:"createdAt"`
	UpdatedAt          time.Time      `db:"updated_at" json:"updatedAt"`
}

// DurationDays returns the inclusive day count between start and end:
// ceil of the absolute difference in days, plus one. 2024-05-01 through
// 2024-05-03 is 3 days.
func DurationDays(start, end time.Time) int {
	diff := end.Sub(start)
	if diff < 0 {
		diff = -diff
	}
	return int(math.Ceil(diff.Hours()/24)) + 1
}

// Normalize recomputes the derived duration and applies defaults. It is
// called on every save so that duration can never drift from the dates.
func (a *AssignmentLetter) Normalize() {
	a.Duration = DurationDays(a.StartDate, a.EndDate)
	if a.SignatureType == "" {
		a.SignatureType = SignatureDirect
	}
	if a.Status == "" {
		a.Status = LetterPending
	}
}
