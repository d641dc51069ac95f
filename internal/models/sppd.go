package models

import "time"

// SPPDStatus is the travel-order progress state.
type SPPDStatus string

const (
	SPPDOngoing SPPDStatus = "Sedang Berjalan"
	SPPDDone    SPPDStatus = "Selesai"
)

// SPPD (Surat Perintah Perjalanan Dinas) is the travel order issued from an
// approved assignment letter. Each letter carries at most one SPPD, enforced
// by a unique constraint on assignment_id.
type SPPD struct {
	ID           string     `db:"id" json:"id"`
	AssignmentID string     `db:"assignment_id" json:"assignmentId"`
	StartDate    time.Time  `db:"start_date" json:"startDate"`
	EndDate      time.Time  `db:"end_date" json:"endDate"`
	Status       SPPDStatus `db:"status" json:"status"`
	TransportID  string     `db:"transport_id" json:"transportId,omitempty"`
	FundingID    string     `db:"funding_id" json:"fundingId,omitempty"`
	Version      int        `db:"version" json:"version"`
	CreatedAt    time.Time  `db:"created_at" json:"createdAt"`
	UpdatedAt    time.Time  `db:"updated_at" json:"updatedAt"`
}
