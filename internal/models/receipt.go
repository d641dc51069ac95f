package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/lib/pq"
)

// ReceiptStatus is the payment state of an expense receipt.
type ReceiptStatus string

const (
	ReceiptDraft ReceiptStatus = "Draft"
	// ReceiptVerified is a valid stored status but no endpoint sets it;
	// the observed flow goes straight from Draft to Paid.
	ReceiptVerified ReceiptStatus = "Verified"
	ReceiptPaid     ReceiptStatus = "Paid"
)

// ValidReceiptStatus reports whether s is a known receipt status.
func ValidReceiptStatus(s string) bool {
	switch ReceiptStatus(s) {
	case ReceiptDraft, ReceiptVerified, ReceiptPaid:
		return true
	}
	return false
}

// CostItem is one expense component. Only visible items count toward the
// receipt total and appear on generated documents.
type CostItem struct {
	Amount      int64  `json:"amount"`
	Description string `json:"description,omitempty"`
	Visible     bool   `json:"visible"`
}

// DailyAllowanceItem is the per-diem component; its Total (days times rate)
// is what contributes to the receipt total.
type DailyAllowanceItem struct {
	Days         int   `json:"days"`
	AmountPerDay int64 `json:"amountPerDay"`
	Total        int64 `json:"total"`
	Visible      bool  `json:"visible"`
}

// CostComponents groups every expense component of a receipt. It is stored
// as a JSONB column with the same camelCase shape the API exposes.
type CostComponents struct {
	DailyAllowance DailyAllowanceItem `json:"dailyAllowance"`
	Transport      CostItem           `json:"transport"`
	Accommodation  CostItem           `json:"accommodation"`
	Fuel           CostItem           `json:"fuel"`
	Toll           CostItem           `json:"toll"`
	Representation CostItem           `json:"representation"`
	Other          CostItem           `json:"other"`
}

// Value implements driver.Valuer for JSONB storage.
func (c CostComponents) Value() (driver.Value, error) {
	return json.Marshal(c)
}

// Scan implements sql.Scanner for JSONB storage.
func (c *CostComponents) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*c = CostComponents{}
		return nil
	case []byte:
		return json.Unmarshal(v, c)
	case string:
		return json.Unmarshal([]byte(v), c)
	default:
		return fmt.Errorf("unsupported type %T for CostComponents", src)
	}
}

// Total sums the visible components: the daily allowance contributes its
// Total, every other component its Amount.
func (c CostComponents) Total() int64 {
	var sum int64
	if c.DailyAllowance.Visible {
		sum += c.DailyAllowance.Total
	}
	for _, item := range []CostItem{c.Transport, c.Accommodation, c.Fuel, c.Toll, c.Representation, c.Other} {
		if item.Visible {
			sum += item.Amount
		}
	}
	return sum
}

// Receipt (Kwitansi) records the realized cost of one SPPD.
type Receipt struct {
	ID          string         `db:"id" json:"id"`
	SPPDID      string         `db:"sppd_id" json:"sppdId"`
	Date        time.Time      `db:"date" json:"date"`
	Components  CostComponents `db:"components" json:"components"`
	TotalAmount int64          `db:"total_amount" json:"totalAmount"`
	Status      ReceiptStatus  `db:"status" json:"status"`
	TreasurerID string         `db:"treasurer_id" json:"treasurerId,omitempty"`
	PPTKID      string         `db:"pptk_id" json:"pptkId,omitempty"`
	KPAID       string         `db:"kpa_id" json:"kpaId,omitempty"`
	Attachments pq.StringArray `db:"attachments" json:"attachments,omitempty"`
	Version     int            `db:"version" json:"version"`
	CreatedAt   time.Time      `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time      `db:"updated_at" json:"updatedAt"`
}

// Normalize recomputes the derived total and applies defaults. Called on
// every save so the stored total always matches the visible components.
func (r *Receipt) Normalize() {
	r.TotalAmount = r.Components.Total()
	if r.Status == "" {
		r.Status = ReceiptDraft
	}
}
