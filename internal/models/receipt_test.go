package models

import (
	"testing"
)

func sampleComponents() CostComponents {
	return CostComponents{
		DailyAllowance: DailyAllowanceItem{Days: 3, AmountPerDay: 150000, Total: 450000, Visible: true},
		Transport:      CostItem{Amount: 200000, Visible: true},
		Accommodation:  CostItem{Amount: 500000, Visible: true},
		Fuel:           CostItem{Amount: 100000, Visible: false},
		Toll:           CostItem{Amount: 25000, Visible: true},
		Representation: CostItem{Amount: 75000, Visible: false},
		Other:          CostItem{Amount: 10000, Visible: true},
	}
}

func TestCostComponentsTotal(t *testing.T) {
	c := sampleComponents()
	// 450000 + 200000 + 500000 + 25000 + 10000; hidden fuel and
	// representation do not count.
	if got := c.Total(); got != 1185000 {
		t.Fatalf("Total() = %d, want 1185000", got)
	}

	c.DailyAllowance.Visible = false
	if got := c.Total(); got != 735000 {
		t.Fatalf("Total() without daily allowance = %d, want 735000", got)
	}

	if got := (CostComponents{}).Total(); got != 0 {
		t.Fatalf("empty Total() = %d, want 0", got)
	}
}

func TestReceiptNormalize(t *testing.T) {
	r := Receipt{Components: sampleComponents(), TotalAmount: 1}
	r.Normalize()
	if r.TotalAmount != 1185000 {
		t.Fatalf("Normalize total = %d, want 1185000", r.TotalAmount)
	}
	if r.Status != ReceiptDraft {
		t.Fatalf("Normalize status = %s, want %s", r.Status, ReceiptDraft)
	}

	r.Status = ReceiptPaid
	r.Normalize()
	if r.Status != ReceiptPaid {
		t.Fatalf("Normalize must not reset an existing status")
	}
}

func TestCostComponentsScan(t *testing.T) {
	var c CostComponents
	raw := `{"dailyAllowance":{"days":2,"amountPerDay":100000,"total":200000,"visible":true},"transport":{"amount":50000,"visible":true}}`
	if err := c.Scan([]byte(raw)); err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	if c.DailyAllowance.Total != 200000 || c.Transport.Amount != 50000 {
		t.Fatalf("Scan produced %+v", c)
	}

	if err := c.Scan(nil); err != nil {
		t.Fatalf("Scan(nil) failed: %v", err)
	}
	if c.Total() != 0 {
		t.Fatalf("Scan(nil) should reset components")
	}

	if err := c.Scan(42); err == nil {
		t.Fatal("Scan(int) should fail")
	}
}
