package service

import (
	"testing"

	"github.com/siperdin/siperdin_api/internal/models"
	"github.com/siperdin/siperdin_api/internal/repository"
)

func TestBreakdownByCategory(t *testing.T) {
	receipts := []models.Receipt{
		{Components: models.CostComponents{
			DailyAllowance: models.DailyAllowanceItem{Total: 300000, Visible: true},
			Transport:      models.CostItem{Amount: 100000, Visible: true},
			Fuel:           models.CostItem{Amount: 50000, Visible: true},
			Toll:           models.CostItem{Amount: 20000, Visible: false},
			Accommodation:  models.CostItem{Amount: 400000, Visible: true},
			Representation: models.CostItem{Amount: 10000, Visible: true},
		}},
		{Components: models.CostComponents{
			Transport: models.CostItem{Amount: 80000, Visible: true},
			Other:     models.CostItem{Amount: 5000, Visible: true},
		}},
	}

	b := BreakdownByCategory(receipts)
	if b.Transport != 230000 {
		t.Errorf("Transport = %d, want 230000", b.Transport)
	}
	if b.Accommodation != 400000 {
		t.Errorf("Accommodation = %d, want 400000", b.Accommodation)
	}
	if b.DailyAllowance != 300000 {
		t.Errorf("DailyAllowance = %d, want 300000", b.DailyAllowance)
	}
	if b.Other != 15000 {
		t.Errorf("Other = %d, want 15000", b.Other)
	}
}

func TestBreakdownByCategoryEmpty(t *testing.T) {
	b := BreakdownByCategory(nil)
	if b.Transport != 0 || b.Accommodation != 0 || b.DailyAllowance != 0 || b.Other != 0 {
		t.Fatalf("empty breakdown = %+v, want zeros", b)
	}
}

func TestFillMonthlyTrend(t *testing.T) {
	trend := FillMonthlyTrend([]repository.MonthTotal{
		{Month: 1, Total: 100},
		{Month: 8, Total: 250},
		{Month: 13, Total: 999},
		{Month: 0, Total: 999},
	})

	if len(trend) != 12 {
		t.Fatalf("trend has %d entries, want 12", len(trend))
	}
	if trend[0].Month != "Januari" || trend[0].Total != 100 {
		t.Errorf("January entry = %+v", trend[0])
	}
	if trend[7].Month != "Agustus" || trend[7].Total != 250 {
		t.Errorf("August entry = %+v", trend[7])
	}
	for _, i := range []int{1, 2, 3, 4, 5, 6, 8, 9, 10, 11} {
		if trend[i].Total != 0 {
			t.Errorf("month %d total = %d, want 0", i+1, trend[i].Total)
		}
	}
	if trend[11].Month != "Desember" {
		t.Errorf("last month label = %s, want Desember", trend[11].Month)
	}
}

func TestStatusCountMap(t *testing.T) {
	m := statusCountMap([]repository.StatusCount{
		{Status: "Pending", Count: 3},
		{Status: "Approved", Count: 1},
	})
	if m["Pending"] != 3 || m["Approved"] != 1 {
		t.Fatalf("statusCountMap = %v", m)
	}
	if _, ok := m["Rejected"]; ok {
		t.Fatal("absent statuses should stay absent")
	}
}
