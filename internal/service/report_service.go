package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/siperdin/siperdin_api/internal/cache"
	"github.com/siperdin/siperdin_api/internal/models"
	"github.com/siperdin/siperdin_api/internal/repository"
	"github.com/siperdin/siperdin_api/internal/utils"
)

const collectionDashboardStats = "dashboardStats"

// monthLabels are the fixed calendar-month labels of the trend chart.
var monthLabels = [12]string{
	"Januari", "Februari", "Maret", "April", "Mei", "Juni",
	"Juli", "Agustus", "September", "Oktober", "November", "Desember",
}

// BudgetSummary is the realized-spend position against all funding ceilings.
type BudgetSummary struct {
	Total     int64 `json:"total"`
	Used      int64 `json:"used"`
	Remaining int64 `json:"remaining"`
}

// CategoryBreakdown buckets visible cost components of Paid receipts into
// the four reporting categories.
type CategoryBreakdown struct {
	Transport      int64 `json:"transport"`
	Accommodation  int64 `json:"accommodation"`
	DailyAllowance int64 `json:"dailyAllowance"`
	Other          int64 `json:"other"`
}

// MonthAmount is one entry of the 12-month trend.
type MonthAmount struct {
	Month string `json:"month"`
	Total int64  `json:"total"`
}

// DashboardStats is the aggregate view behind the dashboard.
type DashboardStats struct {
	LetterCounts  map[string]int    `json:"letterCounts"`
	ReceiptCounts map[string]int    `json:"receiptCounts"`
	ReadyForSPPD  int               `json:"readyForSppd"`
	Budget        BudgetSummary     `json:"budget"`
	Categories    CategoryBreakdown `json:"categories"`
	MonthlyTrend  []MonthAmount     `json:"monthlyTrend"`
	Year          int               `json:"year"`
	GeneratedAt   time.Time         `json:"generatedAt"`
}

// ReportService derives dashboard statistics and the filtered recap table.
type ReportService struct {
	reportRepo  *repository.ReportRepository
	receiptRepo *repository.ReceiptRepository
	collections *cache.CollectionCache
}

// NewReportService constructs a ReportService.
func NewReportService(
	reportRepo *repository.ReportRepository,
	receiptRepo *repository.ReceiptRepository,
	collections *cache.CollectionCache,
) *ReportService {
	return &ReportService{reportRepo: reportRepo, receiptRepo: receiptRepo, collections: collections}
}

// Dashboard computes the current stats, caching the result. When the
// database is unreachable the last cached snapshot is served.
func (s *ReportService) Dashboard(ctx context.Context, year int) (*DashboardStats, error) {
	stats, err := s.compute(ctx, year)
	if err != nil {
		log.Warn().Err(err).Msg("Dashboard computation failed, trying cache snapshot")
		var cached DashboardStats
		ok, cacheErr := s.collections.Get(ctx, collectionDashboardStats, &cached)
		if cacheErr != nil || !ok {
			return nil, err
		}
		return &cached, nil
	}
	s.collections.Put(ctx, collectionDashboardStats, stats)
	return stats, nil
}

// Refresh recomputes and caches the dashboard snapshot. Used by the
// background worker.
func (s *ReportService) Refresh(ctx context.Context) error {
	stats, err := s.compute(ctx, time.Now().Year())
	if err != nil {
		return err
	}
	s.collections.Put(ctx, collectionDashboardStats, stats)
	return nil
}

func (s *ReportService) compute(ctx context.Context, year int) (*DashboardStats, error) {
	if year == 0 {
		year = time.Now().Year()
	}

	total, err := s.reportRepo.TotalBudget(ctx)
	if err != nil {
		return nil, err
	}
	used, err := s.reportRepo.UsedBudget(ctx)
	if err != nil {
		return nil, err
	}
	letterCounts, err := s.reportRepo.LetterStatusCounts(ctx)
	if err != nil {
		return nil, err
	}
	receiptCounts, err := s.reportRepo.ReceiptStatusCounts(ctx)
	if err != nil {
		return nil, err
	}
	ready, err := s.reportRepo.ReadyAssignmentCount(ctx)
	if err != nil {
		return nil, err
	}
	monthly, err := s.reportRepo.MonthlyPaidTotals(ctx, year)
	if err != nil {
		return nil, err
	}
	paid, err := s.receiptRepo.GetByStatus(ctx, models.ReceiptPaid)
	if err != nil {
		return nil, err
	}

	return &DashboardStats{
		LetterCounts:  statusCountMap(letterCounts),
		ReceiptCounts: statusCountMap(receiptCounts),
		ReadyForSPPD:  ready,
		Budget: BudgetSummary{
			Total:     total,
			Used:      used,
			Remaining: total - used,
		},
		Categories:   BreakdownByCategory(paid),
		MonthlyTrend: FillMonthlyTrend(monthly),
		Year:         year,
		GeneratedAt:  time.Now(),
	}, nil
}

// Recap returns the filtered recap table for an exact year-month
// (format "2006-01") and an optional funding source.
func (s *ReportService) Recap(ctx context.Context, yearMonth, fundingID string) ([]repository.RecapRow, error) {
	if _, err := time.Parse("2006-01", yearMonth); err != nil {
		return nil, fmt.Errorf("%w: month must be formatted YYYY-MM", utils.ErrValidation)
	}
	return s.reportRepo.Recap(ctx, yearMonth, fundingID)
}

// statusCountMap flattens status counts into a map for the JSON payload.
func statusCountMap(counts []repository.StatusCount) map[string]int {
	m := make(map[string]int, len(counts))
	for _, c := range counts {
		m[c.Status] = c.Count
	}
	return m
}

// BreakdownByCategory buckets the visible components of the given receipts:
// transport, fuel and toll together; accommodation alone; the daily
// allowance total alone; representation and other together. Callers pass
// Paid receipts only.
func BreakdownByCategory(receipts []models.Receipt) CategoryBreakdown {
	var b CategoryBreakdown
	for _, r := range receipts {
		c := r.Components
		for _, item := range []models.CostItem{c.Transport, c.Fuel, c.Toll} {
			if item.Visible {
				b.Transport += item.Amount
			}
		}
		if c.Accommodation.Visible {
			b.Accommodation += c.Accommodation.Amount
		}
		if c.DailyAllowance.Visible {
			b.DailyAllowance += c.DailyAllowance.Total
		}
		for _, item := range []models.CostItem{c.Representation, c.Other} {
			if item.Visible {
				b.Other += item.Amount
			}
		}
	}
	return b
}

// FillMonthlyTrend spreads sparse month totals over the fixed 12-entry
// calendar axis; months without data stay zero.
func FillMonthlyTrend(totals []repository.MonthTotal) []MonthAmount {
	trend := make([]MonthAmount, 12)
	for i := range trend {
		trend[i] = MonthAmount{Month: monthLabels[i]}
	}
	for _, t := range totals {
		if t.Month >= 1 && t.Month <= 12 {
			trend[t.Month-1].Total = t.Total
		}
	}
	return trend
}
