package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/siperdin/siperdin_api/internal/models"
)

// ReportRepository runs the aggregation queries behind the dashboard and
// recap views.
type ReportRepository struct {
	db *sqlx.DB
}

// NewReportRepository creates a new ReportRepository.
func NewReportRepository(db *sqlx.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

// TotalBudget sums every funding-source ceiling.
func (r *ReportRepository) TotalBudget(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.GetContext(ctx, &total, `
		SELECT COALESCE(SUM(amount), 0) FROM funding_sources
	`)
	return total, err
}

// UsedBudget sums realized spend: totals of Paid receipts only.
func (r *ReportRepository) UsedBudget(ctx context.Context) (int64, error) {
	var used int64
	err := r.db.GetContext(ctx, &used, `
		SELECT COALESCE(SUM(total_amount), 0) FROM receipts WHERE status = $1
	`, models.ReceiptPaid)
	return used, err
}

// MonthTotal is one month's realized spend.
type MonthTotal struct {
	Month int   `db:"month"`
	Total int64 `db:"total"`
}

// MonthlyPaidTotals returns per-month Paid totals for a calendar year.
// Months with no receipts are absent; the service zero-fills all twelve.
func (r *ReportRepository) MonthlyPaidTotals(ctx context.Context, year int) ([]MonthTotal, error) {
	var totals []MonthTotal
	err := r.db.SelectContext(ctx, &totals, `
		SELECT EXTRACT(MONTH FROM date)::int AS month, SUM(total_amount) AS total
		FROM receipts
		WHERE status = $1 AND EXTRACT(YEAR FROM date)::int = $2
		GROUP BY 1
		ORDER BY 1
	`, models.ReceiptPaid, year)
	return totals, err
}

// StatusCount pairs a status value with how many rows carry it.
type StatusCount struct {
	Status string `db:"status"`
	Count  int    `db:"count"`
}

// LetterStatusCounts counts assignment letters per workflow status.
func (r *ReportRepository) LetterStatusCounts(ctx context.Context) ([]StatusCount, error) {
	var counts []StatusCount
	err := r.db.SelectContext(ctx, &counts, `
		SELECT status, COUNT(*) AS count FROM assignment_letters GROUP BY status
	`)
	return counts, err
}

// ReceiptStatusCounts counts receipts per payment status.
func (r *ReportRepository) ReceiptStatusCounts(ctx context.Context) ([]StatusCount, error) {
	var counts []StatusCount
	err := r.db.SelectContext(ctx, &counts, `
		SELECT status, COUNT(*) AS count FROM receipts GROUP BY status
	`)
	return counts, err
}

// ReadyAssignmentCount counts approved letters still waiting for an SPPD.
func (r *ReportRepository) ReadyAssignmentCount(ctx context.Context) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count, `
		SELECT COUNT(*)
		FROM assignment_letters a
		WHERE a.status = $1
		  AND NOT EXISTS (SELECT 1 FROM sppds s WHERE s.assignment_id = a.id)
	`, models.LetterApproved)
	return count, err
}

// RecapRow is one line of the filtered recap table, joined across the
// receipt -> SPPD -> assignment letter -> master data chain.
type RecapRow struct {
	ReceiptID     string `db:"receipt_id" json:"receiptId"`
	Date          string `db:"date" json:"date"`
	LetterNumber  string `db:"letter_number" json:"letterNumber"`
	Subject       string `db:"subject" json:"subject"`
	EmployeeNames string `db:"employee_names" json:"employeeNames"`
	Destination   string `db:"destination" json:"destination"`
	FundingCode   string `db:"funding_code" json:"fundingCode"`
	TotalAmount   int64  `db:"total_amount" json:"totalAmount"`
	Status        string `db:"status" json:"status"`
}

// Recap returns receipts in an exact year-month (format "2006-01"),
// optionally restricted to one funding source resolved through the SPPD.
// Broken references surface as empty strings, rendered as placeholders.
func (r *ReportRepository) Recap(ctx context.Context, yearMonth, fundingID string) ([]RecapRow, error) {
	query := `
		SELECT
			rc.id AS receipt_id,
			to_char(rc.date, 'YYYY-MM-DD') AS date,
			COALESCE(a.number, '') AS letter_number,
			COALESCE(a.subject, '') AS subject,
			COALESCE((
				SELECT string_agg(e.name, ', ' ORDER BY ord.n)
				FROM unnest(a.employee_ids) WITH ORDINALITY AS ord(emp_id, n)
				JOIN employees e ON e.id = ord.emp_id
			), '') AS employee_names,
			COALESCE(c.name, '') AS destination,
			COALESCE(f.code, '') AS funding_code,
			rc.total_amount,
			rc.status
		FROM receipts rc
		LEFT JOIN sppds s ON s.id = rc.sppd_id
		LEFT JOIN assignment_letters a ON a.id = s.assignment_id
		LEFT JOIN cities c ON c.id = a.destination_id
		LEFT JOIN funding_sources f ON f.id = s.funding_id
		WHERE to_char(rc.date, 'YYYY-MM') = $1
	`
	args := []interface{}{yearMonth}
	if fundingID != "" {
		query += ` AND s.funding_id = $2`
		args = append(args, fundingID)
	}
	query += ` ORDER BY rc.date, rc.created_at`

	var rows []RecapRow
	err := r.db.SelectContext(ctx, &rows, query, args...)
	return rows, err
}
