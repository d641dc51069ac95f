package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/siperdin/siperdin_api/internal/models"
	"github.com/siperdin/siperdin_api/internal/utils"
)

// ReceiptRepository handles data access for expense receipts.
type ReceiptRepository struct {
	db *sqlx.DB
}

// NewReceiptRepository creates a new ReceiptRepository.
func NewReceiptRepository(db *sqlx.DB) *ReceiptRepository {
	return &ReceiptRepository{db: db}
}

const receiptColumns = `
	id, sppd_id, date, components, total_amount, status, treasurer_id,
	pptk_id, kpa_id, attachments, version, created_at, updated_at
`

func (r *ReceiptRepository) GetAll(ctx context.Context) ([]models.Receipt, error) {
	var receipts []models.Receipt
	err := r.db.SelectContext(ctx, &receipts, `
		SELECT `+receiptColumns+` FROM receipts ORDER BY date DESC, created_at DESC
	`)
	return receipts, err
}

// GetByStatus returns receipts in a given status, newest-first.
func (r *ReceiptRepository) GetByStatus(ctx context.Context, status models.ReceiptStatus) ([]models.Receipt, error) {
	var receipts []models.Receipt
	err := r.db.SelectContext(ctx, &receipts, `
		SELECT `+receiptColumns+` FROM receipts WHERE status = $1 ORDER BY date DESC, created_at DESC
	`, status)
	return receipts, err
}

func (r *ReceiptRepository) GetByID(ctx context.Context, id string) (*models.Receipt, error) {
	var rec models.Receipt
	err := r.db.GetContext(ctx, &rec, `
		SELECT `+receiptColumns+` FROM receipts WHERE id = $1
	`, id)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *ReceiptRepository) Create(ctx context.Context, rec *models.Receipt) error {
	rec.Version = 1
	return r.db.QueryRowContext(ctx, `
		INSERT INTO receipts (id, sppd_id, date, components, total_amount, status,
			treasurer_id, pptk_id, kpa_id, attachments, version)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING created_at, updated_at
	`, rec.ID, rec.SPPDID, rec.Date, rec.Components, rec.TotalAmount, rec.Status,
		rec.TreasurerID, rec.PPTKID, rec.KPAID, rec.Attachments, rec.Version).
		Scan(&rec.CreatedAt, &rec.UpdatedAt)
}

func (r *ReceiptRepository) Update(ctx context.Context, rec *models.Receipt) error {
	err := r.db.QueryRowContext(ctx, `
		UPDATE receipts
		SET sppd_id = $3, date = $4, components = $5, total_amount = $6,
		    treasurer_id = $7, pptk_id = $8, kpa_id = $9, attachments = $10,
		    version = version + 1, updated_at = now()
		WHERE id = $1 AND version = $2
		RETURNING version, updated_at
	`, rec.ID, rec.Version, rec.SPPDID, rec.Date, rec.Components, rec.TotalAmount,
		rec.TreasurerID, rec.PPTKID, rec.KPAID, rec.Attachments).
		Scan(&rec.Version, &rec.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		var exists bool
		if err := r.db.GetContext(ctx, &exists, `SELECT EXISTS (SELECT 1 FROM receipts WHERE id = $1)`, rec.ID); err != nil {
			return err
		}
		if exists {
			return utils.ErrVersionConflict
		}
		return sql.ErrNoRows
	}
	return err
}

// MarkPaid flips a Draft or Verified receipt to Paid. Paid is terminal.
func (r *ReceiptRepository) MarkPaid(ctx context.Context, id string) (*models.Receipt, error) {
	var rec models.Receipt
	err := r.db.GetContext(ctx, &rec, `
		UPDATE receipts
		SET status = $2, version = version + 1, updated_at = now()
		WHERE id = $1 AND status <> $2
		RETURNING `+receiptColumns+`
	`, id, models.ReceiptPaid)
	if errors.Is(err, sql.ErrNoRows) {
		var exists bool
		if err := r.db.GetContext(ctx, &exists, `SELECT EXISTS (SELECT 1 FROM receipts WHERE id = $1)`, id); err != nil {
			return nil, err
		}
		if exists {
			return nil, utils.ErrReceiptAlreadyPaid
		}
		return nil, sql.ErrNoRows
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *ReceiptRepository) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM receipts WHERE id = $1`, id)
	return err
}
