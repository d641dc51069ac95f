package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/siperdin/siperdin_api/internal/models"
	"github.com/siperdin/siperdin_api/internal/utils"
)

// SPPDRepository handles data access for travel orders.
type SPPDRepository struct {
	db *sqlx.DB
}

// NewSPPDRepository creates a new SPPDRepository.
func NewSPPDRepository(db *sqlx.DB) *SPPDRepository {
	return &SPPDRepository{db: db}
}

const sppdColumns = `
	id, assignment_id, start_date, end_date, status, transport_id, funding_id,
	version, created_at, updated_at
`

func (r *SPPDRepository) GetAll(ctx context.Context) ([]models.SPPD, error) {
	var sppds []models.SPPD
	err := r.db.SelectContext(ctx, &sppds, `
		SELECT `+sppdColumns+` FROM sppds ORDER BY start_date DESC, created_at DESC
	`)
	return sppds, err
}

func (r *SPPDRepository) GetByID(ctx context.Context, id string) (*models.SPPD, error) {
	var s models.SPPD
	err := r.db.GetContext(ctx, &s, `
		SELECT `+sppdColumns+` FROM sppds WHERE id = $1
	`, id)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SPPDRepository) GetByAssignmentID(ctx context.Context, assignmentID string) (*models.SPPD, error) {
	var s models.SPPD
	err := r.db.GetContext(ctx, &s, `
		SELECT `+sppdColumns+` FROM sppds WHERE assignment_id = $1
	`, assignmentID)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// GetReadyAssignments returns approved assignment letters that have no SPPD
// yet, i.e. the "ready to process" list.
func (r *SPPDRepository) GetReadyAssignments(ctx context.Context) ([]models.AssignmentLetter, error) {
	var letters []models.AssignmentLetter
	err := r.db.SelectContext(ctx, &letters, `
		SELECT `+assignmentColumns+`
		FROM assignment_letters a
		WHERE a.status = $1
		  AND NOT EXISTS (SELECT 1 FROM sppds s WHERE s.assignment_id = a.id)
		ORDER BY a.date DESC, a.created_at DESC
	`, models.LetterApproved)
	return letters, err
}

// Create inserts a travel order. The unique constraint on assignment_id
// closes the duplicate-SPPD race: a second insert for the same letter fails
// with SPPD_EXISTS no matter how the callers interleave.
func (r *SPPDRepository) Create(ctx context.Context, s *models.SPPD) error {
	s.Version = 1
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO sppds (id, assignment_id, start_date, end_date, status, transport_id, funding_id, version)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at, updated_at
	`, s.ID, s.AssignmentID, s.StartDate, s.EndDate, s.Status, s.TransportID, s.FundingID, s.Version).
		Scan(&s.CreatedAt, &s.UpdatedAt)
	if isUniqueViolation(err) {
		return utils.ErrSPPDExists
	}
	return err
}

func (r *SPPDRepository) Update(ctx context.Context, s *models.SPPD) error {
	err := r.db.QueryRowContext(ctx, `
		UPDATE sppds
		SET start_date = $3, end_date = $4, status = $5, transport_id = $6,
		    funding_id = $7, version = version + 1, updated_at = now()
		WHERE id = $1 AND version = $2
		RETURNING version, updated_at
	`, s.ID, s.Version, s.StartDate, s.EndDate, s.Status, s.TransportID, s.FundingID).
		Scan(&s.Version, &s.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		var exists bool
		if err := r.db.GetContext(ctx, &exists, `SELECT EXISTS (SELECT 1 FROM sppds WHERE id = $1)`, s.ID); err != nil {
			return err
		}
		if exists {
			return utils.ErrVersionConflict
		}
		return sql.ErrNoRows
	}
	return err
}

func (r *SPPDRepository) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM sppds WHERE id = $1`, id)
	return err
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
