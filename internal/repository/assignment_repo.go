package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/siperdin/siperdin_api/internal/models"
	"github.com/siperdin/siperdin_api/internal/utils"
)

// AssignmentRepository handles data access for assignment letters.
type AssignmentRepository struct {
	db *sqlx.DB
}

// NewAssignmentRepository creates a new AssignmentRepository.
func NewAssignmentRepository(db *sqlx.DB) *AssignmentRepository {
	return &AssignmentRepository{db: db}
}

const assignmentColumns = `
	id, number, date, basis, employee_ids, subject, destination_id,
	destination_address, start_date, end_date, duration, signatory_id,
	status, signature_type, upper_title, intermediate_title, version,
	created_at, updated_at
`

// GetAll returns letters newest-first, optionally filtered by status.
func (r *AssignmentRepository) GetAll(ctx context.Context, status string) ([]models.AssignmentLetter, error) {
	var letters []models.AssignmentLetter
	if status != "" {
		err := r.db.SelectContext(ctx, &letters, `
			SELECT `+assignmentColumns+`
			FROM assignment_letters
			WHERE status = $1
			ORDER BY date DESC, created_at DESC
		`, status)
		return letters, err
	}
	err := r.db.SelectContext(ctx, &letters, `
		SELECT `+assignmentColumns+`
		FROM assignment_letters
		ORDER BY date DESC, created_at DESC
	`)
	return letters, err
}

func (r *AssignmentRepository) GetByID(ctx context.Context, id string) (*models.AssignmentLetter, error) {
	var letter models.AssignmentLetter
	err := r.db.GetContext(ctx, &letter, `
		SELECT `+assignmentColumns+`
		FROM assignment_letters
		WHERE id = $1
	`, id)
	if err != nil {
		return nil, err
	}
	return &letter, nil
}

func (r *AssignmentRepository) Create(ctx context.Context, a *models.AssignmentLetter) error {
	a.Version = 1
	return r.db.QueryRowContext(ctx, `
		INSERT INTO assignment_letters (
			id, number, date, basis, employee_ids, subject, destination_id,
			destination_address, start_date, end_date, duration, signatory_id,
			status, signature_type, upper_title, intermediate_title, version
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		RETURNING created_at, updated_at
	`, a.ID, a.Number, a.Date, a.Basis, a.EmployeeIDs, a.Subject, a.DestinationID,
		a.DestinationAddress, a.StartDate, a.EndDate, a.Duration, a.SignatoryID,
		a.Status, a.SignatureType, a.UpperTitle, a.IntermediateTitle, a.Version).
		Scan(&a.CreatedAt, &a.UpdatedAt)
}

// Update rewrites the letter's editable fields with an optimistic version
// check. A stale version fails with VERSION_CONFLICT instead of silently
// overwriting a concurrent edit.
func (r *AssignmentRepository) Update(ctx context.Context, a *models.AssignmentLetter) error {
	err := r.db.QueryRowContext(ctx, `
		UPDATE assignment_letters
		SET number = $3, date = $4, basis = $5, employee_ids = $6, subject = $7,
		    destination_id = $8, destination_address = $9, start_date = $10,
		    end_date = $11, duration = $12, signatory_id = $13,
		    signature_type = $14, upper_title = $15, intermediate_title = $16,
		    version = version + 1, updated_at = now()
		WHERE id = $1 AND version = $2
		RETURNING version, updated_at
	`, a.ID, a.Version, a.Number, a.Date, a.Basis, a.EmployeeIDs, a.Subject,
		a.DestinationID, a.DestinationAddress, a.StartDate, a.EndDate, a.Duration,
		a.SignatoryID, a.SignatureType, a.UpperTitle, a.IntermediateTitle).
		Scan(&a.Version, &a.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return r.versionOrMissing(ctx, a.ID)
	}
	return err
}

// UpdateStatus writes a new workflow status. Reachability and role checks
// happen in the workflow service before this is called.
func (r *AssignmentRepository) UpdateStatus(ctx context.Context, id string, status models.LetterStatus) (*models.AssignmentLetter, error) {
	var letter models.AssignmentLetter
	err := r.db.GetContext(ctx, &letter, `
		UPDATE assignment_letters
		SET status = $2, version = version + 1, updated_at = now()
		WHERE id = $1
		RETURNING `+assignmentColumns+`
	`, id, status)
	if err != nil {
		return nil, err
	}
	return &letter, nil
}

func (r *AssignmentRepository) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM assignment_letters WHERE id = $1`, id)
	return err
}

func (r *AssignmentRepository) versionOrMissing(ctx context.Context, id string) error {
	var exists bool
	if err := r.db.GetContext(ctx, &exists, `
		SELECT EXISTS (SELECT 1 FROM assignment_letters WHERE id = $1)
	`, id); err != nil {
		return err
	}
	if exists {
		return utils.ErrVersionConflict
	}
	return sql.ErrNoRows
}
