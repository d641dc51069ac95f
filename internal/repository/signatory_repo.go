package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/siperdin/siperdin_api/internal/models"
)

// SignatoryRepository handles data access for signatories.
type SignatoryRepository struct {
	db *sqlx.DB
}

// NewSignatoryRepository creates a new SignatoryRepository.
func NewSignatoryRepository(db *sqlx.DB) *SignatoryRepository {
	return &SignatoryRepository{db: db}
}

func (r *SignatoryRepository) GetAll(ctx context.Context) ([]models.Signatory, error) {
	var signatories []models.Signatory
	err := r.db.SelectContext(ctx, &signatories, `
		SELECT id, employee_id, role, is_active, created_at, updated_at
		FROM signatories
		ORDER BY role
	`)
	return signatories, err
}

func (r *SignatoryRepository) GetByID(ctx context.Context, id string) (*models.Signatory, error) {
	var s models.Signatory
	err := r.db.GetContext(ctx, &s, `
		SELECT id, employee_id, role, is_active, created_at, updated_at
		FROM signatories
		WHERE id = $1
	`, id)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SignatoryRepository) Create(ctx context.Context, s *models.Signatory) error {
	return r.db.QueryRowContext(ctx, `
		INSERT INTO signatories (id, employee_id, role, is_active)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at, updated_at
	`, s.ID, s.EmployeeID, s.Role, s.IsActive).
		Scan(&s.CreatedAt, &s.UpdatedAt)
}

func (r *SignatoryRepository) Update(ctx context.Context, s *models.Signatory) error {
	return r.db.QueryRowContext(ctx, `
		UPDATE signatories
		SET employee_id = $2, role = $3, is_active = $4, updated_at = now()
		WHERE id = $1
		RETURNING updated_at
	`, s.ID, s.EmployeeID, s.Role, s.IsActive).
		Scan(&s.UpdatedAt)
}

func (r *SignatoryRepository) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM signatories WHERE id = $1`, id)
	return err
}
