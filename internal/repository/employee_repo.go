package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/siperdin/siperdin_api/internal/models"
)

// EmployeeRepository handles data access for employees.
type EmployeeRepository struct {
	db *sqlx.DB
}

// NewEmployeeRepository creates a new EmployeeRepository.
func NewEmployeeRepository(db *sqlx.DB) *EmployeeRepository {
	return &EmployeeRepository{db: db}
}

func (r *EmployeeRepository) GetAll(ctx context.Context) ([]models.Employee, error) {
	var employees []models.Employee
	err := r.db.SelectContext(ctx, &employees, `
		SELECT id, nip, name, position, rank, grade, created_at, updated_at
		FROM employees
		ORDER BY name
	`)
	return employees, err
}

func (r *EmployeeRepository) GetByID(ctx context.Context, id string) (*models.Employee, error) {
	var e models.Employee
	err := r.db.GetContext(ctx, &e, `
		SELECT id, nip, name, position, rank, grade, created_at, updated_at
		FROM employees
		WHERE id = $1
	`, id)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// GetByIDs returns the employees matching ids, preserving the input order.
// Missing ids are simply absent from the result; callers render placeholders.
func (r *EmployeeRepository) GetByIDs(ctx context.Context, ids []string) ([]models.Employee, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	query, args, err := sqlx.In(`
		SELECT id, nip, name, position, rank, grade, created_at, updated_at
		FROM employees
		WHERE id IN (?)
	`, ids)
	if err != nil {
		return nil, err
	}
	query = r.db.Rebind(query)

	var employees []models.Employee
	if err := r.db.SelectContext(ctx, &employees, query, args...); err != nil {
		return nil, err
	}

	byID := make(map[string]models.Employee, len(employees))
	for _, e := range employees {
		byID[e.ID] = e
	}
	ordered := make([]models.Employee, 0, len(employees))
	for _, id := range ids {
		if e, ok := byID[id]; ok {
			ordered = append(ordered, e)
		}
	}
	return ordered, nil
}

func (r *EmployeeRepository) Create(ctx context.Context, e *models.Employee) error {
	return r.db.QueryRowContext(ctx, `
		INSERT INTO employees (id, nip, name, position, rank, grade)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at, updated_at
	`, e.ID, e.NIP, e.Name, e.Position, e.Rank, e.Grade).
		Scan(&e.CreatedAt, &e.UpdatedAt)
}

func (r *EmployeeRepository) Update(ctx context.Context, e *models.Employee) error {
	return r.db.QueryRowContext(ctx, `
		UPDATE employees
		SET nip = $2, name = $3, position = $4, rank = $5, grade = $6, updated_at = now()
		WHERE id = $1
		RETURNING updated_at
	`, e.ID, e.NIP, e.Name, e.Position, e.Rank, e.Grade).
		Scan(&e.UpdatedAt)
}

func (r *EmployeeRepository) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM employees WHERE id = $1`, id)
	return err
}

// CreateBatch inserts imported employees in a single transaction.
func (r *EmployeeRepository) CreateBatch(ctx context.Context, employees []models.Employee) error {
	if len(employees) == 0 {
		return nil
	}
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for i := range employees {
		e := &employees[i]
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO employees (id, nip, name, position, rank, grade)
			VALUES ($1, $2, $3, $4, $5, $6)
		`, e.ID, e.NIP, e.Name, e.Position, e.Rank, e.Grade); err != nil {
			return err
		}
	}
	return tx.Commit()
}
