package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/siperdin/siperdin_api/internal/models"
)

// CityRepository handles data access for destination cities.
type CityRepository struct {
	db *sqlx.DB
}

func NewCityRepository(db *sqlx.DB) *CityRepository {
	return &CityRepository{db: db}
}

func (r *CityRepository) GetAll(ctx context.Context) ([]models.City, error) {
	var cities []models.City
	err := r.db.SelectContext(ctx, &cities, `
		SELECT id, name, province, daily_allowance, created_at, updated_at
		FROM cities
		ORDER BY name
	`)
	return cities, err
}

func (r *CityRepository) GetByID(ctx context.Context, id string) (*models.City, error) {
	var c models.City
	err := r.db.GetContext(ctx, &c, `
		SELECT id, name, province, daily_allowance, created_at, updated_at
		FROM cities
		WHERE id = $1
	`, id)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CityRepository) Create(ctx context.Context, c *models.City) error {
	return r.db.QueryRowContext(ctx, `
		INSERT INTO cities (id, name, province, daily_allowance)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at, updated_at
	`, c.ID, c.Name, c.Province, c.DailyAllowance).
		Scan(&c.CreatedAt, &c.UpdatedAt)
}

func (r *CityRepository) Update(ctx context.Context, c *models.City) error {
	return r.db.QueryRowContext(ctx, `
		UPDATE cities
		SET name = $2, province = $3, daily_allowance = $4, updated_at = now()
		WHERE id = $1
		RETURNING updated_at
	`, c.ID, c.Name, c.Province, c.DailyAllowance).
		Scan(&c.UpdatedAt)
}

func (r *CityRepository) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM cities WHERE id = $1`, id)
	return err
}

// TransportModeRepository handles data access for transport modes.
type TransportModeRepository struct {
	db *sqlx.DB
}

func NewTransportModeRepository(db *sqlx.DB) *TransportModeRepository {
	return &TransportModeRepository{db: db}
}

func (r *TransportModeRepository) GetAll(ctx context.Context) ([]models.TransportMode, error) {
	var modes []models.TransportMode
	err := r.db.SelectContext(ctx, &modes, `
		SELECT id, name, created_at, updated_at FROM transport_modes ORDER BY name
	`)
	return modes, err
}

func (r *TransportModeRepository) GetByID(ctx context.Context, id string) (*models.TransportMode, error) {
	var m models.TransportMode
	err := r.db.GetContext(ctx, &m, `
		SELECT id, name, created_at, updated_at FROM transport_modes WHERE id = $1
	`, id)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *TransportModeRepository) Create(ctx context.Context, m *models.TransportMode) error {
	return r.db.QueryRowContext(ctx, `
		INSERT INTO transport_modes (id, name)
		VALUES ($1, $2)
		RETURNING created_at, updated_at
	`, m.ID, m.Name).Scan(&m.CreatedAt, &m.UpdatedAt)
}

func (r *TransportModeRepository) Update(ctx context.Context, m *models.TransportMode) error {
	return r.db.QueryRowContext(ctx, `
		UPDATE transport_modes SET name = $2, updated_at = now()
		WHERE id = $1
		RETURNING updated_at
	`, m.ID, m.Name).Scan(&m.UpdatedAt)
}

func (r *TransportModeRepository) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM transport_modes WHERE id = $1`, id)
	return err
}

// FundingSourceRepository handles data access for funding sources.
type FundingSourceRepository struct {
	db *sqlx.DB
}

func NewFundingSourceRepository(db *sqlx.DB) *FundingSourceRepository {
	return &FundingSourceRepository{db: db}
}

func (r *FundingSourceRepository) GetAll(ctx context.Context) ([]models.FundingSource, error) {
	var sources []models.FundingSource
	err := r.db.SelectContext(ctx, &sources, `
		SELECT id, name, code, budget_year, amount, created_at, updated_at
		FROM funding_sources
		ORDER BY budget_year DESC, code
	`)
	return sources, err
}

func (r *FundingSourceRepository) GetByID(ctx context.Context, id string) (*models.FundingSource, error) {
	var f models.FundingSource
	err := r.db.GetContext(ctx, &f, `
		SELECT id, name, code, budget_year, amount, created_at, updated_at
		FROM funding_sources
		WHERE id = $1
	`, id)
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *FundingSourceRepository) Create(ctx context.Context, f *models.FundingSource) error {
	return r.db.QueryRowContext(ctx, `
		INSERT INTO funding_sources (id, name, code, budget_year, amount)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at, updated_at
	`, f.ID, f.Name, f.Code, f.BudgetYear, f.Amount).
		Scan(&f.CreatedAt, &f.UpdatedAt)
}

func (r *FundingSourceRepository) Update(ctx context.Context, f *models.FundingSource) error {
	return r.db.QueryRowContext(ctx, `
		UPDATE funding_sources
		SET name = $2, code = $3, budget_year = $4, amount = $5, updated_at = now()
		WHERE id = $1
		RETURNING updated_at
	`, f.ID, f.Name, f.Code, f.BudgetYear, f.Amount).
		Scan(&f.UpdatedAt)
}

func (r *FundingSourceRepository) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM funding_sources WHERE id = $1`, id)
	return err
}
