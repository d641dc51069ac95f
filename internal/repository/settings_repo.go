package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/siperdin/siperdin_api/internal/models"
)

// SettingsRepository handles the agency_settings singleton row.
type SettingsRepository struct {
	db *sqlx.DB
}

func NewSettingsRepository(db *sqlx.DB) *SettingsRepository {
	return &SettingsRepository{db: db}
}

func (r *SettingsRepository) Get(ctx context.Context) (*models.AgencySettings, error) {
	var s models.AgencySettings
	err := r.db.GetContext(ctx, &s, `
		SELECT id, name, department, address, contact_info, logo_url, kop_surat_url, updated_at
		FROM agency_settings
		WHERE id = 1
	`)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SettingsRepository) Save(ctx context.Context, s *models.AgencySettings) error {
	return r.db.QueryRowContext(ctx, `
		INSERT INTO agency_settings (id, name, department, address, contact_info, logo_url, kop_surat_url, updated_at)
		VALUES (1, $1, $2, $3, $4, $5, $6, now())
		ON CONFLICT (id) DO UPDATE
		SET name = $1, department = $2, address = $3, contact_info = $4,
		    logo_url = $5, kop_surat_url = $6, updated_at = now()
		RETURNING updated_at
	`, s.Name, s.Department, s.Address, s.ContactInfo, s.LogoURL, s.KopSuratURL).
		Scan(&s.UpdatedAt)
}
