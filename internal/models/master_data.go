package models

import "time"

// City is a travel destination with its per-diem rate in rupiah.
type City struct {
	ID             string    `db:"id" json:"id"`
	Name           string    `db:"name" json:"name"`
	Province       string    `db:"province" json:"province"`
	DailyAllowance int64     `db:"daily_allowance" json:"dailyAllowance"`
	CreatedAt      time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt      time.Time `db:"updated_at" json:"updatedAt"`
}

// TransportMode is a lookup entry (e.g. "Kendaraan Dinas", "Pesawat").
type TransportMode struct {
	ID        string    `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}

// FundingSource is a budget line with a yearly ceiling travel costs are
// charged against.
type FundingSource struct {
	ID         string    `db:"id" json:"id"`
	Name       string    `db:"name" json:"name"`
	Code       string    `db:"code" json:"code"`
	BudgetYear int       `db:"budget_year" json:"budgetYear"`
	Amount     int64     `db:"amount" json:"amount"`
	CreatedAt  time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt  time.Time `db:"updated_at" json:"updatedAt"`
}

// AgencySettings is the singleton organization identity used on every
// generated letterhead.
type AgencySettings struct {
	ID          int       `db:"id" json:"-"`
	Name        string    `db:"name" json:"name"`
	Department  string    `db:"department" json:"department"`
	Address     string    `db:"address" json:"address"`
	ContactInfo string    `db:"contact_info" json:"contactInfo"`
	LogoURL     string    `db:"logo_url" json:"logoUrl,omitempty"`
	KopSuratURL string    `db:"kop_surat_url" json:"kopSuratUrl,omitempty"`
	UpdatedAt   time.Time `db:"updated_at" json:"updatedAt"`
}
