package models

import "time"

// Employee is a civil servant who can be assigned to official travel.
type Employee struct {
	ID        string    `db:"id" json:"id"`
	NIP       string    `db:"nip" json:"nip"`
	Name      string    `db:"name" json:"name"`
	Position  string    `db:"position" json:"position"`
	Rank      string    `db:"rank" json:"rank"`
	Grade     string    `db:"grade" json:"grade"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}

// Signatory marks an employee as authorized to sign documents under a
// specific role label (e.g. "KPA"). One employee may hold several labels.
type Signatory struct {
	ID         string    `db:"id" json:"id"`
	EmployeeID string    `db:"employee_id" json:"employeeId"`
	Role       string    `db:"role" json:"role"`
	IsActive   bool      `db:"is_active" json:"isActive"`
	CreatedAt  time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt  time.Time `db:"updated_at" json:"updatedAt"`
}
