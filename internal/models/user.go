package models

import (
	"strings"
	"time"
)

// Role identifies what a logged-in user is allowed to do.
type Role string

const (
	RoleAdmin       Role = "Admin"
	RoleOperator    Role = "Operator"
	RoleVerificator Role = "Verificator"
)

// User represents an application account. PasswordHash is empty for
// lightweight accounts created on first login.
type User struct {
	ID           string    `db:"id" json:"id"`
	Username     string    `db:"username" json:"username"`
	Name         string    `db:"name" json:"name"`
	Role         Role      `db:"role" json:"role"`
	PasswordHash string    `db:"password_hash" json:"-"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt    time.Time `db:"updated_at" json:"updatedAt"`
}

// RoleFromUsername derives a role from keywords in the username:
// "operator" yields Operator, "verif" yields Verificator, anything else Admin.
func RoleFromUsername(username string) Role {
	u := strings.ToLower(username)
	switch {
	case strings.Contains(u, "operator"):
		return RoleOperator
	case strings.Contains(u, "verif"):
		return RoleVerificator
	default:
		return RoleAdmin
	}
}

// ValidRole reports whether s is a known role name.
func ValidRole(s string) bool {
	switch Role(s) {
	case RoleAdmin, RoleOperator, RoleVerificator:
		return true
	}
	return false
}
