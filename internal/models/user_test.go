package models

import "testing"

func TestRoleFromUsername(t *testing.T) {
	cases := []struct {
		username string
		want     Role
	}{
		{"operator1", RoleOperator},
		{"OPERATOR_KEUANGAN", RoleOperator},
		{"verifikator", RoleVerificator},
		{"budi.verif", RoleVerificator},
		{"admin", RoleAdmin},
		{"kepala.dinas", RoleAdmin},
		{"", RoleAdmin},
	}
	for _, tc := range cases {
		if got := RoleFromUsername(tc.username); got != tc.want {
			t.Errorf("RoleFromUsername(%q) = %s, want %s", tc.username, got, tc.want)
		}
	}
}
