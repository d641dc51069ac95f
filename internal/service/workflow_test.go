package service

import (
	"testing"

	"github.com/siperdin/siperdin_api/internal/models"
)

func TestCanTransition(t *testing.T) {
	allowed := map[[2]models.LetterStatus]bool{
		{models.LetterPending, models.LetterVerified}:  true,
		{models.LetterVerified, models.LetterApproved}: true,
		{models.LetterVerified, models.LetterRejected}: true,
		{models.LetterVerified, models.LetterPending}:  true,
		{models.LetterRejected, models.LetterPending}:  true,
		{models.LetterApproved, models.LetterPending}:  true,
	}

	statuses := []models.LetterStatus{
		models.LetterPending, models.LetterVerified,
		models.LetterApproved, models.LetterRejected,
	}
	for _, from := range statuses {
		for _, to := range statuses {
			want := allowed[[2]models.LetterStatus{from, to}]
			if got := CanTransition(from, to); got != want {
				t.Errorf("CanTransition(%s, %s) = %v, want %v", from, to, got, want)
			}
		}
	}
}

func TestCanChangeStatus(t *testing.T) {
	type change struct {
		role     models.Role
		from, to models.LetterStatus
	}
	allowed := map[change]bool{
		// forward steps, Admin and Verificator alike
		{models.RoleAdmin, models.LetterPending, models.LetterVerified}:        true,
		{models.RoleAdmin, models.LetterVerified, models.LetterApproved}:       true,
		{models.RoleAdmin, models.LetterVerified, models.LetterRejected}:       true,
		{models.RoleVerificator, models.LetterPending, models.LetterVerified}:  true,
		{models.RoleVerificator, models.LetterVerified, models.LetterApproved}: true,
		{models.RoleVerificator, models.LetterVerified, models.LetterRejected}: true,
		// reverts to Pending
		{models.RoleAdmin, models.LetterVerified, models.LetterPending}:       true,
		{models.RoleAdmin, models.LetterRejected, models.LetterPending}:       true,
		{models.RoleAdmin, models.LetterApproved, models.LetterPending}:       true,
		{models.RoleVerificator, models.LetterVerified, models.LetterPending}: true,
		{models.RoleVerificator, models.LetterRejected, models.LetterPending}: true,
	}

	roles := []models.Role{models.RoleAdmin, models.RoleOperator, models.RoleVerificator}
	statuses := []models.LetterStatus{
		models.LetterPending, models.LetterVerified,
		models.LetterApproved, models.LetterRejected,
	}
	for _, role := range roles {
		for _, from := range statuses {
			for _, to := range statuses {
				want := allowed[change{role, from, to}]
				if got := CanChangeStatus(role, from, to); got != want {
					t.Errorf("CanChangeStatus(%s, %s, %s) = %v, want %v", role, from, to, got, want)
				}
			}
		}
	}
}

func TestCanRevert(t *testing.T) {
	type cell struct {
		role   models.Role
		status models.LetterStatus
	}
	allowed := map[cell]bool{
		{models.RoleAdmin, models.LetterVerified}:       true,
		{models.RoleAdmin, models.LetterApproved}:       true,
		{models.RoleAdmin, models.LetterRejected}:       true,
		{models.RoleVerificator, models.LetterVerified}: true,
		{models.RoleVerificator, models.LetterRejected}: true,
	}

	roles := []models.Role{models.RoleAdmin, models.RoleOperator, models.RoleVerificator}
	statuses := []models.LetterStatus{
		models.LetterPending, models.LetterVerified,
		models.LetterApproved, models.LetterRejected,
	}
	for _, role := range roles {
		for _, status := range statuses {
			want := allowed[cell{role, status}]
			if got := CanRevert(role, status); got != want {
				t.Errorf("CanRevert(%s, %s) = %v, want %v", role, status, got, want)
			}
		}
	}
}

func TestCanPrint(t *testing.T) {
	statuses := []models.LetterStatus{
		models.LetterPending, models.LetterVerified,
		models.LetterApproved, models.LetterRejected,
	}
	for _, status := range statuses {
		if !CanPrint(models.RoleAdmin, status) {
			t.Errorf("Admin should print %s letters", status)
		}
		wantOperator := status == models.LetterApproved
		if got := CanPrint(models.RoleOperator, status); got != wantOperator {
			t.Errorf("CanPrint(Operator, %s) = %v, want %v", status, got, wantOperator)
		}
		if CanPrint(models.RoleVerificator, status) {
			t.Errorf("Verificator should not print %s letters", status)
		}
	}
}

func TestCanEdit(t *testing.T) {
	statuses := []models.LetterStatus{
		models.LetterPending, models.LetterVerified,
		models.LetterApproved, models.LetterRejected,
	}
	for _, status := range statuses {
		if !CanEdit(models.RoleAdmin, status) {
			t.Errorf("Admin should edit %s letters", status)
		}
		wantOperator := status == models.LetterPending || status == models.LetterRejected
		if got := CanEdit(models.RoleOperator, status); got != wantOperator {
			t.Errorf("CanEdit(Operator, %s) = %v, want %v", status, got, wantOperator)
		}
		if CanEdit(models.RoleVerificator, status) {
			t.Errorf("Verificator should not edit %s letters", status)
		}
	}
}

func TestCanCreateAndPay(t *testing.T) {
	if !CanCreate(models.RoleAdmin) || !CanCreate(models.RoleOperator) {
		t.Fatal("Admin and Operator should create documents")
	}
	if CanCreate(models.RoleVerificator) {
		t.Fatal("Verificator should not create documents")
	}
	if !CanPay(models.RoleAdmin) {
		t.Fatal("Admin should mark receipts paid")
	}
	if CanPay(models.RoleOperator) || CanPay(models.RoleVerificator) {
		t.Fatal("only Admin should mark receipts paid")
	}
}
