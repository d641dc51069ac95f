package service

import "github.com/siperdin/siperdin_api/internal/models"

// letterTransitions is the legal status graph for assignment letters.
// Reverting to Pending is how Rejected and Approved letters re-enter the flow.
var letterTransitions = map[models.LetterStatus][]models.LetterStatus{
	models.LetterPending:  {models.LetterVerified},
	models.LetterVerified: {models.LetterApproved, models.LetterRejected, models.LetterPending},
	models.LetterRejected: {models.LetterPending},
	models.LetterApproved: {models.LetterPending},
}

// CanTransition reports whether the status graph allows from -> to.
func CanTransition(from, to models.LetterStatus) bool {
	for _, t := range letterTransitions[from] {
		if t == to {
			return true
		}
	}
	return false
}

// CanChangeStatus reports whether role may move a letter from its current
// status to target. Reverts to Pending have their own rules; forward changes
// (Verify/Approve/Reject) are reserved for Admin and Verificator.
func CanChangeStatus(role models.Role, current, target models.LetterStatus) bool {
	if !CanTransition(current, target) {
		return false
	}
	if target == models.LetterPending {
		return CanRevert(role, current)
	}
	switch role {
	case models.RoleAdmin, models.RoleVerificator:
		return current == models.LetterPending || current == models.LetterRejected || current == models.LetterVerified
	}
	return false
}

// CanRevert reports whether role may send a letter back to Pending.
func CanRevert(role models.Role, current models.LetterStatus) bool {
	switch role {
	case models.RoleAdmin:
		return current != models.LetterPending
	case models.RoleVerificator:
		return current == models.LetterRejected || current == models.LetterVerified
	}
	return false
}

// CanPrint reports whether role may print or export a letter's documents.
func CanPrint(role models.Role, status models.LetterStatus) bool {
	switch role {
	case models.RoleAdmin:
		return true
	case models.RoleOperator:
		return status == models.LetterApproved
	}
	return false
}

// CanEdit reports whether role may edit or delete a letter.
func CanEdit(role models.Role, status models.LetterStatus) bool {
	switch role {
	case models.RoleAdmin:
		return true
	case models.RoleOperator:
		return status == models.LetterPending || status == models.LetterRejected
	}
	return false
}

// CanCreate reports whether role may create new documents.
func CanCreate(role models.Role) bool {
	return role == models.RoleAdmin || role == models.RoleOperator
}

// CanPay reports whether role may mark a receipt as paid.
func CanPay(role models.Role) bool {
	return role == models.RoleAdmin
}
