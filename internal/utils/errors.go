package utils

import "errors"

// Common application errors used across services.
var (
	ErrNotFound              = errors.New("NOT_FOUND")
	ErrValidation            = errors.New("VALIDATION_ERROR")
	ErrInvalidTransition     = errors.New("INVALID_TRANSITION")
	ErrForbidden             = errors.New("FORBIDDEN")
	ErrUnauthorized          = errors.New("UNAUTHORIZED")
	ErrVersionConflict       = errors.New("VERSION_CONFLICT")
	ErrSPPDExists            = errors.New("SPPD_EXISTS")
	ErrAssignmentNotApproved = errors.New("ASSIGNMENT_NOT_APPROVED")
	ErrNoEmployees           = errors.New("NO_EMPLOYEES")
	ErrReceiptAlreadyPaid    = errors.New("RECEIPT_ALREADY_PAID")
	ErrInvalidImportFile     = errors.New("INVALID_IMPORT_FILE")
)
