package handler

import (
	"database/sql"
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/siperdin/siperdin_api/internal/utils"
)

// writeError maps application errors onto the response envelope. Unknown
// errors collapse to a 500 with a generic message so internals never leak.
func writeError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, sql.ErrNoRows), errors.Is(err, utils.ErrNotFound):
		utils.Error(c, 404, "NOT_FOUND", "Resource not found")
	case errors.Is(err, utils.ErrValidation):
		utils.Error(c, 400, "VALIDATION_ERROR", err.Error())
	case errors.Is(err, utils.ErrNoEmployees):
		utils.Error(c, 400, "NO_EMPLOYEES", "At least one employee must be assigned")
	case errors.Is(err, utils.ErrInvalidImportFile):
		utils.Error(c, 400, "INVALID_IMPORT_FILE", err.Error())
	case errors.Is(err, utils.ErrUnauthorized):
		utils.Error(c, 401, "UNAUTHORIZED", "Invalid credentials")
	case errors.Is(err, utils.ErrForbidden):
		utils.Error(c, 403, "FORBIDDEN", "Operation not allowed for this role")
	case errors.Is(err, utils.ErrInvalidTransition):
		utils.Error(c, 409, "INVALID_TRANSITION", "Status transition is not allowed")
	case errors.Is(err, utils.ErrVersionConflict):
		utils.Error(c, 409, "VERSION_CONFLICT", "Record was modified by another request")
	case errors.Is(err, utils.ErrSPPDExists):
		utils.Error(c, 409, "SPPD_EXISTS", "An SPPD already exists for this assignment letter")
	case errors.Is(err, utils.ErrAssignmentNotApproved):
		utils.Error(c, 409, "ASSIGNMENT_NOT_APPROVED", "Assignment letter is not approved yet")
	case errors.Is(err, utils.ErrReceiptAlreadyPaid):
		utils.Error(c, 409, "RECEIPT_ALREADY_PAID", "Receipt is already paid and locked")
	default:
		utils.Error(c, 500, "INTERNAL_ERROR", fallback)
	}
}
