package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/siperdin/siperdin_api/internal/models"
	"github.com/siperdin/siperdin_api/internal/repository"
	"github.com/siperdin/siperdin_api/internal/utils"
)

// SignatoryHandler manages the list of officials allowed to sign documents.
type SignatoryHandler struct {
	repo *repository.SignatoryRepository
}

func NewSignatoryHandler(repo *repository.SignatoryRepository) *SignatoryHandler {
	return &SignatoryHandler{repo: repo}
}

// GET /v1/signatories
func (h *SignatoryHandler) List(c *gin.Context) {
	signatories, err := h.repo.GetAll(c.Request.Context())
	if err != nil {
		writeError(c, err, "Failed to retrieve signatories")
		return
	}
	utils.Success(c, 200, "Successfully retrieved signatories", signatories)
}

type signatoryRequest struct {
	EmployeeID string `json:"employeeId" binding:"required"`
	Role       string `json:"role" binding:"required"`
	IsActive   *bool  `json:"isActive"`
}

// POST /v1/signatories
func (h *SignatoryHandler) Create(c *gin.Context) {
	var req signatoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}
	signatory := &models.Signatory{
		ID:         uuid.NewString(),
		EmployeeID: req.EmployeeID,
		Role:       req.Role,
		IsActive:   active,
	}
	if err := h.repo.Create(c.Request.Context(), signatory); err != nil {
		writeError(c, err, "Failed to create signatory")
		return
	}
	utils.Success(c, 201, "Signatory created", signatory)
}

// PUT /v1/signatories/:id
func (h *SignatoryHandler) Update(c *gin.Context) {
	var req signatoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}
	signatory := &models.Signatory{
		ID:         c.Param("id"),
		EmployeeID: req.EmployeeID,
		Role:       req.Role,
		IsActive:   active,
	}
	if err := h.repo.Update(c.Request.Context(), signatory); err != nil {
		writeError(c, err, "Failed to update signatory")
		return
	}
	utils.Success(c, 200, "Signatory updated", signatory)
}

// DELETE /v1/signatories/:id
func (h *SignatoryHandler) Delete(c *gin.Context) {
	if err := h.repo.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err, "Failed to delete signatory")
		return
	}
	utils.Success(c, 200, "Signatory deleted", nil)
}
