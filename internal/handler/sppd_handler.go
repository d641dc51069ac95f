package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/siperdin/siperdin_api/internal/middleware"
	"github.com/siperdin/siperdin_api/internal/models"
	"github.com/siperdin/siperdin_api/internal/service"
	"github.com/siperdin/siperdin_api/internal/utils"
)

// SPPDHandler handles travel-order endpoints.
type SPPDHandler struct {
	sppdService     *service.SPPDService
	documentService *service.DocumentService
}

func NewSPPDHandler(sppdService *service.SPPDService, documentService *service.DocumentService) *SPPDHandler {
	return &SPPDHandler{sppdService: sppdService, documentService: documentService}
}

// GET /v1/sppd
func (h *SPPDHandler) List(c *gin.Context) {
	sppds, err := h.sppdService.List(c.Request.Context())
	if err != nil {
		writeError(c, err, "Failed to retrieve SPPDs")
		return
	}
	utils.Success(c, 200, "Successfully retrieved SPPDs", sppds)
}

// Ready lists approved letters that have no SPPD yet.
// GET /v1/sppd/ready
func (h *SPPDHandler) Ready(c *gin.Context) {
	letters, err := h.sppdService.Ready(c.Request.Context())
	if err != nil {
		writeError(c, err, "Failed to retrieve ready assignments")
		return
	}
	utils.Success(c, 200, "Successfully retrieved ready assignments", letters)
}

// GET /v1/sppd/:id
func (h *SPPDHandler) Get(c *gin.Context) {
	sppd, err := h.sppdService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err, "Failed to retrieve SPPD")
		return
	}
	utils.Success(c, 200, "Successfully retrieved SPPD", sppd)
}

// POST /v1/sppd
func (h *SPPDHandler) Create(c *gin.Context) {
	var input service.CreateSPPDInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}
	if input.AssignmentID == "" {
		utils.Error(c, 400, "INVALID_REQUEST", "assignmentId is required")
		return
	}
	sppd, err := h.sppdService.Create(c.Request.Context(), middleware.SessionRole(c), &input)
	if err != nil {
		writeError(c, err, "Failed to create SPPD")
		return
	}
	utils.Success(c, 201, "SPPD created", sppd)
}

// PUT /v1/sppd/:id
func (h *SPPDHandler) Update(c *gin.Context) {
	var req struct {
		StartDate   time.Time `json:"startDate" binding:"required"`
		EndDate     time.Time `json:"endDate" binding:"required"`
		Status      string    `json:"status" binding:"required"`
		TransportID string    `json:"transportId"`
		FundingID   string    `json:"fundingId"`
		Version     int       `json:"version"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	sppd := &models.SPPD{
		ID:          c.Param("id"),
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Status:      models.SPPDStatus(req.Status),
		TransportID: req.TransportID,
		FundingID:   req.FundingID,
		Version:     req.Version,
	}
	if err := h.sppdService.Update(c.Request.Context(), middleware.SessionRole(c), sppd); err != nil {
		writeError(c, err, "Failed to update SPPD")
		return
	}
	utils.Success(c, 200, "SPPD updated", sppd)
}

// DELETE /v1/sppd/:id
func (h *SPPDHandler) Delete(c *gin.Context) {
	if err := h.sppdService.Delete(c.Request.Context(), middleware.SessionRole(c), c.Param("id")); err != nil {
		writeError(c, err, "Failed to delete SPPD")
		return
	}
	utils.Success(c, 200, "SPPD deleted", nil)
}

// GET /v1/sppd/:id/print
func (h *SPPDHandler) Print(c *gin.Context) {
	doc, err := h.documentService.SPPDDoc(c.Request.Context(), middleware.SessionRole(c), c.Param("id"), false)
	if err != nil {
		writeError(c, err, "Failed to render SPPD")
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(doc.HTML))
}

// GET /v1/sppd/:id/export
func (h *SPPDHandler) Export(c *gin.Context) {
	doc, err := h.documentService.SPPDDoc(c.Request.Context(), middleware.SessionRole(c), c.Param("id"), true)
	if err != nil {
		writeError(c, err, "Failed to render SPPD")
		return
	}
	serveDocx(c, doc)
}
