package handler

import (
	"bytes"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/siperdin/siperdin_api/internal/middleware"
	"github.com/siperdin/siperdin_api/internal/models"
	"github.com/siperdin/siperdin_api/internal/service"
	"github.com/siperdin/siperdin_api/internal/utils"
)

const docxContentType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

// AssignmentHandler handles assignment-letter endpoints including the
// workflow transition and document generation.
type AssignmentHandler struct {
	assignmentService *service.AssignmentService
	documentService   *service.DocumentService
}

func NewAssignmentHandler(assignmentService *service.AssignmentService, documentService *service.DocumentService) *AssignmentHandler {
	return &AssignmentHandler{assignmentService: assignmentService, documentService: documentService}
}

// List returns letters, optionally filtered by ?status=.
// GET /v1/assignment-letters
func (h *AssignmentHandler) List(c *gin.Context) {
	letters, err := h.assignmentService.List(c.Request.Context(), c.Query("status"))
	if err != nil {
		writeError(c, err, "Failed to retrieve assignment letters")
		return
	}
	utils.Success(c, 200, "Successfully retrieved assignment letters", letters)
}

// GET /v1/assignment-letters/:id
func (h *AssignmentHandler) Get(c *gin.Context) {
	letter, err := h.assignmentService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err, "Failed to retrieve assignment letter")
		return
	}
	utils.Success(c, 200, "Successfully retrieved assignment letter", letter)
}

type assignmentRequest struct {
	Number             string    `json:"number" binding:"required"`
	Date               time.Time `json:"date" binding:"required"`
	Basis              string    `json:"basis"`
	EmployeeIDs        []string  `json:"employeeIds" binding:"required"`
	Subject            string    `json:"subject" binding:"required"`
	DestinationID      string    `json:"destinationId" binding:"required"`
	DestinationAddress string    `json:"destinationAddress"`
	StartDate          time.Time `json:"startDate" binding:"required"`
	EndDate            time.Time `json:"endDate" binding:"required"`
	SignatoryID        string    `json:"signatoryId" binding:"required"`
	SignatureType      string    `json:"signatureType"`
	UpperTitle         string    `json:"upperTitle"`
	IntermediateTitle  string    `json:"intermediateTitle"`
	Version            int       `json:"version"`
}

func (r *assignmentRequest) toModel(id string) *models.AssignmentLetter {
	return &models.AssignmentLetter{
		ID:                 id,
		Number:             r.Number,
		Date:               r.Date,
		Basis:              r.Basis,
		EmployeeIDs:        r.EmployeeIDs,
		Subject:            r.Subject,
		DestinationID:      r.DestinationID,
		DestinationAddress: r.DestinationAddress,
		StartDate:          r.StartDate,
		EndDate:            r.EndDate,
		SignatoryID:        r.SignatoryID,
		SignatureType:      models.SignatureType(r.SignatureType),
		UpperTitle:         r.UpperTitle,
		IntermediateTitle:  r.IntermediateTitle,
		Version:            r.Version,
	}
}

// POST /v1/assignment-letters
func (h *AssignmentHandler) Create(c *gin.Context) {
	var req assignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	letter := req.toModel("")
	if err := h.assignmentService.Create(c.Request.Context(), middleware.SessionRole(c), letter); err != nil {
		writeError(c, err, "Failed to create assignment letter")
		return
	}
	utils.Success(c, 201, "Assignment letter created", letter)
}

// PUT /v1/assignment-letters/:id
func (h *AssignmentHandler) Update(c *gin.Context) {
	var req assignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	letter := req.toModel(c.Param("id"))
	if err := h.assignmentService.Update(c.Request.Context(), middleware.SessionRole(c), letter); err != nil {
		writeError(c, err, "Failed to update assignment letter")
		return
	}
	utils.Success(c, 200, "Assignment letter updated", letter)
}

// DELETE /v1/assignment-letters/:id
func (h *AssignmentHandler) Delete(c *gin.Context) {
	if err := h.assignmentService.Delete(c.Request.Context(), middleware.SessionRole(c), c.Param("id")); err != nil {
		writeError(c, err, "Failed to delete assignment letter")
		return
	}
	utils.Success(c, 200, "Assignment letter deleted", nil)
}

// ChangeStatus applies one workflow transition.
// PATCH /v1/assignment-letters/:id/status
func (h *AssignmentHandler) ChangeStatus(c *gin.Context) {
	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	letter, err := h.assignmentService.ChangeStatus(c.Request.Context(), middleware.SessionRole(c), c.Param("id"), req.Status)
	if err != nil {
		writeError(c, err, "Failed to change status")
		return
	}
	utils.Success(c, 200, "Status changed", letter)
}

// Print serves the print-ready HTML view.
// GET /v1/assignment-letters/:id/print
func (h *AssignmentHandler) Print(c *gin.Context) {
	doc, err := h.documentService.LetterDoc(c.Request.Context(), middleware.SessionRole(c), c.Param("id"), false)
	if err != nil {
		writeError(c, err, "Failed to render letter")
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(doc.HTML))
}

// Export serves the letter as a .docx download.
// GET /v1/assignment-letters/:id/export
func (h *AssignmentHandler) Export(c *gin.Context) {
	doc, err := h.documentService.LetterDoc(c.Request.Context(), middleware.SessionRole(c), c.Param("id"), true)
	if err != nil {
		writeError(c, err, "Failed to render letter")
		return
	}
	serveDocx(c, doc)
}

// serveDocx streams a built docx body with its download filename.
func serveDocx(c *gin.Context, doc *service.GeneratedDoc) {
	var buf bytes.Buffer
	if err := doc.Docx.Write(&buf); err != nil {
		writeError(c, err, "Failed to build document")
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+doc.Filename+`"`)
	c.Data(http.StatusOK, docxContentType, buf.Bytes())
}
