package handler

import (
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/siperdin/siperdin_api/internal/middleware"
	"github.com/siperdin/siperdin_api/internal/models"
	"github.com/siperdin/siperdin_api/internal/service"
	"github.com/siperdin/siperdin_api/internal/utils"
)

// ReceiptHandler handles expense-receipt endpoints including payment and
// attachment upload.
type ReceiptHandler struct {
	receiptService  *service.ReceiptService
	documentService *service.DocumentService
	storage         *service.StorageService
}

func NewReceiptHandler(receiptService *service.ReceiptService, documentService *service.DocumentService, storage *service.StorageService) *ReceiptHandler {
	return &ReceiptHandler{receiptService: receiptService, documentService: documentService, storage: storage}
}

// GET /v1/receipts
func (h *ReceiptHandler) List(c *gin.Context) {
	receipts, err := h.receiptService.List(c.Request.Context())
	if err != nil {
		writeError(c, err, "Failed to retrieve receipts")
		return
	}
	utils.Success(c, 200, "Successfully retrieved receipts", receipts)
}

// GET /v1/receipts/:id
func (h *ReceiptHandler) Get(c *gin.Context) {
	receipt, err := h.receiptService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err, "Failed to retrieve receipt")
		return
	}
	utils.Success(c, 200, "Successfully retrieved receipt", receipt)
}

type receiptRequest struct {
	SPPDID      string                `json:"sppdId" binding:"required"`
	Date        time.Time             `json:"date" binding:"required"`
	Components  models.CostComponents `json:"components"`
	TreasurerID string                `json:"treasurerId"`
	PPTKID      string                `json:"pptkId"`
	KPAID       string                `json:"kpaId"`
	Attachments []string              `json:"attachments"`
	Version     int                   `json:"version"`
}

func (r *receiptRequest) toModel(id string) *models.Receipt {
	return &models.Receipt{
		ID:          id,
		SPPDID:      r.SPPDID,
		Date:        r.Date,
		Components:  r.Components,
		TreasurerID: r.TreasurerID,
		PPTKID:      r.PPTKID,
		KPAID:       r.KPAID,
		Attachments: r.Attachments,
		Version:     r.Version,
	}
}

// POST /v1/receipts
func (h *ReceiptHandler) Create(c *gin.Context) {
	var req receiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	receipt := req.toModel("")
	if err := h.receiptService.Create(c.Request.Context(), middleware.SessionRole(c), receipt); err != nil {
		writeError(c, err, "Failed to create receipt")
		return
	}
	utils.Success(c, 201, "Receipt created", receipt)
}

// PUT /v1/receipts/:id
func (h *ReceiptHandler) Update(c *gin.Context) {
	var req receiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	receipt := req.toModel(c.Param("id"))
	if err := h.receiptService.Update(c.Request.Context(), middleware.SessionRole(c), receipt); err != nil {
		writeError(c, err, "Failed to update receipt")
		return
	}
	utils.Success(c, 200, "Receipt updated", receipt)
}

// Pay marks a receipt as paid, locking it permanently.
// PATCH /v1/receipts/:id/pay
func (h *ReceiptHandler) Pay(c *gin.Context) {
	receipt, err := h.receiptService.Pay(c.Request.Context(), middleware.SessionRole(c), c.Param("id"))
	if err != nil {
		writeError(c, err, "Failed to mark receipt paid")
		return
	}
	utils.Success(c, 200, "Receipt marked paid", receipt)
}

// DELETE /v1/receipts/:id
func (h *ReceiptHandler) Delete(c *gin.Context) {
	if err := h.receiptService.Delete(c.Request.Context(), middleware.SessionRole(c), c.Param("id")); err != nil {
		writeError(c, err, "Failed to delete receipt")
		return
	}
	utils.Success(c, 200, "Receipt deleted", nil)
}

// UploadAttachment stores a proof-of-expense file under the receipt.
// POST /v1/receipts/:id/attachments
func (h *ReceiptHandler) UploadAttachment(c *gin.Context) {
	id := c.Param("id")
	receipt, err := h.receiptService.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, err, "Failed to retrieve receipt")
		return
	}

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Missing file upload field")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, 10<<20))
	if err != nil {
		writeError(c, err, "Failed to read uploaded file")
		return
	}

	url, err := h.storage.UploadAttachment(c.Request.Context(), id, header.Filename, data, header.Header.Get("Content-Type"))
	if err != nil {
		writeError(c, err, "Failed to store attachment")
		return
	}

	receipt.Attachments = append(receipt.Attachments, url)
	if err := h.receiptService.Update(c.Request.Context(), middleware.SessionRole(c), receipt); err != nil {
		writeError(c, err, "Failed to save attachment reference")
		return
	}
	utils.Success(c, 200, "Attachment uploaded", gin.H{"url": url, "attachments": receipt.Attachments})
}

// GET /v1/receipts/:id/print
func (h *ReceiptHandler) Print(c *gin.Context) {
	doc, err := h.documentService.ReceiptDoc(c.Request.Context(), middleware.SessionRole(c), c.Param("id"), false)
	if err != nil {
		writeError(c, err, "Failed to render receipt")
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(doc.HTML))
}

// GET /v1/receipts/:id/export
func (h *ReceiptHandler) Export(c *gin.Context) {
	doc, err := h.documentService.ReceiptDoc(c.Request.Context(), middleware.SessionRole(c), c.Param("id"), true)
	if err != nil {
		writeError(c, err, "Failed to render receipt")
		return
	}
	serveDocx(c, doc)
}
