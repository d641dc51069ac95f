package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/siperdin/siperdin_api/internal/document"
	"github.com/siperdin/siperdin_api/internal/service"
	"github.com/siperdin/siperdin_api/internal/utils"
)

// ReportHandler handles the dashboard and the monthly recap.
type ReportHandler struct {
	reportService *service.ReportService
}

func NewReportHandler(reportService *service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// Dashboard returns the aggregated statistics, defaulting to the current year.
// GET /v1/reports/dashboard
func (h *ReportHandler) Dashboard(c *gin.Context) {
	year := time.Now().Year()
	if raw := c.Query("year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 2000 || parsed > 2100 {
			utils.Error(c, 400, "VALIDATION_ERROR", "Invalid year")
			return
		}
		year = parsed
	}

	stats, err := h.reportService.Dashboard(c.Request.Context(), year)
	if err != nil {
		writeError(c, err, "Failed to compute dashboard")
		return
	}
	utils.Success(c, 200, "Successfully retrieved dashboard", stats)
}

// Recap returns the per-receipt rows of one month.
// GET /v1/reports/recap?month=2024-08&fundingId=...
func (h *ReportHandler) Recap(c *gin.Context) {
	rows, err := h.reportService.Recap(c.Request.Context(), c.Query("month"), c.Query("fundingId"))
	if err != nil {
		writeError(c, err, "Failed to compute recap")
		return
	}
	utils.Success(c, 200, "Successfully retrieved recap", rows)
}

// RecapExport serves the recap of one month as a spreadsheet download.
// GET /v1/reports/recap/export?month=2024-08&fundingId=...
func (h *ReportHandler) RecapExport(c *gin.Context) {
	month := c.Query("month")
	rows, err := h.reportService.Recap(c.Request.Context(), month, c.Query("fundingId"))
	if err != nil {
		writeError(c, err, "Failed to compute recap")
		return
	}

	body, err := document.RecapExport(month, rows)
	if err != nil {
		writeError(c, err, "Failed to render recap export")
		return
	}
	c.Header("Content-Disposition", `attachment; filename="Rekap_Perjalanan_Dinas_`+month+`.xls"`)
	c.Data(http.StatusOK, document.SpreadsheetContentType, []byte(body))
}
