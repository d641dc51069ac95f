package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/siperdin/siperdin_api/internal/models"
	"github.com/siperdin/siperdin_api/internal/repository"
	"github.com/siperdin/siperdin_api/internal/utils"
)

// CityHandler manages travel destinations and their per-diem rates.
type CityHandler struct {
	repo *repository.CityRepository
}

func NewCityHandler(repo *repository.CityRepository) *CityHandler {
	return &CityHandler{repo: repo}
}

// GET /v1/cities
func (h *CityHandler) List(c *gin.Context) {
	cities, err := h.repo.GetAll(c.Request.Context())
	if err != nil {
		writeError(c, err, "Failed to retrieve cities")
		return
	}
	utils.Success(c, 200, "Successfully retrieved cities", cities)
}

type cityRequest struct {
	Name           string `json:"name" binding:"required"`
	Province       string `json:"province"`
	DailyAllowance int64  `json:"dailyAllowance" binding:"min=0"`
}

// POST /v1/cities
func (h *CityHandler) Create(c *gin.Context) {
	var req cityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	city := &models.City{
		ID:             uuid.NewString(),
		Name:           req.Name,
		Province:       req.Province,
		DailyAllowance: req.DailyAllowance,
	}
	if err := h.repo.Create(c.Request.Context(), city); err != nil {
		writeError(c, err, "Failed to create city")
		return
	}
	utils.Success(c, 201, "City created", city)
}

// PUT /v1/cities/:id
func (h *CityHandler) Update(c *gin.Context) {
	var req cityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	city := &models.City{
		ID:             c.Param("id"),
		Name:           req.Name,
		Province:       req.Province,
		DailyAllowance: req.DailyAllowance,
	}
	if err := h.repo.Update(c.Request.Context(), city); err != nil {
		writeError(c, err, "Failed to update city")
		return
	}
	utils.Success(c, 200, "City updated", city)
}

// DELETE /v1/cities/:id
func (h *CityHandler) Delete(c *gin.Context) {
	if err := h.repo.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err, "Failed to delete city")
		return
	}
	utils.Success(c, 200, "City deleted", nil)
}

// TransportModeHandler manages the transport lookup list.
type TransportModeHandler struct {
	repo *repository.TransportModeRepository
}

func NewTransportModeHandler(repo *repository.TransportModeRepository) *TransportModeHandler {
	return &TransportModeHandler{repo: repo}
}

// GET /v1/transport-modes
func (h *TransportModeHandler) List(c *gin.Context) {
	modes, err := h.repo.GetAll(c.Request.Context())
	if err != nil {
		writeError(c, err, "Failed to retrieve transport modes")
		return
	}
	utils.Success(c, 200, "Successfully retrieved transport modes", modes)
}

// POST /v1/transport-modes
func (h *TransportModeHandler) Create(c *gin.Context) {
	var req struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	mode := &models.TransportMode{ID: uuid.NewString(), Name: req.Name}
	if err := h.repo.Create(c.Request.Context(), mode); err != nil {
		writeError(c, err, "Failed to create transport mode")
		return
	}
	utils.Success(c, 201, "Transport mode created", mode)
}

// PUT /v1/transport-modes/:id
func (h *TransportModeHandler) Update(c *gin.Context) {
	var req struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	mode := &models.TransportMode{ID: c.Param("id"), Name: req.Name}
	if err := h.repo.Update(c.Request.Context(), mode); err != nil {
		writeError(c, err, "Failed to update transport mode")
		return
	}
	utils.Success(c, 200, "Transport mode updated", mode)
}

// DELETE /v1/transport-modes/:id
func (h *TransportModeHandler) Delete(c *gin.Context) {
	if err := h.repo.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err, "Failed to delete transport mode")
		return
	}
	utils.Success(c, 200, "Transport mode deleted", nil)
}

// FundingSourceHandler manages budget lines.
type FundingSourceHandler struct {
	repo *repository.FundingSourceRepository
}

func NewFundingSourceHandler(repo *repository.FundingSourceRepository) *FundingSourceHandler {
	return &FundingSourceHandler{repo: repo}
}

// GET /v1/funding-sources
func (h *FundingSourceHandler) List(c *gin.Context) {
	sources, err := h.repo.GetAll(c.Request.Context())
	if err != nil {
		writeError(c, err, "Failed to retrieve funding sources")
		return
	}
	utils.Success(c, 200, "Successfully retrieved funding sources", sources)
}

type fundingSourceRequest struct {
	Name       string `json:"name" binding:"required"`
	Code       string `json:"code" binding:"required"`
	BudgetYear int    `json:"budgetYear" binding:"required"`
	Amount     int64  `json:"amount" binding:"min=0"`
}

// POST /v1/funding-sources
func (h *FundingSourceHandler) Create(c *gin.Context) {
	var req fundingSourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	source := &models.FundingSource{
		ID:         uuid.NewString(),
		Name:       req.Name,
		Code:       req.Code,
		BudgetYear: req.BudgetYear,
		Amount:     req.Amount,
	}
	if err := h.repo.Create(c.Request.Context(), source); err != nil {
		writeError(c, err, "Failed to create funding source")
		return
	}
	utils.Success(c, 201, "Funding source created", source)
}

// PUT /v1/funding-sources/:id
func (h *FundingSourceHandler) Update(c *gin.Context) {
	var req fundingSourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	source := &models.FundingSource{
		ID:         c.Param("id"),
		Name:       req.Name,
		Code:       req.Code,
		BudgetYear: req.BudgetYear,
		Amount:     req.Amount,
	}
	if err := h.repo.Update(c.Request.Context(), source); err != nil {
		writeError(c, err, "Failed to update funding source")
		return
	}
	utils.Success(c, 200, "Funding source updated", source)
}

// DELETE /v1/funding-sources/:id
func (h *FundingSourceHandler) Delete(c *gin.Context) {
	if err := h.repo.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err, "Failed to delete funding source")
		return
	}
	utils.Success(c, 200, "Funding source deleted", nil)
}
