package handler

import (
	"io"

	"github.com/gin-gonic/gin"

	"github.com/siperdin/siperdin_api/internal/models"
	"github.com/siperdin/siperdin_api/internal/repository"
	"github.com/siperdin/siperdin_api/internal/service"
	"github.com/siperdin/siperdin_api/internal/utils"
)

// SettingsHandler manages the singleton agency identity used on letterheads.
type SettingsHandler struct {
	repo    *repository.SettingsRepository
	storage *service.StorageService
}

func NewSettingsHandler(repo *repository.SettingsRepository, storage *service.StorageService) *SettingsHandler {
	return &SettingsHandler{repo: repo, storage: storage}
}

// GET /v1/settings
func (h *SettingsHandler) Get(c *gin.Context) {
	settings, err := h.repo.Get(c.Request.Context())
	if err != nil {
		writeError(c, err, "Failed to retrieve settings")
		return
	}
	utils.Success(c, 200, "Successfully retrieved settings", settings)
}

// PUT /v1/settings
func (h *SettingsHandler) Update(c *gin.Context) {
	var req struct {
		Name        string `json:"name" binding:"required"`
		Department  string `json:"department"`
		Address     string `json:"address"`
		ContactInfo string `json:"contactInfo"`
		LogoURL     string `json:"logoUrl"`
		KopSuratURL string `json:"kopSuratUrl"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	settings := &models.AgencySettings{
		ID:          1,
		Name:        req.Name,
		Department:  req.Department,
		Address:     req.Address,
		ContactInfo: req.ContactInfo,
		LogoURL:     req.LogoURL,
		KopSuratURL: req.KopSuratURL,
	}
	if err := h.repo.Save(c.Request.Context(), settings); err != nil {
		writeError(c, err, "Failed to save settings")
		return
	}
	utils.Success(c, 200, "Settings saved", settings)
}

// UploadLetterhead stores a kop surat image and records its URL.
// POST /v1/settings/letterhead
func (h *SettingsHandler) UploadLetterhead(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Missing file upload field")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, 5<<20))
	if err != nil {
		writeError(c, err, "Failed to read uploaded file")
		return
	}

	contentType := header.Header.Get("Content-Type")
	url, err := h.storage.UploadLetterhead(c.Request.Context(), header.Filename, data, contentType)
	if err != nil {
		writeError(c, err, "Failed to store letterhead")
		return
	}

	settings, err := h.repo.Get(c.Request.Context())
	if err != nil {
		writeError(c, err, "Failed to load settings")
		return
	}
	settings.KopSuratURL = url
	if err := h.repo.Save(c.Request.Context(), settings); err != nil {
		writeError(c, err, "Failed to save settings")
		return
	}
	utils.Success(c, 200, "Letterhead uploaded", gin.H{"kopSuratUrl": url})
}
