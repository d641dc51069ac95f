package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/siperdin/siperdin_api/internal/middleware"
	"github.com/siperdin/siperdin_api/internal/models"
	"github.com/siperdin/siperdin_api/internal/service"
	"github.com/siperdin/siperdin_api/internal/utils"
)

type AuthHandler struct {
	authService *service.AuthService
	rateLimiter *middleware.FailedLoginRateLimiter
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		rateLimiter: middleware.NewFailedLoginRateLimiter(),
	}
}

// Login authenticates a user and issues a session token.
// POST /v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	token, user, err := h.authService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if !h.rateLimiter.Allow(c.ClientIP()) {
			utils.Error(c, 429, "TOO_MANY_REQUESTS", "Too many failed login attempts")
			return
		}
		writeError(c, err, "Login failed")
		return
	}

	utils.Success(c, 200, "Login successful", gin.H{
		"token": token,
		"user": gin.H{
			"id":       user.ID,
			"username": user.Username,
			"name":     user.Name,
			"role":     user.Role,
		},
	})
}

// Register creates a password-protected account. Admin only.
// POST /v1/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req struct {
		Username string `json:"username" binding:"required"`
		Name     string `json:"name" binding:"required"`
		Password string `json:"password" binding:"required,min=8"`
		Role     string `json:"role"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	role := models.Role(req.Role)
	if req.Role == "" {
		role = models.RoleFromUsername(req.Username)
	} else if !models.ValidRole(req.Role) {
		utils.Error(c, 400, "VALIDATION_ERROR", "Unknown role")
		return
	}

	user, err := h.authService.Register(c.Request.Context(), req.Username, req.Name, req.Password, role)
	if err != nil {
		writeError(c, err, "Failed to register user")
		return
	}

	utils.Success(c, 201, "User registered", user)
}

// Me returns the identity carried by the current session token.
// GET /v1/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	utils.Success(c, 200, "Session identity", gin.H{
		"id":       c.GetString("user_id"),
		"username": c.GetString("username"),
		"name":     c.GetString("name"),
		"role":     c.GetString("role"),
	})
}
