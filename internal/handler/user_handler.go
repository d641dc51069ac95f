package handler

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/siperdin/siperdin_api/internal/models"
	"github.com/siperdin/siperdin_api/internal/repository"
	"github.com/siperdin/siperdin_api/internal/utils"
)

// UserHandler manages application accounts. Admin only.
type UserHandler struct {
	repo *repository.UserRepository
}

func NewUserHandler(repo *repository.UserRepository) *UserHandler {
	return &UserHandler{repo: repo}
}

// GET /v1/users
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.repo.GetAll(c.Request.Context())
	if err != nil {
		writeError(c, err, "Failed to retrieve users")
		return
	}
	utils.Success(c, 200, "Successfully retrieved users", users)
}

// Update changes a user's name, role, or password.
// PUT /v1/users/:id
func (h *UserHandler) Update(c *gin.Context) {
	var req struct {
		Name     string `json:"name" binding:"required"`
		Role     string `json:"role" binding:"required"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}
	if !models.ValidRole(req.Role) {
		utils.Error(c, 400, "VALIDATION_ERROR", "Unknown role")
		return
	}

	user, err := h.repo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err, "Failed to retrieve user")
		return
	}

	user.Name = req.Name
	user.Role = models.Role(req.Role)
	if req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			writeError(c, err, "Failed to hash password")
			return
		}
		user.PasswordHash = string(hash)
	}
	if err := h.repo.Update(c.Request.Context(), user); err != nil {
		writeError(c, err, "Failed to update user")
		return
	}
	utils.Success(c, 200, "User updated", user)
}

// DELETE /v1/users/:id
func (h *UserHandler) Delete(c *gin.Context) {
	if c.GetString("user_id") == c.Param("id") {
		utils.Error(c, 400, "VALIDATION_ERROR", "Cannot delete the current session user")
		return
	}
	if err := h.repo.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err, "Failed to delete user")
		return
	}
	utils.Success(c, 200, "User deleted", nil)
}
