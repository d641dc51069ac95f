package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/siperdin/siperdin_api/internal/models"
	"github.com/siperdin/siperdin_api/internal/repository"
	"github.com/siperdin/siperdin_api/internal/utils"
)

// AuthService issues login sessions. Registered users authenticate with
// bcrypt; unknown usernames get a lightweight account whose role is derived
// from keywords in the name, preserving the original login behavior.
type AuthService struct {
	userRepo  *repository.UserRepository
	jwtSecret string
}

// NewAuthService constructs an AuthService.
func NewAuthService(userRepo *repository.UserRepository, jwtSecret string) *AuthService {
	return &AuthService{userRepo: userRepo, jwtSecret: jwtSecret}
}

// Login validates credentials and returns a signed session token plus the
// session user.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, *models.User, error) {
	if username == "" {
		return "", nil, utils.ErrValidation
	}

	user, err := s.userRepo.GetByUsername(ctx, username)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		user = &models.User{
			ID:       uuid.NewString(),
			Username: username,
			Name:     username,
			Role:     models.RoleFromUsername(username),
		}
		if err := s.userRepo.Create(ctx, user); err != nil {
			return "", nil, err
		}
		log.Info().Str("username", username).Str("role", string(user.Role)).Msg("Lightweight account created on first login")
	case err != nil:
		return "", nil, err
	default:
		if user.PasswordHash != "" {
			if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
				log.Warn().Str("username", username).Msg("Password verification failed")
				return "", nil, utils.ErrUnauthorized
			}
		}
	}

	token, err := utils.GenerateJWT(s.jwtSecret, user.ID, user.Username, user.Name, string(user.Role))
	if err != nil {
		return "", nil, err
	}
	log.Info().Str("username", username).Str("role", string(user.Role)).Msg("Login successful")
	return token, user, nil
}

// Register creates a managed account with a bcrypt-hashed password.
func (s *AuthService) Register(ctx context.Context, username, name, password string, role models.Role) (*models.User, error) {
	if username == "" || !models.ValidRole(string(role)) {
		return nil, utils.ErrValidation
	}
	hash := ""
	if password != "" {
		h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		hash = string(h)
	}
	user := &models.User{
		ID:           uuid.NewString(),
		Username:     username,
		Name:         name,
		Role:         role,
		PasswordHash: hash,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
