package auth

import (
	"context"
	"fmt"
	"time"

	adminRepo "bizly/database/repository/admin"
	"bizly/models"
	"bizly/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const sessionDuration = 24 * time.Hour

// DefaultAuthService is the production AuthService implementation.
type DefaultAuthService struct {
	Repo adminRepo.AdminRepository
}

// Login verifies credentials, mints a session token, and records its hash on
// the account and in the auth cache so middleware can validate cheaply.
func (s *DefaultAuthService) Login(email, password string) (*Session, error) {
	logger := utils.GetLogger()

	admin, err := s.Repo.GetByEmail(email)
	if err != nil {
		return nil, fmt.Errorf("failed to look up account: %w", err)
	}
	if admin == nil {
		return nil, InvalidCredentialsError{}
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		logger.Warn("failed login attempt", zap.String("email", email))
		return nil, InvalidCredentialsError{}
	}

	token, err := utils.GenerateToken(admin.ID, admin.Email, sessionDuration)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	tokenHash := utils.HashToken(token)
	if err := s.Repo.SetTokenHash(admin.ID, tokenHash); err != nil {
		return nil, err
	}

	cacheKey := utils.AuthCachePrefix + admin.ID
	if err := utils.GetAuthCacheClient().Set(context.Background(), cacheKey, tokenHash, time.Hour).Err(); err != nil {
		// Middleware falls back to the DB on a cache miss.
		logger.Warn("failed to prime auth cache", zap.Error(err))
	}

	admin.TokenHash = ""
	return &Session{Token: token, Admin: admin}, nil
}

// Logout revokes the account's current session token everywhere.
func (s *DefaultAuthService) Logout(adminID string) error {
	if err := s.Repo.SetTokenHash(adminID, ""); err != nil {
		return err
	}
	cacheKey := utils.AuthCachePrefix + adminID
	if err := utils.GetAuthCacheClient().Del(context.Background(), cacheKey).Err(); err != nil {
		utils.GetLogger().Warn("failed to evict auth cache entry", zap.Error(err))
	}
	return nil
}

// GetAdmin returns the account behind a session.
func (s *DefaultAuthService) GetAdmin(adminID string) (*models.Admin, error) {
	return s.Repo.GetByID(adminID)
}

// Register creates a dashboard account. Only owners reach this endpoint; the
// route is role-guarded.
func (s *DefaultAuthService) Register(name, email, password, role string) (*models.Admin, error) {
	existing, err := s.Repo.GetByEmail(email)
	if err != nil {
		return nil, fmt.Errorf("failed to look up account: %w", err)
	}
	if existing != nil {
		return nil, DuplicateAccountError{Email: email}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	if role == "" {
		role = models.RoleStaff
	}
	admin := &models.Admin{
		ID:           uuid.New().String(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
	}
	if err := s.Repo.Create(admin); err != nil {
		return nil, err
	}
	return admin, nil
}
