package usecase

import (
	"context"
	"fmt"

	"github.com/planning-docs-service/internal/config"
	"github.com/planning-docs-service/internal/domain"
	"github.com/planning-docs-service/internal/domain/repository"
	apperrors "github.com/planning-docs-service/internal/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// AuthUseCase - вход по логину и паролю, сессии в Redis
type AuthUseCase struct {
	userRepo    repository.UserRepository
	sessionRepo repository.SessionRepository
	sessionCfg  config.SessionConfig
	logger      *zap.Logger
}

func NewAuthUseCase(
	userRepo repository.UserRepository,
	sessionRepo repository.SessionRepository,
	sessionCfg config.SessionConfig,
	logger *zap.Logger,
) *AuthUseCase {
	return &AuthUseCase{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		sessionCfg:  sessionCfg,
		logger:      logger,
	}
}

// Login проверяет пароль и создаёт сессию
func (uc *AuthUseCase) Login(ctx context.Context, username, password string) (*domain.Session, error) {
	user, err := uc.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}
	if user == nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		uc.logger.Info("Rejected login", zap.String("username", username))
		return nil, apperrors.ErrInvalidCredentials
	}

	session, err := uc.sessionRepo.Create(ctx, *user, uc.sessionCfg.TTL)
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}

	uc.logger.Info("User logged in", zap.Int64("user_id", user.ID), zap.String("role", user.Role))
	return session, nil
}

// Current возвращает сессию по id и продлевает её TTL
func (uc *AuthUseCase) Current(ctx context.Context, sessionID string) (*domain.Session, error) {
	if sessionID == "" {
		return nil, apperrors.ErrNotAuthenticated
	}

	session, err := uc.sessionRepo.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	if session == nil {
		return nil, apperrors.ErrNotAuthenticated
	}

	if err := uc.sessionRepo.Touch(ctx, sessionID, uc.sessionCfg.TTL); err != nil {
		uc.logger.Warn("Failed to extend session", zap.Error(err))
	}

	return session, nil
}

func (uc *AuthUseCase) Logout(ctx context.Context, sessionID string) error {
	if err := uc.sessionRepo.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	return nil
}

// HashPassword returns a bcrypt hash suitable for users.password_hash.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}
