package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/planning-docs-service/internal/domain"
	"github.com/planning-docs-service/internal/domain/repository"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type sessionRepository struct {
	client *redis.Client
	logger *zap.Logger
}

// NewSessionRepository хранит сессии как session:<uuid> -> JSON пользователя
func NewSessionRepository(redis *Redis) repository.SessionRepository {
	return &sessionRepository{
		client: redis.Client(),
		logger: redis.logger,
	}
}

func (r *sessionRepository) Create(ctx context.Context, user domain.User, ttl time.Duration) (*domain.Session, error) {
	session := &domain.Session{
		ID:   uuid.NewString(),
		User: user,
	}

	data, err := json.Marshal(session.User)
	if err != nil {
		return nil, fmt.Errorf("marshal session: %w", err)
	}

	if err := r.client.Set(ctx, sessionKey(session.ID), data, ttl).Err(); err != nil {
		r.logger.Error("Failed to store session", zap.Int64("user_id", user.ID), zap.Error(err))
		return nil, fmt.Errorf("store session: %w", err)
	}

	r.logger.Debug("Session created", zap.Int64("user_id", user.ID), zap.Duration("ttl", ttl))
	return session, nil
}

// Get возвращает сессию; неизвестный или истёкший id - nil, nil
func (r *sessionRepository) Get(ctx context.Context, id string) (*domain.Session, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, nil
	}

	data, err := r.client.Get(ctx, sessionKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}

	var user domain.User
	if err := json.Unmarshal(data, &user); err != nil {
		return nil, fmt.Errorf("unmarshal session: %w", err)
	}

	return &domain.Session{ID: id, User: user}, nil
}

// Touch продлевает TTL сессии
func (r *sessionRepository) Touch(ctx context.Context, id string, ttl time.Duration) error {
	if err := r.client.Expire(ctx, sessionKey(id), ttl).Err(); err != nil {
		return fmt.Errorf("touch session: %w", err)
	}
	return nil
}

func (r *sessionRepository) Delete(ctx context.Context, id string) error {
	if err := r.client.Del(ctx, sessionKey(id)).Err(); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}
