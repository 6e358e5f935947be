package repository

import (
	"context"
	"time"

	"github.com/planning-docs-service/internal/domain"
)

// CacheRepository определяет методы для работы с кешем
type CacheRepository interface {
	// Get получает значение из кеша по ключу; промах возвращает nil, nil
	Get(ctx context.Context, key string) ([]byte, error)

	// Set сохраняет значение в кеше с TTL
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete удаляет значения из кеша
	Delete(ctx context.Context, keys ...string) error

	// GetStats получает статистику геопривязок из кеша
	GetStats(ctx context.Context) (*domain.GeoreferenceStats, error)

	// SetStats сохраняет статистику геопривязок в кеше
	SetStats(ctx context.Context, stats *domain.GeoreferenceStats, ttl time.Duration) error
}

// SessionRepository хранит сессии пользователей
type SessionRepository interface {
	Create(ctx context.Context, user domain.User, ttl time.Duration) (*domain.Session, error)
	Get(ctx context.Context, id string) (*domain.Session, error)
	Touch(ctx context.Context, id string, ttl time.Duration) error
	Delete(ctx context.Context, id string) error
}
