package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/planning-docs-service/internal/domain"
	"github.com/planning-docs-service/internal/domain/repository"
	"go.uber.org/zap"
)

// StatsUseCase обрабатывает бизнес-логику для статистики геопривязок
type StatsUseCase struct {
	coordRepo repository.CoordinateRepository
	cacheRepo repository.CacheRepository
	ttl       time.Duration
	logger    *zap.Logger
}

// NewStatsUseCase создает новый экземпляр StatsUseCase
func NewStatsUseCase(
	coordRepo repository.CoordinateRepository,
	cacheRepo repository.CacheRepository,
	ttl time.Duration,
	logger *zap.Logger,
) *StatsUseCase {
	return &StatsUseCase{
		coordRepo: coordRepo,
		cacheRepo: cacheRepo,
		ttl:       ttl,
		logger:    logger,
	}
}

// GetGeoreferenceStats возвращает статистику, используя кеш когда возможно
func (uc *StatsUseCase) GetGeoreferenceStats(ctx context.Context) (*domain.GeoreferenceStats, error) {
	cached, err := uc.cacheRepo.GetStats(ctx)
	if err == nil && cached != nil {
		uc.logger.Debug("Statistics fetched from cache")
		return cached, nil
	}
	if err != nil {
		uc.logger.Warn("Failed to get stats from cache", zap.Error(err))
	}

	return uc.RefreshGeoreferenceStats(ctx)
}

// RefreshGeoreferenceStats пересчитывает статистику из БД и обновляет кеш
func (uc *StatsUseCase) RefreshGeoreferenceStats(ctx context.Context) (*domain.GeoreferenceStats, error) {
	stats, err := uc.coordRepo.GetGeoreferenceStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("get georeference stats: %w", err)
	}

	if err := uc.cacheRepo.SetStats(ctx, stats, uc.ttl); err != nil {
		// данные уже получены
		uc.logger.Warn("Failed to cache stats", zap.Error(err))
	}

	return stats, nil
}
