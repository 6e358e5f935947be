package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/planning-docs-service/internal/config"
	"github.com/planning-docs-service/internal/domain"
	"github.com/planning-docs-service/internal/domain/repository"
	"github.com/planning-docs-service/internal/pkg/metrics"
	"go.uber.org/zap"
)

// CoordinateUseCase - геопривязки документов с cache-aside чтением
type CoordinateUseCase struct {
	coordRepo repository.CoordinateRepository
	cacheRepo repository.CacheRepository
	notifier  *georeferenceNotifier
	cacheCfg  config.CacheConfig
	logger    *zap.Logger
}

// NewCoordinateUseCase создает новый экземпляр CoordinateUseCase.
// streamRepo may be nil, then no change events are published.
func NewCoordinateUseCase(
	coordRepo repository.CoordinateRepository,
	cacheRepo repository.CacheRepository,
	streamRepo repository.StreamRepository,
	cacheCfg config.CacheConfig,
	logger *zap.Logger,
) *CoordinateUseCase {
	return &CoordinateUseCase{
		coordRepo: coordRepo,
		cacheRepo: cacheRepo,
		notifier: &georeferenceNotifier{
			cacheRepo:  cacheRepo,
			streamRepo: streamRepo,
			logger:     logger,
		},
		cacheCfg: cacheCfg,
		logger:   logger,
	}
}

// GetAllDocumentsCoordinates возвращает документы с координатами и стейкхолдерами
func (uc *CoordinateUseCase) GetAllDocumentsCoordinates(ctx context.Context) ([]domain.DocCoordinates, error) {
	var docs []domain.DocCoordinates
	if uc.fromCache(ctx, domain.CacheKeyAllCoordinates, &docs) {
		return docs, nil
	}

	docs, err := uc.coordRepo.GetAllDocumentsCoordinates(ctx)
	if err != nil {
		return nil, fmt.Errorf("get documents coordinates: %w", err)
	}

	uc.toCache(ctx, domain.CacheKeyAllCoordinates, docs, uc.cacheCfg.CoordinatesCacheTTL)
	return docs, nil
}

// GetExistingGeoreferences возвращает списки точек всех документов без муниципальных маркеров
func (uc *CoordinateUseCase) GetExistingGeoreferences(ctx context.Context) ([][]domain.Coordinate, error) {
	var groups [][]domain.Coordinate
	if uc.fromCache(ctx, domain.CacheKeyExistingGeoreferences, &groups) {
		return groups, nil
	}

	groups, err := uc.coordRepo.GetExistingGeoreferences(ctx)
	if err != nil {
		return nil, fmt.Errorf("get existing georeferences: %w", err)
	}

	uc.toCache(ctx, domain.CacheKeyExistingGeoreferences, groups, uc.cacheCfg.GeoreferencesCacheTTL)
	return groups, nil
}

// RefreshGeoreferenceCache перечитывает геопривязки из БД и кладёт их в кеш
func (uc *CoordinateUseCase) RefreshGeoreferenceCache(ctx context.Context) error {
	groups, err := uc.coordRepo.GetExistingGeoreferences(ctx)
	if err != nil {
		return fmt.Errorf("refresh existing georeferences: %w", err)
	}
	if err := uc.store(ctx, domain.CacheKeyExistingGeoreferences, groups, uc.cacheCfg.GeoreferencesCacheTTL); err != nil {
		return err
	}

	docs, err := uc.coordRepo.GetAllDocumentsCoordinates(ctx)
	if err != nil {
		return fmt.Errorf("refresh documents coordinates: %w", err)
	}
	return uc.store(ctx, domain.CacheKeyAllCoordinates, docs, uc.cacheCfg.CoordinatesCacheTTL)
}

// SetDocumentCoordinates записывает геопривязку; пустой список - вся муниципальная территория
func (uc *CoordinateUseCase) SetDocumentCoordinates(ctx context.Context, documentID int64, points []domain.LatLng) error {
	err := uc.coordRepo.SetDocumentCoordinates(ctx, documentID, points)
	metrics.CoordinateWrites.WithLabelValues(domain.GeoreferenceSet, metrics.Result(err)).Inc()
	if err != nil {
		return fmt.Errorf("set coordinates of document %d: %w", documentID, err)
	}

	uc.logger.Info("Document georeference set",
		zap.Int64("document_id", documentID),
		zap.Int("points", len(points)))
	uc.notifier.changed(ctx, documentID, domain.GeoreferenceSet, len(points))
	return nil
}

// UpdateDocumentCoordinates заменяет геопривязку документа
func (uc *CoordinateUseCase) UpdateDocumentCoordinates(ctx context.Context, documentID int64, points []domain.LatLng) error {
	err := uc.coordRepo.UpdateDocumentCoordinates(ctx, documentID, points)
	metrics.CoordinateWrites.WithLabelValues(domain.GeoreferenceUpdated, metrics.Result(err)).Inc()
	if err != nil {
		return fmt.Errorf("update coordinates of document %d: %w", documentID, err)
	}

	uc.logger.Info("Document georeference updated",
		zap.Int64("document_id", documentID),
		zap.Int("points", len(points)))
	uc.notifier.changed(ctx, documentID, domain.GeoreferenceUpdated, len(points))
	return nil
}

// DeleteDocumentCoordinatesByID удаляет геопривязку документа
func (uc *CoordinateUseCase) DeleteDocumentCoordinatesByID(ctx context.Context, documentID int64) error {
	err := uc.coordRepo.DeleteDocumentCoordinatesByID(ctx, documentID)
	metrics.CoordinateWrites.WithLabelValues(domain.GeoreferenceDeleted, metrics.Result(err)).Inc()
	if err != nil {
		return fmt.Errorf("delete coordinates of document %d: %w", documentID, err)
	}

	uc.logger.Info("Document georeference deleted", zap.Int64("document_id", documentID))
	uc.notifier.changed(ctx, documentID, domain.GeoreferenceDeleted, 0)
	return nil
}

// fromCache decodes a cached value into dst and reports a hit; cache faults count as misses.
func (uc *CoordinateUseCase) fromCache(ctx context.Context, key string, dst interface{}) bool {
	data, err := uc.cacheRepo.Get(ctx, key)
	if err != nil {
		uc.logger.Warn("Failed to read cache", zap.String("key", key), zap.Error(err))
		metrics.CacheMisses.WithLabelValues(key).Inc()
		return false
	}
	if data == nil {
		metrics.CacheMisses.WithLabelValues(key).Inc()
		return false
	}

	if err := json.Unmarshal(data, dst); err != nil {
		uc.logger.Warn("Failed to decode cached value", zap.String("key", key), zap.Error(err))
		metrics.CacheMisses.WithLabelValues(key).Inc()
		return false
	}

	metrics.CacheHits.WithLabelValues(key).Inc()
	return true
}

func (uc *CoordinateUseCase) toCache(ctx context.Context, key string, value interface{}, ttl time.Duration) {
	if err := uc.store(ctx, key, value, ttl); err != nil {
		uc.logger.Warn("Failed to cache value", zap.String("key", key), zap.Error(err))
	}
}

func (uc *CoordinateUseCase) store(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}
	if err := uc.cacheRepo.Set(ctx, key, data, ttl); err != nil {
		return fmt.Errorf("cache %s: %w", key, err)
	}
	return nil
}
