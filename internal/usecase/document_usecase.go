package usecase

import (
	"context"
	"fmt"

	"github.com/planning-docs-service/internal/domain"
	"github.com/planning-docs-service/internal/domain/repository"
	"go.uber.org/zap"
)

// DocumentUseCase обрабатывает бизнес-логику документов
type DocumentUseCase struct {
	docRepo  repository.DocumentRepository
	notifier *georeferenceNotifier
	logger   *zap.Logger
}

func NewDocumentUseCase(
	docRepo repository.DocumentRepository,
	cacheRepo repository.CacheRepository,
	streamRepo repository.StreamRepository,
	logger *zap.Logger,
) *DocumentUseCase {
	return &DocumentUseCase{
		docRepo: docRepo,
		notifier: &georeferenceNotifier{
			cacheRepo:  cacheRepo,
			streamRepo: streamRepo,
			logger:     logger,
		},
		logger: logger,
	}
}

// Create создает документ; геопривязка, если задана, пишется в той же транзакции
func (uc *DocumentUseCase) Create(ctx context.Context, doc domain.NewDocument) (int64, error) {
	id, err := uc.docRepo.Create(ctx, doc)
	if err != nil {
		return 0, fmt.Errorf("create document: %w", err)
	}

	if doc.HasGeoreference() {
		points := len(doc.Coordinates)
		if doc.MunicipalityArea {
			points = 0
		}
		uc.notifier.changed(ctx, id, domain.GeoreferenceSet, points)
		return id, nil
	}

	// total_documents и without_location меняются и без геопривязки
	if err := uc.notifier.cacheRepo.Delete(ctx, domain.CacheKeyGeoreferenceStats); err != nil {
		uc.logger.Warn("Failed to invalidate georeference stats", zap.Int64("document_id", id), zap.Error(err))
	}
	return id, nil
}

func (uc *DocumentUseCase) GetByID(ctx context.Context, id int64) (*domain.Document, error) {
	return uc.docRepo.GetByID(ctx, id)
}

func (uc *DocumentUseCase) List(ctx context.Context) ([]domain.Document, error) {
	docs, err := uc.docRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	return docs, nil
}

// UpdateDescription обновляет описание; изменение видно в кешированном списке координат
func (uc *DocumentUseCase) UpdateDescription(ctx context.Context, id int64, description string) error {
	if err := uc.docRepo.UpdateDescription(ctx, id, description); err != nil {
		return err
	}

	if err := uc.notifier.cacheRepo.Delete(ctx, domain.CacheKeyAllCoordinates); err != nil {
		uc.logger.Warn("Failed to invalidate coordinates cache", zap.Int64("document_id", id), zap.Error(err))
	}
	return nil
}
