package usecase

import (
	"context"
	"fmt"

	"github.com/planning-docs-service/internal/domain"
	"github.com/planning-docs-service/internal/domain/repository"
	"go.uber.org/zap"
)

// LinkUseCase - связи между документами
type LinkUseCase struct {
	linkRepo repository.LinkRepository
	docRepo  repository.DocumentRepository
	logger   *zap.Logger
}

func NewLinkUseCase(linkRepo repository.LinkRepository, docRepo repository.DocumentRepository, logger *zap.Logger) *LinkUseCase {
	return &LinkUseCase{linkRepo: linkRepo, docRepo: docRepo, logger: logger}
}

// Create связывает два существующих документа
func (uc *LinkUseCase) Create(ctx context.Context, link domain.Link) (int64, error) {
	for _, id := range []int64{link.Doc1, link.Doc2} {
		if _, err := uc.docRepo.GetByID(ctx, id); err != nil {
			return 0, err
		}
	}

	id, err := uc.linkRepo.Create(ctx, link)
	if err != nil {
		return 0, fmt.Errorf("create link: %w", err)
	}

	uc.logger.Info("Documents linked",
		zap.Int64("link_id", id),
		zap.Int64("doc1", link.Doc1),
		zap.Int64("doc2", link.Doc2),
		zap.String("link_type", link.LinkType))
	return id, nil
}

// GetByDocument возвращает связи документа
func (uc *LinkUseCase) GetByDocument(ctx context.Context, documentID int64) ([]domain.Link, error) {
	if _, err := uc.docRepo.GetByID(ctx, documentID); err != nil {
		return nil, err
	}
	return uc.linkRepo.GetByDocument(ctx, documentID)
}

func (uc *LinkUseCase) Delete(ctx context.Context, id int64) error {
	return uc.linkRepo.Delete(ctx, id)
}
