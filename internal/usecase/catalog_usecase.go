package usecase

import (
	"context"

	"github.com/planning-docs-service/internal/domain"
	"github.com/planning-docs-service/internal/domain/repository"
	"go.uber.org/zap"
)

// StakeholderUseCase - стейкхолдеры документов
type StakeholderUseCase struct {
	repo   repository.StakeholderRepository
	logger *zap.Logger
}

func NewStakeholderUseCase(repo repository.StakeholderRepository, logger *zap.Logger) *StakeholderUseCase {
	return &StakeholderUseCase{repo: repo, logger: logger}
}

func (uc *StakeholderUseCase) GetAll(ctx context.Context) ([]domain.Stakeholder, error) {
	return uc.repo.GetAll(ctx)
}

func (uc *StakeholderUseCase) Create(ctx context.Context, name, color string) (int64, error) {
	id, err := uc.repo.Create(ctx, name, color)
	if err != nil {
		return 0, err
	}
	uc.logger.Info("Stakeholder created", zap.Int64("stakeholder_id", id), zap.String("name", name))
	return id, nil
}

// CatalogUseCase - справочники масштабов и типов документов
type CatalogUseCase struct {
	repo   repository.CatalogRepository
	logger *zap.Logger
}

func NewCatalogUseCase(repo repository.CatalogRepository, logger *zap.Logger) *CatalogUseCase {
	return &CatalogUseCase{repo: repo, logger: logger}
}

func (uc *CatalogUseCase) GetScales(ctx context.Context) ([]domain.Scale, error) {
	return uc.repo.GetScales(ctx)
}

func (uc *CatalogUseCase) AddScale(ctx context.Context, name string) (int64, error) {
	return uc.repo.AddScale(ctx, name)
}

func (uc *CatalogUseCase) GetTypes(ctx context.Context) ([]domain.DocumentType, error) {
	return uc.repo.GetTypes(ctx)
}

func (uc *CatalogUseCase) AddType(ctx context.Context, name string) (int64, error) {
	return uc.repo.AddType(ctx, name)
}
