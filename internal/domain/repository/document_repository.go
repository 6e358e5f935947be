package repository

import (
	"context"

	"github.com/planning-docs-service/internal/domain"
)

// DocumentRepository определяет методы для работы с документами
type DocumentRepository interface {
	// Create создает документ со стейкхолдерами и геопривязкой в одной транзакции
	Create(ctx context.Context, doc domain.NewDocument) (int64, error)

	// GetByID возвращает документ со стейкхолдерами
	GetByID(ctx context.Context, id int64) (*domain.Document, error)

	// List возвращает все документы
	List(ctx context.Context) ([]domain.Document, error)

	// UpdateDescription обновляет описание документа
	UpdateDescription(ctx context.Context, id int64, description string) error
}

// StakeholderRepository определяет методы для работы со стейкхолдерами
type StakeholderRepository interface {
	GetAll(ctx context.Context) ([]domain.Stakeholder, error)
	Create(ctx context.Context, name, color string) (int64, error)
}

// CatalogRepository определяет методы для справочников масштабов и типов
type CatalogRepository interface {
	GetScales(ctx context.Context) ([]domain.Scale, error)
	AddScale(ctx context.Context, name string) (int64, error)
	GetTypes(ctx context.Context) ([]domain.DocumentType, error)
	AddType(ctx context.Context, name string) (int64, error)
}

// LinkRepository определяет методы для работы со связями документов
type LinkRepository interface {
	Create(ctx context.Context, link domain.Link) (int64, error)
	GetByDocument(ctx context.Context, documentID int64) ([]domain.Link, error)
	Delete(ctx context.Context, id int64) error
}

// UserRepository определяет методы для работы с пользователями
type UserRepository interface {
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	Create(ctx context.Context, user domain.User) (int64, error)
}
