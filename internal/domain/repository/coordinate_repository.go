package repository

import (
	"context"

	"github.com/planning-docs-service/internal/domain"
)

// CoordinateRepository определяет методы для работы с геопривязками документов
type CoordinateRepository interface {
	// GetAllDocumentsCoordinates возвращает документы со стейкхолдерами и упорядоченными координатами
	GetAllDocumentsCoordinates(ctx context.Context) ([]domain.DocCoordinates, error)

	// SetDocumentCoordinates записывает точки документа; пустой список означает всю муниципальную территорию
	SetDocumentCoordinates(ctx context.Context, documentID int64, points []domain.LatLng) error

	// UpdateDocumentCoordinates удаляет все точки документа и записывает новые
	UpdateDocumentCoordinates(ctx context.Context, documentID int64, points []domain.LatLng) error

	// DeleteDocumentCoordinatesByID удаляет все точки документа (идемпотентно)
	DeleteDocumentCoordinatesByID(ctx context.Context, documentID int64) error

	// GetExistingGeoreferences возвращает списки точек по документам, без муниципальных маркеров
	GetExistingGeoreferences(ctx context.Context) ([][]domain.Coordinate, error)

	// GetCoordinatesByDocument возвращает координаты одного документа по point_order
	GetCoordinatesByDocument(ctx context.Context, documentID int64) ([]domain.Coordinate, error)

	// GetGeoreferenceStats считает документы по типу геопривязки
	GetGeoreferenceStats(ctx context.Context) (*domain.GeoreferenceStats, error)
}
