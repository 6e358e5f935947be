package sqlstore

import (
	"context"
	"fmt"

	"github.com/planning-docs-service/internal/domain"
	"github.com/planning-docs-service/internal/domain/repository"
	apperrors "github.com/planning-docs-service/internal/pkg/errors"
)

type catalogRepository struct {
	db *DB
}

// NewCatalogRepository - справочники масштабов и типов документов
func NewCatalogRepository(db *DB) repository.CatalogRepository {
	return &catalogRepository{db: db}
}

func (r *catalogRepository) GetScales(ctx context.Context) ([]domain.Scale, error) {
	var scales []domain.Scale
	if err := r.db.SelectContext(ctx, &scales, `SELECT id, name FROM scales ORDER BY id`); err != nil {
		return nil, fmt.Errorf("list scales: %w", err)
	}
	if len(scales) == 0 {
		return nil, apperrors.ErrScalesNotFound
	}
	return scales, nil
}

func (r *catalogRepository) AddScale(ctx context.Context, name string) (int64, error) {
	return r.insertName(ctx, "scales", name)
}

func (r *catalogRepository) GetTypes(ctx context.Context) ([]domain.DocumentType, error) {
	var types []domain.DocumentType
	if err := r.db.SelectContext(ctx, &types, `SELECT id, name FROM document_types ORDER BY id`); err != nil {
		return nil, fmt.Errorf("list document types: %w", err)
	}
	if len(types) == 0 {
		return nil, apperrors.ErrTypesNotFound
	}
	return types, nil
}

func (r *catalogRepository) AddType(ctx context.Context, name string) (int64, error) {
	return r.insertName(ctx, "document_types", name)
}

// insertName adds a row to one of the name-only catalog tables; table is never user input.
func (r *catalogRepository) insertName(ctx context.Context, table, name string) (int64, error) {
	query := r.db.Rebind(`INSERT INTO ` + table + ` (name) VALUES (?) RETURNING id`)

	var id int64
	if err := r.db.QueryRowxContext(ctx, query, name).Scan(&id); err != nil {
		return 0, fmt.Errorf("insert into %s: %w", table, err)
	}
	return id, nil
}
