package sqlstore

import (
	"context"
	"fmt"

	"github.com/planning-docs-service/internal/domain"
	"github.com/planning-docs-service/internal/domain/repository"
	apperrors "github.com/planning-docs-service/internal/pkg/errors"
)

type stakeholderRepository struct {
	db *DB
}

func NewStakeholderRepository(db *DB) repository.StakeholderRepository {
	return &stakeholderRepository{db: db}
}

// GetAll возвращает всех стейкхолдеров; пустая таблица - ErrStakeholdersNotFound
func (r *stakeholderRepository) GetAll(ctx context.Context) ([]domain.Stakeholder, error) {
	var stakeholders []domain.Stakeholder
	if err := r.db.SelectContext(ctx, &stakeholders, `SELECT id, name, color FROM stakeholders ORDER BY id`); err != nil {
		return nil, fmt.Errorf("list stakeholders: %w", err)
	}
	if len(stakeholders) == 0 {
		return nil, apperrors.ErrStakeholdersNotFound
	}
	return stakeholders, nil
}

func (r *stakeholderRepository) Create(ctx context.Context, name, color string) (int64, error) {
	query := r.db.Rebind(`INSERT INTO stakeholders (name, color) VALUES (?, ?) RETURNING id`)

	var id int64
	if err := r.db.QueryRowxContext(ctx, query, name, color).Scan(&id); err != nil {
		return 0, fmt.Errorf("insert stakeholder %q: %w", name, err)
	}
	return id, nil
}
