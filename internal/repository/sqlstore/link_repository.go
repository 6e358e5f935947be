package sqlstore

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/planning-docs-service/internal/domain"
	"github.com/planning-docs-service/internal/domain/repository"
	apperrors "github.com/planning-docs-service/internal/pkg/errors"
	"go.uber.org/zap"
)

type linkRepository struct {
	db     *DB
	logger *zap.Logger
}

func NewLinkRepository(db *DB) repository.LinkRepository {
	return &linkRepository{db: db, logger: db.logger}
}

// Create добавляет связь; та же пара документов с тем же типом в любом направлении - ErrLinkExists
func (r *linkRepository) Create(ctx context.Context, link domain.Link) (int64, error) {
	var id int64

	err := r.db.withTx(ctx, func(tx *sqlx.Tx) error {
		existsQuery := tx.Rebind(`SELECT COUNT(*) FROM document_links
			WHERE link_type = ?
			AND ((doc1 = ? AND doc2 = ?) OR (doc1 = ? AND doc2 = ?))`)

		var count int
		if err := tx.GetContext(ctx, &count, existsQuery,
			link.LinkType, link.Doc1, link.Doc2, link.Doc2, link.Doc1,
		); err != nil {
			return fmt.Errorf("check link: %w", err)
		}
		if count > 0 {
			return apperrors.ErrLinkExists
		}

		insertQuery := tx.Rebind(`INSERT INTO document_links (doc1, doc2, link_type) VALUES (?, ?, ?) RETURNING id`)
		if err := tx.QueryRowxContext(ctx, insertQuery, link.Doc1, link.Doc2, link.LinkType).Scan(&id); err != nil {
			return fmt.Errorf("insert link: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	r.logger.Debug("link created",
		zap.Int64("link_id", id),
		zap.Int64("doc1", link.Doc1),
		zap.Int64("doc2", link.Doc2),
		zap.String("link_type", link.LinkType))
	return id, nil
}

// GetByDocument возвращает связи, в которых участвует документ
func (r *linkRepository) GetByDocument(ctx context.Context, documentID int64) ([]domain.Link, error) {
	query := r.db.Rebind(`SELECT id, doc1, doc2, link_type FROM document_links
		WHERE doc1 = ? OR doc2 = ?
		ORDER BY id`)

	links := make([]domain.Link, 0)
	if err := r.db.SelectContext(ctx, &links, query, documentID, documentID); err != nil {
		return nil, fmt.Errorf("list links of document %d: %w", documentID, err)
	}
	return links, nil
}

func (r *linkRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, r.db.Rebind(`DELETE FROM document_links WHERE id = ?`), id)
	if err != nil {
		return fmt.Errorf("delete link %d: %w", id, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete link %d: %w", id, err)
	}
	if affected == 0 {
		return apperrors.ErrLinkNotFound
	}
	return nil
}
