package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/planning-docs-service/internal/domain"
	"github.com/planning-docs-service/internal/domain/repository"
	apperrors "github.com/planning-docs-service/internal/pkg/errors"
	"go.uber.org/zap"
)

type documentRepository struct {
	db     *DB
	logger *zap.Logger
}

// NewDocumentRepository создает новый экземпляр document repository
func NewDocumentRepository(db *DB) repository.DocumentRepository {
	return &documentRepository{
		db:     db,
		logger: db.logger,
	}
}

const documentColumns = `id, title, scale, issuance_date, type, language, pages, description`

// Create создает документ, связи со стейкхолдерами и геопривязку в одной транзакции
func (r *documentRepository) Create(ctx context.Context, doc domain.NewDocument) (int64, error) {
	var id int64

	err := r.db.withTx(ctx, func(tx *sqlx.Tx) error {
		query := tx.Rebind(`INSERT INTO documents
			(title, scale, issuance_date, type, language, pages, description)
			VALUES (?, ?, ?, ?, ?, ?, ?)
			RETURNING id`)

		if err := tx.QueryRowxContext(ctx, query,
			doc.Title, doc.Scale, doc.IssuanceDate, doc.Type,
			doc.Language, doc.Pages, doc.Description,
		).Scan(&id); err != nil {
			return fmt.Errorf("insert document: %w", err)
		}

		linkQuery := tx.Rebind(`INSERT INTO stakeholders_documents (id_stakeholder, id_document) VALUES (?, ?)`)
		for _, stakeholderID := range doc.StakeholderIDs {
			if _, err := tx.ExecContext(ctx, linkQuery, stakeholderID, id); err != nil {
				return fmt.Errorf("link stakeholder %d to document %d: %w", stakeholderID, id, err)
			}
		}

		if !doc.HasGeoreference() {
			return nil
		}

		points := doc.Coordinates
		if doc.MunicipalityArea {
			points = nil
		}
		return insertGeoreference(ctx, tx, id, points)
	})
	if err != nil {
		r.logger.Error("failed to create document",
			zap.String("title", doc.Title),
			zap.Error(err))
		return 0, err
	}

	r.logger.Info("document created",
		zap.Int64("document_id", id),
		zap.Int("stakeholders", len(doc.StakeholderIDs)))
	return id, nil
}

// GetByID возвращает документ со стейкхолдерами
func (r *documentRepository) GetByID(ctx context.Context, id int64) (*domain.Document, error) {
	query := r.db.Rebind(`SELECT ` + documentColumns + ` FROM documents WHERE id = ?`)

	var doc domain.Document
	if err := r.db.GetContext(ctx, &doc, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrDocumentNotFound
		}
		return nil, fmt.Errorf("get document %d: %w", id, err)
	}

	stakeholders, err := r.stakeholdersByDocument(ctx, []int64{id})
	if err != nil {
		return nil, err
	}
	doc.Stakeholders = stakeholders[id]
	if doc.Stakeholders == nil {
		doc.Stakeholders = make([]domain.Stakeholder, 0)
	}

	return &doc, nil
}

// List возвращает все документы по возрастанию id
func (r *documentRepository) List(ctx context.Context) ([]domain.Document, error) {
	docs := make([]domain.Document, 0)
	if err := r.db.SelectContext(ctx, &docs, `SELECT `+documentColumns+` FROM documents ORDER BY id`); err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	if len(docs) == 0 {
		return docs, nil
	}

	stakeholders, err := r.stakeholdersByDocument(ctx, nil)
	if err != nil {
		return nil, err
	}

	for i := range docs {
		docs[i].Stakeholders = stakeholders[docs[i].ID]
		if docs[i].Stakeholders == nil {
			docs[i].Stakeholders = make([]domain.Stakeholder, 0)
		}
	}

	return docs, nil
}

// UpdateDescription обновляет описание документа
func (r *documentRepository) UpdateDescription(ctx context.Context, id int64, description string) error {
	query := r.db.Rebind(`UPDATE documents SET description = ? WHERE id = ?`)

	res, err := r.db.ExecContext(ctx, query, description, id)
	if err != nil {
		return fmt.Errorf("update description of document %d: %w", id, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update description of document %d: %w", id, err)
	}
	if affected == 0 {
		return apperrors.ErrDocumentNotFound
	}

	return nil
}

type documentStakeholderRow struct {
	DocumentID int64  `db:"id_document"`
	ID         int64  `db:"id"`
	Name       string `db:"name"`
	Color      string `db:"color"`
}

// stakeholdersByDocument loads stakeholders for the given documents, or for all when ids is empty.
func (r *documentRepository) stakeholdersByDocument(ctx context.Context, ids []int64) (map[int64][]domain.Stakeholder, error) {
	query := `SELECT sd.id_document, s.id, s.name, s.color
		FROM stakeholders_documents sd
		JOIN stakeholders s ON s.id = sd.id_stakeholder`
	var args []interface{}

	if len(ids) > 0 {
		var err error
		query, args, err = sqlx.In(query+` WHERE sd.id_document IN (?)`, ids)
		if err != nil {
			return nil, fmt.Errorf("build stakeholders query: %w", err)
		}
	}
	query = r.db.Rebind(query + ` ORDER BY sd.id_document, s.id`)

	var rows []documentStakeholderRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("query document stakeholders: %w", err)
	}

	result := make(map[int64][]domain.Stakeholder)
	for _, row := range rows {
		result[row.DocumentID] = append(result[row.DocumentID], domain.Stakeholder{
			ID:    row.ID,
			Name:  row.Name,
			Color: row.Color,
		})
	}
	return result, nil
}
