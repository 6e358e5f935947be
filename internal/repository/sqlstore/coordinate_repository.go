package sqlstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/planning-docs-service/internal/domain"
	"github.com/planning-docs-service/internal/domain/repository"
	apperrors "github.com/planning-docs-service/internal/pkg/errors"
	"go.uber.org/zap"
)

type coordinateRepository struct {
	db     *DB
	logger *zap.Logger
}

// NewCoordinateRepository создает новый экземпляр coordinate repository
func NewCoordinateRepository(db *DB) repository.CoordinateRepository {
	return &coordinateRepository{
		db:     db,
		logger: db.logger,
	}
}

// docCoordinateRow - одна строка join'а documents x coordinates x stakeholders
type docCoordinateRow struct {
	DocumentID       int64    `db:"document_id"`
	Title            string   `db:"title"`
	Scale            string   `db:"scale"`
	IssuanceDate     string   `db:"issuance_date"`
	Type             string   `db:"type"`
	Language         *string  `db:"language"`
	Pages            *int     `db:"pages"`
	Description      *string  `db:"description"`
	StakeholderID    int64    `db:"stakeholder_id"`
	StakeholderName  string   `db:"stakeholder_name"`
	StakeholderColor string   `db:"stakeholder_color"`
	CoordinateID     int64    `db:"coordinate_id"`
	PointOrder       *int     `db:"point_order"`
	Latitude         *float64 `db:"latitude"`
	Longitude        *float64 `db:"longitude"`
	MunicipalityArea int      `db:"municipality_area"`
}

const allDocumentsCoordinatesQuery = `
	SELECT
		d.id AS document_id,
		d.title,
		d.scale,
		d.issuance_date,
		d.type,
		d.language,
		d.pages,
		d.description,
		s.id AS stakeholder_id,
		s.name AS stakeholder_name,
		s.color AS stakeholder_color,
		c.id AS coordinate_id,
		c.point_order,
		c.latitude,
		c.longitude,
		c.municipality_area
	FROM documents d
	JOIN document_coordinates c ON c.document_id = d.id
	JOIN stakeholders_documents sd ON sd.id_document = d.id
	JOIN stakeholders s ON s.id = sd.id_stakeholder
	ORDER BY c.point_order, d.id, s.id
`

// GetAllDocumentsCoordinates возвращает все документы, у которых есть хотя бы один
// стейкхолдер и одна координата. Join даёт строку на каждую пару стейкхолдер x точка,
// поэтому дочерние списки собираются без повторов, в порядке строк (point_order).
func (r *coordinateRepository) GetAllDocumentsCoordinates(ctx context.Context) ([]domain.DocCoordinates, error) {
	var rows []docCoordinateRow
	if err := r.db.SelectContext(ctx, &rows, allDocumentsCoordinatesQuery); err != nil {
		return nil, fmt.Errorf("query documents coordinates: %w", err)
	}

	return groupDocCoordinates(rows), nil
}

// groupDocCoordinates re-aggregates joined rows by document id in a single pass.
func groupDocCoordinates(rows []docCoordinateRow) []domain.DocCoordinates {
	result := make([]domain.DocCoordinates, 0)
	index := make(map[int64]int)
	seenStakeholders := make(map[int64]map[int64]struct{})
	seenCoordinates := make(map[int64]map[int64]struct{})

	for _, row := range rows {
		pos, ok := index[row.DocumentID]
		if !ok {
			result = append(result, domain.DocCoordinates{
				Document: domain.Document{
					ID:           row.DocumentID,
					Title:        row.Title,
					Scale:        row.Scale,
					IssuanceDate: row.IssuanceDate,
					Type:         row.Type,
					Language:     row.Language,
					Pages:        row.Pages,
					Description:  row.Description,
					Stakeholders: make([]domain.Stakeholder, 0),
				},
				Coordinates: make([]domain.Coordinate, 0),
			})
			pos = len(result) - 1
			index[row.DocumentID] = pos
			seenStakeholders[row.DocumentID] = make(map[int64]struct{})
			seenCoordinates[row.DocumentID] = make(map[int64]struct{})
		}

		doc := &result[pos]

		if _, seen := seenCoordinates[row.DocumentID][row.CoordinateID]; !seen {
			seenCoordinates[row.DocumentID][row.CoordinateID] = struct{}{}
			doc.Coordinates = append(doc.Coordinates, domain.Coordinate{
				ID:               row.CoordinateID,
				DocumentID:       row.DocumentID,
				PointOrder:       row.PointOrder,
				Latitude:         row.Latitude,
				Longitude:        row.Longitude,
				MunicipalityArea: row.MunicipalityArea,
			})
		}

		if _, seen := seenStakeholders[row.DocumentID][row.StakeholderID]; !seen {
			seenStakeholders[row.DocumentID][row.StakeholderID] = struct{}{}
			doc.Stakeholders = append(doc.Stakeholders, domain.Stakeholder{
				ID:    row.StakeholderID,
				Name:  row.StakeholderName,
				Color: row.StakeholderColor,
			})
		}
	}

	return result
}

// SetDocumentCoordinates записывает геопривязку документа в одной транзакции.
// Если у документа уже есть строки координат - ErrGeoreferenceExists, замена идёт через Update.
func (r *coordinateRepository) SetDocumentCoordinates(ctx context.Context, documentID int64, points []domain.LatLng) error {
	err := r.db.withTx(ctx, func(tx *sqlx.Tx) error {
		var count int
		existsQuery := tx.Rebind(`SELECT COUNT(*) FROM document_coordinates WHERE document_id = ?`)
		if err := tx.GetContext(ctx, &count, existsQuery, documentID); err != nil {
			return fmt.Errorf("check coordinates of document %d: %w", documentID, err)
		}
		if count > 0 {
			return apperrors.ErrGeoreferenceExists
		}
		return insertGeoreference(ctx, tx, documentID, points)
	})
	if errors.Is(err, apperrors.ErrGeoreferenceExists) {
		r.logger.Debug("document already georeferenced", zap.Int64("document_id", documentID))
		return err
	}
	if err != nil {
		r.logger.Error("failed to set document coordinates",
			zap.Int64("document_id", documentID),
			zap.Int("points", len(points)),
			zap.Error(err))
		return err
	}

	r.logger.Debug("document coordinates set",
		zap.Int64("document_id", documentID),
		zap.Int("points", len(points)))
	return nil
}

// UpdateDocumentCoordinates заменяет геопривязку: delete + insert в одной транзакции,
// при ошибке вставки прежние точки сохраняются
func (r *coordinateRepository) UpdateDocumentCoordinates(ctx context.Context, documentID int64, points []domain.LatLng) error {
	err := r.db.withTx(ctx, func(tx *sqlx.Tx) error {
		if err := deleteGeoreference(ctx, tx, documentID); err != nil {
			return err
		}
		return insertGeoreference(ctx, tx, documentID, points)
	})
	if err != nil {
		r.logger.Error("failed to update document coordinates",
			zap.Int64("document_id", documentID),
			zap.Int("points", len(points)),
			zap.Error(err))
		return err
	}

	return nil
}

// DeleteDocumentCoordinatesByID удаляет все точки документа
func (r *coordinateRepository) DeleteDocumentCoordinatesByID(ctx context.Context, documentID int64) error {
	query := r.db.Rebind(`DELETE FROM document_coordinates WHERE document_id = ?`)
	if _, err := r.db.ExecContext(ctx, query, documentID); err != nil {
		return fmt.Errorf("delete coordinates of document %d: %w", documentID, err)
	}
	return nil
}

const coordinateColumns = `id, document_id, point_order, latitude, longitude, municipality_area`

// GetExistingGeoreferences возвращает точки всех документов, кроме муниципальных маркеров,
// сгруппированные по документу и упорядоченные по point_order
func (r *coordinateRepository) GetExistingGeoreferences(ctx context.Context) ([][]domain.Coordinate, error) {
	query := `SELECT ` + coordinateColumns + `
		FROM document_coordinates
		WHERE municipality_area = 0
		ORDER BY document_id, point_order`

	var coords []domain.Coordinate
	if err := r.db.SelectContext(ctx, &coords, query); err != nil {
		return nil, fmt.Errorf("query existing georeferences: %w", err)
	}

	groups := make([][]domain.Coordinate, 0)
	for i, c := range coords {
		if i == 0 || coords[i-1].DocumentID != c.DocumentID {
			groups = append(groups, make([]domain.Coordinate, 0, 1))
		}
		last := len(groups) - 1
		groups[last] = append(groups[last], c)
	}

	return groups, nil
}

// GetCoordinatesByDocument возвращает координаты документа по point_order
func (r *coordinateRepository) GetCoordinatesByDocument(ctx context.Context, documentID int64) ([]domain.Coordinate, error) {
	query := r.db.Rebind(`SELECT ` + coordinateColumns + `
		FROM document_coordinates
		WHERE document_id = ?
		ORDER BY point_order`)

	coords := make([]domain.Coordinate, 0)
	if err := r.db.SelectContext(ctx, &coords, query, documentID); err != nil {
		return nil, fmt.Errorf("query coordinates of document %d: %w", documentID, err)
	}
	return coords, nil
}

// GetGeoreferenceStats считает документы по типу геопривязки
func (r *coordinateRepository) GetGeoreferenceStats(ctx context.Context) (*domain.GeoreferenceStats, error) {
	var ids []int64
	if err := r.db.SelectContext(ctx, &ids, `SELECT id FROM documents ORDER BY id`); err != nil {
		return nil, fmt.Errorf("query document ids: %w", err)
	}

	var coords []domain.Coordinate
	query := `SELECT ` + coordinateColumns + ` FROM document_coordinates ORDER BY document_id, point_order`
	if err := r.db.SelectContext(ctx, &coords, query); err != nil {
		return nil, fmt.Errorf("query coordinates: %w", err)
	}

	byDocument := make(map[int64][]domain.Coordinate, len(ids))
	for _, c := range coords {
		byDocument[c.DocumentID] = append(byDocument[c.DocumentID], c)
	}

	stats := &domain.GeoreferenceStats{}
	for _, id := range ids {
		stats.Add(domain.ClassifyGeoreference(byDocument[id]))
	}

	return stats, nil
}

// insertGeoreference пишет точки последовательно, point_order = индекс + 1.
// Пустой список записывает единственный маркер municipality_area = 1.
func insertGeoreference(ctx context.Context, tx *sqlx.Tx, documentID int64, points []domain.LatLng) error {
	if len(points) == 0 {
		query := tx.Rebind(`INSERT INTO document_coordinates
			(document_id, point_order, latitude, longitude, municipality_area)
			VALUES (?, NULL, NULL, NULL, 1)`)
		if _, err := tx.ExecContext(ctx, query, documentID); err != nil {
			return fmt.Errorf("insert municipality area for document %d: %w", documentID, err)
		}
		return nil
	}

	query := tx.Rebind(`INSERT INTO document_coordinates
		(document_id, point_order, latitude, longitude, municipality_area)
		VALUES (?, ?, ?, ?, 0)`)

	stmt, err := tx.PreparexContext(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare coordinate insert: %w", err)
	}
	defer stmt.Close()

	for i, p := range points {
		if _, err := stmt.ExecContext(ctx, documentID, i+1, p.Lat, p.Lng); err != nil {
			return fmt.Errorf("insert point %d for document %d: %w", i+1, documentID, err)
		}
	}

	return nil
}

func deleteGeoreference(ctx context.Context, tx *sqlx.Tx, documentID int64) error {
	query := tx.Rebind(`DELETE FROM document_coordinates WHERE document_id = ?`)
	if _, err := tx.ExecContext(ctx, query, documentID); err != nil {
		return fmt.Errorf("delete coordinates of document %d: %w", documentID, err)
	}
	return nil
}
