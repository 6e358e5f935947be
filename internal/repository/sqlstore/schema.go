package sqlstore

import (
	"context"
	"fmt"

	"github.com/planning-docs-service/internal/config"
	"go.uber.org/zap"
)

// Migrate creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func (db *DB) Migrate(ctx context.Context) error {
	schema := sqliteSchema
	if db.driver == config.DriverPostgres {
		schema = postgresSchema
	}

	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	db.logger.Info("Database schema ready", zap.String("driver", db.driver))
	return nil
}

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS documents (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    title TEXT NOT NULL,
    scale TEXT NOT NULL,
    issuance_date TEXT NOT NULL,
    type TEXT NOT NULL,
    language TEXT,
    pages INTEGER,
    description TEXT
);

CREATE TABLE IF NOT EXISTS stakeholders (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL UNIQUE,
    color TEXT NOT NULL DEFAULT '#000000'
);

CREATE TABLE IF NOT EXISTS stakeholders_documents (
    id_stakeholder INTEGER NOT NULL REFERENCES stakeholders(id) ON DELETE CASCADE,
    id_document INTEGER NOT NULL REFERENCES documents(id) ON DELETE CASCADE,
    PRIMARY KEY (id_stakeholder, id_document)
);

CREATE TABLE IF NOT EXISTS document_coordinates (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    document_id INTEGER NOT NULL REFERENCES documents(id) ON DELETE CASCADE,
    point_order INTEGER,
    latitude REAL,
    longitude REAL,
    municipality_area INTEGER NOT NULL DEFAULT 0 CHECK (municipality_area IN (0, 1))
);

CREATE INDEX IF NOT EXISTS idx_document_coordinates_document ON document_coordinates(document_id, point_order);

CREATE TABLE IF NOT EXISTS scales (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL UNIQUE
);

CREATE TABLE IF NOT EXISTS document_types (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL UNIQUE
);

CREATE TABLE IF NOT EXISTS document_links (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    doc1 INTEGER NOT NULL REFERENCES documents(id) ON DELETE CASCADE,
    doc2 INTEGER NOT NULL REFERENCES documents(id) ON DELETE CASCADE,
    link_type TEXT NOT NULL,
    UNIQUE (doc1, doc2, link_type)
);

CREATE TABLE IF NOT EXISTS users (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    username TEXT NOT NULL UNIQUE,
    name TEXT NOT NULL,
    surname TEXT NOT NULL,
    role TEXT NOT NULL CHECK (role IN ('urban_planner', 'resident')),
    password_hash TEXT NOT NULL
);
`

const postgresSchema = `
CREATE TABLE IF NOT EXISTS documents (
    id BIGSERIAL PRIMARY KEY,
    title TEXT NOT NULL,
    scale TEXT NOT NULL,
    issuance_date TEXT NOT NULL,
    type TEXT NOT NULL,
    language TEXT,
    pages INTEGER,
    description TEXT
);

CREATE TABLE IF NOT EXISTS stakeholders (
    id BIGSERIAL PRIMARY KEY,
    name TEXT NOT NULL UNIQUE,
    color TEXT NOT NULL DEFAULT '#000000'
);

CREATE TABLE IF NOT EXISTS stakeholders_documents (
    id_stakeholder BIGINT NOT NULL REFERENCES stakeholders(id) ON DELETE CASCADE,
    id_document BIGINT NOT NULL REFERENCES documents(id) ON DELETE CASCADE,
    PRIMARY KEY (id_stakeholder, id_document)
);

CREATE TABLE IF NOT EXISTS document_coordinates (
    id BIGSERIAL PRIMARY KEY,
    document_id BIGINT NOT NULL REFERENCES documents(id) ON DELETE CASCADE,
    point_order INTEGER,
    latitude DOUBLE PRECISION,
    longitude DOUBLE PRECISION,
    municipality_area INTEGER NOT NULL DEFAULT 0 CHECK (municipality_area IN (0, 1))
);

CREATE INDEX IF NOT EXISTS idx_document_coordinates_document ON document_coordinates(document_id, point_order);

CREATE TABLE IF NOT EXISTS scales (
    id BIGSERIAL PRIMARY KEY,
    name TEXT NOT NULL UNIQUE
);

CREATE TABLE IF NOT EXISTS document_types (
    id BIGSERIAL PRIMARY KEY,
    name TEXT NOT NULL UNIQUE
);

CREATE TABLE IF NOT EXISTS document_links (
    id BIGSERIAL PRIMARY KEY,
    doc1 BIGINT NOT NULL REFERENCES documents(id) ON DELETE CASCADE,
    doc2 BIGINT NOT NULL REFERENCES documents(id) ON DELETE CASCADE,
    link_type TEXT NOT NULL,
    UNIQUE (doc1, doc2, link_type)
);

CREATE TABLE IF NOT EXISTS users (
    id BIGSERIAL PRIMARY KEY,
    username TEXT NOT NULL UNIQUE,
    name TEXT NOT NULL,
    surname TEXT NOT NULL,
    role TEXT NOT NULL CHECK (role IN ('urban_planner', 'resident')),
    password_hash TEXT NOT NULL
);
`
