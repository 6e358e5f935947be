package testhelpers

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/planning-docs-service/internal/repository/sqlstore"
	"go.uber.org/zap"
)

// TestDB represents a test database connection
type TestDB struct {
	DB     *sqlx.DB
	Store  *sqlstore.DB
	Logger *zap.Logger
}

// SetupTestDB opens a private in-memory SQLite database with the application schema
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	dsn := fmt.Sprintf(
		"file:%s?mode=memory&cache=shared&_pragma=foreign_keys(1)",
		uuid.NewString(),
	)

	db, err := sqlx.Connect("sqlite", dsn)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	// A single connection keeps the in-memory database alive and serializes access
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	logger := zap.NewNop()
	store := sqlstore.NewDBForTest(db, logger)

	if err := store.Migrate(context.Background()); err != nil {
		db.Close()
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	return &TestDB{
		DB:     db,
		Store:  store,
		Logger: logger,
	}
}

// Close closes the database connection
func (tdb *TestDB) Close() {
	if tdb.DB != nil {
		tdb.DB.Close()
	}
}

// Exec runs raw SQL against the test database
func (tdb *TestDB) Exec(t *testing.T, query string, args ...interface{}) {
	t.Helper()
	if _, err := tdb.DB.Exec(query, args...); err != nil {
		t.Fatalf("Failed to exec %q: %v", query, err)
	}
}
