package sqlstore

import (
	"context"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/planning-docs-service/internal/config"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

// DB - подключение к реляционному хранилищу (SQLite по умолчанию или PostgreSQL)
type DB struct {
	*sqlx.DB
	logger *zap.Logger
	driver string
}

// driverName maps the configured driver to a registered database/sql driver.
func driverName(driver string) string {
	if driver == config.DriverPostgres {
		return "pgx"
	}
	return "sqlite"
}

func New(cfg *config.DatabaseConfig, logger *zap.Logger) (*DB, error) {
	db, err := sqlx.Connect(driverName(cfg.Driver), cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Connection pool settings
	db.SetMaxOpenConns(cfg.MaxConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	db.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logger.Info("Database connected",
		zap.String("driver", cfg.Driver),
		zap.String("host", cfg.Host),
		zap.String("path", cfg.Path),
		zap.String("database", cfg.DBName),
	)

	return &DB{DB: db, logger: logger, driver: cfg.Driver}, nil
}

func (db *DB) Close() error {
	db.logger.Info("Closing database connection")
	return db.DB.Close()
}

func (db *DB) Health(ctx context.Context) error {
	return db.PingContext(ctx)
}

// Driver returns the configured driver ("sqlite" or "postgres").
func (db *DB) Driver() string {
	return db.driver
}

// withTx runs fn inside a transaction, committing on nil and rolling back otherwise.
func (db *DB) withTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			db.logger.Error("Failed to rollback transaction", zap.Error(rbErr))
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// NewDBForTest creates a DB instance for testing with provided database and logger
func NewDBForTest(sqlxDB *sqlx.DB, logger *zap.Logger) *DB {
	if logger == nil {
		logger = zap.NewNop()
	}
	driver := config.DriverSQLite
	if sqlxDB.DriverName() == "pgx" {
		driver = config.DriverPostgres
	}
	return &DB{
		DB:     sqlxDB,
		logger: logger,
		driver: driver,
	}
}
