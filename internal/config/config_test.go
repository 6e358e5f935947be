package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestFromViper_Defaults(t *testing.T) {
	cfg := fromViper(viper.New())

	assert.Equal(t, 3001, cfg.Server.Port)
	assert.Equal(t, DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, "session_id", cfg.Session.CookieName)
	assert.Equal(t, 6*time.Hour, cfg.Session.TTL)
	assert.Equal(t, "georeference-cache-workers", cfg.Worker.ConsumerGroup)
	assert.Equal(t, 20, cfg.Worker.BatchSize)
	assert.Equal(t, 30*time.Second, cfg.Worker.ClaimIdle)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestFromViper_Overrides(t *testing.T) {
	v := viper.New()
	v.Set("API_PORT", 8080)
	v.Set("DB_DRIVER", "Postgres")
	v.Set("DB_HOST", "db")
	v.Set("DB_PORT", 5432)
	v.Set("DB_USER", "planner")
	v.Set("DB_PASSWORD", "secret")
	v.Set("DB_NAME", "planning")
	v.Set("DB_SSLMODE", "disable")
	v.Set("SESSION_TTL", 60)
	v.Set("GEOREFERENCES_CACHE_TTL", 30)

	cfg := fromViper(v)

	assert.Equal(t, ":8080", cfg.GetServerAddr())
	assert.Equal(t, DriverPostgres, cfg.Database.Driver)
	assert.Equal(t, time.Minute, cfg.Session.TTL)
	assert.Equal(t, 30*time.Second, cfg.Cache.GeoreferencesCacheTTL)
	assert.Equal(t,
		"host=db port=5432 user=planner password=secret dbname=planning sslmode=disable",
		cfg.GetDatabaseDSN(),
	)
}

func TestGetDatabaseDSN_SQLite(t *testing.T) {
	v := viper.New()
	v.Set("DB_PATH", "/tmp/docs.sqlite")

	cfg := fromViper(v)

	assert.Equal(t, "file:/tmp/docs.sqlite?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)", cfg.GetDatabaseDSN())
}
