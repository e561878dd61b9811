package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "Rental Review API", cfg.App.Name)
	assert.Equal(t, "development", cfg.App.Environment)
	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "rentreview", cfg.Database.Database)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, 25, cfg.Database.MaxConns)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("APP_ENV", "production")
	t.Setenv("DB_PORT", "5433")
	t.Setenv("DB_MAX_CONNS", "not-a-number")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.App.Port)
	assert.Equal(t, "production", cfg.App.Environment)
	assert.Equal(t, 5433, cfg.Database.Port)
	assert.Equal(t, 25, cfg.Database.MaxConns, "malformed int falls back to default")
}

func TestDatabaseConfigured(t *testing.T) {
	assert.False(t, DatabaseConfig{}.Configured())
	assert.True(t, DatabaseConfig{URL: "postgres://u:p@h/db"}.Configured())
	assert.True(t, DatabaseConfig{Host: "db.internal"}.Configured())
}
