package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.AppEnv)
	assert.Equal(t, "3001", cfg.ServerPort)
	assert.Equal(t, "http://localhost:5173", cfg.FrontendURL)
	assert.Equal(t, 24*time.Hour, cfg.JWTExpiresIn)
	assert.Equal(t, 10, cfg.BcryptRounds)
	assert.True(t, cfg.IsDevelopment())
}

func TestLoad_MissingSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("APP_ENV", "production")
	t.Setenv("SERVER_PORT", "8080")
	t.Setenv("JWT_EXPIRES_HOURS", "2")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PASSWORD", "secret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, 2*time.Hour, cfg.JWTExpiresIn)
	assert.False(t, cfg.IsDevelopment())
	assert.Contains(t, cfg.DB.DSN(), "host=db.internal")
	assert.Contains(t, cfg.DB.DSN(), "password=secret")
}
