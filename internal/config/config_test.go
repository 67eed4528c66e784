package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	assert.NoError(t, err)
	assert.Equal(t, "http://localhost:3000/api", cfg.API.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.API.Timeout)
	assert.Equal(t, "data/session.db", cfg.Storage.Path)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("API_BASE_URL", "https://api.ejemplo.bo/api")
	t.Setenv("API_TIMEOUT_SECONDS", "5")
	t.Setenv("STORAGE_PATH", "/tmp/sesion.db")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	assert.NoError(t, err)
	assert.Equal(t, "https://api.ejemplo.bo/api", cfg.API.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.API.Timeout)
	assert.Equal(t, "/tmp/sesion.db", cfg.Storage.Path)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestGetEnvAsIntInvalid(t *testing.T) {
	t.Setenv("API_TIMEOUT_SECONDS", "no-numerico")
	cfg, err := Load()
	assert.NoError(t, err)
	assert.Equal(t, 30*time.Second, cfg.API.Timeout)
}
