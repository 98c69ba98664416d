package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadEnvDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	for _, key := range []string{
		"APP_ENV", "LOGGER_LEVEL", "LOGGER_ENCODING", "LOGGER_DISABLE_CALLER",
		"LOGGER_DISABLE_STACKTRACE", "PRODUCTS_DB", "SQLITE_BUSY_TIMEOUT_MS", "SQLITE_MAX_OPEN_CONNS",
	} {
		unsetEnv(t, key)
	}

	cfg := LoadEnv()

	assert.Equal(t, "production", cfg.App.Env)
	assert.False(t, cfg.IsDevelopment())
	assert.Equal(t, "warn", cfg.Logger.Level)
	assert.Equal(t, "console", cfg.Logger.Encoding)
	assert.True(t, cfg.Logger.DisableCaller)
	assert.True(t, cfg.Logger.DisableStacktrace)
	assert.Equal(t, filepath.Join(home, "products.db"), cfg.SQLite.Path)
	assert.Equal(t, 5000, cfg.SQLite.BusyTimeout)
	assert.Equal(t, 1, cfg.SQLite.MaxOpenConns)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	t.Setenv("LOGGER_LEVEL", "debug")
	t.Setenv("LOGGER_DISABLE_CALLER", "false")
	t.Setenv("PRODUCTS_DB", "/tmp/stock.db")
	t.Setenv("SQLITE_BUSY_TIMEOUT_MS", "250")
	t.Setenv("SQLITE_MAX_OPEN_CONNS", "not-a-number")

	cfg := LoadEnv()

	assert.True(t, cfg.IsDevelopment())
	assert.Equal(t, "debug", cfg.Logger.Level)
	assert.False(t, cfg.Logger.DisableCaller)
	assert.Equal(t, "/tmp/stock.db", cfg.SQLite.Path)
	assert.Equal(t, 250, cfg.SQLite.BusyTimeout)
	assert.Equal(t, 1, cfg.SQLite.MaxOpenConns, "unparsable values fall back")
}

// unsetEnv makes key absent for the test; t.Setenv registers the restore.
func unsetEnv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	assert.NoError(t, os.Unsetenv(key))
}
