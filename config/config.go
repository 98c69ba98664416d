package config

import (
	"os"
	"path/filepath"
	"strconv"
)

const defaultDBFile = "products.db"

type Config struct {
	App    AppConfig
	Logger LoggerConfig
	SQLite SQLiteConfig
}

type AppConfig struct {
	Env string
}

type LoggerConfig struct {
	Level             string
	Encoding          string
	DisableCaller     bool
	DisableStacktrace bool
}

type SQLiteConfig struct {
	Path         string
	BusyTimeout  int // milliseconds
	MaxOpenConns int
}

func LoadEnv() *Config {
	return &Config{
		App: AppConfig{
			Env: getEnv("APP_ENV", "production"),
		},
		Logger: LoggerConfig{
			Level:             getEnv("LOGGER_LEVEL", "warn"),
			Encoding:          getEnv("LOGGER_ENCODING", "console"),
			DisableCaller:     getEnvBool("LOGGER_DISABLE_CALLER", true),
			DisableStacktrace: getEnvBool("LOGGER_DISABLE_STACKTRACE", true),
		},
		SQLite: SQLiteConfig{
			Path:         getEnv("PRODUCTS_DB", DefaultDBPath()),
			BusyTimeout:  getEnvInt("SQLITE_BUSY_TIMEOUT_MS", 5000),
			MaxOpenConns: getEnvInt("SQLITE_MAX_OPEN_CONNS", 1),
		},
	}
}

// DefaultDBPath is products.db in the user's home directory, or in the
// working directory when no home is known.
func DefaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return defaultDBFile
	}
	return filepath.Join(home, defaultDBFile)
}

func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}
