package sqlite

import (
	"context"
	"fmt"
	"net/url"
	"path/filepath"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

const driverName = "sqlite"

func init() {
	// sqlx only knows the cgo driver name; the pure Go driver uses the same
	// placeholder style.
	sqlx.BindDriver(driverName, sqlx.QUESTION)
}

type Config struct {
	Path         string
	BusyTimeout  time.Duration
	MaxOpenConns int
}

// NewSQLite opens the database file at cfg.Path, creating it if needed, and
// checks that it is usable. Foreign keys are enforced on every connection.
func NewSQLite(ctx context.Context, cfg *Config) (*sqlx.DB, error) {
	name, err := dsn(cfg)
	if err != nil {
		return nil, fmt.Errorf("could not open database %s: %w", cfg.Path, err)
	}

	db, err := sqlx.Open(driverName, name)
	if err != nil {
		return nil, fmt.Errorf("could not open database %s: %w", cfg.Path, err)
	}

	if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
		db.SetMaxIdleConns(cfg.MaxOpenConns)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("could not open database %s: %w", cfg.Path, err)
	}

	return db, nil
}

// dsn builds a file: URI so that '?' or '#' in the path stay part of the
// file name instead of starting the driver's query string.
func dsn(cfg *Config) (string, error) {
	path, err := filepath.Abs(cfg.Path)
	if err != nil {
		return "", err
	}
	path = filepath.ToSlash(path)
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	return fmt.Sprintf(
		"file:%s?_pragma=foreign_keys(1)&_pragma=busy_timeout(%d)&_txlock=immediate",
		(&url.URL{Path: path}).EscapedPath(), cfg.BusyTimeout.Milliseconds(),
	), nil
}
