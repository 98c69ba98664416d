package sqlite

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// Market titles are unique so the writer can upsert by title. Products are
// not: identical rows are allowed to accumulate.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS markets (
		market_id INTEGER PRIMARY KEY AUTOINCREMENT,
		market_title TEXT NOT NULL
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_markets_title ON markets (market_title)`,
	`CREATE TABLE IF NOT EXISTS products (
		product_id INTEGER PRIMARY KEY AUTOINCREMENT,
		product_name TEXT NOT NULL,
		market_id INTEGER NOT NULL,
		product_count INTEGER NOT NULL,
		FOREIGN KEY (market_id) REFERENCES markets (market_id)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_products_name ON products (product_name)`,
}

// Migrate creates the tables and indexes that are missing. It is safe to
// call on every start.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("could not create schema: %w", err)
		}
	}
	return nil
}
