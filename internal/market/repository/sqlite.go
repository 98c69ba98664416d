package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/fekuna/omnipos-products-cli/internal/model"
	"github.com/jmoiron/sqlx"
)

type SQLiteRepository struct {
	DB *sqlx.DB
}

func NewSQLiteRepository(db *sqlx.DB) *SQLiteRepository {
	return &SQLiteRepository{DB: db}
}

func (r *SQLiteRepository) FindByTitle(ctx context.Context, title string) (*model.Market, error) {
	var market model.Market
	query := `SELECT market_id, market_title FROM markets WHERE market_title = ? LIMIT 1`
	err := r.DB.GetContext(ctx, &market, query, title)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("could not get market: %w", err)
	}
	return &market, nil
}

func (r *SQLiteRepository) FindAll(ctx context.Context) ([]model.Market, error) {
	markets := []model.Market{}
	query := `SELECT market_id, market_title FROM markets ORDER BY market_id`
	if err := r.DB.SelectContext(ctx, &markets, query); err != nil {
		return nil, fmt.Errorf("could not list markets: %w", err)
	}
	return markets, nil
}
