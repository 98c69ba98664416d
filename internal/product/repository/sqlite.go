package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/fekuna/omnipos-products-cli/internal/model"
	"github.com/fekuna/omnipos-products-cli/internal/product/dto"
	"github.com/jmoiron/sqlx"
)

type SQLiteRepository struct {
	DB *sqlx.DB
}

func NewSQLiteRepository(db *sqlx.DB) *SQLiteRepository {
	return &SQLiteRepository{DB: db}
}

func (r *SQLiteRepository) CreateWithMarket(ctx context.Context, p *model.Product, marketTitle string) error {
	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("could not begin transaction: %w", err)
	}
	defer tx.Rollback()

	// 1. Resolve market, creating it on first use
	_, err = tx.ExecContext(ctx, `
		INSERT INTO markets (market_title)
		VALUES (?)
		ON CONFLICT (market_title) DO NOTHING
	`, marketTitle)
	if err != nil {
		return fmt.Errorf("could not save market: %w", err)
	}

	var marketID int64
	err = tx.GetContext(ctx, &marketID, `SELECT market_id FROM markets WHERE market_title = ?`, marketTitle)
	if err != nil {
		return fmt.Errorf("could not get market: %w", err)
	}
	p.MarketID = marketID

	// 2. Insert product
	res, err := tx.NamedExecContext(ctx, `
		INSERT INTO products (product_name, market_id, product_count)
		VALUES (:product_name, :market_id, :product_count)
	`, p)
	if err != nil {
		return fmt.Errorf("could not save product: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("could not save product: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("could not commit product: %w", err)
	}

	p.ID = id
	return nil
}

func (r *SQLiteRepository) FindAll(ctx context.Context, f *dto.ProductFilters) ([]model.ProductRecord, error) {
	records := []model.ProductRecord{}

	conditions := []string{}
	args := map[string]interface{}{}

	if f != nil && f.Name != nil {
		conditions = append(conditions, "products.product_name = :product_name")
		args["product_name"] = *f.Name
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	query := `
		SELECT products.product_name, markets.market_title, products.product_count
		FROM products
		INNER JOIN markets ON markets.market_id = products.market_id` +
		whereClause + `
		ORDER BY products.product_id`

	nstmt, err := r.DB.PrepareNamedContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("could not list products: %w", err)
	}
	defer nstmt.Close()

	if err := nstmt.SelectContext(ctx, &records, args); err != nil {
		return nil, fmt.Errorf("could not list products: %w", err)
	}

	return records, nil
}
