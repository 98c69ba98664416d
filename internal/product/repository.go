package product

import (
	"context"

	"github.com/fekuna/omnipos-products-cli/internal/model"
	"github.com/fekuna/omnipos-products-cli/internal/product/dto"
)

type Repository interface {
	// CreateWithMarket inserts the product under the market with the given
	// title, creating the market first if needed. Both happen in one
	// transaction; on success p.ID and p.MarketID are set.
	CreateWithMarket(ctx context.Context, p *model.Product, marketTitle string) error
	FindAll(ctx context.Context, filters *dto.ProductFilters) ([]model.ProductRecord, error)
}
