package market

import (
	"context"

	"github.com/fekuna/omnipos-products-cli/internal/model"
)

type Repository interface {
	FindByTitle(ctx context.Context, title string) (*model.Market, error)
	FindAll(ctx context.Context) ([]model.Market, error)
}
