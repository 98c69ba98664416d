package market

import (
	"context"

	"github.com/fekuna/omnipos-products-cli/internal/model"
)

type UseCase interface {
	GetMarket(ctx context.Context, title string) (*model.Market, error)
	ListMarkets(ctx context.Context) ([]model.Market, error)
}
