package usecase

import (
	"context"

	"github.com/fekuna/omnipos-products-cli/internal/logger"
	"github.com/fekuna/omnipos-products-cli/internal/market"
	"github.com/fekuna/omnipos-products-cli/internal/model"
	"go.uber.org/zap"
)

type marketUseCase struct {
	repo   market.Repository
	logger logger.ZapLogger
}

func NewMarketUseCase(repo market.Repository, log logger.ZapLogger) market.UseCase {
	return &marketUseCase{
		repo:   repo,
		logger: log,
	}
}

// GetMarket returns nil without error when no market has the title.
func (uc *marketUseCase) GetMarket(ctx context.Context, title string) (*model.Market, error) {
	return uc.repo.FindByTitle(ctx, title)
}

func (uc *marketUseCase) ListMarkets(ctx context.Context) ([]model.Market, error) {
	markets, err := uc.repo.FindAll(ctx)
	if err != nil {
		uc.logger.Error("failed to list markets", zap.Error(err))
		return nil, err
	}
	uc.logger.Debug("markets listed", zap.Int("count", len(markets)))
	return markets, nil
}
