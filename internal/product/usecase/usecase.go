package usecase

import (
	"context"

	"github.com/fekuna/omnipos-products-cli/internal/logger"
	"github.com/fekuna/omnipos-products-cli/internal/model"
	"github.com/fekuna/omnipos-products-cli/internal/product"
	"github.com/fekuna/omnipos-products-cli/internal/product/dto"
	"go.uber.org/zap"
)

type productUseCase struct {
	repo   product.Repository
	logger logger.ZapLogger
}

func NewProductUseCase(repo product.Repository, log logger.ZapLogger) product.UseCase {
	return &productUseCase{
		repo:   repo,
		logger: log,
	}
}

func (uc *productUseCase) AddProduct(ctx context.Context, input *dto.AddProductInput) (*model.Product, error) {
	p := &model.Product{
		Name:  input.Name,
		Count: input.Count,
	}

	if err := uc.repo.CreateWithMarket(ctx, p, input.Market); err != nil {
		uc.logger.Error("failed to add product",
			zap.String("name", input.Name),
			zap.String("market", input.Market),
			zap.Error(err),
		)
		return nil, err
	}

	uc.logger.Info("product added",
		zap.Int64("product_id", p.ID),
		zap.Int64("market_id", p.MarketID),
		zap.String("name", p.Name),
		zap.Int64("count", p.Count),
	)
	return p, nil
}

func (uc *productUseCase) ListProducts(ctx context.Context, filters *dto.ProductFilters) ([]model.ProductRecord, error) {
	if filters == nil {
		filters = &dto.ProductFilters{}
	}

	records, err := uc.repo.FindAll(ctx, filters)
	if err != nil {
		uc.logger.Error("failed to list products", zap.Stringp("name", filters.Name), zap.Error(err))
		return nil, err
	}

	uc.logger.Debug("products listed", zap.Stringp("name", filters.Name), zap.Int("count", len(records)))
	return records, nil
}
