package product

import (
	"context"

	"github.com/fekuna/omnipos-products-cli/internal/model"
	"github.com/fekuna/omnipos-products-cli/internal/product/dto"
)

type UseCase interface {
	AddProduct(ctx context.Context, input *dto.AddProductInput) (*model.Product, error)
	ListProducts(ctx context.Context, filters *dto.ProductFilters) ([]model.ProductRecord, error)
}
