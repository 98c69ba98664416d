package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/fekuna/omnipos-products-cli/internal/logger"
	"github.com/fekuna/omnipos-products-cli/internal/model"
	"github.com/fekuna/omnipos-products-cli/internal/product/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type memoryRepo struct {
	markets  map[string]int64
	products []model.Product
	err      error
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{markets: map[string]int64{}}
}

func (r *memoryRepo) CreateWithMarket(_ context.Context, p *model.Product, marketTitle string) error {
	if r.err != nil {
		return r.err
	}
	id, ok := r.markets[marketTitle]
	if !ok {
		id = int64(len(r.markets) + 1)
		r.markets[marketTitle] = id
	}
	p.MarketID = id
	p.ID = int64(len(r.products) + 1)
	r.products = append(r.products, *p)
	return nil
}

func (r *memoryRepo) FindAll(_ context.Context, f *dto.ProductFilters) ([]model.ProductRecord, error) {
	if r.err != nil {
		return nil, r.err
	}
	titles := map[int64]string{}
	for title, id := range r.markets {
		titles[id] = title
	}
	records := []model.ProductRecord{}
	for _, p := range r.products {
		if f.Name != nil && p.Name != *f.Name {
			continue
		}
		records = append(records, model.ProductRecord{Name: p.Name, Market: titles[p.MarketID], Count: p.Count})
	}
	return records, nil
}

func byName(name string) *dto.ProductFilters {
	return &dto.ProductFilters{Name: &name}
}

func newObservedUseCase(repo *memoryRepo) (*productUseCase, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	uc := NewProductUseCase(repo, logger.Wrap(zap.New(core))).(*productUseCase)
	return uc, logs
}

func TestAddProduct(t *testing.T) {
	repo := newMemoryRepo()
	uc, logs := newObservedUseCase(repo)

	p, err := uc.AddProduct(context.Background(), &dto.AddProductInput{Name: "Sugar", Market: "Magnit", Count: 5})
	require.NoError(t, err)
	assert.Equal(t, "Sugar", p.Name)
	assert.Equal(t, int64(5), p.Count)
	assert.Equal(t, int64(1), p.MarketID)

	added := logs.FilterMessage("product added").All()
	require.Len(t, added, 1)
	assert.Equal(t, p.ID, added[0].ContextMap()["product_id"])
}

func TestAddProductThenListByName(t *testing.T) {
	uc, _ := newObservedUseCase(newMemoryRepo())
	ctx := context.Background()

	_, err := uc.AddProduct(ctx, &dto.AddProductInput{Name: "Sugar", Market: "Magnit", Count: 5})
	require.NoError(t, err)
	_, err = uc.AddProduct(ctx, &dto.AddProductInput{Name: "Salt", Market: "Magnit", Count: 3})
	require.NoError(t, err)

	records, err := uc.ListProducts(ctx, byName("Sugar"))
	require.NoError(t, err)
	assert.Equal(t, []model.ProductRecord{{Name: "Sugar", Market: "Magnit", Count: 5}}, records)
}

func TestListProductsEmptyNameMatchesNothing(t *testing.T) {
	uc, _ := newObservedUseCase(newMemoryRepo())
	ctx := context.Background()

	_, err := uc.AddProduct(ctx, &dto.AddProductInput{Name: "Sugar", Market: "Magnit", Count: 5})
	require.NoError(t, err)

	records, err := uc.ListProducts(ctx, byName(""))
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestListProductsNilFiltersSelectsAll(t *testing.T) {
	uc, _ := newObservedUseCase(newMemoryRepo())
	ctx := context.Background()

	_, err := uc.AddProduct(ctx, &dto.AddProductInput{Name: "Sugar", Market: "Magnit", Count: 5})
	require.NoError(t, err)

	records, err := uc.ListProducts(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestRepositoryErrorsAreLoggedAndReturned(t *testing.T) {
	repo := newMemoryRepo()
	repo.err = errors.New("database is locked")
	uc, logs := newObservedUseCase(repo)
	ctx := context.Background()

	_, err := uc.AddProduct(ctx, &dto.AddProductInput{Name: "Sugar", Market: "Magnit", Count: 5})
	assert.ErrorIs(t, err, repo.err)

	_, err = uc.ListProducts(ctx, &dto.ProductFilters{})
	assert.ErrorIs(t, err, repo.err)

	assert.Equal(t, 1, logs.FilterMessage("failed to add product").Len())
	assert.Equal(t, 1, logs.FilterMessage("failed to list products").Len())
}
