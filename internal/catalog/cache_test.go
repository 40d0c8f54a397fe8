package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Yui-Mika/Clothing-website/internal/domain"
)

type stubFetcher struct {
	products     []domain.Product
	categories   []domain.Category
	productErr   error
	productCalls int
}

func (s *stubFetcher) ProductList(context.Context) ([]domain.Product, error) {
	s.productCalls++
	return s.products, s.productErr
}

func (s *stubFetcher) CategoryList(context.Context) ([]domain.Category, error) {
	return s.categories, nil
}

func testFetcher() *stubFetcher {
	return &stubFetcher{
		products: []domain.Product{
			{ID: "P1", Name: "Classic Crew Tee", Category: "T-Shirts", OfferPrice: decimal.NewFromInt(20)},
			{ID: "P2", Name: "Fleece Hoodie", Category: "Hoodies", OfferPrice: decimal.NewFromInt(48)},
		},
		categories: []domain.Category{{ID: "c1", Name: "T-Shirts"}, {ID: "c2", Name: "Hoodies"}},
	}
}

func TestRefreshAndResolve(t *testing.T) {
	cache := New(testFetcher())

	require.NoError(t, cache.Refresh(context.Background()))

	p, ok := cache.Product("P1")
	require.True(t, ok)
	assert.Equal(t, "Classic Crew Tee", p.Name)

	_, ok = cache.Product("missing")
	assert.False(t, ok)

	assert.Len(t, cache.Products(), 2)
	assert.Len(t, cache.Categories(), 2)
}

func TestRefresh_ErrorLeavesSnapshot(t *testing.T) {
	fetcher := testFetcher()
	cache := New(fetcher)
	require.NoError(t, cache.Refresh(context.Background()))

	fetcher.productErr = errors.New("backend down")
	require.Error(t, cache.Refresh(context.Background()))

	_, ok := cache.Product("P1")
	assert.True(t, ok, "a failed refresh keeps the previous snapshot")
}

func TestByCategory(t *testing.T) {
	cache := New(testFetcher())
	require.NoError(t, cache.Refresh(context.Background()))

	hoodies := cache.ByCategory("hoodies")

	require.Len(t, hoodies, 1)
	assert.Equal(t, "P2", hoodies[0].ID)
}

func TestSearch(t *testing.T) {
	cache := New(testFetcher())
	require.NoError(t, cache.Refresh(context.Background()))

	assert.Len(t, cache.Search("fleece"), 1)
	assert.Len(t, cache.Search(""), 2)
	assert.Empty(t, cache.Search("socks"))
}

func TestEmptyCacheResolvesNothing(t *testing.T) {
	cache := New(testFetcher())

	_, ok := cache.Product("P1")
	assert.False(t, ok)
	assert.Empty(t, cache.Products())
}
