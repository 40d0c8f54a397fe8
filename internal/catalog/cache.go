// Package catalog holds the session-scoped snapshot of products and
// categories. It is a primitive read cache: hydrated at startup, refreshed on
// demand, no eviction.
package catalog

import (
	"context"
	"strings"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/Yui-Mika/Clothing-website/internal/domain"
)

type fetcher interface {
	ProductList(ctx context.Context) ([]domain.Product, error)
	CategoryList(ctx context.Context) ([]domain.Category, error)
}

// Cache is the in-memory catalog snapshot.
type Cache struct {
	client fetcher

	mu         sync.RWMutex
	byID       map[string]domain.Product
	products   []domain.Product
	categories []domain.Category

	group singleflight.Group
}

// New creates an empty Cache backed by the given API client.
func New(client fetcher) *Cache {
	return &Cache{
		client: client,
		byID:   make(map[string]domain.Product),
	}
}

// Refresh loads products and categories from the backend, replacing the held
// snapshot. Concurrent calls are collapsed into a single fetch pair.
func (c *Cache) Refresh(ctx context.Context) error {
	_, err, _ := c.group.Do("refresh", func() (any, error) {
		products, err := c.client.ProductList(ctx)
		if err != nil {
			return nil, err
		}
		categories, err := c.client.CategoryList(ctx)
		if err != nil {
			return nil, err
		}

		byID := make(map[string]domain.Product, len(products))
		for _, p := range products {
			byID[p.ID] = p
		}

		c.mu.Lock()
		c.products = products
		c.categories = categories
		c.byID = byID
		c.mu.Unlock()
		return nil, nil
	})
	return err
}

// Product resolves a product by ID. A false result means the product is no
// longer in the catalog; callers skip such lines rather than pricing them
// at zero.
func (c *Cache) Product(id string) (domain.Product, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	p, ok := c.byID[id]
	return p, ok
}

// Products returns the held product snapshot.
func (c *Cache) Products() []domain.Product {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]domain.Product, len(c.products))
	copy(out, c.products)
	return out
}

// Categories returns the held category snapshot.
func (c *Cache) Categories() []domain.Category {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]domain.Category, len(c.categories))
	copy(out, c.categories)
	return out
}

// ByCategory filters products by category name, case-insensitive.
func (c *Cache) ByCategory(name string) []domain.Product {
	c.mu.RLock()
	defer c.mu.RUnlock()
	var out []domain.Product
	for _, p := range c.products {
		if strings.EqualFold(p.Category, name) {
			out = append(out, p)
		}
	}
	return out
}

// Search filters products whose name contains the query, case-insensitive.
// Empty queries match everything, mirroring the storefront's collection page.
func (c *Cache) Search(query string) []domain.Product {
	query = strings.ToLower(strings.TrimSpace(query))
	c.mu.RLock()
	defer c.mu.RUnlock()
	var out []domain.Product
	for _, p := range c.products {
		if query == "" || strings.Contains(strings.ToLower(p.Name), query) {
			out = append(out, p)
		}
	}
	return out
}
