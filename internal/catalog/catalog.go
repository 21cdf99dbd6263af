// Package catalog holds the product list. The catalog is remote-sourced but
// must stay usable with no backend at all, so any load failure falls back to
// a fixed reference dataset.
package catalog

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"sync"

	"github.com/jay10z/it-equipment-ordering-system/internal/domain"
	apperrors "github.com/jay10z/it-equipment-ordering-system/pkg/errors"
)

// Lister fetches the remote product list.
type Lister interface {
	Products(ctx context.Context) ([]domain.Product, error)
}

// Cache is the in-memory product catalog.
type Cache struct {
	lister Lister
	logger *slog.Logger

	mu       sync.RWMutex
	products []domain.Product
}

// NewCache creates an empty catalog cache that loads through lister.
func NewCache(lister Lister, logger *slog.Logger) *Cache {
	return &Cache{
		lister: lister,
		logger: logger,
	}
}

// Load refreshes the catalog from the remote source. On any failure, or on
// an empty result, the fixed fallback dataset is used instead, so the caller
// always gets a non-empty catalog.
func (c *Cache) Load(ctx context.Context) []domain.Product {
	products, err := c.lister.Products(ctx)
	switch {
	case err != nil:
		c.logger.WarnContext(ctx, "catalog unavailable, using fallback data",
			slog.String("error", err.Error()),
		)
		products = Fallback()
	case len(products) == 0:
		c.logger.WarnContext(ctx, "catalog returned no products, using fallback data")
		products = Fallback()
	default:
		c.logger.InfoContext(ctx, "catalog loaded",
			slog.Int("products", len(products)),
		)
	}

	c.mu.Lock()
	c.products = products
	c.mu.Unlock()

	return c.Products()
}

// Products returns a copy of the currently cached catalog, so callers
// cannot mutate the cache through the returned slice.
func (c *Cache) Products() []domain.Product {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]domain.Product, len(c.products))
	copy(out, c.products)
	return out
}

// FindByID looks a product up by its numeric id.
func (c *Cache) FindByID(id int64) (domain.Product, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, p := range c.products {
		if p.ID == id {
			return p, nil
		}
	}
	return domain.Product{}, apperrors.NotFound("product", strconv.FormatInt(id, 10))
}

// FindByRef looks a product up by an untyped id reference, as arrives from
// user input or display attributes. The reference is normalized to the
// catalog's numeric id type before comparison.
func (c *Cache) FindByRef(ref string) (domain.Product, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(ref), 10, 64)
	if err != nil {
		return domain.Product{}, apperrors.InvalidInput("invalid product id: " + ref)
	}
	return c.FindByID(id)
}

// ByCategory returns the cached products in the given category, preserving
// catalog order.
func (c *Cache) ByCategory(category string) []domain.Product {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var out []domain.Product
	for _, p := range c.products {
		if strings.EqualFold(p.Category, category) {
			out = append(out, p)
		}
	}
	return out
}
