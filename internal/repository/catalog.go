package repository

import (
	"context"

	"github.com/neelamenterprises/sajawatdesigns/internal/dto"
	"github.com/neelamenterprises/sajawatdesigns/internal/model"

	"github.com/google/uuid"
)

// Result caps shared by both backends.
const (
	FeaturedLimit = 8
	TrendingLimit = 8
	RelatedLimit  = 4
)

// Catalog is the read contract shared by the live (gorm) and static (mock)
// backends. Lookups that find nothing return (nil, nil) — absence is not an
// error; a non-nil error always means the backend itself failed.
//
// Semantics both implementations must agree on:
//   - only active products are visible to every product read;
//   - an unresolvable category slug makes the category filter a no-op;
//   - list totals are counted before pagination is applied.
type Catalog interface {
	ListCategories(ctx context.Context) ([]model.Category, error)
	GetCategoryBySlug(ctx context.Context, slug string) (*model.Category, error)

	ListProducts(ctx context.Context, f dto.ProductFilter) ([]model.Product, int64, error)
	GetProductBySlug(ctx context.Context, slug string) (*model.Product, error)
	FeaturedProducts(ctx context.Context) ([]model.Product, error)
	TrendingProducts(ctx context.Context) ([]model.Product, error)
	RelatedProducts(ctx context.Context, productID, categoryID uuid.UUID) ([]model.Product, error)
	SearchProducts(ctx context.Context, query string, f dto.ProductFilter) ([]model.Product, int64, error)
}

// CatalogStore adds the administrative mutations. Only the live backend
// implements it — there is nothing to persist to on the mock path, so writes
// have no fallback.
type CatalogStore interface {
	Catalog

	GetCategoryByID(ctx context.Context, id uuid.UUID) (*model.Category, error)
	CreateCategory(ctx context.Context, c *model.Category) error
	UpdateCategory(ctx context.Context, c *model.Category) error
	DeleteCategory(ctx context.Context, id uuid.UUID) error

	GetProductByID(ctx context.Context, id uuid.UUID) (*model.Product, error)
	CreateProduct(ctx context.Context, p *model.Product) error
	UpdateProduct(ctx context.Context, p *model.Product) error
	DeleteProduct(ctx context.Context, id uuid.UUID) error
	SetProductFlag(ctx context.Context, id uuid.UUID, field string, value bool) error
}

// platformColumns whitelists the marketplace URL columns used by the
// any-of platform filter. Unknown platform names are simply not listed here.
var platformColumns = map[string]string{
	"amazon":   "amazon_url",
	"flipkart": "flipkart_url",
	"meesho":   "meesho_url",
}

// toggleColumns whitelists the product flags an admin may toggle.
var toggleColumns = map[string]bool{
	"is_active":   true,
	"is_featured": true,
	"is_trending": true,
}
