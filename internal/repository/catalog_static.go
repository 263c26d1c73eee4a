package repository

import (
	"context"
	"sort"
	"strings"

	"github.com/neelamenterprises/sajawatdesigns/internal/dto"
	"github.com/neelamenterprises/sajawatdesigns/internal/mockdata"
	"github.com/neelamenterprises/sajawatdesigns/internal/model"

	"github.com/google/uuid"
)

// staticCatalog executes every read over an immutable in-memory dataset.
// It is both the dev backend (no live configuration) and the backend of last
// resort on live failure, so its semantics are the effective contract of the
// whole query engine.
type staticCatalog struct {
	categories []model.Category
	products   []model.Product
}

// NewStaticCatalog returns the mock backend over the built-in dataset.
func NewStaticCatalog() Catalog {
	return &staticCatalog{categories: mockdata.Categories(), products: mockdata.Products()}
}

// NewStaticCatalogWith returns a mock backend over a custom dataset.
// Used by tests that need tailored records.
func NewStaticCatalogWith(categories []model.Category, products []model.Product) Catalog {
	return &staticCatalog{categories: categories, products: products}
}

// ── Categories ───────────────────────────────────────────────────────────────

func (r *staticCatalog) ListCategories(context.Context) ([]model.Category, error) {
	out := append([]model.Category(nil), r.categories...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *staticCatalog) GetCategoryBySlug(_ context.Context, slug string) (*model.Category, error) {
	for i := range r.categories {
		if r.categories[i].Slug == slug {
			c := r.categories[i]
			return &c, nil
		}
	}
	return nil, nil
}

// ── Product reads ────────────────────────────────────────────────────────────

func (r *staticCatalog) ListProducts(ctx context.Context, f dto.ProductFilter) ([]model.Product, int64, error) {
	matched := r.filterProducts(ctx, f, nil)
	sortProducts(matched, f.Sort)
	total := int64(len(matched))
	return paginate(matched, f), total, nil
}

func (r *staticCatalog) GetProductBySlug(_ context.Context, slug string) (*model.Product, error) {
	for i := range r.products {
		if r.products[i].Slug == slug && r.products[i].IsActive {
			p := r.products[i]
			return &p, nil
		}
	}
	return nil, nil
}

func (r *staticCatalog) FeaturedProducts(context.Context) ([]model.Product, error) {
	var out []model.Product
	for _, p := range r.products {
		if p.IsFeatured && p.IsActive {
			out = append(out, p)
			if len(out) == FeaturedLimit {
				break
			}
		}
	}
	return out, nil
}

func (r *staticCatalog) TrendingProducts(context.Context) ([]model.Product, error) {
	var out []model.Product
	for _, p := range r.products {
		if p.IsTrending && p.IsActive {
			out = append(out, p)
			if len(out) == TrendingLimit {
				break
			}
		}
	}
	return out, nil
}

func (r *staticCatalog) RelatedProducts(_ context.Context, productID, categoryID uuid.UUID) ([]model.Product, error) {
	var out []model.Product
	for _, p := range r.products {
		if p.CategoryID == categoryID && p.ID != productID && p.IsActive {
			out = append(out, p)
			if len(out) == RelatedLimit {
				break
			}
		}
	}
	return out, nil
}

func (r *staticCatalog) SearchProducts(ctx context.Context, query string, f dto.ProductFilter) ([]model.Product, int64, error) {
	q := strings.ToLower(query)
	matched := r.filterProducts(ctx, f, func(p model.Product) bool {
		if strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(p.Description), q) {
			return true
		}
		for _, tag := range p.Tags {
			if strings.Contains(strings.ToLower(tag), q) {
				return true
			}
		}
		return false
	})
	sortProducts(matched, f.Sort)
	total := int64(len(matched))
	return paginate(matched, f), total, nil
}

// ── Shared filter/sort/slice logic ───────────────────────────────────────────

// filterProducts applies visibility, the request filter, and an optional extra
// predicate. Category-slug resolution follows the live path's rule: a slug
// that resolves nowhere is a no-op, not an empty result.
func (r *staticCatalog) filterProducts(ctx context.Context, f dto.ProductFilter, extra func(model.Product) bool) []model.Product {
	var categoryID *uuid.UUID
	if f.CategorySlug != "" {
		if cat, _ := r.GetCategoryBySlug(ctx, f.CategorySlug); cat != nil {
			categoryID = &cat.ID
		}
	}

	out := make([]model.Product, 0, len(r.products))
	for _, p := range r.products {
		if !p.IsActive {
			continue
		}
		if categoryID != nil && p.CategoryID != *categoryID {
			continue
		}
		if f.MinPrice != nil && p.Price.Cmp(*f.MinPrice) < 0 {
			continue
		}
		if f.MaxPrice != nil && p.Price.Cmp(*f.MaxPrice) > 0 {
			continue
		}
		if len(f.Platforms) > 0 && !listedOnAny(p, f.Platforms) {
			continue
		}
		if extra != nil && !extra(p) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func listedOnAny(p model.Product, platforms []string) bool {
	for _, platform := range platforms {
		if p.ListedOn(platform) {
			return true
		}
	}
	return false
}

func sortProducts(products []model.Product, by dto.SortOption) {
	switch by {
	case dto.SortPriceLowHigh:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price.Cmp(products[j].Price) < 0
		})
	case dto.SortPriceHighLow:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price.Cmp(products[j].Price) > 0
		})
	case dto.SortPopularity:
		// Trending first, featured as the tie-break — same compound key the
		// live backend orders by.
		sort.SliceStable(products, func(i, j int) bool {
			if products[i].IsTrending != products[j].IsTrending {
				return products[i].IsTrending
			}
			if products[i].IsFeatured != products[j].IsFeatured {
				return products[i].IsFeatured
			}
			return false
		})
	default:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].CreatedAt.After(products[j].CreatedAt)
		})
	}
}

// paginate slices the sorted result set. A page beyond the end yields an
// empty slice, never an error.
func paginate(products []model.Product, f dto.ProductFilter) []model.Product {
	from := f.Offset()
	if from >= len(products) {
		return []model.Product{}
	}
	to := from + f.PageSize()
	if to > len(products) {
		to = len(products)
	}
	return products[from:to]
}
