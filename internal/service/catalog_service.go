package service

import (
	"context"

	"github.com/neelamenterprises/sajawatdesigns/internal/dto"
	"github.com/neelamenterprises/sajawatdesigns/internal/model"
	"github.com/neelamenterprises/sajawatdesigns/internal/pricing"
	"github.com/neelamenterprises/sajawatdesigns/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// CatalogService is the shopper-facing query engine. Every read resolves to
// a result: when the live backend is absent or fails mid-call, the same
// operation transparently re-executes against the static dataset and the
// caller never sees the backend error. Browsing must not hard-fail a page.
type CatalogService interface {
	Categories(ctx context.Context) ([]dto.CategoryResponse, error)
	CategoryBySlug(ctx context.Context, slug string) (*dto.CategoryResponse, error)
	Products(ctx context.Context, f dto.ProductFilter) (*dto.ProductListResponse, error)
	ProductBySlug(ctx context.Context, slug string) (*dto.ProductResponse, error)
	Featured(ctx context.Context) ([]dto.ProductResponse, error)
	Trending(ctx context.Context) ([]dto.ProductResponse, error)
	Related(ctx context.Context, productID, categoryID uuid.UUID) ([]dto.ProductResponse, error)
	Search(ctx context.Context, query string, f dto.ProductFilter) (*dto.ProductListResponse, error)
}

type catalogService struct {
	// live is nil when no backend is configured; fallback is always present.
	live     repository.Catalog
	fallback repository.Catalog
}

// NewCatalogService builds the query engine. Pass a nil live catalog to run
// purely on the static dataset — the decision is made once by the caller at
// composition time, never re-read per request.
func NewCatalogService(live repository.Catalog, fallback repository.Catalog) CatalogService {
	return &catalogService{live: live, fallback: fallback}
}

// degrade logs a failed live call before the operation re-runs on mock data.
func degrade(op string, err error) {
	log.Error().Err(err).Str("op", op).Msg("live catalog failed, serving mock data")
}

// ── Reads ────────────────────────────────────────────────────────────────────

func (s *catalogService) Categories(ctx context.Context) ([]dto.CategoryResponse, error) {
	categories, err := s.fetchCategories(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CategoryResponse, 0, len(categories))
	for _, c := range categories {
		out = append(out, mapCategory(c))
	}
	return out, nil
}

func (s *catalogService) fetchCategories(ctx context.Context) ([]model.Category, error) {
	if s.live != nil {
		categories, err := s.live.ListCategories(ctx)
		if err == nil {
			return categories, nil
		}
		degrade("list_categories", err)
	}
	return s.fallback.ListCategories(ctx)
}

func (s *catalogService) CategoryBySlug(ctx context.Context, slug string) (*dto.CategoryResponse, error) {
	var (
		cat *model.Category
		err error
	)
	if s.live != nil {
		cat, err = s.live.GetCategoryBySlug(ctx, slug)
		if err != nil {
			degrade("get_category", err)
			cat, err = s.fallback.GetCategoryBySlug(ctx, slug)
		}
	} else {
		cat, err = s.fallback.GetCategoryBySlug(ctx, slug)
	}
	if err != nil || cat == nil {
		return nil, err
	}
	resp := mapCategory(*cat)
	return &resp, nil
}

func (s *catalogService) Products(ctx context.Context, f dto.ProductFilter) (*dto.ProductListResponse, error) {
	if s.live != nil {
		items, total, err := s.live.ListProducts(ctx, f)
		if err == nil {
			return listResponse(items, total, f), nil
		}
		degrade("list_products", err)
	}
	items, total, err := s.fallback.ListProducts(ctx, f)
	if err != nil {
		return nil, err
	}
	return listResponse(items, total, f), nil
}

func (s *catalogService) ProductBySlug(ctx context.Context, slug string) (*dto.ProductResponse, error) {
	var (
		p   *model.Product
		err error
	)
	if s.live != nil {
		p, err = s.live.GetProductBySlug(ctx, slug)
		if err != nil {
			degrade("get_product", err)
			p, err = s.fallback.GetProductBySlug(ctx, slug)
		}
	} else {
		p, err = s.fallback.GetProductBySlug(ctx, slug)
	}
	if err != nil || p == nil {
		return nil, err
	}
	resp := mapProduct(*p)
	return &resp, nil
}

func (s *catalogService) Featured(ctx context.Context) ([]dto.ProductResponse, error) {
	if s.live != nil {
		products, err := s.live.FeaturedProducts(ctx)
		if err == nil {
			return mapProducts(products), nil
		}
		degrade("featured_products", err)
	}
	products, err := s.fallback.FeaturedProducts(ctx)
	if err != nil {
		return nil, err
	}
	return mapProducts(products), nil
}

func (s *catalogService) Trending(ctx context.Context) ([]dto.ProductResponse, error) {
	if s.live != nil {
		products, err := s.live.TrendingProducts(ctx)
		if err == nil {
			return mapProducts(products), nil
		}
		degrade("trending_products", err)
	}
	products, err := s.fallback.TrendingProducts(ctx)
	if err != nil {
		return nil, err
	}
	return mapProducts(products), nil
}

func (s *catalogService) Related(ctx context.Context, productID, categoryID uuid.UUID) ([]dto.ProductResponse, error) {
	if s.live != nil {
		products, err := s.live.RelatedProducts(ctx, productID, categoryID)
		if err == nil {
			return mapProducts(products), nil
		}
		degrade("related_products", err)
	}
	products, err := s.fallback.RelatedProducts(ctx, productID, categoryID)
	if err != nil {
		return nil, err
	}
	return mapProducts(products), nil
}

func (s *catalogService) Search(ctx context.Context, query string, f dto.ProductFilter) (*dto.ProductListResponse, error) {
	if s.live != nil {
		items, total, err := s.live.SearchProducts(ctx, query, f)
		if err == nil {
			return listResponse(items, total, f), nil
		}
		degrade("search_products", err)
	}
	items, total, err := s.fallback.SearchProducts(ctx, query, f)
	if err != nil {
		return nil, err
	}
	return listResponse(items, total, f), nil
}

// ── DTO mapping ──────────────────────────────────────────────────────────────

func mapCategory(c model.Category) dto.CategoryResponse {
	return dto.CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Slug:        c.Slug,
		ImageURL:    c.ImageURL,
		Description: c.Description,
		CreatedAt:   c.CreatedAt,
	}
}

func mapProduct(p model.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:               p.ID,
		Name:             p.Name,
		Slug:             p.Slug,
		Description:      p.Description,
		ShortDescription: p.ShortDescription,
		CategoryID:       p.CategoryID,
		Price:            p.Price,
		MRP:              p.MRP,
		DiscountPercent:  pricing.DiscountPercent(p.Price, p.MRP),
		Images:           p.Images,
		Tags:             p.Tags,
		AmazonURL:        p.AmazonURL,
		FlipkartURL:      p.FlipkartURL,
		MeeshoURL:        p.MeeshoURL,
		IsFeatured:       p.IsFeatured,
		IsTrending:       p.IsTrending,
		IsActive:         p.IsActive,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}

func mapProducts(products []model.Product) []dto.ProductResponse {
	out := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, mapProduct(p))
	}
	return out
}

func listResponse(items []model.Product, total int64, f dto.ProductFilter) *dto.ProductListResponse {
	limit := f.PageSize()
	totalPages := int((total + int64(limit) - 1) / int64(limit))
	page := f.Page
	if page < 1 {
		page = dto.DefaultPage
	}
	return &dto.ProductListResponse{
		Data:       mapProducts(items),
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}
}
