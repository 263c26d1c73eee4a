package service

import (
	"context"
	"errors"
	"strings"

	"github.com/neelamenterprises/sajawatdesigns/internal/dto"
	"github.com/neelamenterprises/sajawatdesigns/internal/model"
	"github.com/neelamenterprises/sajawatdesigns/internal/repository"
	"github.com/neelamenterprises/sajawatdesigns/internal/slug"

	"github.com/google/uuid"
)

// ErrLiveBackendRequired is returned by every write when no live backend is
// configured. Reads degrade to mock data; writes have nowhere to persist.
var ErrLiveBackendRequired = errors.New("catalog database not configured; writes are disabled")

// ErrNotFound is returned when a write targets a record that does not exist.
var ErrNotFound = errors.New("record not found")

// AdminService carries the administrative mutations. It runs only in an
// already-authenticated context — the gatekeeping middleware, not this
// service, decides who may call it.
type AdminService interface {
	CreateProduct(ctx context.Context, req dto.ProductRequest) (*dto.ProductResponse, error)
	UpdateProduct(ctx context.Context, id uuid.UUID, req dto.ProductRequest) (*dto.ProductResponse, error)
	DeleteProduct(ctx context.Context, id uuid.UUID) error
	ToggleProduct(ctx context.Context, id uuid.UUID, req dto.ToggleProductRequest) error

	CreateCategory(ctx context.Context, req dto.CategoryRequest) (*dto.CategoryResponse, error)
	UpdateCategory(ctx context.Context, id uuid.UUID, req dto.CategoryRequest) (*dto.CategoryResponse, error)
	DeleteCategory(ctx context.Context, id uuid.UUID) error
}

type adminService struct {
	// store is nil when the live backend is not configured.
	store repository.CatalogStore
}

func NewAdminService(store repository.CatalogStore) AdminService {
	return &adminService{store: store}
}

// ── Products ─────────────────────────────────────────────────────────────────

func (s *adminService) CreateProduct(ctx context.Context, req dto.ProductRequest) (*dto.ProductResponse, error) {
	if s.store == nil {
		return nil, ErrLiveBackendRequired
	}
	p, err := buildProduct(req)
	if err != nil {
		return nil, err
	}
	if err := s.store.CreateProduct(ctx, p); err != nil {
		return nil, err
	}
	resp := mapProduct(*p)
	return &resp, nil
}

func (s *adminService) UpdateProduct(ctx context.Context, id uuid.UUID, req dto.ProductRequest) (*dto.ProductResponse, error) {
	if s.store == nil {
		return nil, ErrLiveBackendRequired
	}
	existing, err := s.store.GetProductByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrNotFound
	}

	// Full-record replace: every field is overwritten from the request and
	// the slug is re-derived; only identity and creation time survive.
	p, err := buildProduct(req)
	if err != nil {
		return nil, err
	}
	p.ID = existing.ID
	p.CreatedAt = existing.CreatedAt

	if err := s.store.UpdateProduct(ctx, p); err != nil {
		return nil, err
	}
	resp := mapProduct(*p)
	return &resp, nil
}

func (s *adminService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	if s.store == nil {
		return ErrLiveBackendRequired
	}
	return s.store.DeleteProduct(ctx, id)
}

func (s *adminService) ToggleProduct(ctx context.Context, id uuid.UUID, req dto.ToggleProductRequest) error {
	if s.store == nil {
		return ErrLiveBackendRequired
	}
	return s.store.SetProductFlag(ctx, id, req.Field, req.Value)
}

// ── Categories ───────────────────────────────────────────────────────────────

func (s *adminService) CreateCategory(ctx context.Context, req dto.CategoryRequest) (*dto.CategoryResponse, error) {
	if s.store == nil {
		return nil, ErrLiveBackendRequired
	}
	c := buildCategory(req)
	if err := s.store.CreateCategory(ctx, c); err != nil {
		return nil, err
	}
	resp := mapCategory(*c)
	return &resp, nil
}

func (s *adminService) UpdateCategory(ctx context.Context, id uuid.UUID, req dto.CategoryRequest) (*dto.CategoryResponse, error) {
	if s.store == nil {
		return nil, ErrLiveBackendRequired
	}
	existing, err := s.store.GetCategoryByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrNotFound
	}

	c := buildCategory(req)
	c.ID = existing.ID
	c.CreatedAt = existing.CreatedAt

	if err := s.store.UpdateCategory(ctx, c); err != nil {
		return nil, err
	}
	resp := mapCategory(*c)
	return &resp, nil
}

func (s *adminService) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	if s.store == nil {
		return ErrLiveBackendRequired
	}
	// The admin UI warns that products keep pointing at the deleted
	// category; nothing cascades here.
	return s.store.DeleteCategory(ctx, id)
}

// ── Request → model ──────────────────────────────────────────────────────────

func buildProduct(req dto.ProductRequest) (*model.Product, error) {
	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		return nil, errors.New("invalid category_id")
	}
	return &model.Product{
		Name:             req.Name,
		Slug:             slug.Make(req.Name),
		Description:      req.Description,
		ShortDescription: req.ShortDescription,
		CategoryID:       categoryID,
		Price:            req.Price,
		MRP:              req.MRP,
		Images:           cleanList(req.Images),
		Tags:             cleanList(req.Tags),
		AmazonURL:        optional(req.AmazonURL),
		FlipkartURL:      optional(req.FlipkartURL),
		MeeshoURL:        optional(req.MeeshoURL),
		IsFeatured:       req.IsFeatured,
		IsTrending:       req.IsTrending,
		IsActive:         req.IsActive,
	}, nil
}

func buildCategory(req dto.CategoryRequest) *model.Category {
	return &model.Category{
		Name:        req.Name,
		Slug:        slug.Make(req.Name),
		ImageURL:    req.ImageURL,
		Description: req.Description,
	}
}

// cleanList trims entries and drops empties, preserving order.
func cleanList(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// optional maps an empty form value to "not listed on this platform".
func optional(s string) *string {
	if s = strings.TrimSpace(s); s == "" {
		return nil
	}
	return &s
}
