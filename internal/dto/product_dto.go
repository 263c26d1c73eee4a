package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ─── Request DTOs ────────────────────────────────────────────────────────────

// ProductRequest carries the full product record for create and update.
// Updates are full-record replaces: every field is supplied and overwritten,
// and the slug is re-derived server-side from Name.
type ProductRequest struct {
	Name             string          `json:"name" validate:"required,min=2,max=160"`
	Description      string          `json:"description"`
	ShortDescription string          `json:"short_description" validate:"max=280"`
	CategoryID       string          `json:"category_id" validate:"required,uuid"`
	Price            decimal.Decimal `json:"price"`
	MRP              decimal.Decimal `json:"mrp"`
	Images           []string        `json:"images"`
	Tags             []string        `json:"tags"`
	AmazonURL        string          `json:"amazon_url" validate:"omitempty,url"`
	FlipkartURL      string          `json:"flipkart_url" validate:"omitempty,url"`
	MeeshoURL        string          `json:"meesho_url" validate:"omitempty,url"`
	IsFeatured       bool            `json:"is_featured"`
	IsTrending       bool            `json:"is_trending"`
	IsActive         bool            `json:"is_active"`
}

// ToggleProductRequest sets one promotional/visibility flag to Value.
type ToggleProductRequest struct {
	Field string `json:"field" validate:"required,oneof=is_active is_featured is_trending"`
	Value bool   `json:"value"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ProductResponse struct {
	ID               uuid.UUID       `json:"id"`
	Name             string          `json:"name"`
	Slug             string          `json:"slug"`
	Description      string          `json:"description"`
	ShortDescription string          `json:"short_description"`
	CategoryID       uuid.UUID       `json:"category_id"`
	Price            decimal.Decimal `json:"price"`
	MRP              decimal.Decimal `json:"mrp"`
	// DiscountPercent is derived presentation state, never stored.
	DiscountPercent int       `json:"discount_percent"`
	Images          []string  `json:"images"`
	Tags            []string  `json:"tags"`
	AmazonURL       *string   `json:"amazon_url"`
	FlipkartURL     *string   `json:"flipkart_url"`
	MeeshoURL       *string   `json:"meesho_url"`
	IsFeatured      bool      `json:"is_featured"`
	IsTrending      bool      `json:"is_trending"`
	IsActive        bool      `json:"is_active"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type ProductListResponse struct {
	Data       []ProductResponse `json:"data"`
	Total      int64             `json:"total"`
	Page       int               `json:"page"`
	Limit      int               `json:"limit"`
	TotalPages int               `json:"total_pages"`
}
