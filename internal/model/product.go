package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Product is an affiliate catalog entry. The product is not sold here —
// each non-nil platform URL points at the marketplace listing where it can
// be bought. Only IsActive products are ever visible to shoppers.
type Product struct {
	ID               uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Name             string    `json:"name" gorm:"index;not null"`
	Slug             string    `json:"slug" gorm:"uniqueIndex;not null"`
	Description      string    `json:"description"`
	ShortDescription string    `json:"short_description"`
	// CategoryID is an unenforced reference: category deletion does not
	// cascade, and validity is the admin caller's responsibility.
	CategoryID uuid.UUID       `json:"category_id" gorm:"type:uuid;index"`
	Price      decimal.Decimal `json:"price" gorm:"type:decimal(10,2);not null"`
	MRP        decimal.Decimal `json:"mrp" gorm:"type:decimal(10,2);not null"`
	// Images are display-ordered; the first one is the card image.
	Images      []string `json:"images" gorm:"type:text;serializer:json"`
	Tags        []string `json:"tags" gorm:"type:text;serializer:json"`
	AmazonURL   *string  `json:"amazon_url"`
	FlipkartURL *string  `json:"flipkart_url"`
	MeeshoURL   *string  `json:"meesho_url"`
	// No column defaults on the flags: GORM omits zero-valued fields that
	// carry a default tag on insert, which would silently publish a product
	// created with IsActive false. Every write supplies all three explicitly.
	IsFeatured bool      `json:"is_featured" gorm:"not null"`
	IsTrending bool      `json:"is_trending" gorm:"not null"`
	IsActive   bool      `json:"is_active" gorm:"not null;index"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (Product) TableName() string { return "products" }

func (p *Product) BeforeCreate(*gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// ListedOn reports whether the product is purchasable via the named platform,
// i.e. it carries a non-nil URL for it. Unknown platform names never match.
func (p *Product) ListedOn(platform string) bool {
	switch platform {
	case "amazon":
		return p.AmazonURL != nil
	case "flipkart":
		return p.FlipkartURL != nil
	case "meesho":
		return p.MeeshoURL != nil
	}
	return false
}
