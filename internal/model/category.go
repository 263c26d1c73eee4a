package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Category groups products for storefront browsing. Slug is always derived
// from Name via slug.Make — callers never set it independently.
type Category struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Name        string    `json:"name" gorm:"uniqueIndex;not null"`
	Slug        string    `json:"slug" gorm:"uniqueIndex;not null"`
	ImageURL    string    `json:"image_url"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

func (Category) TableName() string { return "categories" }

// BeforeCreate assigns the primary key client-side so the model works the
// same against hosted postgres and the in-memory sqlite used in tests.
func (c *Category) BeforeCreate(*gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
