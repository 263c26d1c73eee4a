package dto

import (
	"time"

	"github.com/google/uuid"
)

// ── Request DTOs ──────────────────────────────────────────────────────────────

// CategoryRequest is used for both create and full-replace update; the slug
// is re-derived from Name server-side.
type CategoryRequest struct {
	Name        string  `json:"name" validate:"required,min=2,max=100"`
	ImageURL    string  `json:"image_url" validate:"omitempty,url"`
	Description *string `json:"description"`
}

// ── Response DTOs ─────────────────────────────────────────────────────────────

type CategoryResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	ImageURL    string    `json:"image_url"`
	Description *string   `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
