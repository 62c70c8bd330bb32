package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Vendor represents a wedding vendor listed in the catalogue. Records are
// written by the ingestion pipeline and only read by this service.
type Vendor struct {
	ID               uuid.UUID `json:"id"`
	Name             string    `json:"name"`
	Slug             *string   `json:"slug,omitempty"`
	Category         string    `json:"category"`
	Region           string    `json:"region"`
	City             *string   `json:"city,omitempty"`
	PriceFrom        *int      `json:"price_from,omitempty"`
	ShortDescription *string   `json:"short_description,omitempty"`
	Style            *string   `json:"style,omitempty"`
	MainPhotoURL     *string   `json:"main_photo_url,omitempty"`
	InstagramURL     *string   `json:"instagram_url,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// HasMainPhoto reports whether the vendor card has a cover picture.
func (v Vendor) HasMainPhoto() bool {
	return nonBlank(v.MainPhotoURL)
}

// HasInstagram reports whether an Instagram profile is linked.
func (v Vendor) HasInstagram() bool {
	return nonBlank(v.InstagramURL)
}

func nonBlank(value *string) bool {
	return value != nil && strings.TrimSpace(*value) != ""
}
