package models

import (
	"time"
)

// Hero is the singleton homepage hero content.
type Hero struct {
	ID          string    `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Subtitle    string    `json:"subtitle" db:"subtitle"`
	Description string    `json:"description" db:"description"`
	ButtonText  string    `json:"buttonText" db:"button_text"`
	ButtonLink  string    `json:"buttonLink" db:"button_link"`
	Image       *string   `json:"image,omitempty" db:"image"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
}

// CarouselItem is one slide of the homepage carousel, ordered by
// DisplayOrder ascending.
type CarouselItem struct {
	ID           string    `json:"id" db:"id"`
	Title        string    `json:"title" db:"title"`
	Description  string    `json:"description" db:"description"`
	Image        *string   `json:"image,omitempty" db:"image"`
	DisplayOrder int       `json:"displayOrder" db:"display_order"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at"`
}
