package models

import (
	"time"
)

// ActuCategory classifies a news item.
type ActuCategory string

const (
	ActuFormation   ActuCategory = "Formation"
	ActuConference  ActuCategory = "Conférence"
	ActuLaboratoire ActuCategory = "Laboratoire"
)

// IsValid reports whether the category is one of the accepted kinds.
func (c ActuCategory) IsValid() bool {
	return c == ActuFormation || c == ActuConference || c == ActuLaboratoire
}

// Actu defines a news item based on the 'actus' table. Image holds the
// relative path of the uploaded file, when one exists.
type Actu struct {
	ID               string       `json:"id" db:"id"`
	Title            string       `json:"title" db:"title"`
	Category         ActuCategory `json:"category" db:"category"`
	Date             string       `json:"date" db:"date"`
	Image            *string      `json:"image,omitempty" db:"image"`
	ShortDescription string       `json:"shortDescription" db:"short_description"`
	FullContent      string       `json:"fullContent" db:"full_content"`
	UserID           string       `json:"creatorId" db:"user_id"`
	CreatorName      *string      `json:"creatorName"`
	CreatorEmail     *string      `json:"creatorEmail"`
	CreatedAt        time.Time    `json:"createdAt" db:"created_at"`
	UpdatedAt        time.Time    `json:"updatedAt" db:"updated_at"`
}
