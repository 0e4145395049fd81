package dto

import (
	"github.com/Tndevfactory/labtim/internal/app/models"
)

// CreateActuRequest is the payload for creating a news item. Accepted as
// JSON or multipart form (image uploaded alongside the fields).
type CreateActuRequest struct {
	Title            string              `json:"title" form:"title" binding:"required"`
	Category         models.ActuCategory `json:"category" form:"category" binding:"required"`
	Date             string              `json:"date" form:"date"`
	ShortDescription string              `json:"shortDescription" form:"shortDescription"`
	FullContent      string              `json:"fullContent" form:"fullContent"`
}

// UpdateActuRequest carries partial updates; only non-nil fields are applied.
type UpdateActuRequest struct {
	Title            *string              `json:"title" form:"title"`
	Category         *models.ActuCategory `json:"category" form:"category"`
	Date             *string              `json:"date" form:"date"`
	ShortDescription *string              `json:"shortDescription" form:"shortDescription"`
	FullContent      *string              `json:"fullContent" form:"fullContent"`
}
