package dto

import (
	"github.com/Tndevfactory/labtim/internal/app/models"
)

// CreateTheseRequest is the payload for creating a thesis record. A blank
// author defaults to the requester's display name.
type CreateTheseRequest struct {
	Title         string            `json:"title" binding:"required"`
	Author        string            `json:"author"`
	Year          int               `json:"year" binding:"required"`
	Summary       string            `json:"summary"`
	Type          models.TheseType  `json:"type" binding:"required"`
	Etablissement string            `json:"etablissement"`
	Specialite    string            `json:"specialite"`
	Encadrant     string            `json:"encadrant"`
	Membres       models.StringList `json:"membres"`
}

// UpdateTheseRequest carries partial updates; only non-nil fields are applied.
type UpdateTheseRequest struct {
	Title         *string            `json:"title"`
	Author        *string            `json:"author"`
	Year          *int               `json:"year"`
	Summary       *string            `json:"summary"`
	Type          *models.TheseType  `json:"type"`
	Etablissement *string            `json:"etablissement"`
	Specialite    *string            `json:"specialite"`
	Encadrant     *string            `json:"encadrant"`
	Membres       *models.StringList `json:"membres"`
}
