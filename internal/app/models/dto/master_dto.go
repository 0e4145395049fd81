package dto

import (
	"github.com/Tndevfactory/labtim/internal/app/models"
)

// CreateMasterRequest is the payload for creating a master/PFE project.
// A blank author defaults to the requester's display name.
type CreateMasterRequest struct {
	Title         string            `json:"title" binding:"required"`
	Author        string            `json:"author"`
	Year          int               `json:"year" binding:"required"`
	Summary       string            `json:"summary"`
	Type          models.MasterType `json:"type" binding:"required"`
	Etablissement string            `json:"etablissement"`
	Specialite    string            `json:"specialite"`
	Encadrant     string            `json:"encadrant"`
	Membres       models.StringList `json:"membres"`
}

// UpdateMasterRequest carries partial updates; only non-nil fields are applied.
type UpdateMasterRequest struct {
	Title         *string            `json:"title"`
	Author        *string            `json:"author"`
	Year          *int               `json:"year"`
	Summary       *string            `json:"summary"`
	Type          *models.MasterType `json:"type"`
	Etablissement *string            `json:"etablissement"`
	Specialite    *string            `json:"specialite"`
	Encadrant     *string            `json:"encadrant"`
	Membres       *models.StringList `json:"membres"`
}
