package dto

import (
	"github.com/Tndevfactory/labtim/internal/app/models"
)

// CreateUserRequest is the admin payload for provisioning a member.
// The temporary password is generated server-side and emailed.
type CreateUserRequest struct {
	Name     string          `json:"name" form:"name" binding:"required"`
	Email    string          `json:"email" form:"email" binding:"required,email"`
	Role     models.RoleType `json:"role" form:"role"`
	Position string          `json:"position" form:"position"`
}

// UpdateUserRequest carries partial profile updates; only non-nil fields
// are applied. List fields accept a native array or a JSON-encoded string.
type UpdateUserRequest struct {
	Name                *string               `json:"name"`
	Email               *string               `json:"email"`
	Role                *models.RoleType      `json:"role"`
	Position            *string               `json:"position"`
	Biography           *string               `json:"biography"`
	Expertises          *models.StringList    `json:"expertises"`
	ResearchInterests   *models.StringList    `json:"researchInterests"`
	UniversityEducation *models.EducationList `json:"universityEducation"`
}
