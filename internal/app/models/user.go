package models

import (
	"time"
)

// RoleType is the coarse authorization tier of a user.
type RoleType string

const (
	RoleAdmin  RoleType = "admin"
	RoleMember RoleType = "member"
)

// IsValid reports whether the role is one of the known tiers.
func (r RoleType) IsValid() bool {
	return r == RoleAdmin || r == RoleMember
}

// User defines the user model based on the 'users' table.
// Profile list fields are stored as JSON text and decoded by the repository.
type User struct {
	ID                  string        `json:"id" db:"id"`
	Name                string        `json:"name" db:"name"`
	Email               string        `json:"email" db:"email"`
	Password            string        `json:"-" db:"password"` // bcrypt hash, never serialized
	Role                RoleType      `json:"role" db:"role"`
	Position            string        `json:"position" db:"position"`
	Biography           string        `json:"biography" db:"biography"`
	Expertises          StringList    `json:"expertises" db:"expertises"`
	ResearchInterests   StringList    `json:"researchInterests" db:"research_interests"`
	UniversityEducation EducationList `json:"universityEducation" db:"university_education"`
	Image               *string       `json:"image,omitempty" db:"image"`
	MustChangePassword  bool          `json:"mustChangePassword" db:"must_change_password"`
	CreatedAt           time.Time     `json:"createdAt" db:"created_at"`
	UpdatedAt           time.Time     `json:"updatedAt" db:"updated_at"`
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
