package models

import (
	"time"
)

// TheseType distinguishes an HDR from a doctoral thesis.
type TheseType string

const (
	TheseHDR      TheseType = "HDR"
	TheseDoctorat TheseType = "These"
)

// IsValid reports whether the type is one of the accepted kinds.
func (t TheseType) IsValid() bool {
	return t == TheseHDR || t == TheseDoctorat
}

// These defines a supervised-work record based on the 'theses' table.
// Membres holds the jury, stored as JSON text.
type These struct {
	ID            string     `json:"id" db:"id"`
	Title         string     `json:"title" db:"title"`
	Author        string     `json:"author" db:"author"`
	Year          int        `json:"year" db:"year"`
	Summary       string     `json:"summary" db:"summary"`
	Type          TheseType  `json:"type" db:"type"`
	Etablissement string     `json:"etablissement" db:"etablissement"`
	Specialite    string     `json:"specialite" db:"specialite"`
	Encadrant     string     `json:"encadrant" db:"encadrant"`
	Membres       StringList `json:"membres" db:"membres"` // JSON text in DB
	UserID        string     `json:"creatorId" db:"user_id"`
	CreatorName   *string    `json:"creatorName"`
	CreatorEmail  *string    `json:"creatorEmail"`
	CreatedAt     time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt     time.Time  `json:"updatedAt" db:"updated_at"`
}
