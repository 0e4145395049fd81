package models

import (
	"time"
)

// MasterType distinguishes a Master project from a PFE.
type MasterType string

const (
	MasterResearch MasterType = "Master"
	MasterPFE      MasterType = "PFE"
)

// IsValid reports whether the type is one of the accepted kinds.
func (t MasterType) IsValid() bool {
	return t == MasterResearch || t == MasterPFE
}

// MasterSI defines a master/PFE project record based on the 'masters'
// table. Identical shape to These apart from the type enum.
type MasterSI struct {
	ID            string     `json:"id" db:"id"`
	Title         string     `json:"title" db:"title"`
	Author        string     `json:"author" db:"author"`
	Year          int        `json:"year" db:"year"`
	Summary       string     `json:"summary" db:"summary"`
	Type          MasterType `json:"type" db:"type"`
	Etablissement string     `json:"etablissement" db:"etablissement"`
	Specialite    string     `json:"specialite" db:"specialite"`
	Encadrant     string     `json:"encadrant" db:"encadrant"`
	Membres       StringList `json:"membres" db:"membres"`
	UserID        string     `json:"creatorId" db:"user_id"`
	CreatorName   *string    `json:"creatorName"`
	CreatorEmail  *string    `json:"creatorEmail"`
	CreatedAt     time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt     time.Time  `json:"updatedAt" db:"updated_at"`
}
