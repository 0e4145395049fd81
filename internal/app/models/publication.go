package models

import (
	"time"
)

// PublicationType classifies a scholarly record.
type PublicationType string

const (
	PublicationJournal     PublicationType = "journal"
	PublicationConference  PublicationType = "conference"
	PublicationBookChapter PublicationType = "book_chapter"
	PublicationChapter     PublicationType = "chapter"
	PublicationThesis      PublicationType = "thesis"
	PublicationReport      PublicationType = "report"
	PublicationPatent      PublicationType = "patent"
	PublicationOther       PublicationType = "other"
)

// IsValid reports whether the type is one of the accepted kinds.
func (t PublicationType) IsValid() bool {
	switch t {
	case PublicationJournal, PublicationConference, PublicationBookChapter,
		PublicationChapter, PublicationThesis, PublicationReport,
		PublicationPatent, PublicationOther:
		return true
	}
	return false
}

// Publication defines the publication model based on the 'publications'
// table. CreatorName and CreatorEmail are derived at read time by joining
// against users; they are nil when the owning user no longer resolves.
// UserID is exposed as creatorId to keep the API name stable regardless of
// the internal foreign-key column.
type Publication struct {
	ID           string          `json:"id" db:"id"`
	Title        string          `json:"title" db:"title"`
	Authors      StringList      `json:"authors" db:"authors"` // JSON text in DB
	Year         int             `json:"year" db:"year"`
	Journal      *string         `json:"journal,omitempty" db:"journal"`
	Volume       *string         `json:"volume,omitempty" db:"volume"`
	Pages        *string         `json:"pages,omitempty" db:"pages"`
	DOI          *string         `json:"doi,omitempty" db:"doi"`
	Type         PublicationType `json:"type" db:"type"`
	UserID       string          `json:"creatorId" db:"user_id"`
	CreatorName  *string         `json:"creatorName"`
	CreatorEmail *string         `json:"creatorEmail"`
	CreatedAt    time.Time       `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time       `json:"updatedAt" db:"updated_at"`
}
