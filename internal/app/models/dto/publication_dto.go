package dto

import (
	"github.com/Tndevfactory/labtim/internal/app/models"
)

// CreatePublicationRequest is the payload for creating a publication.
// Authors accepts a native JSON array or a JSON-encoded string; any owner
// id present in the body is ignored, the requester always becomes owner.
type CreatePublicationRequest struct {
	Title   string                 `json:"title" binding:"required"`
	Authors models.StringList      `json:"authors"`
	Year    int                    `json:"year" binding:"required"`
	Journal *string                `json:"journal"`
	Volume  *string                `json:"volume"`
	Pages   *string                `json:"pages"`
	DOI     *string                `json:"doi"`
	Type    models.PublicationType `json:"type"`
}

// UpdatePublicationRequest carries partial updates; only non-nil fields
// are applied.
type UpdatePublicationRequest struct {
	Title   *string                 `json:"title"`
	Authors *models.StringList      `json:"authors"`
	Year    *int                    `json:"year"`
	Journal *string                 `json:"journal"`
	Volume  *string                 `json:"volume"`
	Pages   *string                 `json:"pages"`
	DOI     *string                 `json:"doi"`
	Type    *models.PublicationType `json:"type"`
}
