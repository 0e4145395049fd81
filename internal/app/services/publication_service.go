package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/Tndevfactory/labtim/internal/app/models"
	"github.com/Tndevfactory/labtim/internal/app/models/dto"
	"github.com/Tndevfactory/labtim/internal/app/repositories"
	"github.com/Tndevfactory/labtim/internal/pkg/apperrors"
	"github.com/Tndevfactory/labtim/internal/pkg/dberrors"
)

// doiConstraint is the unique constraint name on publications.doi.
const doiConstraint = "publications_doi_key"

// PublicationService defines publication operations.
type PublicationService interface {
	GetAll(ctx context.Context, filter repositories.PublicationFilter) ([]models.Publication, error)
	GetByID(ctx context.Context, id string) (*models.Publication, error)
	Create(ctx context.Context, identity models.Identity, req dto.CreatePublicationRequest) (*models.Publication, error)
	Update(ctx context.Context, identity models.Identity, id string, req dto.UpdatePublicationRequest) (*models.Publication, error)
	Delete(ctx context.Context, identity models.Identity, id string) error
}

type publicationService struct {
	publicationRepo *repositories.PublicationRepository
}

// NewPublicationService creates a new PublicationService.
func NewPublicationService(publicationRepo *repositories.PublicationRepository) PublicationService {
	return &publicationService{publicationRepo: publicationRepo}
}

// creatorDisplayName returns the joined creator's name, empty when the
// owning user no longer resolves.
func creatorDisplayName(name *string) string {
	if name == nil {
		return ""
	}
	return *name
}

// normalizeAuthors guarantees the creator appears in the author list,
// prepended when absent. An empty list with no usable creator name cannot
// produce a valid publication.
func normalizeAuthors(authors models.StringList, creatorName string) (models.StringList, error) {
	creatorName = strings.TrimSpace(creatorName)

	cleaned := models.StringList{}
	for _, a := range authors {
		if a = strings.TrimSpace(a); a != "" {
			cleaned = append(cleaned, a)
		}
	}

	if creatorName == "" {
		if len(cleaned) == 0 {
			return nil, apperrors.NewValidationError("at least one author is required")
		}
		return cleaned, nil
	}

	if cleaned.Contains(creatorName) {
		return cleaned, nil
	}
	return append(models.StringList{creatorName}, cleaned...), nil
}

// GetAll lists publications matching the filter.
func (s *publicationService) GetAll(ctx context.Context, filter repositories.PublicationFilter) ([]models.Publication, error) {
	return s.publicationRepo.GetAll(ctx, filter)
}

// GetByID returns one publication.
func (s *publicationService) GetByID(ctx context.Context, id string) (*models.Publication, error) {
	return s.publicationRepo.GetByID(ctx, id)
}

// Create stores a new publication owned by the requester.
func (s *publicationService) Create(ctx context.Context, identity models.Identity, req dto.CreatePublicationRequest) (*models.Publication, error) {
	pubType := req.Type
	if pubType == "" {
		pubType = models.PublicationJournal
	}
	if !pubType.IsValid() {
		return nil, apperrors.NewValidationError(fmt.Sprintf("invalid publication type: %s", req.Type))
	}

	authors, err := normalizeAuthors(req.Authors, identity.Name)
	if err != nil {
		return nil, err
	}

	publication := &models.Publication{
		Title:   strings.TrimSpace(req.Title),
		Authors: authors,
		Year:    req.Year,
		Journal: req.Journal,
		Volume:  req.Volume,
		Pages:   req.Pages,
		DOI:     normalizeDOI(req.DOI),
		Type:    pubType,
		UserID:  identity.ID,
	}

	id, err := s.publicationRepo.Create(ctx, publication)
	if err != nil {
		return nil, translatePublicationError(err)
	}

	return s.publicationRepo.GetByID(ctx, id)
}

// Update applies partial changes after an ownership check.
func (s *publicationService) Update(ctx context.Context, identity models.Identity, id string, req dto.UpdatePublicationRequest) (*models.Publication, error) {
	publication, err := s.publicationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !identity.CanModify(publication.UserID) {
		return nil, apperrors.NewForbiddenError("you can only modify your own publications")
	}

	updates := map[string]interface{}{}
	if req.Title != nil {
		updates["title"] = strings.TrimSpace(*req.Title)
	}
	if req.Authors != nil {
		// on update the list is normalized against the record owner, not
		// the requester, so an editing admin never lands in the list
		authors, err := normalizeAuthors(*req.Authors, creatorDisplayName(publication.CreatorName))
		if err != nil {
			return nil, err
		}
		updates["authors"] = authors.Encode()
	}
	if req.Year != nil {
		updates["year"] = *req.Year
	}
	if req.Journal != nil {
		updates["journal"] = *req.Journal
	}
	if req.Volume != nil {
		updates["volume"] = *req.Volume
	}
	if req.Pages != nil {
		updates["pages"] = *req.Pages
	}
	if req.DOI != nil {
		updates["doi"] = normalizeDOI(req.DOI)
	}
	if req.Type != nil {
		if !req.Type.IsValid() {
			return nil, apperrors.NewValidationError(fmt.Sprintf("invalid publication type: %s", *req.Type))
		}
		updates["type"] = *req.Type
	}

	if err := s.publicationRepo.Update(ctx, id, updates); err != nil {
		return nil, translatePublicationError(err)
	}

	return s.publicationRepo.GetByID(ctx, id)
}

// Delete removes a publication after an ownership check.
func (s *publicationService) Delete(ctx context.Context, identity models.Identity, id string) error {
	publication, err := s.publicationRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if !identity.CanModify(publication.UserID) {
		return apperrors.NewForbiddenError("you can only delete your own publications")
	}

	return s.publicationRepo.Delete(ctx, id)
}

// translatePublicationError rewrites a DOI unique violation into the
// user-facing validation error; anything else passes through.
func translatePublicationError(err error) error {
	if dberrors.IsDuplicateConstraintError(err, doiConstraint) {
		return apperrors.NewValidationError(apperrors.ErrDuplicateDOI.Error())
	}
	return err
}

// normalizeDOI trims the value and maps an empty DOI to NULL so the unique
// constraint only applies to real identifiers.
func normalizeDOI(doi *string) *string {
	if doi == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*doi)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
