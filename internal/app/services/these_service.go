package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/Tndevfactory/labtim/internal/app/models"
	"github.com/Tndevfactory/labtim/internal/app/models/dto"
	"github.com/Tndevfactory/labtim/internal/app/repositories"
	"github.com/Tndevfactory/labtim/internal/pkg/apperrors"
)

// TheseService defines thesis operations.
type TheseService interface {
	GetAll(ctx context.Context, filter repositories.TheseFilter) ([]models.These, error)
	GetByID(ctx context.Context, id string) (*models.These, error)
	Create(ctx context.Context, identity models.Identity, req dto.CreateTheseRequest) (*models.These, error)
	Update(ctx context.Context, identity models.Identity, id string, req dto.UpdateTheseRequest) (*models.These, error)
	Delete(ctx context.Context, identity models.Identity, id string) error
}

type theseService struct {
	theseRepo *repositories.TheseRepository
}

// NewTheseService creates a new TheseService.
func NewTheseService(theseRepo *repositories.TheseRepository) TheseService {
	return &theseService{theseRepo: theseRepo}
}

// resolveAuthor falls back to the requester's display name when the author
// field is blank. A record needs some author to be meaningful.
func resolveAuthor(author, identityName string) (string, error) {
	author = strings.TrimSpace(author)
	if author != "" {
		return author, nil
	}
	identityName = strings.TrimSpace(identityName)
	if identityName == "" {
		return "", apperrors.NewValidationError("author is required")
	}
	return identityName, nil
}

// GetAll lists theses matching the filter.
func (s *theseService) GetAll(ctx context.Context, filter repositories.TheseFilter) ([]models.These, error) {
	return s.theseRepo.GetAll(ctx, filter)
}

// GetByID returns one thesis.
func (s *theseService) GetByID(ctx context.Context, id string) (*models.These, error) {
	return s.theseRepo.GetByID(ctx, id)
}

// Create stores a new thesis owned by the requester.
func (s *theseService) Create(ctx context.Context, identity models.Identity, req dto.CreateTheseRequest) (*models.These, error) {
	if !req.Type.IsValid() {
		return nil, apperrors.NewValidationError(fmt.Sprintf("invalid these type: %s", req.Type))
	}

	author, err := resolveAuthor(req.Author, identity.Name)
	if err != nil {
		return nil, err
	}

	these := &models.These{
		Title:         strings.TrimSpace(req.Title),
		Author:        author,
		Year:          req.Year,
		Summary:       req.Summary,
		Type:          req.Type,
		Etablissement: req.Etablissement,
		Specialite:    req.Specialite,
		Encadrant:     req.Encadrant,
		Membres:       req.Membres,
		UserID:        identity.ID,
	}

	id, err := s.theseRepo.Create(ctx, these)
	if err != nil {
		return nil, err
	}

	return s.theseRepo.GetByID(ctx, id)
}

// Update applies partial changes after an ownership check.
func (s *theseService) Update(ctx context.Context, identity models.Identity, id string, req dto.UpdateTheseRequest) (*models.These, error) {
	these, err := s.theseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !identity.CanModify(these.UserID) {
		return nil, apperrors.NewForbiddenError("you can only modify your own theses")
	}

	updates := map[string]interface{}{}
	if req.Title != nil {
		updates["title"] = strings.TrimSpace(*req.Title)
	}
	if req.Author != nil {
		// blank author on update defaults to the record owner's name,
		// never to the requester's
		author, err := resolveAuthor(*req.Author, creatorDisplayName(these.CreatorName))
		if err != nil {
			return nil, err
		}
		updates["author"] = author
	}
	if req.Year != nil {
		updates["year"] = *req.Year
	}
	if req.Summary != nil {
		updates["summary"] = *req.Summary
	}
	if req.Type != nil {
		if !req.Type.IsValid() {
			return nil, apperrors.NewValidationError(fmt.Sprintf("invalid these type: %s", *req.Type))
		}
		updates["type"] = *req.Type
	}
	if req.Etablissement != nil {
		updates["etablissement"] = *req.Etablissement
	}
	if req.Specialite != nil {
		updates["specialite"] = *req.Specialite
	}
	if req.Encadrant != nil {
		updates["encadrant"] = *req.Encadrant
	}
	if req.Membres != nil {
		updates["membres"] = req.Membres.Encode()
	}

	if err := s.theseRepo.Update(ctx, id, updates); err != nil {
		return nil, err
	}

	return s.theseRepo.GetByID(ctx, id)
}

// Delete removes a thesis after an ownership check.
func (s *theseService) Delete(ctx context.Context, identity models.Identity, id string) error {
	these, err := s.theseRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if !identity.CanModify(these.UserID) {
		return apperrors.NewForbiddenError("you can only delete your own theses")
	}

	return s.theseRepo.Delete(ctx, id)
}
