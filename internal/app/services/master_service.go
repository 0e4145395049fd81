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

// MasterService defines master/PFE project operations.
type MasterService interface {
	GetAll(ctx context.Context, filter repositories.MasterFilter) ([]models.MasterSI, error)
	GetByID(ctx context.Context, id string) (*models.MasterSI, error)
	Create(ctx context.Context, identity models.Identity, req dto.CreateMasterRequest) (*models.MasterSI, error)
	Update(ctx context.Context, identity models.Identity, id string, req dto.UpdateMasterRequest) (*models.MasterSI, error)
	Delete(ctx context.Context, identity models.Identity, id string) error
}

type masterService struct {
	masterRepo *repositories.MasterRepository
}

// NewMasterService creates a new MasterService.
func NewMasterService(masterRepo *repositories.MasterRepository) MasterService {
	return &masterService{masterRepo: masterRepo}
}

// GetAll lists master projects matching the filter.
func (s *masterService) GetAll(ctx context.Context, filter repositories.MasterFilter) ([]models.MasterSI, error) {
	return s.masterRepo.GetAll(ctx, filter)
}

// GetByID returns one master project.
func (s *masterService) GetByID(ctx context.Context, id string) (*models.MasterSI, error) {
	return s.masterRepo.GetByID(ctx, id)
}

// Create stores a new master project owned by the requester.
func (s *masterService) Create(ctx context.Context, identity models.Identity, req dto.CreateMasterRequest) (*models.MasterSI, error) {
	if !req.Type.IsValid() {
		return nil, apperrors.NewValidationError(fmt.Sprintf("invalid master type: %s", req.Type))
	}

	author, err := resolveAuthor(req.Author, identity.Name)
	if err != nil {
		return nil, err
	}

	master := &models.MasterSI{
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

	id, err := s.masterRepo.Create(ctx, master)
	if err != nil {
		return nil, err
	}

	return s.masterRepo.GetByID(ctx, id)
}

// Update applies partial changes after an ownership check.
func (s *masterService) Update(ctx context.Context, identity models.Identity, id string, req dto.UpdateMasterRequest) (*models.MasterSI, error) {
	master, err := s.masterRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !identity.CanModify(master.UserID) {
		return nil, apperrors.NewForbiddenError("you can only modify your own projects")
	}

	updates := map[string]interface{}{}
	if req.Title != nil {
		updates["title"] = strings.TrimSpace(*req.Title)
	}
	if req.Author != nil {
		// blank author on update defaults to the record owner's name,
		// never to the requester's
		author, err := resolveAuthor(*req.Author, creatorDisplayName(master.CreatorName))
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
			return nil, apperrors.NewValidationError(fmt.Sprintf("invalid master type: %s", *req.Type))
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

	if err := s.masterRepo.Update(ctx, id, updates); err != nil {
		return nil, err
	}

	return s.masterRepo.GetByID(ctx, id)
}

// Delete removes a master project after an ownership check.
func (s *masterService) Delete(ctx context.Context, identity models.Identity, id string) error {
	master, err := s.masterRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if !identity.CanModify(master.UserID) {
		return apperrors.NewForbiddenError("you can only delete your own projects")
	}

	return s.masterRepo.Delete(ctx, id)
}
