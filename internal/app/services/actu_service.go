package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"strings"

	"github.com/Tndevfactory/labtim/internal/app/models"
	"github.com/Tndevfactory/labtim/internal/app/models/dto"
	"github.com/Tndevfactory/labtim/internal/app/repositories"
	"github.com/Tndevfactory/labtim/internal/pkg/apperrors"
	"github.com/Tndevfactory/labtim/internal/pkg/filestorage"
	"github.com/Tndevfactory/labtim/internal/pkg/logger"
)

// ActuService defines news item operations.
type ActuService interface {
	GetAll(ctx context.Context, filter repositories.ActuFilter) ([]models.Actu, error)
	GetByID(ctx context.Context, id string) (*models.Actu, error)
	Create(ctx context.Context, identity models.Identity, req dto.CreateActuRequest, imageFile *multipart.FileHeader) (*models.Actu, error)
	Update(ctx context.Context, identity models.Identity, id string, req dto.UpdateActuRequest, imageFile *multipart.FileHeader) (*models.Actu, error)
	Delete(ctx context.Context, identity models.Identity, id string) error
}

type actuService struct {
	actuRepo *repositories.ActuRepository
	storage  *filestorage.LocalStorage
}

// NewActuService creates a new ActuService.
func NewActuService(actuRepo *repositories.ActuRepository, storage *filestorage.LocalStorage) ActuService {
	return &actuService{actuRepo: actuRepo, storage: storage}
}

// GetAll lists news items matching the filter.
func (s *actuService) GetAll(ctx context.Context, filter repositories.ActuFilter) ([]models.Actu, error) {
	return s.actuRepo.GetAll(ctx, filter)
}

// GetByID returns one news item.
func (s *actuService) GetByID(ctx context.Context, id string) (*models.Actu, error) {
	return s.actuRepo.GetByID(ctx, id)
}

// Create stores a news item owned by the requester, saving the uploaded
// image first when one accompanies the request.
func (s *actuService) Create(ctx context.Context, identity models.Identity, req dto.CreateActuRequest, imageFile *multipart.FileHeader) (*models.Actu, error) {
	if !req.Category.IsValid() {
		return nil, apperrors.NewValidationError(fmt.Sprintf("invalid category: %s", req.Category))
	}

	actu := &models.Actu{
		Title:            strings.TrimSpace(req.Title),
		Category:         req.Category,
		Date:             req.Date,
		ShortDescription: req.ShortDescription,
		FullContent:      req.FullContent,
		UserID:           identity.ID,
	}

	if imageFile != nil {
		path, err := s.storage.SaveFile(imageFile)
		if err != nil {
			return nil, err
		}
		actu.Image = &path
	}

	id, err := s.actuRepo.Create(ctx, actu)
	if err != nil {
		if actu.Image != nil {
			if cleanupErr := s.storage.DeleteFile(*actu.Image); cleanupErr != nil {
				logger.Warn().Err(cleanupErr).Str("path", *actu.Image).Msg("Failed to clean up image after create failure")
			}
		}
		return nil, err
	}

	return s.actuRepo.GetByID(ctx, id)
}

// Update applies partial changes after an ownership check. A new image
// replaces the old one; the old file is removed after the row commits.
func (s *actuService) Update(ctx context.Context, identity models.Identity, id string, req dto.UpdateActuRequest, imageFile *multipart.FileHeader) (*models.Actu, error) {
	actu, err := s.actuRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !identity.CanModify(actu.UserID) {
		return nil, apperrors.NewForbiddenError("you can only modify your own news items")
	}

	updates := map[string]interface{}{}
	if req.Title != nil {
		updates["title"] = strings.TrimSpace(*req.Title)
	}
	if req.Category != nil {
		if !req.Category.IsValid() {
			return nil, apperrors.NewValidationError(fmt.Sprintf("invalid category: %s", *req.Category))
		}
		updates["category"] = *req.Category
	}
	if req.Date != nil {
		updates["date"] = *req.Date
	}
	if req.ShortDescription != nil {
		updates["short_description"] = *req.ShortDescription
	}
	if req.FullContent != nil {
		updates["full_content"] = *req.FullContent
	}

	var oldImage *string
	if imageFile != nil {
		path, err := s.storage.SaveFile(imageFile)
		if err != nil {
			return nil, err
		}
		updates["image"] = path
		oldImage = actu.Image
	}

	if err := s.actuRepo.Update(ctx, id, updates); err != nil {
		return nil, err
	}

	if oldImage != nil {
		if err := s.storage.DeleteFile(*oldImage); err != nil {
			logger.Warn().Err(err).Str("path", *oldImage).Msg("Failed to delete replaced actu image")
		}
	}

	return s.actuRepo.GetByID(ctx, id)
}

// Delete removes a news item after an ownership check. The image file is
// removed after the row; a file failure is logged, not surfaced.
func (s *actuService) Delete(ctx context.Context, identity models.Identity, id string) error {
	actu, err := s.actuRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if !identity.CanModify(actu.UserID) {
		return apperrors.NewForbiddenError("you can only delete your own news items")
	}

	if err := s.actuRepo.Delete(ctx, id); err != nil {
		return err
	}

	if actu.Image != nil {
		if err := s.storage.DeleteFile(*actu.Image); err != nil {
			logger.Warn().Err(err).Str("path", *actu.Image).Msg("Failed to delete actu image")
		}
	}

	return nil
}
