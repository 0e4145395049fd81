package services

import (
	"context"
	"mime/multipart"
	"strings"

	"github.com/Tndevfactory/labtim/internal/app/models"
	"github.com/Tndevfactory/labtim/internal/app/models/dto"
	"github.com/Tndevfactory/labtim/internal/app/repositories"
	"github.com/Tndevfactory/labtim/internal/pkg/filestorage"
	"github.com/Tndevfactory/labtim/internal/pkg/logger"
)

// PresentationService defines homepage hero and carousel operations.
// Mutations are admin-only, enforced at the route level.
type PresentationService interface {
	GetHero(ctx context.Context) (*models.Hero, error)
	UpdateHero(ctx context.Context, req dto.UpdateHeroRequest, imageFile *multipart.FileHeader) (*models.Hero, error)
	GetCarouselItems(ctx context.Context) ([]models.CarouselItem, error)
	CreateCarouselItem(ctx context.Context, req dto.CreateCarouselItemRequest, imageFile *multipart.FileHeader) (*models.CarouselItem, error)
	UpdateCarouselItem(ctx context.Context, id string, req dto.UpdateCarouselItemRequest, imageFile *multipart.FileHeader) (*models.CarouselItem, error)
	DeleteCarouselItem(ctx context.Context, id string) error
}

type presentationService struct {
	presentationRepo *repositories.PresentationRepository
	storage          *filestorage.LocalStorage
}

// NewPresentationService creates a new PresentationService.
func NewPresentationService(presentationRepo *repositories.PresentationRepository, storage *filestorage.LocalStorage) PresentationService {
	return &presentationService{presentationRepo: presentationRepo, storage: storage}
}

// GetHero returns the singleton hero content.
func (s *presentationService) GetHero(ctx context.Context) (*models.Hero, error) {
	return s.presentationRepo.GetHero(ctx)
}

// UpdateHero upserts the hero row, creating it on first use.
func (s *presentationService) UpdateHero(ctx context.Context, req dto.UpdateHeroRequest, imageFile *multipart.FileHeader) (*models.Hero, error) {
	updates := map[string]interface{}{}
	if req.Title != nil {
		updates["title"] = strings.TrimSpace(*req.Title)
	}
	if req.Subtitle != nil {
		updates["subtitle"] = *req.Subtitle
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.ButtonText != nil {
		updates["button_text"] = *req.ButtonText
	}
	if req.ButtonLink != nil {
		updates["button_link"] = *req.ButtonLink
	}

	var oldImage *string
	if imageFile != nil {
		if existing, err := s.presentationRepo.GetHero(ctx); err == nil {
			oldImage = existing.Image
		}

		path, err := s.storage.SaveFile(imageFile)
		if err != nil {
			return nil, err
		}
		updates["image"] = path
	}

	hero, err := s.presentationRepo.UpsertHero(ctx, updates)
	if err != nil {
		return nil, err
	}

	if oldImage != nil {
		if err := s.storage.DeleteFile(*oldImage); err != nil {
			logger.Warn().Err(err).Str("path", *oldImage).Msg("Failed to delete replaced hero image")
		}
	}

	return hero, nil
}

// GetCarouselItems lists the slides in display order.
func (s *presentationService) GetCarouselItems(ctx context.Context) ([]models.CarouselItem, error) {
	return s.presentationRepo.GetCarouselItems(ctx)
}

// CreateCarouselItem adds a slide, saving its image first when provided.
func (s *presentationService) CreateCarouselItem(ctx context.Context, req dto.CreateCarouselItemRequest, imageFile *multipart.FileHeader) (*models.CarouselItem, error) {
	item := &models.CarouselItem{
		Title:        strings.TrimSpace(req.Title),
		Description:  req.Description,
		DisplayOrder: req.DisplayOrder,
	}

	if imageFile != nil {
		path, err := s.storage.SaveFile(imageFile)
		if err != nil {
			return nil, err
		}
		item.Image = &path
	}

	id, err := s.presentationRepo.CreateCarouselItem(ctx, item)
	if err != nil {
		if item.Image != nil {
			if cleanupErr := s.storage.DeleteFile(*item.Image); cleanupErr != nil {
				logger.Warn().Err(cleanupErr).Str("path", *item.Image).Msg("Failed to clean up image after create failure")
			}
		}
		return nil, err
	}

	return s.presentationRepo.GetCarouselItemByID(ctx, id)
}

// UpdateCarouselItem applies partial changes to a slide.
func (s *presentationService) UpdateCarouselItem(ctx context.Context, id string, req dto.UpdateCarouselItemRequest, imageFile *multipart.FileHeader) (*models.CarouselItem, error) {
	item, err := s.presentationRepo.GetCarouselItemByID(ctx, id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.Title != nil {
		updates["title"] = strings.TrimSpace(*req.Title)
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.DisplayOrder != nil {
		updates["display_order"] = *req.DisplayOrder
	}

	var oldImage *string
	if imageFile != nil {
		path, err := s.storage.SaveFile(imageFile)
		if err != nil {
			return nil, err
		}
		updates["image"] = path
		oldImage = item.Image
	}

	if err := s.presentationRepo.UpdateCarouselItem(ctx, id, updates); err != nil {
		return nil, err
	}

	if oldImage != nil {
		if err := s.storage.DeleteFile(*oldImage); err != nil {
			logger.Warn().Err(err).Str("path", *oldImage).Msg("Failed to delete replaced carousel image")
		}
	}

	return s.presentationRepo.GetCarouselItemByID(ctx, id)
}

// DeleteCarouselItem removes a slide and its image file.
func (s *presentationService) DeleteCarouselItem(ctx context.Context, id string) error {
	item, err := s.presentationRepo.GetCarouselItemByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.presentationRepo.DeleteCarouselItem(ctx, id); err != nil {
		return err
	}

	if item.Image != nil {
		if err := s.storage.DeleteFile(*item.Image); err != nil {
			logger.Warn().Err(err).Str("path", *item.Image).Msg("Failed to delete carousel image")
		}
	}

	return nil
}
