package controllers

import (
	"errors"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Tndevfactory/labtim/internal/app/models"
	"github.com/Tndevfactory/labtim/internal/app/models/dto"
	"github.com/Tndevfactory/labtim/internal/app/services"
	"github.com/Tndevfactory/labtim/internal/middleware"
	"github.com/Tndevfactory/labtim/internal/pkg/apperrors"
)

// PresentationController handles homepage hero and carousel endpoints.
type PresentationController struct {
	presentationService services.PresentationService
}

// NewPresentationController creates a new PresentationController.
func NewPresentationController(presentationService services.PresentationService) *PresentationController {
	return &PresentationController{presentationService: presentationService}
}

// GetHero handles GET /api/hero. An unconfigured hero returns an empty
// record rather than a 404 so the public homepage always renders.
func (ctrl *PresentationController) GetHero(c *gin.Context) {
	hero, err := ctrl.presentationService.GetHero(c.Request.Context())
	if err != nil {
		if errors.Is(err, apperrors.ErrHeroNotFound) {
			c.JSON(http.StatusOK, dto.NewSuccessResponse(&models.Hero{}))
			return
		}
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(hero))
}

// UpdateHero handles PUT /api/hero. Admin-only upsert.
func (ctrl *PresentationController) UpdateHero(c *gin.Context) {
	var req dto.UpdateHeroRequest
	var imageFile *multipart.FileHeader

	if isMultipart(c) {
		if err := c.ShouldBind(&req); err != nil {
			middleware.HandleValidationError(c, err)
			return
		}
		imageFile = formImage(c)
	} else {
		if err := c.ShouldBindJSON(&req); err != nil {
			middleware.HandleValidationError(c, err)
			return
		}
	}

	hero, err := ctrl.presentationService.UpdateHero(c.Request.Context(), req, imageFile)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(hero))
}

// GetCarouselItems handles GET /api/carousel.
func (ctrl *PresentationController) GetCarouselItems(c *gin.Context) {
	items, err := ctrl.presentationService.GetCarouselItems(c.Request.Context())
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewListResponse(len(items), items))
}

// CreateCarouselItem handles POST /api/carousel. Admin-only.
func (ctrl *PresentationController) CreateCarouselItem(c *gin.Context) {
	var req dto.CreateCarouselItemRequest
	var imageFile *multipart.FileHeader

	if isMultipart(c) {
		if err := c.ShouldBind(&req); err != nil {
			middleware.HandleValidationError(c, err)
			return
		}
		imageFile = formImage(c)
	} else {
		if err := c.ShouldBindJSON(&req); err != nil {
			middleware.HandleValidationError(c, err)
			return
		}
	}

	item, err := ctrl.presentationService.CreateCarouselItem(c.Request.Context(), req, imageFile)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewSuccessResponse(item))
}

// UpdateCarouselItem handles PUT /api/carousel/:id. Admin-only.
func (ctrl *PresentationController) UpdateCarouselItem(c *gin.Context) {
	var req dto.UpdateCarouselItemRequest
	var imageFile *multipart.FileHeader

	if isMultipart(c) {
		if err := c.ShouldBind(&req); err != nil {
			middleware.HandleValidationError(c, err)
			return
		}
		imageFile = formImage(c)
	} else {
		if err := c.ShouldBindJSON(&req); err != nil {
			middleware.HandleValidationError(c, err)
			return
		}
	}

	item, err := ctrl.presentationService.UpdateCarouselItem(c.Request.Context(), c.Param("id"), req, imageFile)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(item))
}

// DeleteCarouselItem handles DELETE /api/carousel/:id. Admin-only.
func (ctrl *PresentationController) DeleteCarouselItem(c *gin.Context) {
	if err := ctrl.presentationService.DeleteCarouselItem(c.Request.Context(), c.Param("id")); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewMessageResponse("Carousel item deleted successfully"))
}
