package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Tndevfactory/labtim/internal/app/models/dto"
	"github.com/Tndevfactory/labtim/internal/app/repositories"
	"github.com/Tndevfactory/labtim/internal/app/services"
	"github.com/Tndevfactory/labtim/internal/middleware"
)

// PublicationController handles publication endpoints.
type PublicationController struct {
	publicationService services.PublicationService
}

// NewPublicationController creates a new PublicationController.
func NewPublicationController(publicationService services.PublicationService) *PublicationController {
	return &PublicationController{publicationService: publicationService}
}

// GetAll handles GET /api/publications.
func (ctrl *PublicationController) GetAll(c *gin.Context) {
	filter := repositories.PublicationFilter{
		CreatorID:  queryString(c, "creatorId"),
		Year:       queryInt(c, "year"),
		SearchTerm: queryString(c, "searchTerm"),
	}

	publications, err := ctrl.publicationService.GetAll(c.Request.Context(), filter)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewListResponse(len(publications), publications))
}

// GetByID handles GET /api/publications/:id.
func (ctrl *PublicationController) GetByID(c *gin.Context) {
	publication, err := ctrl.publicationService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(publication))
}

// Create handles POST /api/publications.
func (ctrl *PublicationController) Create(c *gin.Context) {
	identity, ok := middleware.CurrentIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized,
			dto.NewErrorResponse(dto.ErrorCodeUnauthorized, "Authentication required"))
		return
	}

	var req dto.CreatePublicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	publication, err := ctrl.publicationService.Create(c.Request.Context(), identity, req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewSuccessResponse(publication))
}

// Update handles PUT /api/publications/:id.
func (ctrl *PublicationController) Update(c *gin.Context) {
	identity, ok := middleware.CurrentIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized,
			dto.NewErrorResponse(dto.ErrorCodeUnauthorized, "Authentication required"))
		return
	}

	var req dto.UpdatePublicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	publication, err := ctrl.publicationService.Update(c.Request.Context(), identity, c.Param("id"), req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(publication))
}

// Delete handles DELETE /api/publications/:id.
func (ctrl *PublicationController) Delete(c *gin.Context) {
	identity, ok := middleware.CurrentIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized,
			dto.NewErrorResponse(dto.ErrorCodeUnauthorized, "Authentication required"))
		return
	}

	if err := ctrl.publicationService.Delete(c.Request.Context(), identity, c.Param("id")); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewMessageResponse("Publication deleted successfully"))
}
