package controllers

import (
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Tndevfactory/labtim/internal/app/models"
	"github.com/Tndevfactory/labtim/internal/app/models/dto"
	"github.com/Tndevfactory/labtim/internal/app/repositories"
	"github.com/Tndevfactory/labtim/internal/app/services"
	"github.com/Tndevfactory/labtim/internal/middleware"
)

// ActuController handles news item endpoints.
type ActuController struct {
	actuService services.ActuService
}

// NewActuController creates a new ActuController.
func NewActuController(actuService services.ActuService) *ActuController {
	return &ActuController{actuService: actuService}
}

// GetAll handles GET /api/actus.
func (ctrl *ActuController) GetAll(c *gin.Context) {
	filter := repositories.ActuFilter{
		CreatorID:  queryString(c, "creatorId"),
		SearchTerm: queryString(c, "searchTerm"),
	}
	if cat := queryString(c, "category"); cat != nil {
		category := models.ActuCategory(*cat)
		filter.Category = &category
	}

	actus, err := ctrl.actuService.GetAll(c.Request.Context(), filter)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewListResponse(len(actus), actus))
}

// GetByID handles GET /api/actus/:id.
func (ctrl *ActuController) GetByID(c *gin.Context) {
	actu, err := ctrl.actuService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(actu))
}

// Create handles POST /api/actus, accepting JSON or multipart with an
// optional image file.
func (ctrl *ActuController) Create(c *gin.Context) {
	identity, ok := middleware.CurrentIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized,
			dto.NewErrorResponse(dto.ErrorCodeUnauthorized, "Authentication required"))
		return
	}

	var req dto.CreateActuRequest
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

	actu, err := ctrl.actuService.Create(c.Request.Context(), identity, req, imageFile)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewSuccessResponse(actu))
}

// Update handles PUT /api/actus/:id, accepting JSON or multipart.
func (ctrl *ActuController) Update(c *gin.Context) {
	identity, ok := middleware.CurrentIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized,
			dto.NewErrorResponse(dto.ErrorCodeUnauthorized, "Authentication required"))
		return
	}

	var req dto.UpdateActuRequest
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

	actu, err := ctrl.actuService.Update(c.Request.Context(), identity, c.Param("id"), req, imageFile)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(actu))
}

// Delete handles DELETE /api/actus/:id.
func (ctrl *ActuController) Delete(c *gin.Context) {
	identity, ok := middleware.CurrentIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized,
			dto.NewErrorResponse(dto.ErrorCodeUnauthorized, "Authentication required"))
		return
	}

	if err := ctrl.actuService.Delete(c.Request.Context(), identity, c.Param("id")); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewMessageResponse("Actu deleted successfully"))
}

// formImage returns the uploaded image file, nil when the form has none.
func formImage(c *gin.Context) *multipart.FileHeader {
	file, err := c.FormFile("image")
	if err != nil {
		return nil
	}
	return file
}
