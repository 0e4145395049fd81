package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Tndevfactory/labtim/internal/app/models"
	"github.com/Tndevfactory/labtim/internal/app/models/dto"
	"github.com/Tndevfactory/labtim/internal/app/repositories"
	"github.com/Tndevfactory/labtim/internal/app/services"
	"github.com/Tndevfactory/labtim/internal/middleware"
)

// TheseController handles thesis endpoints.
type TheseController struct {
	theseService services.TheseService
}

// NewTheseController creates a new TheseController.
func NewTheseController(theseService services.TheseService) *TheseController {
	return &TheseController{theseService: theseService}
}

// GetAll handles GET /api/theses.
func (ctrl *TheseController) GetAll(c *gin.Context) {
	filter := repositories.TheseFilter{
		CreatorID:  queryString(c, "creatorId"),
		Year:       queryInt(c, "year"),
		SearchTerm: queryString(c, "searchTerm"),
	}
	if t := queryString(c, "type"); t != nil {
		theseType := models.TheseType(*t)
		filter.Type = &theseType
	}

	theses, err := ctrl.theseService.GetAll(c.Request.Context(), filter)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewListResponse(len(theses), theses))
}

// GetByID handles GET /api/theses/:id.
func (ctrl *TheseController) GetByID(c *gin.Context) {
	these, err := ctrl.theseService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(these))
}

// Create handles POST /api/theses.
func (ctrl *TheseController) Create(c *gin.Context) {
	identity, ok := middleware.CurrentIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized,
			dto.NewErrorResponse(dto.ErrorCodeUnauthorized, "Authentication required"))
		return
	}

	var req dto.CreateTheseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	these, err := ctrl.theseService.Create(c.Request.Context(), identity, req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewSuccessResponse(these))
}

// Update handles PUT /api/theses/:id.
func (ctrl *TheseController) Update(c *gin.Context) {
	identity, ok := middleware.CurrentIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized,
			dto.NewErrorResponse(dto.ErrorCodeUnauthorized, "Authentication required"))
		return
	}

	var req dto.UpdateTheseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	these, err := ctrl.theseService.Update(c.Request.Context(), identity, c.Param("id"), req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(these))
}

// Delete handles DELETE /api/theses/:id.
func (ctrl *TheseController) Delete(c *gin.Context) {
	identity, ok := middleware.CurrentIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized,
			dto.NewErrorResponse(dto.ErrorCodeUnauthorized, "Authentication required"))
		return
	}

	if err := ctrl.theseService.Delete(c.Request.Context(), identity, c.Param("id")); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewMessageResponse("These deleted successfully"))
}
