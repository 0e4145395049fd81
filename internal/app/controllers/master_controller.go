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

// MasterController handles master/PFE project endpoints.
type MasterController struct {
	masterService services.MasterService
}

// NewMasterController creates a new MasterController.
func NewMasterController(masterService services.MasterService) *MasterController {
	return &MasterController{masterService: masterService}
}

// GetAll handles GET /api/masters.
func (ctrl *MasterController) GetAll(c *gin.Context) {
	filter := repositories.MasterFilter{
		CreatorID:  queryString(c, "creatorId"),
		Year:       queryInt(c, "year"),
		SearchTerm: queryString(c, "searchTerm"),
	}
	if t := queryString(c, "type"); t != nil {
		masterType := models.MasterType(*t)
		filter.Type = &masterType
	}

	masters, err := ctrl.masterService.GetAll(c.Request.Context(), filter)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewListResponse(len(masters), masters))
}

// GetByID handles GET /api/masters/:id.
func (ctrl *MasterController) GetByID(c *gin.Context) {
	master, err := ctrl.masterService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(master))
}

// Create handles POST /api/masters.
func (ctrl *MasterController) Create(c *gin.Context) {
	identity, ok := middleware.CurrentIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized,
			dto.NewErrorResponse(dto.ErrorCodeUnauthorized, "Authentication required"))
		return
	}

	var req dto.CreateMasterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	master, err := ctrl.masterService.Create(c.Request.Context(), identity, req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewSuccessResponse(master))
}

// Update handles PUT /api/masters/:id.
func (ctrl *MasterController) Update(c *gin.Context) {
	identity, ok := middleware.CurrentIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized,
			dto.NewErrorResponse(dto.ErrorCodeUnauthorized, "Authentication required"))
		return
	}

	var req dto.UpdateMasterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	master, err := ctrl.masterService.Update(c.Request.Context(), identity, c.Param("id"), req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(master))
}

// Delete handles DELETE /api/masters/:id.
func (ctrl *MasterController) Delete(c *gin.Context) {
	identity, ok := middleware.CurrentIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized,
			dto.NewErrorResponse(dto.ErrorCodeUnauthorized, "Authentication required"))
		return
	}

	if err := ctrl.masterService.Delete(c.Request.Context(), identity, c.Param("id")); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewMessageResponse("Master project deleted successfully"))
}
