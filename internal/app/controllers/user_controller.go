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

// UserController handles member directory endpoints.
type UserController struct {
	userService services.UserService
}

// NewUserController creates a new UserController.
func NewUserController(userService services.UserService) *UserController {
	return &UserController{userService: userService}
}

// GetAll handles GET /api/users.
func (ctrl *UserController) GetAll(c *gin.Context) {
	filter := repositories.UserFilter{
		SearchTerm: queryString(c, "searchTerm"),
	}
	if r := queryString(c, "role"); r != nil {
		role := models.RoleType(*r)
		filter.Role = &role
	}

	users, err := ctrl.userService.GetAll(c.Request.Context(), filter)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewListResponse(len(users), users))
}

// GetByID handles GET /api/users/:id.
func (ctrl *UserController) GetByID(c *gin.Context) {
	user, err := ctrl.userService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(user))
}

// Create handles POST /api/users. Admin-only: provisions an account with a
// generated temporary password sent by email.
func (ctrl *UserController) Create(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	user, err := ctrl.userService.Create(c.Request.Context(), req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewSuccessResponse(user))
}

// Update handles PUT /api/users/:id, accepting JSON or multipart with an
// optional profile image.
func (ctrl *UserController) Update(c *gin.Context) {
	identity, ok := middleware.CurrentIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized,
			dto.NewErrorResponse(dto.ErrorCodeUnauthorized, "Authentication required"))
		return
	}

	var req dto.UpdateUserRequest
	var imageFile *multipart.FileHeader

	if isMultipart(c) {
		req = bindUserUpdateForm(c)
		imageFile = formImage(c)
	} else {
		if err := c.ShouldBindJSON(&req); err != nil {
			middleware.HandleValidationError(c, err)
			return
		}
	}

	user, err := ctrl.userService.Update(c.Request.Context(), identity, c.Param("id"), req, imageFile)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(user))
}

// Delete handles DELETE /api/users/:id. Admin-only.
func (ctrl *UserController) Delete(c *gin.Context) {
	identity, ok := middleware.CurrentIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized,
			dto.NewErrorResponse(dto.ErrorCodeUnauthorized, "Authentication required"))
		return
	}

	if err := ctrl.userService.Delete(c.Request.Context(), identity, c.Param("id")); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewMessageResponse("User deleted successfully"))
}

// bindUserUpdateForm extracts profile fields from a multipart form. List
// fields arrive as JSON-encoded strings and are parsed leniently; absent
// fields stay nil so partial updates work the same as the JSON path.
func bindUserUpdateForm(c *gin.Context) dto.UpdateUserRequest {
	var req dto.UpdateUserRequest

	if v, ok := c.GetPostForm("name"); ok {
		req.Name = &v
	}
	if v, ok := c.GetPostForm("email"); ok {
		req.Email = &v
	}
	if v, ok := c.GetPostForm("role"); ok {
		role := models.RoleType(v)
		req.Role = &role
	}
	if v, ok := c.GetPostForm("position"); ok {
		req.Position = &v
	}
	if v, ok := c.GetPostForm("biography"); ok {
		req.Biography = &v
	}
	if v, ok := c.GetPostForm("expertises"); ok {
		list := models.ParseStringList(v)
		req.Expertises = &list
	}
	if v, ok := c.GetPostForm("researchInterests"); ok {
		list := models.ParseStringList(v)
		req.ResearchInterests = &list
	}
	if v, ok := c.GetPostForm("universityEducation"); ok {
		list := models.ParseEducationList(v)
		req.UniversityEducation = &list
	}

	return req
}
