package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Tndevfactory/labtim/internal/app/models/dto"
	"github.com/Tndevfactory/labtim/internal/pkg/apperrors"
	"github.com/Tndevfactory/labtim/internal/pkg/logger"
)

// HandleAPIError maps a service error onto the failure envelope with the
// proper status code. Controllers funnel every error through here.
func HandleAPIError(c *gin.Context, err error) {
	if err == nil {
		return
	}

	switch {
	case errors.Is(err, apperrors.ErrResourceNotFound),
		errors.Is(err, apperrors.ErrUserNotFound),
		errors.Is(err, apperrors.ErrPublicationNotFound),
		errors.Is(err, apperrors.ErrTheseNotFound),
		errors.Is(err, apperrors.ErrMasterNotFound),
		errors.Is(err, apperrors.ErrActuNotFound),
		errors.Is(err, apperrors.ErrHeroNotFound),
		errors.Is(err, apperrors.ErrCarouselNotFound):
		c.JSON(http.StatusNotFound,
			dto.NewErrorResponse(dto.ErrorCodeResourceNotFound, err.Error()))

	case errors.Is(err, apperrors.ErrPermissionDenied):
		c.JSON(http.StatusForbidden,
			dto.NewErrorResponse(dto.ErrorCodeForbidden, err.Error()))

	case errors.Is(err, apperrors.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized,
			dto.NewErrorResponse(dto.ErrorCodeInvalidCredentials, "Invalid email or password"))

	case errors.Is(err, apperrors.ErrTokenExpired):
		c.JSON(http.StatusUnauthorized,
			dto.NewErrorResponse(dto.ErrorCodeExpiredToken, "Token expired"))

	case errors.Is(err, apperrors.ErrTokenInvalid),
		errors.Is(err, apperrors.ErrTokenRevoked):
		c.JSON(http.StatusUnauthorized,
			dto.NewErrorResponse(dto.ErrorCodeInvalidToken, "Invalid token"))

	case errors.Is(err, apperrors.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized,
			dto.NewErrorResponse(dto.ErrorCodeUnauthorized, "Authentication required"))

	case errors.Is(err, apperrors.ErrValidationFailed),
		errors.Is(err, apperrors.ErrBadRequest),
		errors.Is(err, apperrors.ErrDuplicateDOI):
		c.JSON(http.StatusBadRequest,
			dto.NewErrorResponse(dto.ErrorCodeValidationFailed, err.Error()))

	case errors.Is(err, apperrors.ErrConflict),
		errors.Is(err, apperrors.ErrEmailAlreadyExists):
		c.JSON(http.StatusConflict,
			dto.NewErrorResponse(dto.ErrorCodeConflict, err.Error()))

	default:
		logger.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Unhandled error")
		c.JSON(http.StatusInternalServerError,
			dto.NewErrorResponse(dto.ErrorCodeInternalServer, "An unexpected error occurred").
				WithDetails(err.Error()))
	}
}

// HandleValidationError maps a binding failure to a 400 envelope.
func HandleValidationError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest,
		dto.NewErrorResponse(dto.ErrorCodeValidationFailed, "Invalid request payload").
			WithDetails(err.Error()))
}
