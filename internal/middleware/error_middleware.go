package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tmercan/fightnight/internal/app/models/dto"
	"github.com/tmercan/fightnight/internal/pkg/apperrors"
	"github.com/tmercan/fightnight/internal/pkg/logger"
)

// HandleAPIError maps the error taxonomy onto HTTP responses. Unauthenticated
// failures carry the login URL so pages can render a login prompt instead of
// a dead end.
func HandleAPIError(c *gin.Context, loginURL string, err error) {
	var appErr *apperrors.AppError
	message := err.Error()
	var details interface{}
	if errors.As(err, &appErr) && appErr.Details != nil {
		details = appErr.Details
	}

	switch {
	case apperrors.Is(err, apperrors.ErrUnauthenticated, apperrors.ErrTokenExpired):
		resp := dto.NewErrorResponse(dto.NewErrorDetail(dto.ErrorCodeUnauthenticated, message))
		resp.LoginURL = loginURL
		c.JSON(http.StatusUnauthorized, resp)
	case apperrors.Is(err, apperrors.ErrForbidden):
		c.JSON(http.StatusForbidden, dto.NewErrorResponse(dto.NewErrorDetail(dto.ErrorCodeForbidden, message)))
	case apperrors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.NewErrorDetail(dto.ErrorCodeValidationFailed, message).WithDetails(details)))
	case apperrors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, message)))
	case apperrors.Is(err, apperrors.ErrRemote):
		logger.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Entity store failure surfaced to client")
		c.JSON(http.StatusBadGateway, dto.NewErrorResponse(dto.NewErrorDetail(dto.ErrorCodeBackendUnavailable, "the backend is unavailable, try again")))
	default:
		logger.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Unhandled error")
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(dto.NewErrorDetail(dto.ErrorCodeInternalServer, "internal server error")))
	}
}
