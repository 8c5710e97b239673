package rest

import (
	"errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apierrors "github.com/RackSavant/sistachat-sub000/internal/api/shared/errors"
	"github.com/RackSavant/sistachat-sub000/internal/logger"
)

// errorResponse represents a standardized error response
type errorResponse struct {
	Error *apierrors.APIError `json:"error"`
}

// respondAPIError sends a standardized error response with the status of the error code
func respondAPIError(c *gin.Context, apiErr *apierrors.APIError) {
	c.JSON(apiErr.HTTPStatus(), errorResponse{Error: apiErr})
}

// respondError classifies an executor error and sends it
func respondError(c *gin.Context, err error, message string) {
	var apiErr *apierrors.APIError
	if !errors.As(err, &apiErr) {
		apiErr = apierrors.FromDomainError(err)
	}

	if apiErr.HTTPStatus() >= 500 {
		logger.ErrorCtx(c.Request.Context(), err, zap.String("message", message), zap.String("path", c.FullPath()))
	}

	respondAPIError(c, apiErr)
}

// respondNotFound sends a 404 Not Found response
func respondNotFound(c *gin.Context, message string, details ...string) {
	respondAPIError(c, apierrors.NewNotFoundError(message, details...))
}

// respondValidationError sends a 400 Bad Request with validation error
func respondValidationError(c *gin.Context, details string) {
	respondAPIError(c, apierrors.NewValidationError(details))
}

// respondUnauthorized sends a 401 Unauthorized response
func respondUnauthorized(c *gin.Context, message string) {
	respondAPIError(c, apierrors.NewUnauthorizedError(message))
}
