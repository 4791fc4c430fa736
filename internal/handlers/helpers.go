package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"rolecrm/internal/access"
	apperrors "rolecrm/internal/errors"
	"rolecrm/internal/logger"
	"rolecrm/internal/middleware"
	"rolecrm/internal/services"
)

// getIdentity extracts the authenticated identity from the Gin context.
// Returns ErrUnauthorized if not present.
func getIdentity(c *gin.Context) (*access.Identity, error) {
	identity, ok := middleware.CurrentIdentity(c)
	if !ok {
		return nil, apperrors.ErrUnauthorized
	}
	return identity, nil
}

// evaluatorFor builds an evaluator for the request's identity against the
// live permission table.
func evaluatorFor(c *gin.Context, perms services.PermissionServicer) (access.Evaluator, error) {
	identity, err := getIdentity(c)
	if err != nil {
		return access.Evaluator{}, err
	}
	return access.NewEvaluator(identity, perms.Table()), nil
}

// respondWithError writes a consistent JSON error response. If the error is an
// *AppError it uses the error's status code, code, and message. Otherwise it
// logs the unexpected error and returns a generic internal server error.
func respondWithError(c *gin.Context, err error) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		if appErr.Internal != nil {
			logger.Get().Errorw("app error",
				"code", appErr.Code,
				"internal", appErr.Internal.Error(),
				"path", c.Request.URL.Path,
			)
		}
		c.JSON(appErr.StatusCode, gin.H{
			"error": gin.H{
				"code":    appErr.Code,
				"message": appErr.Message,
			},
		})
		return
	}

	logger.Get().Errorw("unexpected error",
		"error", err.Error(),
		"path", c.Request.URL.Path,
		"method", c.Request.Method,
	)
	c.JSON(apperrors.ErrInternalServer.StatusCode, gin.H{
		"error": gin.H{
			"code":    apperrors.ErrInternalServer.Code,
			"message": apperrors.ErrInternalServer.Message,
		},
	})
}

// ErrorDetail represents the inner error object in an error response.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// DeniedResponse is returned by guarded routes; Redirect names the page
// the client should show instead.
type DeniedResponse struct {
	Error    ErrorDetail `json:"error"`
	Redirect string      `json:"redirect"`
}

// MessageResponse represents a simple message response
type MessageResponse struct {
	Message string `json:"message"`
}
