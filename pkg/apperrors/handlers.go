package apperrors

import (
	"jobportal_backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// HandleError terminates the request with the uniform failure envelope
// {message, success:false}. Unknown error types become InternalError.
func HandleError(c *gin.Context, err error) {
	appErr, ok := AsAppError(err)
	if !ok {
		appErr = InternalError(err)
	}

	if appErr.HTTPCode >= 500 {
		logger.CtxWithError(c.Request.Context(), "server error", appErr)
	}

	body := gin.H{
		"message": appErr.Message,
		"success": false,
	}
	if appErr.Details != nil {
		body["details"] = appErr.Details
	}

	c.AbortWithStatusJSON(appErr.HTTPCode, body)
}

// AsAppError converts an error into *AppError when possible.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
