package response

import (
	"github.com/gin-gonic/gin"
	domainerrors "pi-verify.backend/internal/domain/errors"
)

// Success sends a success envelope
func Success(c *gin.Context, status int, data interface{}) {
	c.JSON(status, gin.H{
		"success": true,
		"data":    data,
	})
}

// Error sends a failure envelope. The HTTP status comes from the AppError;
// anything else is treated as an internal error with a generic message.
func Error(c *gin.Context, err error) {
	var appErr *domainerrors.AppError
	if e, ok := err.(*domainerrors.AppError); ok {
		appErr = e
	} else {
		appErr = domainerrors.InternalError(err)
	}

	c.JSON(appErr.Status, gin.H{
		"success": false,
		"code":    appErr.Code,
		"error":   appErr.Message,
	})
}
