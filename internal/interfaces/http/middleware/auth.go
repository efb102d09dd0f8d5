package middleware

import (
	"crypto/subtle"

	"github.com/gin-gonic/gin"
	domainerrors "pi-verify.backend/internal/domain/errors"
	"pi-verify.backend/internal/interfaces/http/response"
	"pi-verify.backend/pkg/logger"
)

// APIKeyHeader is the header carrying the caller credential
const APIKeyHeader = "X-Api-Key"

// ServiceKeyAuthMiddleware rejects requests whose credential header does not
// exactly match the configured service key. Runs before any validation or
// computation on the protected routes.
func ServiceKeyAuthMiddleware(serviceKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		supplied := c.GetHeader(APIKeyHeader)
		if supplied == "" {
			logger.Warn(c.Request.Context(), "request rejected: missing api key")
			response.Error(c, domainerrors.Unauthorized("missing credentials"))
			c.Abort()
			return
		}

		if subtle.ConstantTimeCompare([]byte(supplied), []byte(serviceKey)) != 1 {
			logger.Warn(c.Request.Context(), "request rejected: api key mismatch")
			response.Error(c, domainerrors.Unauthorized("invalid credentials"))
			c.Abort()
			return
		}

		c.Next()
	}
}
