package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Headers the verification UI sends across origins.
const allowedHeaders = "authorization, x-client-info, apikey, content-type, x-api-key"

// CORSMiddleware permits cross-origin calls from the presentation layer and
// answers preflight probes with 204 and no body.
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Headers", allowedHeaders)
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
