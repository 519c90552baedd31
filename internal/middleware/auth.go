package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-booking/internal/config"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
)

const apiKeyHeader = "X-API-Key"

// APIKeyAuth guards the API with the static shared secret. Preflight requests
// pass through so CORS keeps working.
func APIKeyAuth(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions {
			c.Next()
			return
		}

		key := c.GetHeader(apiKeyHeader)
		if key == "" {
			httperr.Unauthorized(c, "unauthorized", "API key is required.")
			c.Abort()
			return
		}

		if key != cfg.APISecret {
			httperr.Unauthorized(c, "unauthorized", "Invalid API key.")
			c.Abort()
			return
		}

		c.Next()
	}
}
