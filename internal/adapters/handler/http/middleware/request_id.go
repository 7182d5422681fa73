package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/comitanigiacomo/kanso-habit-engine/internal/config"
)

const requestIDHeader = "X-Request-ID"

// RequestID tags every request with an id, honoring one supplied by a proxy
// and minting one otherwise. The id rides the request context so every log
// line emitted while serving the request can be correlated, and it is echoed
// in the response for client-side reports.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}

		c.Header(requestIDHeader, id)
		c.Request = c.Request.WithContext(config.WithRequestID(c.Request.Context(), id))
		c.Next()
	}
}
