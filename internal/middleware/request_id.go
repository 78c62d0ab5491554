package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"agent-orchestrator/pkg/log"
)

const (
	HeaderRequestID = "X-Request-ID"
	ContextKeyID    = "request_id"
)

// RequestID ensures every request carries an ID. An inbound X-Request-ID is reused,
// otherwise a UUID is generated. The ID is echoed back and attached to the request
// context so logs and outbound backend calls carry it.
func (m Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" || len(id) > 128 {
			id = uuid.NewString()
		}

		c.Set(ContextKeyID, id)
		c.Header(HeaderRequestID, id)
		c.Request = c.Request.WithContext(log.WithRequestID(c.Request.Context(), id))

		c.Next()
	}
}
