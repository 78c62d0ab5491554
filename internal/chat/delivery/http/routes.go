package http

import (
	"github.com/gin-gonic/gin"

	"agent-orchestrator/internal/middleware"
)

// RegisterRoutes maps the chat endpoint. Chat is rate limited per client.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	rg.POST("/chat", mw.RateLimit(), h.Chat)
}
