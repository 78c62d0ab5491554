package http

import (
	"github.com/gin-gonic/gin"

	"agent-orchestrator/internal/dispatcher"
	"agent-orchestrator/internal/router"
	"agent-orchestrator/pkg/log"
)

// Handler is the public interface for the chat HTTP delivery layer.
type Handler interface {
	Chat(c *gin.Context)
}

type handler struct {
	l          log.Logger
	router     router.Router
	dispatcher dispatcher.Dispatcher
}

// New creates a new HTTP handler for the chat endpoint.
func New(l log.Logger, r router.Router, d dispatcher.Dispatcher) Handler {
	return &handler{
		l:          l,
		router:     r,
		dispatcher: d,
	}
}
