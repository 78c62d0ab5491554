package test

import (
	"agent-orchestrator/internal/router"
	pkgLog "agent-orchestrator/pkg/log"

	"github.com/gin-gonic/gin"
)

// Handler is the interface for the test handler
type Handler interface {
	HandleClassify(c *gin.Context)
}

// New creates a new test handler
func New(l pkgLog.Logger, router router.Router) Handler {
	return &handler{
		l:      l,
		router: router,
	}
}
