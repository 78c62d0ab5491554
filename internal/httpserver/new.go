package httpserver

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	chatHTTP "agent-orchestrator/internal/chat/delivery/http"
	"agent-orchestrator/internal/health"
	"agent-orchestrator/internal/middleware"
	"agent-orchestrator/internal/registry"
	"agent-orchestrator/internal/test"
	"agent-orchestrator/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin             *gin.Engine
	l               log.Logger
	port            int
	mode            string
	environment     string
	shutdownTimeout time.Duration
	tracing         bool
	serviceName     string

	// Edge
	middleware middleware.Middleware

	// Routing
	registry   *registry.Registry
	aggregator health.Aggregator

	// Chat domain
	chatHandler chatHTTP.Handler

	// Test domain
	testHandler test.Handler
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger          log.Logger
	Port            int
	Mode            string
	Environment     string
	ShutdownTimeout time.Duration

	// Tracing wraps the engine with OpenTelemetry instrumentation.
	Tracing     bool
	ServiceName string

	Middleware middleware.Middleware

	Registry   *registry.Registry
	Aggregator health.Aggregator

	ChatHandler chatHTTP.Handler

	// Test domain, ignored in production
	TestHandler test.Handler
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		shutdownTimeout: cfg.ShutdownTimeout,
		tracing:         cfg.Tracing,
		serviceName:     cfg.ServiceName,
		middleware:      cfg.Middleware,
		registry:        cfg.Registry,
		aggregator:      cfg.Aggregator,
		chatHandler:     cfg.ChatHandler,
		testHandler:     cfg.TestHandler,
	}

	if srv.serviceName == "" {
		srv.serviceName = ServiceName
	}
	if srv.shutdownTimeout <= 0 {
		srv.shutdownTimeout = 10 * time.Second
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	srv.mapHandlers()

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.registry == nil {
		return errors.New("registry is required")
	}
	if srv.aggregator == nil {
		return errors.New("health aggregator is required")
	}
	if srv.chatHandler == nil {
		return errors.New("chat handler is required")
	}
	return nil
}
