package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"agent-orchestrator/config"
	_ "agent-orchestrator/docs" // Swagger docs
	chatHTTP "agent-orchestrator/internal/chat/delivery/http"
	"agent-orchestrator/internal/dispatcher"
	"agent-orchestrator/internal/health"
	"agent-orchestrator/internal/httpserver"
	"agent-orchestrator/internal/middleware"
	"agent-orchestrator/internal/normalizer"
	"agent-orchestrator/internal/registry"
	"agent-orchestrator/internal/router"
	"agent-orchestrator/internal/test"
	"agent-orchestrator/pkg/agentclient"
	"agent-orchestrator/pkg/log"
	"agent-orchestrator/pkg/telemetry"
)

// @title       Agent Orchestrator API
// @description Routes chat messages to the booking or sitter specialist agent and aggregates their health.
// @version     1
// @host        localhost:8003
// @schemes     http
func main() {
	// .env is optional
	_ = godotenv.Load()

	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Agent Orchestrator...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Booking agent: %s", cfg.Backends.Booking.URL)
	logger.Infof(ctx, "Sitter agent: %s", cfg.Backends.Sitter.URL)

	// 3. Tracing (optional)
	if cfg.Telemetry.Enabled {
		shutdownTracer, tErr := telemetry.InitTracer(ctx, cfg.Telemetry.ServiceName, logger)
		if tErr != nil {
			logger.Warnf(ctx, "Tracing disabled: %v", tErr)
		} else {
			defer func() {
				flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := shutdownTracer(flushCtx); err != nil {
					logger.Warnf(flushCtx, "Tracer shutdown: %v", err)
				}
			}()
		}
	}

	// 4. Routing core
	reg, err := registry.FromConfig(cfg.Backends)
	if err != nil {
		logger.Error(ctx, "Invalid backend registry: ", err)
		return
	}
	logger.Infof(ctx, "Registered agents: %v", reg.Names())

	keywordRouter := router.NewDefault()
	client := agentclient.NewClient()
	chatDispatcher := dispatcher.New(reg, client, normalizer.NewDefault(), logger)
	aggregator := health.New(reg, client, logger)

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		ShutdownTimeout: cfg.HTTPServer.ShutdownTimeout,
		Tracing:         cfg.Telemetry.Enabled,
		ServiceName:     cfg.Telemetry.ServiceName,
		Middleware:      middleware.New(logger, cfg.CORS, cfg.RateLimit),
		Registry:        reg,
		Aggregator:      aggregator,
		ChatHandler:     chatHTTP.New(logger, keywordRouter, chatDispatcher),
		TestHandler:     test.New(logger, keywordRouter),
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 6. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
