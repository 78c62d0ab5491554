package httpserver

import (
	"context"

	chatHTTP "agent-orchestrator/internal/chat/delivery/http"
	"agent-orchestrator/internal/model"
	"agent-orchestrator/pkg/response"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (srv HTTPServer) mapHandlers() {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()
	srv.registerDomainRoutes()
}

func (srv HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery())
	srv.gin.Use(srv.middleware.RequestID())
	srv.gin.Use(srv.middleware.AccessLog())
	srv.gin.Use(srv.middleware.CORS())
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/", srv.rootInfo)
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)
	srv.gin.NoRoute(response.NotFound)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes.
func (srv HTTPServer) registerDomainRoutes() {
	ctx := context.Background()

	chatHTTP.RegisterRoutes(srv.gin.Group("/agent"), srv.chatHandler, srv.middleware)
	srv.l.Infof(ctx, "Chat route registered at POST /agent/chat")

	if srv.isProduction() {
		srv.l.Infof(ctx, "Production environment, skipping test routes")
		return
	}
	if srv.testHandler != nil {
		srv.gin.POST("/test/classify", srv.testHandler.HandleClassify)
		srv.l.Infof(ctx, "Test route registered at POST /test/classify")
	}
}

func (srv HTTPServer) isProduction() bool {
	return srv.environment == string(model.EnvironmentProduction)
}
