package middleware

import (
	"context"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORS allows the configured frontend origins. With no origins configured every
// origin is allowed, without credentials.
func (m Middleware) CORS() gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", HeaderRequestID},
		ExposeHeaders:    []string{HeaderRequestID},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	ctx := context.Background()
	if len(m.cors.AllowedOrigins) == 0 {
		cfg.AllowAllOrigins = true
		cfg.AllowCredentials = false
		m.l.Warnf(ctx, "CORS: no origins configured, allowing all origins without credentials")
	} else {
		cfg.AllowOrigins = m.cors.AllowedOrigins
		m.l.Infof(ctx, "CORS: allowed origins %v", m.cors.AllowedOrigins)
	}

	return cors.New(cfg)
}
