package middleware

import (
	"agent-orchestrator/config"
	"agent-orchestrator/pkg/log"
)

type Middleware struct {
	l           log.Logger
	cors        config.CORSConfig
	rateLimiter *rateLimiter
}

func New(l log.Logger, corsCfg config.CORSConfig, rateLimitCfg config.RateLimitConfig) Middleware {
	mw := Middleware{
		l:    l,
		cors: corsCfg,
	}
	if rateLimitCfg.Enabled {
		mw.rateLimiter = newRateLimiter(rateLimitCfg.RequestsPerMin)
	}
	return mw
}
