package httpserver

import (
	"net/http"
	"time"

	"agent-orchestrator/pkg/response"

	"github.com/gin-gonic/gin"
)

// Health response constants (single source for version and service identity).
const (
	HealthVersion = "1.0.0"
	ServiceName   = "agent-orchestrator"
)

type healthResp struct {
	Status    string            `json:"status"`
	Service   string            `json:"service"`
	Timestamp string            `json:"timestamp"`
	SubAgents map[string]string `json:"sub_agents"`
}

type infoResp struct {
	Service           string            `json:"service"`
	Version           string            `json:"version"`
	Status            string            `json:"status"`
	SpecializedAgents map[string]string `json:"specialized_agents"`
	Endpoints         map[string]string `json:"endpoints"`
}

// rootInfo describes the service and its specialist agents
// @Summary Service info
// @Description Lists the specialist agents and the public endpoints
// @Tags System
// @Produce json
// @Success 200 {object} infoResp
// @Router / [get]
func (srv HTTPServer) rootInfo(c *gin.Context) {
	agents := make(map[string]string)
	for _, t := range srv.registry.Targets() {
		agents[t.Name] = t.BaseURL
	}

	c.JSON(http.StatusOK, infoResp{
		Service:           srv.serviceName,
		Version:           HealthVersion,
		Status:            "running",
		SpecializedAgents: agents,
		Endpoints: map[string]string{
			"chat":   "POST /agent/chat",
			"health": "GET /health",
			"docs":   "GET /swagger/index.html",
		},
	})
}

// healthCheck reports the aggregated health of every specialist agent.
// Always answers 200; a failing agent shows up as a degraded status.
// @Summary Health Check
// @Description Probes every specialist agent and reports healthy or degraded
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} healthResp "Aggregated health"
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	report := srv.aggregator.Check(c.Request.Context())

	subAgents := make(map[string]string, len(report.Backends))
	for name, status := range report.Backends {
		subAgents[name] = string(status)
	}

	c.JSON(http.StatusOK, healthResp{
		Status:    string(report.Status),
		Service:   srv.serviceName,
		Timestamp: report.CheckedAt.Format(time.RFC3339),
		SubAgents: subAgents,
	})
}

// readyCheck handles readiness check, returns ready if server is up.
// @Summary Readiness Check
// @Description Check if the API is ready to serve traffic
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} response.Resp "API is ready"
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "ready",
		"version": HealthVersion,
		"service": srv.serviceName,
	})
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the API is alive
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} response.Resp "API is alive"
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"version": HealthVersion,
		"service": srv.serviceName,
	})
}
