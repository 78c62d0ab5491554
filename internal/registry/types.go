package registry

import (
	"strings"
	"time"

	"agent-orchestrator/internal/model"
)

// BackendTarget describes how to reach one specialist backend.
type BackendTarget struct {
	Domain        model.Domain
	Name          string
	BaseURL       string
	ChatPath      string
	HealthPath    string
	CallTimeout   time.Duration
	HealthTimeout time.Duration
}

// ChatURL is the absolute URL of the backend chat endpoint.
func (t BackendTarget) ChatURL() string {
	return joinURL(t.BaseURL, t.ChatPath)
}

// HealthURL is the absolute URL of the backend health endpoint.
func (t BackendTarget) HealthURL() string {
	return joinURL(t.BaseURL, t.HealthPath)
}

func joinURL(base, path string) string {
	base = strings.TrimRight(base, "/")
	if path == "" {
		return base
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return base + path
}
