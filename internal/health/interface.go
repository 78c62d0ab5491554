package health

import (
	"context"

	"agent-orchestrator/internal/model"
)

// Aggregator reports the liveness of every registered backend.
type Aggregator interface {
	Check(ctx context.Context) model.HealthReport
}

// Prober issues a single liveness probe and returns the HTTP status code.
type Prober interface {
	Health(ctx context.Context, backend, healthURL string) (int, error)
}
