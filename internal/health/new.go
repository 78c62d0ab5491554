package health

import (
	"agent-orchestrator/internal/registry"
	"agent-orchestrator/pkg/log"
)

type implAggregator struct {
	registry *registry.Registry
	prober   Prober
	l        log.Logger
}

var _ Aggregator = (*implAggregator)(nil)

// New creates a health Aggregator over the registered backends.
func New(reg *registry.Registry, prober Prober, l log.Logger) *implAggregator {
	return &implAggregator{
		registry: reg,
		prober:   prober,
		l:        l,
	}
}
