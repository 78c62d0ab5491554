package dispatcher

import (
	"agent-orchestrator/internal/normalizer"
	"agent-orchestrator/internal/registry"
	"agent-orchestrator/pkg/log"
)

type implDispatcher struct {
	registry   *registry.Registry
	client     ChatClient
	normalizer *normalizer.Normalizer
	l          log.Logger
}

var _ Dispatcher = (*implDispatcher)(nil)

// New creates a Dispatcher over an immutable registry.
func New(reg *registry.Registry, client ChatClient, norm *normalizer.Normalizer, l log.Logger) *implDispatcher {
	return &implDispatcher{
		registry:   reg,
		client:     client,
		normalizer: norm,
		l:          l,
	}
}
