package dispatcher

import (
	"context"

	"agent-orchestrator/internal/model"
	"agent-orchestrator/internal/router"
	"agent-orchestrator/pkg/agentclient"
)

// Dispatcher serves a classified chat request locally or through its specialist backend.
type Dispatcher interface {
	// Dispatch never fails for network conditions; the only error is ErrBackendNotRegistered.
	Dispatch(ctx context.Context, req model.ChatRequest, decision router.RoutingDecision) (model.ChatResponse, error)
}

// ChatClient sends one chat call to a backend.
type ChatClient interface {
	Chat(ctx context.Context, backend, chatURL string, payload agentclient.ChatPayload) (agentclient.ChatReply, error)
}
