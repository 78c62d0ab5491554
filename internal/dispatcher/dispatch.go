package dispatcher

import (
	"context"
	"fmt"
	"time"

	"agent-orchestrator/internal/model"
	"agent-orchestrator/internal/router"
	"agent-orchestrator/pkg/agentclient"
)

// Dispatch serves req according to decision.
func (d *implDispatcher) Dispatch(ctx context.Context, req model.ChatRequest, decision router.RoutingDecision) (model.ChatResponse, error) {
	if !decision.Domain.IsSpecialist() {
		return model.ChatResponse{
			Message:   HelpMessage,
			AgentUsed: model.AgentOrchestrator,
			Data:      req.Context,
		}, nil
	}

	target, ok := d.registry.Lookup(decision.Domain)
	if !ok {
		d.l.Errorf(ctx, "%s: domain=%s: %v", LogPrefixDispatch, decision.Domain, ErrBackendNotRegistered)
		return model.ChatResponse{}, fmt.Errorf("%w: %s", ErrBackendNotRegistered, decision.Domain)
	}

	payload := agentclient.ChatPayload{
		Message: req.Message,
		Context: req.Context,
	}
	// Only the booking backend knows about users.
	if decision.Domain == model.DomainBooking {
		payload.UserID = req.UserID
	}

	callCtx, cancel := context.WithTimeout(ctx, target.CallTimeout)
	defer cancel()

	start := time.Now()
	reply, err := d.client.Chat(callCtx, target.Name, target.ChatURL(), payload)
	latency := time.Since(start)

	if err != nil {
		d.l.Warnf(ctx, "%s: backend=%s kind=%s latency=%s: %v",
			LogPrefixDispatch, target.Name, agentclient.Kind(err), latency, err)
		return fallbackResponse(decision.Domain, req), nil
	}

	clean := d.normalizer.Normalize(reply.Message, decision.Domain)
	d.l.Infof(ctx, "%s: backend=%s agent=%s latency=%s", LogPrefixDispatch, target.Name, clean.Agent, latency)

	data := reply.Data
	if data == nil {
		data = req.Context
	}

	return model.ChatResponse{
		Message:   clean.Message,
		AgentUsed: clean.Agent,
		Data:      data,
	}, nil
}

func fallbackResponse(domain model.Domain, req model.ChatRequest) model.ChatResponse {
	return model.ChatResponse{
		Message:   fmt.Sprintf(fallbackTemplate, domain),
		AgentUsed: model.FallbackAgent(domain),
		Data:      req.Context,
	}
}
