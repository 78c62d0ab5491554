package http

import (
	"agent-orchestrator/internal/model"
)

// --- Request DTOs ---

// chatReq accepts an empty message; only a missing one is rejected.
type chatReq struct {
	Message *string        `json:"message" binding:"required"`
	Context map[string]any `json:"context"`
	UserID  *int64         `json:"user_id"`
}

func (r chatReq) validate() error {
	if r.UserID != nil && *r.UserID < 0 {
		return errInvalidUserID
	}
	return nil
}

func (r chatReq) toInput() model.ChatRequest {
	return model.ChatRequest{
		Message: *r.Message,
		Context: r.Context,
		UserID:  r.UserID,
	}
}

// --- Response DTOs ---

type chatResp struct {
	Message   string         `json:"message"`
	AgentUsed string         `json:"agent_used,omitempty"`
	Data      map[string]any `json:"data,omitempty"`
}

func (h *handler) newChatResp(out model.ChatResponse) chatResp {
	return chatResp{
		Message:   out.Message,
		AgentUsed: out.AgentUsed,
		Data:      out.Data,
	}
}
