package model

// ChatRequest is an inbound conversational request. It is not modified after binding.
type ChatRequest struct {
	Message string
	Context map[string]any
	UserID  *int64
}

// ChatResponse is the reply returned to the caller.
type ChatResponse struct {
	Message   string
	AgentUsed string
	Data      map[string]any
}
