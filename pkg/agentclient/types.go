package agentclient

// ChatPayload is the body POSTed to a backend chat endpoint.
type ChatPayload struct {
	Message string         `json:"message"`
	Context map[string]any `json:"context,omitempty"`
	UserID  *int64         `json:"user_id,omitempty"`
}

// ChatReply is a validated backend chat reply.
type ChatReply struct {
	Message string
	Data    map[string]any
}

// chatReplyBody is the raw wire shape; Message is a pointer so a missing field is detectable.
type chatReplyBody struct {
	Message *string        `json:"message"`
	Data    map[string]any `json:"data,omitempty"`
}
