package normalizer

import "agent-orchestrator/internal/model"

const whitespace = " \t\r\n"

// Marker is a provenance tag a backend may prepend to its reply.
type Marker struct {
	Text   string
	Domain model.Domain
}

// DefaultMarkers are the tags emitted by the specialist agents.
var DefaultMarkers = []Marker{
	{Text: "[Sitter Agent Response]", Domain: model.DomainSitter},
	{Text: "[Booking Agent Response]", Domain: model.DomainBooking},
}
