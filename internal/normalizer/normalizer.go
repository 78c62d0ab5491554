package normalizer

import (
	"strings"

	"agent-orchestrator/internal/model"
)

// Result is a cleaned reply together with the agent that produced it.
type Result struct {
	Message string
	Agent   string
}

// Normalizer strips provenance markers from backend replies.
type Normalizer struct {
	markers []Marker
}

// New creates a Normalizer for markers. Matching is case-insensitive.
func New(markers []Marker) *Normalizer {
	cp := make([]Marker, len(markers))
	copy(cp, markers)
	return &Normalizer{markers: cp}
}

// NewDefault creates a Normalizer over DefaultMarkers.
func NewDefault() *Normalizer {
	return New(DefaultMarkers)
}

// Normalize removes every leading marker from raw.
// The agent is taken from the first marker found, or from domain when raw carries none.
// A reply without a marker is returned untouched.
func (n *Normalizer) Normalize(raw string, domain model.Domain) Result {
	agent := ""
	text := raw
	rest := strings.TrimLeft(raw, whitespace)

	for {
		m, ok := n.leadingMarker(rest)
		if !ok {
			break
		}
		if agent == "" {
			agent = string(m.Domain)
		}
		rest = strings.TrimLeft(rest[len(m.Text):], whitespace)
		text = rest
	}

	if agent == "" {
		agent = string(domain)
	}

	return Result{Message: text, Agent: agent}
}

func (n *Normalizer) leadingMarker(text string) (Marker, bool) {
	for _, m := range n.markers {
		if len(text) >= len(m.Text) && strings.EqualFold(text[:len(m.Text)], m.Text) {
			return m, true
		}
	}
	return Marker{}, false
}
