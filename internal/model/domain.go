package model

// Domain is the logical service category a chat request is routed to.
type Domain string

const (
	DomainBooking Domain = "booking"
	DomainSitter  Domain = "sitter"
	DomainGeneral Domain = "general"
)

// SpecialistDomains lists every domain served by a remote backend, in stable order.
var SpecialistDomains = []Domain{DomainBooking, DomainSitter}

// IsSpecialist reports whether d is served by a remote backend.
func (d Domain) IsSpecialist() bool {
	return d == DomainBooking || d == DomainSitter
}

// String implements fmt.Stringer.
func (d Domain) String() string {
	return string(d)
}

// Agent identifiers reported in ChatResponse.AgentUsed.
const (
	AgentOrchestrator   = "orchestrator"
	AgentFallbackSuffix = "-fallback"
)

// FallbackAgent returns the agent marker used when d's backend could not answer.
func FallbackAgent(d Domain) string {
	return string(d) + AgentFallbackSuffix
}
