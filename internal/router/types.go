package router

import "agent-orchestrator/internal/model"

// KeywordTable maps each specialist domain to the keywords that vote for it.
type KeywordTable map[model.Domain][]string

// RoutingDecision is the classifier output for a single message.
type RoutingDecision struct {
	Domain model.Domain
	// Scores holds the number of distinct keywords matched per table domain.
	Scores map[model.Domain]int
}

// Score returns the score recorded for d, or 0.
func (rd RoutingDecision) Score(d model.Domain) int {
	return rd.Scores[d]
}
