package router

import (
	"strings"

	"github.com/samber/lo"

	"agent-orchestrator/internal/model"
)

// Classify scores message against every domain and picks the strict winner.
// A tie, including all-zero scores, resolves to model.DomainGeneral.
func (r *KeywordRouter) Classify(message string) RoutingDecision {
	scores := make(map[model.Domain]int, len(r.domains))
	for _, d := range r.domains {
		scores[d] = 0
	}

	text := strings.ToLower(message)
	if strings.TrimSpace(text) == "" {
		return RoutingDecision{Domain: model.DomainGeneral, Scores: scores}
	}

	for _, d := range r.domains {
		scores[d] = lo.CountBy(r.keywords[d], func(kw string) bool {
			return strings.Contains(text, kw)
		})
	}

	return RoutingDecision{Domain: pickWinner(r.domains, scores), Scores: scores}
}

// pickWinner returns the domain whose score is strictly greater than every other.
func pickWinner(domains []model.Domain, scores map[model.Domain]int) model.Domain {
	winner := model.DomainGeneral
	best := 0
	tied := false

	for _, d := range domains {
		s := scores[d]
		switch {
		case s > best:
			winner, best, tied = d, s, false
		case s == best && s > 0:
			tied = true
		}
	}

	if best == 0 || tied {
		return model.DomainGeneral
	}
	return winner
}
