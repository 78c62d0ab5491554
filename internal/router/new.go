package router

import (
	"fmt"
	"sort"
	"strings"

	"github.com/samber/lo"

	"agent-orchestrator/internal/model"
)

// Router classifies a chat message into a target domain.
type Router interface {
	Classify(message string) RoutingDecision
}

// KeywordRouter scores messages against a fixed keyword table.
type KeywordRouter struct {
	domains  []model.Domain
	keywords map[model.Domain][]string
}

var _ Router = (*KeywordRouter)(nil)

// New validates table and builds a KeywordRouter from it.
// Keywords are lower-cased and de-duplicated; the same keyword may not belong to two domains.
func New(table KeywordTable) (*KeywordRouter, error) {
	if len(table) == 0 {
		return nil, ErrEmptyTable
	}

	keywords := make(map[model.Domain][]string, len(table))
	owner := make(map[string]model.Domain)
	for domain, list := range table {
		if domain == model.DomainGeneral {
			return nil, ErrGeneralKeywords
		}

		normalized := lo.Uniq(lo.Map(list, func(kw string, _ int) string {
			return strings.ToLower(kw)
		}))
		for _, kw := range normalized {
			if strings.TrimSpace(kw) == "" {
				return nil, fmt.Errorf("%w: domain %s", ErrEmptyKeyword, domain)
			}
			if prev, ok := owner[kw]; ok {
				return nil, fmt.Errorf("%w: %q in %s and %s", ErrOverlappingLists, kw, prev, domain)
			}
			owner[kw] = domain
		}
		keywords[domain] = normalized
	}

	domains := lo.Keys(keywords)
	sort.Slice(domains, func(i, j int) bool { return domains[i] < domains[j] })

	return &KeywordRouter{
		domains:  domains,
		keywords: keywords,
	}, nil
}

// NewDefault builds a KeywordRouter over DefaultKeywords.
func NewDefault() *KeywordRouter {
	r, err := New(DefaultKeywords)
	if err != nil {
		panic(fmt.Sprintf("router: invalid default keyword table: %v", err))
	}
	return r
}
