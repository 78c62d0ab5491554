package registry

import (
	"fmt"
	"net/url"

	"github.com/samber/lo"

	"agent-orchestrator/config"
	"agent-orchestrator/internal/model"
)

// Registry is the immutable domain -> backend mapping built at startup.
// It is safe for concurrent reads.
type Registry struct {
	targets []BackendTarget
	byID    map[model.Domain]int
}

// New validates targets and builds a Registry.
// Every specialist domain must have exactly one target; model.DomainGeneral must have none.
func New(targets ...BackendTarget) (*Registry, error) {
	r := &Registry{
		targets: make([]BackendTarget, 0, len(targets)),
		byID:    make(map[model.Domain]int, len(targets)),
	}

	for _, t := range targets {
		if err := validateTarget(t); err != nil {
			return nil, err
		}
		if _, dup := r.byID[t.Domain]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateBackend, t.Domain)
		}
		r.byID[t.Domain] = len(r.targets)
		r.targets = append(r.targets, t)
	}

	for _, d := range model.SpecialistDomains {
		if _, ok := r.byID[d]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingBackend, d)
		}
	}

	return r, nil
}

// FromConfig builds a Registry from the backends section of the service config.
func FromConfig(cfg config.BackendsConfig) (*Registry, error) {
	return New(
		fromBackendConfig(model.DomainBooking, cfg.Booking),
		fromBackendConfig(model.DomainSitter, cfg.Sitter),
	)
}

func fromBackendConfig(d model.Domain, c config.BackendConfig) BackendTarget {
	return BackendTarget{
		Domain:        d,
		Name:          string(d),
		BaseURL:       c.URL,
		ChatPath:      c.ChatPath,
		HealthPath:    c.HealthPath,
		CallTimeout:   c.Timeout,
		HealthTimeout: c.HealthTimeout,
	}
}

func validateTarget(t BackendTarget) error {
	if !t.Domain.IsSpecialist() {
		return fmt.Errorf("%w: domain %q cannot have a backend", ErrInvalidTarget, t.Domain)
	}
	if t.Name == "" {
		return fmt.Errorf("%w: %s: name is required", ErrInvalidTarget, t.Domain)
	}
	u, err := url.Parse(t.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: %s: base url %q must be an absolute http(s) url", ErrInvalidTarget, t.Domain, t.BaseURL)
	}
	if t.CallTimeout <= 0 {
		return fmt.Errorf("%w: %s: call timeout must be positive", ErrInvalidTarget, t.Domain)
	}
	if t.HealthTimeout <= 0 {
		return fmt.Errorf("%w: %s: health timeout must be positive", ErrInvalidTarget, t.Domain)
	}
	return nil
}

// Lookup returns the target registered for d.
func (r *Registry) Lookup(d model.Domain) (BackendTarget, bool) {
	i, ok := r.byID[d]
	if !ok {
		return BackendTarget{}, false
	}
	return r.targets[i], true
}

// Targets returns a copy of all targets in registration order.
func (r *Registry) Targets() []BackendTarget {
	out := make([]BackendTarget, len(r.targets))
	copy(out, r.targets)
	return out
}

// Names returns backend names in registration order.
func (r *Registry) Names() []string {
	return lo.Map(r.targets, func(t BackendTarget, _ int) string { return t.Name })
}
