package health

import (
	"context"
	"net/http"
	"sync"
	"time"

	"agent-orchestrator/internal/model"
	"agent-orchestrator/internal/registry"
	"agent-orchestrator/pkg/agentclient"
)

type probeResult struct {
	name   string
	status model.HealthStatus
}

// Check probes every backend concurrently and waits for all of them.
// Wall-clock time is bounded by the largest per-target health timeout.
func (a *implAggregator) Check(ctx context.Context) model.HealthReport {
	targets := a.registry.Targets()
	results := make([]probeResult, len(targets))

	var wg sync.WaitGroup
	for i, t := range targets {
		wg.Add(1)
		go func(i int, t registry.BackendTarget) {
			defer wg.Done()
			results[i] = probeResult{name: t.Name, status: a.probe(ctx, t)}
		}(i, t)
	}
	wg.Wait()

	report := model.HealthReport{
		Status:    model.HealthHealthy,
		Backends:  make(map[string]model.HealthStatus, len(results)),
		CheckedAt: time.Now().UTC(),
	}
	for _, r := range results {
		report.Backends[r.name] = r.status
		if r.status != model.HealthHealthy {
			report.Status = model.HealthDegraded
		}
	}

	return report
}

func (a *implAggregator) probe(ctx context.Context, t registry.BackendTarget) model.HealthStatus {
	probeCtx, cancel := context.WithTimeout(ctx, t.HealthTimeout)
	defer cancel()

	code, err := a.prober.Health(probeCtx, t.Name, t.HealthURL())
	if err != nil {
		a.l.Warnf(ctx, "%s: backend=%s kind=%s: %v", LogPrefixCheck, t.Name, agentclient.Kind(err), err)
		return model.HealthUnreachable
	}
	if code != http.StatusOK {
		a.l.Warnf(ctx, "%s: backend=%s status=%d", LogPrefixCheck, t.Name, code)
		return model.HealthUnhealthy
	}
	return model.HealthHealthy
}
