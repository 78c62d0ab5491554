package model

import "time"

// HealthStatus is a liveness state reported for the service or one backend.
type HealthStatus string

const (
	HealthHealthy     HealthStatus = "healthy"
	HealthDegraded    HealthStatus = "degraded"
	HealthUnhealthy   HealthStatus = "unhealthy"
	HealthUnreachable HealthStatus = "unreachable"
)

// HealthReport aggregates the liveness of every registered backend.
type HealthReport struct {
	Status    HealthStatus
	Backends  map[string]HealthStatus
	CheckedAt time.Time
}
