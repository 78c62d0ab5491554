package health

const (
	LogPrefixCheck = "internal.health.Check"
)
