package dispatcher

import "errors"

// ErrBackendNotRegistered means a specialist domain has no backend in the registry.
// This is a configuration fault, not a runtime condition.
var ErrBackendNotRegistered = errors.New("no backend registered for routed domain")
