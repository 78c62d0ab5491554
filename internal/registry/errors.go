package registry

import "errors"

var (
	ErrMissingBackend   = errors.New("no backend registered for domain")
	ErrDuplicateBackend = errors.New("backend registered twice for domain")
	ErrInvalidTarget    = errors.New("invalid backend target")
)
