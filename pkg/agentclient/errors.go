package agentclient

import (
	"errors"
	"fmt"
)

var (
	// ErrBackendTimeout indicates the call did not complete before its deadline.
	ErrBackendTimeout = errors.New("backend timeout")

	// ErrBackendUnreachable indicates a connection-level failure.
	ErrBackendUnreachable = errors.New("backend unreachable")

	// ErrBackendProtocol indicates the backend answered with a non-2xx status or an invalid body.
	ErrBackendProtocol = errors.New("backend protocol error")
)

// BackendError wraps a backend failure with the backend that produced it.
type BackendError struct {
	Backend    string
	StatusCode int
	Err        error
}

func (e *BackendError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("backend %s: status %d: %v", e.Backend, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("backend %s: %v", e.Backend, e.Err)
}

func (e *BackendError) Unwrap() error {
	return e.Err
}

// Kind returns a short label for the failure class, for logs.
func Kind(err error) string {
	switch {
	case err == nil:
		return "none"
	case errors.Is(err, ErrBackendTimeout):
		return "timeout"
	case errors.Is(err, ErrBackendUnreachable):
		return "unreachable"
	case errors.Is(err, ErrBackendProtocol):
		return "protocol"
	default:
		return "unknown"
	}
}
