package agentclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"agent-orchestrator/pkg/log"
)

const (
	// maxReplyBytes caps how much of a backend reply is read.
	maxReplyBytes = 4 << 20

	headerRequestID = "X-Request-ID"
)

// Client is the HTTP wrapper for specialist backend agents.
// Deadlines come from the caller's context.
type Client struct {
	httpClient *http.Client
}

// NewClient creates a Client whose transport is instrumented with OpenTelemetry.
func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

// NewClientWithHTTP creates a Client over an existing http.Client.
func NewClientWithHTTP(httpClient *http.Client) *Client {
	return &Client{httpClient: httpClient}
}

// Chat POSTs payload to chatURL and decodes the reply.
// Every failure is a *BackendError wrapping ErrBackendTimeout, ErrBackendUnreachable or ErrBackendProtocol.
func (c *Client) Chat(ctx context.Context, backend, chatURL string, payload ChatPayload) (ChatReply, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return ChatReply{}, &BackendError{Backend: backend, Err: fmt.Errorf("%w: marshal payload: %v", ErrBackendProtocol, err)}
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, chatURL, bytes.NewReader(body))
	if err != nil {
		return ChatReply{}, &BackendError{Backend: backend, Err: fmt.Errorf("%w: build request: %v", ErrBackendUnreachable, err)}
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	setRequestID(ctx, httpReq)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return ChatReply{}, &BackendError{Backend: backend, Err: classifyTransportError(ctx, err)}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxReplyBytes))
	if err != nil {
		return ChatReply{}, &BackendError{Backend: backend, StatusCode: resp.StatusCode, Err: classifyTransportError(ctx, err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return ChatReply{}, &BackendError{
			Backend:    backend,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("%w: unexpected status: %s", ErrBackendProtocol, truncate(raw, 256)),
		}
	}

	var reply chatReplyBody
	if err := json.Unmarshal(raw, &reply); err != nil {
		return ChatReply{}, &BackendError{
			Backend:    backend,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("%w: decode reply: %v", ErrBackendProtocol, err),
		}
	}
	if reply.Message == nil {
		return ChatReply{}, &BackendError{
			Backend:    backend,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("%w: reply has no message field", ErrBackendProtocol),
		}
	}

	return ChatReply{Message: *reply.Message, Data: reply.Data}, nil
}

// Health GETs healthURL and returns the HTTP status code.
// A non-nil error means no status was received.
func (c *Client) Health(ctx context.Context, backend, healthURL string) (int, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, healthURL, nil)
	if err != nil {
		return 0, &BackendError{Backend: backend, Err: fmt.Errorf("%w: build request: %v", ErrBackendUnreachable, err)}
	}
	setRequestID(ctx, httpReq)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return 0, &BackendError{Backend: backend, Err: classifyTransportError(ctx, err)}
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxReplyBytes))

	return resp.StatusCode, nil
}

func setRequestID(ctx context.Context, r *http.Request) {
	if id := log.RequestIDFromContext(ctx); id != "" {
		r.Header.Set(headerRequestID, id)
	}
}

// classifyTransportError maps a transport failure to ErrBackendTimeout or ErrBackendUnreachable.
func classifyTransportError(ctx context.Context, err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", ErrBackendTimeout, err)
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return fmt.Errorf("%w: %v", ErrBackendTimeout, err)
	}
	return fmt.Errorf("%w: %v", ErrBackendUnreachable, err)
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
