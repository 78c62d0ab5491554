package httpserver

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"agent-orchestrator/config"
	_ "agent-orchestrator/docs"
	chatHTTP "agent-orchestrator/internal/chat/delivery/http"
	"agent-orchestrator/internal/dispatcher"
	"agent-orchestrator/internal/health"
	"agent-orchestrator/internal/middleware"
	"agent-orchestrator/internal/model"
	"agent-orchestrator/internal/normalizer"
	"agent-orchestrator/internal/registry"
	"agent-orchestrator/internal/router"
	"agent-orchestrator/internal/test"
	"agent-orchestrator/pkg/agentclient"
	"agent-orchestrator/pkg/log"
	"agent-orchestrator/pkg/response"
)

func newTestServer(t *testing.T, environment string, bookingURL, sitterURL string) *HTTPServer {
	t.Helper()

	mk := func(d model.Domain, base string) registry.BackendTarget {
		return registry.BackendTarget{
			Domain: d, Name: string(d), BaseURL: base,
			ChatPath: "/agent/chat", HealthPath: "/health",
			CallTimeout: time.Second, HealthTimeout: 500 * time.Millisecond,
		}
	}
	reg, err := registry.New(mk(model.DomainBooking, bookingURL), mk(model.DomainSitter, sitterURL))
	if err != nil {
		t.Fatalf("registry.New: %v", err)
	}

	l := log.NewNop()
	client := agentclient.NewClient()
	r := router.NewDefault()
	d := dispatcher.New(reg, client, normalizer.NewDefault(), l)

	srv, err := New(l, Config{
		Logger:      l,
		Port:        8003,
		Mode:        "test",
		Environment: environment,
		Middleware: middleware.New(l,
			config.CORSConfig{AllowedOrigins: []string{"http://localhost:3000"}},
			config.RateLimitConfig{Enabled: true, RequestsPerMin: 120}),
		Registry:    reg,
		Aggregator:  health.New(reg, client, l),
		ChatHandler: chatHTTP.New(l, r, d),
		TestHandler: test.New(l, r),
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return srv
}

func closedURL() string {
	srv := httptest.NewServer(http.NotFoundHandler())
	u := srv.URL
	srv.Close()
	return u
}

func okBackend(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/health" {
			w.WriteHeader(http.StatusOK)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"message":"ok"}`))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func do(srv *HTTPServer, method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	srv.Handler().ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	sitter := okBackend(t)

	t.Run("booking unreachable is degraded", func(t *testing.T) {
		srv := newTestServer(t, "development", closedURL(), sitter.URL)

		w := do(srv, http.MethodGet, "/health", "")
		if w.Code != http.StatusOK {
			t.Fatalf("health must always answer 200, got %d", w.Code)
		}

		var resp healthResp
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if resp.Status != "degraded" {
			t.Errorf("expected degraded, got %s", resp.Status)
		}
		if resp.SubAgents["booking"] != "unreachable" || resp.SubAgents["sitter"] != "healthy" {
			t.Errorf("unexpected sub agents %v", resp.SubAgents)
		}
		if resp.Service != ServiceName || resp.Timestamp == "" {
			t.Errorf("expected service and timestamp, got %+v", resp)
		}
	})

	t.Run("all healthy", func(t *testing.T) {
		srv := newTestServer(t, "development", sitter.URL, sitter.URL)

		var resp healthResp
		json.Unmarshal(do(srv, http.MethodGet, "/health", "").Body.Bytes(), &resp)
		if resp.Status != "healthy" {
			t.Errorf("expected healthy, got %s", resp.Status)
		}
	})
}

func TestSystemRoutes(t *testing.T) {
	backend := okBackend(t)
	srv := newTestServer(t, "development", backend.URL, backend.URL)

	for _, path := range []string{"/", "/ready", "/live"} {
		if w := do(srv, http.MethodGet, path, ""); w.Code != http.StatusOK {
			t.Errorf("GET %s = %d", path, w.Code)
		}
	}

	var info infoResp
	json.Unmarshal(do(srv, http.MethodGet, "/", "").Body.Bytes(), &info)
	if info.SpecializedAgents["booking"] != backend.URL {
		t.Errorf("unexpected agents %v", info.SpecializedAgents)
	}

	w := do(srv, http.MethodGet, "/live", "")
	if w.Header().Get(middleware.HeaderRequestID) == "" {
		t.Errorf("expected request id header on every response")
	}

	w = do(srv, http.MethodGet, "/swagger/doc.json", "")
	if w.Code != http.StatusOK {
		t.Fatalf("GET /swagger/doc.json = %d", w.Code)
	}
	var doc struct {
		Paths map[string]any `json:"paths"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &doc); err != nil {
		t.Fatalf("swagger doc is not valid json: %v", err)
	}
	if _, ok := doc.Paths["/agent/chat"]; !ok {
		t.Errorf("swagger doc missing /agent/chat")
	}
}

func TestChatRoute(t *testing.T) {
	backend := okBackend(t)
	srv := newTestServer(t, "development", backend.URL, backend.URL)

	w := do(srv, http.MethodPost, "/agent/chat", `{"message":"Show my pending bookings"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp map[string]any
	json.Unmarshal(w.Body.Bytes(), &resp)
	if resp["agent_used"] != "booking" || resp["message"] != "ok" {
		t.Errorf("unexpected reply %v", resp)
	}
}

func TestTestRoutes(t *testing.T) {
	backend := okBackend(t)

	t.Run("registered outside production", func(t *testing.T) {
		srv := newTestServer(t, "development", backend.URL, backend.URL)
		w := do(srv, http.MethodPost, "/test/classify", `{"message":"cancel my booking"}`)
		if w.Code != http.StatusOK {
			t.Errorf("expected 200, got %d", w.Code)
		}
	})

	t.Run("absent in production", func(t *testing.T) {
		srv := newTestServer(t, "production", backend.URL, backend.URL)
		w := do(srv, http.MethodPost, "/test/classify", `{"message":"cancel my booking"}`)
		if w.Code != http.StatusNotFound {
			t.Errorf("expected 404, got %d", w.Code)
		}
	})
}

func TestNoRoute(t *testing.T) {
	backend := okBackend(t)
	srv := newTestServer(t, "development", backend.URL, backend.URL)

	w := do(srv, http.MethodGet, "/does-not-exist", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}

	var resp response.Resp
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("expected standard envelope, got %s", w.Body.String())
	}
	if resp.ErrorCode != http.StatusNotFound {
		t.Errorf("unexpected error code %d", resp.ErrorCode)
	}
}

func TestNew_Validate(t *testing.T) {
	l := log.NewNop()
	if _, err := New(l, Config{Mode: "test"}); err == nil {
		t.Error("expected error for missing port")
	}
	if _, err := New(l, Config{Mode: "test", Port: 8003}); err == nil {
		t.Error("expected error for missing registry")
	}
}

func TestRun_Shutdown(t *testing.T) {
	backend := okBackend(t)
	srv := newTestServer(t, "development", backend.URL, backend.URL)
	srv.port = 0

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}
