package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"

	"agent-orchestrator/config"
	"agent-orchestrator/pkg/log"
)

type mockLogger struct {
	mu    sync.Mutex
	infos int
	warns int
}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.infos++
}
func (m *mockLogger) Warn(ctx context.Context, arg ...any) {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.warns++
}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}

func init() {
	gin.SetMode(gin.TestMode)
}

func TestRequestID(t *testing.T) {
	mw := New(&mockLogger{}, config.CORSConfig{}, config.RateLimitConfig{})

	var seen string
	r := gin.New()
	r.Use(mw.RequestID())
	r.GET("/", func(c *gin.Context) {
		seen = log.RequestIDFromContext(c.Request.Context())
		c.Status(http.StatusOK)
	})

	t.Run("generated", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		id := w.Header().Get(HeaderRequestID)
		if id == "" {
			t.Fatal("expected a generated request id")
		}
		if seen != id {
			t.Errorf("context id %q != header id %q", seen, id)
		}
	})

	t.Run("inbound reused", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(HeaderRequestID, "abc-123")
		r.ServeHTTP(w, req)

		if got := w.Header().Get(HeaderRequestID); got != "abc-123" {
			t.Errorf("expected inbound id echoed, got %q", got)
		}
		if seen != "abc-123" {
			t.Errorf("expected inbound id in context, got %q", seen)
		}
	})
}

func TestRateLimit(t *testing.T) {
	// 60/min gives a burst of 6 and refills one token per second.
	mw := New(&mockLogger{}, config.CORSConfig{}, config.RateLimitConfig{Enabled: true, RequestsPerMin: 60})

	r := gin.New()
	r.POST("/chat", mw.RateLimit(), func(c *gin.Context) { c.Status(http.StatusOK) })

	send := func(ip string) int {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/chat", nil)
		req.RemoteAddr = ip + ":1234"
		r.ServeHTTP(w, req)
		return w.Code
	}

	for i := 0; i < 6; i++ {
		if code := send("10.0.0.1"); code != http.StatusOK {
			t.Fatalf("request %d within burst got %d", i, code)
		}
	}
	if code := send("10.0.0.1"); code != http.StatusTooManyRequests {
		t.Errorf("expected 429 after burst, got %d", code)
	}
	if code := send("10.0.0.2"); code != http.StatusOK {
		t.Errorf("other clients must not be limited, got %d", code)
	}
}

func TestRateLimiter_ConcurrentFirstRequests(t *testing.T) {
	// Burst of 6 per client, regardless of how many requests race to create the bucket.
	rl := newRateLimiter(60)

	const workers = 50
	var wg sync.WaitGroup
	var mu sync.Mutex
	allowed := 0
	start := make(chan struct{})

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			if rl.Allow("10.0.0.9") {
				mu.Lock()
				allowed++
				mu.Unlock()
			}
		}()
	}
	close(start)
	wg.Wait()

	if allowed > 6 {
		t.Errorf("expected at most 6 allowed requests, got %d", allowed)
	}
	if rl.limiters.Len() != 1 {
		t.Errorf("expected a single bucket, got %d", rl.limiters.Len())
	}
}

func TestRateLimit_Disabled(t *testing.T) {
	mw := New(&mockLogger{}, config.CORSConfig{}, config.RateLimitConfig{Enabled: false, RequestsPerMin: 1})

	r := gin.New()
	r.POST("/chat", mw.RateLimit(), func(c *gin.Context) { c.Status(http.StatusOK) })

	for i := 0; i < 20; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/chat", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("request %d got %d with limiting disabled", i, w.Code)
		}
	}
}

func TestCORS(t *testing.T) {
	mw := New(&mockLogger{}, config.CORSConfig{AllowedOrigins: []string{"http://localhost:3000"}}, config.RateLimitConfig{})

	r := gin.New()
	r.Use(mw.CORS())
	r.POST("/agent/chat", func(c *gin.Context) { c.Status(http.StatusOK) })

	t.Run("preflight allowed origin", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodOptions, "/agent/chat", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		req.Header.Set("Access-Control-Request-Method", "POST")
		r.ServeHTTP(w, req)

		if got := w.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:3000" {
			t.Errorf("unexpected allow origin %q", got)
		}
		if got := w.Header().Get("Access-Control-Allow-Credentials"); got != "true" {
			t.Errorf("expected credentials allowed, got %q", got)
		}
	})

	t.Run("unknown origin rejected", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/agent/chat", nil)
		req.Header.Set("Origin", "http://evil.example")
		r.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Errorf("expected 403 for unknown origin, got %d", w.Code)
		}
	})
}

func TestCORS_LogsConfiguration(t *testing.T) {
	configured := &mockLogger{}
	New(configured, config.CORSConfig{AllowedOrigins: []string{"http://localhost:3000"}}, config.RateLimitConfig{}).CORS()
	if configured.infos != 1 || configured.warns != 0 {
		t.Errorf("expected origins logged at info, got %d/%d", configured.infos, configured.warns)
	}

	open := &mockLogger{}
	New(open, config.CORSConfig{}, config.RateLimitConfig{}).CORS()
	if open.warns != 1 {
		t.Errorf("expected a warning when every origin is allowed, got %d", open.warns)
	}
}

func TestAccessLog(t *testing.T) {
	l := &mockLogger{}
	mw := New(l, config.CORSConfig{}, config.RateLimitConfig{})

	r := gin.New()
	r.Use(mw.AccessLog())
	r.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/bad", func(c *gin.Context) { c.Status(http.StatusBadRequest) })

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/ok", nil))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/bad", nil))

	if l.infos != 1 || l.warns != 1 {
		t.Errorf("expected 1 info and 1 warn, got %d/%d", l.infos, l.warns)
	}
}
