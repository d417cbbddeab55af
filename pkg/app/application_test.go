package app

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"splendico/pkg/client"
	"splendico/pkg/config"
	httputil "splendico/pkg/http"
	"splendico/pkg/logger"
	"splendico/pkg/metrics"
	"splendico/pkg/middleware"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubHealth struct{}

func (stubHealth) RegisterRoutes(router *httprouter.Router) {
	router.GET("/health", func(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
		_ = httputil.WriteOK(w, map[string]string{"status": "ok"})
	})
}

type counterHandler struct {
	calls atomic.Int32
}

func (h *counterHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/", func(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
		_, _ = w.Write([]byte("Splendico hotel server running"))
	})
	router.POST("/booking", func(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
		n := h.calls.Add(1)
		_ = httputil.WriteCreated(w, map[string]int32{"call": n})
	})
	router.GET("/panic", func(http.ResponseWriter, *http.Request, httprouter.Params) {
		panic("boom")
	})
}

type closeRecorder struct {
	closed atomic.Bool
}

func (c *closeRecorder) Close() error {
	c.closed.Store(true)
	return nil
}

func testConfig() *config.Config {
	return &config.Config{
		Settings: config.Settings{
			AppEnv:             config.EnvDevelopment,
			Port:               "0",
			CORSAllowedOrigins: []string{"http://localhost:5173"},
			RateLimitRPS:       0.001,
			RateLimitBurst:     5,
			RequestTimeout:     5 * time.Second,
			MaxRequestSize:     1024,
			ReadTimeout:        5 * time.Second,
			WriteTimeout:       5 * time.Second,
			IdleTimeout:        5 * time.Second,
			ShutdownTimeout:    time.Second,
		},
		Log:    logger.Nop(),
		Client: client.NewClient(),
	}
}

type fixture struct {
	app       *Application
	handler   *counterHandler
	publisher *closeRecorder
}

func newFixture() *fixture {
	cfg := testConfig()
	h := &counterHandler{}
	pub := &closeRecorder{}
	a := NewApplication(cfg, metrics.NewCollector(), middleware.NewInMemoryIdempotencyStore(time.Minute), pub)
	a.SetApp(stubHealth{}, h)
	return &fixture{app: a, handler: h, publisher: pub}
}

func (f *fixture) do(req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	f.app.Handler().ServeHTTP(w, req)
	return w
}

func TestBannerAndCORS(t *testing.T) {
	f := newFixture()
	t.Cleanup(f.app.gracefulShutdown)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	w := f.do(req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Splendico hotel server running", w.Body.String())
	assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
	assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))
}

func TestHealthBypassesAppStack(t *testing.T) {
	f := newFixture()
	t.Cleanup(f.app.gracefulShutdown)

	for i := 0; i < 10; i++ {
		w := f.do(httptest.NewRequest(http.MethodGet, "/health", nil))
		require.Equal(t, http.StatusOK, w.Code, "health must not be rate limited")
	}
}

func TestUnknownRouteIsJSON404(t *testing.T) {
	f := newFixture()
	t.Cleanup(f.app.gracefulShutdown)

	w := f.do(httptest.NewRequest(http.MethodGet, "/nope", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), `"code":"NOT_FOUND"`)
}

func TestContentTypeEnforced(t *testing.T) {
	f := newFixture()
	t.Cleanup(f.app.gracefulShutdown)

	req := httptest.NewRequest(http.MethodPost, "/booking", strings.NewReader("{}"))
	req.Header.Set("Content-Type", "text/plain")
	w := f.do(req)

	assert.Equal(t, http.StatusUnsupportedMediaType, w.Code)
	assert.Zero(t, f.handler.calls.Load())
}

func TestIdempotentReplay(t *testing.T) {
	f := newFixture()
	t.Cleanup(f.app.gracefulShutdown)

	post := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/booking", strings.NewReader("{}"))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(middleware.IdempotencyHeader, "booking-1")
		return f.do(req)
	}

	first := post()
	second := post()

	assert.Equal(t, http.StatusCreated, first.Code)
	assert.Equal(t, http.StatusCreated, second.Code)
	assert.Equal(t, first.Body.String(), second.Body.String())
	assert.Equal(t, "true", second.Header().Get("Idempotent-Replayed"))
	assert.EqualValues(t, 1, f.handler.calls.Load())
}

func TestRateLimitPerClient(t *testing.T) {
	f := newFixture()
	t.Cleanup(f.app.gracefulShutdown)

	var last *httptest.ResponseRecorder
	for i := 0; i < 6; i++ {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "198.51.100.7:4000"
		last = f.do(req)
	}
	assert.Equal(t, http.StatusTooManyRequests, last.Code)

	other := httptest.NewRequest(http.MethodGet, "/", nil)
	other.RemoteAddr = "198.51.100.8:4000"
	assert.Equal(t, http.StatusOK, f.do(other).Code)
}

func TestRecoveryAndMetrics(t *testing.T) {
	f := newFixture()
	t.Cleanup(f.app.gracefulShutdown)

	w := f.do(httptest.NewRequest(http.MethodGet, "/panic", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	f.do(httptest.NewRequest(http.MethodGet, "/", nil))

	scrape := f.do(httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, scrape.Code)
	body, err := io.ReadAll(scrape.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `splendico_http_requests_total{method="GET",route="/",status="200"} 1`)
	assert.Contains(t, string(body), `splendico_http_requests_total{method="GET",route="/panic",status="500"} 1`)
}

func TestGracefulShutdownReleasesResources(t *testing.T) {
	f := newFixture()

	f.app.gracefulShutdown()

	assert.True(t, f.publisher.closed.Load())
	err := f.app.server.Shutdown(context.Background())
	assert.NoError(t, err)
}
