package server_test

import (
	"context"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/marcos-nsantos/quadtree-backend/internal/adapter/handler"
	"github.com/marcos-nsantos/quadtree-backend/internal/adapter/repository/memory"
	"github.com/marcos-nsantos/quadtree-backend/internal/infrastructure/observability"
	"github.com/marcos-nsantos/quadtree-backend/internal/infrastructure/server"
	"github.com/marcos-nsantos/quadtree-backend/internal/usecase/index"
)

func newRouter(t *testing.T, withMetrics bool) *server.Router {
	t.Helper()

	metrics := observability.NewIndexMetrics(prometheus.NewRegistry())
	svc := index.NewService(memory.NewIndexRepo(), metrics, zap.NewNop(), index.Config{
		DefaultCapacity: 4,
		MaxCapacity:     64,
		MaxBatchPoints:  100,
		MaxSeedPoints:   100,
	})

	cfg := server.RouterConfig{
		IndexHandler: handler.NewIndexHandler(svc),
		Logger:       zap.NewNop(),
		Environment:  "test",
		MetricsPath:  "/metrics",
	}
	if withMetrics {
		cfg.MetricsHandler = metrics.Handler()
	}
	return server.NewRouter(cfg)
}

func TestRouter(t *testing.T) {
	t.Run("health", func(t *testing.T) {
		w := httptest.NewRecorder()
		newRouter(t, false).Engine().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
		assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
	})

	t.Run("metrics mounted when configured", func(t *testing.T) {
		w := httptest.NewRecorder()
		newRouter(t, true).Engine().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("metrics absent otherwise", func(t *testing.T) {
		w := httptest.NewRecorder()
		newRouter(t, false).Engine().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("index routes", func(t *testing.T) {
		w := httptest.NewRecorder()
		newRouter(t, false).Engine().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/indexes/missing", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "NOT_FOUND")
	})
}

func TestServer_ServeAndShutdown(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	srv := server.NewServer(server.ServerConfig{
		ReadTimeout:     time.Second,
		WriteTimeout:    time.Second,
		ShutdownTimeout: time.Second,
		Handler:         newRouter(t, false).Engine(),
		Logger:          zap.NewNop(),
	})

	done := make(chan error, 1)
	go func() { done <- srv.Serve(ln) }()

	resp, err := http.Get("http://" + ln.Addr().String() + "/health")
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "ok")

	require.NoError(t, srv.Shutdown(context.Background()))
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("server did not stop")
	}
}
