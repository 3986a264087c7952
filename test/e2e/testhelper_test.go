package e2e_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/marcos-nsantos/quadtree-backend/internal/adapter/handler"
	"github.com/marcos-nsantos/quadtree-backend/internal/adapter/repository/memory"
	"github.com/marcos-nsantos/quadtree-backend/internal/infrastructure/observability"
	"github.com/marcos-nsantos/quadtree-backend/internal/infrastructure/server"
	"github.com/marcos-nsantos/quadtree-backend/internal/usecase/index"
)

const (
	apiBasePath = "/api/v1"
	metricsPath = "/metrics"
)

type TestApp struct {
	Server     *httptest.Server
	BaseURL    string
	httpClient *http.Client
}

func setupTestApp(t *testing.T) *TestApp {
	t.Helper()

	if testing.Short() {
		t.Skip("Skipping e2e test in short mode")
	}

	gin.SetMode(gin.TestMode)
	logger := zaptest.NewLogger(t)

	registry := prometheus.NewRegistry()
	indexMetrics := observability.NewIndexMetrics(registry)

	indexSvc := index.NewService(memory.NewIndexRepo(), indexMetrics, logger, index.Config{
		DefaultCapacity: 4,
		MaxCapacity:     64,
		MaxBatchPoints:  1000,
		MaxSeedPoints:   5000,
	})

	router := server.NewRouter(server.RouterConfig{
		IndexHandler:   handler.NewIndexHandler(indexSvc),
		MetricsHandler: indexMetrics.Handler(),
		MetricsPath:    metricsPath,
		Logger:         logger,
		Environment:    "test",
	})

	ts := httptest.NewServer(router.Engine())
	t.Cleanup(ts.Close)

	return &TestApp{
		Server:  ts,
		BaseURL: ts.URL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (app *TestApp) request(method, path string, body any) (*http.Response, error) {
	var bodyReader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		bodyReader = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequest(method, app.BaseURL+apiBasePath+path, bodyReader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	return app.httpClient.Do(req)
}

func (app *TestApp) get(path string) (*http.Response, error) {
	return app.request(http.MethodGet, path, nil)
}

func (app *TestApp) post(path string, body any) (*http.Response, error) {
	return app.request(http.MethodPost, path, body)
}

func (app *TestApp) delete(path string) (*http.Response, error) {
	return app.request(http.MethodDelete, path, nil)
}

func parseResponse(t *testing.T, resp *http.Response, dest any) {
	t.Helper()
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	if dest != nil {
		err = json.Unmarshal(body, dest)
		require.NoError(t, err, "response body: %s", string(body))
	}
}

func createIndex(t *testing.T, app *TestApp, name string, capacity int) {
	t.Helper()

	resp, err := app.post("/indexes", map[string]any{
		"name":     name,
		"boundary": map[string]float64{"cx": 200, "cy": 200, "half_w": 200, "half_h": 200},
		"capacity": capacity,
	})
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()
}
