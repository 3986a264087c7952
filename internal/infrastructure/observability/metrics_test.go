package observability_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcos-nsantos/quadtree-backend/internal/infrastructure/observability"
)

func TestIndexMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := observability.NewIndexMetrics(reg)

	m.PointsInserted("cities", 3, 1)
	m.PointsInserted("cities", 2, 0)
	m.QueryServed("cities", "circle", 7, 250*time.Microsecond)

	count, err := testutil.GatherAndCount(reg,
		"quadtree_points_inserted_total",
		"quadtree_points_rejected_total",
		"quadtree_queries_total",
	)
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	w := httptest.NewRecorder()
	m.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `quadtree_points_inserted_total{index="cities"} 5`)
	assert.Contains(t, w.Body.String(), `quadtree_points_rejected_total{index="cities"} 1`)
	assert.Contains(t, w.Body.String(), `quadtree_queries_total{index="cities",shape="circle"} 1`)
}

func TestIndexMetrics_IndexDeleted(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := observability.NewIndexMetrics(reg)

	m.PointsInserted("cities", 3, 1)
	m.QueryServed("cities", "box", 2, time.Millisecond)
	m.QueryServed("cities", "circle", 2, time.Millisecond)
	m.PointsInserted("parks", 1, 0)

	m.IndexDeleted("cities")

	count, err := testutil.GatherAndCount(reg,
		"quadtree_points_inserted_total",
		"quadtree_points_rejected_total",
		"quadtree_queries_total",
	)
	require.NoError(t, err)
	assert.Equal(t, 2, count, "only the parks series remain")

	w := httptest.NewRecorder()
	m.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.NotContains(t, w.Body.String(), `index="cities"`)
	assert.Contains(t, w.Body.String(), `quadtree_points_inserted_total{index="parks"} 1`)
}

func TestNewLogger(t *testing.T) {
	t.Run("builds json logger", func(t *testing.T) {
		logger, err := observability.NewLogger("debug", "json")
		require.NoError(t, err)
		assert.NotNil(t, logger)
	})

	t.Run("builds console logger", func(t *testing.T) {
		logger, err := observability.NewLogger("info", "console")
		require.NoError(t, err)
		assert.NotNil(t, logger)
	})

	t.Run("rejects unknown level", func(t *testing.T) {
		_, err := observability.NewLogger("loud", "json")
		assert.Error(t, err)
	})

	t.Run("rejects unknown format", func(t *testing.T) {
		_, err := observability.NewLogger("info", "xml")
		assert.ErrorContains(t, err, "unknown log format")
	})
}
