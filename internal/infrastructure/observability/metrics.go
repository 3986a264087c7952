package observability

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// IndexMetrics records insert and query activity per index.
type IndexMetrics struct {
	pointsInserted *prometheus.CounterVec
	pointsRejected *prometheus.CounterVec
	queries        *prometheus.CounterVec
	queryDuration  *prometheus.HistogramVec
	queryResults   *prometheus.HistogramVec
	gatherer       prometheus.Gatherer
}

func NewIndexMetrics(reg *prometheus.Registry) *IndexMetrics {
	m := &IndexMetrics{
		pointsInserted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "quadtree_points_inserted_total",
			Help: "Total number of points accepted by an index",
		}, []string{"index"}),
		pointsRejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "quadtree_points_rejected_total",
			Help: "Total number of points rejected by an index (outside boundary or dropped at the size floor)",
		}, []string{"index"}),
		queries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "quadtree_queries_total",
			Help: "Total number of range queries by region shape",
		}, []string{"index", "shape"}),
		queryDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "quadtree_query_duration_ms",
			Help:    "Range query duration in milliseconds",
			Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 5, 10, 50, 100},
		}, []string{"shape"}),
		queryResults: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "quadtree_query_results",
			Help:    "Number of points returned by a range query",
			Buckets: prometheus.ExponentialBuckets(1, 4, 8),
		}, []string{"shape"}),
		gatherer: reg,
	}

	reg.MustRegister(
		m.pointsInserted,
		m.pointsRejected,
		m.queries,
		m.queryDuration,
		m.queryResults,
	)

	return m
}

func (m *IndexMetrics) PointsInserted(index string, accepted, rejected int) {
	m.pointsInserted.WithLabelValues(index).Add(float64(accepted))
	m.pointsRejected.WithLabelValues(index).Add(float64(rejected))
}

func (m *IndexMetrics) QueryServed(index, shape string, results int, elapsed time.Duration) {
	m.queries.WithLabelValues(index, shape).Inc()
	m.queryDuration.WithLabelValues(shape).Observe(float64(elapsed.Microseconds()) / 1000)
	m.queryResults.WithLabelValues(shape).Observe(float64(results))
}

// IndexDeleted drops every series labelled with index.
func (m *IndexMetrics) IndexDeleted(index string) {
	labels := prometheus.Labels{"index": index}
	m.pointsInserted.DeletePartialMatch(labels)
	m.pointsRejected.DeletePartialMatch(labels)
	m.queries.DeletePartialMatch(labels)
}

// Handler exposes the registry for scraping.
func (m *IndexMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}
