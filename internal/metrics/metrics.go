package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics exposes application metrics that are safe to scrape via Prometheus.
type Metrics struct {
	registry              *prometheus.Registry
	httpRequests          *prometheus.CounterVec
	httpRequestDuration   *prometheus.HistogramVec
	topologyBuildsTotal   *prometheus.CounterVec
	topologyBuildDuration *prometheus.HistogramVec
	syncRunsTotal         prometheus.Counter
	syncRunDuration       prometheus.Histogram
}

// New creates a fresh Metrics registry with HTTP, topology and sync metrics
// registered.
func New() *Metrics {
	registry := prometheus.NewRegistry()

	httpRequests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "fabricview",
		Name:      "http_requests_total",
		Help:      "Count of HTTP requests processed by the console API",
	}, []string{"method", "path", "status"})

	httpRequestDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "fabricview",
		Name:      "http_request_duration_seconds",
		Help:      "Duration of HTTP requests served by the console API",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	topologyBuildsTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "fabricview",
		Name:      "topology_builds_total",
		Help:      "Count of topology table recomputations",
	}, []string{"grouping"})

	topologyBuildDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "fabricview",
		Name:      "topology_build_duration_seconds",
		Help:      "Duration of topology table recomputations",
		Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
	}, []string{"grouping"})

	syncRunsTotal := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "fabricview",
		Name:      "sync_runs_total",
		Help:      "Total number of collection sync runs processed",
	})

	syncRunDuration := prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "fabricview",
		Name:      "sync_run_duration_seconds",
		Help:      "Duration of collection sync runs from start to finish",
		Buckets:   []float64{0.05, 0.1, 0.5, 1, 5, 10, 30, 60},
	})

	registry.MustRegister(
		httpRequests,
		httpRequestDuration,
		topologyBuildsTotal,
		topologyBuildDuration,
		syncRunsTotal,
		syncRunDuration,
	)

	return &Metrics{
		registry:              registry,
		httpRequests:          httpRequests,
		httpRequestDuration:   httpRequestDuration,
		topologyBuildsTotal:   topologyBuildsTotal,
		topologyBuildDuration: topologyBuildDuration,
		syncRunsTotal:         syncRunsTotal,
		syncRunDuration:       syncRunDuration,
	}
}

// ObserveHTTPRequest records a single HTTP request/response cycle.
func (m *Metrics) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	labels := prometheus.Labels{
		"method": method,
		"path":   path,
		"status": strconv.Itoa(status),
	}
	m.httpRequests.With(labels).Inc()
	m.httpRequestDuration.With(labels).Observe(duration.Seconds())
}

// ObserveTopologyBuild records one recomputation of a topology table.
// Grouping is "fabric" or "space".
func (m *Metrics) ObserveTopologyBuild(grouping string, duration time.Duration) {
	if m == nil {
		return
	}
	m.topologyBuildsTotal.WithLabelValues(grouping).Inc()
	m.topologyBuildDuration.WithLabelValues(grouping).Observe(duration.Seconds())
}

// ObserveSyncRun records one completed sync run.
func (m *Metrics) ObserveSyncRun(duration time.Duration) {
	if m == nil {
		return
	}
	m.syncRunsTotal.Inc()
	m.syncRunDuration.Observe(duration.Seconds())
}

// Handler exposes the Prometheus registry over HTTP.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte("metrics unavailable"))
		})
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
