// Package metrics provides Prometheus metrics for the analytics pipeline.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager manages all Prometheus metrics for the pipeline.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	registry         prometheus.Registerer

	// Ingestion
	statLinesIngested prometheus.Counter
	matchupsIngested  prometheus.Counter

	// Pipeline stages
	weeksNormalized   prometheus.Counter
	scoresComputed    prometheus.Counter
	matchupsCounted   prometheus.Counter
	matchupsDuplicate prometheus.Counter
	stageDuration     *prometheus.HistogramVec

	// Runs
	pipelineRuns    prometheus.Counter
	pipelineErrors  prometheus.Counter
	lastRunUnix     prometheus.Gauge
	lastRunDuration prometheus.Gauge

	// Export
	itemsExported  *prometheus.CounterVec
	pagesRendered  prometheus.Counter
	pagesPublished prometheus.Counter

	// HTTP (serve mode)
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	// Errors by component
	errorsByComponent *prometheus.CounterVec
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

// Initialize global metrics.
func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "dugout",
		subsystem:        "pipeline",
		histogramBuckets: prometheus.DefBuckets,
		registry:         prometheus.DefaultRegisterer,
	}
	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()
	return m
}

// initializeMetrics creates all the Prometheus metrics.
func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.statLinesIngested = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "stat_lines_ingested_total",
		Help:      "Total number of team-week stat lines ingested",
	})

	m.matchupsIngested = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "matchups_ingested_total",
		Help:      "Total number of raw matchup results read from fixtures",
	})

	m.weeksNormalized = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "weeks_normalized_total",
		Help:      "Total number of week normalization passes completed",
	})

	m.scoresComputed = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "scores_computed_total",
		Help:      "Total number of normalized category scores computed",
	})

	m.matchupsCounted = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "h2h_matchups_counted_total",
		Help:      "Total number of matchups accumulated into the H2H matrix",
	})

	m.matchupsDuplicate = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "h2h_matchups_duplicate_total",
		Help:      "Total number of duplicate matchups skipped (indicates data quality)",
	})

	m.stageDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "stage_duration_milliseconds",
		Help:      "Histogram of per-stage computation durations in milliseconds",
		Buckets:   m.histogramBuckets,
	}, []string{"stage"})

	m.pipelineRuns = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "runs_total",
		Help:      "Total number of pipeline runs",
	})

	m.pipelineErrors = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "run_errors_total",
		Help:      "Total number of pipeline runs that failed",
	})

	m.lastRunUnix = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "last_run_timestamp_seconds",
		Help:      "Unix timestamp of the last completed pipeline run",
	})

	m.lastRunDuration = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "last_run_duration_milliseconds",
		Help:      "Duration of the last completed pipeline run in milliseconds",
	})

	m.itemsExported = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "items_exported_total",
		Help:      "Total number of rows written to external storage by table",
	}, []string{"table"})

	m.pagesRendered = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "pages_rendered_total",
		Help:      "Total number of dashboard pages rendered",
	})

	m.pagesPublished = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "pages_published_total",
		Help:      "Total number of files uploaded to the static site host",
	})

	m.httpRequests = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Total number of HTTP requests by endpoint, method and status",
	}, []string{"endpoint", "method", "status"})

	m.httpRequestDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: "http",
		Name:      "request_duration_milliseconds",
		Help:      "Histogram of HTTP request durations in milliseconds",
		Buckets:   m.histogramBuckets,
	}, []string{"endpoint", "method"})

	m.errorsByComponent = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "errors_total",
		Help:      "Total number of errors by component",
	}, []string{"component"})
}

// Package-level helpers against the global manager.

// RecordStatLinesIngested counts stat lines read from fixtures.
func RecordStatLinesIngested(n int) {
	globalManager.statLinesIngested.Add(float64(n))
}

// RecordMatchupsIngested counts raw matchup results read from fixtures.
func RecordMatchupsIngested(n int) {
	globalManager.matchupsIngested.Add(float64(n))
}

// RecordWeekNormalized counts one completed week normalization pass.
func RecordWeekNormalized(scores int) {
	globalManager.weeksNormalized.Inc()
	globalManager.scoresComputed.Add(float64(scores))
}

// RecordMatchupCounted counts one matchup folded into the H2H matrix.
func RecordMatchupCounted() {
	globalManager.matchupsCounted.Inc()
}

// RecordMatchupDuplicate counts one duplicate matchup skipped.
func RecordMatchupDuplicate() {
	globalManager.matchupsDuplicate.Inc()
}

// RecordStageDuration records one stage's wall time.
func RecordStageDuration(stage string, d time.Duration) {
	globalManager.stageDuration.WithLabelValues(stage).Observe(float64(d.Milliseconds()))
}

// RecordPipelineRun records a completed run and its duration.
func RecordPipelineRun(d time.Duration) {
	globalManager.pipelineRuns.Inc()
	globalManager.lastRunUnix.SetToCurrentTime()
	globalManager.lastRunDuration.Set(float64(d.Milliseconds()))
}

// RecordPipelineError records a failed run.
func RecordPipelineError() {
	globalManager.pipelineErrors.Inc()
}

// RecordItemsExported counts rows written to external storage.
func RecordItemsExported(table string, n int) {
	globalManager.itemsExported.WithLabelValues(table).Add(float64(n))
}

// RecordPageRendered counts one rendered dashboard page.
func RecordPageRendered() {
	globalManager.pagesRendered.Inc()
}

// RecordPagePublished counts one file uploaded to the site host.
func RecordPagePublished() {
	globalManager.pagesPublished.Inc()
}

// RecordHTTPRequest records one HTTP request.
func RecordHTTPRequest(endpoint, method, status string) {
	globalManager.httpRequests.WithLabelValues(endpoint, method, status).Inc()
}

// RecordHTTPRequestDuration records one HTTP request's duration.
func RecordHTTPRequestDuration(endpoint, method string, durationMs float64) {
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method).Observe(durationMs)
}

// RecordError counts one error for a component.
func RecordError(component string) {
	globalManager.errorsByComponent.WithLabelValues(component).Inc()
}

// GetRegistry returns the custom registry used by the global manager.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
