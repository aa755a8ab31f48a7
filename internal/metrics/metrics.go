package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// Chat pipeline metrics
	ChatRequestsTotal   *prometheus.CounterVec
	ChatDurationSeconds *prometheus.HistogramVec

	// Emotion metrics
	EmotionDetectionsTotal *prometheus.CounterVec

	// Retrieval metrics
	RetrievalSearchesTotal *prometheus.CounterVec
	UnansweredTotal        prometheus.Counter

	// Document store metrics
	StoreOperationsTotal  *prometheus.CounterVec
	StoreCorruptionsTotal *prometheus.CounterVec

	// HTTP metrics
	HTTPErrorsTotal *prometheus.CounterVec

	// Rate limiter metrics
	RateLimiterWaitDuration *prometheus.HistogramVec
	RateLimiterDropped      *prometheus.CounterVec
	AIActiveSessions        prometheus.Gauge

	// AI provider metrics
	AIRequestsTotal *prometheus.CounterVec

	// Warmup metrics
	WarmupTasksTotal *prometheus.CounterVec
	WarmupDuration   prometheus.Histogram

	// Backup metrics
	SnapshotTotal           *prometheus.CounterVec
	SnapshotDurationSeconds prometheus.Histogram
	SnapshotSizeBytes       prometheus.Gauge
}

// New creates a new Metrics instance with all metrics registered
func New(registry *prometheus.Registry) *Metrics {
	m := &Metrics{
		ChatRequestsTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "campus_chat_requests_total",
				Help: "Total number of chat messages processed by intent and status",
			},
			[]string{"intent", "status"}, // status: success, error, timeout
		),

		ChatDurationSeconds: promauto.With(registry).NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "campus_chat_duration_seconds",
				Help:    "Chat message processing duration in seconds by intent",
				Buckets: []float64{0.005, 0.01, 0.05, 0.1, 0.5, 1, 2, 5, 10, 30},
			},
			[]string{"intent"},
		),

		EmotionDetectionsTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "campus_emotion_detections_total",
				Help: "Total number of emotional messages detected by emotion label",
			},
			[]string{"emotion"},
		),

		RetrievalSearchesTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "campus_retrieval_searches_total",
				Help: "Total number of catalog searches by catalog and outcome",
			},
			[]string{"catalog", "outcome"}, // catalog: notes, pyq, info, knowledge; outcome: hit, miss
		),

		UnansweredTotal: promauto.With(registry).NewCounter(
			prometheus.CounterOpts{
				Name: "campus_unanswered_queries_total",
				Help: "Total number of queries recorded for admin review",
			},
		),

		StoreOperationsTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "campus_store_operations_total",
				Help: "Total number of document store operations by document and operation",
			},
			[]string{"document", "op"}, // op: load, save, delete
		),

		StoreCorruptionsTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "campus_store_corruptions_total",
				Help: "Total number of corrupt documents replaced by their empty default",
			},
			[]string{"document"},
		),

		HTTPErrorsTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "campus_http_errors_total",
				Help: "Total HTTP errors by type and module",
			},
			[]string{"error_type", "module"}, // error_type: timeout, rate_limit, unauthorized, etc.
		),

		RateLimiterWaitDuration: promauto.With(registry).NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "campus_rate_limiter_wait_duration_seconds",
				Help:    "Time spent waiting for rate limiter token by limiter type",
				Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 2, 5},
			},
			[]string{"limiter_type"}, // limiter_type: global, session, ai
		),

		RateLimiterDropped: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "campus_rate_limiter_dropped_total",
				Help: "Total number of requests dropped by rate limiter",
			},
			[]string{"limiter_type"},
		),

		AIActiveSessions: promauto.With(registry).NewGauge(
			prometheus.GaugeOpts{
				Name: "campus_ai_rate_limiter_sessions",
				Help: "Current number of sessions tracked by the AI rate limiter",
			},
		),

		AIRequestsTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "campus_ai_requests_total",
				Help: "Total generative AI requests by provider and status",
			},
			[]string{"provider", "status"}, // status: success, error, fallback, rate_limited
		),

		WarmupTasksTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "campus_warmup_tasks_total",
				Help: "Total number of warmup tasks by task and status",
			},
			[]string{"task", "status"}, // status: success, error
		),

		WarmupDuration: promauto.With(registry).NewHistogram(
			prometheus.HistogramOpts{
				Name:    "campus_warmup_duration_seconds",
				Help:    "Total duration of warmup process",
				Buckets: []float64{0.1, 0.5, 1, 5, 10, 30, 60},
			},
		),

		SnapshotTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "campus_snapshot_total",
				Help: "Total number of data directory snapshots by status",
			},
			[]string{"status"}, // status: success, error
		),

		SnapshotDurationSeconds: promauto.With(registry).NewHistogram(
			prometheus.HistogramOpts{
				Name:    "campus_snapshot_duration_seconds",
				Help:    "Snapshot creation and upload duration",
				Buckets: []float64{0.1, 0.5, 1, 5, 10, 30, 60, 120},
			},
		),

		SnapshotSizeBytes: promauto.With(registry).NewGauge(
			prometheus.GaugeOpts{
				Name: "campus_snapshot_size_bytes",
				Help: "Size of the most recent snapshot archive",
			},
		),
	}

	return m
}

// RecordChatRequest records one processed chat message
func (m *Metrics) RecordChatRequest(intent, status string, duration float64) {
	m.ChatRequestsTotal.WithLabelValues(intent, status).Inc()
	m.ChatDurationSeconds.WithLabelValues(intent).Observe(duration)
}

// RecordEmotionDetection records a detected emotion
func (m *Metrics) RecordEmotionDetection(emotion string) {
	m.EmotionDetectionsTotal.WithLabelValues(emotion).Inc()
}

// RecordRetrieval records a catalog search outcome
func (m *Metrics) RecordRetrieval(catalog, outcome string) {
	m.RetrievalSearchesTotal.WithLabelValues(catalog, outcome).Inc()
}

// RecordUnanswered records a query saved for admin review
func (m *Metrics) RecordUnanswered() {
	m.UnansweredTotal.Inc()
}

// RecordStoreOperation records a document store operation.
// Implements the storage.MetricsRecorder interface.
func (m *Metrics) RecordStoreOperation(document, op string) {
	m.StoreOperationsTotal.WithLabelValues(document, op).Inc()
}

// RecordStoreCorruption records a corrupt document replaced by its default.
// Implements the storage.MetricsRecorder interface.
func (m *Metrics) RecordStoreCorruption(document string) {
	m.StoreCorruptionsTotal.WithLabelValues(document).Inc()
}

// RecordHTTPError records HTTP error metrics
func (m *Metrics) RecordHTTPError(errorType, module string) {
	m.HTTPErrorsTotal.WithLabelValues(errorType, module).Inc()
}

// RecordRateLimiterWait records time spent waiting for rate limiter
func (m *Metrics) RecordRateLimiterWait(limiterType string, duration float64) {
	m.RateLimiterWaitDuration.WithLabelValues(limiterType).Observe(duration)
}

// RecordRateLimiterDrop records a request dropped by rate limiter
func (m *Metrics) RecordRateLimiterDrop(limiterType string) {
	m.RateLimiterDropped.WithLabelValues(limiterType).Inc()
}

// SetAISessionCount records the number of active AI rate limiter sessions
func (m *Metrics) SetAISessionCount(count int) {
	m.AIActiveSessions.Set(float64(count))
}

// RecordAIRequest records a generative AI provider call
func (m *Metrics) RecordAIRequest(provider, status string) {
	m.AIRequestsTotal.WithLabelValues(provider, status).Inc()
}

// RecordWarmupTask records a warmup task completion
func (m *Metrics) RecordWarmupTask(task, status string) {
	m.WarmupTasksTotal.WithLabelValues(task, status).Inc()
}

// RecordWarmupDuration records total warmup duration
func (m *Metrics) RecordWarmupDuration(duration float64) {
	m.WarmupDuration.Observe(duration)
}

// RecordSnapshot records a snapshot attempt
func (m *Metrics) RecordSnapshot(status string, duration float64, sizeBytes int64) {
	m.SnapshotTotal.WithLabelValues(status).Inc()
	m.SnapshotDurationSeconds.Observe(duration)
	if sizeBytes >= 0 {
		m.SnapshotSizeBytes.Set(float64(sizeBytes))
	}
}
