package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMetrics(t *testing.T) *Metrics {
	t.Helper()
	return New(prometheus.NewRegistry())
}

func TestRecordChatRequest(t *testing.T) {
	m := newTestMetrics(t)

	m.RecordChatRequest("notes_request", "success", 0.02)
	m.RecordChatRequest("notes_request", "success", 0.04)
	m.RecordChatRequest("info_request", "error", 0.01)

	assert.Equal(t, float64(2), testutil.ToFloat64(
		m.ChatRequestsTotal.WithLabelValues("notes_request", "success")))
	assert.Equal(t, float64(1), testutil.ToFloat64(
		m.ChatRequestsTotal.WithLabelValues("info_request", "error")))
}

func TestStoreRecorderMethods(t *testing.T) {
	m := newTestMetrics(t)

	m.RecordStoreOperation("subjects.json", "load")
	m.RecordStoreOperation("subjects.json", "load")
	m.RecordStoreOperation("subjects.json", "save")
	m.RecordStoreCorruption("pyq.json")

	assert.Equal(t, float64(2), testutil.ToFloat64(
		m.StoreOperationsTotal.WithLabelValues("subjects.json", "load")))
	assert.Equal(t, float64(1), testutil.ToFloat64(
		m.StoreOperationsTotal.WithLabelValues("subjects.json", "save")))
	assert.Equal(t, float64(1), testutil.ToFloat64(
		m.StoreCorruptionsTotal.WithLabelValues("pyq.json")))
}

func TestRateLimiterMetrics(t *testing.T) {
	m := newTestMetrics(t)

	m.RecordRateLimiterDrop("session")
	m.SetAISessionCount(7)

	assert.Equal(t, float64(1), testutil.ToFloat64(
		m.RateLimiterDropped.WithLabelValues("session")))
	assert.Equal(t, float64(7), testutil.ToFloat64(m.AIActiveSessions))
}

func TestRecordSnapshot(t *testing.T) {
	m := newTestMetrics(t)

	m.RecordSnapshot("success", 1.5, 4096)
	assert.Equal(t, float64(1), testutil.ToFloat64(
		m.SnapshotTotal.WithLabelValues("success")))
	assert.Equal(t, float64(4096), testutil.ToFloat64(m.SnapshotSizeBytes))

	// A failed attempt must not clobber the last known archive size.
	m.RecordSnapshot("error", 0.2, -1)
	assert.Equal(t, float64(4096), testutil.ToFloat64(m.SnapshotSizeBytes))
}

func TestSeparateRegistriesDoNotCollide(t *testing.T) {
	a := New(prometheus.NewRegistry())
	b := New(prometheus.NewRegistry())
	require.NotNil(t, a)
	require.NotNil(t, b)

	a.RecordEmotionDetection("sad")
	assert.Equal(t, float64(1), testutil.ToFloat64(a.EmotionDetectionsTotal.WithLabelValues("sad")))
	assert.Equal(t, float64(0), testutil.ToFloat64(b.EmotionDetectionsTotal.WithLabelValues("sad")))
}
