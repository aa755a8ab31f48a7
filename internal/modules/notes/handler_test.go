package notes

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusflow/campus-assistant-go/internal/bot"
	"github.com/campusflow/campus-assistant-go/internal/config"
	"github.com/campusflow/campus-assistant-go/internal/logger"
	"github.com/campusflow/campus-assistant-go/internal/metrics"
	"github.com/campusflow/campus-assistant-go/internal/reply"
	"github.com/campusflow/campus-assistant-go/internal/retrieval"
	"github.com/campusflow/campus-assistant-go/internal/storage"
)

func newTestHandler(t *testing.T) (*Handler, *storage.Store) {
	t.Helper()

	store, err := storage.New(t.TempDir())
	require.NoError(t, err)

	log := logger.New("error")
	engine := retrieval.NewEngine(store, config.PipelineConfig{MaxResults: 10}, log)
	return NewHandler(engine, log, metrics.New(prometheus.NewRegistry())), store
}

func TestCanHandle(t *testing.T) {
	t.Parallel()

	h, _ := newTestHandler(t)

	tests := []struct {
		name string
		text string
		want bool
	}{
		{"direct request", "I need notes for dbms", true},
		{"study material request", "study material for unit 2", true},
		{"bare trigger", "notes", true},
		{"paper trigger wins", "previous year question paper", false},
		{"mixed request goes to papers", "I need notes and previous year papers", false},
		{"greeting", "hello", false},
		{"plain info query", "what are the college timings", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, h.CanHandle(tt.text), "text: %q", tt.text)
		})
	}
}

func TestHandleReturnsMatches(t *testing.T) {
	t.Parallel()

	h, store := newTestHandler(t)
	ctx := context.Background()

	require.NoError(t, store.AddSubject(ctx, "DBMS", []string{"dbms", "database"}))
	require.NoError(t, store.AddUnit(ctx, "DBMS", "Unit 1", "u1.pdf", []string{"sql"}))

	rep, err := h.Handle(ctx, "show me dbms notes")
	require.NoError(t, err)
	assert.Equal(t, reply.TypeNotesResults, rep.Type)
	assert.Equal(t, bot.IntentNotesRequest, rep.Intent)
	require.NotEmpty(t, rep.Results)
}

func TestHandleEmptyCatalog(t *testing.T) {
	t.Parallel()

	h, _ := newTestHandler(t)

	rep, err := h.Handle(context.Background(), "notes")
	require.NoError(t, err)
	assert.Equal(t, reply.TypeText, rep.Type)
	assert.Contains(t, rep.Message, "No study materials available yet")
}
