package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/campusflow/campus-assistant-go/internal/ctxutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestNewWithWriterJSONOutput(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter("info", &buf)

	log.WithModule("notes").WithField("subject", "dbms").Info("search completed")

	entry := parseLine(t, &buf)
	assert.Equal(t, "search completed", entry["message"])
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "notes", entry["module"])
	assert.Equal(t, "dbms", entry["subject"])
	assert.Contains(t, entry, "timestamp")
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter("warn", &buf)

	log.Info("hidden")
	assert.Zero(t, buf.Len())

	log.Warn("visible")
	entry := parseLine(t, &buf)
	assert.Equal(t, "warning", entry["level"])
}

func TestContextTracingFields(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter("debug", &buf)

	ctx := ctxutil.WithSessionID(context.Background(), "sess-42")
	ctx = ctxutil.WithRequestID(ctx, "req-42")

	log.InfoContext(ctx, "handled")

	entry := parseLine(t, &buf)
	assert.Equal(t, "sess-42", entry["session_id"])
	assert.Equal(t, "req-42", entry["request_id"])
}

func TestFormattedHelpers(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter("debug", &buf)

	log.Infof("found %d results for %s", 3, "java")

	entry := parseLine(t, &buf)
	assert.Equal(t, "found 3 results for java", entry["message"])
}

func TestShutdownWithoutShipping(t *testing.T) {
	log := NewWithWriter("info", &bytes.Buffer{})
	assert.NoError(t, log.Shutdown(context.Background()))
}
