package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMultiHandlerSkipsNilSinks(t *testing.T) {
	var buf bytes.Buffer
	mh := NewMultiHandler(nil, slog.NewJSONHandler(&buf, nil), nil)
	assert.Len(t, mh.handlers, 1)
}

func TestMultiHandlerFansOut(t *testing.T) {
	var a, b bytes.Buffer
	mh := NewMultiHandler(
		slog.NewJSONHandler(&a, nil),
		slog.NewJSONHandler(&b, nil),
	)

	slog.New(mh).Info("catalog loaded", "subjects", 3)

	for _, buf := range []*bytes.Buffer{&a, &b} {
		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "catalog loaded", entry["msg"])
		assert.Equal(t, float64(3), entry["subjects"])
	}
}

func TestMultiHandlerRespectsSinkLevels(t *testing.T) {
	var debug, errOnly bytes.Buffer
	mh := NewMultiHandler(
		slog.NewJSONHandler(&debug, &slog.HandlerOptions{Level: slog.LevelDebug}),
		slog.NewJSONHandler(&errOnly, &slog.HandlerOptions{Level: slog.LevelError}),
	)

	slog.New(mh).Info("just info")

	assert.NotZero(t, debug.Len())
	assert.Zero(t, errOnly.Len())
	assert.True(t, mh.Enabled(context.Background(), slog.LevelDebug))
}

type failingSink struct{}

func (failingSink) Enabled(context.Context, slog.Level) bool  { return true }
func (failingSink) Handle(context.Context, slog.Record) error { return errors.New("sink down") }
func (s failingSink) WithAttrs([]slog.Attr) slog.Handler      { return s }
func (s failingSink) WithGroup(string) slog.Handler           { return s }

func TestMultiHandlerJoinsSinkErrors(t *testing.T) {
	var buf bytes.Buffer
	mh := NewMultiHandler(slog.NewJSONHandler(&buf, nil), failingSink{})

	var rec slog.Record
	rec.Message = "still delivered"
	err := mh.Handle(context.Background(), rec)

	assert.Error(t, err)
	assert.NotZero(t, buf.Len(), "healthy sink should still receive the record")
}

func TestMultiHandlerWithGroup(t *testing.T) {
	var buf bytes.Buffer
	h := NewMultiHandler(slog.NewJSONHandler(&buf, nil)).
		WithGroup("request").
		WithAttrs([]slog.Attr{slog.String("id", "r-1")})

	slog.New(h).Info("handled")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	group, ok := entry["request"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "r-1", group["id"])
}

func TestAsyncHandlerFlushesOnShutdown(t *testing.T) {
	var buf bytes.Buffer
	h := NewAsyncHandler(slog.NewJSONHandler(&buf, nil), AsyncOptions{BufferSize: 8})

	slog.New(h).Info("shipped later")

	require.NoError(t, h.Shutdown(context.Background()))
	assert.Contains(t, buf.String(), "shipped later")
	assert.Zero(t, h.Dropped())
}

type blockedSink struct {
	release chan struct{}
}

func (s *blockedSink) Enabled(context.Context, slog.Level) bool { return true }
func (s *blockedSink) Handle(context.Context, slog.Record) error {
	<-s.release
	return nil
}
func (s *blockedSink) WithAttrs([]slog.Attr) slog.Handler { return s }
func (s *blockedSink) WithGroup(string) slog.Handler      { return s }

func TestAsyncHandlerDropsWhenQueueFull(t *testing.T) {
	sink := &blockedSink{release: make(chan struct{})}
	h := NewAsyncHandler(sink, AsyncOptions{BufferSize: 1, FlushTimeout: 50 * time.Millisecond})
	log := slog.New(h)

	// First record occupies the drain goroutine, second fills the
	// queue, the rest must drop without blocking.
	for i := 0; i < 5; i++ {
		log.Info("burst")
	}

	assert.GreaterOrEqual(t, h.Dropped(), uint64(1))

	close(sink.release)
	require.NoError(t, h.Shutdown(context.Background()))
}

func TestAsyncHandlerShutdownTwice(t *testing.T) {
	h := NewAsyncHandler(slog.NewJSONHandler(&bytes.Buffer{}, nil), AsyncOptions{})
	require.NoError(t, h.Shutdown(context.Background()))
	require.NoError(t, h.Shutdown(context.Background()))
}
