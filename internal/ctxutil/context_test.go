package ctxutil

import (
	"context"
	"testing"
	"time"
)

func TestSessionID(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	if got := GetSessionID(ctx); got != "" {
		t.Errorf("expected empty session ID, got %q", got)
	}

	ctx = WithSessionID(ctx, "sess-123")
	if got := GetSessionID(ctx); got != "sess-123" {
		t.Errorf("expected sess-123, got %q", got)
	}
	if got := MustGetSessionID(ctx); got != "sess-123" {
		t.Errorf("expected sess-123, got %q", got)
	}
}

func TestMustGetSessionIDPanics(t *testing.T) {
	t.Parallel()

	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic for missing session ID")
		}
	}()
	MustGetSessionID(context.Background())
}

func TestChatID(t *testing.T) {
	t.Parallel()

	ctx := WithChatID(context.Background(), "chat-9")
	if got := GetChatID(ctx); got != "chat-9" {
		t.Errorf("expected chat-9, got %q", got)
	}
	if got := GetChatID(context.Background()); got != "" {
		t.Errorf("expected empty chat ID, got %q", got)
	}
}

func TestRequestID(t *testing.T) {
	t.Parallel()

	if _, ok := GetRequestID(context.Background()); ok {
		t.Error("expected no request ID in fresh context")
	}

	ctx := WithRequestID(context.Background(), "req-1")
	got, ok := GetRequestID(ctx)
	if !ok || got != "req-1" {
		t.Errorf("expected req-1, got %q (ok=%v)", got, ok)
	}
}

func TestPreserveTracing(t *testing.T) {
	t.Parallel()

	parent, cancel := context.WithTimeout(context.Background(), time.Millisecond)
	defer cancel()

	parent = WithSessionID(parent, "sess-7")
	parent = WithChatID(parent, "chat-7")
	parent = WithRequestID(parent, "req-7")

	detached := PreserveTracing(parent)

	cancel()
	if detached.Err() != nil {
		t.Error("detached context should not inherit cancellation")
	}
	if got := GetSessionID(detached); got != "sess-7" {
		t.Errorf("expected sess-7, got %q", got)
	}
	if got := GetChatID(detached); got != "chat-7" {
		t.Errorf("expected chat-7, got %q", got)
	}
	if got, ok := GetRequestID(detached); !ok || got != "req-7" {
		t.Errorf("expected req-7, got %q", got)
	}
}
