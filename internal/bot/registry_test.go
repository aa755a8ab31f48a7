package bot

import (
	"context"
	"strings"
	"testing"

	"github.com/campusflow/campus-assistant-go/internal/reply"
)

type stubHandler struct {
	name    string
	keyword string
	calls   int
}

func (s *stubHandler) Name() string { return s.name }

func (s *stubHandler) CanHandle(text string) bool {
	return strings.Contains(text, s.keyword)
}

func (s *stubHandler) Handle(_ context.Context, _ string) (*reply.Reply, error) {
	s.calls++
	return reply.NewText(s.name).WithIntent(s.name), nil
}

func TestRegistryDispatchOrder(t *testing.T) {
	t.Parallel()

	first := &stubHandler{name: "first", keyword: "shared"}
	second := &stubHandler{name: "second", keyword: "shared"}

	r := NewRegistry()
	r.Register(first)
	r.Register(second)

	rep, err := r.Dispatch(context.Background(), "shared keyword message")
	if err != nil {
		t.Fatalf("Dispatch = %v, want nil", err)
	}
	if rep == nil || rep.Intent != "first" {
		t.Fatalf("expected first registered handler to win, got %+v", rep)
	}
	if second.calls != 0 {
		t.Errorf("second handler called %d times, want 0", second.calls)
	}
}

func TestRegistryDispatchUnmatched(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	r.Register(&stubHandler{name: "only", keyword: "nope"})

	rep, err := r.Dispatch(context.Background(), "something else")
	if err != nil {
		t.Fatalf("Dispatch = %v, want nil", err)
	}
	if rep != nil {
		t.Fatalf("expected nil reply for unmatched message, got %+v", rep)
	}
}

func TestRegistryGetHandler(t *testing.T) {
	t.Parallel()

	h := &stubHandler{name: "info", keyword: "info"}
	r := NewRegistry()
	r.Register(h)

	if got := r.GetHandler("info"); got != h {
		t.Error("GetHandler should return the registered handler")
	}
	if got := r.GetHandler("missing"); got != nil {
		t.Error("GetHandler should return nil for unknown names")
	}
}
