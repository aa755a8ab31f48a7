package bot

import (
	"context"

	"github.com/campusflow/campus-assistant-go/internal/reply"
)

// Registry manages intent handlers and dispatches messages in
// registration order. Registration order is the cascade priority.
type Registry struct {
	handlers []Handler
}

// NewRegistry creates a new handler registry.
func NewRegistry() *Registry {
	return &Registry{
		handlers: make([]Handler, 0),
	}
}

// Register adds a handler to the registry.
func (r *Registry) Register(h Handler) {
	r.handlers = append(r.handlers, h)
}

// Dispatch routes a message to the first handler that claims it.
// Returns (nil, nil) when no handler claims the message; the caller
// owns the terminal fallback.
func (r *Registry) Dispatch(ctx context.Context, text string) (*reply.Reply, error) {
	for _, h := range r.handlers {
		if h.CanHandle(text) {
			return h.Handle(ctx, text)
		}
	}
	return nil, nil
}

// GetHandler returns a handler by intent name, or nil.
func (r *Registry) GetHandler(name string) Handler {
	for _, h := range r.handlers {
		if h.Name() == name {
			return h
		}
	}
	return nil
}
