// Package bot provides the handler interface, registry, and chat
// processor for the assistant's intent cascade. Each intent module
// (wellbeing, greeting, notes, pyq, info) implements the Handler
// interface and is registered in priority order; the processor
// dispatches each message to the first handler that claims it and
// owns the terminal fallback path.
package bot

import (
	"context"

	"github.com/campusflow/campus-assistant-go/internal/reply"
)

// Intent labels carried in replies and metrics.
const (
	IntentHelpGreeting  = "help_greeting"
	IntentNotesRequest  = "notes_request"
	IntentPYQRequest    = "pyq_request"
	IntentInfoRequest   = "info_request"
	IntentMentalHealth  = "mental_health"
	IntentInfoOrUnknown = "info_or_unknown"
)

// Handler defines the interface that all intent modules must implement.
type Handler interface {
	// Name returns the intent label this handler produces.
	Name() string

	// CanHandle checks if this handler claims the given message.
	// Must be cheap and side-effect free; the registry calls it in
	// cascade order on every message.
	CanHandle(text string) bool

	// Handle processes a claimed message and returns the reply.
	Handle(ctx context.Context, text string) (*reply.Reply, error)
}
