// Package info implements the campus-information module: retrieval
// over the admin-curated info sections under the configured match
// policy, with the knowledge base as a second chance before the query
// is recorded as unanswered.
package info

import (
	"context"

	"github.com/campusflow/campus-assistant-go/internal/bot"
	domerrors "github.com/campusflow/campus-assistant-go/internal/errors"
	"github.com/campusflow/campus-assistant-go/internal/knowledge"
	"github.com/campusflow/campus-assistant-go/internal/logger"
	"github.com/campusflow/campus-assistant-go/internal/metrics"
	"github.com/campusflow/campus-assistant-go/internal/reply"
	"github.com/campusflow/campus-assistant-go/internal/retrieval"
	"github.com/campusflow/campus-assistant-go/internal/storage"
	"github.com/campusflow/campus-assistant-go/internal/textutil"
)

const missMessage = "I'm sorry, I don't have specific information about that topic. " +
	"The admin will add relevant information soon. Is there anything else I can help you with today?"

// infoTriggers claim a message for this module when contained in it.
var infoTriggers = []string{
	"what is", "what are", "how to", "tell me about", "information", "info", "details",
	"explain", "describe", "definition", "meaning", "help me understand", "can you explain",
	"teacher", "teachers", "faculty", "staff", "professor", "instructor", "who is", "about",
}

var lookupErrs = domerrors.NewWrapper("info", "lookup")

// Handler answers campus-information requests.
type Handler struct {
	engine    *retrieval.Engine
	knowledge *knowledge.Index
	store     *storage.Store
	logger    *logger.Logger
	metrics   *metrics.Metrics
}

// NewHandler creates a new info handler.
func NewHandler(engine *retrieval.Engine, idx *knowledge.Index, store *storage.Store, log *logger.Logger, m *metrics.Metrics) *Handler {
	return &Handler{
		engine:    engine,
		knowledge: idx,
		store:     store,
		logger:    log.WithModule("info"),
		metrics:   m,
	}
}

// Name returns the intent label.
func (h *Handler) Name() string {
	return bot.IntentInfoRequest
}

// CanHandle claims messages containing an informational trigger phrase.
func (h *Handler) CanHandle(text string) bool {
	return bot.ContainsAny(textutil.Normalize(text), infoTriggers)
}

// Handle searches the info catalog, then the knowledge base. Terminal
// misses are recorded for admin follow-up.
func (h *Handler) Handle(ctx context.Context, text string) (*reply.Reply, error) {
	results, err := h.engine.Info(ctx, text)
	if err != nil {
		return nil, lookupErrs.Wrap(err, "Couldn't look that up right now. Please try again.")
	}
	if msg, ok := retrieval.RenderInfo(results); ok {
		h.metrics.RecordRetrieval("info", "hit")
		return reply.NewText(msg).WithIntent(bot.IntentInfoRequest), nil
	}
	h.metrics.RecordRetrieval("info", "miss")

	if entry, ok := h.knowledge.Lookup(text); ok {
		h.metrics.RecordRetrieval("knowledge", "hit")
		return reply.NewText(entry.Answer).WithIntent(bot.IntentInfoRequest), nil
	}

	if err := h.store.AppendUnanswered(ctx, text); err != nil {
		h.logger.WithError(err).Warn("failed to record unanswered query")
	} else {
		h.metrics.RecordUnanswered()
	}

	return reply.NewText(missMessage).WithIntent(bot.IntentInfoRequest), nil
}

var _ bot.Handler = (*Handler)(nil)
