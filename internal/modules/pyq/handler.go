// Package pyq implements the previous-year-question-paper module:
// scored retrieval over the paper catalog, with a per-type overview as
// the fallback when nothing matches.
package pyq

import (
	"context"

	"github.com/campusflow/campus-assistant-go/internal/bot"
	domerrors "github.com/campusflow/campus-assistant-go/internal/errors"
	"github.com/campusflow/campus-assistant-go/internal/logger"
	"github.com/campusflow/campus-assistant-go/internal/metrics"
	"github.com/campusflow/campus-assistant-go/internal/reply"
	"github.com/campusflow/campus-assistant-go/internal/retrieval"
)

const (
	foundMessage = " I found these PYQ materials:"
	listMessage  = " Available PYQ materials:"
	emptyMessage = " No PYQ materials available yet. Admin will add them soon!"
)

var searchErrs = domerrors.NewWrapper("pyq", "search")

// Handler answers question-paper requests.
type Handler struct {
	engine  *retrieval.Engine
	logger  *logger.Logger
	metrics *metrics.Metrics
}

// NewHandler creates a new pyq handler.
func NewHandler(engine *retrieval.Engine, log *logger.Logger, m *metrics.Metrics) *Handler {
	return &Handler{
		engine:  engine,
		logger:  log.WithModule("pyq"),
		metrics: m,
	}
}

// Name returns the intent label.
func (h *Handler) Name() string {
	return bot.IntentPYQRequest
}

// CanHandle claims academic requests carrying a question-paper trigger.
func (h *Handler) CanHandle(text string) bool {
	return bot.AcademicScore(text) >= 2 && bot.HasPYQTrigger(text)
}

// Handle searches the paper catalog. Misses degrade to the grouped
// catalog overview, then to a polite empty-catalog notice.
func (h *Handler) Handle(ctx context.Context, text string) (*reply.Reply, error) {
	results, err := h.engine.Papers(ctx, text)
	if err != nil {
		return nil, searchErrs.Wrap(err, "Couldn't search the question papers right now. Please try again.")
	}
	if len(results) > 0 {
		h.metrics.RecordRetrieval("pyq", "hit")
		return &reply.Reply{
			Type:    reply.TypePYQResults,
			Message: foundMessage,
			Intent:  bot.IntentPYQRequest,
			Results: results,
		}, nil
	}

	h.metrics.RecordRetrieval("pyq", "miss")
	types, err := h.engine.PapersOverview(ctx)
	if err != nil {
		return nil, searchErrs.Wrap(err, "Couldn't list the question papers right now. Please try again.")
	}
	if len(types) > 0 {
		return &reply.Reply{
			Type:    reply.TypePYQList,
			Message: listMessage,
			Intent:  bot.IntentPYQRequest,
			Types:   types,
		}, nil
	}

	return reply.NewText(emptyMessage).WithIntent(bot.IntentPYQRequest), nil
}

var _ bot.Handler = (*Handler)(nil)
