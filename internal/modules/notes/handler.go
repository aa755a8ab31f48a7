// Package notes implements the study-material module: scored retrieval
// over the subjects/units catalog, with the subject overview as the
// fallback when nothing matches.
package notes

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
	foundMessage    = " I found these notes:"
	subjectsMessage = " Available subjects:"
	emptyMessage    = " No study materials available yet. Admin will add notes soon!"
)

var searchErrs = domerrors.NewWrapper("notes", "search")

// Handler answers notes requests.
type Handler struct {
	engine  *retrieval.Engine
	logger  *logger.Logger
	metrics *metrics.Metrics
}

// NewHandler creates a new notes handler.
func NewHandler(engine *retrieval.Engine, log *logger.Logger, m *metrics.Metrics) *Handler {
	return &Handler{
		engine:  engine,
		logger:  log.WithModule("notes"),
		metrics: m,
	}
}

// Name returns the intent label.
func (h *Handler) Name() string {
	return bot.IntentNotesRequest
}

// CanHandle claims academic requests carrying a notes trigger.
// Question-paper triggers win over notes triggers, so those messages
// are left for the pyq module.
func (h *Handler) CanHandle(text string) bool {
	if bot.AcademicScore(text) < 2 {
		return false
	}
	return bot.HasNotesTrigger(text) && !bot.HasPYQTrigger(text)
}

// Handle searches the catalog. Misses degrade to the subject overview,
// then to a polite empty-catalog notice.
func (h *Handler) Handle(ctx context.Context, text string) (*reply.Reply, error) {
	results, err := h.engine.Notes(ctx, text)
	if err != nil {
		return nil, searchErrs.Wrap(err, "Couldn't search the notes catalog right now. Please try again.")
	}
	if len(results) > 0 {
		h.metrics.RecordRetrieval("notes", "hit")
		return &reply.Reply{
			Type:    reply.TypeNotesResults,
			Message: foundMessage,
			Intent:  bot.IntentNotesRequest,
			Results: results,
		}, nil
	}

	h.metrics.RecordRetrieval("notes", "miss")
	subjects, err := h.engine.SubjectsOverview(ctx)
	if err != nil {
		return nil, searchErrs.Wrap(err, "Couldn't list the available subjects right now. Please try again.")
	}
	if len(subjects) > 0 {
		return &reply.Reply{
			Type:     reply.TypeSubjectsList,
			Message:  subjectsMessage,
			Intent:   bot.IntentNotesRequest,
			Subjects: subjects,
		}, nil
	}

	return reply.NewText(emptyMessage).WithIntent(bot.IntentNotesRequest), nil
}

var _ bot.Handler = (*Handler)(nil)
