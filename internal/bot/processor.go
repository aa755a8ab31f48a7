package bot

import (
	"context"
	"strings"
	"time"

	"github.com/campusflow/campus-assistant-go/internal/genai"
	"github.com/campusflow/campus-assistant-go/internal/knowledge"
	"github.com/campusflow/campus-assistant-go/internal/logger"
	"github.com/campusflow/campus-assistant-go/internal/metrics"
	"github.com/campusflow/campus-assistant-go/internal/ratelimit"
	"github.com/campusflow/campus-assistant-go/internal/reply"
	"github.com/campusflow/campus-assistant-go/internal/retrieval"
	"github.com/campusflow/campus-assistant-go/internal/storage"
)

const rateLimitedMessage = "You're sending messages very quickly. Please wait a moment and try again."

// Processor orchestrates one chat turn: rate limiting, cascade
// dispatch, and the terminal fallback (permissive info retrieval,
// knowledge base, generative AI, friendly fallback). Unmatched
// queries are recorded for admin review.
type Processor struct {
	registry       *Registry
	engine         *retrieval.Engine
	knowledge      *knowledge.Index
	store          *storage.Store
	synth          *reply.Synthesizer
	responder      genai.ChatResponder // nil = AI fallback disabled
	aiLimiter      *ratelimit.AIRateLimiter
	sessionLimiter *ratelimit.PerKeyLimiter
	logger         *logger.Logger
	metrics        *metrics.Metrics

	chatTimeout     time.Duration
	maxHistoryTurns int
}

// ProcessorConfig holds the dependencies for creating a Processor.
type ProcessorConfig struct {
	Registry        *Registry
	Engine          *retrieval.Engine
	Knowledge       *knowledge.Index
	Store           *storage.Store
	Synthesizer     *reply.Synthesizer
	Responder       genai.ChatResponder
	AILimiter       *ratelimit.AIRateLimiter
	SessionLimiter  *ratelimit.PerKeyLimiter
	Logger          *logger.Logger
	Metrics         *metrics.Metrics
	ChatTimeout     time.Duration
	MaxHistoryTurns int
}

// NewProcessor creates a new chat processor.
func NewProcessor(cfg ProcessorConfig) *Processor {
	return &Processor{
		registry:        cfg.Registry,
		engine:          cfg.Engine,
		knowledge:       cfg.Knowledge,
		store:           cfg.Store,
		synth:           cfg.Synthesizer,
		responder:       cfg.Responder,
		aiLimiter:       cfg.AILimiter,
		sessionLimiter:  cfg.SessionLimiter,
		logger:          cfg.Logger.WithModule("bot"),
		metrics:         cfg.Metrics,
		chatTimeout:     cfg.ChatTimeout,
		maxHistoryTurns: cfg.MaxHistoryTurns,
	}
}

// ProcessChat handles one user message for a session. history carries
// the session's prior turns for the AI fallback; it is trimmed to the
// configured cap before use.
func (p *Processor) ProcessChat(ctx context.Context, sessionID, message string, history []genai.Turn) (*reply.Reply, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return reply.NewError("Please type a message.", "empty message"), nil
	}

	if p.sessionLimiter != nil && !p.sessionLimiter.Allow(sessionID) {
		p.metrics.RecordChatRequest("none", "rate_limited", 0)
		return reply.NewText(rateLimitedMessage), nil
	}

	if p.chatTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.chatTimeout)
		defer cancel()
	}

	start := time.Now()
	rep, err := p.registry.Dispatch(ctx, message)
	if err != nil {
		p.logger.WithError(err).WithField("session_id", sessionID).
			Error("intent handler failed")
		p.metrics.RecordChatRequest("none", "error", time.Since(start).Seconds())
		return nil, err
	}
	if rep != nil {
		p.metrics.RecordChatRequest(rep.Intent, "ok", time.Since(start).Seconds())
		return rep, nil
	}

	rep, err = p.handleUnmatched(ctx, sessionID, message, history)
	if err != nil {
		p.metrics.RecordChatRequest(IntentInfoOrUnknown, "error", time.Since(start).Seconds())
		return nil, err
	}
	p.metrics.RecordChatRequest(IntentInfoOrUnknown, "ok", time.Since(start).Seconds())
	return rep, nil
}

// handleUnmatched is the terminal fallback for messages no handler
// claimed: permissive info retrieval, then the knowledge base, then
// the AI bridge, then the friendly fallback. The query is recorded as
// unanswered once curated content has missed.
func (p *Processor) handleUnmatched(ctx context.Context, sessionID, message string, history []genai.Turn) (*reply.Reply, error) {
	results, err := p.engine.InfoPermissive(ctx, message)
	if err != nil {
		return nil, err
	}
	if msg, ok := retrieval.RenderInfo(results); ok {
		p.metrics.RecordRetrieval("info", "hit")
		return reply.NewText(msg).WithIntent(IntentInfoOrUnknown), nil
	}

	if entry, ok := p.knowledge.Lookup(message); ok {
		p.metrics.RecordRetrieval("knowledge", "hit")
		return reply.NewText(entry.Answer).WithIntent(IntentInfoOrUnknown), nil
	}

	p.recordUnanswered(ctx, message)

	if answer, ok := p.tryAI(ctx, sessionID, message, history); ok {
		return reply.NewText(answer).WithIntent(IntentInfoOrUnknown), nil
	}

	return reply.NewText(p.synth.FriendlyFallback()).WithIntent(IntentInfoOrUnknown), nil
}

// tryAI asks the generative bridge for an answer. Any failure degrades
// to the friendly fallback rather than surfacing an error to the user.
func (p *Processor) tryAI(ctx context.Context, sessionID, message string, history []genai.Turn) (string, bool) {
	if p.responder == nil || !p.responder.IsEnabled() {
		return "", false
	}
	if p.aiLimiter != nil && !p.aiLimiter.Allow(sessionID) {
		p.logger.WithField("session_id", sessionID).Debug("AI hourly quota reached")
		return "", false
	}

	answer, err := p.responder.Respond(ctx, genai.TrimHistory(history, p.maxHistoryTurns), message)
	if err != nil {
		p.logger.WithError(err).WithField("session_id", sessionID).
			Warn("AI fallback failed")
		return "", false
	}
	return answer, true
}

func (p *Processor) recordUnanswered(ctx context.Context, message string) {
	if err := p.store.AppendUnanswered(ctx, message); err != nil {
		p.logger.WithError(err).Warn("failed to record unanswered query")
		return
	}
	p.metrics.RecordUnanswered()
}
