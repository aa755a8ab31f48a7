package genai

import (
	"context"
	"errors"
	"time"

	"github.com/campusflow/campus-assistant-go/internal/logger"
	"github.com/campusflow/campus-assistant-go/internal/metrics"
	"github.com/campusflow/campus-assistant-go/internal/ratelimit"
)

// FallbackChatResponder wraps a primary and fallback ChatResponder.
// Model retry and the per-provider model chain happen inside each
// responder; this layer decides when a failed primary is worth handing
// to the secondary provider.
type FallbackChatResponder struct {
	primary  ChatResponder
	fallback ChatResponder
	interval *ratelimit.IntervalLimiter
	metrics  *metrics.Metrics
	logger   *logger.Logger
}

// NewFallbackChatResponder creates a fallback-enabled responder.
// If fallback is nil, only the primary provider is used. The interval
// limiter spaces out upstream calls and may be nil.
func NewFallbackChatResponder(primary, fallback ChatResponder, interval *ratelimit.IntervalLimiter, m *metrics.Metrics, log *logger.Logger) *FallbackChatResponder {
	return &FallbackChatResponder{
		primary:  primary,
		fallback: fallback,
		interval: interval,
		metrics:  m,
		logger:   log.WithModule("genai"),
	}
}

func (f *FallbackChatResponder) IsEnabled() bool {
	return f != nil && f.primary != nil
}

func (f *FallbackChatResponder) Provider() Provider {
	if f.primary != nil {
		return f.primary.Provider()
	}
	return ""
}

func (f *FallbackChatResponder) Close() error {
	var errs []error
	if f.primary != nil {
		errs = append(errs, f.primary.Close())
	}
	if f.fallback != nil {
		errs = append(errs, f.fallback.Close())
	}
	return errors.Join(errs...)
}

// Respond tries the primary provider first, then falls back when the
// error is recoverable.
func (f *FallbackChatResponder) Respond(ctx context.Context, history []Turn, message string) (string, error) {
	if f == nil || f.primary == nil {
		return "", errors.New("chat responder not configured")
	}

	if err := f.interval.Wait(ctx); err != nil {
		return "", err
	}

	start := time.Now()
	provider := f.primary.Provider()

	answer, err := f.primary.Respond(ctx, history, message)
	if err == nil {
		f.recordRequest(provider, "success")
		return answer, nil
	}

	action := ClassifyError(err)
	f.logger.WithError(err).WithFields(map[string]any{
		"provider":    provider,
		"action":      action.String(),
		"duration_ms": time.Since(start).Milliseconds(),
	}).Warn("primary chat provider failed")

	if action == ActionFail || f.fallback == nil {
		f.recordRequest(provider, "error")
		return "", err
	}

	f.recordRequest(provider, "fallback")
	fallbackProvider := f.fallback.Provider()
	f.logger.WithFields(map[string]any{
		"from": provider,
		"to":   fallbackProvider,
	}).Info("falling back to secondary provider")

	answer, err = f.fallback.Respond(ctx, history, message)
	if err != nil {
		f.recordRequest(fallbackProvider, "error")
		return "", err
	}

	f.recordRequest(fallbackProvider, "success")
	return answer, nil
}

func (f *FallbackChatResponder) recordRequest(provider Provider, status string) {
	if f.metrics == nil {
		return
	}
	f.metrics.RecordAIRequest(string(provider), status)
}
