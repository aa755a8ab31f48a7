package ratelimit

import (
	"time"

	"github.com/campusflow/campus-assistant-go/internal/metrics"
)

// AIRateLimiter tracks per-session generative AI usage with hourly
// limits. It is separate from the general session limiter so expensive
// provider calls are controlled independently from regular message
// processing.
type AIRateLimiter struct {
	pkl        *PerKeyLimiter
	maxPerHour float64
	metrics    *metrics.Metrics
}

// NewAIRateLimiter creates a new AI rate limiter with per-hour limits.
//
// The limiter uses a token bucket with:
//   - maxTokens = maxPerHour (burst capacity)
//   - refillRate = maxPerHour / 3600 (tokens per second)
//
// Example:
//
//	limiter := NewAIRateLimiter(30, 5*time.Minute, metrics)
//	defer limiter.Stop()
//
//	if limiter.Allow(sessionID) {
//	    // Make provider call
//	}
func NewAIRateLimiter(maxPerHour float64, cleanup time.Duration, m *metrics.Metrics) *AIRateLimiter {
	ai := &AIRateLimiter{
		maxPerHour: maxPerHour,
		metrics:    m,
	}

	ai.pkl = NewPerKeyLimiter(PerKeyLimiterConfig{
		MaxTokens:     maxPerHour,
		RefillRate:    maxPerHour / 3600.0,
		CleanupPeriod: cleanup,
	})

	if m != nil {
		ai.pkl.OnDrop(func() {
			m.RecordRateLimiterDrop("ai")
		})
		ai.pkl.OnUpdate(func(count int) {
			m.SetAISessionCount(count)
		})
	}

	return ai
}

// Allow checks if an AI request from the session is allowed under the
// hourly limit. Returns true if allowed (token consumed).
func (ai *AIRateLimiter) Allow(sessionID string) bool {
	return ai.pkl.Allow(sessionID)
}

// GetAvailable returns the number of remaining tokens for a session.
// Returns maxPerHour if the session has no limiter yet.
func (ai *AIRateLimiter) GetAvailable(sessionID string) float64 {
	if sessionID == "" {
		return ai.maxPerHour
	}
	return ai.pkl.GetAvailable(sessionID)
}

// GetActiveCount returns the current number of active session limiters.
func (ai *AIRateLimiter) GetActiveCount() int {
	return ai.pkl.GetActiveCount()
}

// Stop gracefully stops the cleanup goroutine.
// Safe to call multiple times.
func (ai *AIRateLimiter) Stop() {
	ai.pkl.Stop()
}
