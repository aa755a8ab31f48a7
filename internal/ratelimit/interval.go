package ratelimit

import (
	"context"
	"sync"
	"time"
)

// IntervalLimiter enforces a minimum spacing between calls across all
// callers. Used to keep generative AI provider calls at least one
// interval apart regardless of which session triggers them.
type IntervalLimiter struct {
	mu       sync.Mutex
	interval time.Duration
	last     time.Time
}

// NewIntervalLimiter creates a limiter with the given minimum spacing.
// A non-positive interval disables spacing.
func NewIntervalLimiter(interval time.Duration) *IntervalLimiter {
	return &IntervalLimiter{interval: interval}
}

// Wait blocks until at least the configured interval has passed since
// the previous permitted call, then claims the current slot. Returns
// ctx.Err() if the context is canceled while waiting.
func (il *IntervalLimiter) Wait(ctx context.Context) error {
	if il == nil || il.interval <= 0 {
		return ctx.Err()
	}

	for {
		il.mu.Lock()
		now := time.Now()
		next := il.last.Add(il.interval)
		if !now.Before(next) {
			il.last = now
			il.mu.Unlock()
			return nil
		}
		wait := next.Sub(now)
		il.mu.Unlock()

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(wait):
			// Re-check: another caller may have claimed the slot.
		}
	}
}
