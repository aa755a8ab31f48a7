package ratelimit

import (
	"sync"
	"time"
)

// PerKeyLimiterConfig configures a PerKeyLimiter.
type PerKeyLimiterConfig struct {
	// MaxTokens is the burst capacity of each key's bucket.
	MaxTokens float64
	// RefillRate is tokens per second per key.
	RefillRate float64
	// CleanupPeriod is how often full (idle) buckets are evicted.
	CleanupPeriod time.Duration
}

// PerKeyLimiter keeps an independent token bucket per chat session so
// one talkative session cannot starve the rest. Buckets are created on
// first use and evicted once they refill completely, which means the
// session has been idle for at least a full refill cycle.
type PerKeyLimiter struct {
	mu       sync.RWMutex
	buckets  map[string]*Limiter
	cfg      PerKeyLimiterConfig
	onDrop   func()
	onUpdate func(count int)
	stop     chan struct{}
}

// NewPerKeyLimiter creates a per-key limiter and starts its eviction
// loop. Call Stop to release the goroutine.
func NewPerKeyLimiter(cfg PerKeyLimiterConfig) *PerKeyLimiter {
	l := &PerKeyLimiter{
		buckets: make(map[string]*Limiter),
		cfg:     cfg,
		stop:    make(chan struct{}),
	}
	go l.evictLoop()
	return l
}

// OnDrop registers a callback invoked whenever a request is refused.
func (l *PerKeyLimiter) OnDrop(fn func()) {
	l.onDrop = fn
}

// OnUpdate registers a callback invoked with the active bucket count
// after each eviction pass.
func (l *PerKeyLimiter) OnUpdate(fn func(count int)) {
	l.onUpdate = fn
}

// Allow consumes a token from key's bucket. An empty key is never
// limited; callers without a session identity fall back to the global
// limiter alone.
func (l *PerKeyLimiter) Allow(key string) bool {
	if key == "" {
		return true
	}

	l.mu.RLock()
	bucket, ok := l.buckets[key]
	l.mu.RUnlock()

	if !ok {
		l.mu.Lock()
		bucket, ok = l.buckets[key]
		if !ok {
			bucket = New(l.cfg.MaxTokens, l.cfg.RefillRate)
			l.buckets[key] = bucket
		}
		l.mu.Unlock()
	}

	allowed := bucket.Allow()
	if !allowed && l.onDrop != nil {
		l.onDrop()
	}
	return allowed
}

// GetAvailable reports the tokens left in key's bucket, or the full
// burst capacity for an unknown key.
func (l *PerKeyLimiter) GetAvailable(key string) float64 {
	if key == "" {
		return l.cfg.MaxTokens
	}

	l.mu.RLock()
	bucket, ok := l.buckets[key]
	l.mu.RUnlock()

	if !ok {
		return l.cfg.MaxTokens
	}
	return bucket.Available()
}

// GetActiveCount reports how many session buckets currently exist.
func (l *PerKeyLimiter) GetActiveCount() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.buckets)
}

func (l *PerKeyLimiter) evictLoop() {
	ticker := time.NewTicker(l.cfg.CleanupPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-l.stop:
			return
		case <-ticker.C:
			l.mu.Lock()
			for key, bucket := range l.buckets {
				if bucket.IsFull() {
					delete(l.buckets, key)
				}
			}
			active := len(l.buckets)
			l.mu.Unlock()

			if l.onUpdate != nil {
				l.onUpdate(active)
			}
		}
	}
}

// Stop ends the eviction loop. Safe to call more than once.
func (l *PerKeyLimiter) Stop() {
	select {
	case <-l.stop:
	default:
		close(l.stop)
	}
}
