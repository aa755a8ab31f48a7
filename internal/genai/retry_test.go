package genai

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestCalculateBackoff(t *testing.T) {
	t.Parallel()

	initial := 100 * time.Millisecond
	max := time.Second

	if got := CalculateBackoff(0, initial, max); got != 0 {
		t.Errorf("attempt 0 backoff = %v, want 0", got)
	}

	// Full jitter: delay is uniform in [0, min(max, initial*2^(n-1)))
	for attempt := 1; attempt <= 6; attempt++ {
		got := CalculateBackoff(attempt, initial, max)
		if got < 0 {
			t.Errorf("attempt %d backoff = %v, negative", attempt, got)
		}
		if got >= max {
			t.Errorf("attempt %d backoff = %v, exceeds max %v", attempt, got, max)
		}
	}
}

func TestSleepCancellation(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := Sleep(ctx, time.Second); !errors.Is(err, context.Canceled) {
		t.Errorf("Sleep on canceled context = %v, want context.Canceled", err)
	}

	if err := Sleep(context.Background(), 0); err != nil {
		t.Errorf("Sleep(0) = %v, want nil", err)
	}
}

func TestWithRetry(t *testing.T) {
	t.Parallel()

	cfg := RetryConfig{
		MaxAttempts:  3,
		InitialDelay: time.Millisecond,
		MaxDelay:     5 * time.Millisecond,
	}

	t.Run("succeeds first try", func(t *testing.T) {
		t.Parallel()
		calls := 0
		err := WithRetry(context.Background(), cfg, func() error {
			calls++
			return nil
		})
		if err != nil {
			t.Fatalf("WithRetry = %v, want nil", err)
		}
		if calls != 1 {
			t.Errorf("calls = %d, want 1", calls)
		}
	})

	t.Run("retries transient errors", func(t *testing.T) {
		t.Parallel()
		calls := 0
		err := WithRetry(context.Background(), cfg, func() error {
			calls++
			if calls < 3 {
				return errors.New("503 service unavailable")
			}
			return nil
		})
		if err != nil {
			t.Fatalf("WithRetry = %v, want nil", err)
		}
		if calls != 3 {
			t.Errorf("calls = %d, want 3", calls)
		}
	})

	t.Run("exhausts attempts", func(t *testing.T) {
		t.Parallel()
		transient := errors.New("connection reset")
		calls := 0
		err := WithRetry(context.Background(), cfg, func() error {
			calls++
			return transient
		})
		if !errors.Is(err, transient) {
			t.Fatalf("WithRetry = %v, want %v", err, transient)
		}
		if calls != cfg.MaxAttempts {
			t.Errorf("calls = %d, want %d", calls, cfg.MaxAttempts)
		}
	})

	t.Run("stops on permanent error", func(t *testing.T) {
		t.Parallel()
		permanent := errors.New("401 unauthorized")
		calls := 0
		err := WithRetry(context.Background(), cfg, func() error {
			calls++
			return permanent
		})
		if !errors.Is(err, permanent) {
			t.Fatalf("WithRetry = %v, want %v", err, permanent)
		}
		if calls != 1 {
			t.Errorf("calls = %d, want 1", calls)
		}
	})

	t.Run("respects context", func(t *testing.T) {
		t.Parallel()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		err := WithRetry(ctx, cfg, func() error {
			t.Error("function should not run on canceled context")
			return nil
		})
		if !errors.Is(err, context.Canceled) {
			t.Errorf("WithRetry = %v, want context.Canceled", err)
		}
	})
}

func TestHasSufficientBudget(t *testing.T) {
	t.Parallel()

	if !HasSufficientBudget(context.Background(), time.Hour) {
		t.Error("context without deadline should always have budget")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	if !HasSufficientBudget(ctx, 10*time.Millisecond) {
		t.Error("expected budget for 10ms within 50ms deadline")
	}
	if HasSufficientBudget(ctx, time.Second) {
		t.Error("expected insufficient budget for 1s within 50ms deadline")
	}
}
