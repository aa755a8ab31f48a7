package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/campusflow/campus-assistant-go/internal/metrics"
)

func testMetrics() *metrics.Metrics {
	return metrics.New(prometheus.NewRegistry())
}

func TestAIRateLimiter_HourlyQuota(t *testing.T) {
	t.Parallel()
	ai := NewAIRateLimiter(2, time.Hour, testMetrics())
	defer ai.Stop()

	if !ai.Allow("session1") {
		t.Error("first request failed")
	}
	if !ai.Allow("session1") {
		t.Error("second request failed")
	}
	if ai.Allow("session1") {
		t.Error("third request allowed (quota is 2)")
	}
	if !ai.Allow("session2") {
		t.Error("other session should have its own quota")
	}
}

func TestAIRateLimiter_GetAvailable(t *testing.T) {
	t.Parallel()
	ai := NewAIRateLimiter(5, time.Hour, nil)
	defer ai.Stop()

	if avail := ai.GetAvailable(""); avail != 5 {
		t.Errorf("empty session available = %f, want 5", avail)
	}
	if avail := ai.GetAvailable("fresh"); avail != 5 {
		t.Errorf("fresh session available = %f, want 5", avail)
	}
	ai.Allow("s")
	if avail := ai.GetAvailable("s"); avail > 4.5 {
		t.Errorf("available = %f, want ~4", avail)
	}
}

func TestIntervalLimiter_SpacesCalls(t *testing.T) {
	t.Parallel()
	il := NewIntervalLimiter(30 * time.Millisecond)
	ctx := context.Background()

	if err := il.Wait(ctx); err != nil {
		t.Fatalf("first Wait failed: %v", err)
	}

	start := time.Now()
	if err := il.Wait(ctx); err != nil {
		t.Fatalf("second Wait failed: %v", err)
	}
	if elapsed := time.Since(start); elapsed < 20*time.Millisecond {
		t.Errorf("second Wait returned after %v, want >= ~30ms", elapsed)
	}
}

func TestIntervalLimiter_DisabledAndCanceled(t *testing.T) {
	t.Parallel()

	if err := NewIntervalLimiter(0).Wait(context.Background()); err != nil {
		t.Errorf("disabled limiter should not error: %v", err)
	}

	il := NewIntervalLimiter(time.Minute)
	if err := il.Wait(context.Background()); err != nil {
		t.Fatalf("first Wait failed: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	if err := il.Wait(ctx); err == nil {
		t.Error("Wait should fail when context expires")
	}
}
