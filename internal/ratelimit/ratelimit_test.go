package ratelimit

import (
	"context"
	"testing"
	"time"
)

func TestLimiter_Allow(t *testing.T) {
	t.Parallel()
	l := New(2, 100)

	if !l.Allow() {
		t.Error("first request should be allowed")
	}
	if !l.Allow() {
		t.Error("second request should be allowed (burst 2)")
	}
	if l.Allow() {
		t.Error("third request should be denied")
	}
}

func TestLimiter_Refill(t *testing.T) {
	t.Parallel()
	l := New(1, 50) // refills in 20ms

	if !l.Allow() {
		t.Fatal("first request should be allowed")
	}
	if l.Allow() {
		t.Fatal("bucket should be empty")
	}

	time.Sleep(30 * time.Millisecond)
	if !l.Allow() {
		t.Error("request after refill should be allowed")
	}
}

func TestLimiter_Wait(t *testing.T) {
	t.Parallel()
	l := New(1, 100)

	if err := l.Wait(context.Background()); err != nil {
		t.Fatalf("first Wait failed: %v", err)
	}

	start := time.Now()
	if err := l.Wait(context.Background()); err != nil {
		t.Fatalf("second Wait failed: %v", err)
	}
	if elapsed := time.Since(start); elapsed < 5*time.Millisecond {
		t.Errorf("second Wait returned too quickly: %v", elapsed)
	}
}

func TestLimiter_WaitCanceled(t *testing.T) {
	t.Parallel()
	l := New(1, 0.001) // effectively never refills

	if !l.Allow() {
		t.Fatal("first request should be allowed")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	if err := l.Wait(ctx); err == nil {
		t.Error("Wait should fail when context expires")
	}
}

func TestLimiter_Reset(t *testing.T) {
	t.Parallel()
	l := New(1, 0.001)

	l.Allow()
	if l.Allow() {
		t.Fatal("bucket should be empty")
	}

	l.Reset()
	if !l.Allow() {
		t.Error("request after Reset should be allowed")
	}
}

func TestLimiter_Available(t *testing.T) {
	t.Parallel()
	l := New(5, 1)

	if avail := l.Available(); avail < 4.9 {
		t.Errorf("Available = %f, want ~5", avail)
	}
	l.Allow()
	if avail := l.Available(); avail > 4.5 {
		t.Errorf("Available = %f, want ~4", avail)
	}
}
