package ratelimit

import (
	"sync"
	"testing"
	"time"
)

func TestPerKeyLimiter_Basic(t *testing.T) {
	t.Parallel()
	pkl := NewPerKeyLimiter(PerKeyLimiterConfig{
		MaxTokens:     1,
		RefillRate:    10,
		CleanupPeriod: time.Hour,
	})
	defer pkl.Stop()

	if !pkl.Allow("session1") {
		t.Error("session1 first request failed")
	}
	if pkl.Allow("session1") {
		t.Error("session1 second request allowed (should limit)")
	}
	if !pkl.Allow("session2") {
		t.Error("session2 first request failed")
	}
}

func TestPerKeyLimiter_EmptyKeyAlwaysAllowed(t *testing.T) {
	t.Parallel()
	pkl := NewPerKeyLimiter(PerKeyLimiterConfig{
		MaxTokens:     1,
		RefillRate:    0.001,
		CleanupPeriod: time.Hour,
	})
	defer pkl.Stop()

	for i := 0; i < 5; i++ {
		if !pkl.Allow("") {
			t.Fatal("empty key should always be allowed")
		}
	}
}

func TestPerKeyLimiter_OnDrop(t *testing.T) {
	t.Parallel()
	pkl := NewPerKeyLimiter(PerKeyLimiterConfig{
		MaxTokens:     1,
		RefillRate:    0.001,
		CleanupPeriod: time.Hour,
	})
	defer pkl.Stop()

	var mu sync.Mutex
	drops := 0
	pkl.OnDrop(func() {
		mu.Lock()
		drops++
		mu.Unlock()
	})

	pkl.Allow("s")
	pkl.Allow("s")
	pkl.Allow("s")

	mu.Lock()
	defer mu.Unlock()
	if drops != 2 {
		t.Errorf("drops = %d, want 2", drops)
	}
}

func TestPerKeyLimiter_Cleanup(t *testing.T) {
	t.Parallel()
	pkl := NewPerKeyLimiter(PerKeyLimiterConfig{
		MaxTokens:     1,
		RefillRate:    100, // refills fast so the bucket is full again
		CleanupPeriod: 30 * time.Millisecond,
	})
	defer pkl.Stop()

	pkl.Allow("s1")
	if count := pkl.GetActiveCount(); count != 1 {
		t.Fatalf("active count = %d, want 1", count)
	}

	time.Sleep(100 * time.Millisecond)
	if count := pkl.GetActiveCount(); count != 0 {
		t.Errorf("active count after cleanup = %d, want 0", count)
	}
}

func TestPerKeyLimiter_GetAvailable(t *testing.T) {
	t.Parallel()
	pkl := NewPerKeyLimiter(PerKeyLimiterConfig{
		MaxTokens:     3,
		RefillRate:    0.001,
		CleanupPeriod: time.Hour,
	})
	defer pkl.Stop()

	if avail := pkl.GetAvailable("new"); avail != 3 {
		t.Errorf("unknown key available = %f, want 3", avail)
	}
	pkl.Allow("s")
	if avail := pkl.GetAvailable("s"); avail > 2.5 {
		t.Errorf("available = %f, want ~2", avail)
	}
}

func TestPerKeyLimiter_ConcurrentAccess(t *testing.T) {
	t.Parallel()
	pkl := NewPerKeyLimiter(PerKeyLimiterConfig{
		MaxTokens:     100,
		RefillRate:    100,
		CleanupPeriod: time.Hour,
	})
	defer pkl.Stop()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 20; j++ {
				pkl.Allow("shared")
			}
		}()
	}
	wg.Wait()
}
