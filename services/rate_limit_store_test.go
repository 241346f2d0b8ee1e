package services

import (
	"context"
	"sync"
	"testing"
	"time"
)

func TestMemoryRateLimitStore_AllowsExactlyLimitWithinWindow(t *testing.T) {
	store := NewMemoryRateLimitStore()
	ctx := context.Background()

	const limit = 5

	for i := 0; i < limit; i++ {
		allowed, remaining, _, err := store.Take(ctx, "k", limit, time.Minute)
		if err != nil {
			t.Fatalf("unexpected error at request %d: %v", i+1, err)
		}
		if !allowed {
			t.Fatalf("expected request %d to be allowed", i+1)
		}
		if remaining != limit-i-1 {
			t.Fatalf("expected remaining %d after request %d, got %d", limit-i-1, i+1, remaining)
		}
	}

	allowed, remaining, _, err := store.Take(ctx, "k", limit, time.Minute)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if allowed {
		t.Fatalf("expected request %d to be rejected", limit+1)
	}
	if remaining != 0 {
		t.Fatalf("expected zero remaining on rejection, got %d", remaining)
	}
}

func TestMemoryRateLimitStore_WindowElapseAdmitsAgain(t *testing.T) {
	store := NewMemoryRateLimitStore()
	ctx := context.Background()

	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }

	window := time.Minute

	if allowed, _, _, _ := store.Take(ctx, "k", 1, window); !allowed {
		t.Fatalf("expected first request allowed")
	}
	if allowed, _, _, _ := store.Take(ctx, "k", 1, window); allowed {
		t.Fatalf("expected second request rejected within window")
	}

	// One second short of the boundary, still rejected.
	now = now.Add(window - time.Second)
	if allowed, _, _, _ := store.Take(ctx, "k", 1, window); allowed {
		t.Fatalf("expected rejection just before window boundary")
	}

	// At the boundary the window resets and the request is admitted.
	now = now.Add(time.Second)
	allowed, remaining, resetAt, err := store.Take(ctx, "k", 1, window)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !allowed {
		t.Fatalf("expected request allowed after window elapsed")
	}
	if remaining != 0 {
		t.Fatalf("expected remaining 0 with limit 1, got %d", remaining)
	}
	if !resetAt.Equal(now.Add(window)) {
		t.Fatalf("expected reset at %v, got %v", now.Add(window), resetAt)
	}
}

func TestMemoryRateLimitStore_KeysAreIndependent(t *testing.T) {
	store := NewMemoryRateLimitStore()
	ctx := context.Background()

	if allowed, _, _, _ := store.Take(ctx, "a", 1, time.Minute); !allowed {
		t.Fatalf("expected key a allowed")
	}
	if allowed, _, _, _ := store.Take(ctx, "a", 1, time.Minute); allowed {
		t.Fatalf("expected key a exhausted")
	}
	if allowed, _, _, _ := store.Take(ctx, "b", 1, time.Minute); !allowed {
		t.Fatalf("expected key b unaffected by key a")
	}
}

func TestMemoryRateLimitStore_ConcurrentTakesNeverOvershoot(t *testing.T) {
	store := NewMemoryRateLimitStore()
	ctx := context.Background()

	const limit = 50
	const workers = 200

	var wg sync.WaitGroup
	var mu sync.Mutex
	admitted := 0

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			allowed, _, _, err := store.Take(ctx, "k", limit, time.Minute)
			if err != nil {
				t.Errorf("unexpected error: %v", err)
				return
			}
			if allowed {
				mu.Lock()
				admitted++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if admitted != limit {
		t.Fatalf("expected exactly %d admitted, got %d", limit, admitted)
	}
}
