package services

import (
	"context"
	"sync"
	"time"
)

// RateLimitStore tracks fixed-window permit counts per counter key. Take is
// the whole decision: check and increment must be one atomic step so two
// concurrent requests can never both be admitted at count == limit-1.
type RateLimitStore interface {
	Take(ctx context.Context, key string, limit int, window time.Duration) (allowed bool, remaining int, resetAt time.Time, err error)
}

type rateWindow struct {
	start time.Time
	count int
}

// MemoryRateLimitStore is the default backend: per-key windows guarded by a
// single mutex. State lives for the process lifetime and resets when a
// window elapses; within a window the count never exceeds the limit.
type MemoryRateLimitStore struct {
	mutex   sync.Mutex
	windows map[string]*rateWindow

	now func() time.Time
}

func NewMemoryRateLimitStore() *MemoryRateLimitStore {
	return &MemoryRateLimitStore{
		windows: make(map[string]*rateWindow),
		now:     time.Now,
	}
}

func (s *MemoryRateLimitStore) Take(_ context.Context, key string, limit int, window time.Duration) (bool, int, time.Time, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	now := s.now()

	w, exists := s.windows[key]
	if !exists || !now.Before(w.start.Add(window)) {
		w = &rateWindow{start: now, count: 0}
		s.windows[key] = w
	}

	resetAt := w.start.Add(window)

	if w.count >= limit {
		return false, 0, resetAt, nil
	}

	w.count++
	return true, limit - w.count, resetAt, nil
}
