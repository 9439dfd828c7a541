package ratelimit

import (
	"context"
	"sync"
	"time"
)

// Limiter bounds how often a keyed action may run inside a fixed window.
// Implementations are selected once at startup: Redis-backed when Redis is
// configured, in-memory otherwise.
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

type window struct {
	count   int
	resetAt time.Time
}

// MemoryLimiter is a mutex-guarded fixed-window limiter suitable for a
// single-process deployment.
type MemoryLimiter struct {
	mu      sync.Mutex
	limit   int
	window  time.Duration
	entries map[string]*window
	now     func() time.Time
}

// NewMemoryLimiter builds a limiter allowing limit hits per window.
func NewMemoryLimiter(limit int, windowSize time.Duration) *MemoryLimiter {
	return &MemoryLimiter{
		limit:   limit,
		window:  windowSize,
		entries: make(map[string]*window),
		now:     time.Now,
	}
}

// Allow records a hit for key and reports whether it fits in the current
// window.
func (l *MemoryLimiter) Allow(_ context.Context, key string) (bool, error) {
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	entry, ok := l.entries[key]
	if !ok || now.After(entry.resetAt) {
		l.entries[key] = &window{count: 1, resetAt: now.Add(l.window)}
		return true, nil
	}
	if entry.count >= l.limit {
		return false, nil
	}
	entry.count++
	return true, nil
}
