// Package ratelimit provides the trailing-window call limiter each analyzer
// owns: at most maxCalls within any trailing window, waiting (never rejecting)
// until a slot frees up.
package ratelimit

import (
	"context"
	"sync"
	"time"
)

type SlidingWindowLimiter struct {
	maxCalls int
	window   time.Duration

	mu    sync.Mutex
	calls []time.Time

	// now is swapped out by tests.
	now func() time.Time
}

func NewSlidingWindowLimiter(maxCalls int, window time.Duration) *SlidingWindowLimiter {
	return &SlidingWindowLimiter{
		maxCalls: maxCalls,
		window:   window,
		now:      time.Now,
	}
}

// Acquire blocks until a call slot is available, then records the call and
// returns. The lock is never held across the sleep, so a caller cancelled
// while waiting leaves the recorded timestamps untouched and consumes no slot.
func (l *SlidingWindowLimiter) Acquire(ctx context.Context) error {
	for {
		wait, ok := l.tryAcquire()
		if ok {
			return nil
		}

		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
}

// tryAcquire prunes expired entries and either records the call (ok=true) or
// reports the minimal wait until the oldest entry leaves the window.
func (l *SlidingWindowLimiter) tryAcquire() (time.Duration, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	l.prune(now)

	if len(l.calls) < l.maxCalls {
		l.calls = append(l.calls, now)
		return 0, true
	}

	wait := l.window - now.Sub(l.calls[0])
	if wait <= 0 {
		// The oldest entry expired between the prune and this check.
		wait = time.Millisecond
	}
	return wait, false
}

func (l *SlidingWindowLimiter) prune(now time.Time) {
	cutoff := now.Add(-l.window)
	kept := l.calls[:0]
	for _, t := range l.calls {
		if t.After(cutoff) {
			kept = append(kept, t)
		}
	}
	l.calls = kept
}

// Pending reports how many calls currently count against the window.
func (l *SlidingWindowLimiter) Pending() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.prune(l.now())
	return len(l.calls)
}
