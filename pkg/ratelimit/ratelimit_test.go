package ratelimit

import (
	"context"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAcquire_UnderLimitIsImmediate(t *testing.T) {
	l := NewSlidingWindowLimiter(2, time.Minute)
	ctx := context.Background()

	start := time.Now()
	require.NoError(t, l.Acquire(ctx))
	require.NoError(t, l.Acquire(ctx))
	assert.Less(t, time.Since(start), 50*time.Millisecond)
	assert.Equal(t, 2, l.Pending())
}

func TestAcquire_ThirdCallWaitsForWindow(t *testing.T) {
	const window = 150 * time.Millisecond
	l := NewSlidingWindowLimiter(2, window)
	ctx := context.Background()

	start := time.Now()
	require.NoError(t, l.Acquire(ctx))
	require.NoError(t, l.Acquire(ctx))
	require.NoError(t, l.Acquire(ctx))

	// The third call is delayed, never rejected: it must wait until the
	// oldest recorded call leaves the trailing window.
	assert.GreaterOrEqual(t, time.Since(start), window-10*time.Millisecond)
}

func TestAcquire_CancelledWaiterConsumesNoSlot(t *testing.T) {
	l := NewSlidingWindowLimiter(2, time.Hour)
	require.NoError(t, l.Acquire(context.Background()))
	require.NoError(t, l.Acquire(context.Background()))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := l.Acquire(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, 2, l.Pending(), "an aborted waiter must not corrupt the timestamp sequence")
}

func TestAcquire_ExpiredEntriesArePruned(t *testing.T) {
	l := NewSlidingWindowLimiter(2, time.Minute)

	current := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return current }

	require.NoError(t, l.Acquire(context.Background()))
	require.NoError(t, l.Acquire(context.Background()))
	assert.Equal(t, 2, l.Pending())

	// Move past the window; both entries fall out and slots free up without
	// any waiting.
	current = current.Add(61 * time.Second)
	assert.Zero(t, l.Pending())
	require.NoError(t, l.Acquire(context.Background()))
	assert.Equal(t, 1, l.Pending())
}

func TestAcquire_ConcurrentCallersNeverExceedQuota(t *testing.T) {
	const window = 100 * time.Millisecond
	l := NewSlidingWindowLimiter(2, window)

	var mu sync.Mutex
	var grants []time.Time

	var wg sync.WaitGroup
	for i := 0; i < 6; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, l.Acquire(context.Background()))
			mu.Lock()
			grants = append(grants, time.Now())
			mu.Unlock()
		}()
	}
	wg.Wait()

	require.Len(t, grants, 6, "every waiter must eventually acquire")

	// Within any trailing window at most two grants may fall. Comparing each
	// grant against the one two positions earlier covers every window.
	sort.Slice(grants, func(i, j int) bool { return grants[i].Before(grants[j]) })
	for i := 2; i < len(grants); i++ {
		gap := grants[i].Sub(grants[i-2])
		assert.GreaterOrEqual(t, gap, window-20*time.Millisecond,
			"three grants landed inside one window")
	}
}
