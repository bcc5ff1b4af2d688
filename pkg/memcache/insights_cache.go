package memcache

import (
	"sync"
	"time"

	"pulse/internal/models/response_models"
)

// InsightsCache holds the most recent validated comprehensive insights so the
// derived views can consult them without triggering a provider call. Entries
// expire after a TTL; the views treat a miss as "no AI signal available".
type InsightsCache struct {
	mu       sync.RWMutex
	insights *response_models.FeedbackInsights
	storedAt time.Time
	ttl      time.Duration
}

func NewInsightsCache(ttl time.Duration) *InsightsCache {
	return &InsightsCache{ttl: ttl}
}

func (c *InsightsCache) Set(insights *response_models.FeedbackInsights) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.insights = insights
	c.storedAt = time.Now()
}

// Peek returns the cached insights without consuming them, or nil when the
// cache is empty or expired.
func (c *InsightsCache) Peek() *response_models.FeedbackInsights {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.insights == nil {
		return nil
	}
	if c.ttl > 0 && time.Since(c.storedAt) > c.ttl {
		return nil
	}
	return c.insights
}
