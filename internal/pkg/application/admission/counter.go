package admission

import "time"

// Counter counts events per key within a trailing time window. A
// recorded timestamp t still qualifies at time now iff now-t < window.
// Pruning happens lazily on Count, so memory stays bounded by the
// number of active keys times the events that fit in one window.
//
// Counter is not safe for concurrent use. Callers serialize access.
type Counter struct {
	window  time.Duration
	entries map[string][]time.Time
}

func NewCounter(window time.Duration) *Counter {
	return &Counter{
		window:  window,
		entries: make(map[string][]time.Time),
	}
}

func (c *Counter) Record(key string, now time.Time) {
	c.entries[key] = append(c.entries[key], now)
}

func (c *Counter) Count(key string, now time.Time) int {
	kept := c.entries[key][:0]

	for _, t := range c.entries[key] {
		if now.Sub(t) < c.window {
			kept = append(kept, t)
		}
	}

	if len(kept) == 0 {
		delete(c.entries, key)
		return 0
	}

	c.entries[key] = kept
	return len(kept)
}
