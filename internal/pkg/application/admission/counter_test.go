package admission

import (
	"testing"
	"time"

	"github.com/matryer/is"
)

func TestCounterCountsEventsWithinWindow(t *testing.T) {
	is := is.New(t)
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	c := NewCounter(60 * time.Second)
	c.Record("host-1", now)
	c.Record("host-1", now.Add(10*time.Second))
	c.Record("host-2", now.Add(20*time.Second))

	is.Equal(c.Count("host-1", now.Add(30*time.Second)), 2)
	is.Equal(c.Count("host-2", now.Add(30*time.Second)), 1)
}

func TestCounterPrunesExpiredEventsOnCount(t *testing.T) {
	is := is.New(t)
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	c := NewCounter(60 * time.Second)
	c.Record("host-1", now)
	c.Record("host-1", now.Add(30*time.Second))

	is.Equal(c.Count("host-1", now.Add(70*time.Second)), 1)
	is.Equal(c.Count("host-1", now.Add(2*time.Minute)), 0)
}

func TestCounterWindowBoundaryIsExclusive(t *testing.T) {
	is := is.New(t)
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	c := NewCounter(60 * time.Second)
	c.Record("host-1", now)

	// an event qualifies iff now-t < window, so at exactly one window
	// of elapsed time it no longer counts
	is.Equal(c.Count("host-1", now.Add(59*time.Second)), 1)
	is.Equal(c.Count("host-1", now.Add(60*time.Second)), 0)
}

func TestCounterDeletesEmptyKeys(t *testing.T) {
	is := is.New(t)
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	c := NewCounter(60 * time.Second)
	c.Record("host-1", now)

	is.Equal(c.Count("host-1", now.Add(2*time.Minute)), 0)

	_, ok := c.entries["host-1"]
	is.True(!ok)
}
