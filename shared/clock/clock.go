package clock

import (
	"sort"
	"sync"
	"time"
)

type Clock interface {
	Now() time.Time
	AfterFunc(d time.Duration, f func()) Timer
}

type Timer interface {
	Stop() bool
}

type RealClock struct{}

func NewRealClock() Clock {
	return &RealClock{}
}

func (c *RealClock) Now() time.Time {
	return time.Now()
}

func (c *RealClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// MockClock only moves when Set or Add is called. Timers due at or before the new time fire
// synchronously, in due order, with Now reporting each timer's due time while it runs.
type MockClock struct {
	mu          sync.Mutex
	currentTime time.Time
	timers      []*mockTimer
}

type mockTimer struct {
	clock   *MockClock
	due     time.Time
	fn      func()
	stopped bool
}

func NewMockClock(t time.Time) *MockClock {
	return &MockClock{currentTime: t}
}

func (c *MockClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.currentTime
}

func (c *MockClock) AfterFunc(d time.Duration, f func()) Timer {
	c.mu.Lock()
	defer c.mu.Unlock()

	t := &mockTimer{clock: c, due: c.currentTime.Add(d), fn: f}
	c.timers = append(c.timers, t)

	return t
}

// Pending returns the number of armed timers.
func (c *MockClock) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.timers)
}

func (c *MockClock) Set(t time.Time) {
	for {
		c.mu.Lock()

		next := c.nextDue(t)
		if next == nil {
			if t.After(c.currentTime) {
				c.currentTime = t
			}
			c.mu.Unlock()

			return
		}

		c.currentTime = next.due
		c.remove(next)
		c.mu.Unlock()

		next.fn()
	}
}

func (c *MockClock) Add(d time.Duration) {
	c.Set(c.Now().Add(d))
}

func (c *MockClock) nextDue(limit time.Time) *mockTimer {
	sort.SliceStable(c.timers, func(i, j int) bool { return c.timers[i].due.Before(c.timers[j].due) })

	if len(c.timers) == 0 || c.timers[0].due.After(limit) {
		return nil
	}

	return c.timers[0]
}

func (c *MockClock) remove(t *mockTimer) bool {
	for i, candidate := range c.timers {
		if candidate == t {
			c.timers = append(c.timers[:i], c.timers[i+1:]...)

			return true
		}
	}

	return false
}

func (t *mockTimer) Stop() bool {
	t.clock.mu.Lock()
	defer t.clock.mu.Unlock()

	if t.stopped {
		return false
	}

	t.stopped = true

	return t.clock.remove(t)
}
