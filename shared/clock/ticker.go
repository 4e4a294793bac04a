package clock

import (
	"sync"
	"time"
)

// Ticker is a cancellable scheduled tick.
type Ticker interface {
	Start(fn func(now time.Time))
	Stop()
}

// DelayToNextMinute returns the time left until the next wall-clock minute boundary.
// Exactly on a boundary the next one is a full minute away.
func DelayToNextMinute(now time.Time) time.Duration {
	elapsed := time.Duration(now.Second())*time.Second + time.Duration(now.Nanosecond())

	return time.Minute - elapsed
}

// MinuteTicker fires once per wall-clock minute boundary. Each fire re-arms a one-shot timer
// for the following boundary instead of polling on a fixed interval.
type MinuteTicker struct {
	clock Clock

	mu         sync.Mutex
	timer      Timer
	generation uint64
	running    bool
}

func NewMinuteTicker(c Clock) *MinuteTicker {
	return &MinuteTicker{clock: c}
}

// Start begins ticking. Calling Start again replaces the previous callback.
func (t *MinuteTicker) Start(fn func(now time.Time)) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.stopLocked()
	t.running = true
	t.armLocked(t.generation, fn)
}

func (t *MinuteTicker) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.stopLocked()
}

func (t *MinuteTicker) stopLocked() {
	t.generation++
	t.running = false

	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
}

func (t *MinuteTicker) armLocked(generation uint64, fn func(now time.Time)) {
	delay := DelayToNextMinute(t.clock.Now())

	t.timer = t.clock.AfterFunc(delay, func() {
		t.mu.Lock()
		if !t.running || t.generation != generation {
			t.mu.Unlock()

			return
		}
		t.mu.Unlock()

		fn(t.clock.Now())

		t.mu.Lock()
		defer t.mu.Unlock()

		if t.running && t.generation == generation {
			t.armLocked(generation, fn)
		}
	})
}
