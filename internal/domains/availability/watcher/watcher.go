// Package watcher keeps a slot list fresh for one open slot step.
package watcher

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"salonbooking/internal/domains/availability/model"
	"salonbooking/internal/domains/availability/service"
	"salonbooking/shared/clock"
)

// SlotWatcher re-runs the availability query whenever its input changes and at every
// wall-clock minute boundary. A result is published only if no newer run started and the
// watcher is still running.
type SlotWatcher struct {
	ctx     context.Context
	svc     service.Availability
	ticker  clock.Ticker
	publish func(q model.Query, res model.Result)

	mu         sync.Mutex
	query      model.Query
	generation uint64
	started    bool
	stopped    bool
}

func New(ctx context.Context, svc service.Availability, ticker clock.Ticker, publish func(q model.Query, res model.Result)) *SlotWatcher {
	return &SlotWatcher{
		ctx:     ctx,
		svc:     svc,
		ticker:  ticker,
		publish: publish,
	}
}

// Start runs the first query and begins the minute ticks.
func (w *SlotWatcher) Start(q model.Query) {
	w.mu.Lock()
	if w.stopped || w.started {
		w.mu.Unlock()

		return
	}

	w.started = true
	w.query = q
	w.mu.Unlock()

	w.ticker.Start(func(now time.Time) {
		log.Debug().Time("tick", now).Msg("refreshing slots on minute boundary")
		w.run()
	})

	w.run()
}

// Update replaces the query input and re-runs it. Any run still in flight is superseded.
func (w *SlotWatcher) Update(q model.Query) {
	w.mu.Lock()
	if w.stopped {
		w.mu.Unlock()

		return
	}

	w.query = q
	w.mu.Unlock()

	w.run()
}

// Stop cancels the ticks. Results arriving afterwards are discarded.
func (w *SlotWatcher) Stop() {
	w.mu.Lock()
	w.stopped = true
	w.generation++
	w.mu.Unlock()

	w.ticker.Stop()
}

func (w *SlotWatcher) run() {
	w.mu.Lock()
	if w.stopped {
		w.mu.Unlock()

		return
	}

	w.generation++
	generation := w.generation
	q := w.query
	w.mu.Unlock()

	res := w.svc.Query(w.ctx, q)

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.stopped || w.generation != generation {
		log.Debug().Uint64("generation", generation).Msg("discarding stale slot result")

		return
	}

	w.publish(q, res)
}
