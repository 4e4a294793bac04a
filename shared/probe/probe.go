// Package probe runs remote checks one at a time over a lazy sequence and stops at the first hit.
package probe

import (
	"context"
	"iter"

	"golang.org/x/time/rate"
)

// Test reports whether a candidate satisfies the probe.
type Test[T any] func(ctx context.Context, candidate T) bool

// Prober paces sequential probes with an optional limiter.
type Prober struct {
	limiter *rate.Limiter
}

// New returns a Prober allowing perSecond probes per second. Zero or negative disables pacing.
func New(perSecond float64) *Prober {
	if perSecond <= 0 {
		return &Prober{}
	}

	return &Prober{limiter: rate.NewLimiter(rate.Limit(perSecond), 1)}
}

// First pulls candidates from seq in order, runs test on each and returns the first that
// passes. Candidates after the hit are never produced. A cancelled context ends the search.
func First[T any](ctx context.Context, p *Prober, seq iter.Seq[T], test Test[T]) (T, bool) {
	var zero T

	for candidate := range seq {
		if err := p.wait(ctx); err != nil {
			return zero, false
		}

		if test(ctx, candidate) {
			return candidate, true
		}
	}

	return zero, false
}

func (p *Prober) wait(ctx context.Context) error {
	if p == nil || p.limiter == nil {
		return ctx.Err()
	}

	return p.limiter.Wait(ctx)
}

// Slice yields the elements of items lazily.
func Slice[T any](items []T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, item := range items {
			if !yield(item) {
				return
			}
		}
	}
}
