package probe_test

import (
	"context"
	"iter"
	"testing"

	"github.com/stretchr/testify/assert"

	"salonbooking/shared/probe"
)

func counting(n int, produced *int) iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := 1; i <= n; i++ {
			*produced++
			if !yield(i) {
				return
			}
		}
	}
}

func TestFirst_StopsAtFirstHit(t *testing.T) {
	produced, calls := 0, 0

	got, ok := probe.First(context.Background(), probe.New(0), counting(30, &produced), func(_ context.Context, day int) bool {
		calls++

		return day == 4
	})

	assert.True(t, ok)
	assert.Equal(t, 4, got)
	assert.Equal(t, 4, calls)
	assert.Equal(t, 4, produced)
}

func TestFirst_NoHit(t *testing.T) {
	calls := 0

	got, ok := probe.First(context.Background(), nil, probe.Slice([]string{"alice", "bob"}), func(context.Context, string) bool {
		calls++

		return false
	})

	assert.False(t, ok)
	assert.Empty(t, got)
	assert.Equal(t, 2, calls)
}

func TestFirst_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	calls := 0
	_, ok := probe.First(ctx, probe.New(100), probe.Slice([]int{1, 2, 3}), func(context.Context, int) bool {
		calls++

		return true
	})

	assert.False(t, ok)
	assert.Zero(t, calls)
}

func TestFirst_Paced(t *testing.T) {
	calls := 0

	got, ok := probe.First(context.Background(), probe.New(1000), probe.Slice([]int{1, 2, 3}), func(_ context.Context, v int) bool {
		calls++

		return v == 3
	})

	assert.True(t, ok)
	assert.Equal(t, 3, got)
	assert.Equal(t, 3, calls)
}
