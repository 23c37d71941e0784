package forkjoin

import (
	"runtime"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewForkJoinPool(t *testing.T) {
	pool := NewForkJoinPool(4)
	assert.Equal(t, int32(4), pool.Cap())
	assert.Zero(t, pool.Forks())
}

func TestNewForkJoinPoolDefaultCap(t *testing.T) {
	pool := NewForkJoinPool(0)
	assert.Equal(t, int32(runtime.GOMAXPROCS(0)), pool.Cap())
}

func TestDefaultIsShared(t *testing.T) {
	assert.Same(t, Default(), Default())
}

func TestJoinRunsBoth(t *testing.T) {
	pool := NewForkJoinPool(2)

	var a, b atomic.Int32
	pool.Join(func() { a.Add(1) }, func() { b.Add(1) })

	assert.Equal(t, int32(1), a.Load())
	assert.Equal(t, int32(1), b.Load())
	assert.Equal(t, int64(1), pool.Forks())
}

func TestJoinRunsConcurrently(t *testing.T) {
	pool := NewForkJoinPool(1)

	// Each side waits for the other; this only finishes if both run at once.
	var wg sync.WaitGroup
	wg.Add(2)
	pool.Join(
		func() { wg.Done(); wg.Wait() },
		func() { wg.Done(); wg.Wait() },
	)
	assert.Equal(t, int64(1), pool.Forks())
}

func TestJoinInlineWhenSaturated(t *testing.T) {
	pool := NewForkJoinPool(1)

	var order []string
	pool.Join(
		func() {
			// The only slot is held by the outer join.
			pool.Join(
				func() { order = append(order, "f") },
				func() { order = append(order, "g") },
			)
		},
		func() {},
	)

	assert.Equal(t, []string{"f", "g"}, order)
	assert.Equal(t, int64(1), pool.Forks())
}

func TestJoinNestedDeep(t *testing.T) {
	pool := NewForkJoinPool(4)

	const n = 1 << 12
	results := make([]int, n)

	var fill func(lo, hi int)
	fill = func(lo, hi int) {
		if hi-lo == 1 {
			results[lo] = lo * 2
			return
		}
		mid := lo + (hi-lo)/2
		pool.Join(func() { fill(lo, mid) }, func() { fill(mid, hi) })
	}
	fill(0, n)

	for i := range n {
		require.Equal(t, i*2, results[i], "results[%d]", i)
	}
}

func TestJoinPanicPropagates(t *testing.T) {
	pool := NewForkJoinPool(2)

	assert.Panics(t, func() {
		pool.Join(func() {}, func() { panic("boom") })
	})
}

func TestJoinPanicHandler(t *testing.T) {
	pool := NewForkJoinPool(2)

	var got atomic.Value
	pool.SetPanicHandler(func(p any) { got.Store(p) })

	var ran atomic.Bool
	assert.NotPanics(t, func() {
		pool.Join(func() { ran.Store(true) }, func() { panic("boom") })
	})
	assert.True(t, ran.Load())
	assert.Equal(t, "boom", got.Load())

	pool.SetPanicHandler(nil)
	assert.Panics(t, func() {
		pool.Join(func() { panic("again") }, func() {})
	})
}
