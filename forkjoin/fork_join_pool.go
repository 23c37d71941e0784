// Package forkjoin provides a bounded fork-join pool. Join runs two closures
// and returns once both have finished; whether they run concurrently depends
// on the worker slots left in the pool, never on the closures themselves.
//
// Usage:
//
//	pool := forkjoin.NewForkJoinPool(int32(runtime.NumCPU()))
//	pool.Join(
//	    func() { sortHalf(x[:mid]) },
//	    func() { sortHalf(x[mid:]) },
//	)
package forkjoin

import (
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/exascience/pargo/parallel"
	"golang.org/x/sync/semaphore"
)

// ForkJoinPool hands out worker slots to Join calls. A Join that finds a free
// slot runs its two closures on separate goroutines; a Join that does not runs
// them one after the other on the calling goroutine. Join never waits for a
// slot, so nested joins cannot deadlock however deep the recursion goes.
type ForkJoinPool struct {
	cap          int32
	slots        *semaphore.Weighted
	forks        atomic.Int64
	panicHandler atomic.Pointer[func(any)]
}

// NewForkJoinPool creates a pool that allows at most workerCap joins to run
// concurrently. If workerCap <= 0, uses GOMAXPROCS.
func NewForkJoinPool(workerCap int32) *ForkJoinPool {
	if workerCap <= 0 {
		workerCap = int32(runtime.GOMAXPROCS(0))
	}
	return &ForkJoinPool{
		cap:   workerCap,
		slots: semaphore.NewWeighted(int64(workerCap)),
	}
}

var defaultPool = sync.OnceValue(func() *ForkJoinPool {
	return NewForkJoinPool(0)
})

// Default returns the process-wide pool, sized to GOMAXPROCS at first use.
func Default() *ForkJoinPool {
	return defaultPool()
}

// SetPanicHandler installs a handler that receives panics raised by closures
// passed to Join. Without a handler the panic is re-raised in the goroutine
// that called Join.
func (fp *ForkJoinPool) SetPanicHandler(panicHandler func(any)) {
	if panicHandler == nil {
		fp.panicHandler.Store(nil)
		return
	}
	fp.panicHandler.Store(&panicHandler)
}

// Cap returns the number of worker slots.
func (fp *ForkJoinPool) Cap() int32 {
	return fp.cap
}

// Forks returns how many Join calls have run their closures concurrently.
func (fp *ForkJoinPool) Forks() int64 {
	return fp.forks.Load()
}

// Join runs f and g and blocks until both have returned. The closures must
// not touch overlapping memory.
func (fp *ForkJoinPool) Join(f, g func()) {
	f, g = fp.guard(f), fp.guard(g)
	if !fp.slots.TryAcquire(1) {
		f()
		g()
		return
	}
	defer fp.slots.Release(1)
	fp.forks.Add(1)
	parallel.Do(f, g)
}

func (fp *ForkJoinPool) guard(task func()) func() {
	h := fp.panicHandler.Load()
	if h == nil {
		return task
	}
	handler := *h
	return func() {
		defer func() {
			if p := recover(); p != nil {
				handler(p)
			}
		}()
		task()
	}
}
