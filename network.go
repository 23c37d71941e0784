package bitonic

import "github.com/king54346/bitonic/forkjoin"

// network runs the bitonic construction and merge steps over one slice.
// Callers guarantee that every slice it sees has a power-of-two length.
type network[T any] struct {
	cmp        Comparator[T]
	threshold  int
	sequential bool
	pool       *forkjoin.ForkJoinPool
}

func newNetwork[T any](cmp Comparator[T], cfg Config) *network[T] {
	n := &network[T]{
		cmp:        cmp,
		threshold:  max(cfg.Threshold, 1),
		sequential: cfg.Sequential,
		pool:       cfg.Pool,
	}
	if n.pool == nil && !n.sequential {
		n.pool = forkjoin.Default()
	}
	return n
}

// doSort turns x into a bitonic sequence by sorting its halves in opposite
// directions, then merges it in the direction given by forward.
func (n *network[T]) doSort(x []T, forward bool) {
	if len(x) <= 1 {
		return
	}
	mid := len(x) / 2
	first, second := x[:mid], x[mid:]
	n.join(mid,
		func() { n.doSort(first, true) },
		func() { n.doSort(second, false) },
	)
	n.subSort(x, forward)
}

// subSort merges the bitonic sequence x. Both halves keep the direction.
func (n *network[T]) subSort(x []T, forward bool) {
	if len(x) <= 1 {
		return
	}
	compareAndSwap(x, forward, n.cmp)
	mid := len(x) / 2
	first, second := x[:mid], x[mid:]
	n.join(mid,
		func() { n.subSort(first, forward) },
		func() { n.subSort(second, forward) },
	)
}

// join runs f and g, forking them when each covers at least threshold
// elements. Both have returned when join returns.
func (n *network[T]) join(half int, f, g func()) {
	if n.sequential || half < n.threshold {
		f()
		g()
		return
	}
	n.pool.Join(f, g)
}

// compareAndSwap orders every x[i] against x[i+len(x)/2].
func compareAndSwap[T any](x []T, forward bool, cmp Comparator[T]) {
	mid := len(x) / 2
	for i := 0; i < mid; i++ {
		c := cmp(x[i], x[mid+i])
		if (forward && c > 0) || (!forward && c < 0) {
			x[i], x[mid+i] = x[mid+i], x[i]
		}
	}
}
