// Package bitonic sorts slices whose length is a power of two with a bitonic
// sorting network, either on the calling goroutine or by forking the two
// halves of every large enough step onto a fork-join pool.
//
// Sort and SortBy fork halves of at least ParallelThreshold elements on the
// process-wide pool. SortSequential and SortBySequential never fork.
// SortByConfig takes an explicit Config. Every variant produces the same
// output for the same input; the choice only affects speed.
//
// Bitonic sort is not stable. Slices whose length is not a power of two are
// rejected with an error matching ErrInvalidLength and are left untouched.
package bitonic

import (
	"errors"
	"fmt"
	"math/bits"

	"github.com/king54346/bitonic/forkjoin"
	"golang.org/x/exp/constraints"
)

// ParallelThreshold is the default half size from which the two halves of a
// construction or merge step are forked.
const ParallelThreshold = 4096

// ErrInvalidLength is matched by every error returned for a slice whose
// length is not a power of two.
var ErrInvalidLength = errors.New("bitonic: length is not a power of two")

// LengthError reports the length of a rejected slice.
type LengthError struct {
	Len int
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("bitonic: the length of x is not a power of two (len(x): %d)", e.Len)
}

func (e *LengthError) Is(target error) bool {
	return target == ErrInvalidLength
}

// Config controls how the sorting network is executed.
type Config struct {
	Threshold  int                    // Halves of at least this many elements are forked. Values below 1 mean 1.
	Sequential bool                   // Never fork.
	Pool       *forkjoin.ForkJoinPool // Pool used for forks. Nil means forkjoin.Default().
}

// DefaultConfig forks at ParallelThreshold on the default pool.
func DefaultConfig() Config {
	return Config{Threshold: ParallelThreshold}
}

// SequentialConfig runs the whole network on the calling goroutine.
func SequentialConfig() Config {
	return Config{Threshold: ParallelThreshold, Sequential: true}
}

// IsPowerOfTwo reports whether a slice of length n can be sorted. Zero is
// accepted: an empty slice is already sorted.
func IsPowerOfTwo(n int) bool {
	return n >= 0 && bits.OnesCount(uint(n)) <= 1
}

// Sort sorts x in place by the natural order of T in the given direction.
func Sort[T constraints.Ordered](x []T, order SortOrder) error {
	return SortByConfig(x, Comparer[T](order), DefaultConfig())
}

// SortBy sorts x in place so that cmp never reports an element as greater
// than one that follows it.
func SortBy[T any](x []T, cmp Comparator[T]) error {
	return SortByConfig(x, cmp, DefaultConfig())
}

// SortSequential is Sort without forking.
func SortSequential[T constraints.Ordered](x []T, order SortOrder) error {
	return SortByConfig(x, Comparer[T](order), SequentialConfig())
}

// SortBySequential is SortBy without forking.
func SortBySequential[T any](x []T, cmp Comparator[T]) error {
	return SortByConfig(x, cmp, SequentialConfig())
}

// SortByConfig sorts x in place by cmp, executing the network as cfg says.
func SortByConfig[T any](x []T, cmp Comparator[T], cfg Config) error {
	if !IsPowerOfTwo(len(x)) {
		return &LengthError{Len: len(x)}
	}
	newNetwork(cmp, cfg).doSort(x, true)
	return nil
}

// IsSorted reports whether x is sorted by the natural order of T in the given
// direction.
func IsSorted[T constraints.Ordered](x []T, order SortOrder) bool {
	return IsSortedBy(x, Comparer[T](order))
}

// IsSortedBy reports whether no element of x compares greater than the one
// after it.
func IsSortedBy[T any](x []T, cmp Comparator[T]) bool {
	for i := len(x) - 1; i > 0; i-- {
		if cmp(x[i-1], x[i]) > 0 {
			return false
		}
	}
	return true
}
