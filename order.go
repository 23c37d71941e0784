package bitonic

import (
	"strconv"

	"golang.org/x/exp/constraints"
)

// SortOrder selects the direction of a top-level sort.
type SortOrder int

const (
	Ascending SortOrder = iota
	Descending
)

func (o SortOrder) String() string {
	switch o {
	case Ascending:
		return "ascending"
	case Descending:
		return "descending"
	}
	return "SortOrder(" + strconv.Itoa(int(o)) + ")"
}

// Comparator reports the relative order of a and b: a negative number when a
// sorts before b, zero when they are equal and a positive number when a sorts
// after b. It may be called from several goroutines at once and must not
// mutate shared state.
type Comparator[T any] func(a, b T) int

// Comparer returns the natural-order comparator for order. Any value other
// than Descending is treated as Ascending.
func Comparer[T constraints.Ordered](order SortOrder) Comparator[T] {
	if order == Descending {
		return Reverse(natural[T])
	}
	return natural[T]
}

// Reverse returns a comparator that orders elements opposite to cmp.
func Reverse[T any](cmp Comparator[T]) Comparator[T] {
	return func(a, b T) int {
		return cmp(b, a)
	}
}

// natural orders NaNs before every other float, like cmp.Compare.
func natural[T constraints.Ordered](a, b T) int {
	aNaN, bNaN := a != a, b != b
	switch {
	case aNaN && bNaN:
		return 0
	case aNaN || a < b:
		return -1
	case bNaN || a > b:
		return 1
	}
	return 0
}
