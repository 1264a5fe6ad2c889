package cursorseries

import (
	"cmp"
	"time"
)

// Comparator provides a total order over K. Compare must return a negative
// number if a < b, zero if a == b, and a positive number if a > b, and must
// be stable for the lifetime of any Series built on it. Cursor positioning
// ties resolve by Compare alone — cursors never fall back to equality by
// bits.
type Comparator[K any] interface {
	Compare(a, b K) int
}

// comparatorFunc adapts a plain function to Comparator.
type comparatorFunc[K any] func(a, b K) int

func (f comparatorFunc[K]) Compare(a, b K) int { return f(a, b) }

// ComparatorFunc adapts fn to a Comparator.
func ComparatorFunc[K any](fn func(a, b K) int) Comparator[K] {
	return comparatorFunc[K](fn)
}

// orderedComparator is the default Comparator for any cmp.Ordered key,
// built directly on the standard library's cmp.Compare.
type orderedComparator[K cmp.Ordered] struct{}

func (orderedComparator[K]) Compare(a, b K) int { return cmp.Compare(a, b) }

// OrderedComparator returns the natural-order Comparator for any ordered
// key type (integers, floats, strings).
func OrderedComparator[K cmp.Ordered]() Comparator[K] {
	return orderedComparator[K]{}
}

// TimeComparator orders time.Time keys chronologically — the common key
// type for a time series.
func TimeComparator() Comparator[time.Time] {
	return comparatorFunc[time.Time](func(a, b time.Time) int {
		switch {
		case a.Before(b):
			return -1
		case a.After(b):
			return 1
		default:
			return 0
		}
	})
}

// reverseComparator inverts another Comparator's order.
type reverseComparator[K any] struct {
	inner Comparator[K]
}

func (r reverseComparator[K]) Compare(a, b K) int { return r.inner.Compare(b, a) }

// ReverseComparator returns a Comparator that orders K in the opposite
// direction of inner.
func ReverseComparator[K any](inner Comparator[K]) Comparator[K] {
	return reverseComparator[K]{inner: inner}
}
