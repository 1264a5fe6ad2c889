package cursorseries

import (
	"context"

	"github.com/ygrebnov/cursorseries/gate"
)

// emptySeries is the Series with no elements, ever, read-only from
// construction. It is the identity element for Zip and a convenient base
// case in tests.
type emptySeries[K, V any] struct {
	cmp     Comparator[K]
	updated *gate.Future
}

// Empty returns a permanently empty, readonly, indexed Series ordered by cmp.
func Empty[K, V any](cmp Comparator[K]) Series[K, V] {
	g := gate.NewManualGate()
	g.Set() // already terminal: Updated() must never block a waiter.
	return emptySeries[K, V]{cmp: cmp, updated: g.Wait()}
}

func (s emptySeries[K, V]) Cursor() Cursor[K, V]    { return &emptyCursor[K, V]{series: s} }
func (s emptySeries[K, V]) Comparer() Comparator[K] { return s.cmp }
func (emptySeries[K, V]) IsIndexed() bool           { return true }
func (emptySeries[K, V]) IsReadonly() bool          { return true }
func (s emptySeries[K, V]) Updated() *gate.Future   { return s.updated }

type emptyCursor[K, V any] struct {
	series   emptySeries[K, V]
	state    State
	disposed bool
}

func (c *emptyCursor[K, V]) State() State { return c.state }

func (c *emptyCursor[K, V]) CurrentKey() K {
	var zero K
	return zero
}

func (c *emptyCursor[K, V]) CurrentValue() V {
	var zero V
	return zero
}

func (c *emptyCursor[K, V]) MoveFirst() bool {
	c.state = AfterEnd
	return false
}

func (c *emptyCursor[K, V]) MoveLast() bool {
	c.state = AfterEnd
	return false
}

func (c *emptyCursor[K, V]) MoveNext() bool {
	c.state = AfterEnd
	return false
}

func (c *emptyCursor[K, V]) MovePrevious() bool {
	c.state = AfterEnd
	return false
}

func (c *emptyCursor[K, V]) MoveAt(K, Direction) bool {
	c.state = AfterEnd
	return false
}

// TryGetValue always succeeds with V's zero value: Empty is continuous, so
// every key in its domain resolves to the same neutral default.
func (c *emptyCursor[K, V]) TryGetValue(K) (V, bool) {
	var zero V
	return zero, true
}

func (c *emptyCursor[K, V]) MoveNextAsync(context.Context) (bool, error) { return false, nil }

func (c *emptyCursor[K, V]) MoveNextBatch() (Series[K, V], bool) { return nil, false }

// IsContinuous is true: Empty defines a value (the zero value) at every key,
// which is what makes it Zip's neutral element rather than an annihilator.
func (c *emptyCursor[K, V]) IsContinuous() bool { return true }

func (c *emptyCursor[K, V]) Clone() Cursor[K, V] {
	return &emptyCursor[K, V]{series: c.series, state: c.state}
}

func (c *emptyCursor[K, V]) Dispose() { c.disposed = true }
