package cursorseries

import (
	"context"

	"github.com/ygrebnov/cursorseries/gate"
)

// mapSeries applies fn to each value of an inner series, leaving keys and
// order untouched. It inherits the inner series's indexing, readonly state
// and update token verbatim — a structural transform never changes those.
type mapSeries[K, Tin, Tout any] struct {
	inner Series[K, Tin]
	fn    func(K, Tin) Tout
}

// Map returns a Series[K, Tout] that lazily applies fn to every (key, value)
// pair of inner. fn runs on every CurrentValue and TryGetValue call; its
// results are not cached.
func Map[K, Tin, Tout any](inner Series[K, Tin], fn func(K, Tin) Tout) Series[K, Tout] {
	return mapSeries[K, Tin, Tout]{inner: inner, fn: fn}
}

func (s mapSeries[K, Tin, Tout]) Cursor() Cursor[K, Tout] {
	return &mapCursor[K, Tin, Tout]{series: s, inner: s.inner.Cursor()}
}

func (s mapSeries[K, Tin, Tout]) Comparer() Comparator[K] { return s.inner.Comparer() }
func (s mapSeries[K, Tin, Tout]) IsIndexed() bool         { return s.inner.IsIndexed() }
func (s mapSeries[K, Tin, Tout]) IsReadonly() bool        { return s.inner.IsReadonly() }
func (s mapSeries[K, Tin, Tout]) Updated() *gate.Future   { return s.inner.Updated() }

type mapCursor[K, Tin, Tout any] struct {
	series mapSeries[K, Tin, Tout]
	inner  Cursor[K, Tin]
}

func (c *mapCursor[K, Tin, Tout]) State() State  { return c.inner.State() }
func (c *mapCursor[K, Tin, Tout]) CurrentKey() K { return c.inner.CurrentKey() }

func (c *mapCursor[K, Tin, Tout]) CurrentValue() Tout {
	return c.series.fn(c.inner.CurrentKey(), c.inner.CurrentValue())
}

func (c *mapCursor[K, Tin, Tout]) MoveFirst() bool    { return c.inner.MoveFirst() }
func (c *mapCursor[K, Tin, Tout]) MoveLast() bool     { return c.inner.MoveLast() }
func (c *mapCursor[K, Tin, Tout]) MoveNext() bool     { return c.inner.MoveNext() }
func (c *mapCursor[K, Tin, Tout]) MovePrevious() bool { return c.inner.MovePrevious() }

func (c *mapCursor[K, Tin, Tout]) MoveAt(key K, dir Direction) bool {
	return c.inner.MoveAt(key, dir)
}

func (c *mapCursor[K, Tin, Tout]) TryGetValue(key K) (Tout, bool) {
	v, ok := c.inner.TryGetValue(key)
	if !ok {
		var zero Tout
		return zero, false
	}
	return c.series.fn(key, v), true
}

func (c *mapCursor[K, Tin, Tout]) MoveNextAsync(ctx context.Context) (bool, error) {
	return AsyncMoveNext[K, Tout](ctx, c.series, c.inner.MoveNext)
}

// MoveNextBatch never batches: a per-element fn is applied lazily by
// CurrentValue, and an embedded Series[K, Tout] would have to eagerly
// materialize every mapped value to honor that contract.
func (c *mapCursor[K, Tin, Tout]) MoveNextBatch() (Series[K, Tout], bool) { return nil, false }

func (c *mapCursor[K, Tin, Tout]) IsContinuous() bool { return c.inner.IsContinuous() }

func (c *mapCursor[K, Tin, Tout]) Clone() Cursor[K, Tout] {
	return &mapCursor[K, Tin, Tout]{series: c.series, inner: c.inner.Clone()}
}

func (c *mapCursor[K, Tin, Tout]) Dispose() { c.inner.Dispose() }
