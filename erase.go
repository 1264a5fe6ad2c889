package cursorseries

import (
	"context"

	"github.com/ygrebnov/cursorseries/gate"
)

// Erase hides a Series's concrete combinator type behind a fresh,
// unexported wrapper type, so a long Builder chain's static return type
// doesn't leak the full nested instantiation (Zip[K, Vl, Vr, Map[...], Op[...]])
// to callers who should only ever program against Series[K, V]. It costs one
// pointer indirection and changes no semantics.
func Erase[K, V any](s Series[K, V]) Series[K, V] {
	return erasedSeries[K, V]{inner: s}
}

type erasedSeries[K, V any] struct {
	inner Series[K, V]
}

func (e erasedSeries[K, V]) Cursor() Cursor[K, V] {
	return erasedCursor[K, V]{inner: e.inner.Cursor()}
}

func (e erasedSeries[K, V]) Comparer() Comparator[K] { return e.inner.Comparer() }
func (e erasedSeries[K, V]) IsIndexed() bool         { return e.inner.IsIndexed() }
func (e erasedSeries[K, V]) IsReadonly() bool        { return e.inner.IsReadonly() }
func (e erasedSeries[K, V]) Updated() *gate.Future   { return e.inner.Updated() }

type erasedCursor[K, V any] struct {
	inner Cursor[K, V]
}

func (e erasedCursor[K, V]) State() State            { return e.inner.State() }
func (e erasedCursor[K, V]) CurrentKey() K           { return e.inner.CurrentKey() }
func (e erasedCursor[K, V]) CurrentValue() V         { return e.inner.CurrentValue() }
func (e erasedCursor[K, V]) MoveFirst() bool         { return e.inner.MoveFirst() }
func (e erasedCursor[K, V]) MoveLast() bool          { return e.inner.MoveLast() }
func (e erasedCursor[K, V]) MoveNext() bool          { return e.inner.MoveNext() }
func (e erasedCursor[K, V]) MovePrevious() bool      { return e.inner.MovePrevious() }
func (e erasedCursor[K, V]) MoveAt(k K, d Direction) bool { return e.inner.MoveAt(k, d) }
func (e erasedCursor[K, V]) TryGetValue(k K) (V, bool) { return e.inner.TryGetValue(k) }
func (e erasedCursor[K, V]) MoveNextAsync(ctx context.Context) (bool, error) {
	return e.inner.MoveNextAsync(ctx)
}
func (e erasedCursor[K, V]) IsContinuous() bool { return e.inner.IsContinuous() }
func (e erasedCursor[K, V]) MoveNextBatch() (Series[K, V], bool) {
	return e.inner.MoveNextBatch()
}
func (e erasedCursor[K, V]) Clone() Cursor[K, V] {
	return erasedCursor[K, V]{inner: e.inner.Clone()}
}
func (e erasedCursor[K, V]) Dispose() { e.inner.Dispose() }
