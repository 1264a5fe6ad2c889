package memseries

import (
	"context"

	cs "github.com/ygrebnov/cursorseries"
)

// cursor navigates a Series by re-querying its B-tree on every movement.
// There is no persisted B-tree iterator to keep alive across Append calls,
// so each move is a fresh O(log n) seek rather than an O(1) pointer
// advance — the tradeoff for letting the series grow underneath a live
// cursor.
type cursor[K, V any] struct {
	series   *Series[K, V]
	state    cs.State
	key      K
	value    V
	disposed bool
}

func (c *cursor[K, V]) requireLive() {
	if c.disposed {
		panic(cs.ErrDisposed)
	}
}

func (c *cursor[K, V]) State() cs.State { return c.state }

func (c *cursor[K, V]) CurrentKey() K { return c.key }

func (c *cursor[K, V]) CurrentValue() V { return c.value }

// settle applies the outcome of a positioning attempt uniformly: success
// lands on AtElement; failure on a readonly series is terminal (AfterEnd);
// failure on a mutable series leaves state untouched, since the source may
// yet gain the element being sought.
func (c *cursor[K, V]) settle(e entry[K, V], ok bool) bool {
	if ok {
		c.key, c.value = e.key, e.value
		c.state = cs.AtElement
		return true
	}
	if c.series.IsReadonly() {
		c.state = cs.AfterEnd
	}
	return false
}

func (c *cursor[K, V]) MoveFirst() bool {
	c.requireLive()
	e, ok := c.series.first()
	return c.settle(e, ok)
}

func (c *cursor[K, V]) MoveLast() bool {
	c.requireLive()
	e, ok := c.series.last()
	return c.settle(e, ok)
}

func (c *cursor[K, V]) MoveNext() bool {
	c.requireLive()
	if c.state != cs.AtElement {
		return c.MoveFirst()
	}
	e, ok := c.series.gt(c.key)
	return c.settle(e, ok)
}

func (c *cursor[K, V]) MovePrevious() bool {
	c.requireLive()
	if c.state != cs.AtElement {
		return c.MoveLast()
	}
	e, ok := c.series.lt(c.key)
	return c.settle(e, ok)
}

func (c *cursor[K, V]) MoveAt(key K, dir cs.Direction) bool {
	c.requireLive()
	var e entry[K, V]
	var ok bool
	switch dir {
	case cs.EQ:
		e, ok = c.series.exact(key)
	case cs.LT:
		e, ok = c.series.lt(key)
	case cs.LE:
		e, ok = c.series.floor(key)
	case cs.GE:
		e, ok = c.series.ceil(key)
	case cs.GT:
		e, ok = c.series.gt(key)
	}
	return c.settle(e, ok)
}

func (c *cursor[K, V]) TryGetValue(key K) (V, bool) {
	c.requireLive()
	e, ok := c.series.exact(key)
	if !ok {
		var zero V
		return zero, false
	}
	return e.value, true
}

func (c *cursor[K, V]) MoveNextAsync(ctx context.Context) (bool, error) {
	c.requireLive()
	return cs.AsyncMoveNext[K, V](ctx, c.series, c.MoveNext)
}

// MoveNextBatch hands out up to batchSize consecutive elements starting
// from the key after the cursor's current position (or the series' first
// key, if not yet positioned) as an embedded readonly snapshot, then
// advances the cursor to the batch's last element.
func (c *cursor[K, V]) MoveNextBatch() (cs.Series[K, V], bool) {
	c.requireLive()
	const batchSize = 256

	var pivot K
	var havePivot bool
	switch c.state {
	case cs.AtElement:
		if e, ok := c.series.gt(c.key); ok {
			pivot, havePivot = e.key, true
		}
	case cs.Uninitialized:
		if e, ok := c.series.first(); ok {
			pivot, havePivot = e.key, true
		}
	default: // AfterEnd
	}
	if !havePivot {
		if c.series.IsReadonly() {
			c.state = cs.AfterEnd
		}
		return nil, false
	}

	run := c.series.run(pivot, batchSize)
	if len(run) == 0 {
		return nil, false
	}
	c.key, c.value = run[len(run)-1].key, run[len(run)-1].value
	c.state = cs.AtElement
	return newSliceSeries[K, V](c.series.cmp, run), true
}

func (c *cursor[K, V]) IsContinuous() bool { return false }

func (c *cursor[K, V]) Clone() cs.Cursor[K, V] {
	return &cursor[K, V]{series: c.series, state: c.state, key: c.key, value: c.value}
}

func (c *cursor[K, V]) Dispose() { c.disposed = true }
