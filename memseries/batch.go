package memseries

import (
	"context"

	cs "github.com/ygrebnov/cursorseries"
	"github.com/ygrebnov/cursorseries/gate"
)

// sliceSeries is a fixed, readonly snapshot handed out by MoveNextBatch. Its
// Updated future is pre-completed: a readonly series never gains data, so a
// waiter should see that immediately rather than block.
type sliceSeries[K, V any] struct {
	entries []entry[K, V]
	cmp     cs.Comparator[K]
	done    *gate.Future
}

func newSliceSeries[K, V any](cmp cs.Comparator[K], entries []entry[K, V]) sliceSeries[K, V] {
	g := gate.NewManualGate()
	g.Set()
	return sliceSeries[K, V]{entries: entries, cmp: cmp, done: g.Wait()}
}

func (s sliceSeries[K, V]) Cursor() cs.Cursor[K, V] { return &sliceCursor[K, V]{series: s, idx: -1} }
func (s sliceSeries[K, V]) Comparer() cs.Comparator[K] { return s.cmp }
func (sliceSeries[K, V]) IsIndexed() bool              { return true }
func (sliceSeries[K, V]) IsReadonly() bool             { return true }
func (s sliceSeries[K, V]) Updated() *gate.Future       { return s.done }

// sliceCursor walks a sliceSeries's entries by index. idx == -1 is
// Uninitialized; idx == len(entries) is AfterEnd.
type sliceCursor[K, V any] struct {
	series sliceSeries[K, V]
	idx    int
}

func (c *sliceCursor[K, V]) state() cs.State {
	switch {
	case c.idx < 0:
		return cs.Uninitialized
	case c.idx >= len(c.series.entries):
		return cs.AfterEnd
	default:
		return cs.AtElement
	}
}

func (c *sliceCursor[K, V]) State() cs.State { return c.state() }

func (c *sliceCursor[K, V]) CurrentKey() K {
	if c.state() != cs.AtElement {
		var zero K
		return zero
	}
	return c.series.entries[c.idx].key
}

func (c *sliceCursor[K, V]) CurrentValue() V {
	if c.state() != cs.AtElement {
		var zero V
		return zero
	}
	return c.series.entries[c.idx].value
}

func (c *sliceCursor[K, V]) MoveFirst() bool {
	if len(c.series.entries) == 0 {
		c.idx = 0
		return false
	}
	c.idx = 0
	return true
}

func (c *sliceCursor[K, V]) MoveLast() bool {
	if len(c.series.entries) == 0 {
		c.idx = 0
		return false
	}
	c.idx = len(c.series.entries) - 1
	return true
}

func (c *sliceCursor[K, V]) MoveNext() bool {
	if c.idx+1 >= len(c.series.entries) {
		c.idx = len(c.series.entries)
		return false
	}
	c.idx++
	return true
}

func (c *sliceCursor[K, V]) MovePrevious() bool {
	if c.idx <= 0 {
		c.idx = -1
		return false
	}
	c.idx--
	return true
}

func (c *sliceCursor[K, V]) MoveAt(key K, dir cs.Direction) bool {
	n := len(c.series.entries)
	lo, hi := 0, n
	for lo < hi {
		mid := (lo + hi) / 2
		if c.series.cmp.Compare(c.series.entries[mid].key, key) < 0 {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	// lo is the first index with entries[lo].key >= key.
	switch dir {
	case cs.EQ:
		if lo < n && c.series.cmp.Compare(c.series.entries[lo].key, key) == 0 {
			c.idx = lo
			return true
		}
	case cs.GE:
		if lo < n {
			c.idx = lo
			return true
		}
	case cs.GT:
		if lo < n && c.series.cmp.Compare(c.series.entries[lo].key, key) == 0 {
			lo++
		}
		if lo < n {
			c.idx = lo
			return true
		}
	case cs.LE:
		if lo < n && c.series.cmp.Compare(c.series.entries[lo].key, key) == 0 {
			c.idx = lo
			return true
		}
		if lo-1 >= 0 {
			c.idx = lo - 1
			return true
		}
	case cs.LT:
		if lo-1 >= 0 {
			c.idx = lo - 1
			return true
		}
	}
	return false
}

func (c *sliceCursor[K, V]) TryGetValue(key K) (V, bool) {
	n := len(c.series.entries)
	lo, hi := 0, n
	for lo < hi {
		mid := (lo + hi) / 2
		if c.series.cmp.Compare(c.series.entries[mid].key, key) < 0 {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	if lo < n && c.series.cmp.Compare(c.series.entries[lo].key, key) == 0 {
		return c.series.entries[lo].value, true
	}
	var zero V
	return zero, false
}

func (c *sliceCursor[K, V]) MoveNextAsync(context.Context) (bool, error) {
	return c.MoveNext(), nil
}

func (c *sliceCursor[K, V]) MoveNextBatch() (cs.Series[K, V], bool) { return nil, false }

func (c *sliceCursor[K, V]) IsContinuous() bool { return false }

func (c *sliceCursor[K, V]) Clone() cs.Cursor[K, V] {
	return &sliceCursor[K, V]{series: c.series, idx: c.idx}
}

func (c *sliceCursor[K, V]) Dispose() {}
