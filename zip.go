package cursorseries

import (
	"context"

	"github.com/ygrebnov/cursorseries/gate"
)

// Zipped is one matched observation from two zipped series: the value each
// side holds at a shared key.
type Zipped[Vl, Vr any] struct {
	Left  Vl
	Right Vr
}

// zipSeries pairs two series on matching keys. When exactly one side is
// continuous, the other (discrete) side drives: Zip visits every key of the
// discrete side and samples the continuous side at that key via
// TryGetValue, which a continuous cursor must always satisfy. When both
// sides are discrete, Zip is a sorted merge join: it only visits keys
// present in both. Zipping two continuous series is unsupported — there is
// no discrete key sequence to drive the join — and MoveFirst/MoveLast
// report no element.
type zipSeries[K, Vl, Vr any] struct {
	left  Series[K, Vl]
	right Series[K, Vr]
	cmp   Comparator[K]
}

// Zip returns a Series of matched (left, right) pairs. left and right must
// share a key order; Zip uses left's Comparer.
func Zip[K, Vl, Vr any](left Series[K, Vl], right Series[K, Vr]) Series[K, Zipped[Vl, Vr]] {
	return zipSeries[K, Vl, Vr]{left: left, right: right, cmp: left.Comparer()}
}

func (s zipSeries[K, Vl, Vr]) Cursor() Cursor[K, Zipped[Vl, Vr]] {
	return &zipCursor[K, Vl, Vr]{
		series: s,
		left:   s.left.Cursor(),
		right:  s.right.Cursor(),
	}
}

func (s zipSeries[K, Vl, Vr]) Comparer() Comparator[K] { return s.cmp }

func (s zipSeries[K, Vl, Vr]) IsIndexed() bool {
	return s.left.IsIndexed() && s.right.IsIndexed()
}

func (s zipSeries[K, Vl, Vr]) IsReadonly() bool {
	return s.left.IsReadonly() && s.right.IsReadonly()
}

// Updated fires whenever either input might have gained data; the first to
// signal wins the select and the other token is simply left unconsumed
// until the next wait.
func (s zipSeries[K, Vl, Vr]) Updated() *gate.Future {
	lu, ru := s.left.Updated(), s.right.Updated()
	return gate.Any(lu, ru)
}

type zipCursor[K, Vl, Vr any] struct {
	series zipSeries[K, Vl, Vr]
	left   Cursor[K, Vl]
	right  Cursor[K, Vr]
	state  State
	key    K
}

func (c *zipCursor[K, Vl, Vr]) State() State { return c.state }
func (c *zipCursor[K, Vl, Vr]) CurrentKey() K { return c.key }

func (c *zipCursor[K, Vl, Vr]) CurrentValue() Zipped[Vl, Vr] {
	lv, _ := c.left.TryGetValue(c.key)
	rv, _ := c.right.TryGetValue(c.key)
	return Zipped[Vl, Vr]{Left: lv, Right: rv}
}

func (c *zipCursor[K, Vl, Vr]) bothContinuous() bool {
	return c.left.IsContinuous() && c.right.IsContinuous()
}

// endOrProvisional is zip's settle: it marks the cursor terminal only once
// both inputs are readonly. On a still-mutable input, "no element yet" is
// provisional, not end, mirroring memseries.cursor's settle.
func (c *zipCursor[K, Vl, Vr]) endOrProvisional() bool {
	if c.series.IsReadonly() {
		c.state = AfterEnd
	}
	return false
}

func (c *zipCursor[K, Vl, Vr]) MoveFirst() bool {
	if c.bothContinuous() {
		return c.endOrProvisional()
	}
	if c.left.IsContinuous() {
		if !c.right.MoveFirst() {
			return c.endOrProvisional()
		}
		return c.sampleAt(c.right.CurrentKey())
	}
	if c.right.IsContinuous() {
		if !c.left.MoveFirst() {
			return c.endOrProvisional()
		}
		return c.sampleAt(c.left.CurrentKey())
	}
	lok := c.left.MoveFirst()
	rok := c.right.MoveFirst()
	if !lok || !rok {
		return c.endOrProvisional()
	}
	return c.seekAlign(GE)
}

func (c *zipCursor[K, Vl, Vr]) MoveLast() bool {
	if c.bothContinuous() {
		return c.endOrProvisional()
	}
	if c.left.IsContinuous() {
		if !c.right.MoveLast() {
			return c.endOrProvisional()
		}
		return c.sampleAt(c.right.CurrentKey())
	}
	if c.right.IsContinuous() {
		if !c.left.MoveLast() {
			return c.endOrProvisional()
		}
		return c.sampleAt(c.left.CurrentKey())
	}
	lok := c.left.MoveLast()
	rok := c.right.MoveLast()
	if !lok || !rok {
		return c.endOrProvisional()
	}
	return c.seekAlign(LE)
}

// MoveNext, like memseries.cursor's, self-dispatches to MoveFirst whenever
// the cursor isn't already AtElement — including on a fresh Cursor() — so
// both inner cursors are always explicitly positioned before seekAlign ever
// reads their CurrentKey, instead of leaning on an un-positioned inner
// cursor's own MoveNext-from-Uninitialized behavior.
func (c *zipCursor[K, Vl, Vr]) MoveNext() bool {
	if c.state != AtElement {
		return c.MoveFirst()
	}
	if c.left.IsContinuous() {
		if !c.right.MoveNext() {
			return c.endOrProvisional()
		}
		return c.sampleAt(c.right.CurrentKey())
	}
	if c.right.IsContinuous() {
		if !c.left.MoveNext() {
			return c.endOrProvisional()
		}
		return c.sampleAt(c.left.CurrentKey())
	}
	// Intersection-seek: advance left unconditionally, then seek whichever
	// side trails directly to the other's key via MoveAt(_, GE) rather than
	// walking one element at a time.
	if !c.left.MoveNext() {
		return c.endOrProvisional()
	}
	return c.seekAlign(GE)
}

// MovePrevious self-dispatches to MoveLast on the same basis MoveNext
// dispatches to MoveFirst.
func (c *zipCursor[K, Vl, Vr]) MovePrevious() bool {
	if c.state != AtElement {
		return c.MoveLast()
	}
	if c.left.IsContinuous() {
		if !c.right.MovePrevious() {
			return c.endOrProvisional()
		}
		return c.sampleAt(c.right.CurrentKey())
	}
	if c.right.IsContinuous() {
		if !c.left.MovePrevious() {
			return c.endOrProvisional()
		}
		return c.sampleAt(c.left.CurrentKey())
	}
	if !c.left.MovePrevious() {
		return c.endOrProvisional()
	}
	return c.seekAlign(LE)
}

func (c *zipCursor[K, Vl, Vr]) MoveAt(key K, dir Direction) bool {
	lok := c.left.MoveAt(key, dir)
	rok := c.right.MoveAt(key, dir)
	if c.left.IsContinuous() && rok {
		return c.sampleAt(c.right.CurrentKey())
	}
	if c.right.IsContinuous() && lok {
		return c.sampleAt(c.left.CurrentKey())
	}
	if !lok || !rok {
		return c.endOrProvisional()
	}
	if dir == EQ {
		if c.series.cmp.Compare(c.left.CurrentKey(), c.right.CurrentKey()) != 0 {
			return c.endOrProvisional()
		}
		return c.sampleAt(key)
	}
	if dir == LT || dir == LE {
		return c.seekAlign(LE)
	}
	return c.seekAlign(GE)
}

func (c *zipCursor[K, Vl, Vr]) TryGetValue(key K) (Zipped[Vl, Vr], bool) {
	lv, lok := c.left.TryGetValue(key)
	rv, rok := c.right.TryGetValue(key)
	if !lok || !rok {
		var zero Zipped[Vl, Vr]
		return zero, false
	}
	return Zipped[Vl, Vr]{Left: lv, Right: rv}, true
}

// sampleAt positions at key, reading both sides via TryGetValue — the
// driving side has already moved there, so its TryGetValue always
// succeeds; the continuous side is sampled fresh.
func (c *zipCursor[K, Vl, Vr]) sampleAt(key K) bool {
	if _, lok := c.left.TryGetValue(key); !lok {
		return c.endOrProvisional()
	}
	if _, rok := c.right.TryGetValue(key); !rok {
		return c.endOrProvisional()
	}
	c.key = key
	c.state = AtElement
	return true
}

// seekAlign is the intersection-seek: compare keys; if equal, emit. If one
// side trails, seek it directly to the other's key via MoveAt(_, dir) — GE
// when converging forward, LE when converging backward — rather than
// stepping one element at a time. A single MoveAt is usually enough to
// converge since both cursors only move monotonically in the seek
// direction; the loop exists for the rare case a seek lands exactly on the
// trailing side's next candidate rather than the match itself.
func (c *zipCursor[K, Vl, Vr]) seekAlign(dir Direction) bool {
	for {
		lk, rk := c.left.CurrentKey(), c.right.CurrentKey()
		cmp := c.series.cmp.Compare(lk, rk)
		// Forward the smaller key trails; backward the larger key trails.
		leftTrails := (cmp < 0) == (dir == GE)
		switch {
		case cmp == 0:
			c.key = lk
			c.state = AtElement
			return true
		case leftTrails:
			if !c.left.MoveAt(rk, dir) {
				return c.endOrProvisional()
			}
		default:
			if !c.right.MoveAt(lk, dir) {
				return c.endOrProvisional()
			}
		}
	}
}

func (c *zipCursor[K, Vl, Vr]) MoveNextAsync(ctx context.Context) (bool, error) {
	return AsyncMoveNext[K, Zipped[Vl, Vr]](ctx, c.series, c.MoveNext)
}

// MoveNextBatch never batches: alignment can skip arbitrarily many elements
// of either input per step, so there is no contiguous inner run to hand out.
func (c *zipCursor[K, Vl, Vr]) MoveNextBatch() (Series[K, Zipped[Vl, Vr]], bool) {
	return nil, false
}

func (c *zipCursor[K, Vl, Vr]) IsContinuous() bool { return c.bothContinuous() }

func (c *zipCursor[K, Vl, Vr]) Clone() Cursor[K, Zipped[Vl, Vr]] {
	return &zipCursor[K, Vl, Vr]{
		series: c.series,
		left:   c.left.Clone(),
		right:  c.right.Clone(),
		state:  c.state,
		key:    c.key,
	}
}

func (c *zipCursor[K, Vl, Vr]) Dispose() {
	c.left.Dispose()
	c.right.Dispose()
}
