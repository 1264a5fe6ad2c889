package cursorseries_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	cs "github.com/ygrebnov/cursorseries"
	"github.com/ygrebnov/cursorseries/memseries"
)

func intSeries(t *testing.T, pairs map[int]int) *memseries.Series[int, int] {
	t.Helper()
	s := memseries.New[int, int](cs.OrderedComparator[int](), 32)
	for k, v := range pairs {
		s.Append(k, v)
	}
	s.Seal()
	return s
}

// Invariant 1: monotone iteration.
func TestMonotoneIteration(t *testing.T) {
	s := intSeries(t, map[int]int{5: 50, 1: 10, 3: 30, 2: 20, 4: 40})
	c := s.Cursor()
	prev, ok := 0, false
	for c.MoveNext() {
		if ok {
			require.Less(t, prev, c.CurrentKey())
		}
		prev, ok = c.CurrentKey(), true
	}
	require.True(t, ok)
}

// Invariant 2: lookup/position coherence.
func TestMoveAtEQCoherence(t *testing.T) {
	s := intSeries(t, map[int]int{1: 10, 2: 20, 3: 30})
	c := s.Cursor()
	require.True(t, c.MoveAt(2, cs.EQ))
	require.Equal(t, 2, c.CurrentKey())
	v, ok := c.TryGetValue(2)
	require.True(t, ok)
	require.Equal(t, c.CurrentValue(), v)
}

// Invariant 3: Map homomorphism.
func TestMapHomomorphism(t *testing.T) {
	s := intSeries(t, map[int]int{1: 10, 2: 20, 3: 30})
	doubled := cs.Map[int, int, int](s, func(k, v int) int { return v * 2 })

	base, mapped := s.Cursor(), doubled.Cursor()
	for base.MoveNext() {
		require.True(t, mapped.MoveNext())
		require.Equal(t, base.CurrentKey(), mapped.CurrentKey())
		require.Equal(t, base.CurrentValue()*2, mapped.CurrentValue())
	}
	require.False(t, mapped.MoveNext())
}

// Invariant 4 / S1: Zip intersection (monotone merge).
func TestZipIntersection_S1(t *testing.T) {
	a := intSeries(t, map[int]int{1: 10, 2: 20, 4: 40})
	b := intSeries(t, map[int]int{2: 200, 3: 300, 4: 400})

	sums := cs.Map[int, cs.Zipped[int, int], int](cs.Zip[int, int, int](a, b), func(_ int, z cs.Zipped[int, int]) int {
		return z.Left + z.Right
	})

	c := sums.Cursor()
	var gotKeys, gotVals []int
	for c.MoveNext() {
		gotKeys = append(gotKeys, c.CurrentKey())
		gotVals = append(gotVals, c.CurrentValue())
	}
	require.Equal(t, []int{2, 4}, gotKeys)
	require.Equal(t, []int{220, 440}, gotVals)
}

// Op composes cleanly with Zip+Map underneath it.
func TestOpAddition(t *testing.T) {
	a := intSeries(t, map[int]int{1: 1, 2: 2, 3: 3})
	b := intSeries(t, map[int]int{1: 10, 2: 20, 3: 30})

	sum := cs.Op[int, int](a, b, cs.Add[int]())
	c := sum.Cursor()

	require.True(t, c.MoveAt(2, cs.EQ))
	require.Equal(t, 22, c.CurrentValue())
}

// OpScalar is a pure Map and needs no right-hand series.
func TestOpScalar(t *testing.T) {
	a := intSeries(t, map[int]int{1: 1, 2: 2, 3: 3})
	tripled := cs.OpScalar[int, int](a, 3, cs.Mul[int]())

	c := tripled.Cursor()
	require.True(t, c.MoveAt(2, cs.EQ))
	require.Equal(t, 6, c.CurrentValue())
}

// Comparison yields a bool-valued series from a pairwise predicate.
func TestComparisonGreaterThan(t *testing.T) {
	a := intSeries(t, map[int]int{1: 5, 2: 15})
	b := intSeries(t, map[int]int{1: 10, 2: 10})

	gt := cs.Comparison[int, int](a, b, cs.GTOp[int]())
	c := gt.Cursor()

	require.True(t, c.MoveAt(1, cs.EQ))
	require.False(t, c.CurrentValue())
	require.True(t, c.MoveAt(2, cs.EQ))
	require.True(t, c.CurrentValue())
}

// Empty is readonly from construction and its Updated future is already
// completed, so MoveNextAsync returns immediately with false. It is also
// continuous: it has no discrete keys to enumerate (MoveFirst/MoveNext
// report no element), but TryGetValue resolves any key to V's zero value,
// which is what makes it Zip's neutral element.
func TestEmptySeries(t *testing.T) {
	e := cs.Empty[int, string](cs.OrderedComparator[int]())
	require.True(t, e.IsReadonly())

	c := e.Cursor()
	require.True(t, c.IsContinuous())
	require.False(t, c.MoveNext())
	require.False(t, c.MoveFirst())
	v, ok := c.TryGetValue(1)
	require.True(t, ok)
	require.Equal(t, "", v)
}

// Erase hides the concrete Series type behind the interface without
// changing observable behavior.
func TestErasePreservesBehavior(t *testing.T) {
	s := intSeries(t, map[int]int{1: 10, 2: 20})
	erased := cs.Erase[int, int](s)

	require.Equal(t, s.IsReadonly(), erased.IsReadonly())

	c := erased.Cursor()
	require.True(t, c.MoveFirst())
	require.Equal(t, 1, c.CurrentKey())
	require.Equal(t, 10, c.CurrentValue())
}

// Collect materializes a sealed series into an ordered slice of Pairs.
func TestCollect(t *testing.T) {
	s := intSeries(t, map[int]int{3: 30, 1: 10, 2: 20})
	pairs := cs.Collect[int, int](s)
	require.Equal(t, []cs.Pair[int, int]{
		cs.NewPair(1, 10),
		cs.NewPair(2, 20),
		cs.NewPair(3, 30),
	}, pairs)
}

// Builder chains combinators without naming each intermediate series.
func TestBuilderChaining(t *testing.T) {
	a := intSeries(t, map[int]int{1: 1, 2: 2, 3: 3})

	result := cs.NewBuilder[int, int](a)
	doubled := cs.MapValues[int, int, int](result, func(_ int, v int) int { return v * 2 }).Build()

	c := doubled.Cursor()
	require.True(t, c.MoveAt(3, cs.EQ))
	require.Equal(t, 6, c.CurrentValue())
}
