package codec

// SignedInteger is the element type family eligible for the generic delta
// path: delta-from-first. Floats are excluded — delta-from-first only pays
// off when successive differences land in a narrower byte range than the
// raw values, which holds for slowly-drifting integer counters but not for
// floating point, where subtraction can widen the exponent range instead of
// narrowing it.
type SignedInteger interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~int
}

// deltaFromFirst rewrites values in place as [values[0], values[1]-values[0],
// values[2]-values[0], ...] — delta against a fixed baseline rather than the
// previous element. This is the generic delta capability's policy: for
// mean-reverting data, deltas from a fixed baseline are themselves
// stationary, which narrows the bit-plane variance a byte-shuffle pass
// sees. DateTime deliberately uses the opposite policy; see
// deltaFromPrevious.
func deltaFromFirst[T SignedInteger](values []T) {
	if len(values) == 0 {
		return
	}
	first := values[0]
	for i := len(values) - 1; i >= 1; i-- {
		values[i] = values[i] - first
	}
}

// undeltaFromFirst reverses deltaFromFirst in place.
func undeltaFromFirst[T SignedInteger](values []T) {
	if len(values) == 0 {
		return
	}
	first := values[0]
	for i := 1; i < len(values); i++ {
		values[i] = first + values[i]
	}
}

// deltaFromPrevious rewrites ticks in place as [ticks[0], ticks[1]-ticks[0],
// ticks[2]-ticks[1], ...] — delta from the immediately preceding element.
// Regular, monotone timestamps (the common case for a time series' key
// column) produce a small, same-signed sequence this way, which compresses
// better under byte-shuffle than deltas-from-first's mixed-sign output
// would for the same data. This asymmetry with the generic integer path is
// deliberate and must not be unified without re-measuring compression on
// both workloads.
func deltaFromPrevious(ticks []int64) {
	for i := len(ticks) - 1; i >= 1; i-- {
		ticks[i] = ticks[i] - ticks[i-1]
	}
}

// undeltaFromPrevious reverses deltaFromPrevious in place via prefix sum.
func undeltaFromPrevious(ticks []int64) {
	for i := 1; i < len(ticks); i++ {
		ticks[i] = ticks[i-1] + ticks[i]
	}
}
