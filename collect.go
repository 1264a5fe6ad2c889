package cursorseries

// Collect walks s forward from its first element to its last, returning
// every (key, value) observation as a Pair — the cursor's observable
// position, materialized into a slice. It disposes its cursor before
// returning, so callers never need to.
//
// Collect stops at the first MoveNext that returns false. On a mutable
// series that false is provisional, so Collect returns only the elements
// present at that moment and does not wait for more. Seal the source (or
// use one that starts sealed, e.g. the output of MoveNextBatch) to collect
// a complete series.
func Collect[K, V any](s Series[K, V]) []Pair[K, V] {
	c := s.Cursor()
	defer c.Dispose()

	var out []Pair[K, V]
	for c.MoveNext() {
		out = append(out, NewPair(c.CurrentKey(), c.CurrentValue()))
	}
	return out
}
