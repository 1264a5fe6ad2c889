package cursorseries

import "github.com/ygrebnov/cursorseries/gate"

// Series is the capability interface a source of ordered (key, value) data
// exposes to cursors. It is intentionally small: cursors never reach back
// into a source's storage directly, only through Cursor and Updated.
//
// memseries.Series (D1) is the in-tree reference implementation; combinators
// (Map, Op, Comparison, Zip) implement it themselves over one or two inner
// series.
type Series[K, V any] interface {
	// Cursor returns a new Uninitialized cursor over this series.
	Cursor() Cursor[K, V]

	// Comparer returns the key order this series is sorted by.
	Comparer() Comparator[K]

	// IsIndexed reports whether MoveAt can be answered by a direct lookup
	// rather than a linear scan. Combinators propagate the weakest of
	// their inputs.
	IsIndexed() bool

	// IsReadonly reports whether the series has stopped receiving appends. It
	// can transition from false to true exactly once (Seal), never back.
	IsReadonly() bool

	// Updated returns the current wake-up token for cursors blocked in
	// MoveNextAsync. It completes whenever the series gains data or
	// becomes readonly; callers must re-test IsReadonly and retry their
	// synchronous move after it fires, since completion carries no
	// payload distinguishing the two causes.
	Updated() *gate.Future
}
