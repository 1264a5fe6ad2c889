package cursorseries

import "context"

// State is a cursor's position in its state machine.
type State int

const (
	// Uninitialized is the state returned by Series.Cursor: current_* are undefined.
	Uninitialized State = iota
	// AtElement means CurrentKey/CurrentValue are valid.
	AtElement
	// AfterEnd means the cursor has moved past the last element of a readonly series.
	AfterEnd
	// Disposed means Dispose has been called; all further operations fail.
	Disposed
)

func (s State) String() string {
	switch s {
	case Uninitialized:
		return "Uninitialized"
	case AtElement:
		return "AtElement"
	case AfterEnd:
		return "AfterEnd"
	case Disposed:
		return "Disposed"
	default:
		return "Unknown"
	}
}

// Direction selects which neighbor MoveAt positions on when the requested
// key is absent.
type Direction int

const (
	// EQ requires an exact key match.
	EQ Direction = iota
	// LT positions on the greatest key strictly less than the requested key.
	LT
	// LE positions on the requested key, or the greatest key less than it.
	LE
	// GE positions on the requested key, or the least key greater than it.
	GE
	// GT positions on the least key strictly greater than the requested key.
	GT
)

// Cursor is a single-reader, stateful navigator over an ordered Series. Its
// movement operations report "no element" via a boolean return, never via
// error; errors are reserved for invariant violations (operating on a
// disposed cursor) and cancellation.
//
// A cursor carries a non-owning back-reference to its source: its lifetime
// must not exceed the source's.
type Cursor[K, V any] interface {
	// State returns the cursor's current state.
	State() State

	// CurrentKey returns the key at the cursor's current position. Its
	// value is undefined outside AtElement.
	CurrentKey() K

	// CurrentValue returns the value at the cursor's current position. Its
	// value is undefined outside AtElement.
	CurrentValue() V

	// MoveFirst positions at the minimum key, or AfterEnd if the series is
	// empty. Valid in any state except Disposed.
	MoveFirst() bool

	// MoveLast positions at the maximum key. Valid in any state except Disposed.
	MoveLast() bool

	// MoveNext advances one key. It returns false at the end of a mutable
	// series — which is provisional, not terminal — or true after
	// advancing. At the end of a readonly series the cursor transitions to
	// AfterEnd and also returns false.
	MoveNext() bool

	// MovePrevious is symmetric to MoveNext, moving toward smaller keys.
	MovePrevious() bool

	// MoveAt positions exactly on key, or on its neighbor per dir. It
	// returns false (never an error) if no matching element exists.
	MoveAt(key K, dir Direction) bool

	// TryGetValue looks up key without moving the cursor.
	TryGetValue(key K) (V, bool)

	// MoveNextAsync returns true immediately if a sync MoveNext would
	// succeed. Otherwise it waits on the source's update notification and
	// retries, completing false only once the source has become readonly
	// and no further elements exist. It returns ErrCancelled if ctx is
	// done before that happens; the cursor's position is unchanged on
	// cancellation.
	MoveNextAsync(ctx context.Context) (bool, error)

	// MoveNextBatch attempts to return the next chunk of consecutive
	// elements as an embedded read-only Series. Implementations that
	// cannot batch return (nil, false) unconditionally — never a
	// truncated batch silently presented as complete.
	MoveNextBatch() (Series[K, V], bool)

	// IsContinuous reports whether the cursor defines a value for every
	// key in its domain, not only at stored keys. For continuous cursors,
	// MoveAt(k, EQ) succeeds for any k and TryGetValue always succeeds.
	IsContinuous() bool

	// Clone produces an independent cursor with the same logical state.
	// Composition is by value, so cloning a combinator deep-clones its
	// inner cursor(s).
	Clone() Cursor[K, V]

	// Dispose releases inner resources. Idempotent; safe to call more than once.
	Dispose()
}
