package cursorseries

import "errors"

const namespace = "cursorseries"

// Sentinel error kinds. Concrete errors wrap one of these via fmt.Errorf's
// %w verb so callers can test with errors.Is.
var (
	// ErrDisposed is the value a memseries cursor panics with when it is
	// used after Dispose; its movement methods return only a bool.
	ErrDisposed = errors.New(namespace + ": disposed cursor")

	// ErrCancelled is returned by MoveNextAsync when its cancellation
	// context is done before a new element arrives.
	ErrCancelled = errors.New(namespace + ": async wait cancelled")
)
