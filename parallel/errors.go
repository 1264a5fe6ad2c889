package parallel

import "errors"

const namespace = "parallel"

var (
	// ErrInvalidState is returned by Submit when the runner has not been started.
	ErrInvalidState = errors.New(namespace + ": runner has not been started")

	// ErrTaskPanicked wraps a recovered panic from a task function.
	ErrTaskPanicked = errors.New(namespace + ": task panicked")
)
