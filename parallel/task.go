package parallel

import (
	"context"
	"fmt"
)

// Task is a unit of work submitted to a Runner.
type Task[R any] func(ctx context.Context) (R, error)

// run executes t, converting a panic into ErrTaskPanicked, and honors ctx
// cancellation while waiting for the task to finish.
func (t Task[R]) run(ctx context.Context) (R, error) {
	var (
		result R
		err    error
	)

	done := make(chan struct{})

	go func() {
		defer func() {
			if p := recover(); p != nil {
				err = fmt.Errorf("%w: %v", ErrTaskPanicked, p)
			}
			close(done)
		}()
		result, err = t(ctx)
	}()

	select {
	case <-ctx.Done():
		var zero R
		return zero, ctx.Err()
	case <-done:
		return result, err
	}
}
