package parallel

import (
	"context"
	"errors"
)

// RunAll executes tasks on a freshly constructed Runner and collects every
// result and error before returning. The Runner is started, drained, and
// closed internally; the caller owns nothing.
func RunAll[R any](ctx context.Context, tasks []Task[R], opts ...Option) ([]R, error) {
	r := NewOptions[R](opts...)
	r.Start(ctx)

	started := 0
	for _, t := range tasks {
		if err := r.Submit(t); err != nil {
			break
		}
		started++
	}

	var (
		results []R
		errs    []error
	)

	// Collect exactly `started` completions before closing: only then is it
	// safe to assume every submitted task has finished.
	for i := 0; i < started; i++ {
		select {
		case v := <-r.Results():
			results = append(results, v)
		case e := <-r.Errors():
			errs = append(errs, e)
		}
	}

	r.Close()

	// Drain whatever the Runner buffered beyond the completions already
	// observed above (there should be none, but channels are now closed so
	// this terminates).
	for v := range r.Results() {
		results = append(results, v)
	}
	for e := range r.Errors() {
		errs = append(errs, e)
	}

	return results, errors.Join(errs...)
}
