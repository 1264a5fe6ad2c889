package gate

import (
	"context"
	"sync/atomic"
)

// Future is a one-shot, channel-backed result that completes exactly once.
// It carries no dependency on any particular task runtime: a caller awaits
// it with a plain select over Done(), optionally racing a context or timer.
type Future struct {
	done      chan struct{}
	completed atomic.Bool
	result    bool
	err       error
}

func newFuture() *Future {
	return &Future{done: make(chan struct{})}
}

// completed returns an already-done future holding result/err.
func completed(result bool, err error) *Future {
	f := &Future{done: make(chan struct{}), result: result, err: err}
	close(f.done)
	return f
}

// complete finishes the future exactly once. Later calls are no-ops, so
// racing a timeout against a signal is safe: only the first writer wins.
func (f *Future) complete(result bool, err error) bool {
	if !f.completed.CompareAndSwap(false, true) {
		return false
	}
	f.result = result
	f.err = err
	close(f.done)
	return true
}

// Done reports completion; receiving from it never blocks once the future
// has completed.
func (f *Future) Done() <-chan struct{} { return f.done }

// Result returns the completed boolean outcome. Calling it before Done has
// fired returns the zero value.
func (f *Future) Result() bool { return f.result }

// Err returns the completion error, if any (e.g. a cancellation error).
func (f *Future) Err() error { return f.err }

// Wait blocks until the future completes or ctx is canceled, whichever
// comes first.
func (f *Future) Wait(ctx context.Context) (bool, error) {
	select {
	case <-f.done:
		return f.result, f.err
	case <-ctx.Done():
		return false, ctx.Err()
	}
}

// Any returns a future that completes with the result and error of whichever
// of fs completes first. It is used to wait on several independent update
// tokens — e.g. a combinator racing its two inner series' Updated futures —
// without picking one arbitrarily up front.
func Any(fs ...*Future) *Future {
	out := newFuture()
	// One goroutine per input future; first writer to out wins via
	// complete's compare-and-swap, the rest are no-ops.
	for _, f := range fs {
		f := f
		go func() {
			<-f.Done()
			out.complete(f.Result(), f.Err())
		}()
	}
	return out
}
