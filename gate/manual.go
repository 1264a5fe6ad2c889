package gate

import "sync/atomic"

// ManualGate is a latch holding a single awaitable token. Any number of
// goroutines may call Wait concurrently; Set completes the current token
// (idempotent); Reset swaps in a fresh token once the current one has
// completed, so a subsequent Wait blocks again.
//
// Reset races against concurrent Set calls using compare-and-swap on the
// token pointer: it loops until either the current token is not yet
// completed (another Set is still pending — nothing to do) or the CAS to a
// fresh token succeeds.
type ManualGate struct {
	token atomic.Pointer[Future]
}

// NewManualGate returns a gate with a fresh, uncompleted token.
func NewManualGate() *ManualGate {
	g := &ManualGate{}
	g.token.Store(newFuture())
	return g
}

// Wait returns the current token's future. It never fails on its own; the
// caller awaits Future.Done() or Future.Wait(ctx).
func (g *ManualGate) Wait() *Future {
	return g.token.Load()
}

// Set completes the current token with true. Calling Set again before Reset
// is a no-op: the token is already completed.
func (g *ManualGate) Set() {
	g.token.Load().complete(true, nil)
}

// Reset swaps in a fresh token if the current one has completed. If the
// current token has not completed (no Set has happened since the last
// Reset), Reset is a no-op.
func (g *ManualGate) Reset() {
	for {
		cur := g.token.Load()
		select {
		case <-cur.Done():
			// Completed: try to install a fresh token in its place.
			fresh := newFuture()
			if g.token.CompareAndSwap(cur, fresh) {
				return
			}
			// Someone else reset concurrently; retry against the new token.
		default:
			// Not completed yet: nothing to reset.
			return
		}
	}
}
