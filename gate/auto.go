package gate

import (
	"container/list"
	"context"
	"sync"
	"time"

	"github.com/ygrebnov/cursorseries/metrics"
)

// AutoSignal is a FIFO of pending waiters plus a single remembered pending
// signal. Wait enqueues a waiter (or consumes the pending signal
// immediately); Signal wakes the oldest waiter, or — if none is waiting —
// remembers the signal for the next Wait. At most one pending signal is
// ever remembered.
//
// Among waiters whose Wait calls were serialized by the internal mutex,
// FIFO fairness holds: Signal always wakes the longest-waiting goroutine
// first. A Signal consumed by a timed-out waiter is lost only if the
// timeout race completes before dequeue; Future.complete's
// compare-and-swap guarantees exactly one of {timeout, signal} wins so no
// signal is silently dropped onto a dead waiter.
type AutoSignal struct {
	mu        sync.Mutex
	signaled  bool
	waiters   *list.List // of *Future
	instrument metrics.Provider
}

// NewAutoSignal returns an unsignaled AutoSignal with no pending waiters.
func NewAutoSignal() *AutoSignal {
	return &AutoSignal{waiters: list.New(), instrument: metrics.NewNoopProvider()}
}

// WithMetrics attaches a metrics.Provider instrumenting waiter/signal/timeout
// counts under the gate.* instrument names in package metrics.
func (s *AutoSignal) WithMetrics(m metrics.Provider) *AutoSignal {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.instrument = m
	return s
}

// Wait returns a future that completes true immediately if a signal is
// already pending (consuming it), or otherwise completes when Signal next
// fires or timeout elapses (completing false).
func (s *AutoSignal) Wait(timeout time.Duration) *Future {
	s.mu.Lock()
	if s.signaled {
		s.signaled = false
		s.mu.Unlock()
		return completed(true, nil)
	}

	f := newFuture()
	el := s.waiters.PushBack(f)
	s.mu.Unlock()

	s.instrument.Counter(metrics.GateWaitersEnqueued).Add(1)

	if timeout > 0 {
		timer := time.AfterFunc(timeout, func() {
			if f.complete(false, nil) {
				s.instrument.Counter(metrics.GateWaitTimeouts).Add(1)
				s.removeWaiter(el)
			}
		})
		go func() {
			<-f.Done()
			timer.Stop()
		}()
	}

	return f
}

// Signal wakes the oldest pending waiter, completing its future with true.
// If no waiter is pending, the signal is remembered for the next Wait.
func (s *AutoSignal) Signal() {
	s.mu.Lock()
	for {
		el := s.waiters.Front()
		if el == nil {
			s.signaled = true
			s.mu.Unlock()
			return
		}
		s.waiters.Remove(el)
		f := el.Value.(*Future)
		s.mu.Unlock()

		if f.complete(true, nil) {
			s.instrument.Counter(metrics.GateSignalsDelivered).Add(1)
			return
		}
		// f already timed out between Front() and complete(); try the next.
		s.mu.Lock()
	}
}

func (s *AutoSignal) removeWaiter(el *list.Element) {
	s.mu.Lock()
	defer s.mu.Unlock()
	// list.Remove is a no-op if el was already unlinked by a concurrent
	// Signal (it compares el's owning list before touching anything).
	s.waiters.Remove(el)
}

// WaitContext is a convenience wrapper combining Wait with ctx cancellation:
// it returns (true, nil) on signal, (false, nil) on timeout, or (false,
// ctx.Err()) if ctx is canceled first.
func (s *AutoSignal) WaitContext(ctx context.Context, timeout time.Duration) (bool, error) {
	f := s.Wait(timeout)
	return f.Wait(ctx)
}
