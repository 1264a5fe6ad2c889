// Package gate implements the two suspension primitives the cursor
// protocol's asynchronous move-next uses to wait for new data:
//
//   - ManualGate: a latch holding one awaitable token. Any number of
//     waiters can await it; set() completes it; reset() swaps in a fresh
//     token once the current one has completed.
//   - AutoSignal: a FIFO queue of pending waiters plus a single
//     remembered pending signal, with per-wait timeouts.
//
// Both expose Future, a minimal channel-backed future kept independent of
// any particular task runtime, per the design note that the concrete await
// mechanism should be chosen by the host rather than baked into the core.
package gate
