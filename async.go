package cursorseries

import (
	"context"
	"fmt"
)

// AsyncMoveNext implements MoveNextAsync in terms of a sync MoveNext and a
// source's Updated wake-up token. The combinator cursors in this package
// and memseries.Series's cursor build their MoveNextAsync on this one loop
// rather than reimplementing it; the always-readonly Empty and batch
// snapshot cursors answer directly from a sync move.
//
// Cancellation returns an error wrapping both ErrCancelled and ctx.Err().
//
// The loop: try the synchronous move; if it succeeds, done. If not, and the
// source is already readonly, there will never be more data — done, false.
// Otherwise wait for the source's next update (or ctx) and retry. Because
// Updated's completion carries no payload distinguishing "new data" from
// "became readonly", the loop always re-checks both conditions itself
// rather than trusting the future's result.
func AsyncMoveNext[K, V any](ctx context.Context, src Series[K, V], moveNext func() bool) (bool, error) {
	for {
		if moveNext() {
			return true, nil
		}
		if src.IsReadonly() {
			return false, nil
		}

		token := src.Updated()
		select {
		case <-token.Done():
			// fall through and retry the synchronous move
		case <-ctx.Done():
			return false, fmt.Errorf("%w: %w", ErrCancelled, ctx.Err())
		}
	}
}
