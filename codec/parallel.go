package codec

import (
	"context"

	"github.com/ygrebnov/cursorseries/parallel"
)

// DecodeInt64ArraysParallel decodes several independent frames concurrently
// using the shared task-runner rather than a sequential loop — the natural
// shape for materializing a row-group's many int64 column frames at once.
// Results are returned in input order; the first frame to fail cancels the
// rest via ctx.
func (r *Reader) DecodeInt64ArraysParallel(ctx context.Context, frames [][]byte) ([][]int64, error) {
	return parallel.Map(ctx, frames, func(_ context.Context, frame []byte) ([]int64, error) {
		return r.DecodeInt64Array(frame)
	}, parallel.WithPreserveOrder(), parallel.WithStopOnError())
}

// DecodeFloat64ArraysParallel is DecodeInt64ArraysParallel's float64 counterpart.
func (r *Reader) DecodeFloat64ArraysParallel(ctx context.Context, frames [][]byte) ([][]float64, error) {
	return parallel.Map(ctx, frames, func(_ context.Context, frame []byte) ([]float64, error) {
		return r.DecodeFloat64Array(frame)
	}, parallel.WithPreserveOrder(), parallel.WithStopOnError())
}
