package parallel_test

import (
	"context"
	"errors"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ygrebnov/cursorseries/parallel"
)

func TestMap_PreservesOrder(t *testing.T) {
	t.Parallel()

	items := []int{5, 1, 4, 2, 3}
	results, err := parallel.Map(
		context.Background(),
		items,
		func(_ context.Context, x int) (int, error) { return x * x, nil },
		parallel.WithPreserveOrder(),
		parallel.WithFixedPool(2),
	)
	require.NoError(t, err)
	require.Equal(t, []int{25, 1, 16, 4, 9}, results)
}

func TestMap_CompletionOrder_UnorderedButComplete(t *testing.T) {
	t.Parallel()

	items := []int{1, 2, 3, 4}
	results, err := parallel.Map(
		context.Background(),
		items,
		func(_ context.Context, x int) (int, error) { return x, nil },
	)
	require.NoError(t, err)
	sort.Ints(results)
	require.Equal(t, []int{1, 2, 3, 4}, results)
}

func TestRunAll_AggregatesErrors(t *testing.T) {
	t.Parallel()

	errBoom := errors.New("boom")
	tasks := []parallel.Task[int]{
		func(context.Context) (int, error) { return 1, nil },
		func(context.Context) (int, error) { return 0, errBoom },
		func(context.Context) (int, error) { return 2, nil },
	}

	results, err := parallel.RunAll(context.Background(), tasks)
	require.Error(t, err)
	require.ErrorIs(t, err, errBoom)
	sort.Ints(results)
	require.Equal(t, []int{1, 2}, results)
}

func TestRunAll_StopOnError_SkipsRemaining(t *testing.T) {
	t.Parallel()

	errBoom := errors.New("boom")
	block := make(chan struct{})

	tasks := []parallel.Task[int]{
		func(context.Context) (int, error) { return 0, errBoom },
		func(ctx context.Context) (int, error) {
			select {
			case <-block:
				return 1, nil
			case <-ctx.Done():
				return 0, ctx.Err()
			}
		},
	}

	_, err := parallel.RunAll(context.Background(), tasks, parallel.WithStopOnError(), parallel.WithFixedPool(1))
	require.Error(t, err)
	close(block)
}
