package parallel

import "context"

// Map applies fn to each item concurrently and returns the results together
// with any aggregated errors. With WithPreserveOrder, results are returned
// in input order; otherwise in completion order.
func Map[T, R any](ctx context.Context, items []T, fn func(context.Context, T) (R, error), opts ...Option) ([]R, error) {
	if len(items) == 0 {
		return nil, nil
	}
	tasks := make([]Task[R], len(items))
	for i := range items {
		item := items[i]
		tasks[i] = func(c context.Context) (R, error) { return fn(c, item) }
	}
	return RunAll[R](ctx, tasks, opts...)
}
