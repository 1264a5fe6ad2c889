package parallel

import (
	"context"
	"time"

	"github.com/ygrebnov/cursorseries/metrics"
)

type indexedTask[R any] struct {
	idx int
	run Task[R]
}

type completionEvent[R any] struct {
	idx  int
	val  R
	err  error
	fail bool
}

// executor runs one task at a time and reports its outcome. Runner keeps a
// pool of these (fixed or dynamic) so task goroutines reuse state instead of
// being constructed from scratch for every submission.
type executor[R any] struct {
	m metrics.Provider
}

func newExecutor[R any](m metrics.Provider) func() interface{} {
	return func() interface{} { return &executor[R]{m: m} }
}

func (e *executor[R]) execute(ctx context.Context, t indexedTask[R]) completionEvent[R] {
	start := time.Now()
	val, err := t.run.run(ctx)
	e.m.Histogram("parallel.task.duration_seconds").Record(time.Since(start).Seconds())
	if err != nil {
		e.m.Counter("parallel.tasks.errored").Add(1)
		return completionEvent[R]{idx: t.idx, err: err, fail: true}
	}
	e.m.Counter("parallel.tasks.completed").Add(1)
	return completionEvent[R]{idx: t.idx, val: val}
}
