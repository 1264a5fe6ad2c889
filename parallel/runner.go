package parallel

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/ygrebnov/cursorseries/metrics"
	"github.com/ygrebnov/cursorseries/parallel/pool"
)

// Runner executes submitted tasks concurrently and delivers their results
// and errors on channels. A Runner must be started once via Start before
// Submit is called, and closed via Close once no further tasks will be
// submitted.
type Runner[R any] struct {
	cfg     Config
	metrics metrics.Provider

	startOnce sync.Once
	closeOnce sync.Once

	runCtx   context.Context
	cancel   context.CancelFunc
	pool     pool.Pool
	tasks    chan indexedTask[R]
	events   chan completionEvent[R]
	inflight sync.WaitGroup

	results chan R
	errs    chan error

	nextIdx atomic.Int64
	reord   *reorderer[R]
}

// NewOptions constructs a Runner from functional options.
func NewOptions[R any](opts ...Option) *Runner[R] {
	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}
	return New[R](cfg)
}

// New constructs a Runner from an explicit Config.
func New[R any](cfg Config) *Runner[R] {
	r := &Runner[R]{
		cfg:     cfg,
		metrics: metrics.NewNoopProvider(),
		tasks:   make(chan indexedTask[R]),
		events:  make(chan completionEvent[R], cfg.ResultsBufferSize),
		results: make(chan R, cfg.ResultsBufferSize),
		errs:    make(chan error, cfg.ErrorsBufferSize),
	}
	if cfg.PreserveOrder {
		r.reord = newReorderer[R](r.events, r.results, r.errs)
	}

	newExec := newExecutor[R](r.metrics)
	if cfg.MaxWorkers > 0 {
		r.pool = pool.NewFixed(cfg.MaxWorkers, newExec)
	} else {
		r.pool = pool.NewDynamic(newExec)
	}
	return r
}

// WithMetrics attaches a metrics.Provider the Runner reports task counts and
// durations to. Must be called before Start.
func (r *Runner[R]) WithMetrics(m metrics.Provider) *Runner[R] {
	r.metrics = m
	// Executors capture their provider when created, so rebuild the pool.
	newExec := newExecutor[R](m)
	if r.cfg.MaxWorkers > 0 {
		r.pool = pool.NewFixed(r.cfg.MaxWorkers, newExec)
	} else {
		r.pool = pool.NewDynamic(newExec)
	}
	return r
}

// Start begins dispatching submitted tasks. Start may be called only once;
// subsequent calls are no-ops.
func (r *Runner[R]) Start(ctx context.Context) {
	r.startOnce.Do(func() {
		r.runCtx, r.cancel = context.WithCancel(ctx)

		if r.cfg.PreserveOrder {
			go r.reord.run()
		} else {
			go r.forwardUnordered()
		}

		go r.dispatch(r.runCtx)
	})
}

func (r *Runner[R]) forwardUnordered() {
	for ev := range r.events {
		if ev.fail {
			r.errs <- ev.err
			continue
		}
		r.results <- ev.val
	}
}

func (r *Runner[R]) dispatch(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case t := <-r.tasks:
			r.inflight.Add(1)
			go func(t indexedTask[R]) {
				defer r.inflight.Done()
				ex := r.pool.Get().(*executor[R])
				ev := ex.execute(ctx, t)
				r.pool.Put(ex)
				r.events <- ev
				if ev.fail && r.cfg.StopOnError {
					r.cancel()
				}
			}(t)
		}
	}
}

// Submit enqueues a task for execution. It returns ErrInvalidState if the
// runner has not been started, or if dispatch has already stopped (e.g.
// WithStopOnError canceled it) before this task could be handed off.
func (r *Runner[R]) Submit(t Task[R]) error {
	if r.cancel == nil {
		return ErrInvalidState
	}
	idx := int(r.nextIdx.Add(1) - 1)
	select {
	case r.tasks <- indexedTask[R]{idx: idx, run: t}:
		r.metrics.Counter("parallel.tasks.submitted").Add(1)
		return nil
	case <-r.runCtx.Done():
		return ErrInvalidState
	}
}

// Results returns the channel results are delivered on.
func (r *Runner[R]) Results() <-chan R { return r.results }

// Errors returns the channel task errors are delivered on.
func (r *Runner[R]) Errors() <-chan error { return r.errs }

// Close cancels dispatch, waits for in-flight tasks, and closes the
// internal events pipe and public channels. Close is idempotent.
func (r *Runner[R]) Close() {
	r.closeOnce.Do(func() {
		if r.cancel != nil {
			r.cancel()
		}
		r.inflight.Wait()
		close(r.events)
		if r.cfg.PreserveOrder {
			r.reord.wait()
		}
		close(r.results)
		close(r.errs)
	})
}
