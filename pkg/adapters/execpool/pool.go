// Package execpool provides executors for the loop's task stream: a
// bounded worker pool for real hosts and an inline executor for tests.
package execpool

import (
	"context"
	"log/slog"
	"sync"

	"github.com/aretw0/weft/internal/logging"
	"github.com/aretw0/weft/pkg/ports"
)

// Pool executes tasks on a fixed set of worker goroutines. Task results
// re-enter the loop through the address each task already carries, so
// the pool itself never touches actions. Task errors are logged and
// swallowed: effect execution failures are invisible to the loop.
type Pool struct {
	queue  chan ports.Task
	logger *slog.Logger

	wg sync.WaitGroup
}

// Option configures a Pool.
type Option func(*Pool)

// WithLogger sets the logger used to report task errors.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pool) { p.logger = logger }
}

// New creates a pool with the given queue capacity. Workers are started
// by Run.
func New(queueSize int, opts ...Option) *Pool {
	if queueSize < 1 {
		queueSize = 16
	}
	p := &Pool{
		queue:  make(chan ports.Task, queueSize),
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Run starts workers goroutines that consume the queue until ctx ends,
// then waits for in-flight tasks to finish. It blocks; run it in its
// own goroutine.
func (p *Pool) Run(ctx context.Context, workers int) {
	if workers < 1 {
		workers = 1
	}
	for range workers {
		p.wg.Add(1)
		go p.worker(ctx)
	}
	p.wg.Wait()
}

func (p *Pool) worker(ctx context.Context) {
	defer p.wg.Done()
	for {
		select {
		case task := <-p.queue:
			if err := task(ctx); err != nil && ctx.Err() == nil {
				p.logger.Warn("task failed", "error", err)
			}
		case <-ctx.Done():
			return
		}
	}
}

// Execute enqueues a task for a worker. It blocks while the queue is
// full and returns ctx.Err() if the context ends first.
func (p *Pool) Execute(ctx context.Context, task ports.Task) error {
	select {
	case p.queue <- task:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Inline returns an executor that runs each task synchronously on the
// caller's goroutine. Deterministic, single-flight: useful in tests and
// simple hosts.
func Inline() ports.Executor {
	return ports.ExecutorFunc(func(ctx context.Context, task ports.Task) error {
		// The task's own failure stays the executor's concern.
		_ = task(ctx)
		return nil
	})
}
