package runner

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aretw0/weft"
	"github.com/aretw0/weft/internal/logging"
	"github.com/aretw0/weft/pkg/adapters/execpool"
	"github.com/aretw0/weft/pkg/ports"
)

// OutputHandler receives each rendered output value. This is where a
// host plugs in its display: terminal writer, test recorder, frame
// diffing, anything.
type OutputHandler[O any] interface {
	Render(ctx context.Context, output O) error
}

// OutputFunc adapts an ordinary function to the OutputHandler interface.
type OutputFunc[O any] func(ctx context.Context, output O) error

// Render calls f.
func (f OutputFunc[O]) Render(ctx context.Context, output O) error {
	return f(ctx, output)
}

// Runner drives a started App: it feeds the task stream into an
// executor, forwards every rendered output to the handler, and wires OS
// signals to shutdown. Fields may be set between New and Run.
type Runner[M, A, O any] struct {
	// Output receives every rendered value, starting with the current
	// one. If nil, output is ignored (model-only embedding).
	Output OutputHandler[O]

	// Executor runs the App's tasks. If nil, Run starts a default
	// worker pool; without one, accumulated effects would never run.
	Executor ports.Executor

	// Workers sizes the default pool (ignored when Executor is set).
	Workers int

	// Logger is used for internal debug logging. If nil, a no-op
	// logger is used.
	Logger *slog.Logger

	app *weft.App[M, A, O]
}

// New creates a Runner for a started App.
func New[M, A, O any](app *weft.App[M, A, O]) *Runner[M, A, O] {
	return &Runner[M, A, O]{
		app:     app,
		Workers: 4,
		Logger:  logging.NewNop(),
	}
}

// Run drives the App until ctx is cancelled, an interrupt arrives, or
// the App stops. A signal- or context-triggered shutdown is a clean
// exit; only output-handler failures surface as errors.
func (r *Runner[M, A, O]) Run(ctx context.Context) error {
	signals := NewSignalManager(ctx)
	defer signals.Stop()
	runCtx := signals.Context()

	executor := r.Executor
	if executor == nil {
		pool := execpool.New(16, execpool.WithLogger(r.Logger))
		go pool.Run(runCtx, r.Workers)
		executor = pool
	}

	// Task feed: the loop closes Tasks when it stops, ending this
	// goroutine with it.
	go func() {
		for task := range r.app.Tasks() {
			if err := executor.Execute(runCtx, task); err != nil {
				if runCtx.Err() == nil {
					r.Logger.Warn("executor rejected task", "error", err)
				}
				return
			}
		}
	}()

	if r.Output == nil {
		select {
		case <-runCtx.Done():
		case <-r.app.Done():
		}
		return nil
	}

	outputs := r.app.Output(runCtx)
	for {
		select {
		case out := <-outputs:
			if err := r.Output.Render(runCtx, out); err != nil {
				return fmt.Errorf("output handler: %w", err)
			}
		case <-runCtx.Done():
			r.Logger.Debug("runner stopped", "reason", runCtx.Err())
			return nil
		case <-r.app.Done():
			return nil
		}
	}
}
