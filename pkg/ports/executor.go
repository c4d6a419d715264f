package ports

import "context"

// Task is a single runnable unit of work derived from an effect batch.
// Running it resolves every pending effect in the batch and sends the
// resulting actions back through the loop's address.
type Task func(ctx context.Context) error

// Executor runs Tasks on behalf of the loop. Execution happens outside
// the loop's serialized timeline; any failure is the executor's own
// concern and must never surface back into the loop.
type Executor interface {
	// Execute accepts a task for (possibly asynchronous) execution.
	// It may block while the executor is saturated.
	Execute(ctx context.Context, task Task) error
}

// ExecutorFunc adapts an ordinary function to the Executor interface.
type ExecutorFunc func(ctx context.Context, task Task) error

// Execute calls f.
func (f ExecutorFunc) Execute(ctx context.Context, task Task) error {
	return f(ctx, task)
}
