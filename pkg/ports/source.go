package ports

import "context"

// Source is an external stream of actions fed into a loop alongside the
// actions emitted by the view and by effect completions.
//
// Each source carries a name so the provenance of an action stream is
// traceable in logs and tests; the loop itself does not interpret it.
type Source[A any] interface {
	// Name identifies the source for logging and diagnostics.
	Name() string

	// Run pushes actions through send until ctx ends. It must return
	// ctx.Err() (or nil) on cancellation rather than blocking forever.
	Run(ctx context.Context, send Sender[A]) error
}

// SourceFunc builds a Source from a name and a run function.
func SourceFunc[A any](name string, run func(ctx context.Context, send Sender[A]) error) Source[A] {
	return funcSource[A]{name: name, run: run}
}

type funcSource[A any] struct {
	name string
	run  func(ctx context.Context, send Sender[A]) error
}

func (s funcSource[A]) Name() string { return s.name }

func (s funcSource[A]) Run(ctx context.Context, send Sender[A]) error {
	return s.run(ctx, send)
}
