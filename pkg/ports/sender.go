package ports

import "context"

// Sender is the address through which actions are delivered to a loop.
// Implementations must be safe for concurrent use: the view, external
// sources, and effect completions all share one Sender.
//
// Each call enqueues the given actions as a single batch; the loop's
// mailbox decides how concurrent batches coalesce into ticks.
type Sender[A any] interface {
	// Send enqueues the actions for a later tick.
	// It blocks only if the underlying mailbox is full, and returns the
	// context error if ctx ends before the actions are accepted.
	Send(ctx context.Context, actions ...A) error
}

// SenderFunc adapts an ordinary function to the Sender interface.
type SenderFunc[A any] func(ctx context.Context, actions ...A) error

// Send calls f.
func (f SenderFunc[A]) Send(ctx context.Context, actions ...A) error {
	return f(ctx, actions...)
}

// Forward returns a Sender that transforms each value before passing it on.
// This is how a nested component's actions are retagged into the parent's
// action type without the component knowing about the parent.
func Forward[B, A any](next Sender[A], transform func(B) A) Sender[B] {
	return SenderFunc[B](func(ctx context.Context, values ...B) error {
		actions := make([]A, len(values))
		for i, v := range values {
			actions[i] = transform(v)
		}
		return next.Send(ctx, actions...)
	})
}
