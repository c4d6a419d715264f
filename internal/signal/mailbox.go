package signal

import "context"

// Mailbox is the shared action queue for one loop. Any number of
// producers may Send concurrently; a single consumer drains it with
// Receive. Sends that land while the consumer is busy are combined into
// one batch on the next Receive, so coincident emissions are processed
// as a single tick.
//
// A Mailbox is owned by the loop that constructed it. There is no
// package-level instance.
type Mailbox[T any] struct {
	ch chan []T
}

// NewMailbox creates a mailbox whose queue holds up to buffer pending
// batches before Send blocks.
func NewMailbox[T any](buffer int) *Mailbox[T] {
	if buffer < 1 {
		buffer = 1
	}
	return &Mailbox[T]{ch: make(chan []T, buffer)}
}

// Send enqueues the values as one batch. It blocks while the queue is
// full and returns ctx.Err() if the context ends first. Sending no
// values is a no-op.
func (m *Mailbox[T]) Send(ctx context.Context, values ...T) error {
	if len(values) == 0 {
		return nil
	}
	// Copy so the caller can reuse its slice.
	batch := make([]T, len(values))
	copy(batch, values)

	select {
	case m.ch <- batch:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Receive blocks for the next pending batch, then drains every batch
// already enqueued into a single combined batch, preserving arrival
// order. It returns nil when ctx ends.
func (m *Mailbox[T]) Receive(ctx context.Context) []T {
	var combined []T
	select {
	case batch := <-m.ch:
		combined = batch
	case <-ctx.Done():
		return nil
	}

	for {
		select {
		case batch := <-m.ch:
			combined = append(combined, batch...)
		default:
			return combined
		}
	}
}
