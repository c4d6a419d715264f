package effects

import (
	"context"

	"github.com/aretw0/weft/pkg/ports"
)

// Effect is one pending asynchronous unit of work. Executing it yields
// the actions it produces (possibly none). Effects never report errors
// to the loop; an effect that can fail must encode the failure as an
// action the update function understands.
type Effect[A any] func(ctx context.Context) []A

// Batch is an ordered collection of effects accumulated during one fold
// step. The zero value is the empty batch.
type Batch[A any] struct {
	effects []Effect[A]
}

// None returns the empty batch, the identity for Append.
func None[A any]() Batch[A] {
	return Batch[A]{}
}

// Of builds a batch from the given effects, preserving order.
func Of[A any](fs ...Effect[A]) Batch[A] {
	if len(fs) == 0 {
		return Batch[A]{}
	}
	return Batch[A]{effects: fs}
}

// Action returns a batch with a single effect that immediately yields
// the given action. Useful for update functions that want to feed a
// follow-up action through the normal effect path.
func Action[A any](a A) Batch[A] {
	return Of(func(context.Context) []A { return []A{a} })
}

// Append combines two batches, keeping b's effects before other's.
// Append is associative with None as identity and never drops an effect.
func (b Batch[A]) Append(other Batch[A]) Batch[A] {
	switch {
	case other.IsEmpty():
		return b
	case b.IsEmpty():
		return other
	}
	combined := make([]Effect[A], 0, len(b.effects)+len(other.effects))
	combined = append(combined, b.effects...)
	combined = append(combined, other.effects...)
	return Batch[A]{effects: combined}
}

// IsEmpty reports whether the batch holds no effects.
func (b Batch[A]) IsEmpty() bool {
	return len(b.effects) == 0
}

// Len returns the number of pending effects.
func (b Batch[A]) Len() int {
	return len(b.effects)
}

// Task derives the single runnable unit of work for this batch: running
// it resolves each effect in order and sends every produced action back
// through addr. The derivation itself is pure; nothing executes until
// the returned task runs.
func (b Batch[A]) Task(addr ports.Sender[A]) ports.Task {
	fs := b.effects
	return func(ctx context.Context) error {
		for _, f := range fs {
			actions := f(ctx)
			if len(actions) == 0 {
				continue
			}
			if err := addr.Send(ctx, actions...); err != nil {
				return err
			}
		}
		return nil
	}
}

// Map retags every action a batch produces, so a child component's
// effects can live inside a parent's batch.
func Map[A, B any](b Batch[A], transform func(A) B) Batch[B] {
	if b.IsEmpty() {
		return Batch[B]{}
	}
	mapped := make([]Effect[B], len(b.effects))
	for i, f := range b.effects {
		mapped[i] = func(ctx context.Context) []B {
			actions := f(ctx)
			out := make([]B, len(actions))
			for j, a := range actions {
				out[j] = transform(a)
			}
			return out
		}
	}
	return Batch[B]{effects: mapped}
}
