package weft

import (
	"context"

	"github.com/aretw0/weft/pkg/effects"
	"github.com/aretw0/weft/pkg/ports"
)

// SimpleConfig describes an application whose update never produces
// effects.
type SimpleConfig[M, A, O any] struct {
	Model  M
	Update func(action A, model M) M
	View   View[M, A, O]
	Inputs []ports.Source[A]
}

// StartSimple wraps a pure (action, model) -> model update in the
// general loop contract, pairing every result with an empty effect
// batch. It is a facade over Start, not a second implementation: the
// fold, batching, and output projection behave identically.
func StartSimple[M, A, O any](ctx context.Context, cfg SimpleConfig[M, A, O], opts ...Option) *App[M, A, O] {
	update := func(a A, m M) (M, effects.Batch[A]) {
		return cfg.Update(a, m), effects.None[A]()
	}
	return Start(ctx, Config[M, A, O]{
		Model:  cfg.Model,
		Update: update,
		View:   cfg.View,
		Inputs: cfg.Inputs,
	}, opts...)
}
