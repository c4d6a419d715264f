package weft_test

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/aretw0/weft"
	"github.com/aretw0/weft/internal/testutils"
	"github.com/aretw0/weft/pkg/domain"
	"github.com/aretw0/weft/pkg/effects"
	"github.com/aretw0/weft/pkg/ports"
)

type counterAction int

const (
	increment counterAction = iota
	decrement
)

func counterUpdate(a counterAction, m int) (int, effects.Batch[counterAction]) {
	switch a {
	case increment:
		return m + 1, effects.None[counterAction]()
	case decrement:
		return m - 1, effects.None[counterAction]()
	}
	return m, effects.None[counterAction]()
}

func counterView(_ ports.Sender[counterAction], m int) string {
	return fmt.Sprintf("count: %d", m)
}

func TestCounterScenario(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	app := weft.Start(ctx, weft.Config[int, counterAction, string]{
		Model:  0,
		Update: counterUpdate,
		View:   counterView,
	})

	if err := app.Address().Send(ctx, increment, increment, decrement); err != nil {
		t.Fatalf("send failed: %v", err)
	}
	testutils.WaitFor(t, app.Model(ctx), 1)

	if got := app.CurrentOutput(); got != "count: 1" {
		t.Errorf("output = %q, want %q", got, "count: 1")
	}
}

func TestInputSourcesFeedTheLoop(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	src := ports.SourceFunc("test-feed", func(ctx context.Context, send ports.Sender[counterAction]) error {
		return send.Send(ctx, increment, increment)
	})

	app := weft.Start(ctx, weft.Config[int, counterAction, string]{
		Model:  0,
		Update: counterUpdate,
		View:   counterView,
		Inputs: []ports.Source[counterAction]{src},
	})

	testutils.WaitFor(t, app.Model(ctx), 2)
}

func TestLifecycleHooksObserveSteps(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var steps atomic.Int64
	hooks := domain.LifecycleHooks{
		OnStep: func(_ context.Context, ev *domain.StepEvent) {
			steps.Add(1)
			if ev.Actions < 1 {
				t.Errorf("step with %d actions", ev.Actions)
			}
		},
	}

	app := weft.Start(ctx, weft.Config[int, counterAction, string]{
		Model:  0,
		Update: counterUpdate,
		View:   counterView,
	}, weft.WithLifecycleHooks(hooks))

	if err := app.Address().Send(ctx, increment); err != nil {
		t.Fatal(err)
	}
	testutils.WaitFor(t, app.Model(ctx), 1)

	if steps.Load() == 0 {
		t.Error("OnStep hook never fired")
	}
}

func TestViewPurity(t *testing.T) {
	// Calling the view twice with the same (address, model) pair must
	// yield indistinguishable outputs and cause no sends on its own.
	var sends atomic.Int64
	addr := ports.SenderFunc[counterAction](func(_ context.Context, _ ...counterAction) error {
		sends.Add(1)
		return nil
	})

	first := counterView(addr, 5)
	second := counterView(addr, 5)

	if first != second {
		t.Errorf("view not referentially stable: %q vs %q", first, second)
	}
	if sends.Load() != 0 {
		t.Errorf("view alone caused %d sends", sends.Load())
	}
}

func TestForwardRetagsBeforeEnqueue(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	type wrapped struct{ inner counterAction }

	app := weft.Start(ctx, weft.Config[wrapped, wrapped, string]{
		Model: wrapped{},
		Update: func(a wrapped, _ wrapped) (wrapped, effects.Batch[wrapped]) {
			return a, effects.None[wrapped]()
		},
		View: func(_ ports.Sender[wrapped], m wrapped) string {
			return fmt.Sprint(m.inner)
		},
	})

	child := ports.Forward(app.Address(), func(a counterAction) wrapped {
		return wrapped{inner: a}
	})
	if err := child.Send(ctx, decrement); err != nil {
		t.Fatal(err)
	}
	testutils.WaitFor(t, app.Model(ctx), wrapped{inner: decrement})
}
