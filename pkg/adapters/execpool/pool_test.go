package execpool

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/aretw0/weft/pkg/ports"
)

func TestPoolRunsQueuedTasks(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	p := New(8)
	go p.Run(ctx, 2)

	var ran atomic.Int64
	for range 5 {
		err := p.Execute(ctx, func(context.Context) error {
			ran.Add(1)
			return nil
		})
		if err != nil {
			t.Fatalf("execute failed: %v", err)
		}
	}

	deadline := time.Now().Add(2 * time.Second)
	for ran.Load() != 5 {
		if time.Now().After(deadline) {
			t.Fatalf("only %d of 5 tasks ran", ran.Load())
		}
		time.Sleep(time.Millisecond)
	}
}

func TestPoolSwallowsTaskErrors(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	p := New(1)
	go p.Run(ctx, 1)

	var after atomic.Bool
	if err := p.Execute(ctx, func(context.Context) error {
		return errors.New("effect blew up")
	}); err != nil {
		t.Fatal(err)
	}
	if err := p.Execute(ctx, func(context.Context) error {
		after.Store(true)
		return nil
	}); err != nil {
		t.Fatal(err)
	}

	deadline := time.Now().Add(2 * time.Second)
	for !after.Load() {
		if time.Now().After(deadline) {
			t.Fatal("worker died after a task error")
		}
		time.Sleep(time.Millisecond)
	}
}

func TestExecuteUnblocksOnCancel(t *testing.T) {
	// No workers running: the queue fills and Execute must respect ctx.
	p := New(1)
	ctx := context.Background()
	if err := p.Execute(ctx, func(context.Context) error { return nil }); err != nil {
		t.Fatal(err)
	}

	cancelCtx, cancel := context.WithTimeout(ctx, 20*time.Millisecond)
	defer cancel()
	err := p.Execute(cancelCtx, func(context.Context) error { return nil })
	if err == nil {
		t.Fatal("expected context error on full queue")
	}
}

func TestInlineExecutorIsSynchronous(t *testing.T) {
	ran := false
	err := Inline().Execute(context.Background(), func(context.Context) error {
		ran = true
		return errors.New("ignored")
	})
	if err != nil {
		t.Fatalf("inline executor surfaced a task error: %v", err)
	}
	if !ran {
		t.Fatal("task did not run synchronously")
	}
}

var _ ports.Executor = (*Pool)(nil)
