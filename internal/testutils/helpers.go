package testutils

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/aretw0/weft/pkg/ports"
)

// RecordingSender is a Sender that appends everything it receives.
// Safe for concurrent use. It fails nothing; assertions belong to the
// test that owns it.
type RecordingSender[A any] struct {
	mu      sync.Mutex
	actions []A
}

// NewRecordingSender creates an empty recorder.
func NewRecordingSender[A any]() *RecordingSender[A] {
	return &RecordingSender[A]{}
}

// Send records the actions.
func (r *RecordingSender[A]) Send(_ context.Context, actions ...A) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.actions = append(r.actions, actions...)
	return nil
}

// Actions returns a copy of everything recorded so far.
func (r *RecordingSender[A]) Actions() []A {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]A, len(r.actions))
	copy(out, r.actions)
	return out
}

var _ ports.Sender[int] = (*RecordingSender[int])(nil)

// WaitFor reads ch until want appears or the deadline passes, failing
// the test on timeout.
func WaitFor[T comparable](t *testing.T, ch <-chan T, want T) {
	t.Helper()
	deadline := time.After(2 * time.Second)
	for {
		select {
		case got := <-ch:
			if got == want {
				return
			}
		case <-deadline:
			t.Fatalf("never observed %v", want)
		}
	}
}

// Eventually polls cond every millisecond until it holds, failing the
// test after the deadline.
func Eventually(t *testing.T, cond func() bool, msg string) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatal(msg)
		}
		time.Sleep(time.Millisecond)
	}
}
