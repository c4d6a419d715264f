package effects

import (
	"context"
	"reflect"
	"testing"

	"github.com/aretw0/weft/pkg/ports"
)

// collect runs a batch's task against a recording sender and returns the
// actions in the order they were sent.
func collect(t *testing.T, b Batch[string]) []string {
	t.Helper()
	var got []string
	addr := ports.SenderFunc[string](func(_ context.Context, actions ...string) error {
		got = append(got, actions...)
		return nil
	})
	if err := b.Task(addr)(context.Background()); err != nil {
		t.Fatalf("task failed: %v", err)
	}
	return got
}

func yield(actions ...string) Effect[string] {
	return func(context.Context) []string { return actions }
}

func TestNoneIsIdentity(t *testing.T) {
	b := Of(yield("a"), yield("b"))

	left := None[string]().Append(b)
	right := b.Append(None[string]())

	if !reflect.DeepEqual(collect(t, left), []string{"a", "b"}) {
		t.Errorf("None.Append(b) changed the batch")
	}
	if !reflect.DeepEqual(collect(t, right), []string{"a", "b"}) {
		t.Errorf("b.Append(None) changed the batch")
	}
	if !None[string]().IsEmpty() {
		t.Error("None should be empty")
	}
}

func TestAppendIsAssociativeAndOrdered(t *testing.T) {
	e1 := Of(yield("1"))
	e2 := Of(yield("2"))
	e3 := Of(yield("3"))

	// (e1 ++ e2) ++ e3 vs e1 ++ (e2 ++ e3)
	leftFirst := e1.Append(e2).Append(e3)
	rightFirst := e1.Append(e2.Append(e3))

	want := []string{"1", "2", "3"}
	if got := collect(t, leftFirst); !reflect.DeepEqual(got, want) {
		t.Errorf("left-associated order = %v, want %v", got, want)
	}
	if got := collect(t, rightFirst); !reflect.DeepEqual(got, want) {
		t.Errorf("right-associated order = %v, want %v", got, want)
	}

	if leftFirst.Len() != 3 {
		t.Errorf("expected 3 effects, got %d", leftFirst.Len())
	}
}

func TestTaskSkipsEmptyResults(t *testing.T) {
	calls := 0
	addr := ports.SenderFunc[string](func(_ context.Context, actions ...string) error {
		calls++
		return nil
	})

	b := Of(yield(), yield("x"), yield())
	if err := b.Task(addr)(context.Background()); err != nil {
		t.Fatalf("task failed: %v", err)
	}
	if calls != 1 {
		t.Errorf("expected 1 send for the non-empty effect, got %d", calls)
	}
}

func TestActionYieldsSingleAction(t *testing.T) {
	got := collect(t, Action("ping"))
	if !reflect.DeepEqual(got, []string{"ping"}) {
		t.Errorf("Action batch produced %v", got)
	}
}

func TestMapRetagsActions(t *testing.T) {
	type parent struct{ child string }

	b := Map(Of(yield("a", "b")), func(s string) parent { return parent{child: s} })

	var got []parent
	addr := ports.SenderFunc[parent](func(_ context.Context, actions ...parent) error {
		got = append(got, actions...)
		return nil
	})
	if err := b.Task(addr)(context.Background()); err != nil {
		t.Fatalf("task failed: %v", err)
	}
	want := []parent{{child: "a"}, {child: "b"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("mapped actions = %v, want %v", got, want)
	}
}
