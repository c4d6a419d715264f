package domain

import (
	"context"
	"time"
)

// StepEvent describes one completed fold step.
type StepEvent struct {
	Seq      int64         // Step number, starting at 1
	Actions  int           // Actions applied in this batch
	Effects  int           // Effects accumulated by this batch
	Duration time.Duration // Wall time spent inside the fold
}

// TaskEvent describes one unit of work handed to the tasks stream.
type TaskEvent struct {
	Seq     int64 // Step the task was derived from (0 for the initial batch)
	Effects int   // Effects resolved by this task
}

// SourceEvent describes an input source that stopped running.
type SourceEvent struct {
	Name string
	Err  error // nil on clean shutdown
}

// LifecycleHooks defines optional callbacks for loop observability.
// Any field may be nil. Hooks run on the loop goroutine and must return
// quickly; they are a diagnostic surface, not an extension point.
type LifecycleHooks struct {
	OnStep       func(context.Context, *StepEvent)
	OnTask       func(context.Context, *TaskEvent)
	OnSourceDone func(context.Context, *SourceEvent)
}
