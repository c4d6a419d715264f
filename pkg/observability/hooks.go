package observability

import (
	"context"
	"log/slog"

	"github.com/aretw0/weft/pkg/domain"
)

// Combine merges hook sets into one. Callbacks run in the order the
// sets were given; nil callbacks are skipped.
func Combine(sets ...domain.LifecycleHooks) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnStep: func(ctx context.Context, ev *domain.StepEvent) {
			for _, h := range sets {
				if h.OnStep != nil {
					h.OnStep(ctx, ev)
				}
			}
		},
		OnTask: func(ctx context.Context, ev *domain.TaskEvent) {
			for _, h := range sets {
				if h.OnTask != nil {
					h.OnTask(ctx, ev)
				}
			}
		},
		OnSourceDone: func(ctx context.Context, ev *domain.SourceEvent) {
			for _, h := range sets {
				if h.OnSourceDone != nil {
					h.OnSourceDone(ctx, ev)
				}
			}
		},
	}
}

// LogHooks mirrors every lifecycle event into logger at debug level
// (warn for sources stopping with an error).
func LogHooks(logger *slog.Logger) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnStep: func(ctx context.Context, ev *domain.StepEvent) {
			logger.DebugContext(ctx, "step",
				"seq", ev.Seq,
				"actions", ev.Actions,
				"effects", ev.Effects,
				"duration", ev.Duration,
			)
		},
		OnTask: func(ctx context.Context, ev *domain.TaskEvent) {
			logger.DebugContext(ctx, "task emitted", "seq", ev.Seq, "effects", ev.Effects)
		},
		OnSourceDone: func(ctx context.Context, ev *domain.SourceEvent) {
			if ev.Err != nil && ev.Err != context.Canceled {
				logger.WarnContext(ctx, "source stopped", "source", ev.Name, "error", ev.Err)
				return
			}
			logger.DebugContext(ctx, "source done", "source", ev.Name)
		},
	}
}
