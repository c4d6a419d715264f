// Package metrics exposes loop lifecycle events as Prometheus metrics.
package metrics

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/aretw0/weft/pkg/domain"
)

// Collector turns lifecycle events into Prometheus metrics. Register it
// with an App via weft.WithLifecycleHooks(collector.Hooks()).
type Collector struct {
	steps       prometheus.Counter
	actions     prometheus.Counter
	effects     prometheus.Counter
	tasks       prometheus.Counter
	sourceStops *prometheus.CounterVec
	batchSize   prometheus.Histogram
	stepSeconds prometheus.Histogram
}

// New creates a Collector and registers its metrics with reg.
func New(reg prometheus.Registerer) *Collector {
	c := &Collector{
		steps: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "weft",
			Name:      "steps_total",
			Help:      "Fold steps processed.",
		}),
		actions: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "weft",
			Name:      "actions_total",
			Help:      "Actions folded into the model.",
		}),
		effects: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "weft",
			Name:      "effects_total",
			Help:      "Effects accumulated across steps.",
		}),
		tasks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "weft",
			Name:      "tasks_total",
			Help:      "Units of work handed to the tasks stream.",
		}),
		sourceStops: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "weft",
			Name:      "source_stops_total",
			Help:      "Input sources that stopped, by source name.",
		}, []string{"source"}),
		batchSize: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "weft",
			Name:      "batch_size",
			Help:      "Actions per fold step.",
			Buckets:   []float64{1, 2, 4, 8, 16, 32, 64},
		}),
		stepSeconds: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "weft",
			Name:      "step_duration_seconds",
			Help:      "Wall time spent inside the fold step.",
			Buckets:   prometheus.DefBuckets,
		}),
	}
	reg.MustRegister(c.steps, c.actions, c.effects, c.tasks, c.sourceStops, c.batchSize, c.stepSeconds)
	return c
}

// Hooks returns the lifecycle hooks backed by this collector.
func (c *Collector) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnStep: func(_ context.Context, ev *domain.StepEvent) {
			c.steps.Inc()
			c.actions.Add(float64(ev.Actions))
			c.effects.Add(float64(ev.Effects))
			c.batchSize.Observe(float64(ev.Actions))
			c.stepSeconds.Observe(ev.Duration.Seconds())
		},
		OnTask: func(_ context.Context, _ *domain.TaskEvent) {
			c.tasks.Inc()
		},
		OnSourceDone: func(_ context.Context, ev *domain.SourceEvent) {
			c.sourceStops.WithLabelValues(ev.Name).Inc()
		},
	}
}
