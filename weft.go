package weft

import (
	"context"
	"log/slog"

	"github.com/aretw0/weft/internal/runtime"
	"github.com/aretw0/weft/pkg/domain"
	"github.com/aretw0/weft/pkg/effects"
	"github.com/aretw0/weft/pkg/ports"
)

// Update folds one action into the model, producing the next model and
// a batch of effect descriptions. It must be total over its action type
// and must not mutate the model it receives; any panic propagates and
// halts the loop.
type Update[M, A any] func(action A, model M) (M, effects.Batch[A])

// View projects the model into the output value. It receives the App's
// stable address so the produced output can route actions back into the
// loop, and it must be pure: same (address, model), same output.
type View[M, A, O any] func(addr ports.Sender[A], model M) O

// Config describes an effectful application.
type Config[M, A, O any] struct {
	// Model and Effects seed the loop: the initial model, plus effects
	// to drain before any action is processed.
	Model   M
	Effects effects.Batch[A]

	Update Update[M, A]
	View   View[M, A, O]

	// Inputs are external action sources merged into the same stream as
	// view-sent actions and effect completions.
	Inputs []ports.Source[A]
}

// settings are the option-configurable knobs shared by Start and
// StartSimple.
type settings struct {
	logger        *slog.Logger
	hooks         domain.LifecycleHooks
	mailboxBuffer int
	taskBuffer    int
}

// Option configures an App at start time.
type Option func(*settings)

// WithLogger sets a structured logger for loop diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(s *settings) { s.logger = logger }
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(s *settings) { s.hooks = hooks }
}

// WithMailboxBuffer bounds how many pending action batches the mailbox
// holds before senders block.
func WithMailboxBuffer(n int) Option {
	return func(s *settings) { s.mailboxBuffer = n }
}

// WithTaskBuffer bounds how many undelivered tasks may queue before the
// loop blocks waiting for the host to consume them.
func WithTaskBuffer(n int) Option {
	return func(s *settings) { s.taskBuffer = n }
}

// App is the running module handle. It groups the three observable
// values the loop produces: the rendered output, the model, and the
// stream of runnable tasks.
type App[M, A, O any] struct {
	loop *runtime.Loop[M, A, O]
}

// Start constructs the loop from cfg and launches it. The loop, its
// mailbox, and its input sources run until ctx is cancelled.
func Start[M, A, O any](ctx context.Context, cfg Config[M, A, O], opts ...Option) *App[M, A, O] {
	var s settings
	for _, opt := range opts {
		opt(&s)
	}

	loop := runtime.New(runtime.Config[M, A, O]{
		Model:         cfg.Model,
		Effects:       cfg.Effects,
		Update:        cfg.Update,
		View:          cfg.View,
		Inputs:        cfg.Inputs,
		Hooks:         s.hooks,
		Logger:        s.logger,
		MailboxBuffer: s.mailboxBuffer,
		TaskBuffer:    s.taskBuffer,
	})
	loop.Start(ctx)
	return &App[M, A, O]{loop: loop}
}

// Address returns the handle through which actions enter the loop.
// Sending wraps the actions as one batch and merges it into the shared
// stream; no validation is performed.
func (a *App[M, A, O]) Address() ports.Sender[A] {
	return a.loop.Address()
}

// CurrentModel samples the latest model.
func (a *App[M, A, O]) CurrentModel() M {
	return a.loop.Model().Latest()
}

// Model watches the model through time, starting with the current
// value. Intended for diagnostics and advanced embedding; most hosts
// only need Output.
func (a *App[M, A, O]) Model(ctx context.Context) <-chan M {
	return a.loop.Model().Watch(ctx)
}

// CurrentOutput samples the latest rendered output.
func (a *App[M, A, O]) CurrentOutput() O {
	return a.loop.Output().Latest()
}

// Output watches the rendered output through time, starting with the
// current value.
func (a *App[M, A, O]) Output(ctx context.Context) <-chan O {
	return a.loop.Output().Watch(ctx)
}

// Tasks is the stream of derived units of work, one per step that
// accumulated effects, in step order. The host must feed it into an
// executor or accumulated effects are silently never run.
func (a *App[M, A, O]) Tasks() <-chan ports.Task {
	return a.loop.Tasks()
}

// Done closes once the loop has stopped.
func (a *App[M, A, O]) Done() <-chan struct{} {
	return a.loop.Done()
}
