package runtime

import (
	"context"
	"log/slog"
	"time"

	"github.com/aretw0/weft/internal/logging"
	"github.com/aretw0/weft/internal/signal"
	"github.com/aretw0/weft/pkg/domain"
	"github.com/aretw0/weft/pkg/effects"
	"github.com/aretw0/weft/pkg/ports"
)

// Config carries everything a Loop needs at construction time.
type Config[M, A, O any] struct {
	// Model is the initial model; Effects is the initial effect batch
	// (drained as a task before the first action is processed).
	Model   M
	Effects effects.Batch[A]

	// Update folds one action into the model, producing new effects.
	Update func(action A, model M) (M, effects.Batch[A])

	// View projects the model (and the stable address) into the output.
	View func(addr ports.Sender[A], model M) O

	// Inputs are external action sources merged into the mailbox.
	Inputs []ports.Source[A]

	Hooks  domain.LifecycleHooks
	Logger *slog.Logger

	// MailboxBuffer bounds the number of pending batches (default 64).
	// TaskBuffer bounds undelivered tasks (default 16).
	MailboxBuffer int
	TaskBuffer    int
}

// Loop is the core state machine: one goroutine folding action batches
// into a model while draining accumulated effects into tasks.
type Loop[M, A, O any] struct {
	update func(A, M) (M, effects.Batch[A])
	view   func(ports.Sender[A], M) O
	inputs []ports.Source[A]

	mailbox *signal.Mailbox[A]
	addr    ports.Sender[A]
	model   *signal.Signal[M]
	output  *signal.Signal[O]
	tasks   chan ports.Task

	// current is owned exclusively by the loop goroutine; the model
	// signal is its published projection.
	current     M
	initEffects effects.Batch[A]
	seq         int64

	hooks  domain.LifecycleHooks
	logger *slog.Logger
	done   chan struct{}
}

// New constructs a Loop. The mailbox and signals are created here, owned
// by this Loop; the initial output is rendered immediately so watchers
// never observe an unrendered state.
func New[M, A, O any](cfg Config[M, A, O]) *Loop[M, A, O] {
	if cfg.MailboxBuffer <= 0 {
		cfg.MailboxBuffer = 64
	}
	if cfg.TaskBuffer <= 0 {
		cfg.TaskBuffer = 16
	}
	if cfg.Logger == nil {
		cfg.Logger = logging.NewNop()
	}

	l := &Loop[M, A, O]{
		update:      cfg.Update,
		view:        cfg.View,
		inputs:      cfg.Inputs,
		mailbox:     signal.NewMailbox[A](cfg.MailboxBuffer),
		tasks:       make(chan ports.Task, cfg.TaskBuffer),
		current:     cfg.Model,
		initEffects: cfg.Effects,
		hooks:       cfg.Hooks,
		logger:      cfg.Logger,
		done:        make(chan struct{}),
	}
	l.addr = ports.SenderFunc[A](func(ctx context.Context, actions ...A) error {
		return l.mailbox.Send(ctx, actions...)
	})
	l.model = signal.NewSignal(cfg.Model)
	l.output = signal.NewSignal(cfg.View(l.addr, cfg.Model))
	return l
}

// Address returns the stable handle through which actions enter the
// loop. Safe for concurrent use by the view, sources, and executors.
func (l *Loop[M, A, O]) Address() ports.Sender[A] { return l.addr }

// Model returns the model signal.
func (l *Loop[M, A, O]) Model() *signal.Signal[M] { return l.model }

// Output returns the output signal.
func (l *Loop[M, A, O]) Output() *signal.Signal[O] { return l.output }

// Tasks returns the stream of derived work. The host must consume it
// (directly or via an executor), or accumulated effects never run. The
// channel closes when the loop stops.
func (l *Loop[M, A, O]) Tasks() <-chan ports.Task { return l.tasks }

// Done closes when the loop goroutine has exited.
func (l *Loop[M, A, O]) Done() <-chan struct{} { return l.done }

// Start launches the loop and its input sources. It returns immediately;
// the loop runs until ctx is cancelled.
func (l *Loop[M, A, O]) Start(ctx context.Context) {
	for _, src := range l.inputs {
		go l.runSource(ctx, src, l.addr)
	}
	go l.run(ctx)
}

func (l *Loop[M, A, O]) runSource(ctx context.Context, src ports.Source[A], addr ports.Sender[A]) {
	err := src.Run(ctx, addr)
	if err != nil && ctx.Err() == nil {
		l.logger.Warn("input source stopped", "source", src.Name(), "error", err)
	}
	if l.hooks.OnSourceDone != nil {
		l.hooks.OnSourceDone(ctx, &domain.SourceEvent{Name: src.Name(), Err: err})
	}
}

func (l *Loop[M, A, O]) run(ctx context.Context) {
	defer close(l.done)
	defer close(l.tasks)

	if !l.initEffects.IsEmpty() {
		l.emitTask(ctx, 0, l.initEffects)
	}

	for {
		batch := l.mailbox.Receive(ctx)
		if batch == nil {
			l.logger.Debug("loop stopped", "steps", l.seq)
			return
		}

		started := time.Now()
		model, pending := l.fold(batch)
		l.seq++
		l.current = model
		l.model.Set(model)
		l.output.Set(l.view(l.addr, model))

		if l.hooks.OnStep != nil {
			l.hooks.OnStep(ctx, &domain.StepEvent{
				Seq:      l.seq,
				Actions:  len(batch),
				Effects:  pending.Len(),
				Duration: time.Since(started),
			})
		}

		if !pending.IsEmpty() {
			l.emitTask(ctx, l.seq, pending)
		}
	}
}

// fold applies the batch to the current model in arrival order,
// accumulating effects left to right. An empty batch returns the model
// unchanged with an empty accumulator.
func (l *Loop[M, A, O]) fold(batch []A) (M, effects.Batch[A]) {
	model := l.current
	acc := effects.None[A]()
	for _, action := range batch {
		var produced effects.Batch[A]
		model, produced = l.update(action, model)
		acc = acc.Append(produced)
	}
	return model, acc
}

// emitTask exposes one unit of work on the tasks stream, blocking until
// the host accepts it so tasks are delivered exactly once, in step order.
func (l *Loop[M, A, O]) emitTask(ctx context.Context, seq int64, pending effects.Batch[A]) {
	task := pending.Task(l.addr)
	select {
	case l.tasks <- task:
		if l.hooks.OnTask != nil {
			l.hooks.OnTask(ctx, &domain.TaskEvent{Seq: seq, Effects: pending.Len()})
		}
	case <-ctx.Done():
	}
}
