// Package ticker provides a time-driven input source: every interval it
// sends one action derived from the current time.
package ticker

import (
	"context"
	"time"

	"github.com/aretw0/weft/pkg/ports"
)

// Source emits transform(now) every interval. It is the clock-style
// input stream for animations, polling, and timeouts expressed as
// ordinary actions.
type Source[A any] struct {
	name      string
	interval  time.Duration
	transform func(time.Time) A
}

// New creates a ticker source. Intervals below one millisecond are
// clamped to one millisecond.
func New[A any](name string, interval time.Duration, transform func(time.Time) A) *Source[A] {
	if interval < time.Millisecond {
		interval = time.Millisecond
	}
	return &Source[A]{name: name, interval: interval, transform: transform}
}

// Name identifies the source for provenance.
func (s *Source[A]) Name() string { return s.name }

// Run ticks until ctx ends. Ticks that land while the loop is busy are
// coalesced by the mailbox like any other coincident sends.
func (s *Source[A]) Run(ctx context.Context, send ports.Sender[A]) error {
	t := time.NewTicker(s.interval)
	defer t.Stop()

	for {
		select {
		case now := <-t.C:
			if err := send.Send(ctx, s.transform(now)); err != nil {
				return err
			}
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
