package runner

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

// SignalManager ties OS interrupt signals to context cancellation so a
// host loop can shut down cleanly on Ctrl+C.
type SignalManager struct {
	ctx    context.Context
	cancel context.CancelFunc
}

// NewSignalManager starts listening for SIGINT and SIGTERM, deriving a
// context from parent that is cancelled when either arrives.
func NewSignalManager(parent context.Context) *SignalManager {
	sm := &SignalManager{}
	sm.ctx, sm.cancel = signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	return sm
}

// Context returns the signal-aware context.
func (sm *SignalManager) Context() context.Context {
	return sm.ctx
}

// Stop releases the signal listener.
func (sm *SignalManager) Stop() {
	if sm.cancel != nil {
		sm.cancel()
	}
}
