package signal

import (
	"context"
	"sync"
)

// Signal holds a continuously updated value. One writer (the loop) calls
// Set; any number of watchers observe changes via Watch or sample the
// current value via Latest.
type Signal[T any] struct {
	mu       sync.Mutex
	current  T
	watchers map[int]chan T
	nextID   int
}

// NewSignal creates a signal seeded with the initial value.
func NewSignal[T any](initial T) *Signal[T] {
	return &Signal[T]{
		current:  initial,
		watchers: make(map[int]chan T),
	}
}

// Latest returns the most recently set value.
func (s *Signal[T]) Latest() T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Set replaces the current value and notifies every watcher. A watcher
// that has not consumed its previous notification is skipped for this
// update but will observe the newest value on its next receive, so slow
// watchers never block the loop.
func (s *Signal[T]) Set(v T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = v
	for _, ch := range s.watchers {
		// Replace a stale pending value with the fresh one.
		select {
		case <-ch:
		default:
		}
		select {
		case ch <- v:
		default:
		}
	}
}

// Watch registers a watcher and returns its channel. The current value
// is delivered immediately, then every subsequent update (conflated for
// slow consumers). The watcher is removed when ctx ends.
func (s *Signal[T]) Watch(ctx context.Context) <-chan T {
	ch := make(chan T, 1)

	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.watchers[id] = ch
	ch <- s.current
	s.mu.Unlock()

	go func() {
		<-ctx.Done()
		s.mu.Lock()
		delete(s.watchers, id)
		s.mu.Unlock()
	}()

	return ch
}
