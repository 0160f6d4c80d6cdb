// ============================================================================
// Scribe - Voice Dictation Assistant
// ============================================================================
//
// Package:     inputsource
// Description: Active input-source tracking
// Created:     2026-07-24
// License:     MIT
// ============================================================================

package inputsource

import (
	"sync"

	"scribe/internal/logging"
)

// Watcher tracks the active OS input source. It holds one subscription to
// the source for its lifetime, re-queries the source on every change
// signal, and runs the update-and-notify step on a serialized executor so
// downstream observers never see overlapping updates.
type Watcher struct {
	mu       sync.RWMutex
	source   Source
	exec     *SerialExecutor
	logger   *logging.Logger
	current  InputSource
	onChange []func()
	started  bool
	stopped  bool
	stop     chan struct{}
	done     chan struct{}
}

// NewWatcher creates a watcher around the given source. The executor is
// the application's serialized (UI-affine) context.
func NewWatcher(source Source, exec *SerialExecutor, logger *logging.Logger) *Watcher {
	if logger == nil {
		logger = logging.New("inputsource")
	}
	return &Watcher{
		source: source,
		exec:   exec,
		logger: logger,
		stop:   make(chan struct{}),
		done:   make(chan struct{}),
	}
}

// OnChange registers a handler invoked on the serialized executor after
// the watcher state has been updated. Register before Start.
func (w *Watcher) OnChange(fn func()) {
	if fn == nil {
		return
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onChange = append(w.onChange, fn)
}

// Current returns the last-observed input source
func (w *Watcher) Current() InputSource {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.current
}

// Start subscribes to the source and begins tracking. A second call is a
// no-op.
func (w *Watcher) Start() {
	w.mu.Lock()
	if w.started || w.stopped {
		w.mu.Unlock()
		return
	}
	w.started = true
	w.mu.Unlock()

	// Seed state with the current input source before any event arrives.
	if src, err := w.source.Current(); err == nil {
		w.mu.Lock()
		w.current = src
		w.mu.Unlock()
	} else {
		w.logger.Warn("Initial input source query failed", "error", err)
	}

	events := w.source.Events()
	go func() {
		defer close(w.done)
		for {
			select {
			case <-w.stop:
				return
			case _, ok := <-events:
				if !ok {
					return
				}
				w.handleEvent()
			}
		}
	}()
}

// handleEvent re-queries the source and, when the active source differs
// from the last observed one, dispatches the update and notifications
// onto the executor.
func (w *Watcher) handleEvent() {
	src, err := w.source.Current()
	if err != nil {
		// Transient OS failure: keep prior values, record and move on.
		w.logger.Warn("Input source query failed, keeping previous", "error", err)
		return
	}

	w.mu.RLock()
	unchanged := src.ID == w.current.ID
	w.mu.RUnlock()
	if unchanged {
		return
	}

	w.exec.Dispatch(func() {
		w.mu.Lock()
		prev := w.current
		w.current = src
		handlers := make([]func(), len(w.onChange))
		copy(handlers, w.onChange)
		w.mu.Unlock()

		w.logger.Info("Input source changed",
			"from", prev.ID, "to", src.ID, "label", src.Label)
		for _, fn := range handlers {
			fn()
		}
	})
}

// Stop unsubscribes and stops tracking. Idempotent; safe to call without
// a prior Start.
func (w *Watcher) Stop() {
	w.mu.Lock()
	if w.stopped {
		w.mu.Unlock()
		return
	}
	w.stopped = true
	started := w.started
	w.mu.Unlock()

	close(w.stop)
	if started {
		<-w.done
	}
}
