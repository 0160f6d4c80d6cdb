// ============================================================================
// Scribe - Voice Dictation Assistant
// ============================================================================
//
// Package:     inputsource
// Description: Serialized executor for input-source event handling
// Created:     2026-07-24
// License:     MIT
// ============================================================================

package inputsource

import "sync"

// SerialExecutor runs submitted functions one at a time, in submission
// order, on a single goroutine. Input-source change handling is funneled
// through it so that read-modify-persist-notify sequences never overlap.
type SerialExecutor struct {
	mu     sync.Mutex
	queue  chan func()
	done   chan struct{}
	closed bool
}

// NewSerialExecutor starts the executor goroutine
func NewSerialExecutor() *SerialExecutor {
	e := &SerialExecutor{
		queue: make(chan func(), 64),
		done:  make(chan struct{}),
	}
	go e.run()
	return e
}

func (e *SerialExecutor) run() {
	defer close(e.done)
	for fn := range e.queue {
		fn()
	}
}

// Dispatch submits fn for execution. Blocks while the queue is full so
// events are handled in arrival order rather than dropped. The lock is
// held across the send so Close cannot close the queue mid-submit.
func (e *SerialExecutor) Dispatch(fn func()) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return
	}
	e.queue <- fn
}

// Close stops accepting work and waits for queued functions to finish
func (e *SerialExecutor) Close() {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return
	}
	e.closed = true
	close(e.queue)
	e.mu.Unlock()
	<-e.done
}
