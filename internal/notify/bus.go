// ============================================================================
// Scribe - Voice Dictation Assistant
// ============================================================================
//
// Package:     notify
// Description: In-process notification bus
// Created:     2026-07-22
// License:     MIT
// ============================================================================

package notify

import "sync"

// Event names posted on the bus
const (
	EventLanguageChanged    = "language.changed"
	EventSettingsChanged    = "settings.changed"
	EventInputSourceChanged = "inputsource.changed"
)

// Handler receives a posted event
type Handler func()

// Bus is a fire-and-forget notification bus. Subscribers for the same
// event are independent; no delivery order is guaranteed between them.
type Bus struct {
	mu       sync.RWMutex
	handlers map[string][]Handler
}

// NewBus creates an empty bus
func NewBus() *Bus {
	return &Bus{handlers: make(map[string][]Handler)}
}

// Subscribe registers a handler for an event name
func (b *Bus) Subscribe(event string, fn Handler) {
	if fn == nil {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[event] = append(b.handlers[event], fn)
}

// Post invokes all handlers registered for the event. Handlers run
// synchronously on the caller's goroutine; a handler that needs another
// execution context dispatches itself.
func (b *Bus) Post(event string) {
	b.mu.RLock()
	handlers := make([]Handler, len(b.handlers[event]))
	copy(handlers, b.handlers[event])
	b.mu.RUnlock()

	for _, fn := range handlers {
		fn()
	}
}
