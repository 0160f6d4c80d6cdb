// ============================================================================
// Scribe - Voice Dictation Assistant
// ============================================================================
//
// Package:     inputsource
// Description: Input-source query backends
// Created:     2026-07-24
// License:     MIT
// ============================================================================

package inputsource

import (
	"errors"
	"os"
	"strings"
	"sync"
	"time"
)

// InputSource is the active keyboard/input source as reported by the OS
type InputSource struct {
	// ID is the raw identifier (e.g. "zh-Hans", "en-US", "nb")
	ID string

	// Label is the human-readable display name
	Label string
}

// ErrUnavailable is returned when the OS cannot report an input source
var ErrUnavailable = errors.New("input source unavailable")

// Source reports the active input source and signals changes on a
// bounded event channel. The channel carries no payload; consumers
// re-query Current after each signal.
type Source interface {
	Current() (InputSource, error)
	Events() <-chan struct{}
	Close() error
}

// QueryFunc reads the active input source once
type QueryFunc func() (InputSource, error)

// EnvQuery reads the input locale from the process environment, the
// usual source on Unix-likes. Precedence: LC_ALL > LC_MESSAGES > LANG.
// "en_US.UTF-8" style values are reduced to "en-US".
func EnvQuery() (InputSource, error) {
	for _, env := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		locale := os.Getenv(env)
		if locale == "" || locale == "C" || locale == "POSIX" {
			continue
		}
		id := locale
		if idx := strings.Index(id, "."); idx >= 0 {
			id = id[:idx]
		}
		id = strings.ReplaceAll(id, "_", "-")
		return InputSource{ID: id, Label: locale}, nil
	}
	return InputSource{}, ErrUnavailable
}

// PollingSource turns a QueryFunc into a Source by polling on a fixed
// interval and signaling whenever the reported identifier changes.
type PollingSource struct {
	mu       sync.Mutex
	query    QueryFunc
	interval time.Duration
	events   chan struct{}
	stop     chan struct{}
	done     chan struct{}
	lastID   string
	started  bool
	closed   bool
}

// NewPollingSource creates a polling source. A non-positive interval
// defaults to two seconds.
func NewPollingSource(query QueryFunc, interval time.Duration) *PollingSource {
	if interval <= 0 {
		interval = 2 * time.Second
	}
	return &PollingSource{
		query:    query,
		interval: interval,
		events:   make(chan struct{}, 8),
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Current reads the input source once
func (p *PollingSource) Current() (InputSource, error) {
	return p.query()
}

// Events returns the change signal channel. The first call starts the
// poll loop.
func (p *PollingSource) Events() <-chan struct{} {
	p.mu.Lock()
	if !p.started && !p.closed {
		p.started = true
		if src, err := p.query(); err == nil {
			p.lastID = src.ID
		}
		go p.loop()
	}
	p.mu.Unlock()
	return p.events
}

func (p *PollingSource) loop() {
	defer close(p.done)
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-p.stop:
			return
		case <-ticker.C:
			src, err := p.query()
			if err != nil {
				continue
			}
			p.mu.Lock()
			changed := src.ID != p.lastID
			if changed {
				p.lastID = src.ID
			}
			p.mu.Unlock()
			if changed {
				select {
				case p.events <- struct{}{}:
				default:
					// queue full, a signal is already pending
				}
			}
		}
	}
}

// Close stops the poll loop. Idempotent.
func (p *PollingSource) Close() error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil
	}
	p.closed = true
	started := p.started
	p.mu.Unlock()

	close(p.stop)
	if started {
		<-p.done
	}
	return nil
}
