// ============================================================================
// Scribe - Voice Dictation Assistant
// ============================================================================
//
// Package:     autosync
// Description: Keyboard-to-transcription language auto-sync policy
// Created:     2026-07-28
// License:     MIT
// ============================================================================

package autosync

import (
	"scribe/internal/inputsource"
	"scribe/internal/language"
	"scribe/internal/logging"
	"scribe/internal/model"
	"scribe/internal/notify"
	"scribe/internal/settings"
)

// Policy decides whether an input-source change overwrites the selected
// transcription language. The auto-sync preference is re-read on every
// invocation so the user can toggle it without restarting.
type Policy struct {
	watcher  *inputsource.Watcher
	store    *settings.Store
	registry *model.Registry
	bus      *notify.Bus
	logger   *logging.Logger
}

// NewPolicy wires the policy to its collaborators
func NewPolicy(watcher *inputsource.Watcher, store *settings.Store, registry *model.Registry, bus *notify.Bus, logger *logging.Logger) *Policy {
	if logger == nil {
		logger = logging.New("autosync")
	}
	return &Policy{
		watcher:  watcher,
		store:    store,
		registry: registry,
		bus:      bus,
		logger:   logger,
	}
}

// SyncLanguageIfEnabled runs one auto-sync decision against the watcher's
// current input source. Callers invoke it after each detected change; it
// is also safe to call at any time, a redundant call is a no-op.
//
// Side effects are ordered: the selection is persisted before any
// notification is posted, so observers reading the store during
// notification handling see the new value.
func (p *Policy) SyncLanguageIfEnabled() {
	if !p.store.AutoSyncEnabled() {
		return
	}

	src := p.watcher.Current()
	code := language.ToCanonical(src.ID)

	if !p.registry.IsSupported(code) {
		// The common case: the keyboard language has no matching model
		// language. Not an error.
		p.logger.Info("Input source language not supported by active model",
			"source", src.ID, "code", code, "model", p.registry.Active().Name)
		return
	}

	if code == p.store.SelectedLanguage() {
		return
	}

	if err := p.store.SetSelectedLanguage(code); err != nil {
		p.logger.Error("Failed to persist language selection",
			"code", code, "error", err)
		return
	}

	p.logger.Info("Transcription language synced to input source",
		"source", src.ID, "code", code)
	p.bus.Post(notify.EventLanguageChanged)
	p.bus.Post(notify.EventSettingsChanged)
}
