// ============================================================================
// Scribe - Voice Dictation Assistant
// ============================================================================
//
// Package:     app
// Description: Application wiring and lifecycle
// Created:     2026-08-10
// License:     MIT
// ============================================================================

package app

import (
	"context"
	"fmt"
	"sync"
	"time"

	"scribe/internal/autosync"
	"scribe/internal/inputsource"
	"scribe/internal/logging"
	"scribe/internal/model"
	"scribe/internal/notify"
	"scribe/internal/settings"
	"scribe/internal/stt"
)

// App owns the long-lived components and their lifecycles. Everything is
// constructed once here and passed to dependents explicitly.
type App struct {
	mu         sync.Mutex
	cfg        Config
	logger     *logging.Logger
	store      *settings.Store
	registry   *model.Registry
	bus        *notify.Bus
	exec       *inputsource.SerialExecutor
	source     inputsource.Source
	watcher    *inputsource.Watcher
	policy     *autosync.Policy
	negotiator *stt.Negotiator
	whisper    *stt.WhisperBackend
	remote     *stt.RemoteBackend
	started    bool
}

// New constructs the application from configuration
func New(cfg Config) (*App, error) {
	format := logging.FormatText
	if cfg.LogFormat == "json" {
		format = logging.FormatJSON
	}
	logger := logging.NewWithConfig(logging.Config{
		Name:   "scribe",
		Level:  logging.ParseLevel(cfg.LogLevel),
		Format: format,
	})

	settingsPath := cfg.SettingsPath
	if settingsPath == "" {
		p, err := settings.DefaultPath()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve settings path: %w", err)
		}
		settingsPath = p
	}
	store, err := settings.Open(settingsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open settings: %w", err)
	}

	snap := store.Snapshot()
	activeModel := snap.WhisperModel
	if snap.STTEngine == "remote" {
		activeModel = "remote"
	}
	registry := model.NewRegistry(activeModel)

	bus := notify.NewBus()
	exec := inputsource.NewSerialExecutor()
	source := inputsource.NewPollingSource(inputsource.EnvQuery, time.Duration(cfg.PollIntervalSeconds)*time.Second)
	watcher := inputsource.NewWatcher(source, exec, logger)
	policy := autosync.NewPolicy(watcher, store, registry, bus, logger)

	remoteURL := cfg.Remote.URL
	if remoteURL == "" {
		remoteURL = snap.RemoteURL
	}

	whisperCfg := stt.WhisperConfig{
		BinaryPath: cfg.Whisper.Binary,
		ModelsDir:  cfg.Whisper.ModelsDir,
	}

	a := &App{
		cfg:        cfg,
		logger:     logger,
		store:      store,
		registry:   registry,
		bus:        bus,
		exec:       exec,
		source:     source,
		watcher:    watcher,
		policy:     policy,
		negotiator: stt.NewNegotiator(logger),
		whisper:    stt.NewWhisperBackend(whisperCfg, registry, logger),
		remote:     stt.NewRemoteBackend(remoteURL, logger),
	}

	bus.Subscribe(notify.EventLanguageChanged, func() {
		a.logger.Debug("Language selection changed", "code", store.SelectedLanguage())
	})

	return a, nil
}

// Settings exposes the settings store
func (a *App) Settings() *settings.Store { return a.store }

// Registry exposes the model registry
func (a *App) Registry() *model.Registry { return a.registry }

// Bus exposes the notification bus
func (a *App) Bus() *notify.Bus { return a.bus }

// Watcher exposes the input source watcher
func (a *App) Watcher() *inputsource.Watcher { return a.watcher }

// Start begins input-source tracking and auto-sync. Idempotent.
func (a *App) Start() {
	a.mu.Lock()
	if a.started {
		a.mu.Unlock()
		return
	}
	a.started = true
	a.mu.Unlock()

	a.watcher.OnChange(func() {
		a.bus.Post(notify.EventInputSourceChanged)
		a.policy.SyncLanguageIfEnabled()
	})
	a.watcher.Start()

	// Align with the keyboard state present at startup.
	a.exec.Dispatch(a.policy.SyncLanguageIfEnabled)

	a.logger.Info("Auto-sync running",
		"language", a.store.SelectedLanguage(),
		"auto_sync", a.store.AutoSyncEnabled(),
		"model", a.registry.Active().Name)
}

// Stop tears the watcher and executors down. Idempotent.
func (a *App) Stop() {
	a.watcher.Stop()
	a.source.Close()
	a.exec.Close()
}

// backend selects the transcription backend for the configured engine
func (a *App) backend() stt.Backend {
	if a.store.Snapshot().STTEngine == "remote" {
		return a.remote
	}
	return a.whisper
}

// TranscribeFile negotiates a locale for the currently selected language
// and transcribes the audio file. The language is captured at call time;
// a concurrent auto-sync does not affect an in-flight request.
func (a *App) TranscribeFile(ctx context.Context, audioPath string) (string, error) {
	req := stt.Request{
		Language:  a.store.SelectedLanguage(),
		ModelKind: a.registry.Active().Kind,
		AudioPath: audioPath,
	}
	return a.negotiator.Negotiate(ctx, a.backend(), req)
}

// LocaleStatus reports the availability of every catalog language on the
// current backend, for diagnostics and the languages command
func (a *App) LocaleStatus(ctx context.Context, code string) (string, stt.Availability, error) {
	backend := a.backend()
	if !backend.Available() {
		return "", stt.AvailabilityUnsupported, fmt.Errorf("%w: %s", stt.ErrUnsupportedRuntime, backend.Name())
	}
	req := stt.Request{Language: code, ModelKind: a.registry.Active().Kind}
	locale, availability, err := a.negotiator.NegotiateLocale(ctx, backend, req)
	return locale, availability, err
}
