// ============================================================================
// Scribe - Voice Dictation Assistant
// ============================================================================
//
// Package:     stt
// Description: Whisper backend using the whisper.cpp CLI
// Created:     2026-08-05
// License:     MIT
// ============================================================================

package stt

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"scribe/internal/language"
	"scribe/internal/logging"
	"scribe/internal/model"
)

// WhisperBackend runs transcription through a local whisper.cpp CLI
// binary. Locale support follows the active model: multilingual models
// serve every catalog locale, ".en" models serve English only. A locale
// counts as installed when the model file is on disk.
type WhisperBackend struct {
	binaryPath string
	modelsDir  string
	registry   *model.Registry
	logger     *logging.Logger
}

// WhisperConfig holds whisper backend configuration
type WhisperConfig struct {
	// BinaryPath overrides binary discovery when set
	BinaryPath string

	// ModelsDir is where ggml model files live
	ModelsDir string
}

// DefaultModelsDir returns the conventional whisper model location
func DefaultModelsDir() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".local", "share", "scribe", "whisper")
}

// NewWhisperBackend creates the whisper backend. Construction never
// fails; a missing binary surfaces later as an unavailable runtime.
func NewWhisperBackend(cfg WhisperConfig, registry *model.Registry, logger *logging.Logger) *WhisperBackend {
	if logger == nil {
		logger = logging.New("whisper")
	}
	binaryPath := cfg.BinaryPath
	if binaryPath == "" {
		binaryPath = findWhisperBinary()
	}
	modelsDir := cfg.ModelsDir
	if modelsDir == "" {
		modelsDir = DefaultModelsDir()
	}
	return &WhisperBackend{
		binaryPath: binaryPath,
		modelsDir:  modelsDir,
		registry:   registry,
		logger:     logger,
	}
}

// findWhisperBinary locates the whisper.cpp CLI, trying PATH first and
// the usual install locations after
func findWhisperBinary() string {
	if path, err := exec.LookPath("whisper-cli"); err == nil {
		return path
	}
	if path, err := exec.LookPath("whisper"); err == nil {
		return path
	}

	locations := []string{
		"/opt/homebrew/bin/whisper-cli",
		"/opt/homebrew/bin/whisper",
		"/usr/local/bin/whisper-cli",
		"/usr/local/bin/whisper",
		"/usr/bin/whisper",
	}
	for _, loc := range locations {
		if _, err := os.Stat(loc); err == nil {
			return loc
		}
	}
	return ""
}

// Name identifies the backend in logs
func (w *WhisperBackend) Name() string { return "whisper-cli" }

// Kind is the model family this backend executes
func (w *WhisperBackend) Kind() model.Kind { return model.KindWhisper }

// Available reports whether the whisper binary was found
func (w *WhisperBackend) Available() bool { return w.binaryPath != "" }

// modelPath returns the expected model file location for the active model
func (w *WhisperBackend) modelPath() string {
	return filepath.Join(w.modelsDir, fmt.Sprintf("ggml-%s.bin", w.registry.Active().Name))
}

// SupportedLocales derives the supported set from the active model's
// declared languages
func (w *WhisperBackend) SupportedLocales(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	langs := w.registry.Active().Languages
	seen := make(map[string]bool, len(langs))
	locales := make([]string, 0, len(langs))
	for _, code := range langs {
		locale := language.BackendLocale(code)
		if !seen[locale] {
			seen[locale] = true
			locales = append(locales, locale)
		}
	}
	return locales, nil
}

// InstalledLocales reports the supported set when the active model file
// is present on disk, nothing otherwise
func (w *WhisperBackend) InstalledLocales(ctx context.Context) ([]string, error) {
	if _, err := os.Stat(w.modelPath()); err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	return w.SupportedLocales(ctx)
}

// Transcribe runs the whisper CLI over the audio file and emits the
// cleaned transcript line by line
func (w *WhisperBackend) Transcribe(ctx context.Context, audioPath, locale string, onFragment FragmentFunc) error {
	modelPath := w.modelPath()
	if _, err := os.Stat(modelPath); err != nil {
		// The model was negotiated as supported-not-installed but the
		// CLI cannot self-provision it.
		return fmt.Errorf("%w: model file %s not present", ErrAssetAllocation, modelPath)
	}

	// whisper.cpp takes the bare language code, not a locale tag
	lang := locale
	if idx := strings.Index(lang, "-"); idx >= 0 {
		lang = lang[:idx]
	}

	args := []string{
		"--model", modelPath,
		"--language", lang,
		"--no-prints",
		audioPath,
	}

	cmd := exec.CommandContext(ctx, w.binaryPath, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	w.logger.Debug("Running whisper", "binary", w.binaryPath, "language", lang, "audio", audioPath)
	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("%w: whisper: %v: %s", ErrTranscriptionFailed, err, strings.TrimSpace(stderr.String()))
	}

	for _, line := range strings.Split(stdout.String(), "\n") {
		if text := cleanTranscriptLine(line); text != "" {
			onFragment(text)
		}
	}
	return nil
}

// cleanTranscriptLine strips whisper's timestamp prefix
// ("[00:00:00.000 --> 00:00:05.000] text") and surrounding whitespace
func cleanTranscriptLine(line string) string {
	line = strings.TrimSpace(line)
	if strings.HasPrefix(line, "[") && strings.Contains(line, "-->") {
		if idx := strings.Index(line, "]"); idx != -1 {
			line = strings.TrimSpace(line[idx+1:])
		}
	}
	return line
}
