// ============================================================================
// Scribe - Voice Dictation Assistant
// ============================================================================
//
// Package:     settings
// Description: Persistent user settings
// Created:     2026-07-22
// License:     MIT
// ============================================================================

package settings

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
)

// File holds the persisted settings
type File struct {
	SelectedLanguage string `json:"selected_language"`
	AutoSyncEnabled  bool   `json:"auto_sync_enabled"`

	STTEngine        string `json:"stt_engine"`
	WhisperModel     string `json:"whisper_model"`
	WhisperModelPath string `json:"whisper_model_path"`
	RemoteURL        string `json:"remote_url"`
}

// defaults returns the settings used before anything has been persisted
func defaults() File {
	return File{
		SelectedLanguage: "en",
		AutoSyncEnabled:  true,
		STTEngine:        "whisper",
		WhisperModel:     "base",
	}
}

// Store is the persisted settings store. Reads and writes go through a
// mutex; setters persist before returning so observers reading the store
// during a change notification see the new value.
type Store struct {
	mu   sync.RWMutex
	path string
	data File
}

// DefaultPath returns the settings file location under the user config dir
func DefaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	configDir := filepath.Join(homeDir, ".config", "scribe")
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return "", err
	}
	return filepath.Join(configDir, "settings.json"), nil
}

// Open loads the store from path, starting from defaults when no file
// exists yet
func Open(path string) (*Store, error) {
	s := &Store{path: path, data: defaults()}

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, err
	}

	var f File
	if err := json.Unmarshal(raw, &f); err != nil {
		return nil, err
	}
	s.apply(f)
	return s, nil
}

// apply merges loaded values over the defaults, keeping defaults for
// empty string fields
func (s *Store) apply(f File) {
	if f.SelectedLanguage != "" {
		s.data.SelectedLanguage = f.SelectedLanguage
	}
	s.data.AutoSyncEnabled = f.AutoSyncEnabled
	if f.STTEngine != "" {
		s.data.STTEngine = f.STTEngine
	}
	if f.WhisperModel != "" {
		s.data.WhisperModel = f.WhisperModel
	}
	if f.WhisperModelPath != "" {
		s.data.WhisperModelPath = f.WhisperModelPath
	}
	if f.RemoteURL != "" {
		s.data.RemoteURL = f.RemoteURL
	}
}

// save writes the current settings to disk. Callers hold s.mu.
func (s *Store) save() error {
	data, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0644)
}

// Snapshot returns a copy of the current settings
func (s *Store) Snapshot() File {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data
}

// SelectedLanguage returns the persisted language selection
func (s *Store) SelectedLanguage() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data.SelectedLanguage
}

// SetSelectedLanguage persists a new language selection
func (s *Store) SetSelectedLanguage(code string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.SelectedLanguage = code
	return s.save()
}

// AutoSyncEnabled returns the persisted auto-sync preference
func (s *Store) AutoSyncEnabled() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data.AutoSyncEnabled
}

// SetAutoSyncEnabled persists the auto-sync preference
func (s *Store) SetAutoSyncEnabled(enabled bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.AutoSyncEnabled = enabled
	return s.save()
}

// Update applies fn to the settings under the lock and persists the result
func (s *Store) Update(fn func(*File)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(&s.data)
	return s.save()
}
