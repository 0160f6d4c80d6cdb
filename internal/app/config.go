// ============================================================================
// Scribe - Voice Dictation Assistant
// ============================================================================
//
// Package:     app
// Description: Application configuration
// Created:     2026-08-10
// License:     MIT
// ============================================================================

package app

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds the application configuration. User-changeable preferences
// live in the settings store; this covers process-level wiring.
type Config struct {
	// LogLevel is one of debug, info, warn, error
	LogLevel string `yaml:"log_level"`

	// LogFormat is "text" or "json"
	LogFormat string `yaml:"log_format"`

	// SettingsPath overrides the settings file location
	SettingsPath string `yaml:"settings_path"`

	// PollIntervalSeconds is how often the input source is re-checked
	PollIntervalSeconds int `yaml:"poll_interval_seconds"`

	// Whisper configures the local whisper backend
	Whisper WhisperConfig `yaml:"whisper"`

	// Remote configures the remote transcription backend
	Remote RemoteConfig `yaml:"remote"`
}

// WhisperConfig holds local whisper settings
type WhisperConfig struct {
	Binary    string `yaml:"binary"`
	ModelsDir string `yaml:"models_dir"`
}

// RemoteConfig holds remote backend settings
type RemoteConfig struct {
	URL string `yaml:"url"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() Config {
	return Config{
		LogLevel:            "info",
		LogFormat:           "text",
		PollIntervalSeconds: 2,
	}
}

// DefaultConfigPath returns the config file location under the user
// config dir
func DefaultConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "scribe", "config.yaml"), nil
}

// LoadConfig reads the YAML config file, returning defaults when the
// file does not exist
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		p, err := DefaultConfigPath()
		if err != nil {
			return cfg, err
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if cfg.PollIntervalSeconds <= 0 {
		cfg.PollIntervalSeconds = 2
	}
	return cfg, nil
}
