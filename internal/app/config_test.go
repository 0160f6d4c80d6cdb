package app

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "config.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("Expected info, got %s", cfg.LogLevel)
	}
	if cfg.PollIntervalSeconds != 2 {
		t.Errorf("Expected 2s poll interval, got %d", cfg.PollIntervalSeconds)
	}
}

func TestLoadConfigParsesYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `log_level: debug
log_format: json
poll_interval_seconds: 5
whisper:
  binary: /opt/whisper/bin/whisper-cli
  models_dir: /var/lib/scribe/models
remote:
  url: http://stt.local:8100
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.LogLevel != "debug" || cfg.LogFormat != "json" {
		t.Errorf("Log config not parsed: %+v", cfg)
	}
	if cfg.PollIntervalSeconds != 5 {
		t.Errorf("Expected 5, got %d", cfg.PollIntervalSeconds)
	}
	if cfg.Whisper.Binary != "/opt/whisper/bin/whisper-cli" {
		t.Errorf("Whisper binary not parsed: %s", cfg.Whisper.Binary)
	}
	if cfg.Remote.URL != "http://stt.local:8100" {
		t.Errorf("Remote URL not parsed: %s", cfg.Remote.URL)
	}
}

func TestLoadConfigRejectsBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("log_level: [unclosed"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Error("Expected error for invalid YAML")
	}
}
