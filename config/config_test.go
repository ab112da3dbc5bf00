package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.DataDir != ".valentine" {
		t.Errorf("Expected default data dir, got %q", cfg.DataDir)
	}
	if cfg.SwipeThreshold != 50 {
		t.Errorf("Expected threshold 50, got %v", cfg.SwipeThreshold)
	}
	if cfg.ConfettiDelayMs != 3000 {
		t.Errorf("Expected confetti delay 3000, got %d", cfg.ConfettiDelayMs)
	}
	if !cfg.AudioEnabled {
		t.Error("Expected audio enabled by default")
	}
	if cfg.Debug {
		t.Error("Expected debug disabled by default")
	}
}

func TestLoadYAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "valentine.yaml")
	body := "dataDir: /tmp/hearts\nswipeThreshold: 80\nconfettiDelayMs: 1500\naudioEnabled: false\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.DataDir != "/tmp/hearts" {
		t.Errorf("Expected file data dir, got %q", cfg.DataDir)
	}
	if cfg.SwipeThreshold != 80 {
		t.Errorf("Expected threshold 80, got %v", cfg.SwipeThreshold)
	}
	if cfg.ConfettiDelayMs != 1500 {
		t.Errorf("Expected confetti delay 1500, got %d", cfg.ConfettiDelayMs)
	}
	if cfg.AudioEnabled {
		t.Error("Expected audio disabled by file")
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "valentine.yaml")
	if err := os.WriteFile(path, []byte("debug: true\n"), 0o644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !cfg.Debug {
		t.Error("Expected debug enabled by file")
	}
	if cfg.SwipeThreshold != 50 {
		t.Errorf("Expected default threshold to survive, got %v", cfg.SwipeThreshold)
	}
}

func TestLoadEnvironmentOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "valentine.yaml")
	if err := os.WriteFile(path, []byte("swipeThreshold: 80\n"), 0o644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}
	t.Setenv("VALENTINE_SWIPE_THRESHOLD", "120")
	t.Setenv("VALENTINE_DATA_DIR", "/var/lib/valentine")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.SwipeThreshold != 120 {
		t.Errorf("Expected env threshold 120, got %v", cfg.SwipeThreshold)
	}
	if cfg.DataDir != "/var/lib/valentine" {
		t.Errorf("Expected env data dir, got %q", cfg.DataDir)
	}
}

func TestLoadMissingFileFails(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Expected error for explicitly named missing file")
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"zero threshold", "swipeThreshold: 0\n"},
		{"negative threshold", "swipeThreshold: -10\n"},
		{"negative delay", "confettiDelayMs: -1\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "valentine.yaml")
			if err := os.WriteFile(path, []byte(tt.body), 0o644); err != nil {
				t.Fatalf("Failed to write config file: %v", err)
			}
			if _, err := Load(path); err == nil {
				t.Error("Expected validation error")
			}
		})
	}
}

func TestConfettiDelay(t *testing.T) {
	cfg := &Config{ConfettiDelayMs: 250}
	if got := cfg.ConfettiDelay(); got != 250*time.Millisecond {
		t.Errorf("Expected 250ms, got %v", got)
	}
}
