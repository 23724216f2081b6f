package main

import (
	"os"
	"path/filepath"
	"testing"
)

// Test first-run defaults, persistence, and env overrides. HOME is pointed at
// a temp dir so the real user config is never touched.
func TestConfigManager(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cm, err := NewConfigManager()
	if err != nil {
		t.Fatalf("NewConfigManager failed: %v", err)
	}
	if err := cm.Initialize(); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}

	config := cm.GetConfig()
	if config.MinNonAdjacentDays != 5 {
		t.Errorf("MinNonAdjacentDays = %d, expected default 5", config.MinNonAdjacentDays)
	}
	if config.MinPatternCount != 3 {
		t.Errorf("MinPatternCount = %d, expected default 3", config.MinPatternCount)
	}
	if !config.PasteFilterEnabled {
		t.Error("expected paste filter enabled by default")
	}

	// first run writes the defaults to disk
	home, _ := os.UserHomeDir()
	if _, err := os.Stat(filepath.Join(home, ".config", "tempo", "config.json")); err != nil {
		t.Errorf("config file not created on first run: %v", err)
	}

	// updates persist across a fresh manager
	config.MinNonAdjacentDays = 7
	if err := cm.UpdateConfig(config); err != nil {
		t.Fatalf("UpdateConfig failed: %v", err)
	}

	cm2, err := NewConfigManager()
	if err != nil {
		t.Fatal(err)
	}
	if err := cm2.Initialize(); err != nil {
		t.Fatal(err)
	}
	if got := cm2.GetConfig().MinNonAdjacentDays; got != 7 {
		t.Errorf("persisted MinNonAdjacentDays = %d, expected 7", got)
	}
}

// TEMPO_* environment variables override file settings
func TestConfigManagerEnvOverrides(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("TEMPO_MIN_DAYS", "9")
	t.Setenv("TEMPO_MIN_COUNT", "4")
	t.Setenv("TEMPO_HISTORY_FILE", "/tmp/custom_history")
	t.Setenv("TEMPO_PASTE_FILTER", "false")

	cm, err := NewConfigManager()
	if err != nil {
		t.Fatal(err)
	}
	if err := cm.Initialize(); err != nil {
		t.Fatal(err)
	}

	config := cm.GetConfig()
	if config.MinNonAdjacentDays != 9 {
		t.Errorf("MinNonAdjacentDays = %d, expected override 9", config.MinNonAdjacentDays)
	}
	if config.MinPatternCount != 4 {
		t.Errorf("MinPatternCount = %d, expected override 4", config.MinPatternCount)
	}
	if config.HistoryFile != "/tmp/custom_history" {
		t.Errorf("HistoryFile = %q, expected override", config.HistoryFile)
	}
	if config.PasteFilterEnabled {
		t.Error("expected paste filter disabled via env override")
	}
}

// Invalid env values are ignored in favor of the stored setting
func TestConfigManagerInvalidEnvValues(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("TEMPO_MIN_DAYS", "many")

	cm, err := NewConfigManager()
	if err != nil {
		t.Fatal(err)
	}
	if err := cm.Initialize(); err != nil {
		t.Fatal(err)
	}

	if got := cm.GetConfig().MinNonAdjacentDays; got != 5 {
		t.Errorf("MinNonAdjacentDays = %d, expected default 5 for invalid override", got)
	}
}
