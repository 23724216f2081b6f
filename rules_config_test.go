package main

import (
	"os"
	"path/filepath"
	"testing"
)

// Missing rules files fall back to defaults rather than erroring
func TestLoadRulesConfigMissing(t *testing.T) {
	rules, err := LoadRulesConfig("")
	if err != nil {
		t.Fatalf("LoadRulesConfig(\"\") failed: %v", err)
	}
	if rules == nil {
		t.Fatal("expected default rules, got nil")
	}

	rules, err = LoadRulesConfig("/nonexistent/rules.yaml")
	if err != nil {
		t.Fatalf("LoadRulesConfig for missing path failed: %v", err)
	}
	if rules == nil {
		t.Fatal("expected default rules for missing file, got nil")
	}
}

// Test YAML round trip of a rules file
func TestRulesConfigRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rules.yaml")

	rules := DefaultRulesConfig()
	rules.KnownTools = append(rules.KnownTools, "terraform")
	rules.StripPrefixes = []string{"/srv/projects/"}
	rules.PastePatterns = []string{"Auto-generated by"}

	if err := SaveRulesConfig(path, rules); err != nil {
		t.Fatalf("SaveRulesConfig failed: %v", err)
	}

	loaded, err := LoadRulesConfig(path)
	if err != nil {
		t.Fatalf("LoadRulesConfig failed: %v", err)
	}

	found := false
	for _, tool := range loaded.KnownTools {
		if tool == "terraform" {
			found = true
		}
	}
	if !found {
		t.Error("known tool lost in round trip")
	}
	if len(loaded.StripPrefixes) != 1 || loaded.StripPrefixes[0] != "/srv/projects/" {
		t.Errorf("StripPrefixes = %v, expected [/srv/projects/]", loaded.StripPrefixes)
	}
	if len(loaded.PastePatterns) != 1 {
		t.Errorf("PastePatterns = %v, expected one pattern", loaded.PastePatterns)
	}
}

// Malformed YAML is an error, not silently defaults
func TestLoadRulesConfigInvalid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rules.yaml")
	if err := os.WriteFile(path, []byte(":\n  - not valid: ["), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadRulesConfig(path); err == nil {
		t.Error("expected error for malformed rules file")
	}
}
