package main

import (
	"os"
	"path/filepath"
	"testing"
)

// Test detection of standard history files and HISTFILE overrides
func TestDetectHistoryFiles(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	if err := os.WriteFile(filepath.Join(home, ".bash_history"), []byte("git status\n"), 0644); err != nil {
		t.Fatal(err)
	}
	customPath := filepath.Join(home, "custom_hist")
	if err := os.WriteFile(customPath, []byte("make test\n"), 0644); err != nil {
		t.Fatal(err)
	}
	rc := "# shell config\nexport HISTFILE=\"$HOME/custom_hist\"\n"
	if err := os.WriteFile(filepath.Join(home, ".bashrc"), []byte(rc), 0644); err != nil {
		t.Fatal(err)
	}

	detector, err := NewHistoryDetector()
	if err != nil {
		t.Fatalf("NewHistoryDetector failed: %v", err)
	}

	files, err := detector.DetectHistoryFiles()
	if err != nil {
		t.Fatalf("DetectHistoryFiles failed: %v", err)
	}

	paths := make(map[string]HistoryFile)
	for _, file := range files {
		paths[file.Path] = file
	}

	bashHist, ok := paths[filepath.Join(home, ".bash_history")]
	if !ok {
		t.Fatal("standard .bash_history not detected")
	}
	if bashHist.Shell != "bash" || bashHist.Format != "bash" {
		t.Errorf("bash history shell/format = %s/%s", bashHist.Shell, bashHist.Format)
	}
	if !bashHist.Readable {
		t.Error("expected .bash_history to be readable")
	}

	custom, ok := paths[customPath]
	if !ok {
		t.Fatal("HISTFILE override from .bashrc not detected")
	}
	if custom.Shell != "bash" {
		t.Errorf("custom HISTFILE shell = %s, expected bash", custom.Shell)
	}
}

// Test history format detection by name and by content sniffing
func TestDetectFormat(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	detector, err := NewHistoryDetector()
	if err != nil {
		t.Fatal(err)
	}

	if format := detector.DetectFormat("/home/u/.zsh_history"); format != "zsh" {
		t.Errorf("format by zsh name = %q", format)
	}
	if format := detector.DetectFormat("/home/u/.bash_history"); format != "bash" {
		t.Errorf("format by bash name = %q", format)
	}

	zshContent := filepath.Join(home, "hist_a")
	if err := os.WriteFile(zshContent, []byte(": 1704103200:0;git status\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if format := detector.DetectFormat(zshContent); format != "zsh" {
		t.Errorf("format by zsh content = %q", format)
	}

	plainContent := filepath.Join(home, "hist_b")
	if err := os.WriteFile(plainContent, []byte("git status\nmake build\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if format := detector.DetectFormat(plainContent); format != "bash" {
		t.Errorf("format by plain content = %q", format)
	}
}

// DescribeFile errors on missing paths
func TestDescribeFileMissing(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	detector, err := NewHistoryDetector()
	if err != nil {
		t.Fatal(err)
	}
	if _, err := detector.DescribeFile("/nonexistent/history"); err == nil {
		t.Error("expected error for missing file")
	}
}
