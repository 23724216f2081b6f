package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func sampleReport() *SavingsReport {
	return &SavingsReport{
		Aliases: []AliasProposal{
			{Kind: AliasRoot, Source: "kubectl", Alias: "k", Count: 55, Savings: 330,
				Members: []string{"kubectl get pods", "kubectl describe pod"}},
			{Kind: AliasPattern, Source: "git status", Alias: "gs", Count: 10, Savings: 80},
		},
		Functions: []FunctionProposal{
			{Prefix: "docker compose up", Name: "dcu", TotalUsage: 15, Variations: 3,
				Suffixes: []string{"web", "db", "cache"}, Savings: 195},
		},
		EnvVars: []EnvVarProposal{
			{Literal: "/var/log/app/server.log", Type: StringPath, Name: "VAR_LOG",
				TotalUsage: 15, Commands: 3, PerUse: 15, Savings: 225,
				Examples: []string{"tail -f /var/log/app/server.log"}},
		},
		AliasChars: 410, FunctionChars: 195, EnvChars: 225, TotalChars: 830,
		OccurrencesAffected: 95, AveragePerUse: 8.7, MinutesSaved: 4.15,
	}
}

// Test that the generated scripts are valid shell with rationale comments
func TestWriteScripts(t *testing.T) {
	dir := t.TempDir()
	files, err := WriteScripts(dir, sampleReport())
	if err != nil {
		t.Fatalf("WriteScripts failed: %v", err)
	}
	if len(files) != 3 {
		t.Fatalf("wrote %d files, expected 3", len(files))
	}

	aliases, err := os.ReadFile(filepath.Join(dir, "aliases.sh"))
	if err != nil {
		t.Fatalf("aliases.sh missing: %v", err)
	}
	if !strings.Contains(string(aliases), "alias k='kubectl'") {
		t.Error("aliases.sh missing root alias line")
	}
	if !strings.Contains(string(aliases), "alias gs='git status'") {
		t.Error("aliases.sh missing pattern alias line")
	}
	if !strings.Contains(string(aliases), "# covers: kubectl get pods") {
		t.Error("aliases.sh missing member rationale for root alias")
	}

	functions, err := os.ReadFile(filepath.Join(dir, "functions.sh"))
	if err != nil {
		t.Fatalf("functions.sh missing: %v", err)
	}
	if !strings.Contains(string(functions), "dcu() {") {
		t.Error("functions.sh missing function definition")
	}
	if !strings.Contains(string(functions), `docker compose up "$@"`) {
		t.Error("functions.sh missing argument passthrough")
	}

	exports, err := os.ReadFile(filepath.Join(dir, "exports.sh"))
	if err != nil {
		t.Fatalf("exports.sh missing: %v", err)
	}
	if !strings.Contains(string(exports), "export VAR_LOG='/var/log/app/server.log'") {
		t.Error("exports.sh missing export line")
	}
}

// Empty sections produce no files at all
func TestWriteScriptsEmptyReport(t *testing.T) {
	dir := t.TempDir()
	files, err := WriteScripts(dir, &SavingsReport{})
	if err != nil {
		t.Fatalf("WriteScripts failed: %v", err)
	}
	if len(files) != 0 {
		t.Errorf("wrote %d files for an empty report, expected 0", len(files))
	}
}

// Test single-quote escaping in generated scripts
func TestShellQuote(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"git status", "'git status'"},
		{"echo 'hi'", `'echo '\''hi'\'''`},
		{"", "''"},
	}

	for _, test := range tests {
		result := shellQuote(test.input)
		if result != test.expected {
			t.Errorf("shellQuote(%q) = %s, expected %s", test.input, result, test.expected)
		}
	}
}

// Test the console rendering of the proposal tables
func TestRenderConsole(t *testing.T) {
	index := NewTemporalIndex()
	for _, d := range []string{"2024-01-01", "2024-01-08", "2024-01-15", "2024-01-22", "2024-01-29"} {
		date := day(d)
		index.Add("git", &date)
	}

	result := &AnalysisResult{
		Report:               sampleReport(),
		Index:                index,
		TotalEntries:         100,
		AcceptedCommands:     80,
		SkippedCommands:      20,
		SkipBreakdown:        []SkipCount{{Reason: SkipInvalidCommand, Count: 20}},
		PatternsBeforeFilter: 40,
		PatternsKept:         12,
	}

	var buf bytes.Buffer
	renderer := NewReportRenderer(&buf)
	renderer.RenderConsole(result, defaultAnalyzerConfig())

	out := buf.String()
	for _, want := range []string{
		"TEMPORAL ANALYSIS SUMMARY",
		"Total entries processed: 100",
		"invalid command: 20",
		"ALIAS SUGGESTIONS",
		"FUNCTION SUGGESTIONS",
		"ENVIRONMENT VARIABLE SUGGESTIONS",
		"COMBINED SAVINGS SUMMARY:",
		"TOTAL characters saved: 830",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("console output missing %q", want)
		}
	}

	// top env var suggestion renders a before/after substitution example
	if !strings.Contains(out, "After:  tail -f $VAR_LOG") {
		t.Error("console output missing env var substitution example")
	}
}

// Test table column clipping
func TestClip(t *testing.T) {
	if got := clip("short", 30); got != "short" {
		t.Errorf("clip(short, 30) = %q", got)
	}
	long := strings.Repeat("a", 40)
	clipped := clip(long, 30)
	if len(clipped) != 30 || !strings.HasSuffix(clipped, "...") {
		t.Errorf("clip of long string = %q, expected 30 chars ending in ...", clipped)
	}
}
