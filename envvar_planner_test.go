package main

import (
	"testing"
)

// Test string classification priority order
func TestClassifyString(t *testing.T) {
	tests := []struct {
		literal  string
		expected StringType
	}{
		{"https://github.com/acme/widgets", StringURL},
		{"http://localhost:8080/api", StringURL},
		{"/var/log/nginx/access.log", StringPath},
		{"origin/feature/login", StringPathOrBranch},
		{"src/main/resources", StringPathOrBranch},
		{"--force-with-lease", StringFlag},
		{"--config=path/to/file", StringFlag},
		{"--output-dir=build/release", StringFlag},
		{"localhost:8080", StringHostPort},
		{"db.internal:5432", StringHostPort},
		{"a1b2c3d4e5f6", StringHash},
		{"v1.12.0", StringVersion},
		{"config.yaml", StringFile},
		{"widgets", StringGeneric},
	}

	for _, test := range tests {
		result := classifyString(test.literal)
		if result != test.expected {
			t.Errorf("classifyString(%q) = %s, expected %s", test.literal, result, test.expected)
		}
	}
}

// Earlier rules shadow later ones: a URL containing a path is still a URL,
// an absolute path containing dots is still a path
func TestClassifyStringPriority(t *testing.T) {
	if got := classifyString("https://host/deep/path.txt"); got != StringURL {
		t.Errorf("URL with path classified as %s", got)
	}
	if got := classifyString("/opt/app/config.yaml"); got != StringPath {
		t.Errorf("absolute path with extension classified as %s", got)
	}
}

// Test the literal acceptance filters
func TestAcceptLiteral(t *testing.T) {
	tests := []struct {
		literal  string
		expected bool
	}{
		{"abc", false},          // too short
		{"12345", false},        // digits only
		{"-v", false},           // single-letter flag
		{"true", false},         // boolean-ish
		{"null", false},         // boolean-ish
		{"----", false},         // fewer than 3 distinct characters
		{"aaaa", false},         // fewer than 3 distinct characters
		{"main.go", true},
		{"origin/main", true},
		{"--force", true},
	}

	for _, test := range tests {
		result := acceptLiteral(test.literal)
		if result != test.expected {
			t.Errorf("acceptLiteral(%q) = %t, expected %t", test.literal, result, test.expected)
		}
	}
}

// Test env var extraction end to end over an index
func TestPlanEnvVars(t *testing.T) {
	index := NewTemporalIndex()
	days := []string{"2024-01-01", "2024-01-08", "2024-01-15", "2024-01-22", "2024-01-29"}

	// A long path repeated across distinct commands
	addOnDays(index, "tail -f /var/log/app/server.log", days)
	addOnDays(index, "grep ERROR /var/log/app/server.log", days)
	addOnDays(index, "wc -l /var/log/app/server.log", days)

	namer := NewNameGenerator(nil)
	proposals := PlanEnvVars(index, namer)

	var found *EnvVarProposal
	for i := range proposals {
		if proposals[i].Literal == "/var/log/app/server.log" {
			found = &proposals[i]
		}
	}
	if found == nil {
		t.Fatal("expected a proposal for the repeated log path")
	}
	if found.Type != StringPath {
		t.Errorf("Type = %s, expected Path", found.Type)
	}
	if found.TotalUsage != 15 {
		t.Errorf("TotalUsage = %d, expected 15", found.TotalUsage)
	}
	if found.Commands != 3 {
		t.Errorf("Commands = %d, expected 3", found.Commands)
	}
	if found.PerUse != len(found.Literal)-len("$"+found.Name) {
		t.Errorf("PerUse = %d inconsistent with literal/name lengths", found.PerUse)
	}
	if found.Savings != found.PerUse*found.TotalUsage {
		t.Errorf("Savings = %d, expected PerUse x TotalUsage = %d", found.Savings, found.PerUse*found.TotalUsage)
	}
}

// Short literals need many repeats, long literals need few
func TestPlanEnvVarsThresholds(t *testing.T) {
	t.Run("short literal below usage floor", func(t *testing.T) {
		index := NewTemporalIndex()
		// "wdgt" is 4 chars: needs max(5, 20-4) = 16 uses; it gets 10
		for i := 0; i < 2; i++ {
			addOnDays(index, "make wdgt", []string{"2024-01-01", "2024-01-08", "2024-01-15", "2024-01-22", "2024-01-29"})
		}

		for _, proposal := range PlanEnvVars(index, NewNameGenerator(nil)) {
			if proposal.Literal == "wdgt" {
				t.Error("short literal proposed below its usage floor")
			}
		}
	})

	t.Run("needs multiple distinct commands", func(t *testing.T) {
		index := NewTemporalIndex()
		days := []string{"2024-01-01", "2024-01-08", "2024-01-15", "2024-01-22", "2024-01-29"}
		// plenty of uses, but only one distinct command for a short literal
		for i := 0; i < 5; i++ {
			addOnDays(index, "less /var/notes", days)
		}

		for _, proposal := range PlanEnvVars(index, NewNameGenerator(nil)) {
			if proposal.Literal == "/var/notes" {
				t.Error("literal proposed from a single distinct command")
			}
		}
	})
}

// Absolute and relative spellings of the same path aggregate together, with
// the majority spelling winning the display form
func TestPlanEnvVarsSpellingAggregation(t *testing.T) {
	index := NewTemporalIndex()
	days := []string{"2024-01-01", "2024-01-08", "2024-01-15", "2024-01-22", "2024-01-29"}

	addOnDays(index, "cat /srv/data/metrics/report.csv", days)
	addOnDays(index, "head /srv/data/metrics/report.csv", days)
	addOnDays(index, "cp srv/data/metrics/report.csv /tmp", days)

	proposals := PlanEnvVars(index, NewNameGenerator(nil))
	for _, proposal := range proposals {
		if proposal.Literal == "srv/data/metrics/report.csv" {
			t.Error("minority relative spelling chosen over majority absolute spelling")
		}
	}

	var found bool
	for _, proposal := range proposals {
		if proposal.Literal == "/srv/data/metrics/report.csv" {
			found = true
			if proposal.TotalUsage != 15 {
				t.Errorf("TotalUsage = %d, expected both spellings aggregated to 15", proposal.TotalUsage)
			}
		}
	}
	if !found {
		t.Error("expected aggregated proposal for the absolute path")
	}
}
