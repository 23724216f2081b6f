package main

import (
	"strings"
	"testing"
)

// Test alias seed generation rules
func TestAliasSeed(t *testing.T) {
	tests := []struct {
		command  string
		expected string
	}{
		{"git status", "gs"},             // two tokens: both initials
		{"docker compose up", "dcu"},     // known tool: letter plus initials
		{"git log --oneline", "gl"},      // flag token dropped, two meaningful
		{"terraform plan production", "tpp"}, // unknown tool: first three initials
		{"kubectl get pods --all-namespaces", "kgp"},
		{"", "cmd"},
	}

	namer := NewNameGenerator(nil)
	for _, test := range tests {
		result := namer.AliasSeed(test.command)
		if result != test.expected {
			t.Errorf("AliasSeed(%q) = %q, expected %q", test.command, result, test.expected)
		}
	}
}

// Test root seed generation
func TestRootSeed(t *testing.T) {
	namer := NewNameGenerator(nil)
	if seed := namer.RootSeed("kubectl"); seed != "k" {
		t.Errorf("RootSeed(kubectl) = %q, expected k", seed)
	}
	if seed := namer.RootSeed(""); seed != "cmd" {
		t.Errorf("RootSeed of empty root = %q, expected cmd", seed)
	}
}

// Test env var seed generation per string type
func TestEnvVarSeed(t *testing.T) {
	tests := []struct {
		literal    string
		stringType StringType
		expected   string
	}{
		{"a1b2c3d4e5f6", StringHash, "COMMIT_HASH"},
		{"v2.3.1", StringVersion, "VERSION"},
		{"https://github.com/acme/widgets", StringURL, "URL_GITHUB_COM"},
		{"--force-with-lease", StringFlag, "FLAG_FORCE_WITH"},
		{"localhost:8080", StringHostPort, "HOST_LOCALHOST"},
		{"origin/feature/login", StringPathOrBranch, "BRANCH_FEATURE_LOGIN"},
		{"/var/log/nginx/access.log", StringPath, "VAR_LOG"},
	}

	namer := NewNameGenerator(nil)
	for _, test := range tests {
		result := namer.EnvVarSeed(test.literal, test.stringType)
		if result != test.expected {
			t.Errorf("EnvVarSeed(%q, %s) = %q, expected %q", test.literal, test.stringType, result, test.expected)
		}
	}
}

// Generated env names stay within the length cap and legal character set
func TestEnvVarSeedShape(t *testing.T) {
	namer := NewNameGenerator(nil)
	literals := []struct {
		literal    string
		stringType StringType
	}{
		{"/extremely/long/deeply/nested/project/directory/path", StringPath},
		{"--some-very-long-flag-name-indeed", StringFlag},
		{"https://very.long.subdomain.example.com/path", StringURL},
		{"work.projects.billing:9440", StringHostPort},
	}

	for _, item := range literals {
		name := namer.EnvVarSeed(item.literal, item.stringType)
		if len(name) > maxEnvNameLength {
			t.Errorf("EnvVarSeed(%q) = %q exceeds %d chars", item.literal, name, maxEnvNameLength)
		}
		if name == "" {
			t.Errorf("EnvVarSeed(%q) returned empty name", item.literal)
		}
		for _, r := range name {
			if !(r >= 'A' && r <= 'Z') && !(r >= '0' && r <= '9') && r != '_' {
				t.Errorf("EnvVarSeed(%q) = %q contains illegal character %q", item.literal, name, r)
			}
		}
		if strings.HasPrefix(name, "_") || strings.HasSuffix(name, "_") {
			t.Errorf("EnvVarSeed(%q) = %q has leading or trailing underscore", item.literal, name)
		}
	}
}

// Path prefixes from the rules file are stripped before naming
func TestEnvVarSeedStripPrefixes(t *testing.T) {
	rules := DefaultRulesConfig()
	rules.StripPrefixes = []string{"/srv/projects/"}

	namer := NewNameGenerator(rules)
	name := namer.EnvVarSeed("/srv/projects/billing/reports", StringPath)
	if name != "BILLING_REPORTS" {
		t.Errorf("EnvVarSeed with strip prefix = %q, expected BILLING_REPORTS", name)
	}
}

// The allocator never returns an allocated, reserved, or oracle-known name,
// for any sequence of requests
func TestNameAllocator(t *testing.T) {
	oracle := newFakeOracle("gs", "gl")
	allocator := NewNameAllocator(oracle, []string{"custom"})

	returned := make(map[string]bool)
	seeds := []string{"gs", "gs", "gs", "gl", "cd", "custom", "dcu", "dcu"}
	for _, seed := range seeds {
		name := allocator.Allocate(seed)
		if returned[name] {
			t.Errorf("Allocate(%q) returned already-allocated name %q", seed, name)
		}
		returned[name] = true

		if oracle.Exists(name) {
			t.Errorf("Allocate(%q) returned oracle-known name %q", seed, name)
		}
		for _, word := range defaultReservedWords {
			if name == word {
				t.Errorf("Allocate(%q) returned reserved word %q", seed, name)
			}
		}
		if name == "custom" {
			t.Errorf("Allocate(%q) returned extra reserved word", seed)
		}
	}
}

// Collision resolution walks seed, seed1..seed99, then alternate suffixes
func TestNameAllocatorSuffixProgression(t *testing.T) {
	allocator := NewNameAllocator(newFakeOracle(), nil)

	if name := allocator.Allocate("db"); name != "db" {
		t.Errorf("first allocation = %q, expected db", name)
	}
	if name := allocator.Allocate("db"); name != "db1" {
		t.Errorf("second allocation = %q, expected db1", name)
	}
	if name := allocator.Allocate("db"); name != "db2" {
		t.Errorf("third allocation = %q, expected db2", name)
	}
}
