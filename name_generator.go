package main

import (
	"fmt"
	"regexp"
	"strings"
)

// defaultKnownTools are multi-word command families whose aliases read better
// as tool letter plus subcommand initials
var defaultKnownTools = []string{
	"git", "docker", "npm", "pip", "kubectl", "cargo", "apt", "brew", "make",
}

// defaultReservedWords are shell keywords, builtins, and common system
// commands that generated names must never shadow
var defaultReservedWords = []string{
	// Shell keywords
	"if", "then", "else", "elif", "fi", "for", "while", "until", "do", "done",
	"case", "esac", "select", "function", "time", "in",
	// Builtins
	"alias", "bg", "bind", "break", "builtin", "cd", "command", "continue",
	"declare", "dirs", "disown", "echo", "eval", "exec", "exit", "export",
	"fc", "fg", "hash", "help", "history", "jobs", "kill", "let", "local",
	"popd", "printf", "pushd", "pwd", "read", "readonly", "return", "set",
	"shift", "source", "test", "times", "trap", "type", "ulimit", "umask",
	"unalias", "unset", "wait",
	// Common system commands
	"ls", "cp", "mv", "rm", "cat", "less", "more", "grep", "sed", "awk",
	"find", "man", "ps", "top", "df", "du", "tar", "ssh", "scp", "curl",
	"wget", "vi", "vim", "nano", "su", "sudo", "which", "env",
}

var (
	alphanumericRegex  = regexp.MustCompile(`^[a-zA-Z0-9]+$`)
	envNameSplitRegex  = regexp.MustCompile(`[/._-]+`)
	envNameCleanRegex  = regexp.MustCompile(`[^A-Z0-9_]`)
	underscoreRunRegex = regexp.MustCompile(`_+`)
)

const maxEnvNameLength = 20

// NameGenerator turns semantic seeds (roots, prefixes, literals) into short
// identifier candidates. It holds only naming rules; allocation state lives
// in NameAllocator.
type NameGenerator struct {
	knownTools    map[string]bool
	stripPrefixes []string
}

// NewNameGenerator creates a generator from the naming rules. Extra known
// tools and path prefixes to strip come from the rules file.
func NewNameGenerator(rules *RulesConfig) *NameGenerator {
	tools := make(map[string]bool)
	for _, tool := range defaultKnownTools {
		tools[tool] = true
	}
	stripPrefixes := []string{}
	if rules != nil {
		for _, tool := range rules.KnownTools {
			tools[tool] = true
		}
		stripPrefixes = append(stripPrefixes, rules.StripPrefixes...)
	}

	return &NameGenerator{
		knownTools:    tools,
		stripPrefixes: stripPrefixes,
	}
}

// RootSeed seeds a one-letter alias from a root command
func (g *NameGenerator) RootSeed(root string) string {
	if root == "" {
		return "cmd"
	}
	return strings.ToLower(root[:1])
}

// AliasSeed builds an alias candidate from the meaningful tokens of a command
func (g *NameGenerator) AliasSeed(command string) string {
	tokens := strings.Fields(command)

	meaningful := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if alphanumericRegex.MatchString(token) {
			meaningful = append(meaningful, token)
		}
	}
	if len(meaningful) == 0 {
		meaningful = tokens
	}
	if len(meaningful) == 0 {
		return "cmd"
	}

	var seed string
	switch {
	case len(meaningful) == 2:
		seed = meaningful[0][:1] + meaningful[1][:1]
	case g.knownTools[meaningful[0]]:
		seed = meaningful[0][:1]
		for _, token := range meaningful[1:] {
			seed += token[:1]
			if len(seed) >= 3 {
				break
			}
		}
	default:
		for i, token := range meaningful {
			if i >= 3 {
				break
			}
			seed += token[:1]
		}
	}

	if seed == "" {
		seed = "cmd"
	}
	return strings.ToLower(seed)
}

// EnvVarSeed builds an environment variable name for a classified literal
func (g *NameGenerator) EnvVarSeed(literal string, stringType StringType) string {
	cleaned := literal
	prefix := ""

	switch stringType {
	case StringHash:
		return "COMMIT_HASH"
	case StringVersion:
		return "VERSION"
	case StringURL:
		cleaned = regexp.MustCompile(`^https?://`).ReplaceAllString(cleaned, "")
		if idx := strings.Index(cleaned, "/"); idx >= 0 {
			cleaned = cleaned[:idx]
		}
		prefix = "URL"
	case StringFlag:
		cleaned = strings.TrimPrefix(cleaned, "--")
		prefix = "FLAG"
	case StringHostPort:
		if idx := strings.LastIndex(cleaned, ":"); idx >= 0 {
			cleaned = cleaned[:idx]
		}
		prefix = "HOST"
	case StringPathOrBranch:
		switch {
		case strings.HasPrefix(cleaned, "origin/"):
			cleaned = strings.TrimPrefix(cleaned, "origin/")
			prefix = "BRANCH"
		case strings.HasPrefix(cleaned, "upstream/"):
			cleaned = strings.TrimPrefix(cleaned, "upstream/")
			prefix = "BRANCH"
		}
	case StringPath:
		for _, strip := range g.stripPrefixes {
			cleaned = strings.TrimPrefix(cleaned, strip)
		}
		cleaned = regexp.MustCompile(`^/home/[\w]+/`).ReplaceAllString(cleaned, "")
		cleaned = strings.TrimPrefix(cleaned, "/")
	}

	parts := envNameSplitRegex.Split(cleaned, -1)
	meaningful := make([]string, 0, len(parts))
	for _, part := range parts {
		if len(part) > 1 && !isDigitsOnly(part) {
			meaningful = append(meaningful, part)
		}
	}

	if len(meaningful) == 0 {
		// Fall back to the last path-like segments of the original literal
		for _, part := range strings.Split(literal, "/") {
			if len(part) > 1 {
				meaningful = append(meaningful, part)
			}
		}
		if len(meaningful) > 2 {
			meaningful = meaningful[len(meaningful)-2:]
		}
	}

	var base string
	switch {
	case len(meaningful) >= 2:
		base = meaningful[0] + "_" + meaningful[1]
	case len(meaningful) == 1:
		base = meaningful[0]
	default:
		base = "VAR"
	}

	name := base
	if prefix != "" {
		name = prefix + "_" + base
	}
	name = strings.ToUpper(name)
	name = envNameCleanRegex.ReplaceAllString(name, "_")
	name = underscoreRunRegex.ReplaceAllString(name, "_")
	name = strings.Trim(name, "_")

	if len(name) > maxEnvNameLength {
		name = name[:maxEnvNameLength]
		name = strings.Trim(name, "_")
	}
	if name == "" {
		name = "VAR"
	}

	return name
}

// NameAllocator hands out collision-free identifiers. It is process-scoped
// state: created empty at the start of name generation and discarded at the
// end of the run. Allocation is sequential because later names must see
// earlier allocations.
type NameAllocator struct {
	allocated map[string]struct{}
	reserved  map[string]bool
	oracle    *CommandCache
	fallbacks int
}

// alternateSuffixes are tried after numeric suffixes are exhausted
var alternateSuffixes = []string{"x", "alt", "new", "my"}

// NewNameAllocator creates an empty allocator over the reserved-word set and
// the command oracle. extraReserved extends the built-in set.
func NewNameAllocator(oracle *CommandCache, extraReserved []string) *NameAllocator {
	reserved := make(map[string]bool)
	for _, word := range defaultReservedWords {
		reserved[word] = true
	}
	for _, word := range extraReserved {
		reserved[strings.ToLower(word)] = true
	}

	return &NameAllocator{
		allocated: make(map[string]struct{}),
		reserved:  reserved,
		oracle:    oracle,
	}
}

// acceptable reports whether a candidate is simultaneously unallocated,
// unreserved, and not resolvable as an existing command
func (na *NameAllocator) acceptable(name string) bool {
	if name == "" {
		return false
	}
	if _, taken := na.allocated[name]; taken {
		return false
	}
	if na.reserved[strings.ToLower(name)] {
		return false
	}
	return !na.oracle.Exists(name)
}

// Allocate turns a seed into a collision-safe name and records it so later
// allocations cannot reuse it
func (na *NameAllocator) Allocate(seed string) string {
	if na.acceptable(seed) {
		na.allocated[seed] = struct{}{}
		return seed
	}

	for n := 1; n <= 99; n++ {
		candidate := fmt.Sprintf("%s%d", seed, n)
		if na.acceptable(candidate) {
			na.allocated[candidate] = struct{}{}
			return candidate
		}
	}

	for _, suffix := range alternateSuffixes {
		candidate := seed + suffix
		if na.acceptable(candidate) {
			na.allocated[candidate] = struct{}{}
			return candidate
		}
	}

	for {
		na.fallbacks++
		candidate := fmt.Sprintf("cmd%d", na.fallbacks)
		if na.acceptable(candidate) {
			na.allocated[candidate] = struct{}{}
			return candidate
		}
	}
}
