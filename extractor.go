package main

import (
	"regexp"
	"sort"
	"strings"
)

// SkipReason classifies why a history line was excluded from analysis
type SkipReason string

const (
	SkipShellConstruct  SkipReason = "shell_construct"
	SkipInvalidCommand  SkipReason = "invalid_command"
	SkipTooLong         SkipReason = "too_long"
	SkipSuspiciousPaste SkipReason = "suspicious_paste"
)

// maxRootLength guards against pasted non-command text masquerading as a command
const maxRootLength = 50

// shellConstructs are control keywords that start compound statements rather
// than commands worth aliasing
var shellConstructs = map[string]bool{
	"if": true, "then": true, "else": true, "elif": true, "fi": true,
	"for": true, "while": true, "until": true, "do": true, "done": true,
	"case": true, "esac": true, "select": true, "function": true,
	"{": true, "}": true,
}

// operatorRegex matches shell operators with any surrounding whitespace, so
// `a&&b` and `a && b` normalize to the same pattern. Longest alternatives
// come first so `&&` is not split into `&`-adjacent text.
var operatorRegex = regexp.MustCompile(`\s*(\|\||&&|;|\|{1}|>>|>|<<|<)\s*`)

var whitespaceRegex = regexp.MustCompile(`\s+`)

// normalizeCommand canonicalizes a command line: trimmed, operators re-spaced
// to a single form, runs of whitespace collapsed. Idempotent.
func normalizeCommand(line string) string {
	normalized := strings.TrimSpace(line)
	normalized = operatorRegex.ReplaceAllString(normalized, " $1 ")
	normalized = whitespaceRegex.ReplaceAllString(normalized, " ")
	return strings.TrimSpace(normalized)
}

// PasteFilter is an optional predicate that flags lines which look like pasted
// prose or data rather than typed commands. A nil filter disables the stage.
type PasteFilter func(line string, firstToken string) bool

// PatternExtractor turns cleaned command lines into the candidate patterns
// they contribute, rejecting lines that cannot be genuine commands
type PatternExtractor struct {
	oracle      *CommandCache
	pasteFilter PasteFilter
	skipReasons map[SkipReason]int
	skipped     int
	accepted    int
}

// NewPatternExtractor creates an extractor backed by a cached command oracle.
// pasteFilter may be nil to disable suspicious-paste detection.
func NewPatternExtractor(oracle *CommandCache, pasteFilter PasteFilter) *PatternExtractor {
	return &PatternExtractor{
		oracle:      oracle,
		pasteFilter: pasteFilter,
		skipReasons: make(map[SkipReason]int),
	}
}

// Extract normalizes a command line and returns its pattern set: the full
// line, the root token, and each prefix of 2..5 tokens. The second return is
// the skip reason when the line was rejected.
func (pe *PatternExtractor) Extract(line string) ([]string, SkipReason, bool) {
	cleaned := normalizeCommand(line)
	if cleaned == "" {
		return nil, "", false
	}

	tokens := strings.Fields(cleaned)
	root := tokens[0]

	if shellConstructs[root] {
		return nil, pe.skip(SkipShellConstruct), false
	}

	if len(root) > maxRootLength {
		return nil, pe.skip(SkipTooLong), false
	}

	if pe.pasteFilter != nil && pe.pasteFilter(cleaned, root) {
		return nil, pe.skip(SkipSuspiciousPaste), false
	}

	if !pe.oracle.Exists(root) {
		return nil, pe.skip(SkipInvalidCommand), false
	}

	// Each distinct pattern counts once per line, so a one-word command does
	// not double-count as both full line and root.
	patterns := []string{cleaned}
	if root != cleaned {
		patterns = append(patterns, root)
	}
	for length := 2; length <= 5 && length <= len(tokens); length++ {
		prefix := strings.Join(tokens[:length], " ")
		if prefix != cleaned {
			patterns = append(patterns, prefix)
		}
	}

	pe.accepted++
	return patterns, "", true
}

func (pe *PatternExtractor) skip(reason SkipReason) SkipReason {
	pe.skipped++
	pe.skipReasons[reason]++
	return reason
}

// Accepted returns how many lines passed extraction
func (pe *PatternExtractor) Accepted() int {
	return pe.accepted
}

// Skipped returns how many lines were rejected
func (pe *PatternExtractor) Skipped() int {
	return pe.skipped
}

// SkipBreakdown returns the per-reason rejection counts, most common first
func (pe *PatternExtractor) SkipBreakdown() []SkipCount {
	breakdown := make([]SkipCount, 0, len(pe.skipReasons))
	for reason, count := range pe.skipReasons {
		breakdown = append(breakdown, SkipCount{Reason: reason, Count: count})
	}
	sort.Slice(breakdown, func(i, j int) bool {
		if breakdown[i].Count != breakdown[j].Count {
			return breakdown[i].Count > breakdown[j].Count
		}
		return breakdown[i].Reason < breakdown[j].Reason
	})
	return breakdown
}

// SkipCount pairs a rejection reason with how many lines it claimed
type SkipCount struct {
	Reason SkipReason
	Count  int
}
