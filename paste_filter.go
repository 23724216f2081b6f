package main

import (
	"path/filepath"
	"regexp"
	"strings"
	"unicode"
)

// pastePattern pairs a detector with a short label for diagnostics
type pastePattern struct {
	Name     string
	Detector func(line string, firstToken string) bool
}

var (
	uppercaseRunRegex = regexp.MustCompile(`[A-Z]{3,}`)
	base64RunRegex    = regexp.MustCompile(`[A-Za-z0-9+/=]{20,}`)
)

// NewPastePatternFilter builds the default suspicious-paste predicate. Extra
// substring patterns (typically environment-specific, from the rules file) are
// matched against the whole line. The returned filter reports true when a line
// looks like pasted text rather than a typed command.
func NewPastePatternFilter(extraPatterns []string) PasteFilter {
	patterns := []pastePattern{
		{
			Name: "sentence_case",
			Detector: func(line, firstToken string) bool {
				// Capitalized first word followed by lowercase words reads
				// like prose, not a command invocation
				fields := strings.Fields(line)
				if len(fields) < 3 {
					return false
				}
				if !startsWithUpper(firstToken) || isAllUpper(firstToken) {
					return false
				}
				lowerWords := 0
				for _, field := range fields[1:] {
					if field == strings.ToLower(field) {
						lowerWords++
					}
				}
				return lowerWords >= 2
			},
		},
		{
			Name: "uppercase_run",
			Detector: func(line, firstToken string) bool {
				return !isAllUpper(firstToken) && uppercaseRunRegex.MatchString(line)
			},
		},
		{
			Name: "base64_run",
			Detector: func(line, firstToken string) bool {
				match := base64RunRegex.FindString(line)
				return match != "" && (strings.Contains(match, "+") ||
					strings.Contains(match, "/") || strings.HasSuffix(match, "="))
			},
		},
		{
			Name: "long_mixed_case_token",
			Detector: func(line, firstToken string) bool {
				if len(firstToken) <= 15 || filepath.IsAbs(firstToken) {
					return false
				}
				return hasUpper(firstToken) && hasLower(firstToken)
			},
		},
	}

	return func(line string, firstToken string) bool {
		// Known-good shapes short-circuit acceptance: ordinary lowercase
		// commands, relative/absolute/home paths, and all-caps single tokens
		// as used by custom aliases.
		if firstToken == strings.ToLower(firstToken) {
			return false
		}
		switch firstToken[0] {
		case '.', '/', '~':
			return false
		}
		if isAllUpper(firstToken) && !strings.Contains(line, " ") {
			return false
		}

		for _, pattern := range extraPatterns {
			if pattern != "" && strings.Contains(line, pattern) {
				return true
			}
		}

		for _, pattern := range patterns {
			if pattern.Detector(line, firstToken) {
				return true
			}
		}

		return false
	}
}

func startsWithUpper(s string) bool {
	for _, r := range s {
		return unicode.IsUpper(r)
	}
	return false
}

func hasUpper(s string) bool {
	return strings.IndexFunc(s, unicode.IsUpper) >= 0
}

func hasLower(s string) bool {
	return strings.IndexFunc(s, unicode.IsLower) >= 0
}

func isAllUpper(s string) bool {
	return hasUpper(s) && !hasLower(s)
}
