package main

import (
	"regexp"
	"sort"
	"strings"
)

// StringType classifies a literal found in command text. The set is closed so
// naming logic can switch exhaustively.
type StringType int

const (
	StringGeneric StringType = iota
	StringURL
	StringPath
	StringPathOrBranch
	StringFlag
	StringHostPort
	StringHash
	StringVersion
	StringFile
)

// String returns the display tag for a string type
func (t StringType) String() string {
	switch t {
	case StringURL:
		return "URL"
	case StringPath:
		return "Path"
	case StringPathOrBranch:
		return "Path/Branch"
	case StringFlag:
		return "Flag"
	case StringHostPort:
		return "Host:Port"
	case StringHash:
		return "Hash"
	case StringVersion:
		return "Version"
	case StringFile:
		return "File"
	default:
		return "String"
	}
}

// EnvVarProposal recommends promoting a repeated literal to an environment
// variable
type EnvVarProposal struct {
	Literal     string
	Type        StringType
	Name        string // filled in collision-safe just before emission
	TotalUsage  int
	Commands    int // distinct patterns the literal appeared in
	Examples    []string
	PerUse      int
	Savings     int
}

// extractionPatterns is the ordered catalog of structural regexes scanned
// against every surviving pattern's text
var extractionPatterns = []*regexp.Regexp{
	// Git branch/remote references
	regexp.MustCompile(`origin/[\w/.-]+`),
	regexp.MustCompile(`upstream/[\w/.-]+`),
	// Paths, absolute and relative
	regexp.MustCompile(`/[\w/.-]{6,}`),
	regexp.MustCompile(`[\w.-]+/[\w/.-]{6,}`),
	// URLs and network endpoints
	regexp.MustCompile(`https?://[\w/.-]+`),
	regexp.MustCompile(`[\w.-]+\.[\w.-]+/[\w/.-]+`),
	regexp.MustCompile(`[\w.-]+:\d+`),
	// Flags
	regexp.MustCompile(`--[\w-]+=[\w/.-]{4,}`),
	regexp.MustCompile(`--[\w-]{4,}`),
	regexp.MustCompile(`-[\w]{2,}`),
	// Versions and hashes
	regexp.MustCompile(`v\d+\.\d+[\w.-]*`),
	regexp.MustCompile(`[a-f0-9]{8,}`),
	// Filenames with an extension
	regexp.MustCompile(`[\w.-]+\.[\w]{2,4}`),
	// Catch-all word-like strings
	regexp.MustCompile(`[\w.-]{4,}`),
}

// classificationRules map literals to StringTypes in priority order; the first
// match wins. Every rule is prefix-anchored so a substring deeper in the
// literal cannot steal the classification from an earlier rule.
var classificationRules = []struct {
	regex *regexp.Regexp
	tag   StringType
}{
	{regexp.MustCompile(`^https?://`), StringURL},
	{regexp.MustCompile(`^/`), StringPath},
	{regexp.MustCompile(`^[\w.-]+/[\w/.-]+`), StringPathOrBranch},
	{regexp.MustCompile(`^--[\w-]+`), StringFlag},
	{regexp.MustCompile(`^[\w.-]+:\d+$`), StringHostPort},
	{regexp.MustCompile(`^[a-f0-9]{8,}$`), StringHash},
	{regexp.MustCompile(`^v\d+\.\d+`), StringVersion},
	{regexp.MustCompile(`^[\w.-]+\.[\w]{2,4}$`), StringFile},
}

// classifyString tags a literal with the first matching classification rule
func classifyString(literal string) StringType {
	for _, rule := range classificationRules {
		if rule.regex.MatchString(literal) {
			return rule.tag
		}
	}
	return StringGeneric
}

var boolishLiterals = map[string]bool{
	"true": true, "false": true, "null": true, "none": true,
}

var singleLetterFlagRegex = regexp.MustCompile(`^-[a-zA-Z]$`)

// acceptLiteral applies the shared acceptance filters for env var candidates
func acceptLiteral(literal string) bool {
	if len(literal) < 4 {
		return false
	}
	if isDigitsOnly(literal) {
		return false
	}
	if singleLetterFlagRegex.MatchString(literal) {
		return false
	}
	if boolishLiterals[literal] {
		return false
	}
	// Degenerate repeats like "----" carry no information
	distinct := make(map[rune]struct{})
	for _, r := range literal {
		distinct[r] = struct{}{}
	}
	return len(distinct) > 2
}

func isDigitsOnly(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// literalUsage aggregates occurrences of one normalized literal
type literalUsage struct {
	absolute int // occurrences spelled with a leading slash
	relative int
	total    int
	patterns map[string]int
}

// PlanEnvVars scans surviving pattern text for repeated literal substrings
// worth promoting to environment variables. namer supplies provisional names
// for the savings estimate; final names are allocated collision-safe at
// emission time.
func PlanEnvVars(index *TemporalIndex, namer *NameGenerator) []EnvVarProposal {
	usage := make(map[string]*literalUsage)

	for _, pattern := range index.Patterns() {
		count := index.Count(pattern)
		seen := make(map[string]bool)

		for _, regex := range extractionPatterns {
			for _, match := range regex.FindAllString(pattern, -1) {
				if !acceptLiteral(match) {
					continue
				}

				// Aggregate absolute and relative spellings under one key.
				// A literal can match several catalog regexes in the same
				// pattern, so each pattern counts once per literal.
				key := strings.TrimPrefix(match, "/")
				if seen[key] {
					continue
				}
				seen[key] = true

				u, ok := usage[key]
				if !ok {
					u = &literalUsage{patterns: make(map[string]int)}
					usage[key] = u
				}
				if strings.Contains(pattern, "/"+key) {
					u.absolute += count
				} else {
					u.relative += count
				}
				u.total += count
				u.patterns[pattern] = count
			}
		}
	}

	keys := make([]string, 0, len(usage))
	for key := range usage {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var proposals []EnvVarProposal
	for _, key := range keys {
		u := usage[key]

		// Favor whichever spelling was more common among the occurrences
		literal := key
		if u.absolute > u.relative {
			literal = "/" + key
		}

		// Longer, more specific strings need fewer repeats to qualify
		minUsage := 20 - len(literal)
		if minUsage < 5 {
			minUsage = 5
		}
		minCommands := 3
		if len(literal) > 10 {
			minCommands = 2
		}

		if u.total < minUsage || len(u.patterns) < minCommands {
			continue
		}

		stringType := classifyString(literal)
		name := namer.EnvVarSeed(literal, stringType)
		perUse := len(literal) - len("$"+name)
		if perUse <= 0 {
			continue
		}

		examples := make([]string, 0, len(u.patterns))
		for pattern := range u.patterns {
			examples = append(examples, pattern)
		}
		sort.Slice(examples, func(i, j int) bool {
			if u.patterns[examples[i]] != u.patterns[examples[j]] {
				return u.patterns[examples[i]] > u.patterns[examples[j]]
			}
			return examples[i] < examples[j]
		})
		if len(examples) > 3 {
			examples = examples[:3]
		}

		proposals = append(proposals, EnvVarProposal{
			Literal:    literal,
			Type:       stringType,
			Name:       name,
			TotalUsage: u.total,
			Commands:   len(u.patterns),
			Examples:   examples,
			PerUse:     perUse,
			Savings:    perUse * u.total,
		})
	}

	sort.SliceStable(proposals, func(i, j int) bool {
		if proposals[i].Savings != proposals[j].Savings {
			return proposals[i].Savings > proposals[j].Savings
		}
		return proposals[i].Literal < proposals[j].Literal
	})

	return proposals
}
