package main

import (
	"sort"
	"strings"
)

// AliasKind distinguishes a root-command alias from a full-pattern alias
type AliasKind string

const (
	AliasRoot    AliasKind = "root"
	AliasPattern AliasKind = "pattern"
)

// AliasProposal recommends a short alias for a root command or a full pattern
type AliasProposal struct {
	Kind    AliasKind
	Source  string // the root or the pattern being aliased
	Alias   string // filled in collision-safe just before emission
	Count   int
	Savings int
	Members []string // multi-word patterns covered by a root alias
}

const (
	// A root alias is operationally simpler than many pattern aliases, so it
	// only needs to look moderately better to win.
	rootSimplicityMargin = 1.2
	minRootUsage         = 5
)

// PlanAliases groups surviving multi-word patterns by root and decides, per
// family, whether to alias the root or the individual patterns. minCount is
// the occurrence floor for pattern-level proposals.
func PlanAliases(index *TemporalIndex, minCount int) []AliasProposal {
	type memberPattern struct {
		pattern string
		count   int
		savings int
	}

	rootGroups := make(map[string][]memberPattern)
	for _, pattern := range index.Patterns() {
		if !strings.Contains(pattern, " ") {
			continue
		}
		count := index.Count(pattern)
		rootGroups[strings.Fields(pattern)[0]] = append(rootGroups[strings.Fields(pattern)[0]], memberPattern{
			pattern: pattern,
			count:   count,
			// Naive assumption: each pattern could be replaced by a 2-char alias
			savings: (len(pattern) - 2) * count,
		})
	}

	roots := make([]string, 0, len(rootGroups))
	for root := range rootGroups {
		roots = append(roots, root)
	}
	sort.Strings(roots)

	var proposals []AliasProposal
	for _, root := range roots {
		members := rootGroups[root]

		totalPatternUsage := 0
		patternSavings := 0
		for _, member := range members {
			totalPatternUsage += member.count
			patternSavings += member.savings
		}

		rootUsage := index.Count(root)
		rootSavings := 0
		if rootUsage > 0 {
			// Aliasing the root to one character benefits every occurrence of
			// the root and of every multi-word pattern built on it
			rootSavings = (len(root) - 1) * (rootUsage + totalPatternUsage)
		}

		if float64(rootSavings) > rootSimplicityMargin*float64(patternSavings) {
			if rootUsage+totalPatternUsage >= minRootUsage {
				memberNames := make([]string, 0, len(members))
				for _, member := range members {
					memberNames = append(memberNames, member.pattern)
				}
				proposals = append(proposals, AliasProposal{
					Kind:    AliasRoot,
					Source:  root,
					Count:   rootUsage + totalPatternUsage,
					Savings: rootSavings,
					Members: memberNames,
				})
			}
			continue
		}

		for _, member := range members {
			if member.count >= minCount {
				proposals = append(proposals, AliasProposal{
					Kind:    AliasPattern,
					Source:  member.pattern,
					Count:   member.count,
					Savings: member.savings,
					Members: []string{member.pattern},
				})
			}
		}
	}

	sort.SliceStable(proposals, func(i, j int) bool {
		if proposals[i].Savings != proposals[j].Savings {
			return proposals[i].Savings > proposals[j].Savings
		}
		return proposals[i].Source < proposals[j].Source
	})

	return proposals
}
