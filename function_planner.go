package main

import (
	"sort"
	"strings"
)

// FunctionProposal recommends a shell function for a shared multi-word prefix
// whose suffixes genuinely vary
type FunctionProposal struct {
	Prefix     string
	Name       string // filled in collision-safe just before emission
	TotalUsage int
	Variations int
	Suffixes   []string // example suffixes, most used first
	Savings    int
}

const (
	minFunctionMembers = 2
	minFunctionUsage   = 10
)

// PlanFunctions finds 3-5 word prefixes shared by at least two surviving
// patterns with real suffix variety, meaning at least two distinct non-empty
// continuations. A prefix used identically every time is better served by a
// plain alias, so those are rejected. namer supplies
// provisional names for the savings estimate; final names are allocated
// collision-safe at emission time.
func PlanFunctions(index *TemporalIndex, namer *NameGenerator) []FunctionProposal {
	type prefixGroup struct {
		members  int
		usage    int
		suffixes map[string]int
	}

	groups := make(map[string]*prefixGroup)
	for _, pattern := range index.Patterns() {
		tokens := strings.Fields(pattern)
		if len(tokens) < 3 {
			continue
		}

		count := index.Count(pattern)
		for length := 3; length <= 5 && length <= len(tokens); length++ {
			prefix := strings.Join(tokens[:length], " ")
			suffix := strings.TrimSpace(strings.Join(tokens[length:], " "))

			group, ok := groups[prefix]
			if !ok {
				group = &prefixGroup{suffixes: make(map[string]int)}
				groups[prefix] = group
			}
			group.members++
			group.usage += count
			// The prefix pattern itself joins its own group with an empty
			// suffix. That member always exists once any longer pattern
			// does, so it says nothing about suffix variety.
			if suffix != "" {
				group.suffixes[suffix] += count
			}
		}
	}

	prefixes := make([]string, 0, len(groups))
	for prefix := range groups {
		prefixes = append(prefixes, prefix)
	}
	sort.Strings(prefixes)

	var proposals []FunctionProposal
	for _, prefix := range prefixes {
		group := groups[prefix]
		if group.members < minFunctionMembers ||
			len(group.suffixes) < 2 ||
			group.usage < minFunctionUsage {
			continue
		}

		name := namer.AliasSeed(prefix)
		savings := (len(prefix) - len(name) - 1) * group.usage
		if savings <= 0 {
			continue
		}

		suffixes := make([]string, 0, len(group.suffixes))
		for suffix := range group.suffixes {
			suffixes = append(suffixes, suffix)
		}
		sort.Slice(suffixes, func(i, j int) bool {
			if group.suffixes[suffixes[i]] != group.suffixes[suffixes[j]] {
				return group.suffixes[suffixes[i]] > group.suffixes[suffixes[j]]
			}
			return suffixes[i] < suffixes[j]
		})
		if len(suffixes) > 3 {
			suffixes = suffixes[:3]
		}

		proposals = append(proposals, FunctionProposal{
			Prefix:     prefix,
			Name:       name,
			TotalUsage: group.usage,
			Variations: len(group.suffixes),
			Suffixes:   suffixes,
			Savings:    savings,
		})
	}

	sort.SliceStable(proposals, func(i, j int) bool {
		if proposals[i].Savings != proposals[j].Savings {
			return proposals[i].Savings > proposals[j].Savings
		}
		return proposals[i].Prefix < proposals[j].Prefix
	})

	return proposals
}
