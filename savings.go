package main

// typingCharsPerMinute is the assumed typing rate behind the time-saved
// figure. Purely a reporting heuristic.
const typingCharsPerMinute = 200

// SavingsReport aggregates the accepted proposals and their estimated impact
type SavingsReport struct {
	Aliases   []AliasProposal
	Functions []FunctionProposal
	EnvVars   []EnvVarProposal

	AliasChars          int
	FunctionChars       int
	EnvChars            int
	TotalChars          int
	OccurrencesAffected int
	AveragePerUse       float64
	MinutesSaved        float64
}

// EstimateSavings finalizes names for the ranked proposal lists and computes
// the aggregate metrics. Names are allocated sequentially in rank order,
// strictly after ranking, so collision resolution never perturbs the ranking.
// Proposals whose final name erases the savings are dropped.
func EstimateSavings(
	aliases []AliasProposal,
	functions []FunctionProposal,
	envVars []EnvVarProposal,
	namer *NameGenerator,
	allocator *NameAllocator,
	config AnalyzerConfig,
) *SavingsReport {
	report := &SavingsReport{}

	aliases = truncateAliases(aliases, config.TopAliases)
	functions = truncateFunctions(functions, config.TopFunctions)
	envVars = truncateEnvVars(envVars, config.TopEnvVars)

	for _, proposal := range aliases {
		seed := namer.AliasSeed(proposal.Source)
		if proposal.Kind == AliasRoot {
			seed = namer.RootSeed(proposal.Source)
		}
		proposal.Alias = allocator.Allocate(seed)

		saved := (len(proposal.Source) - len(proposal.Alias)) * proposal.Count
		if saved <= 0 {
			continue
		}
		proposal.Savings = saved

		report.Aliases = append(report.Aliases, proposal)
		report.AliasChars += saved
		report.OccurrencesAffected += proposal.Count
	}

	for _, proposal := range functions {
		proposal.Name = allocator.Allocate(proposal.Name)

		saved := (len(proposal.Prefix) - len(proposal.Name) - 1) * proposal.TotalUsage
		if saved <= 0 {
			continue
		}
		proposal.Savings = saved

		report.Functions = append(report.Functions, proposal)
		report.FunctionChars += saved
		report.OccurrencesAffected += proposal.TotalUsage
	}

	for _, proposal := range envVars {
		proposal.Name = allocator.Allocate(proposal.Name)

		perUse := len(proposal.Literal) - len("$"+proposal.Name)
		if perUse <= 0 {
			continue
		}
		proposal.PerUse = perUse
		proposal.Savings = perUse * proposal.TotalUsage

		report.EnvVars = append(report.EnvVars, proposal)
		report.EnvChars += proposal.Savings
		report.OccurrencesAffected += proposal.TotalUsage
	}

	report.TotalChars = report.AliasChars + report.FunctionChars + report.EnvChars
	if report.OccurrencesAffected > 0 {
		report.AveragePerUse = float64(report.TotalChars) / float64(report.OccurrencesAffected)
	}
	report.MinutesSaved = float64(report.TotalChars) / typingCharsPerMinute

	return report
}

func truncateAliases(proposals []AliasProposal, limit int) []AliasProposal {
	if limit > 0 && len(proposals) > limit {
		return proposals[:limit]
	}
	return proposals
}

func truncateFunctions(proposals []FunctionProposal, limit int) []FunctionProposal {
	if limit > 0 && len(proposals) > limit {
		return proposals[:limit]
	}
	return proposals
}

func truncateEnvVars(proposals []EnvVarProposal, limit int) []EnvVarProposal {
	if limit > 0 && len(proposals) > limit {
		return proposals[:limit]
	}
	return proposals
}
