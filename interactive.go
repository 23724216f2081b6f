package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
)

// ReviewProposals walks the ranked proposals one at a time and lets the user
// accept or skip each before the suggestion scripts are written. Returns a
// report containing only the accepted proposals.
func ReviewProposals(report *SavingsReport) (*SavingsReport, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "tempo> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "done",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize readline: %w", err)
	}
	defer rl.Close()

	accepted := &SavingsReport{}
	done := false

	fmt.Println("Interactive review: accept [y], skip [n], keep the rest [a], quit review [q]")
	fmt.Println()

	for _, proposal := range report.Aliases {
		if done {
			accepted.Aliases = append(accepted.Aliases, proposal)
			continue
		}
		prompt := fmt.Sprintf("alias %s=%s  (%dx, saves %d chars)",
			proposal.Alias, shellQuote(proposal.Source), proposal.Count, proposal.Savings)
		keep, all, quit, err := askProposal(rl, prompt)
		if err != nil {
			return nil, err
		}
		if quit {
			recomputeTotals(accepted)
			return accepted, nil
		}
		if all {
			done = true
			keep = true
		}
		if keep {
			accepted.Aliases = append(accepted.Aliases, proposal)
		}
	}

	for _, proposal := range report.Functions {
		if done {
			accepted.Functions = append(accepted.Functions, proposal)
			continue
		}
		prompt := fmt.Sprintf("function %s -> %s ...  (%dx, saves %d chars)",
			proposal.Name, proposal.Prefix, proposal.TotalUsage, proposal.Savings)
		keep, all, quit, err := askProposal(rl, prompt)
		if err != nil {
			return nil, err
		}
		if quit {
			recomputeTotals(accepted)
			return accepted, nil
		}
		if all {
			done = true
			keep = true
		}
		if keep {
			accepted.Functions = append(accepted.Functions, proposal)
		}
	}

	for _, proposal := range report.EnvVars {
		if done {
			accepted.EnvVars = append(accepted.EnvVars, proposal)
			continue
		}
		prompt := fmt.Sprintf("export %s=%s  (%dx, saves %d chars)",
			proposal.Name, shellQuote(proposal.Literal), proposal.TotalUsage, proposal.Savings)
		keep, all, quit, err := askProposal(rl, prompt)
		if err != nil {
			return nil, err
		}
		if quit {
			recomputeTotals(accepted)
			return accepted, nil
		}
		if all {
			done = true
			keep = true
		}
		if keep {
			accepted.EnvVars = append(accepted.EnvVars, proposal)
		}
	}

	recomputeTotals(accepted)
	return accepted, nil
}

// askProposal prompts for one proposal; returns keep, accept-all, and quit
func askProposal(rl *readline.Instance, prompt string) (bool, bool, bool, error) {
	fmt.Println(prompt)
	for {
		rl.SetPrompt("  [y/n/a/q] ")
		input, err := rl.Readline()
		if err != nil {
			if err == readline.ErrInterrupt || err == io.EOF {
				return false, false, true, nil
			}
			return false, false, false, fmt.Errorf("error reading input: %w", err)
		}

		switch strings.ToLower(strings.TrimSpace(input)) {
		case "y", "yes", "":
			return true, false, false, nil
		case "n", "no":
			return false, false, false, nil
		case "a", "all":
			return true, true, false, nil
		case "q", "quit":
			return false, false, true, nil
		}
	}
}

// recomputeTotals refreshes the aggregate figures after a review pass
func recomputeTotals(report *SavingsReport) {
	report.AliasChars = 0
	report.FunctionChars = 0
	report.EnvChars = 0
	report.OccurrencesAffected = 0

	for _, proposal := range report.Aliases {
		report.AliasChars += proposal.Savings
		report.OccurrencesAffected += proposal.Count
	}
	for _, proposal := range report.Functions {
		report.FunctionChars += proposal.Savings
		report.OccurrencesAffected += proposal.TotalUsage
	}
	for _, proposal := range report.EnvVars {
		report.EnvChars += proposal.Savings
		report.OccurrencesAffected += proposal.TotalUsage
	}

	report.TotalChars = report.AliasChars + report.FunctionChars + report.EnvChars
	report.AveragePerUse = 0
	if report.OccurrencesAffected > 0 {
		report.AveragePerUse = float64(report.TotalChars) / float64(report.OccurrencesAffected)
	}
	report.MinutesSaved = float64(report.TotalChars) / typingCharsPerMinute
}
