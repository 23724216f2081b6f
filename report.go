package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// ReportRenderer formats analysis results as console tables and suggestion
// scripts
type ReportRenderer struct {
	out io.Writer
}

// NewReportRenderer creates a renderer writing to the given stream
func NewReportRenderer(out io.Writer) *ReportRenderer {
	return &ReportRenderer{out: out}
}

// RenderConsole prints the full report: executive summary, filtering
// breakdown, top recurring commands, and the ranked proposal tables
func (r *ReportRenderer) RenderConsole(result *AnalysisResult, config AnalyzerConfig) {
	r.PrintSummary(result, config)
	r.PrintFilterBreakdown(result)
	r.PrintTopCommands(result, 15)
	r.PrintAliases(result.Report)
	r.PrintFunctions(result.Report)
	r.PrintEnvVars(result.Report)
	r.PrintTotals(result.Report)
}

// PrintSummary prints the executive summary
func (r *ReportRenderer) PrintSummary(result *AnalysisResult, config AnalyzerConfig) {
	fmt.Fprintln(r.out, strings.Repeat("=", 80))
	fmt.Fprintln(r.out, "TEMPORAL ANALYSIS SUMMARY")
	fmt.Fprintln(r.out, strings.Repeat("=", 80))
	fmt.Fprintf(r.out, "Total entries processed: %d\n", result.TotalEntries)
	fmt.Fprintf(r.out, "Commands accepted: %d\n", result.AcceptedCommands)
	fmt.Fprintf(r.out, "Commands skipped: %d\n", result.SkippedCommands)
	fmt.Fprintf(r.out, "Patterns tracked before filtering: %d\n", result.PatternsBeforeFilter)
	fmt.Fprintf(r.out, "Patterns kept (used on %d+ non-adjacent days): %d\n",
		config.MinNonAdjacentDays, result.PatternsKept)

	if result.TotalEntries > 0 {
		noise := float64(result.SkippedCommands) / float64(result.TotalEntries) * 100
		fmt.Fprintf(r.out, "Filter effectiveness: %.1f%% noise removed\n", noise)
	}

	if !result.FirstDate.IsZero() {
		span := int(result.LastDate.Sub(result.FirstDate).Hours() / 24)
		fmt.Fprintf(r.out, "Analysis period: %s to %s (%d days)\n",
			result.FirstDate.Format("2006-01-02"), result.LastDate.Format("2006-01-02"), span)
	}
	fmt.Fprintln(r.out)
}

// PrintFilterBreakdown prints the per-reason skip counts
func (r *ReportRenderer) PrintFilterBreakdown(result *AnalysisResult) {
	if len(result.SkipBreakdown) == 0 {
		return
	}

	fmt.Fprintln(r.out, "Filtering breakdown:")
	for _, skip := range result.SkipBreakdown {
		label := strings.ReplaceAll(string(skip.Reason), "_", " ")
		fmt.Fprintf(r.out, "  - %s: %d\n", label, skip.Count)
	}
	fmt.Fprintln(r.out)
}

// PrintTopCommands prints the most used surviving single-word commands
func (r *ReportRenderer) PrintTopCommands(result *AnalysisResult, limit int) {
	type rankedCommand struct {
		command string
		count   int
	}

	var commands []rankedCommand
	for _, pattern := range result.Index.Patterns() {
		if !strings.Contains(pattern, " ") {
			commands = append(commands, rankedCommand{pattern, result.Index.Count(pattern)})
		}
	}
	if len(commands) == 0 {
		return
	}

	// Patterns() is sorted, so a stable selection by count keeps ties ordered
	for i := 0; i < len(commands); i++ {
		best := i
		for j := i + 1; j < len(commands); j++ {
			if commands[j].count > commands[best].count {
				best = j
			}
		}
		commands[i], commands[best] = commands[best], commands[i]
	}
	if len(commands) > limit {
		commands = commands[:limit]
	}

	fmt.Fprintf(r.out, "TOP %d RECURRING COMMANDS (Multi-Day Usage):\n", len(commands))
	fmt.Fprintln(r.out, strings.Repeat("-", 60))
	fmt.Fprintf(r.out, "%-4s %-20s %-6s %-6s %-8s\n", "Rank", "Command", "Uses", "Days", "Span")
	fmt.Fprintln(r.out, strings.Repeat("-", 60))
	for i, cmd := range commands {
		fmt.Fprintf(r.out, "%3d. %-20s %4dx %4dd %6dd\n",
			i+1, cmd.command, cmd.count,
			result.Index.NonAdjacentDays(cmd.command), result.Index.DateSpan(cmd.command))
	}
	fmt.Fprintln(r.out)
}

// PrintAliases prints the ranked alias suggestions
func (r *ReportRenderer) PrintAliases(report *SavingsReport) {
	fmt.Fprintln(r.out, "ALIAS SUGGESTIONS (Root vs Pattern Analysis):")
	fmt.Fprintln(r.out, strings.Repeat("-", 95))
	if len(report.Aliases) == 0 {
		fmt.Fprintln(r.out, "  (none)")
		fmt.Fprintln(r.out)
		return
	}

	fmt.Fprintf(r.out, "%-4s %-30s %-8s %-8s %-6s %-15s\n",
		"Rank", "Original Command", "Alias", "Type", "Uses", "Savings")
	fmt.Fprintln(r.out, strings.Repeat("-", 95))
	for i, proposal := range report.Aliases {
		perUse := len(proposal.Source) - len(proposal.Alias)
		fmt.Fprintf(r.out, "%3d. %-30s %-8s %-8s %4dx %2d x %d = %d chars\n",
			i+1, clip(proposal.Source, 30), proposal.Alias, proposal.Kind,
			proposal.Count, perUse, proposal.Count, proposal.Savings)
	}
	fmt.Fprintln(r.out)
}

// PrintFunctions prints the ranked shell function suggestions
func (r *ReportRenderer) PrintFunctions(report *SavingsReport) {
	fmt.Fprintln(r.out, "FUNCTION SUGGESTIONS (Shared Prefixes):")
	fmt.Fprintln(r.out, strings.Repeat("-", 95))
	if len(report.Functions) == 0 {
		fmt.Fprintln(r.out, "  (none)")
		fmt.Fprintln(r.out)
		return
	}

	fmt.Fprintf(r.out, "%-4s %-35s %-10s %-6s %-6s %-15s\n",
		"Rank", "Prefix", "Function", "Uses", "Vars", "Savings")
	fmt.Fprintln(r.out, strings.Repeat("-", 95))
	for i, proposal := range report.Functions {
		fmt.Fprintf(r.out, "%3d. %-35s %-10s %4dx %4d %6d chars\n",
			i+1, clip(proposal.Prefix, 35), proposal.Name,
			proposal.TotalUsage, proposal.Variations, proposal.Savings)
	}
	fmt.Fprintln(r.out)
}

// PrintEnvVars prints the ranked environment variable suggestions
func (r *ReportRenderer) PrintEnvVars(report *SavingsReport) {
	fmt.Fprintln(r.out, "ENVIRONMENT VARIABLE SUGGESTIONS (Frequent Strings):")
	fmt.Fprintln(r.out, strings.Repeat("-", 105))
	if len(report.EnvVars) == 0 {
		fmt.Fprintln(r.out, "  (none)")
		fmt.Fprintln(r.out)
		return
	}

	fmt.Fprintf(r.out, "%-4s %-35s %-11s %-15s %-6s %-5s %-15s\n",
		"Rank", "String", "Type", "Env Var", "Uses", "Cmds", "Savings")
	fmt.Fprintln(r.out, strings.Repeat("-", 105))
	for i, proposal := range report.EnvVars {
		fmt.Fprintf(r.out, "%3d. %-35s %-11s $%-14s %4dx %3d %2d x %d = %d chars\n",
			i+1, clip(proposal.Literal, 35), proposal.Type, proposal.Name,
			proposal.TotalUsage, proposal.Commands,
			proposal.PerUse, proposal.TotalUsage, proposal.Savings)
	}

	top := report.EnvVars[0]
	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, "Example usage for top suggestion:")
	fmt.Fprintf(r.out, "  export %s=%s\n", top.Name, shellQuote(top.Literal))
	if len(top.Examples) > 0 {
		example := top.Examples[0]
		fmt.Fprintf(r.out, "  Before: %s\n", example)
		fmt.Fprintf(r.out, "  After:  %s\n", strings.ReplaceAll(example, top.Literal, "$"+top.Name))
	}
	fmt.Fprintln(r.out)
}

// PrintTotals prints the combined savings summary
func (r *ReportRenderer) PrintTotals(report *SavingsReport) {
	fmt.Fprintln(r.out, "COMBINED SAVINGS SUMMARY:")
	fmt.Fprintf(r.out, "- Alias savings: %d chars\n", report.AliasChars)
	fmt.Fprintf(r.out, "- Function savings: %d chars\n", report.FunctionChars)
	fmt.Fprintf(r.out, "- Environment variable savings: %d chars\n", report.EnvChars)
	fmt.Fprintf(r.out, "- TOTAL characters saved: %d chars\n", report.TotalChars)
	fmt.Fprintf(r.out, "- Commands/usages affected: %d\n", report.OccurrencesAffected)
	if report.OccurrencesAffected > 0 {
		fmt.Fprintf(r.out, "- Average savings per usage: %.1f characters\n", report.AveragePerUse)
		fmt.Fprintf(r.out, "- Estimated time saved: %.1f minutes\n", report.MinutesSaved)
	}
	fmt.Fprintln(r.out)
}

// WriteScripts writes the three suggestion scripts (aliases, functions,
// exports) to the output directory, each proposal preceded by its rationale
func WriteScripts(dir string, report *SavingsReport) ([]string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	var written []string

	if len(report.Aliases) > 0 {
		var b strings.Builder
		b.WriteString("# Alias suggestions generated by tempo\n")
		b.WriteString("# Source this file or copy entries into your shell rc\n\n")
		for _, proposal := range report.Aliases {
			b.WriteString(fmt.Sprintf("# %s alias: used %dx, saves %d chars\n",
				proposal.Kind, proposal.Count, proposal.Savings))
			if proposal.Kind == AliasRoot && len(proposal.Members) > 0 {
				b.WriteString(fmt.Sprintf("# covers: %s\n", strings.Join(proposal.Members, ", ")))
			}
			b.WriteString(fmt.Sprintf("alias %s=%s\n\n", proposal.Alias, shellQuote(proposal.Source)))
		}
		path := filepath.Join(dir, "aliases.sh")
		if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
			return written, fmt.Errorf("failed to write %s: %w", path, err)
		}
		written = append(written, path)
	}

	if len(report.Functions) > 0 {
		var b strings.Builder
		b.WriteString("# Function suggestions generated by tempo\n\n")
		for _, proposal := range report.Functions {
			b.WriteString(fmt.Sprintf("# prefix %q: used %dx with %d variations, saves %d chars\n",
				proposal.Prefix, proposal.TotalUsage, proposal.Variations, proposal.Savings))
			b.WriteString(fmt.Sprintf("%s() {\n    %s \"$@\"\n}\n\n", proposal.Name, proposal.Prefix))
		}
		path := filepath.Join(dir, "functions.sh")
		if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
			return written, fmt.Errorf("failed to write %s: %w", path, err)
		}
		written = append(written, path)
	}

	if len(report.EnvVars) > 0 {
		var b strings.Builder
		b.WriteString("# Environment variable suggestions generated by tempo\n\n")
		for _, proposal := range report.EnvVars {
			b.WriteString(fmt.Sprintf("# %s literal: used %dx across %d commands, saves %d chars\n",
				proposal.Type, proposal.TotalUsage, proposal.Commands, proposal.Savings))
			b.WriteString(fmt.Sprintf("export %s=%s\n\n", proposal.Name, shellQuote(proposal.Literal)))
		}
		path := filepath.Join(dir, "exports.sh")
		if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
			return written, fmt.Errorf("failed to write %s: %w", path, err)
		}
		written = append(written, path)
	}

	return written, nil
}

// shellQuote single-quotes a value for safe inclusion in generated scripts
func shellQuote(value string) string {
	return "'" + strings.ReplaceAll(value, "'", `'\''`) + "'"
}

// clip truncates a string to fit a table column
func clip(value string, width int) string {
	if len(value) <= width {
		return value
	}
	if width <= 3 {
		return value[:width]
	}
	return value[:width-3] + "..."
}
