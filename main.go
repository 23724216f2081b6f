package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := newRootCmd()
	rootCmd.AddCommand(newDetectCmd())
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newUpdateCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newRootCmd builds the analyzer command. Flag defaults come from the
// config file plus TEMPO_* environment overrides, so only flags the user
// actually set on the command line take precedence.
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tempo [history file]",
		Short: "Find recurring shell commands and suggest aliases for them",
		Long: `Tempo scans your shell history for commands that recur across
non-adjacent days and proposes aliases, shell functions, and environment
variables ranked by estimated keystroke savings.

A command typed three days in a row is a burst; the same command typed
across three separate weeks is a habit. Tempo only suggests shortcuts
for habits.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cm, err := NewConfigManager()
			if err != nil {
				return err
			}
			if err := cm.Initialize(); err != nil {
				return err
			}
			config := cm.GetConfig()

			if len(args) > 0 {
				config.HistoryFile = args[0]
			}
			applyFlagOverrides(cmd, &config)

			rules, err := LoadRulesConfig(config.RulesFile)
			if err != nil {
				return fmt.Errorf("failed to load rules file: %v", err)
			}

			entries, sourceDesc, err := loadEntries(config)
			if err != nil {
				fmt.Fprintf(os.Stderr, "warning: %v\n", err)
				sourceDesc = "no readable history source"
			}
			if len(entries) == 0 {
				fmt.Fprintf(os.Stderr, "warning: no history entries found in %s\n", sourceDesc)
			}

			oracle := NewSystemOracle(time.Duration(config.OracleTimeoutMs) * time.Millisecond)
			analyzer := NewTemporalAnalyzer(config, rules, oracle)
			analyzer.Ingest(entries)
			result := analyzer.Analyze()

			fmt.Printf("Analyzed %d entries from %s\n", len(entries), sourceDesc)

			renderer := NewReportRenderer(os.Stdout)
			renderer.RenderConsole(result, config)

			report := result.Report
			interactive, _ := cmd.Flags().GetBool("interactive")
			if interactive {
				report, err = ReviewProposals(report)
				if err != nil {
					return err
				}
			}

			write, _ := cmd.Flags().GetBool("write")
			if write || config.OutputDir != "" {
				dir := config.OutputDir
				if dir == "" {
					dir = "."
				}
				files, err := WriteScripts(dir, report)
				if err != nil {
					return fmt.Errorf("failed to write suggestion scripts: %v", err)
				}
				fmt.Println()
				for _, file := range files {
					fmt.Printf("Wrote %s\n", file)
				}
				fmt.Println("Source these files from your shell rc to adopt the suggestions.")
			}

			return nil
		},
	}

	cmd.Flags().Int("min-days", 5, "Minimum non-adjacent days a pattern must recur on")
	cmd.Flags().Int("min-count", 3, "Minimum occurrences for a pattern alias")
	cmd.Flags().Int("max-entries", 0, "Maximum history entries to read (0 = unlimited)")
	cmd.Flags().String("format", "", "History format (bash, zsh, simple; default: detect)")
	cmd.Flags().String("db", "", "Read history from a SQLite command log instead of a file")
	cmd.Flags().StringP("output", "o", "", "Directory for generated suggestion scripts")
	cmd.Flags().String("rules", "", "YAML rules file (reserved words, known tools, paste patterns)")
	cmd.Flags().Int("top-aliases", 25, "Maximum alias suggestions to keep")
	cmd.Flags().Int("top-functions", 10, "Maximum function suggestions to keep")
	cmd.Flags().Int("top-env-vars", 15, "Maximum environment variable suggestions to keep")
	cmd.Flags().Bool("no-paste-filter", false, "Disable the pasted-text heuristic filter")
	cmd.Flags().BoolP("interactive", "i", false, "Review each suggestion before writing scripts")
	cmd.Flags().Bool("write", false, "Write suggestion scripts to the output directory")

	return cmd
}

// applyFlagOverrides copies explicitly-set flags over the loaded config
func applyFlagOverrides(cmd *cobra.Command, config *AnalyzerConfig) {
	if cmd.Flags().Changed("min-days") {
		config.MinNonAdjacentDays, _ = cmd.Flags().GetInt("min-days")
	}
	if cmd.Flags().Changed("min-count") {
		config.MinPatternCount, _ = cmd.Flags().GetInt("min-count")
	}
	if cmd.Flags().Changed("max-entries") {
		config.MaxEntries, _ = cmd.Flags().GetInt("max-entries")
	}
	if cmd.Flags().Changed("format") {
		config.HistoryFormat, _ = cmd.Flags().GetString("format")
	}
	if cmd.Flags().Changed("db") {
		config.HistoryDB, _ = cmd.Flags().GetString("db")
	}
	if cmd.Flags().Changed("output") {
		config.OutputDir, _ = cmd.Flags().GetString("output")
	}
	if cmd.Flags().Changed("rules") {
		config.RulesFile, _ = cmd.Flags().GetString("rules")
	}
	if cmd.Flags().Changed("top-aliases") {
		config.TopAliases, _ = cmd.Flags().GetInt("top-aliases")
	}
	if cmd.Flags().Changed("top-functions") {
		config.TopFunctions, _ = cmd.Flags().GetInt("top-functions")
	}
	if cmd.Flags().Changed("top-env-vars") {
		config.TopEnvVars, _ = cmd.Flags().GetInt("top-env-vars")
	}
	if noPaste, _ := cmd.Flags().GetBool("no-paste-filter"); noPaste {
		config.PasteFilterEnabled = false
	}
}

// loadEntries reads history from the configured SQLite log, explicit file,
// or the best auto-detected history file, in that order
func loadEntries(config AnalyzerConfig) ([]HistoryEntry, string, error) {
	if config.HistoryDB != "" {
		store, err := OpenHistoryStore(config.HistoryDB)
		if err != nil {
			return nil, "", fmt.Errorf("failed to open history database: %v", err)
		}
		defer store.Close()

		entries, err := store.Entries(config.MaxEntries)
		if err != nil {
			return nil, "", fmt.Errorf("failed to read history database: %v", err)
		}
		return entries, config.HistoryDB, nil
	}

	detector, err := NewHistoryDetector()
	if err != nil {
		return nil, "", err
	}

	filePath := config.HistoryFile
	format := config.HistoryFormat

	if filePath == "" {
		files, err := detector.DetectHistoryFiles()
		if err != nil {
			return nil, "", err
		}
		for _, file := range files {
			if file.Readable {
				filePath = file.Path
				if format == "" {
					format = file.Format
				}
				break
			}
		}
		if filePath == "" {
			return nil, "", fmt.Errorf("no readable shell history file found; pass one explicitly")
		}
	}

	if format == "" {
		format = detector.DetectFormat(filePath)
	}

	parser := NewHistoryParser()
	entries, err := parser.ParseFile(filePath, format, config.MaxEntries)
	if err != nil {
		return nil, "", fmt.Errorf("failed to parse history file: %v", err)
	}
	return entries, filePath, nil
}

// newDetectCmd lists the shell history files tempo can see
func newDetectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "detect",
		Short: "List detected shell history files",
		RunE: func(cmd *cobra.Command, args []string) error {
			detector, err := NewHistoryDetector()
			if err != nil {
				return err
			}

			files, err := detector.DetectHistoryFiles()
			if err != nil {
				return err
			}
			if len(files) == 0 {
				fmt.Println("No shell history files found.")
				return nil
			}

			fmt.Printf("%-40s %-8s %-8s %10s  %s\n", "Path", "Shell", "Format", "Size", "Readable")
			for _, file := range files {
				readable := "yes"
				if !file.Readable {
					readable = "no"
				}
				fmt.Printf("%-40s %-8s %-8s %10d  %s\n", file.Path, file.Shell, file.Format, file.Size, readable)
			}
			return nil
		},
	}
}

// newConfigCmd shows the effective configuration and any TEMPO_* overrides
func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Show the effective configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cm, err := NewConfigManager()
			if err != nil {
				return err
			}
			if err := cm.Initialize(); err != nil {
				return err
			}
			config := cm.GetConfig()

			fmt.Printf("min_non_adjacent_days: %d\n", config.MinNonAdjacentDays)
			fmt.Printf("min_pattern_count:     %d\n", config.MinPatternCount)
			fmt.Printf("max_entries:           %d\n", config.MaxEntries)
			fmt.Printf("history_file:          %s\n", config.HistoryFile)
			fmt.Printf("history_format:        %s\n", config.HistoryFormat)
			fmt.Printf("history_db:            %s\n", config.HistoryDB)
			fmt.Printf("output_dir:            %s\n", config.OutputDir)
			fmt.Printf("rules_file:            %s\n", config.RulesFile)
			fmt.Printf("paste_filter_enabled:  %t\n", config.PasteFilterEnabled)
			fmt.Printf("oracle_timeout_ms:     %d\n", config.OracleTimeoutMs)
			fmt.Printf("top: %d aliases, %d functions, %d env vars\n",
				config.TopAliases, config.TopFunctions, config.TopEnvVars)

			if overrides := listTempoEnvVars(); len(overrides) > 0 {
				fmt.Println("\nActive environment overrides:")
				for name, value := range overrides {
					fmt.Printf("  %s=%s\n", name, value)
				}
			}
			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(GetVersionInfo())
		},
	}
}

// newUpdateCmd checks GitHub for a newer release
func newUpdateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "update",
		Short: "Check for a newer release",
		RunE: func(cmd *cobra.Command, args []string) error {
			cm, err := NewConfigManager()
			if err != nil {
				return err
			}
			if err := cm.Initialize(); err != nil {
				return err
			}
			config := cm.GetConfig()

			checker := NewUpdateChecker(config.UpdateRepository)
			info, err := checker.CheckForUpdates()
			if err != nil {
				return fmt.Errorf("update check failed: %v", err)
			}

			fmt.Printf("Current version: %s\n", info.CurrentVersion)
			fmt.Printf("Latest release:  %s\n", info.LatestVersion)
			if info.HasUpdate {
				fmt.Printf("A newer version is available: %s\n", info.ReleaseURL)
			} else {
				fmt.Println("You are up to date.")
			}
			return nil
		},
	}
}
