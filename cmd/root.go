package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/xolan/spent/internal/config"
	"github.com/xolan/spent/internal/report"
	"github.com/xolan/spent/internal/service"
)

var rootCmd = &cobra.Command{
	Use:   "spent [directory]",
	Short: "Estimate time spent on a project from its save files",
	Long: `spent estimates how much time went into a creative project by inspecting
the creation and modification timestamps of versioned save files in a
directory.

Consecutive saves count towards the total as long as the gap between them
stays under a configurable limit. Minor and major version bumps in file names
(e.g. "song 0.2.0.als") mark the start of a new work session, and every
session is reported with its own subtotal.

Usage:
  spent                         Scan the current directory
  spent ~/music/song            Scan a specific directory
  spent -s .flp                 Scan for FL Studio project files
  spent -m 30                   Ignore gaps longer than 30 minutes
  spent stats ~/music/song      Show aggregate statistics
  spent export json             Export scan results as JSON
  spent search mixdown          Find saves by name
  spent tui                     Browse the scan interactively

Timestamps come straight from the filesystem: no daemon, no database and no
bookkeeping while you work.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if CheckTUIFlag(cmd, args) {
			return
		}
		runScan(cmd, args)
	},
}

func init() {
	defaults := config.DefaultConfig()
	rootCmd.PersistentFlags().StringP("suffix", "s", defaults.Suffix,
		"project file suffix to scan for")
	rootCmd.PersistentFlags().IntP("max-gap", "m", defaults.MaxGapMinutes,
		"longest gap between saves that still counts, in minutes (<= 0 disables the limit)")
}

// SetVersionInfo sets the version information for the CLI
func SetVersionInfo(version, commit, date string) {
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(
		"spent version {{.Version}}\n" +
			"commit: " + commit + "\n" +
			"built: " + date + "\n",
	)
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// runScan scans the requested directory and writes the standard report
func runScan(cmd *cobra.Command, args []string) {
	opts, ok := resolveScanOptions(cmd, directoryArg(args))
	if !ok {
		return
	}

	result, ok := scanProject(opts)
	if !ok {
		return
	}

	if err := report.Write(deps.Stdout, result.Files); err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to write report")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		deps.Exit(1)
	}
}

// directoryArg returns the directory argument, defaulting to the current one
func directoryArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return "."
}

// loadConfig resolves the config file path and loads the configuration,
// falling back to defaults when no file exists. Reports any failure to stderr
// and returns false.
func loadConfig() (config.Config, bool) {
	configPath, err := deps.ConfigPath()
	if err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to determine config file location")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		_, _ = fmt.Fprintln(deps.Stderr, "Hint: Check that your home directory is accessible")
		deps.Exit(1)
		return config.Config{}, false
	}

	cfg, err := config.LoadOrDefault(configPath)
	if err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to load configuration")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		_, _ = fmt.Fprintf(deps.Stderr, "Hint: Check that your config file is valid TOML format: %s\n", configPath)
		deps.Exit(1)
		return config.Config{}, false
	}

	return cfg, true
}

// resolveScanOptions merges config file values with command line flags.
// Flags win when set explicitly, otherwise the config value applies.
func resolveScanOptions(cmd *cobra.Command, directory string) (service.ScanOptions, bool) {
	opts, _, ok := resolveScanConfig(cmd, directory)
	return opts, ok
}

// resolveScanConfig is resolveScanOptions plus the loaded configuration, for
// commands that need settings beyond the scan options.
func resolveScanConfig(cmd *cobra.Command, directory string) (service.ScanOptions, config.Config, bool) {
	cfg, ok := loadConfig()
	if !ok {
		return service.ScanOptions{}, config.Config{}, false
	}

	opts := service.ScanOptions{
		Directory:     directory,
		Suffix:        cfg.Suffix,
		MaxGapMinutes: cfg.MaxGapMinutes,
	}

	flags := cmd.Root().PersistentFlags()
	if flags.Changed("suffix") {
		opts.Suffix, _ = flags.GetString("suffix")
	}
	if flags.Changed("max-gap") {
		opts.MaxGapMinutes, _ = flags.GetInt("max-gap")
	}

	return opts, cfg, true
}

// scanProject runs one scan with shared error reporting
func scanProject(opts service.ScanOptions) (*service.ScanResult, bool) {
	result, err := service.NewProjectService(opts).Scan()
	if err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to scan project directory")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		_, _ = fmt.Fprintf(deps.Stderr, "Hint: Check that the directory exists and is readable: %s\n", opts.Directory)
		deps.Exit(1)
		return nil, false
	}
	return result, true
}

// pluralize returns the singular or plural form of a word based on count
func pluralize(word string, count int) string {
	if count == 1 {
		return word
	}
	return word + "s"
}
