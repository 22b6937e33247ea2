package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/xolan/spent/internal/config"
)

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Display or manage configuration settings",
	Long: `Display the current effective configuration settings for spent.

Shows the configuration file location, whether it exists, and all current settings.
Configuration values are merged from the config file with sensible defaults.

By default, spent works without any configuration file. All settings have defaults:
  - suffix: .als
  - max_gap_minutes: 60
  - theme: dracula

Examples:

  Display current configuration:
    spent config                     Show all current settings

  Create a sample configuration file:
    spent config init                Write a commented config.toml

Configuration file location:
  ~/.config/spent/config.toml        Linux/macOS
  %APPDATA%\spent\config.toml        Windows`,
	Run: func(cmd *cobra.Command, args []string) {
		showConfig()
	},
}

// configInitCmd represents the config init command
var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a sample configuration file",
	Long: `Write a commented sample configuration file to the default location.

The sample documents every available setting with its default value. Existing
configuration files are never overwritten.

Examples:
  spent config init                Create the sample config.toml`,
	Run: func(cmd *cobra.Command, args []string) {
		initConfigFile()
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
}

// showConfig displays the current effective configuration
func showConfig() {
	configPath, err := deps.ConfigPath()
	if err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to determine config file location")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		_, _ = fmt.Fprintln(deps.Stderr, "Hint: Check that your home directory is accessible")
		deps.Exit(1)
		return
	}

	// Check if config file exists
	fileExists := false
	if _, err := os.Stat(configPath); err == nil {
		fileExists = true
	}

	// Load config (will use defaults if file doesn't exist)
	cfg, err := config.LoadOrDefault(configPath)
	if err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to load configuration")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		_, _ = fmt.Fprintln(deps.Stderr)
		_, _ = fmt.Fprintf(deps.Stderr, "Hint: Check that your config file is valid TOML format: %s\n", configPath)
		_, _ = fmt.Fprintln(deps.Stderr, "The suffix setting must be a non-empty file extension (e.g., \".als\")")
		deps.Exit(1)
		return
	}

	// Display header
	_, _ = fmt.Fprintln(deps.Stdout, "Configuration for spent")
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("=", 60))
	_, _ = fmt.Fprintln(deps.Stdout)

	// Display config file location and status
	_, _ = fmt.Fprintf(deps.Stdout, "Config file:     %s\n", configPath)
	if fileExists {
		_, _ = fmt.Fprintln(deps.Stdout, "Status:          File exists (using custom configuration)")
	} else {
		_, _ = fmt.Fprintln(deps.Stdout, "Status:          No config file (using defaults)")
	}
	_, _ = fmt.Fprintln(deps.Stdout)

	// Display current settings
	_, _ = fmt.Fprintln(deps.Stdout, "Current Settings:")
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("-", 60))
	_, _ = fmt.Fprintf(deps.Stdout, "Suffix:          %s\n", cfg.Suffix)

	// Display max gap with special handling for disabled ceilings
	if cfg.MaxGapMinutes > 0 {
		_, _ = fmt.Fprintf(deps.Stdout, "Max gap:         %d %s\n", cfg.MaxGapMinutes, pluralize("minute", cfg.MaxGapMinutes))
	} else {
		_, _ = fmt.Fprintln(deps.Stdout, "Max gap:         (no limit)")
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Theme:           %s\n", cfg.Theme)
	_, _ = fmt.Fprintln(deps.Stdout)

	// Display helpful information if using defaults
	if !fileExists {
		_, _ = fmt.Fprintln(deps.Stdout, "Tip: Run 'spent config init' to create a sample config file at the above location.")
		_, _ = fmt.Fprintln(deps.Stdout)
	}
}

// initConfigFile writes the sample configuration file
func initConfigFile() {
	configPath, err := deps.ConfigPath()
	if err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to determine config file location")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		_, _ = fmt.Fprintln(deps.Stderr, "Hint: Check that your home directory is accessible")
		deps.Exit(1)
		return
	}

	if _, err := os.Stat(configPath); err == nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: Config file already exists: %s\n", configPath)
		_, _ = fmt.Fprintln(deps.Stderr, "Hint: Edit the existing file, or remove it and run 'spent config init' again")
		deps.Exit(1)
		return
	}

	if err := os.WriteFile(configPath, []byte(config.GenerateSampleConfig()), 0644); err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to write config file")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		_, _ = fmt.Fprintf(deps.Stderr, "Hint: Check that the directory is writable: %s\n", configPath)
		deps.Exit(1)
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Created %s\n", configPath)
	_, _ = fmt.Fprintln(deps.Stdout, "All settings are commented out; uncomment the ones you want to change.")
}
