package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/xolan/spent/internal/service"
	"github.com/xolan/spent/internal/tui"
)

// tuiCmd represents the tui command
var tuiCmd = &cobra.Command{
	Use:   "tui [directory]",
	Short: "Launch interactive terminal UI",
	Long: `Launch the interactive Terminal User Interface for spent.

The TUI shows the scan of a project directory with keyboard navigation and
switchable views, and can rescan the directory without restarting.

Views available:
  - Files: Browse scanned files with their inferred working time
  - Sessions: Browse work sessions with their subtotals
  - Stats: View aggregate statistics for the project

Keyboard shortcuts:
  - Tab/Shift+Tab: Navigate between views
  - 1-3: Jump to specific view
  - j/k or arrows: Navigate within lists
  - r: Rescan the directory
  - ?: Show help
  - q: Quit`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runTUI(cmd, args)
	},
}

func init() {
	rootCmd.AddCommand(tuiCmd)

	// Add --tui flag to root command for quick access
	rootCmd.PersistentFlags().Bool("tui", false, "Launch interactive terminal UI")
}

// runTUI initializes and runs the TUI application
func runTUI(cmd *cobra.Command, args []string) {
	opts, cfg, ok := resolveScanConfig(cmd, directoryArg(args))
	if !ok {
		return
	}

	if err := tui.Run(service.NewProjectService(opts), cfg); err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error running TUI: %v\n", err)
		deps.Exit(1)
		return
	}
}

// CheckTUIFlag checks if the --tui flag is set and runs the TUI if so.
// Returns true if the TUI was launched, false otherwise.
func CheckTUIFlag(cmd *cobra.Command, args []string) bool {
	tuiFlag, _ := cmd.Root().PersistentFlags().GetBool("tui")
	if tuiFlag {
		runTUI(cmd, args)
		return true
	}
	return false
}
