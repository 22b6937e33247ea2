package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/xolan/spent/internal/service"
	"github.com/xolan/spent/internal/stats"
	"github.com/xolan/spent/internal/timeutil"
)

// statsCmd represents the stats command
var statsCmd = &cobra.Command{
	Use:   "stats [directory]",
	Short: "Show aggregate statistics for a project",
	Long: `Show aggregate statistics for a project directory: how many saves exist,
how they group into sessions, the total working time and which session and
file absorbed the most of it.

Examples:
  spent stats                   Statistics for the current directory
  spent stats ~/music/song      Statistics for a specific directory
  spent stats -s .flp           Statistics for FL Studio project files
  spent stats -m 30             Ignore gaps longer than 30 minutes`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runStats(cmd, args)
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

// runStats scans the directory and displays aggregate statistics
func runStats(cmd *cobra.Command, args []string) {
	opts, ok := resolveScanOptions(cmd, directoryArg(args))
	if !ok {
		return
	}

	result, err := service.NewProjectService(opts).Stats()
	if err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to scan project directory")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		_, _ = fmt.Fprintf(deps.Stderr, "Hint: Check that the directory exists and is readable: %s\n", opts.Directory)
		deps.Exit(1)
		return
	}

	if result.Statistics.FileCount == 0 {
		_, _ = fmt.Fprintln(deps.Stdout, "No project files found")
		return
	}

	displayStatistics(opts.Directory, result.Statistics)
	displayVersionBreakdown(result.Breakdown)
}

// displayStatistics formats and displays scan statistics to stdout
func displayStatistics(directory string, s stats.Statistics) {
	_, _ = fmt.Fprintf(deps.Stdout, "Statistics for %s\n", directory)
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("=", 60))
	_, _ = fmt.Fprintln(deps.Stdout)

	_, _ = fmt.Fprintf(deps.Stdout, "Project files:   %d (%d versioned)\n", s.FileCount, s.VersionedCount)
	_, _ = fmt.Fprintf(deps.Stdout, "Sessions:        %d\n", s.SessionCount)
	_, _ = fmt.Fprintf(deps.Stdout, "First save:      %s\n", timeutil.FormatStartTime(s.FirstSave))
	_, _ = fmt.Fprintf(deps.Stdout, "Last save:       %s\n", timeutil.FormatStartTime(s.LastSave))
	_, _ = fmt.Fprintf(deps.Stdout, "Total time:      %s\n", timeutil.FormatDuration(s.TotalTime))
	_, _ = fmt.Fprintf(deps.Stdout, "Average session: %s\n", timeutil.FormatDuration(s.AverageSession))
	_, _ = fmt.Fprintf(deps.Stdout, "Longest session: %s (%s)\n", sessionDisplay(s.LongestSessionLabel), timeutil.FormatDuration(s.LongestSessionTime))
	_, _ = fmt.Fprintf(deps.Stdout, "Busiest file:    %s (%s)\n", s.BusiestFile, timeutil.FormatDuration(s.BusiestFileTime))
	_, _ = fmt.Fprintln(deps.Stdout)
}

// displayVersionBreakdown formats and displays per-version totals to stdout
func displayVersionBreakdown(breakdowns []stats.VersionBreakdown) {
	if len(breakdowns) == 0 {
		return
	}

	_, _ = fmt.Fprintln(deps.Stdout, "By Version:")
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("-", 60))
	_, _ = fmt.Fprintln(deps.Stdout)

	for _, b := range breakdowns {
		_, _ = fmt.Fprintf(deps.Stdout, "  %-28s  %13s  (%d %s)\n",
			sessionDisplay(b.Label),
			timeutil.FormatDuration(b.TotalTime),
			b.FileCount,
			pluralize("file", b.FileCount))
	}

	_, _ = fmt.Fprintln(deps.Stdout)
}

// sessionDisplay renders a version label the way session headers do,
// leaving the unversioned group label as is
func sessionDisplay(label string) string {
	if label == stats.UnversionedLabel {
		return label
	}
	return "Version " + label + ".x"
}
