package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/xolan/spent/internal/filter"
	"github.com/xolan/spent/internal/report"
	"github.com/xolan/spent/internal/timeutil"
)

// searchCmd represents the search command
var searchCmd = &cobra.Command{
	Use:   "search <keyword> [directory]",
	Short: "Search for project files by keyword",
	Long: `Search for project files whose name contains a specific keyword.

The search is case-insensitive and runs over a full scan of the directory,
so every match keeps the working time it earned with its real neighbors.

Date Filtering:
  Use --from and --to to filter by creation date range
  Use --last to filter by relative days (e.g., 'last 7 days')

Examples:
  spent search mixdown                     Search the current directory
  spent search jam ~/music/song            Search a specific directory
  spent search "live take"                 Search for a phrase
  spent search jam --from 2024-01-01       Search files created since a date
  spent search jam --from 2024-01-01 --to 2024-01-31    Search a date range
  spent search jam --last 7                Search files created in the last 7 days
  spent search jam --versioned-only        Search only versioned saves`,
	Args: cobra.RangeArgs(1, 2),
	Run: func(cmd *cobra.Command, args []string) {
		searchFiles(cmd, args)
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)

	// Date filtering flags
	searchCmd.Flags().String("from", "", "Start date for filtering (YYYY-MM-DD or DD/MM/YYYY)")
	searchCmd.Flags().String("to", "", "End date for filtering (YYYY-MM-DD or DD/MM/YYYY)")
	searchCmd.Flags().Int("last", 0, "Filter by last N days (e.g., --last 7 for last 7 days)")
	searchCmd.Flags().Bool("versioned-only", false, "Keep only files with a version in their name")
}

// searchFiles handles the search command logic
func searchFiles(cmd *cobra.Command, args []string) {
	keyword := args[0]

	directory := "."
	if len(args) > 1 {
		directory = args[1]
	}

	fromStr, _ := cmd.Flags().GetString("from")
	toStr, _ := cmd.Flags().GetString("to")
	lastDays, _ := cmd.Flags().GetInt("last")

	// Validate flag combinations
	if lastDays > 0 && (fromStr != "" || toStr != "") {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Cannot use --last with --from or --to")
		_, _ = fmt.Fprintln(deps.Stderr, "Use either --last N or --from/--to, not both")
		deps.Exit(1)
		return
	}

	var from, to time.Time
	if lastDays > 0 {
		now := time.Now()
		to = timeutil.EndOfDay(now)
		from = timeutil.StartOfDay(now.AddDate(0, 0, -(lastDays - 1)))
	} else {
		var ok bool
		from, to, ok = parseDateRangeFlags(cmd)
		if !ok {
			return
		}
	}
	hasDateFilter := !from.IsZero() || !to.IsZero()

	versionedOnly, _ := cmd.Flags().GetBool("versioned-only")

	opts, ok := resolveScanOptions(cmd, directory)
	if !ok {
		return
	}

	f := &filter.Filter{Keyword: keyword, From: from, To: to, VersionedOnly: versionedOnly}
	result, ok := scanProjectFiltered(opts, f)
	if !ok {
		return
	}

	if len(result.Files) == 0 {
		if hasDateFilter {
			_, _ = fmt.Fprintf(deps.Stdout, "No files found matching '%s' in the specified date range\n", keyword)
		} else {
			_, _ = fmt.Fprintf(deps.Stdout, "No files found matching '%s'\n", keyword)
		}
		return
	}

	// Display results
	resultHeader := fmt.Sprintf("Search results for '%s'", keyword)
	if lastDays > 0 {
		resultHeader += fmt.Sprintf(" (last %d %s)", lastDays, pluralize("day", lastDays))
	} else if hasDateFilter {
		resultHeader += fmt.Sprintf(" (%s)", formatDateRangeForDisplay(from, to))
	}
	_, _ = fmt.Fprintf(deps.Stdout, "%s:\n", resultHeader)
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("-", 50))

	// Calculate width for right-aligned indices
	maxIndexWidth := len(fmt.Sprintf("%d", len(result.Files)))

	for i, pf := range result.Files {
		_, _ = fmt.Fprintf(deps.Stdout, "[%*d] %s\n",
			maxIndexWidth,
			i+1, // 1-based index for user reference
			report.Row(pf))
	}
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("-", 50))
	_, _ = fmt.Fprintf(deps.Stdout, "Total: %s (%d %s)\n", timeutil.FormatDuration(result.Total), len(result.Files), pluralize("file", len(result.Files)))
}

// formatDateRangeForDisplay renders the active date bounds for headers
func formatDateRangeForDisplay(from, to time.Time) string {
	switch {
	case !from.IsZero() && !to.IsZero():
		return fmt.Sprintf("%s to %s", from.Format("2006-01-02"), to.Format("2006-01-02"))
	case !from.IsZero():
		return fmt.Sprintf("from %s", from.Format("2006-01-02"))
	default:
		return fmt.Sprintf("until %s", to.Format("2006-01-02"))
	}
}
