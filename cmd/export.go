package cmd

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/xolan/spent/internal/filter"
	"github.com/xolan/spent/internal/projectfile"
	"github.com/xolan/spent/internal/service"
	"github.com/xolan/spent/internal/timeutil"
)

// exportCmd represents the export parent command
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export scan results to various formats",
	Long: `Export the scan of a project directory to machine readable formats.

Available formats:
  json    Export scanned files as JSON
  csv     Export scanned files as CSV

Examples:
  spent export json                Export the current directory as JSON
  spent export json ~/music/song   Export a specific directory
  spent export csv > saves.csv     Export to a file`,
}

// exportJSONCmd represents the export json command
var exportJSONCmd = &cobra.Command{
	Use:   "json [directory]",
	Short: "Export scan results as JSON",
	Long: `Export the scan of a project directory to JSON.

Output includes metadata (export timestamp, scan settings, totals, filter
criteria) and an array of file objects with inferred working times.

Filtering:
  Use --from and --to to keep files created in a date range
  Use --versioned-only to drop files without a version in their name

Working time is always inferred over the complete scan before filters apply,
so exported durations match what the report shows.

Examples:
  spent export json                          Export the current directory
  spent export json ~/music/song             Export a specific directory
  spent export json > backup.json            Export to a file
  spent export json --from 2024-01-01        Export files created since a date
  spent export json --from 2024-01-01 --to 2024-01-31    Export a date range
  spent export json --versioned-only         Export only versioned saves`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		exportJSON(cmd, args)
	},
}

// exportCSVCmd represents the export csv command
var exportCSVCmd = &cobra.Command{
	Use:   "csv [directory]",
	Short: "Export scan results as CSV",
	Long: `Export the scan of a project directory to CSV with headers.

Filtering:
  Use --from and --to to keep files created in a date range
  Use --versioned-only to drop files without a version in their name

Examples:
  spent export csv                           Export the current directory
  spent export csv ~/music/song              Export a specific directory
  spent export csv > saves.csv               Export to a file
  spent export csv --from 2024-01-01         Export files created since a date
  spent export csv --versioned-only          Export only versioned saves`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		exportCSV(cmd, args)
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.AddCommand(exportJSONCmd)
	exportCmd.AddCommand(exportCSVCmd)

	for _, c := range []*cobra.Command{exportJSONCmd, exportCSVCmd} {
		c.Flags().String("from", "", "Keep files created on or after this date (YYYY-MM-DD or DD/MM/YYYY)")
		c.Flags().String("to", "", "Keep files created on or before this date (YYYY-MM-DD or DD/MM/YYYY)")
		c.Flags().Bool("versioned-only", false, "Keep only files with a version in their name")
	}
}

// exportedFile is the stable JSON shape for one scanned save
type exportedFile struct {
	Name        string    `json:"name"`
	CreatedAt   time.Time `json:"created_at"`
	ModifiedAt  time.Time `json:"modified_at"`
	Version     string    `json:"version,omitempty"`
	TimeSpentMS int64     `json:"time_spent_ms"`
	TimeSpent   string    `json:"time_spent"`
}

// parseDateRangeFlags reads --from/--to and converts them into inclusive
// range bounds. Zero bounds mean the flag was not set. Reports parse failures
// to stderr and returns false.
func parseDateRangeFlags(cmd *cobra.Command) (from, to time.Time, ok bool) {
	fromStr, _ := cmd.Flags().GetString("from")
	toStr, _ := cmd.Flags().GetString("to")

	if fromStr != "" {
		var err error
		from, err = timeutil.ParseDate(fromStr)
		if err != nil {
			_, _ = fmt.Fprintf(deps.Stderr, "Error: Invalid --from date: %v\n", err)
			deps.Exit(1)
			return time.Time{}, time.Time{}, false
		}
	}

	if toStr != "" {
		toDate, err := timeutil.ParseDate(toStr)
		if err != nil {
			_, _ = fmt.Fprintf(deps.Stderr, "Error: Invalid --to date: %v\n", err)
			deps.Exit(1)
			return time.Time{}, time.Time{}, false
		}
		// --to covers the whole day it names
		to = timeutil.EndOfDay(toDate)
	}

	return from, to, true
}

// exportFilter builds the file filter from export flags
func exportFilter(cmd *cobra.Command) (*filter.Filter, bool) {
	from, to, ok := parseDateRangeFlags(cmd)
	if !ok {
		return nil, false
	}
	versionedOnly, _ := cmd.Flags().GetBool("versioned-only")

	return &filter.Filter{From: from, To: to, VersionedOnly: versionedOnly}, true
}

// scanProjectFiltered runs one filtered scan with shared error reporting
func scanProjectFiltered(opts service.ScanOptions, f *filter.Filter) (*service.ScanResult, bool) {
	result, err := service.NewProjectService(opts).ScanFiltered(f)
	if err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to scan project directory")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		_, _ = fmt.Fprintf(deps.Stderr, "Hint: Check that the directory exists and is readable: %s\n", opts.Directory)
		deps.Exit(1)
		return nil, false
	}
	return result, true
}

// exportJSON handles the export json command logic
func exportJSON(cmd *cobra.Command, args []string) {
	opts, ok := resolveScanOptions(cmd, directoryArg(args))
	if !ok {
		return
	}

	f, ok := exportFilter(cmd)
	if !ok {
		return
	}

	result, ok := scanProjectFiltered(opts, f)
	if !ok {
		return
	}

	// Create output structure with metadata
	output := struct {
		Metadata struct {
			ExportTimestamp time.Time              `json:"export_timestamp"`
			Directory       string                 `json:"directory"`
			Suffix          string                 `json:"suffix"`
			MaxGapMinutes   int                    `json:"max_gap_minutes"`
			TotalFiles      int                    `json:"total_files"`
			TotalTimeMS     int64                  `json:"total_time_ms"`
			TotalTime       string                 `json:"total_time"`
			FilterCriteria  map[string]interface{} `json:"filter_criteria"`
		} `json:"metadata"`
		Files []exportedFile `json:"files"`
	}{}

	output.Metadata.ExportTimestamp = time.Now()
	output.Metadata.Directory = opts.Directory
	output.Metadata.Suffix = opts.Suffix
	output.Metadata.MaxGapMinutes = opts.MaxGapMinutes
	output.Metadata.TotalFiles = len(result.Files)
	output.Metadata.TotalTimeMS = result.Total.Milliseconds()
	output.Metadata.TotalTime = timeutil.FormatDuration(result.Total)
	output.Metadata.FilterCriteria = filterCriteria(f)

	output.Files = make([]exportedFile, 0, len(result.Files))
	for _, pf := range result.Files {
		output.Files = append(output.Files, exportedFile{
			Name:        pf.Name,
			CreatedAt:   pf.CreatedAt,
			ModifiedAt:  pf.ModifiedAt,
			Version:     pf.VersionString(),
			TimeSpentMS: pf.TimeSpent.Milliseconds(),
			TimeSpent:   timeutil.FormatDuration(pf.TimeSpent),
		})
	}

	// Encode to JSON with pretty printing
	encoder := json.NewEncoder(deps.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(output); err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to encode JSON output")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		deps.Exit(1)
		return
	}
}

// filterCriteria describes the applied filters for export metadata
func filterCriteria(f *filter.Filter) map[string]interface{} {
	criteria := make(map[string]interface{})
	if !f.From.IsZero() {
		criteria["from"] = f.From.Format("2006-01-02")
	}
	if !f.To.IsZero() {
		criteria["to"] = f.To.Format("2006-01-02")
	}
	if f.VersionedOnly {
		criteria["versioned_only"] = true
	}
	return criteria
}

// exportCSV handles the export csv command logic
func exportCSV(cmd *cobra.Command, args []string) {
	opts, ok := resolveScanOptions(cmd, directoryArg(args))
	if !ok {
		return
	}

	f, ok := exportFilter(cmd)
	if !ok {
		return
	}

	result, ok := scanProjectFiltered(opts, f)
	if !ok {
		return
	}

	writer := csv.NewWriter(deps.Stdout)
	defer writer.Flush()

	headers := []string{"name", "created", "modified", "version", "time_spent_seconds", "time_spent"}
	if err := writeCSVHeader(writer, headers); err != nil {
		return
	}

	for _, pf := range result.Files {
		if err := writeCSVRow(writer, csvRow(pf)); err != nil {
			return
		}
	}
}

// csvRow renders one scanned save as a CSV record
func csvRow(pf projectfile.File) []string {
	return []string{
		pf.Name,
		pf.CreatedAt.Format(time.RFC3339),
		pf.ModifiedAt.Format(time.RFC3339),
		pf.VersionString(),
		strconv.FormatFloat(pf.TimeSpent.Seconds(), 'f', 3, 64),
		timeutil.FormatDuration(pf.TimeSpent),
	}
}
