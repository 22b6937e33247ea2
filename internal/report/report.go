// Package report renders the human readable scan summary: one row per save,
// a subtotal line per versioned session and the grand total.
package report

import (
	"fmt"
	"io"

	"github.com/xolan/spent/internal/projectfile"
	"github.com/xolan/spent/internal/session"
	"github.com/xolan/spent/internal/timeutil"
)

// Column widths line the duration column up under 21-character start times
const (
	startTimeWidth = 21
	durationWidth  = 13
)

// Write renders the full report for an ordered scan
func Write(w io.Writer, files []projectfile.File) error {
	if len(files) == 0 {
		_, err := fmt.Fprintln(w, "No project files found")
		return err
	}

	if _, err := fmt.Fprintf(w, "%-*s %-*s Name\n", startTimeWidth, "Start time", durationWidth, "Duration"); err != nil {
		return err
	}

	for _, s := range session.Partition(files) {
		if err := writeSession(w, s); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(w, "Total project time\n%s\n", timeutil.FormatDuration(session.Total(files)))
	return err
}

// writeSession renders one session: a version subtotal when the session is
// labeled, then one row per save, then a blank line for readability
func writeSession(w io.Writer, s session.Session) error {
	if label, ok := s.Label(); ok {
		if _, err := fmt.Fprintf(w, "Version %s.x - %s\n", label, timeutil.FormatDuration(s.Subtotal())); err != nil {
			return err
		}
	}

	for _, f := range s.Files {
		if _, err := fmt.Fprintln(w, Row(f)); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintln(w)
	return err
}

// Row renders a single save as a report row
func Row(f projectfile.File) string {
	return fmt.Sprintf("%-*s %-*s %s",
		startTimeWidth, timeutil.FormatStartTime(f.CreatedAt),
		durationWidth, timeutil.FormatDuration(f.TimeSpent),
		f.Name)
}
