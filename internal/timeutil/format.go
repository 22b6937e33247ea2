package timeutil

import (
	"fmt"
	"time"
)

// startTimeLayout renders timestamps the way report rows show them,
// e.g. "Wed Feb  3 15:04:05". The day of month is space padded.
const startTimeLayout = "Mon Jan _2 15:04:05"

// FormatDuration renders a duration as hours, minutes, seconds and
// milliseconds, e.g. "3:25:45.000". Hours are unpadded and keep growing past
// 24, so multi-day totals stay readable.
func FormatDuration(d time.Duration) string {
	hours := d / time.Hour
	d -= hours * time.Hour
	minutes := d / time.Minute
	d -= minutes * time.Minute
	seconds := d / time.Second
	d -= seconds * time.Second
	millis := d / time.Millisecond

	return fmt.Sprintf("%d:%02d:%02d.%03d", hours, minutes, seconds, millis)
}

// FormatStartTime renders a save timestamp for display
func FormatStartTime(t time.Time) string {
	return t.Format(startTimeLayout)
}
