package stats

import (
	"sort"
	"time"

	"github.com/xolan/spent/internal/projectfile"
	"github.com/xolan/spent/internal/session"
)

// UnversionedLabel groups sessions that carry no version label
const UnversionedLabel = "(unversioned)"

// Statistics contains aggregated statistics for a completed scan
type Statistics struct {
	FileCount           int
	VersionedCount      int
	SessionCount        int
	TotalTime           time.Duration
	AverageSession      time.Duration
	FirstSave           time.Time
	LastSave            time.Time
	LongestSessionLabel string
	LongestSessionTime  time.Duration
	BusiestFile         string
	BusiestFileTime     time.Duration
}

// VersionBreakdown contains statistics for a single version label
type VersionBreakdown struct {
	Label     string
	FileCount int
	TotalTime time.Duration
}

// Calculate computes statistics for an ordered scan and its sessions
func Calculate(files []projectfile.File, sessions []session.Session) Statistics {
	stats := Statistics{}

	if len(files) == 0 {
		return stats
	}

	stats.FileCount = len(files)
	stats.SessionCount = len(sessions)
	stats.TotalTime = session.Total(files)
	stats.FirstSave = files[0].CreatedAt
	stats.LastSave = files[len(files)-1].CreatedAt

	for _, f := range files {
		if f.Versioned() {
			stats.VersionedCount++
		}
		if f.TimeSpent > stats.BusiestFileTime || stats.BusiestFile == "" {
			stats.BusiestFile = f.Name
			stats.BusiestFileTime = f.TimeSpent
		}
	}

	for _, s := range sessions {
		subtotal := s.Subtotal()
		if subtotal > stats.LongestSessionTime || stats.LongestSessionLabel == "" {
			stats.LongestSessionLabel = breakdownLabel(s)
			stats.LongestSessionTime = subtotal
		}
	}

	if stats.SessionCount > 0 {
		stats.AverageSession = stats.TotalTime / time.Duration(stats.SessionCount)
	}

	return stats
}

// CalculateVersionBreakdown groups sessions by version label and returns the
// breakdown sorted by total time, longest first
func CalculateVersionBreakdown(sessions []session.Session) []VersionBreakdown {
	if len(sessions) == 0 {
		return []VersionBreakdown{}
	}

	byLabel := make(map[string]*VersionBreakdown)
	for _, s := range sessions {
		label := breakdownLabel(s)
		b, ok := byLabel[label]
		if !ok {
			b = &VersionBreakdown{Label: label}
			byLabel[label] = b
		}
		b.FileCount += len(s.Files)
		b.TotalTime += s.Subtotal()
	}

	breakdowns := make([]VersionBreakdown, 0, len(byLabel))
	for _, b := range byLabel {
		breakdowns = append(breakdowns, *b)
	}

	sort.Slice(breakdowns, func(i, j int) bool {
		if breakdowns[i].TotalTime != breakdowns[j].TotalTime {
			return breakdowns[i].TotalTime > breakdowns[j].TotalTime
		}
		return breakdowns[i].Label < breakdowns[j].Label
	})

	return breakdowns
}

func breakdownLabel(s session.Session) string {
	if label, ok := s.Label(); ok {
		return label
	}
	return UnversionedLabel
}
