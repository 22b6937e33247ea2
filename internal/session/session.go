package session

import (
	"fmt"
	"time"

	"github.com/xolan/spent/internal/projectfile"
)

// Session is a contiguous run of saves bounded by minor or major version
// increments, or by a versioned save sitting next to an unversioned one
type Session struct {
	Files []projectfile.File
}

// Labeled reports whether the session carries a version label. Sessions that
// start with an unversioned file have no label.
func (s Session) Labeled() bool {
	return len(s.Files) > 0 && s.Files[0].Version != nil
}

// Label returns the session's "major.minor" label, or false when unlabeled
func (s Session) Label() (string, bool) {
	if !s.Labeled() {
		return "", false
	}
	v := s.Files[0].Version
	return fmt.Sprintf("%d.%d", v.Major(), v.Minor()), true
}

// Subtotal returns the summed working time across the session's files
func (s Session) Subtotal() time.Duration {
	return Total(s.Files)
}

// Start returns the creation time of the session's first file
func (s Session) Start() time.Time {
	if len(s.Files) == 0 {
		return time.Time{}
	}
	return s.Files[0].CreatedAt
}

// Partition splits an ordered sequence of files into sessions. Boundaries are
// evaluated without requiring versions on both sides, so a mix of versioned
// and unversioned saves still splits cleanly even though that mix never
// affects duration assignment.
func Partition(files []projectfile.File) []Session {
	if len(files) == 0 {
		return nil
	}

	var sessions []Session
	start := 0
	for i := range files {
		if i == len(files)-1 || IsBoundary(files[i].Version, files[i+1].Version, false) {
			sessions = append(sessions, Session{Files: files[start : i+1]})
			start = i + 1
		}
	}
	return sessions
}

// Total returns the summed working time across all files. The grand total
// over a full scan always equals the sum of its session subtotals.
func Total(files []projectfile.File) time.Duration {
	var total time.Duration
	for _, f := range files {
		total += f.TimeSpent
	}
	return total
}
