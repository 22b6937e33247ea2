// Package session infers working time from an ordered sequence of project
// file saves and groups the saves into work sessions.
package session

import (
	"math"
	"time"

	"github.com/Masterminds/semver/v3"

	"github.com/xolan/spent/internal/projectfile"
)

// NoLimit disables the gap ceiling
const NoLimit = time.Duration(math.MaxInt64)

// MaxGap converts a configured minute count into the gap ceiling used by
// CalculateTimeSpent. Values <= 0 disable the ceiling.
func MaxGap(minutes int) time.Duration {
	if minutes <= 0 {
		return NoLimit
	}
	return time.Duration(minutes) * time.Minute
}

// countable reports whether a candidate duration may be recorded as working
// time. Negative candidates (clock skew) and candidates at or above the
// ceiling (idle gaps) never count.
func countable(candidate, maxGap time.Duration) bool {
	return candidate >= 0 && candidate < maxGap
}

// CalculateTimeSpent assigns a working duration to every file in the ordered
// sequence.
//
// Each file starts from the span between its own created and modified
// timestamps. For every file except the last, the gap to the next file's
// creation replaces that span when the next save belongs to the same session:
// the time between consecutive saves tracks active work better than a single
// file's timestamps. A file whose candidates all fail the ceiling keeps zero.
func CalculateTimeSpent(files []projectfile.File, maxGap time.Duration) {
	for i := range files {
		ownSpan := files[i].ModifiedAt.Sub(files[i].CreatedAt)
		if countable(ownSpan, maxGap) {
			files[i].TimeSpent = ownSpan
		}

		if i == len(files)-1 {
			continue
		}
		if IsBoundary(files[i].Version, files[i+1].Version, true) {
			continue
		}
		gapToNext := files[i+1].CreatedAt.Sub(files[i].CreatedAt)
		if countable(gapToNext, maxGap) {
			files[i].TimeSpent = gapToNext
		}
	}
}

// IsBoundary reports whether two adjacent versions end one session and start
// the next. A minor or major version increase is always a boundary; patch
// increases are saves within the same session. With requireVersions false,
// a versioned file next to an unversioned one also splits the sessions.
func IsBoundary(current, next *semver.Version, requireVersions bool) bool {
	if current != nil && next != nil {
		return next.Minor() > current.Minor() || next.Major() > current.Major()
	}
	if requireVersions {
		return false
	}
	return current != nil || next != nil
}
