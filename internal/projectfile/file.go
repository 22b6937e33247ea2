package projectfile

import (
	"sort"
	"strings"
	"time"

	"github.com/Masterminds/semver/v3"
)

// File represents a single save of a project, observed on disk
type File struct {
	CreatedAt  time.Time
	ModifiedAt time.Time
	TimeSpent  time.Duration
	Name       string
	Version    *semver.Version
}

// Versioned reports whether a version could be parsed out of the file name
func (f File) Versioned() bool {
	return f.Version != nil
}

// VersionString returns the parsed version, or an empty string when absent
func (f File) VersionString() string {
	if f.Version == nil {
		return ""
	}
	return f.Version.String()
}

// Compare orders two files by creation time, falling back to modification
// time, time spent, name and finally version. An absent version sorts before
// any present one; present versions follow semver precedence, which ignores
// build metadata.
func Compare(a, b File) int {
	if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
		return c
	}
	if c := a.ModifiedAt.Compare(b.ModifiedAt); c != 0 {
		return c
	}
	if a.TimeSpent != b.TimeSpent {
		if a.TimeSpent < b.TimeSpent {
			return -1
		}
		return 1
	}
	if c := strings.Compare(a.Name, b.Name); c != 0 {
		return c
	}
	return CompareVersions(a.Version, b.Version)
}

// CompareVersions orders two optional versions, treating absent as lowest
func CompareVersions(a, b *semver.Version) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	}
	return a.Compare(b)
}

// Sort sorts files in place into the order Compare defines
func Sort(files []File) {
	sort.Slice(files, func(i, j int) bool {
		return Compare(files[i], files[j]) < 0
	})
}
