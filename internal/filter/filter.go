package filter

import (
	"strings"
	"time"

	"github.com/xolan/spent/internal/projectfile"
)

// Filter represents search and filtering criteria for scanned project files.
// All filter fields are optional - zero values match all files.
type Filter struct {
	Keyword       string    // Case-insensitive substring search in file names
	VersionedOnly bool      // Keep only files carrying a parsed version
	From          time.Time // Keep files created at or after this instant
	To            time.Time // Keep files created at or before this instant
}

// IsEmpty returns true if all filter fields are empty (matches all files)
func (f *Filter) IsEmpty() bool {
	return f.Keyword == "" && !f.VersionedOnly && f.From.IsZero() && f.To.IsZero()
}

// FilterFiles returns a new slice containing only files that match the filter
// criteria. If the filter is empty, returns all files.
func FilterFiles(files []projectfile.File, f *Filter) []projectfile.File {
	if f.IsEmpty() {
		return files
	}

	filtered := make([]projectfile.File, 0)
	for _, pf := range files {
		if f.Matches(pf) {
			filtered = append(filtered, pf)
		}
	}
	return filtered
}

// MatchesKeyword returns true if the keyword is found in the file name
// (case-insensitive). An empty keyword matches all files.
func (f *Filter) MatchesKeyword(pf projectfile.File) bool {
	if f.Keyword == "" {
		return true
	}
	return strings.Contains(strings.ToLower(pf.Name), strings.ToLower(f.Keyword))
}

// MatchesVersion returns true if the file satisfies the versioned-only
// criterion. With VersionedOnly unset, all files match.
func (f *Filter) MatchesVersion(pf projectfile.File) bool {
	return !f.VersionedOnly || pf.Versioned()
}

// MatchesRange returns true if the file's creation time falls inside the
// inclusive From/To range. Zero bounds are open ends.
func (f *Filter) MatchesRange(pf projectfile.File) bool {
	if !f.From.IsZero() && pf.CreatedAt.Before(f.From) {
		return false
	}
	if !f.To.IsZero() && pf.CreatedAt.After(f.To) {
		return false
	}
	return true
}

// Matches returns true if the file passes every criterion
func (f *Filter) Matches(pf projectfile.File) bool {
	return f.MatchesKeyword(pf) && f.MatchesVersion(pf) && f.MatchesRange(pf)
}
