// Package scan discovers project files in a directory and turns them into
// records ready for time inference.
package scan

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/djherbis/times"

	"github.com/xolan/spent/internal/projectfile"
)

// Directory lists dir (non-recursively) and returns one record per regular
// file whose name ends in suffix, sorted oldest first. A directory holding no
// matching files yields an empty result, not an error.
func Directory(dir, suffix string) ([]projectfile.File, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	var files []projectfile.File
	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasSuffix(name, suffix) {
			continue
		}

		path := filepath.Join(dir, name)
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("failed to stat %s: %w", path, err)
		}
		if !info.Mode().IsRegular() {
			continue
		}

		spec, err := times.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read timestamps of %s: %w", path, err)
		}

		files = append(files, projectfile.File{
			CreatedAt:  creationTime(spec),
			ModifiedAt: info.ModTime(),
			Name:       name,
			Version:    projectfile.ExtractVersion(name),
		})
	}

	// sort by creation timestamp. even when every file is versioned, versions
	// are assumed to be created in order, so this matches version order too
	projectfile.Sort(files)

	return files, nil
}

// creationTime picks the closest thing to a creation timestamp the platform
// offers: birth time where the filesystem records one, otherwise inode change
// time, otherwise modification time.
func creationTime(spec times.Timespec) time.Time {
	if spec.HasBirthTime() {
		return spec.BirthTime()
	}
	if spec.HasChangeTime() {
		return spec.ChangeTime()
	}
	return spec.ModTime()
}
