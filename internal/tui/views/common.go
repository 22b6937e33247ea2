package views

import (
	"fmt"
	"strings"

	"github.com/xolan/spent/internal/projectfile"
	"github.com/xolan/spent/internal/timeutil"
	"github.com/xolan/spent/internal/tui/ui"
)

// FileRenderOptions configures how file rows are rendered
type FileRenderOptions struct {
	Width  int // Available width for rendering
	Cursor int // Currently selected file index (-1 for none)
}

// RenderFileList renders scanned files with aligned columns: start time,
// inferred duration, version and name.
func RenderFileList(files []projectfile.File, styles ui.Styles, opts FileRenderOptions) string {
	if len(files) == 0 {
		return ""
	}

	type fileData struct {
		start    string
		duration string
		version  string
		name     string
	}

	maxVersionWidth := 0
	maxDurationWidth := 0
	data := make([]fileData, len(files))

	for i, f := range files {
		version := "-"
		if f.Versioned() {
			version = f.Version.String()
		}
		if len(version) > maxVersionWidth {
			maxVersionWidth = len(version)
		}

		duration := timeutil.FormatDuration(f.TimeSpent)
		if len(duration) > maxDurationWidth {
			maxDurationWidth = len(duration)
		}

		data[i] = fileData{
			start:    timeutil.FormatStartTime(f.CreatedAt),
			duration: duration,
			version:  version,
			name:     f.Name,
		}
	}

	// Leave room for the fixed columns plus separators
	startWidth := len(timeutil.FormatStartTime(files[0].CreatedAt))
	maxNameWidth := opts.Width - startWidth - maxDurationWidth - maxVersionWidth - 6
	if maxNameWidth < 20 {
		maxNameWidth = 20
	}

	var b strings.Builder
	for i, fd := range data {
		style := styles.FileNormal
		if i == opts.Cursor {
			style = styles.FileSelected
		}

		name := fd.name
		if len(name) > maxNameWidth {
			name = name[:maxNameWidth-1] + "…"
		}

		start := styles.FileTime.Render(fd.start)
		duration := styles.FileDuration.Render(fmt.Sprintf("%-*s", maxDurationWidth, fd.duration))
		version := styles.FileVersion.Render(fmt.Sprintf("%-*s", maxVersionWidth, fd.version))

		line := fmt.Sprintf("%s  %s  %s  %s", start, duration, version, name)
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}

	return b.String()
}

// visibleRange clamps a cursor-centered window of size height onto a list of
// length total, returning the first and one-past-last visible index.
func visibleRange(cursor, total, height int) (int, int) {
	if height <= 0 || total <= height {
		return 0, total
	}

	first := cursor - height/2
	if first < 0 {
		first = 0
	}
	if first > total-height {
		first = total - height
	}
	return first, first + height
}

func pluralize(word string, count int) string {
	if count == 1 {
		return word
	}
	return word + "s"
}
