package cmd

import (
	"strings"
	"testing"
	"time"
)

func TestSearchFiles_Matches(t *testing.T) {
	dir := setupProjectDir(t)

	d, stdout, stderr := testDeps(missingConfigPath(t))
	SetDeps(d)
	defer ResetDeps()

	searchFiles(searchCmd, []string{"song", dir})

	if stderr.Len() > 0 {
		t.Errorf("Unexpected stderr output: %s", stderr.String())
	}

	output := stdout.String()
	if !strings.Contains(output, "Search results for 'song':") {
		t.Errorf("Expected search header, got: %s", output)
	}
	if !strings.Contains(output, "[1]") {
		t.Errorf("Expected indexed results, got: %s", output)
	}
	for _, name := range []string{"song 0.1.0.als", "song 0.1.1.als", "song 0.2.0.als"} {
		if !strings.Contains(output, name) {
			t.Errorf("Expected %q in output, got: %s", name, output)
		}
	}
	if !strings.Contains(output, "(3 files)") {
		t.Errorf("Expected file count in total line, got: %s", output)
	}
}

func TestSearchFiles_CaseInsensitive(t *testing.T) {
	dir := setupProjectDir(t)

	d, stdout, _ := testDeps(missingConfigPath(t))
	SetDeps(d)
	defer ResetDeps()

	searchFiles(searchCmd, []string{"SONG", dir})

	if !strings.Contains(stdout.String(), "(3 files)") {
		t.Errorf("Expected case-insensitive match of 3 files, got: %s", stdout.String())
	}
}

func TestSearchFiles_NoMatches(t *testing.T) {
	dir := setupProjectDir(t)

	d, stdout, _ := testDeps(missingConfigPath(t))
	SetDeps(d)
	defer ResetDeps()

	searchFiles(searchCmd, []string{"zzz", dir})

	if !strings.Contains(stdout.String(), "No files found matching 'zzz'") {
		t.Errorf("Expected no-match message, got: %s", stdout.String())
	}
}

func TestSearchFiles_VersionedOnly(t *testing.T) {
	dir := setupMixedDir(t)

	d, stdout, _ := testDeps(missingConfigPath(t))
	SetDeps(d)
	defer ResetDeps()

	_ = searchCmd.Flags().Set("versioned-only", "true")
	defer func() { _ = searchCmd.Flags().Set("versioned-only", "false") }()

	searchFiles(searchCmd, []string{"jam", dir})

	output := stdout.String()
	if !strings.Contains(output, "jam 0.1.0.als") {
		t.Errorf("Expected versioned file in output, got: %s", output)
	}
	if strings.Contains(output, "jam sketch.als") {
		t.Errorf("Did not expect unversioned file in output, got: %s", output)
	}
	if !strings.Contains(output, "(1 file)") {
		t.Errorf("Expected single file count, got: %s", output)
	}
}

func TestSearchFiles_LastDays(t *testing.T) {
	dir := setupProjectDir(t)

	d, stdout, _ := testDeps(missingConfigPath(t))
	SetDeps(d)
	defer ResetDeps()

	_ = searchCmd.Flags().Set("last", "7")
	defer func() { _ = searchCmd.Flags().Set("last", "0") }()

	searchFiles(searchCmd, []string{"song", dir})

	output := stdout.String()
	if !strings.Contains(output, "Search results for 'song' (last 7 days):") {
		t.Errorf("Expected last-days header, got: %s", output)
	}
	// Files were created just now, so they all fall in the window
	if !strings.Contains(output, "(3 files)") {
		t.Errorf("Expected 3 files in the last 7 days, got: %s", output)
	}
}

func TestSearchFiles_DateRangeHeader(t *testing.T) {
	dir := setupProjectDir(t)

	d, stdout, _ := testDeps(missingConfigPath(t))
	SetDeps(d)
	defer ResetDeps()

	fromDate := time.Now().AddDate(0, 0, -1).Format("2006-01-02")
	_ = searchCmd.Flags().Set("from", fromDate)
	defer func() { _ = searchCmd.Flags().Set("from", "") }()

	searchFiles(searchCmd, []string{"song", dir})

	output := stdout.String()
	if !strings.Contains(output, "(from "+fromDate+")") {
		t.Errorf("Expected date range in header, got: %s", output)
	}
	if !strings.Contains(output, "(3 files)") {
		t.Errorf("Expected 3 files since yesterday, got: %s", output)
	}
}

func TestSearchFiles_LastConflictsWithRange(t *testing.T) {
	exitCalled := false
	d, _, stderr := testDeps(missingConfigPath(t))
	d.Exit = func(code int) { exitCalled = true }
	SetDeps(d)
	defer ResetDeps()

	_ = searchCmd.Flags().Set("last", "7")
	_ = searchCmd.Flags().Set("from", "2024-01-01")
	defer func() {
		_ = searchCmd.Flags().Set("last", "0")
		_ = searchCmd.Flags().Set("from", "")
	}()

	searchFiles(searchCmd, []string{"song", t.TempDir()})

	if !exitCalled {
		t.Error("Expected exit to be called")
	}
	if !strings.Contains(stderr.String(), "Cannot use --last with --from or --to") {
		t.Errorf("Expected conflicting flags error, got: %s", stderr.String())
	}
}

func TestSearchFiles_InvalidFromDate(t *testing.T) {
	exitCalled := false
	d, _, stderr := testDeps(missingConfigPath(t))
	d.Exit = func(code int) { exitCalled = true }
	SetDeps(d)
	defer ResetDeps()

	_ = searchCmd.Flags().Set("from", "not-a-date")
	defer func() { _ = searchCmd.Flags().Set("from", "") }()

	searchFiles(searchCmd, []string{"song", t.TempDir()})

	if !exitCalled {
		t.Error("Expected exit to be called")
	}
	if !strings.Contains(stderr.String(), "Invalid --from date") {
		t.Errorf("Expected invalid date error, got: %s", stderr.String())
	}
}

func TestSearchFiles_MissingDirectory(t *testing.T) {
	exitCalled := false
	d, _, stderr := testDeps(missingConfigPath(t))
	d.Exit = func(code int) { exitCalled = true }
	SetDeps(d)
	defer ResetDeps()

	searchFiles(searchCmd, []string{"song", "/nonexistent/project/dir"})

	if !exitCalled {
		t.Error("Expected exit to be called")
	}
	if !strings.Contains(stderr.String(), "Failed to scan project directory") {
		t.Errorf("Expected scan error, got: %s", stderr.String())
	}
}

func TestFormatDateRangeForDisplay(t *testing.T) {
	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.Local)
	to := time.Date(2024, 1, 31, 23, 59, 59, 0, time.Local)

	tests := []struct {
		name     string
		from     time.Time
		to       time.Time
		expected string
	}{
		{"both bounds", from, to, "2024-01-01 to 2024-01-31"},
		{"from only", from, time.Time{}, "from 2024-01-01"},
		{"to only", time.Time{}, to, "until 2024-01-31"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := formatDateRangeForDisplay(tt.from, tt.to)
			if result != tt.expected {
				t.Errorf("formatDateRangeForDisplay() = %q, expected %q", result, tt.expected)
			}
		})
	}
}
