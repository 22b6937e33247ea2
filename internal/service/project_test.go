package service

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/xolan/spent/internal/filter"
	"github.com/xolan/spent/internal/session"
)

func setupProjectDir(t *testing.T, names ...string) string {
	t.Helper()
	dir := t.TempDir()
	for _, name := range names {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("save"), 0644); err != nil {
			t.Fatalf("Failed to create test file %s: %v", name, err)
		}
	}
	return dir
}

func TestProjectService_Scan(t *testing.T) {
	dir := setupProjectDir(t,
		"track 0.1.0.als",
		"track 0.1.1.als",
		"track 0.2.0.als",
		"notes.txt",
	)

	svc := NewProjectService(ScanOptions{Directory: dir, Suffix: ".als", MaxGapMinutes: 60})

	result, err := svc.Scan()
	if err != nil {
		t.Fatalf("Scan() returned unexpected error: %v", err)
	}

	if len(result.Files) != 3 {
		t.Fatalf("Scan() found %d files, want 3", len(result.Files))
	}

	covered := 0
	for _, s := range result.Sessions {
		covered += len(s.Files)
	}
	if covered != len(result.Files) {
		t.Errorf("sessions cover %d files, want %d", covered, len(result.Files))
	}

	if result.Total != session.Total(result.Files) {
		t.Errorf("Total = %v, want %v", result.Total, session.Total(result.Files))
	}
	for _, f := range result.Files {
		if f.TimeSpent < 0 {
			t.Errorf("file %q has negative TimeSpent %v", f.Name, f.TimeSpent)
		}
	}
}

func TestProjectService_Scan_EmptyDirectory(t *testing.T) {
	svc := NewProjectService(ScanOptions{Directory: t.TempDir(), Suffix: ".als", MaxGapMinutes: 60})

	result, err := svc.Scan()
	if err != nil {
		t.Fatalf("Scan() returned unexpected error: %v", err)
	}

	if len(result.Files) != 0 || len(result.Sessions) != 0 || result.Total != 0 {
		t.Errorf("Scan() of empty directory = %+v, want empty result", result)
	}
}

func TestProjectService_Scan_MissingDirectory(t *testing.T) {
	svc := NewProjectService(ScanOptions{
		Directory:     filepath.Join(t.TempDir(), "missing"),
		Suffix:        ".als",
		MaxGapMinutes: 60,
	})

	if _, err := svc.Scan(); err == nil {
		t.Fatal("Scan() expected error for missing directory, got nil")
	}
}

func TestProjectService_ScanFiltered(t *testing.T) {
	dir := setupProjectDir(t,
		"track 0.1.0.als",
		"track 0.1.1.als",
		"sketch.als",
	)

	svc := NewProjectService(ScanOptions{Directory: dir, Suffix: ".als", MaxGapMinutes: 60})

	result, err := svc.ScanFiltered(&filter.Filter{VersionedOnly: true})
	if err != nil {
		t.Fatalf("ScanFiltered() returned unexpected error: %v", err)
	}

	if len(result.Files) != 2 {
		t.Fatalf("ScanFiltered() kept %d files, want 2", len(result.Files))
	}
	for _, f := range result.Files {
		if !f.Versioned() {
			t.Errorf("ScanFiltered() kept unversioned file %q", f.Name)
		}
	}
	if result.Total != session.Total(result.Files) {
		t.Errorf("Total = %v, want %v", result.Total, session.Total(result.Files))
	}
}

func TestProjectService_Stats(t *testing.T) {
	dir := setupProjectDir(t,
		"track 0.1.0.als",
		"track 0.2.0.als",
	)

	svc := NewProjectService(ScanOptions{Directory: dir, Suffix: ".als", MaxGapMinutes: 60})

	result, err := svc.Stats()
	if err != nil {
		t.Fatalf("Stats() returned unexpected error: %v", err)
	}

	if result.Statistics.FileCount != 2 {
		t.Errorf("FileCount = %d, want 2", result.Statistics.FileCount)
	}
	if result.Statistics.VersionedCount != 2 {
		t.Errorf("VersionedCount = %d, want 2", result.Statistics.VersionedCount)
	}
	if result.Statistics.SessionCount != 2 {
		t.Errorf("SessionCount = %d, want 2", result.Statistics.SessionCount)
	}
	if len(result.Breakdown) != 2 {
		t.Errorf("Breakdown has %d groups, want 2", len(result.Breakdown))
	}
}

func TestProjectService_Options(t *testing.T) {
	opts := ScanOptions{Directory: "/tmp/x", Suffix: ".flp", MaxGapMinutes: 15}
	svc := NewProjectService(opts)

	if got := svc.Options(); got != opts {
		t.Errorf("Options() = %+v, want %+v", got, opts)
	}
}
