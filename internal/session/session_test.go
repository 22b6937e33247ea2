package session

import (
	"testing"
	"time"

	"github.com/xolan/spent/internal/projectfile"
)

func TestPartition(t *testing.T) {
	created := time.Date(2024, 2, 3, 15, 0, 0, 0, time.Local)
	at := func(offset time.Duration, name string) projectfile.File {
		return makeFile(name, created.Add(offset), created.Add(offset+time.Second))
	}

	tests := []struct {
		name       string
		files      []projectfile.File
		wantCounts []int
		wantLabels []string
	}{
		{
			name:       "empty scan",
			files:      nil,
			wantCounts: nil,
		},
		{
			name: "patch bumps stay in one session",
			files: []projectfile.File{
				at(0, "proj 0.1.0.als"),
				at(time.Minute, "proj 0.1.1.als"),
				at(2*time.Minute, "proj 0.1.2.als"),
			},
			wantCounts: []int{3},
			wantLabels: []string{"0.1"},
		},
		{
			name: "minor bump splits sessions",
			files: []projectfile.File{
				at(0, "proj 0.1.0.als"),
				at(time.Minute, "proj 0.1.1.als"),
				at(2*time.Minute, "proj 0.2.0.als"),
			},
			wantCounts: []int{2, 1},
			wantLabels: []string{"0.1", "0.2"},
		},
		{
			name: "unversioned neighbor splits sessions",
			files: []projectfile.File{
				at(0, "proj 0.1.0.als"),
				at(time.Minute, "proj idea.als"),
				at(2*time.Minute, "proj 0.1.1.als"),
			},
			wantCounts: []int{1, 1, 1},
			wantLabels: []string{"0.1", "", "0.1"},
		},
		{
			name: "unversioned files form one unlabeled session",
			files: []projectfile.File{
				at(0, "proj.als"),
				at(time.Minute, "proj final.als"),
				at(2*time.Minute, "proj final final.als"),
			},
			wantCounts: []int{3},
			wantLabels: []string{""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sessions := Partition(tt.files)

			if len(sessions) != len(tt.wantCounts) {
				t.Fatalf("Partition() returned %d sessions, want %d", len(sessions), len(tt.wantCounts))
			}
			for i, s := range sessions {
				if len(s.Files) != tt.wantCounts[i] {
					t.Errorf("sessions[%d] has %d files, want %d", i, len(s.Files), tt.wantCounts[i])
				}
				label, ok := s.Label()
				if tt.wantLabels[i] == "" {
					if ok {
						t.Errorf("sessions[%d].Label() = %q, want unlabeled", i, label)
					}
				} else if label != tt.wantLabels[i] {
					t.Errorf("sessions[%d].Label() = %q, want %q", i, label, tt.wantLabels[i])
				}
			}
		})
	}
}

func TestPartition_CoversEveryFileOnce(t *testing.T) {
	created := time.Date(2024, 2, 3, 15, 0, 0, 0, time.Local)
	files := []projectfile.File{
		makeFile("proj 0.1.0.als", created, created),
		makeFile("proj 0.1.1.als", created.Add(time.Minute), created.Add(time.Minute)),
		makeFile("proj 0.2.0.als", created.Add(2*time.Minute), created.Add(2*time.Minute)),
		makeFile("proj.als", created.Add(3*time.Minute), created.Add(3*time.Minute)),
		makeFile("proj 1.0.0.als", created.Add(4*time.Minute), created.Add(4*time.Minute)),
	}

	sessions := Partition(files)

	covered := 0
	for _, s := range sessions {
		covered += len(s.Files)
	}
	if covered != len(files) {
		t.Errorf("sessions cover %d files, want %d", covered, len(files))
	}
}

func TestTotal(t *testing.T) {
	if got := Total(nil); got != 0 {
		t.Errorf("Total(nil) = %v, want 0", got)
	}

	files := []projectfile.File{
		{TimeSpent: time.Second},
		{TimeSpent: 10 * time.Second},
	}
	if got := Total(files); got != 11*time.Second {
		t.Errorf("Total() = %v, want %v", got, 11*time.Second)
	}
}

func TestTotal_MatchesSessionSubtotals(t *testing.T) {
	created := time.Date(2024, 2, 3, 15, 0, 0, 0, time.Local)
	files := []projectfile.File{
		makeFile("proj 0.1.0.als", created, created.Add(time.Second)),
		makeFile("proj 0.1.1.als", created.Add(time.Minute), created.Add(time.Minute+time.Second)),
		makeFile("proj 0.2.0.als", created.Add(5*time.Minute), created.Add(5*time.Minute+2*time.Second)),
		makeFile("proj sketch.als", created.Add(9*time.Minute), created.Add(9*time.Minute+3*time.Second)),
	}
	CalculateTimeSpent(files, time.Hour)

	var bySession time.Duration
	for _, s := range Partition(files) {
		bySession += s.Subtotal()
	}

	if total := Total(files); total != bySession {
		t.Errorf("Total() = %v, session subtotals sum to %v", total, bySession)
	}
}

func TestSessionStart(t *testing.T) {
	created := time.Date(2024, 2, 3, 15, 0, 0, 0, time.Local)
	s := Session{Files: []projectfile.File{
		makeFile("proj 0.1.0.als", created, created),
		makeFile("proj 0.1.1.als", created.Add(time.Minute), created.Add(time.Minute)),
	}}

	if got := s.Start(); !got.Equal(created) {
		t.Errorf("Start() = %v, want %v", got, created)
	}

	var empty Session
	if got := empty.Start(); !got.IsZero() {
		t.Errorf("Start() on empty session = %v, want zero time", got)
	}
}
