package service

import (
	"time"

	"github.com/xolan/spent/internal/projectfile"
	"github.com/xolan/spent/internal/session"
	"github.com/xolan/spent/internal/stats"
)

// ScanOptions describes what to scan and how to infer working time
type ScanOptions struct {
	Directory     string
	Suffix        string
	MaxGapMinutes int
}

// ScanResult carries everything a frontend renders for one scan
type ScanResult struct {
	Files    []projectfile.File
	Sessions []session.Session
	Total    time.Duration
}

// StatsResult carries aggregate statistics for one scan
type StatsResult struct {
	Statistics stats.Statistics
	Breakdown  []stats.VersionBreakdown
}
