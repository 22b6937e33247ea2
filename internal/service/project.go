// Package service wires the scanner and the inference engine together behind
// a single API shared by the CLI commands and the TUI.
package service

import (
	"github.com/xolan/spent/internal/filter"
	"github.com/xolan/spent/internal/scan"
	"github.com/xolan/spent/internal/session"
	"github.com/xolan/spent/internal/stats"
)

// ProjectService provides scan and aggregation operations for one directory
type ProjectService struct {
	opts ScanOptions
}

// NewProjectService creates a new ProjectService
func NewProjectService(opts ScanOptions) *ProjectService {
	return &ProjectService{opts: opts}
}

// Options returns the scan options the service was built with
func (s *ProjectService) Options() ScanOptions {
	return s.opts
}

// Scan discovers project files, infers working time and partitions the
// ordered result into sessions
func (s *ProjectService) Scan() (*ScanResult, error) {
	files, err := scan.Directory(s.opts.Directory, s.opts.Suffix)
	if err != nil {
		return nil, err
	}

	session.CalculateTimeSpent(files, session.MaxGap(s.opts.MaxGapMinutes))

	return &ScanResult{
		Files:    files,
		Sessions: session.Partition(files),
		Total:    session.Total(files),
	}, nil
}

// ScanFiltered runs a full scan and then narrows the result. Working time is
// always inferred over the complete sequence first, so filtered rows keep the
// durations they earned with their real neighbors.
func (s *ProjectService) ScanFiltered(f *filter.Filter) (*ScanResult, error) {
	result, err := s.Scan()
	if err != nil {
		return nil, err
	}

	files := filter.FilterFiles(result.Files, f)
	return &ScanResult{
		Files:    files,
		Sessions: session.Partition(files),
		Total:    session.Total(files),
	}, nil
}

// Stats runs a full scan and aggregates it into statistics
func (s *ProjectService) Stats() (*StatsResult, error) {
	result, err := s.Scan()
	if err != nil {
		return nil, err
	}

	return &StatsResult{
		Statistics: stats.Calculate(result.Files, result.Sessions),
		Breakdown:  stats.CalculateVersionBreakdown(result.Sessions),
	}, nil
}
