package ui

import "github.com/xolan/spent/internal/service"

// ScanLoadedMsg is broadcast to every view when a directory scan completes.
// All views render from the same scan.
type ScanLoadedMsg struct {
	Result *service.ScanResult
	Err    error
}

// ThemeChangedMsg is broadcast to every view when the theme changes.
type ThemeChangedMsg struct {
	ThemeName string
	Styles    Styles
}
