package main

import (
	"fmt"
	"os"

	"github.com/xolan/spent/cmd"
	"github.com/xolan/spent/internal/config"
)

// Version information injected by GoReleaser via ldflags
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var exitFunc = os.Exit

func run() int {
	// Resolving the config path also creates the config directory, so
	// commands that write to it never race against a missing parent.
	if _, err := config.GetConfigPath(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, "Error: Failed to prepare config directory")
		_, _ = fmt.Fprintf(os.Stderr, "Details: %v\n", err)
		return 1
	}

	cmd.SetVersionInfo(version, commit, date)
	if err := cmd.Execute(); err != nil {
		return 1
	}
	return 0
}

func main() {
	exitFunc(run())
}
