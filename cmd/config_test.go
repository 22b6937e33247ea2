package cmd

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestShowConfig_Defaults(t *testing.T) {
	configPath := missingConfigPath(t)

	d, stdout, stderr := testDeps(configPath)
	SetDeps(d)
	defer ResetDeps()

	showConfig()

	if stderr.Len() > 0 {
		t.Errorf("Unexpected stderr output: %s", stderr.String())
	}

	output := stdout.String()
	expectations := []string{
		"Configuration for spent",
		"Config file:     " + configPath,
		"Status:          No config file (using defaults)",
		"Suffix:          .als",
		"Max gap:         60 minutes",
		"Theme:           dracula",
		"Tip: Run 'spent config init'",
	}
	for _, want := range expectations {
		if !strings.Contains(output, want) {
			t.Errorf("Expected %q in output, got: %s", want, output)
		}
	}
}

func TestShowConfig_ExistingFile(t *testing.T) {
	configPath := missingConfigPath(t)
	content := "suffix = \".flp\"\nmax_gap_minutes = 30\ntheme = \"nord\"\n"
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	d, stdout, _ := testDeps(configPath)
	SetDeps(d)
	defer ResetDeps()

	showConfig()

	output := stdout.String()
	expectations := []string{
		"Status:          File exists (using custom configuration)",
		"Suffix:          .flp",
		"Max gap:         30 minutes",
		"Theme:           nord",
	}
	for _, want := range expectations {
		if !strings.Contains(output, want) {
			t.Errorf("Expected %q in output, got: %s", want, output)
		}
	}
	if strings.Contains(output, "Tip:") {
		t.Errorf("Did not expect tip when config file exists, got: %s", output)
	}
}

func TestShowConfig_NoGapLimit(t *testing.T) {
	configPath := missingConfigPath(t)
	if err := os.WriteFile(configPath, []byte("max_gap_minutes = 0\n"), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	d, stdout, _ := testDeps(configPath)
	SetDeps(d)
	defer ResetDeps()

	showConfig()

	if !strings.Contains(stdout.String(), "Max gap:         (no limit)") {
		t.Errorf("Expected no-limit gap display, got: %s", stdout.String())
	}
}

func TestShowConfig_SingleMinute(t *testing.T) {
	configPath := missingConfigPath(t)
	if err := os.WriteFile(configPath, []byte("max_gap_minutes = 1\n"), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	d, stdout, _ := testDeps(configPath)
	SetDeps(d)
	defer ResetDeps()

	showConfig()

	if !strings.Contains(stdout.String(), "Max gap:         1 minute\n") {
		t.Errorf("Expected singular minute display, got: %s", stdout.String())
	}
}

func TestShowConfig_InvalidTOML(t *testing.T) {
	configPath := missingConfigPath(t)
	if err := os.WriteFile(configPath, []byte("suffix = [not valid"), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	exitCalled := false
	d, _, stderr := testDeps(configPath)
	d.Exit = func(code int) { exitCalled = true }
	SetDeps(d)
	defer ResetDeps()

	showConfig()

	if !exitCalled {
		t.Error("Expected exit to be called")
	}
	if !strings.Contains(stderr.String(), "Failed to load configuration") {
		t.Errorf("Expected load error, got: %s", stderr.String())
	}
}

func TestShowConfig_ConfigPathError(t *testing.T) {
	exitCalled := false
	d, _, stderr := testDeps("")
	d.ConfigPath = func() (string, error) {
		return "", errors.New("no home directory")
	}
	d.Exit = func(code int) { exitCalled = true }
	SetDeps(d)
	defer ResetDeps()

	showConfig()

	if !exitCalled {
		t.Error("Expected exit to be called")
	}
	if !strings.Contains(stderr.String(), "Failed to determine config file location") {
		t.Errorf("Expected config path error, got: %s", stderr.String())
	}
}

func TestInitConfigFile_CreatesSample(t *testing.T) {
	configPath := missingConfigPath(t)

	d, stdout, stderr := testDeps(configPath)
	SetDeps(d)
	defer ResetDeps()

	initConfigFile()

	if stderr.Len() > 0 {
		t.Errorf("Unexpected stderr output: %s", stderr.String())
	}
	if !strings.Contains(stdout.String(), "Created "+configPath) {
		t.Errorf("Expected creation message, got: %s", stdout.String())
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		t.Fatalf("Expected config file to exist: %v", err)
	}
	for _, want := range []string{"# suffix", "# max_gap_minutes", "# theme"} {
		if !strings.Contains(string(data), want) {
			t.Errorf("Expected %q in sample config, got: %s", want, string(data))
		}
	}
}

func TestInitConfigFile_ExistingFile(t *testing.T) {
	configPath := missingConfigPath(t)
	if err := os.WriteFile(configPath, []byte("suffix = \".flp\"\n"), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	exitCalled := false
	d, _, stderr := testDeps(configPath)
	d.Exit = func(code int) { exitCalled = true }
	SetDeps(d)
	defer ResetDeps()

	initConfigFile()

	if !exitCalled {
		t.Error("Expected exit to be called")
	}
	if !strings.Contains(stderr.String(), "Config file already exists") {
		t.Errorf("Expected existing file error, got: %s", stderr.String())
	}

	// The original file is left untouched
	data, err := os.ReadFile(configPath)
	if err != nil {
		t.Fatalf("Failed to read config file: %v", err)
	}
	if string(data) != "suffix = \".flp\"\n" {
		t.Errorf("Expected existing file to be preserved, got: %s", string(data))
	}
}

func TestInitConfigFile_WriteError(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "missing-parent", "config.toml")

	exitCalled := false
	d, _, stderr := testDeps(configPath)
	d.Exit = func(code int) { exitCalled = true }
	SetDeps(d)
	defer ResetDeps()

	initConfigFile()

	if !exitCalled {
		t.Error("Expected exit to be called")
	}
	if !strings.Contains(stderr.String(), "Failed to write config file") {
		t.Errorf("Expected write error, got: %s", stderr.String())
	}
}

func TestInitConfigFile_ConfigPathError(t *testing.T) {
	exitCalled := false
	d, _, stderr := testDeps("")
	d.ConfigPath = func() (string, error) {
		return "", errors.New("no home directory")
	}
	d.Exit = func(code int) { exitCalled = true }
	SetDeps(d)
	defer ResetDeps()

	initConfigFile()

	if !exitCalled {
		t.Error("Expected exit to be called")
	}
	if !strings.Contains(stderr.String(), "Failed to determine config file location") {
		t.Errorf("Expected config path error, got: %s", stderr.String())
	}
}
