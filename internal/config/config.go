package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/xolan/spent/internal/osutil"
)

const (
	// AppName is the application name used for config directory
	AppName = "spent"
	// ConfigFile is the name of the TOML configuration file
	ConfigFile = "config.toml"
)

// Config represents the application configuration
type Config struct {
	// Suffix marks which files in a scanned directory are project files
	Suffix string `toml:"suffix"`
	// MaxGapMinutes is the longest gap between consecutive saves that still
	// counts as working time. Values <= 0 disable the limit.
	MaxGapMinutes int `toml:"max_gap_minutes"`
	// Theme selects the TUI color theme by tint name
	Theme string `toml:"theme"`
}

// DefaultConfig returns a Config with sensible defaults.
// - suffix: ".als" (Ableton Live sets)
// - max_gap_minutes: 60
// - theme: "dracula"
func DefaultConfig() Config {
	return Config{
		Suffix:        ".als",
		MaxGapMinutes: 60,
		Theme:         "dracula",
	}
}

// Normalize canonicalizes fields in place: whitespace is trimmed and the
// theme name is lowercased. An empty theme falls back to the default.
func (c *Config) Normalize() {
	c.Suffix = strings.TrimSpace(c.Suffix)
	c.Theme = strings.ToLower(strings.TrimSpace(c.Theme))
	if c.Theme == "" {
		c.Theme = DefaultConfig().Theme
	}
}

// Validate rejects configurations the scanner cannot work with
func (c Config) Validate() error {
	if c.Suffix == "" {
		return fmt.Errorf("suffix cannot be empty (e.g., \".als\")")
	}
	return nil
}

// Load reads and validates the TOML config file at path. Fields absent from
// the file keep their default values.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// LoadOrDefault reads the config file when it exists and falls back to
// defaults when it does not. Any other stat failure is reported.
func LoadOrDefault(path string) (Config, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return Config{}, fmt.Errorf("failed to check config file: %w", err)
	}
	return Load(path)
}

// GetConfigPath returns the path to the config file.
// Uses os.UserConfigDir() for cross-platform XDG-compliant config directory.
// Creates the config directory if it doesn't exist.
func GetConfigPath() (string, error) {
	configDir, err := osutil.Provider.UserConfigDir()
	if err != nil {
		return "", err
	}

	appDir := filepath.Join(configDir, AppName)

	// Create config directory if it doesn't exist
	if err := osutil.Provider.MkdirAll(appDir, 0755); err != nil {
		return "", err
	}

	return filepath.Join(appDir, ConfigFile), nil
}

// GenerateSampleConfig returns a fully commented sample config file. Every
// setting is commented out so the file changes nothing until edited.
func GenerateSampleConfig() string {
	cfg := DefaultConfig()
	return fmt.Sprintf(`# spent configuration file
#
# All settings are optional. Remove the leading # to override a default.

# File suffix that marks a save as a project file.
# Ableton Live sets use .als; other tools use .flp, .logicx, .song and so on.
# suffix = %q

# Longest gap between consecutive saves that still counts as working time,
# in minutes. Values <= 0 disable the limit entirely.
# max_gap_minutes = %d

# Color theme for the interactive TUI, by tint name.
# Examples: dracula, gruvbox_dark, nord, solarized_light, tokyo_night
# theme = %q
`, cfg.Suffix, cfg.MaxGapMinutes, cfg.Theme)
}
