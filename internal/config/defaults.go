package config

import (
	"os"
	"path/filepath"
)

const (
	// DefaultCapacity is the default number of recent images kept.
	DefaultCapacity = 12

	// MaxCapacity bounds the recent list so keys stay within Filename00..Filename98.
	MaxCapacity = 99

	// DefaultFirstMenuID is the identifier of the first projected recent entry.
	DefaultFirstMenuID = 100

	// AnyMenuID lets the menu host assign identifiers.
	AnyMenuID = -1

	// ClearMissingMenuID and ClearMenuID identify the trailing list actions.
	// A configured entry range may not overlap them.
	ClearMissingMenuID = 9000
	ClearMenuID        = 9001
)

// Default returns a Config populated with sensible defaults.
func Default() *Config {
	watch := true
	return &Config{
		Recent: RecentConfig{
			Capacity:    DefaultCapacity,
			FirstMenuID: DefaultFirstMenuID,
		},
		Paths: PathsConfig{
			AppDir:   defaultAppDir(),
			Settings: defaultSettingsPath(),
		},
		TUI: TUIConfig{
			Theme: "auto",
			Watch: &watch,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// ApplyDefaults fills in zero values with sensible defaults.
func (c *Config) ApplyDefaults() {
	d := Default()

	// Recent
	if c.Recent.Capacity == 0 {
		c.Recent.Capacity = d.Recent.Capacity
	}
	if c.Recent.FirstMenuID == 0 {
		c.Recent.FirstMenuID = d.Recent.FirstMenuID
	}

	// Paths
	if c.Paths.AppDir == "" {
		c.Paths.AppDir = d.Paths.AppDir
	}
	if c.Paths.Settings == "" {
		c.Paths.Settings = d.Paths.Settings
	}

	// TUI
	if c.TUI.Theme == "" {
		c.TUI.Theme = d.TUI.Theme
	}
	if c.TUI.Watch == nil {
		c.TUI.Watch = d.TUI.Watch
	}

	// Log
	if c.Log.Level == "" {
		c.Log.Level = d.Log.Level
	}
	if c.Log.Format == "" {
		c.Log.Format = d.Log.Format
	}
}

func defaultAppDir() string {
	exe, err := os.Executable()
	if err != nil {
		return "."
	}
	return filepath.Dir(exe)
}

func defaultSettingsPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "isoshelf-ui.toml"
	}
	return filepath.Join(dir, "isoshelf", "ui.toml")
}
