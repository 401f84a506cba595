package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"
)

// Load reads configuration from standard locations with environment overrides.
// Search order: ~/.isoshelfrc, $XDG_CONFIG_HOME/isoshelf/config.toml, ~/.config/isoshelf/config.toml
func Load() (*Config, error) {
	cfg := &Config{}

	path := findConfigFile()
	if path != "" {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, err
		}
	}

	// Apply defaults, then environment variable overrides
	cfg.ApplyDefaults()
	applyEnvOverrides(cfg)

	return cfg, nil
}

// LoadFrom reads configuration from a specific file path.
func LoadFrom(path string) (*Config, error) {
	cfg := &Config{}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, err
	}
	cfg.ApplyDefaults()
	applyEnvOverrides(cfg)
	return cfg, nil
}

// DefaultPath returns the path used when creating a new config file.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".isoshelfrc"
	}
	return filepath.Join(home, ".isoshelfrc")
}

// findConfigFile returns the first existing config file path.
func findConfigFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	paths := []string{
		filepath.Join(home, ".isoshelfrc"),
	}

	// XDG_CONFIG_HOME or default
	xdgConfig := os.Getenv("XDG_CONFIG_HOME")
	if xdgConfig == "" {
		xdgConfig = filepath.Join(home, ".config")
	}
	paths = append(paths, filepath.Join(xdgConfig, "isoshelf", "config.toml"))

	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}

	return ""
}

// applyEnvOverrides applies environment variable overrides to the config.
func applyEnvOverrides(cfg *Config) {
	// Recent
	if v := os.Getenv("ISOSHELF_RECENT_CAPACITY"); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			cfg.Recent.Capacity = i
		}
	}

	// Boot
	if v := os.Getenv("ISOSHELF_ASK_ON_BOOT"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Boot.AskOnBoot = b
		}
	}

	// Paths
	if v := os.Getenv("ISOSHELF_PORTABLE"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Paths.Portable = b
		}
	}
	if v := os.Getenv("ISOSHELF_APP_DIR"); v != "" {
		cfg.Paths.AppDir = v
	}
	if v := os.Getenv("ISOSHELF_SETTINGS"); v != "" {
		cfg.Paths.Settings = v
	}

	// TUI
	if v := os.Getenv("ISOSHELF_TUI_THEME"); v != "" {
		cfg.TUI.Theme = v
	}

	// Log
	if v := os.Getenv("ISOSHELF_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("ISOSHELF_LOG_FILE"); v != "" {
		cfg.Log.File = v
	}
}
