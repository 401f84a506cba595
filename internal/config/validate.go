package config

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/tessro/isoshelf/internal/menu"
)

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	var errs []error

	if err := c.Recent.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("recent: %w", err))
	}
	if err := c.Paths.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("paths: %w", err))
	}
	if err := c.TUI.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("tui: %w", err))
	}
	if err := c.Log.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("log: %w", err))
	}

	return errors.Join(errs...)
}

// Validate checks RecentConfig for errors.
func (c *RecentConfig) Validate() error {
	if c.Capacity < 1 || c.Capacity > MaxCapacity {
		return fmt.Errorf("capacity must be between 1 and %d", MaxCapacity)
	}
	if c.FirstMenuID < AnyMenuID {
		return errors.New("first_menu_id must be -1 (host assigned) or non-negative")
	}
	if c.FirstMenuID == AnyMenuID {
		return nil
	}
	last := c.FirstMenuID + c.Capacity - 1
	if c.FirstMenuID <= ClearMenuID && last >= ClearMissingMenuID {
		return fmt.Errorf("first_menu_id range %d-%d overlaps the list actions at %d-%d",
			c.FirstMenuID, last, ClearMissingMenuID, ClearMenuID)
	}
	if last >= menu.FirstAutoID {
		return fmt.Errorf("first_menu_id range %d-%d must stay below %d",
			c.FirstMenuID, last, menu.FirstAutoID)
	}
	return nil
}

// Validate checks PathsConfig for errors.
func (c *PathsConfig) Validate() error {
	if c.Portable && c.AppDir != "" && !filepath.IsAbs(c.AppDir) {
		return fmt.Errorf("app_dir must be absolute in portable mode: %s", c.AppDir)
	}
	return nil
}

// Validate checks TUIConfig for errors.
func (c *TUIConfig) Validate() error {
	switch c.Theme {
	case "", "auto", "dark", "light":
		// valid
	default:
		return fmt.Errorf("invalid theme: %s (must be auto, dark, or light)", c.Theme)
	}
	return nil
}

// Validate checks LogConfig for errors.
func (c *LogConfig) Validate() error {
	switch c.Level {
	case "", "debug", "info", "warn", "error":
		// valid
	default:
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.Level)
	}
	switch c.Format {
	case "", "text", "json":
		// valid
	default:
		return fmt.Errorf("invalid log format: %s (must be text or json)", c.Format)
	}
	return nil
}
