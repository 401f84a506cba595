package config

// Config is the root configuration structure.
type Config struct {
	Recent RecentConfig `toml:"recent"`
	Boot   BootConfig   `toml:"boot"`
	Paths  PathsConfig  `toml:"paths"`
	TUI    TUIConfig    `toml:"tui"`
	Log    LogConfig    `toml:"log"`
}

// RecentConfig holds recent image list settings.
type RecentConfig struct {
	Capacity    int `toml:"capacity"`
	FirstMenuID int `toml:"first_menu_id"`
}

// BootConfig holds boot behavior settings.
type BootConfig struct {
	AskOnBoot bool `toml:"ask_on_boot"`
}

// PathsConfig holds file location settings.
type PathsConfig struct {
	Portable bool   `toml:"portable"`
	AppDir   string `toml:"app_dir"`
	Settings string `toml:"settings"`
}

// TUIConfig holds terminal UI settings.
type TUIConfig struct {
	Theme            string `toml:"theme"`
	Watch            *bool  `toml:"watch"`
	LockWhileRunning bool   `toml:"lock_while_running"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
	File   string `toml:"file"`
}

// RecentCapacity returns the configured maximum number of recent images.
func (c *Config) RecentCapacity() int {
	if c == nil || c.Recent.Capacity <= 0 {
		return DefaultCapacity
	}
	return c.Recent.Capacity
}

// AskOnBoot reports whether the engine confirms before booting, in which case
// recent entries are shown disabled.
func (c *Config) AskOnBoot() bool {
	return c != nil && c.Boot.AskOnBoot
}

// WatchEnabled reports whether the TUI should watch listed images for changes.
func (c *TUIConfig) WatchEnabled() bool {
	return c.Watch == nil || *c.Watch
}
