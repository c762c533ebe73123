// Package config handles configuration file loading and parsing.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/jmylchreest/winshade/internal/theme"
)

// Default configuration values.
const (
	DefaultLightAccent = "default"
	DefaultDarkAccent  = "default"
	DefaultDayTime     = "08:00"
	DefaultNightTime   = "20:00"
)

// timeOfDayLayout is the schedule entry time format.
const timeOfDayLayout = "15:04"

// Config represents the winshade configuration.
type Config struct {
	Light    ModeDefaults    `toml:"light"`
	Dark     ModeDefaults    `toml:"dark"`
	Schedule []ScheduleEntry `toml:"schedule"`
}

// ModeDefaults holds the accent and wallpaper applied with a mode when a
// schedule entry doesn't choose its own.
type ModeDefaults struct {
	Accent    string `toml:"accent"`
	Wallpaper string `toml:"wallpaper"`
}

// ScheduleEntry is one recurring daily theme change.
type ScheduleEntry struct {
	Name      string `toml:"name"`
	Time      string `toml:"time"`      // HH:MM, 24-hour
	Mode      string `toml:"mode"`      // light or dark
	Accent    string `toml:"accent"`    // empty = mode default
	Wallpaper string `toml:"wallpaper"` // empty = mode default
	Enabled   bool   `toml:"enabled"`
}

// Validate checks an entry's name, time, mode, and accent.
func (e ScheduleEntry) Validate() error {
	if e.Name == "" {
		return errors.New("schedule entry has no name")
	}
	if _, err := time.Parse(timeOfDayLayout, e.Time); err != nil {
		return fmt.Errorf("schedule entry %q: bad time %q (want HH:MM)", e.Name, e.Time)
	}
	if _, err := theme.ParseMode(e.Mode); err != nil {
		return fmt.Errorf("schedule entry %q: %w", e.Name, err)
	}
	if e.Accent != "" {
		if _, err := theme.LookupAccent(e.Accent); err != nil {
			return fmt.Errorf("schedule entry %q: %w", e.Name, err)
		}
	}
	return nil
}

// TimeOfDay returns the entry's hour and minute.
// Validate must have succeeded first.
func (e ScheduleEntry) TimeOfDay() (hour, minute int) {
	t, err := time.Parse(timeOfDayLayout, e.Time)
	if err != nil {
		return 0, 0
	}
	return t.Hour(), t.Minute()
}

// DefaultConfig returns a Config with default values: light at 08:00, dark
// at 20:00, default accent for both.
func DefaultConfig() *Config {
	return &Config{
		Light: ModeDefaults{Accent: DefaultLightAccent},
		Dark:  ModeDefaults{Accent: DefaultDarkAccent},
		Schedule: []ScheduleEntry{
			{Name: "day", Time: DefaultDayTime, Mode: "light", Enabled: true},
			{Name: "night", Time: DefaultNightTime, Mode: "dark", Enabled: true},
		},
	}
}

// DefaultsFor returns the mode defaults for a mode.
func (c *Config) DefaultsFor(m theme.Mode) ModeDefaults {
	if m == theme.ModeLight {
		return c.Light
	}
	return c.Dark
}

// ConfigPath returns the path to the config file under the user's config
// directory (%APPDATA% on Windows).
func ConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "winshade", "config.toml")
}

// LoadConfig loads configuration from the specified path. If path is empty,
// the default config path is used. A missing file yields the defaults with
// no error. A malformed file yields the defaults AND an error so the caller
// can warn; configuration problems never abort an invocation.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		path = ConfigPath()
	}

	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return DefaultConfig(), fmt.Errorf("read %s: %w", path, err)
	}

	var parsed Config
	if err := toml.Unmarshal(data, &parsed); err != nil {
		return DefaultConfig(), fmt.Errorf("parse %s: %w", path, err)
	}

	// Fill gaps from the defaults.
	if parsed.Light.Accent == "" {
		parsed.Light.Accent = cfg.Light.Accent
	}
	if parsed.Dark.Accent == "" {
		parsed.Dark.Accent = cfg.Dark.Accent
	}
	if len(parsed.Schedule) == 0 {
		parsed.Schedule = cfg.Schedule
	}

	return &parsed, nil
}

// Save writes the configuration to the specified path, creating parent
// directories if needed.
func (c *Config) Save(path string) error {
	if path == "" {
		path = ConfigPath()
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
