package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "default", cfg.Light.Accent)
	assert.Equal(t, "default", cfg.Dark.Accent)
	require.Len(t, cfg.Schedule, 2)
	assert.Equal(t, "day", cfg.Schedule[0].Name)
	assert.Equal(t, "08:00", cfg.Schedule[0].Time)
	assert.Equal(t, "light", cfg.Schedule[0].Mode)
	assert.True(t, cfg.Schedule[0].Enabled)
	assert.Equal(t, "night", cfg.Schedule[1].Name)
	assert.Equal(t, "20:00", cfg.Schedule[1].Time)
	assert.Equal(t, "dark", cfg.Schedule[1].Mode)
	assert.True(t, cfg.Schedule[1].Enabled)
}

func TestLoadConfig_DefaultsWhenNoFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfig_ParsesTOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	content := `
[light]
accent = "yellow"
wallpaper = 'C:\walls\day.jpg'

[dark]
accent = "purple"
wallpaper = 'C:\walls\night.jpg'

[[schedule]]
name = "sunrise"
time = "06:45"
mode = "light"
enabled = true

[[schedule]]
name = "sunset"
time = "19:30"
mode = "dark"
accent = "red"
enabled = false
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "yellow", cfg.Light.Accent)
	assert.Equal(t, `C:\walls\day.jpg`, cfg.Light.Wallpaper)
	assert.Equal(t, "purple", cfg.Dark.Accent)

	require.Len(t, cfg.Schedule, 2)
	assert.Equal(t, "sunrise", cfg.Schedule[0].Name)
	assert.True(t, cfg.Schedule[0].Enabled)
	assert.Equal(t, "red", cfg.Schedule[1].Accent)
	assert.False(t, cfg.Schedule[1].Enabled)
}

func TestLoadConfig_PartialConfigFillsDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	content := `
[dark]
wallpaper = 'C:\walls\night.jpg'
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	// Changed field
	assert.Equal(t, `C:\walls\night.jpg`, cfg.Dark.Wallpaper)

	// Unchanged fields keep their defaults
	assert.Equal(t, "default", cfg.Dark.Accent)
	assert.Equal(t, "default", cfg.Light.Accent)
	assert.Len(t, cfg.Schedule, 2)
}

func TestLoadConfig_MalformedFallsBackWithError(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	require.NoError(t, os.WriteFile(path, []byte(`this is not valid toml [`), 0644))

	cfg, err := LoadConfig(path)
	require.Error(t, err)
	// The defaults come back even on a parse error so the caller can
	// warn and keep going.
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestSaveAndReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.toml")

	cfg := DefaultConfig()
	cfg.Dark.Accent = "cyan"
	require.NoError(t, cfg.Save(path))

	loaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "cyan", loaded.Dark.Accent)
	assert.Equal(t, cfg.Schedule, loaded.Schedule)
}

func TestScheduleEntryValidate(t *testing.T) {
	valid := ScheduleEntry{Name: "day", Time: "07:30", Mode: "light", Enabled: true}
	assert.NoError(t, valid.Validate())

	tests := []struct {
		name  string
		entry ScheduleEntry
	}{
		{"no name", ScheduleEntry{Time: "07:30", Mode: "light"}},
		{"bad time", ScheduleEntry{Name: "x", Time: "25:99", Mode: "light"}},
		{"not a time", ScheduleEntry{Name: "x", Time: "morning", Mode: "light"}},
		{"bad mode", ScheduleEntry{Name: "x", Time: "07:30", Mode: "dim"}},
		{"bad accent", ScheduleEntry{Name: "x", Time: "07:30", Mode: "dark", Accent: "taupe"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, tt.entry.Validate())
		})
	}
}

func TestScheduleEntryTimeOfDay(t *testing.T) {
	e := ScheduleEntry{Name: "x", Time: "19:05", Mode: "dark"}
	hour, minute := e.TimeOfDay()
	assert.Equal(t, 19, hour)
	assert.Equal(t, 5, minute)
}
