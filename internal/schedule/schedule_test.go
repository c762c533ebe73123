package schedule

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmylchreest/winshade/internal/config"
)

// fakeRegistrar records job operations.
type fakeRegistrar struct {
	created map[string][]string // name -> command
	times   map[string]string   // name -> time of day
}

func newFakeRegistrar() *fakeRegistrar {
	return &fakeRegistrar{
		created: make(map[string][]string),
		times:   make(map[string]string),
	}
}

func (f *fakeRegistrar) CreateDailyJob(ctx context.Context, name, timeOfDay string, command []string) error {
	f.created[name] = command
	f.times[name] = timeOfDay
	return nil
}

func (f *fakeRegistrar) RemoveJobs(ctx context.Context, prefix string) (int, error) {
	n := len(f.created)
	f.created = make(map[string][]string)
	return n, nil
}

func (f *fakeRegistrar) ListJobs(ctx context.Context, prefix string) ([]string, error) {
	var names []string
	for name := range f.created {
		names = append(names, name)
	}
	return names, nil
}

func TestJobName(t *testing.T) {
	assert.Equal(t, "winshade-day", JobName("day"))
	assert.Equal(t, "winshade-late-night", JobName("late night"))
}

func TestSelfArgs_EntryOverridesDefaults(t *testing.T) {
	e := config.ScheduleEntry{Name: "sunset", Time: "19:30", Mode: "dark", Accent: "red"}
	d := config.ModeDefaults{Accent: "purple", Wallpaper: `C:\walls\night.jpg`}

	args := SelfArgs(e, d)
	assert.Equal(t, []string{
		"set", "--mode", "dark",
		"--accent", "red",
		"--wallpaper", `C:\walls\night.jpg`,
	}, args)
}

func TestSelfArgs_FallsBackToModeDefaults(t *testing.T) {
	e := config.ScheduleEntry{Name: "sunrise", Time: "06:45", Mode: "light"}
	d := config.ModeDefaults{Accent: "yellow"}

	args := SelfArgs(e, d)
	assert.Equal(t, []string{"set", "--mode", "light", "--accent", "yellow"}, args)
}

func TestInstall_OnlyEnabledEntries(t *testing.T) {
	cfg := &config.Config{
		Light: config.ModeDefaults{Accent: "default"},
		Dark:  config.ModeDefaults{Accent: "purple"},
		Schedule: []config.ScheduleEntry{
			{Name: "day", Time: "08:00", Mode: "light", Enabled: true},
			{Name: "night", Time: "20:00", Mode: "dark", Enabled: true},
			{Name: "lunch", Time: "12:00", Mode: "dark", Enabled: false},
		},
	}

	reg := newFakeRegistrar()
	created, err := Install(context.Background(), reg, cfg, `C:\bin\winshade.exe`, nil)
	require.NoError(t, err)

	assert.Equal(t, 2, created)
	require.Len(t, reg.created, 2)
	assert.NotContains(t, reg.created, "winshade-lunch")

	assert.Equal(t, []string{
		`C:\bin\winshade.exe`, "set", "--mode", "dark", "--accent", "purple",
	}, reg.created["winshade-night"])
	assert.Equal(t, "20:00", reg.times["winshade-night"])
}

func TestInstall_SkipsInvalidEntries(t *testing.T) {
	cfg := &config.Config{
		Schedule: []config.ScheduleEntry{
			{Name: "broken", Time: "not-a-time", Mode: "dark", Enabled: true},
			{Name: "ok", Time: "21:00", Mode: "dark", Enabled: true},
		},
	}

	reg := newFakeRegistrar()
	created, err := Install(context.Background(), reg, cfg, `C:\bin\winshade.exe`, nil)
	require.NoError(t, err)

	assert.Equal(t, 1, created)
	assert.Contains(t, reg.created, "winshade-ok")
}

func TestNextChange(t *testing.T) {
	entries := []config.ScheduleEntry{
		{Name: "day", Time: "08:00", Mode: "light", Enabled: true},
		{Name: "night", Time: "20:00", Mode: "dark", Enabled: true},
	}

	now := time.Date(2024, 3, 14, 12, 0, 0, 0, time.UTC)
	entry, at, ok := NextChange(entries, now)
	require.True(t, ok)
	assert.Equal(t, "night", entry.Name)
	assert.Equal(t, time.Date(2024, 3, 14, 20, 0, 0, 0, time.UTC), at)

	// Past the last entry of the day, the next change is tomorrow morning.
	now = time.Date(2024, 3, 14, 22, 0, 0, 0, time.UTC)
	entry, at, ok = NextChange(entries, now)
	require.True(t, ok)
	assert.Equal(t, "day", entry.Name)
	assert.Equal(t, time.Date(2024, 3, 15, 8, 0, 0, 0, time.UTC), at)
}

func TestNextChange_SkipsDisabledAndInvalid(t *testing.T) {
	entries := []config.ScheduleEntry{
		{Name: "off", Time: "13:00", Mode: "dark", Enabled: false},
		{Name: "broken", Time: "??", Mode: "dark", Enabled: true},
	}

	_, _, ok := NextChange(entries, time.Date(2024, 3, 14, 12, 0, 0, 0, time.UTC))
	assert.False(t, ok)
}
