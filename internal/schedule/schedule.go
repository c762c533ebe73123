package schedule

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/jmylchreest/winshade/internal/config"
	"github.com/jmylchreest/winshade/internal/theme"
)

// JobName returns the task scheduler name for a schedule entry.
func JobName(entryName string) string {
	return JobPrefix + strings.ReplaceAll(entryName, " ", "-")
}

// SelfArgs builds the winshade arguments a scheduled job runs: a `set`
// invocation reconstructing the entry's mode, accent, and wallpaper, falling
// back to the per-mode defaults where the entry doesn't choose its own.
func SelfArgs(e config.ScheduleEntry, d config.ModeDefaults) []string {
	args := []string{"set", "--mode", strings.ToLower(e.Mode)}

	accent := e.Accent
	if accent == "" {
		accent = d.Accent
	}
	if accent != "" {
		args = append(args, "--accent", accent)
	}

	wallpaper := e.Wallpaper
	if wallpaper == "" {
		wallpaper = d.Wallpaper
	}
	if wallpaper != "" {
		args = append(args, "--wallpaper", wallpaper)
	}

	return args
}

// Install registers one daily job per enabled schedule entry. Disabled
// entries are skipped silently; invalid entries are reported and skipped.
// Returns the number of jobs created.
func Install(ctx context.Context, reg Registrar, cfg *config.Config, exePath string, logger *slog.Logger) (int, error) {
	if logger == nil {
		logger = slog.Default()
	}

	created := 0
	for _, e := range cfg.Schedule {
		if !e.Enabled {
			continue
		}
		if err := e.Validate(); err != nil {
			logger.Warn("skipping invalid schedule entry", "error", err)
			continue
		}

		mode, _ := theme.ParseMode(e.Mode)
		command := append([]string{exePath}, SelfArgs(e, cfg.DefaultsFor(mode))...)

		if err := reg.CreateDailyJob(ctx, JobName(e.Name), e.Time, command); err != nil {
			return created, err
		}
		created++
	}

	return created, nil
}

// NextChange returns the enabled entry that fires next after now, with its
// firing time. ok is false when no enabled valid entries exist.
func NextChange(entries []config.ScheduleEntry, now time.Time) (entry config.ScheduleEntry, at time.Time, ok bool) {
	for _, e := range entries {
		if !e.Enabled || e.Validate() != nil {
			continue
		}

		hour, minute := e.TimeOfDay()
		next := time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, now.Location())
		if !next.After(now) {
			next = next.Add(24 * time.Hour)
		}

		if !ok || next.Before(at) {
			entry, at, ok = e, next, true
		}
	}
	return entry, at, ok
}
