// Package schedule registers recurring daily theme changes with the OS task
// scheduler. Jobs re-invoke winshade non-interactively with fixed arguments;
// the applied invocation is unaware it runs under a schedule.
package schedule

import (
	"context"
	"encoding/csv"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
)

// JobPrefix namespaces every task winshade creates so removal can match them
// without touching anything else in the task scheduler.
const JobPrefix = "winshade-"

// Registrar creates and removes OS-level recurring jobs.
type Registrar interface {
	// CreateDailyJob registers a job that runs command every day at
	// timeOfDay (HH:MM). An existing job with the same name is replaced.
	CreateDailyJob(ctx context.Context, name, timeOfDay string, command []string) error

	// RemoveJobs deletes every job whose name starts with prefix and
	// returns how many were removed. No matches is not an error.
	RemoveJobs(ctx context.Context, prefix string) (int, error)

	// ListJobs returns the names of jobs whose name starts with prefix.
	ListJobs(ctx context.Context, prefix string) ([]string, error)
}

// runner executes an external command and returns its combined output.
// Swapped out in tests.
type runner func(ctx context.Context, name string, args ...string) ([]byte, error)

func execRunner(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).CombinedOutput()
}

// Schtasks implements Registrar by shelling out to schtasks.exe.
type Schtasks struct {
	run    runner
	logger *slog.Logger
}

// NewSchtasks creates a schtasks-backed Registrar.
func NewSchtasks(logger *slog.Logger) *Schtasks {
	if logger == nil {
		logger = slog.Default()
	}
	return &Schtasks{run: execRunner, logger: logger}
}

// CreateDailyJob registers a daily task. /F replaces an existing task with
// the same name so reinstalling a schedule is idempotent.
func (s *Schtasks) CreateDailyJob(ctx context.Context, name, timeOfDay string, command []string) error {
	if len(command) == 0 {
		return fmt.Errorf("job %s: empty command", name)
	}

	out, err := s.run(ctx, "schtasks",
		"/Create", "/F",
		"/SC", "DAILY",
		"/TN", name,
		"/ST", timeOfDay,
		"/TR", quoteCommand(command),
	)
	if err != nil {
		return fmt.Errorf("create job %s: %w (%s)", name, err, strings.TrimSpace(string(out)))
	}

	s.logger.Debug("scheduled job created", "name", name, "time", timeOfDay)
	return nil
}

// RemoveJobs deletes all registered jobs matching prefix.
func (s *Schtasks) RemoveJobs(ctx context.Context, prefix string) (int, error) {
	names, err := s.ListJobs(ctx, prefix)
	if err != nil {
		return 0, err
	}

	removed := 0
	for _, name := range names {
		out, err := s.run(ctx, "schtasks", "/Delete", "/F", "/TN", name)
		if err != nil {
			return removed, fmt.Errorf("delete job %s: %w (%s)", name, err, strings.TrimSpace(string(out)))
		}
		s.logger.Debug("scheduled job removed", "name", name)
		removed++
	}

	return removed, nil
}

// ListJobs queries the task scheduler and filters by prefix.
func (s *Schtasks) ListJobs(ctx context.Context, prefix string) ([]string, error) {
	out, err := s.run(ctx, "schtasks", "/Query", "/FO", "CSV", "/NH")
	if err != nil {
		return nil, fmt.Errorf("query scheduled jobs: %w (%s)", err, strings.TrimSpace(string(out)))
	}

	return parseTaskNames(string(out), prefix), nil
}

// parseTaskNames extracts task names matching prefix from schtasks CSV
// output. The first CSV field is the task name with a leading folder
// backslash, e.g. `\winshade-day`.
func parseTaskNames(output, prefix string) []string {
	var names []string

	r := csv.NewReader(strings.NewReader(output))
	r.FieldsPerRecord = -1
	for {
		record, err := r.Read()
		if err != nil {
			break
		}
		if len(record) == 0 {
			continue
		}
		name := strings.TrimPrefix(record[0], `\`)
		if strings.HasPrefix(name, prefix) {
			names = append(names, name)
		}
	}

	return names
}

// quoteCommand renders a command line for /TR, quoting the executable and
// any argument containing spaces.
func quoteCommand(command []string) string {
	parts := make([]string, len(command))
	for i, c := range command {
		if i == 0 || strings.ContainsRune(c, ' ') {
			parts[i] = `"` + c + `"`
		} else {
			parts[i] = c
		}
	}
	return strings.Join(parts, " ")
}
