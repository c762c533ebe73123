package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/winshade/internal/schedule"
)

var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Manage recurring daily theme changes",
	Long: `Manage the recurring daily theme changes defined in the config file.

Each enabled [[schedule]] entry becomes a Windows Task Scheduler job that
runs 'winshade set' with the entry's mode, accent, and wallpaper at its
time of day. Jobs are named with the '` + schedule.JobPrefix + `' prefix so removal only
ever touches winshade's own jobs.`,
}

var scheduleInstallCmd = &cobra.Command{
	Use:   "install",
	Short: "Register a daily job for each enabled schedule entry",
	RunE:  runScheduleInstall,
}

var scheduleRemoveCmd = &cobra.Command{
	Use:   "remove",
	Short: "Remove all registered winshade jobs",
	RunE:  runScheduleRemove,
}

var scheduleListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show the configured schedule entries",
	RunE:  runScheduleList,
}

func init() {
	rootCmd.AddCommand(scheduleCmd)
	scheduleCmd.AddCommand(scheduleInstallCmd)
	scheduleCmd.AddCommand(scheduleRemoveCmd)
	scheduleCmd.AddCommand(scheduleListCmd)
}

func runScheduleInstall(cmd *cobra.Command, args []string) error {
	// Jobs re-invoke this binary, so not knowing our own path means the
	// requested operation cannot proceed at all.
	exePath, err := os.Executable()
	if err != nil {
		return fmt.Errorf("cannot determine own executable path: %w", err)
	}

	reg := newRegistrar(logger)
	created, err := schedule.Install(cmd.Context(), reg, cfg, exePath, logger)
	if err != nil {
		return err
	}

	fmt.Printf("installed %d scheduled jobs\n", created)
	return nil
}

func runScheduleRemove(cmd *cobra.Command, args []string) error {
	reg := newRegistrar(logger)
	removed, err := reg.RemoveJobs(cmd.Context(), schedule.JobPrefix)
	if err != nil {
		return err
	}

	fmt.Printf("removed %d scheduled jobs\n", removed)
	return nil
}

func runScheduleList(cmd *cobra.Command, args []string) error {
	if len(cfg.Schedule) == 0 {
		fmt.Println("no schedule entries configured")
		return nil
	}

	for _, e := range cfg.Schedule {
		state := "enabled"
		if !e.Enabled {
			state = "disabled"
		}
		if err := e.Validate(); err != nil {
			fmt.Printf("%-12s %s  %-5s -> %-5s  [invalid: %v]\n", e.Name, state, e.Time, e.Mode, err)
			continue
		}
		fmt.Printf("%-12s %s  %-5s -> %-5s\n", e.Name, state, e.Time, e.Mode)
	}
	return nil
}
