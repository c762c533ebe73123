package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/winshade/internal/prefstore"
	"github.com/jmylchreest/winshade/internal/schedule"
)

var (
	labelStyle = lipgloss.NewStyle().Bold(true).Width(11)
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the current theme and the next scheduled change",
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	a, err := requireApplier()
	if err != nil {
		return err
	}

	fmt.Printf("%s %s\n", labelStyle.Render("Mode:"), a.CurrentMode())

	if accent, ok := a.CurrentAccent(); ok {
		swatch := lipgloss.NewStyle().Background(lipgloss.Color(accent.Hex())).Render("  ")
		fmt.Printf("%s %s %s %s\n", labelStyle.Render("Accent:"), accent.Name, accent.Hex(), swatch)
	} else {
		fmt.Printf("%s %s\n", labelStyle.Render("Accent:"), dimStyle.Render("custom or unset"))
	}

	wallpaper, err := a.CurrentWallpaper()
	switch {
	case err == nil && wallpaper != "":
		fmt.Printf("%s %s\n", labelStyle.Render("Wallpaper:"), wallpaper)
	case errors.Is(err, prefstore.ErrNotFound) || wallpaper == "":
		fmt.Printf("%s %s\n", labelStyle.Render("Wallpaper:"), dimStyle.Render("unset"))
	default:
		logger.Warn("could not read wallpaper", "error", err)
	}

	if entry, at, ok := schedule.NextChange(cfg.Schedule, time.Now()); ok {
		fmt.Printf("%s %s to %s at %s (%s)\n", labelStyle.Render("Next:"),
			entry.Name, entry.Mode, entry.Time, humanize.Time(at))
	} else {
		fmt.Printf("%s %s\n", labelStyle.Render("Next:"), dimStyle.Render("no enabled schedule entries"))
	}

	return nil
}
