package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/winshade/internal/theme"
)

var setOpts struct {
	mode         string
	accent       string
	wallpaper    string
	restartShell bool
}

var setCmd = &cobra.Command{
	Use:   "set",
	Short: "Apply theme mode, accent color, and/or wallpaper",
	Long: `Apply any combination of theme mode, accent color, and wallpaper.

Each requested change is attempted independently: one failing (for example a
missing wallpaper file) does not stop the others. The shell is notified when
at least one change succeeded.

Examples:
  # Switch to dark mode
  winshade set --mode dark

  # Flip the current mode
  winshade set --mode toggle

  # Dark mode with a purple accent
  winshade set --mode dark --accent purple

  # Change only the wallpaper
  winshade set --wallpaper C:\Users\me\Pictures\night.jpg

  # Force a full shell restart for a guaranteed repaint
  winshade set --mode light --restart-shell`,
	RunE: runSet,
}

func init() {
	rootCmd.AddCommand(setCmd)

	setCmd.Flags().StringVar(&setOpts.mode, "mode", "",
		"Theme mode: light, dark, or toggle")
	setCmd.Flags().StringVar(&setOpts.accent, "accent", "",
		"Accent color name (see 'winshade accents')")
	setCmd.Flags().StringVar(&setOpts.wallpaper, "wallpaper", "",
		"Path to a wallpaper image")
	setCmd.Flags().BoolVar(&setOpts.restartShell, "restart-shell", false,
		"Restart the desktop shell for a guaranteed full refresh (visible flicker)")
}

func runSet(cmd *cobra.Command, args []string) error {
	a, err := requireApplier()
	if err != nil {
		return err
	}

	req := theme.Request{
		Accent:       setOpts.accent,
		Wallpaper:    setOpts.wallpaper,
		RestartShell: setOpts.restartShell,
	}

	if setOpts.mode != "" {
		if strings.EqualFold(setOpts.mode, "toggle") {
			req.Toggle = true
		} else {
			m, err := theme.ParseMode(setOpts.mode)
			if err != nil {
				return err
			}
			req.Mode = &m
		}
	}

	if req.Empty() {
		return fmt.Errorf("nothing to apply: give at least one of --mode, --accent, --wallpaper")
	}

	if err := a.Apply(cmd.Context(), req); err != nil {
		return err
	}

	fmt.Printf("theme: %s\n", a.CurrentMode())
	return nil
}
