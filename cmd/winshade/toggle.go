package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/winshade/internal/theme"
)

var toggleOpts struct {
	restartShell bool
}

var toggleCmd = &cobra.Command{
	Use:   "toggle",
	Short: "Flip between light and dark mode",
	Long:  `Flip the current theme mode. Shorthand for 'winshade set --mode toggle'.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := requireApplier()
		if err != nil {
			return err
		}

		req := theme.Request{Toggle: true, RestartShell: toggleOpts.restartShell}
		if err := a.Apply(cmd.Context(), req); err != nil {
			return err
		}

		fmt.Printf("theme: %s\n", a.CurrentMode())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(toggleCmd)

	toggleCmd.Flags().BoolVar(&toggleOpts.restartShell, "restart-shell", false,
		"Restart the desktop shell for a guaranteed full refresh (visible flicker)")
}
