package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/winshade/internal/theme"
)

var accentsCmd = &cobra.Command{
	Use:   "accents",
	Short: "List the available accent color names",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, a := range theme.Accents() {
			swatch := lipgloss.NewStyle().Background(lipgloss.Color(a.Hex())).Render("    ")
			fmt.Printf("%s %-8s %s\n", swatch, a.Name, a.Hex())
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(accentsCmd)
}
