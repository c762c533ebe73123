// Package main provides the CLI entrypoint for winshade.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/winshade/internal/config"
	"github.com/jmylchreest/winshade/internal/prefstore"
	"github.com/jmylchreest/winshade/internal/schedule"
	"github.com/jmylchreest/winshade/internal/shellapi"
	"github.com/jmylchreest/winshade/internal/theme"
)

// Build-time variables (set via ldflags)
var (
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
)

// Global configuration and state
var (
	cfg        *config.Config
	globalOpts struct {
		verbose    bool
		configPath string
	}
	logger *slog.Logger

	// applier is the shared theme applier, nil when the platform has no
	// preference store or shell API.
	applier     *theme.Applier
	platformErr error
)

// Platform constructors, swapped for fakes in tests.
var (
	newStore     = prefstore.New
	newShell     = shellapi.New
	newRegistrar = func(l *slog.Logger) schedule.Registrar { return schedule.NewSchtasks(l) }
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "winshade",
	Short: "Light/dark theme, accent, and wallpaper switcher for Windows",
	Long: `winshade switches the Windows light/dark theme mode, accent color, and
desktop wallpaper, immediately or on a recurring daily schedule.

Changes are written to the per-user registry and the running shell is
notified so they become visible without logging out. Daily schedules are
registered with the Windows Task Scheduler and re-invoke winshade with
fixed arguments.

Running winshade without a subcommand shows this help and the current theme.`,
	Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, buildTime),
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		setupLogger()

		// Load configuration; problems fall back to the built-in defaults
		// with a warning, never an abort.
		var err error
		cfg, err = config.LoadConfig(globalOpts.configPath)
		if err != nil {
			logger.Warn("using built-in default configuration", "error", err)
		}

		store, storeErr := newStore()
		shell, shellErr := newShell()
		switch {
		case storeErr != nil:
			platformErr = storeErr
		case shellErr != nil:
			platformErr = shellErr
		default:
			applier = theme.NewApplier(store, shell, logger)
		}
		return nil
	},
	// Bare invocation: usage plus the current theme, no writes.
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := cmd.Help(); err != nil {
			return err
		}
		if applier != nil {
			fmt.Printf("\nCurrent theme: %s\n", applier.CurrentMode())
		}
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&globalOpts.verbose, "verbose", "v", false,
		"Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&globalOpts.configPath, "config", "",
		"Path to config file (default: %APPDATA%\\winshade\\config.toml)")
}

// setupLogger configures the global slog logger.
func setupLogger() {
	level := slog.LevelWarn
	if globalOpts.verbose {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	// Log to stderr so stdout is clean for output
	handler := slog.NewTextHandler(os.Stderr, opts)
	logger = slog.New(handler)
	slog.SetDefault(logger)
}

// requireApplier returns the shared applier or a platform error.
func requireApplier() (*theme.Applier, error) {
	if applier == nil {
		return nil, fmt.Errorf("cannot change theme settings: %w", platformErr)
	}
	return applier, nil
}
