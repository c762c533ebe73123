// Package theme applies light/dark mode, accent color, and wallpaper changes
// to the per-user preference store and makes them visible to the running
// desktop shell.
package theme

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/jmylchreest/winshade/internal/prefstore"
	"github.com/jmylchreest/winshade/internal/shellapi"
)

// Registry locations the applier writes. All keys are HKCU-relative.
const (
	PersonalizeKey  = `Software\Microsoft\Windows\CurrentVersion\Themes\Personalize`
	AppsLightName   = "AppsUseLightTheme"
	SystemLightName = "SystemUsesLightTheme"

	AccentKey  = `Software\Microsoft\Windows\CurrentVersion\Explorer\Accent`
	AccentName = "AccentColorMenu"

	DesktopKey    = `Control Panel\Desktop`
	WallpaperName = "WallPaper"
)

// Window classes the notify step targets.
const (
	taskbarClass     = "Shell_TrayWnd"
	desktopClass     = "Progman"
	fileBrowserClass = "CabinetWClass"
)

// settingChanges is the fixed broadcast sequence for the lightweight refresh.
// ImmersiveColorSet covers app/system chrome; WindowsThemeElement nudges the
// taskbar and start surfaces.
var settingChanges = []string{"ImmersiveColorSet", "WindowsThemeElement"}

// DefaultSettleDelay is the pause on either side of a shell relaunch.
// There is no ready signal to wait on; Explorer needs a moment to release
// and reclaim the desktop.
const DefaultSettleDelay = 3 * time.Second

// Request describes one invocation's desired changes. Zero fields mean
// "leave unchanged".
type Request struct {
	Mode         *Mode  // explicit target mode
	Toggle       bool   // flip the current mode (wins over Mode)
	Accent       string // accent color name
	Wallpaper    string // path to wallpaper image
	RestartShell bool   // opt into the heavyweight refresh
}

// Empty reports whether the request asks for no changes at all.
func (r Request) Empty() bool {
	return r.Mode == nil && !r.Toggle && r.Accent == "" && r.Wallpaper == ""
}

// Applier transitions the visible theme state to a requested target.
// It is stateless between invocations; all durable state lives in the
// preference store.
type Applier struct {
	store  prefstore.Store
	shell  shellapi.Capability
	logger *slog.Logger

	// SettleDelay is the wait before and after a shell relaunch.
	// Tests set it to zero.
	SettleDelay time.Duration
}

// NewApplier creates an Applier. A nil logger uses slog.Default.
func NewApplier(store prefstore.Store, shell shellapi.Capability, logger *slog.Logger) *Applier {
	if logger == nil {
		logger = slog.Default()
	}
	return &Applier{
		store:       store,
		shell:       shell,
		logger:      logger,
		SettleDelay: DefaultSettleDelay,
	}
}

// CurrentMode reads the active mode from the preference store.
// An unreadable store is reported as a warning and falls back to dark;
// the read never aborts the invocation.
func (a *Applier) CurrentMode() Mode {
	v, err := a.store.DWord(PersonalizeKey, AppsLightName)
	if err != nil {
		a.logger.Warn("could not read current theme mode, assuming dark", "error", err)
		return ModeDark
	}
	return modeFromLightValue(v)
}

// CurrentAccent reads the active accent from the preference store.
// The bool is false when no accent is set or the value is not in the palette.
func (a *Applier) CurrentAccent() (Accent, bool) {
	v, err := a.store.DWord(AccentKey, AccentName)
	if err != nil {
		return Accent{}, false
	}
	return AccentByValue(v)
}

// CurrentWallpaper reads the active wallpaper path from the preference store.
func (a *Applier) CurrentWallpaper() (string, error) {
	return a.store.String(DesktopKey, WallpaperName)
}

// SetMode writes both the apps and system light/dark flags so app chrome and
// system chrome stay consistent.
func (a *Applier) SetMode(m Mode) error {
	if err := a.store.SetDWord(PersonalizeKey, AppsLightName, m.lightValue()); err != nil {
		return fmt.Errorf("set apps theme: %w", err)
	}
	if err := a.store.SetDWord(PersonalizeKey, SystemLightName, m.lightValue()); err != nil {
		return fmt.Errorf("set system theme: %w", err)
	}
	a.logger.Debug("theme mode written", "mode", m.String())
	return nil
}

// SetAccent resolves the named color and writes its value.
func (a *Applier) SetAccent(name string) error {
	accent, err := LookupAccent(name)
	if err != nil {
		return err
	}
	if err := a.store.SetDWord(AccentKey, AccentName, accent.Value); err != nil {
		return fmt.Errorf("set accent color: %w", err)
	}
	a.logger.Debug("accent color written", "accent", accent.Name, "value", accent.Hex())
	return nil
}

// SetWallpaper validates the image path, records it in the preference store,
// and asks the shell to repaint the desktop. An empty path is a no-op.
func (a *Applier) SetWallpaper(path string) error {
	if path == "" {
		return nil
	}
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("wallpaper image: %w", err)
	}
	if err := a.store.SetString(DesktopKey, WallpaperName, path); err != nil {
		return fmt.Errorf("set wallpaper: %w", err)
	}
	if err := a.shell.ApplyWallpaper(path); err != nil {
		// Persisted state is correct; only the live repaint is degraded.
		a.logger.Warn("wallpaper written but desktop repaint failed", "error", err)
	}
	a.logger.Debug("wallpaper written", "path", path)
	return nil
}

// Apply runs one invocation's state machine: resolve the target, attempt each
// requested write independently, then notify the shell if anything succeeded.
// Write failures are collected and returned joined; each one is also reported
// as it happens so the remaining writes still run.
func (a *Applier) Apply(ctx context.Context, req Request) error {
	if req.Empty() {
		return nil
	}

	target := req.Mode
	if req.Toggle {
		m := a.CurrentMode().Opposite()
		target = &m
	}

	var errs []error
	changed := false

	if target != nil {
		if err := a.SetMode(*target); err != nil {
			a.logger.Error("failed to set theme mode", "mode", target.String(), "error", err)
			errs = append(errs, err)
		} else {
			changed = true
		}
	}

	if req.Accent != "" {
		if err := a.SetAccent(req.Accent); err != nil {
			a.logger.Error("failed to set accent color", "accent", req.Accent, "error", err)
			errs = append(errs, err)
		} else {
			changed = true
		}
	}

	if req.Wallpaper != "" {
		if err := a.SetWallpaper(req.Wallpaper); err != nil {
			a.logger.Error("failed to set wallpaper", "path", req.Wallpaper, "error", err)
			errs = append(errs, err)
		} else {
			changed = true
		}
	}

	if changed {
		if err := a.Notify(ctx, req.RestartShell); err != nil {
			// Preference state is already correct; surface guidance instead
			// of failing the invocation.
			a.logger.Warn("visual refresh incomplete; rerun with --restart-shell to force it",
				"error", err)
		}
	}

	return errors.Join(errs...)
}

// Notify makes an already-persisted change visible. The lightweight path
// broadcasts setting-change messages; the heavyweight path relaunches the
// shell. The heavyweight path is only taken when explicitly requested —
// lightweight failures never escalate on their own.
func (a *Applier) Notify(ctx context.Context, heavy bool) error {
	if heavy {
		return a.heavyRefresh(ctx)
	}
	return a.lightRefresh()
}

// lightRefresh broadcasts the fixed setting-change sequence and nudges the
// known shell windows directly. Best-effort: some UI elements may stay stale.
func (a *Applier) lightRefresh() error {
	var errs []error

	for _, setting := range settingChanges {
		if err := a.shell.NotifySettingChanged(setting); err != nil {
			errs = append(errs, err)
		}
	}

	for _, class := range []string{taskbarClass, desktopClass} {
		handles, err := a.shell.FindWindows(class)
		if err != nil {
			a.logger.Debug("could not locate shell window", "class", class, "error", err)
			continue
		}
		for _, h := range handles {
			if err := a.shell.NotifyWindow(h, settingChanges[0]); err != nil {
				errs = append(errs, err)
			}
		}
	}

	return errors.Join(errs...)
}

// heavyRefresh relaunches the shell with settle delays on both sides, then
// closes the file-browser windows the relaunch reopens as a side effect.
// This guarantees a full repaint at the cost of a visible flicker.
func (a *Applier) heavyRefresh(ctx context.Context) error {
	a.logger.Info("restarting desktop shell for full refresh")

	a.settle()
	if err := a.shell.RelaunchShell(ctx); err != nil {
		return fmt.Errorf("relaunch shell: %w", err)
	}
	a.settle()

	handles, err := a.shell.FindWindows(fileBrowserClass)
	if err != nil {
		a.logger.Debug("could not enumerate file browser windows", "error", err)
		return nil
	}
	for _, h := range handles {
		if err := a.shell.CloseWindow(h); err != nil {
			a.logger.Debug("failed to close reopened file browser window", "error", err)
		}
	}
	return nil
}

func (a *Applier) settle() {
	if a.SettleDelay > 0 {
		time.Sleep(a.SettleDelay)
	}
}
