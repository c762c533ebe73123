// Package shellapi exposes the narrow slice of desktop shell capability the
// theme applier needs: setting-change broadcasts, window lookup and close,
// shell relaunch, and wallpaper application.
package shellapi

import (
	"context"
	"errors"
)

// ErrUnsupported is returned on platforms without a desktop shell API.
var ErrUnsupported = errors.New("shell API not supported on this platform")

// Handle identifies a top-level window.
type Handle uintptr

// Capability is the OS shell surface used by the theme applier.
// All methods are best-effort from the caller's point of view; the persisted
// preference state is already correct before any of them run.
type Capability interface {
	// NotifySettingChanged broadcasts a "setting changed" message naming the
	// changed setting to every top-level window.
	NotifySettingChanged(setting string) error

	// NotifyWindow sends the same "setting changed" message to one window.
	NotifyWindow(h Handle, setting string) error

	// FindWindows returns all top-level windows of the given window class.
	FindWindows(className string) ([]Handle, error)

	// CloseWindow asks a window to close.
	CloseWindow(h Handle) error

	// RelaunchShell terminates the desktop shell process and starts a new
	// one. The caller is responsible for settle delays around the call.
	RelaunchShell(ctx context.Context) error

	// ApplyWallpaper tells the shell to repaint the desktop with the image
	// at path, persisting the choice.
	ApplyWallpaper(path string) error
}
