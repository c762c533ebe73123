//go:build windows

package shellapi

import (
	"context"
	"fmt"
	"os/exec"
	"unsafe"

	"golang.org/x/sys/windows"
)

// Win32 message and flag constants used by the shell surface.
const (
	wmSettingChange = 0x001A
	wmClose         = 0x0010

	hwndBroadcast = 0xFFFF

	smtoAbortIfHung = 0x0002

	spiSetDeskWallpaper  = 0x0014
	spifUpdateIniFile    = 0x0001
	spifSendWinIniChange = 0x0002

	broadcastTimeoutMS = 5000
)

var (
	user32 = windows.NewLazySystemDLL("user32.dll")

	procSendMessageTimeoutW  = user32.NewProc("SendMessageTimeoutW")
	procPostMessageW         = user32.NewProc("PostMessageW")
	procEnumWindows          = user32.NewProc("EnumWindows")
	procGetClassNameW        = user32.NewProc("GetClassNameW")
	procSystemParametersInfo = user32.NewProc("SystemParametersInfoW")
)

// WindowsShell implements Capability against user32 and the Explorer process.
type WindowsShell struct{}

// New returns the platform shell capability.
func New() (Capability, error) {
	return &WindowsShell{}, nil
}

// NotifySettingChanged broadcasts WM_SETTINGCHANGE to all top-level windows.
// The timeout keeps a hung window from blocking the whole broadcast.
func (s *WindowsShell) NotifySettingChanged(setting string) error {
	lparam, err := windows.UTF16PtrFromString(setting)
	if err != nil {
		return fmt.Errorf("encode setting name: %w", err)
	}

	var result uintptr
	ret, _, _ := procSendMessageTimeoutW.Call(
		hwndBroadcast,
		wmSettingChange,
		0,
		uintptr(unsafe.Pointer(lparam)),
		smtoAbortIfHung,
		broadcastTimeoutMS,
		uintptr(unsafe.Pointer(&result)),
	)
	if ret == 0 {
		return fmt.Errorf("broadcast WM_SETTINGCHANGE(%q) timed out", setting)
	}
	return nil
}

// NotifyWindow posts WM_SETTINGCHANGE to a single window.
func (s *WindowsShell) NotifyWindow(h Handle, setting string) error {
	lparam, err := windows.UTF16PtrFromString(setting)
	if err != nil {
		return fmt.Errorf("encode setting name: %w", err)
	}

	ret, _, callErr := procPostMessageW.Call(
		uintptr(h),
		wmSettingChange,
		0,
		uintptr(unsafe.Pointer(lparam)),
	)
	if ret == 0 {
		return fmt.Errorf("post WM_SETTINGCHANGE to window %#x: %w", uintptr(h), callErr)
	}
	return nil
}

// enumState carries results across the EnumWindows callback boundary.
type enumState struct {
	class   string
	matches []Handle
}

// enumCallback is created once; EnumWindows passes the *enumState through
// its lparam. syscall callbacks are a finite process-wide resource, so this
// must not be created per call.
var enumCallback = windows.NewCallback(func(hwnd uintptr, lparam uintptr) uintptr {
	st := (*enumState)(unsafe.Pointer(lparam))

	var buf [256]uint16
	n, _, _ := procGetClassNameW.Call(hwnd, uintptr(unsafe.Pointer(&buf[0])), uintptr(len(buf)))
	if n > 0 && windows.UTF16ToString(buf[:n]) == st.class {
		st.matches = append(st.matches, Handle(hwnd))
	}
	return 1 // continue enumeration
})

// FindWindows enumerates top-level windows and returns those whose window
// class matches className.
func (s *WindowsShell) FindWindows(className string) ([]Handle, error) {
	st := &enumState{class: className}
	ret, _, callErr := procEnumWindows.Call(enumCallback, uintptr(unsafe.Pointer(st)))
	if ret == 0 && len(st.matches) == 0 {
		return nil, fmt.Errorf("enumerate windows: %w", callErr)
	}
	return st.matches, nil
}

// CloseWindow posts WM_CLOSE to a window.
func (s *WindowsShell) CloseWindow(h Handle) error {
	ret, _, callErr := procPostMessageW.Call(uintptr(h), wmClose, 0, 0)
	if ret == 0 {
		return fmt.Errorf("post WM_CLOSE to window %#x: %w", uintptr(h), callErr)
	}
	return nil
}

// RelaunchShell force-terminates Explorer and starts a fresh instance.
// Explorer normally restarts itself when killed gracefully, but a forced
// kill plus explicit start is the only way to guarantee the new process
// picks up the rewritten preference values.
func (s *WindowsShell) RelaunchShell(ctx context.Context) error {
	kill := exec.CommandContext(ctx, "taskkill", "/f", "/im", "explorer.exe")
	if out, err := kill.CombinedOutput(); err != nil {
		return fmt.Errorf("terminate explorer: %w (%s)", err, string(out))
	}

	start := exec.Command("explorer.exe")
	if err := start.Start(); err != nil {
		return fmt.Errorf("start explorer: %w", err)
	}
	// The new Explorer detaches immediately; don't wait on it.
	return nil
}

// ApplyWallpaper sets the desktop wallpaper via SystemParametersInfo,
// persisting it and broadcasting the change.
func (s *WindowsShell) ApplyWallpaper(path string) error {
	p, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return fmt.Errorf("encode wallpaper path: %w", err)
	}

	ret, _, callErr := procSystemParametersInfo.Call(
		spiSetDeskWallpaper,
		0,
		uintptr(unsafe.Pointer(p)),
		spifUpdateIniFile|spifSendWinIniChange,
	)
	if ret == 0 {
		return fmt.Errorf("apply wallpaper %q: %w", path, callErr)
	}
	return nil
}
