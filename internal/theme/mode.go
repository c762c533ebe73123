package theme

import (
	"fmt"
	"strings"
)

// Mode is the system-wide light/dark appearance setting.
type Mode int

// Theme modes. Dark is the zero value and the fallback when the preference
// store cannot be read.
const (
	ModeDark Mode = iota
	ModeLight
)

// String returns the lowercase mode name.
func (m Mode) String() string {
	if m == ModeLight {
		return "light"
	}
	return "dark"
}

// Opposite returns the other mode.
func (m Mode) Opposite() Mode {
	if m == ModeLight {
		return ModeDark
	}
	return ModeLight
}

// lightValue returns the registry representation: 1 for light, 0 for dark.
func (m Mode) lightValue() uint32 {
	if m == ModeLight {
		return 1
	}
	return 0
}

// modeFromLightValue converts the registry representation back to a Mode.
func modeFromLightValue(v uint32) Mode {
	if v == 0 {
		return ModeDark
	}
	return ModeLight
}

// ParseMode parses "light" or "dark", case-insensitively.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "light":
		return ModeLight, nil
	case "dark":
		return ModeDark, nil
	default:
		return ModeDark, fmt.Errorf("unknown mode %q (valid: light, dark, toggle)", s)
	}
}
