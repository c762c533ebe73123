package theme

import (
	"fmt"
	"strings"
)

// Accent is a named highlight color and its registry value.
// The value uses the 0xAABBGGRR layout AccentColorMenu expects.
type Accent struct {
	Name  string
	Value uint32
}

// DefaultAccentName is the accent applied when no explicit color is chosen.
const DefaultAccentName = "default"

// accents is the fixed accent palette. The values are the stock Windows
// accent colors; "default" is the standard Windows blue (#0078D7).
var accents = []Accent{
	{Name: DefaultAccentName, Value: 0xFFD77800},
	{Name: "red", Value: 0xFF2311E8},
	{Name: "orange", Value: 0xFF0C63F7},
	{Name: "yellow", Value: 0xFF00B9FF},
	{Name: "green", Value: 0xFF107C10},
	{Name: "cyan", Value: 0xFFBC9900},
	{Name: "blue", Value: 0xFFD77800},
	{Name: "purple", Value: 0xFFE46C88},
	{Name: "pink", Value: 0xFF8C00E3},
}

// Accents returns the palette in declaration order.
func Accents() []Accent {
	out := make([]Accent, len(accents))
	copy(out, accents)
	return out
}

// AccentNames returns the valid accent names in declaration order.
func AccentNames() []string {
	names := make([]string, len(accents))
	for i, a := range accents {
		names[i] = a.Name
	}
	return names
}

// LookupAccent resolves a name to an accent, case-insensitively.
// Unknown names are an error naming the valid set; scheduled invocations run
// unattended, so a typo must fail loudly rather than silently recolor to the
// default.
func LookupAccent(name string) (Accent, error) {
	needle := strings.ToLower(strings.TrimSpace(name))
	for _, a := range accents {
		if a.Name == needle {
			return a, nil
		}
	}
	return Accent{}, fmt.Errorf("unknown accent color %q (valid: %s)",
		name, strings.Join(AccentNames(), ", "))
}

// AccentByValue resolves a registry value back to a named accent.
func AccentByValue(value uint32) (Accent, bool) {
	for _, a := range accents {
		if a.Value == value {
			return a, true
		}
	}
	return Accent{}, false
}

// Hex returns the accent as a #RRGGBB string for display.
func (a Accent) Hex() string {
	r := a.Value & 0xFF
	g := (a.Value >> 8) & 0xFF
	b := (a.Value >> 16) & 0xFF
	return fmt.Sprintf("#%02X%02X%02X", r, g, b)
}
