//go:build !windows

package shellapi

// New returns the platform shell capability.
// Only Windows has one; other platforms get ErrUnsupported.
func New() (Capability, error) {
	return nil, ErrUnsupported
}
