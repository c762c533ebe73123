//go:build !windows

package prefstore

// New returns the platform preference store.
// Only Windows has one; other platforms get ErrUnsupported.
func New() (Store, error) {
	return nil, ErrUnsupported
}
