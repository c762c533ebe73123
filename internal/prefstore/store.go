// Package prefstore provides access to the per-user OS preference store.
package prefstore

import "errors"

// Store errors.
var (
	// ErrNotFound is returned when a key or value does not exist.
	ErrNotFound = errors.New("value not found")

	// ErrUnsupported is returned on platforms without a preference store.
	ErrUnsupported = errors.New("preference store not supported on this platform")
)

// Store is a narrow key/value view of the per-user preference store.
// Key paths are relative to the per-user hive root (HKCU on Windows),
// backslash-separated.
type Store interface {
	// DWord reads a 32-bit integer value.
	DWord(key, name string) (uint32, error)

	// SetDWord writes a 32-bit integer value, creating the key if needed.
	SetDWord(key, name string, value uint32) error

	// String reads a string value.
	String(key, name string) (string, error)

	// SetString writes a string value, creating the key if needed.
	SetString(key, name, value string) error
}
