//go:build windows

package prefstore

import (
	"errors"
	"fmt"

	"golang.org/x/sys/windows/registry"
)

// RegistryStore implements Store on top of the HKCU registry hive.
type RegistryStore struct{}

// New returns the platform preference store.
func New() (Store, error) {
	return &RegistryStore{}, nil
}

// DWord reads a REG_DWORD value.
func (s *RegistryStore) DWord(key, name string) (uint32, error) {
	k, err := registry.OpenKey(registry.CURRENT_USER, key, registry.QUERY_VALUE)
	if err != nil {
		return 0, mapErr(key, name, err)
	}
	defer k.Close()

	v, _, err := k.GetIntegerValue(name)
	if err != nil {
		return 0, mapErr(key, name, err)
	}
	return uint32(v), nil
}

// SetDWord writes a REG_DWORD value, creating the key if needed.
func (s *RegistryStore) SetDWord(key, name string, value uint32) error {
	k, _, err := registry.CreateKey(registry.CURRENT_USER, key, registry.SET_VALUE)
	if err != nil {
		return fmt.Errorf("open %s: %w", key, err)
	}
	defer k.Close()

	if err := k.SetDWordValue(name, value); err != nil {
		return fmt.Errorf("set %s\\%s: %w", key, name, err)
	}
	return nil
}

// String reads a REG_SZ value.
func (s *RegistryStore) String(key, name string) (string, error) {
	k, err := registry.OpenKey(registry.CURRENT_USER, key, registry.QUERY_VALUE)
	if err != nil {
		return "", mapErr(key, name, err)
	}
	defer k.Close()

	v, _, err := k.GetStringValue(name)
	if err != nil {
		return "", mapErr(key, name, err)
	}
	return v, nil
}

// SetString writes a REG_SZ value, creating the key if needed.
func (s *RegistryStore) SetString(key, name, value string) error {
	k, _, err := registry.CreateKey(registry.CURRENT_USER, key, registry.SET_VALUE)
	if err != nil {
		return fmt.Errorf("open %s: %w", key, err)
	}
	defer k.Close()

	if err := k.SetStringValue(name, value); err != nil {
		return fmt.Errorf("set %s\\%s: %w", key, name, err)
	}
	return nil
}

// mapErr normalizes registry errors so callers can test for ErrNotFound.
func mapErr(key, name string, err error) error {
	if errors.Is(err, registry.ErrNotExist) {
		return fmt.Errorf("%s\\%s: %w", key, name, ErrNotFound)
	}
	return fmt.Errorf("%s\\%s: %w", key, name, err)
}
