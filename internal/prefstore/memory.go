package prefstore

import (
	"fmt"
	"sync"
)

// Memory is an in-memory Store. It backs tests and the non-Windows stubs.
type Memory struct {
	mu      sync.RWMutex
	dwords  map[string]uint32
	strings map[string]string
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{
		dwords:  make(map[string]uint32),
		strings: make(map[string]string),
	}
}

func valuePath(key, name string) string {
	return key + `\` + name
}

// DWord reads an integer value.
func (m *Memory) DWord(key, name string) (uint32, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	v, ok := m.dwords[valuePath(key, name)]
	if !ok {
		return 0, fmt.Errorf("%s\\%s: %w", key, name, ErrNotFound)
	}
	return v, nil
}

// SetDWord writes an integer value.
func (m *Memory) SetDWord(key, name string, value uint32) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.dwords[valuePath(key, name)] = value
	return nil
}

// String reads a string value.
func (m *Memory) String(key, name string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	v, ok := m.strings[valuePath(key, name)]
	if !ok {
		return "", fmt.Errorf("%s\\%s: %w", key, name, ErrNotFound)
	}
	return v, nil
}

// SetString writes a string value.
func (m *Memory) SetString(key, name, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.strings[valuePath(key, name)] = value
	return nil
}
