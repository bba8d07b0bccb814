// Package mock provides an in-memory Medium for tests.
package mock

import (
	"encoding/json"
	"sync"
)

// Medium keeps values in a map. Values pass through a JSON round-trip on
// both ends so callers never alias stored state.
type Medium struct {
	values map[string][]byte
	mutex  sync.RWMutex
}

func NewMedium() *Medium {
	return &Medium{values: make(map[string][]byte)}
}

func (m *Medium) Read(key string, v any) (bool, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	data, exists := m.values[key]
	if !exists {
		return false, nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, err
	}
	return true, nil
}

func (m *Medium) Write(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}

	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.values[key] = data
	return nil
}

func (m *Medium) Delete(key string) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	delete(m.values, key)
	return nil
}

func (m *Medium) Close() error { return nil }

func (m *Medium) Clear() {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.values = make(map[string][]byte)
}
