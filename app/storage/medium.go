// Package storage provides the durable key-value medium the stores persist
// into. Collections are written whole under fixed keys; there is no
// per-record update.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
)

const (
	// Keys of the persisted entries.
	UsersKey       = "users"
	CurrentUserKey = "currentUser"
	BlogsKey       = "blogs"
)

var (
	// ErrMediumFailure marks failures of the underlying medium itself
	// (corruption, closed store, disk errors). Absence of a key is never a
	// medium failure.
	ErrMediumFailure = errors.New("storage medium failure")
)

// Medium is the get/set abstraction over the durable key-value medium.
// Values round-trip through JSON.
type Medium interface {
	// Read unmarshals the value stored under key into v. It returns false
	// with a nil error when the key was never written.
	Read(key string, v any) (bool, error)

	// Write replaces the entire value stored under key.
	Write(key string, v any) error

	// Delete removes the value stored under key, if any.
	Delete(key string) error

	Close() error
}

func mediumError(op, key string, err error) error {
	return fmt.Errorf("%w: %s %q: %v", ErrMediumFailure, op, key, err)
}

// marshalValue marshals a value to JSON
func marshalValue(v any) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal value: %v", err)
	}
	return data, nil
}

// unmarshalValue unmarshals JSON data into a value
func unmarshalValue(data []byte, v any) error {
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to unmarshal value: %v", err)
	}
	return nil
}
