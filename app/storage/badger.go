package storage

import (
	"fmt"
	"io"
	"os"

	"github.com/dgraph-io/badger/v4"
)

// BadgerMedium implements Medium on top of a BadgerDB directory.
type BadgerMedium struct {
	db       *badger.DB
	path     string
	isTestDB bool
}

// Open opens (or initializes) the medium at the given directory. An empty
// path opens a unique temporary directory that is removed on Close, for
// test isolation.
func Open(path string) (*BadgerMedium, error) {
	isTest := false
	if path == "" {
		tempPath, err := os.MkdirTemp("", "quill_test_db_")
		if err != nil {
			return nil, fmt.Errorf("error creating temp dir: %v", err)
		}
		path = tempPath
		isTest = true
	}
	opts := badger.DefaultOptions(path).
		WithLogger(nil).
		WithSyncWrites(false).
		WithNumVersionsToKeep(1).
		WithNumGoroutines(1)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("%w: open %q: %v", ErrMediumFailure, path, err)
	}
	if isTest {
		if err := db.DropAll(); err != nil {
			return nil, fmt.Errorf("failed to drop all keys: %v", err)
		}
	}
	return &BadgerMedium{db: db, path: path, isTestDB: isTest}, nil
}

func (m *BadgerMedium) Close() error {
	if err := m.db.Close(); err != nil {
		return err
	}
	if m.isTestDB {
		if err := os.RemoveAll(m.path); err != nil {
			return fmt.Errorf("failed to cleanup test database: %v", err)
		}
	}
	return nil
}

// Read unmarshals the value stored under key into v. A key that was never
// written yields (false, nil), not an error.
func (m *BadgerMedium) Read(key string, v any) (bool, error) {
	found := false
	err := m.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		found = true
		return item.Value(func(val []byte) error {
			return unmarshalValue(val, v)
		})
	})
	if err != nil {
		return false, mediumError("read", key, err)
	}
	return found, nil
}

// Write replaces the entire value stored under key.
func (m *BadgerMedium) Write(key string, v any) error {
	data, err := marshalValue(v)
	if err != nil {
		return mediumError("write", key, err)
	}
	err = m.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), data)
	})
	if err != nil {
		return mediumError("write", key, err)
	}
	return nil
}

// Delete removes the value stored under key. Deleting an absent key is not
// an error.
func (m *BadgerMedium) Delete(key string) error {
	err := m.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(key))
	})
	if err != nil {
		return mediumError("delete", key, err)
	}
	return nil
}

// Clear drops every key in the medium.
func (m *BadgerMedium) Clear() error {
	if err := m.db.DropAll(); err != nil {
		return fmt.Errorf("%w: clear: %v", ErrMediumFailure, err)
	}
	return nil
}

// Backup streams a full backup of the medium to w.
func (m *BadgerMedium) Backup(w io.Writer) error {
	if _, err := m.db.Backup(w, 0); err != nil {
		return fmt.Errorf("%w: backup: %v", ErrMediumFailure, err)
	}
	return nil
}

// Restore loads a backup stream previously produced by Backup.
func (m *BadgerMedium) Restore(r io.Reader) error {
	if err := m.db.Load(r, 4); err != nil {
		return fmt.Errorf("%w: restore: %v", ErrMediumFailure, err)
	}
	return nil
}
