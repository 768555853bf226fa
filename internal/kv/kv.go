// Package kv provides the durable key-value store the planner document is
// persisted in. Every write replaces the whole value for a key.
package kv

import (
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
)

// ErrNotFound is returned by Get when the key has never been written.
var ErrNotFound = errors.New("kv: key not found")

// Store is a durable string key-value store.
type Store interface {
	Get(key string) (string, error)
	Put(key, value string) error
	Close() error
}

const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// SQLiteFileName is the database file created in the data dir by the sqlite backend.
const SQLiteFileName = "lifeplanner.sqlite"

var validKey = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]*$`)

func checkKey(key string) error {
	if !validKey.MatchString(key) {
		return fmt.Errorf("kv: invalid key %q", key)
	}
	return nil
}

// Open opens the store for backend rooted at dir.
func Open(backend, dir string) (Store, error) {
	switch backend {
	case BackendFile, "":
		return NewFileStore(dir)
	case BackendSQLite:
		return OpenSQLite(filepath.Join(dir, SQLiteFileName))
	case BackendMemory:
		return NewMemoryStore(), nil
	}
	return nil, fmt.Errorf("kv: unknown backend %q", backend)
}
