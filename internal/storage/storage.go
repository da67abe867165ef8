package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrNotFound is returned by Get when the slot holds no value for the key
var ErrNotFound = errors.New("storage: slot not found")

// Slot is a durable key-value slot scoped to this device.
// Implementations: memory, file, pebble and sqlite.
type Slot interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	Delete(key string) error
	Close() error
}

// Backend names accepted by Open
const (
	BackendMemory = "memory"
	BackendFile   = "file"
	BackendPebble = "pebble"
	BackendSQLite = "sqlite"
)

// Open opens the named backend rooted at dir
func Open(backend, dir string) (Slot, error) {
	if backend == BackendMemory {
		return NewMemorySlot(), nil
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	switch backend {
	case BackendFile, "":
		return NewFileSlot(dir)
	case BackendPebble:
		return OpenPebbleSlot(filepath.Join(dir, "pebble"), nil)
	case BackendSQLite:
		return OpenSQLiteSlot(filepath.Join(dir, "roomchat.db"))
	default:
		return nil, fmt.Errorf("unknown storage backend %q", backend)
	}
}
