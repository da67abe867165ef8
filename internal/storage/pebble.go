package storage

import (
	"errors"
	"fmt"

	"github.com/cockroachdb/pebble"
)

// PebbleSlot keeps slot values in a pebble database
type PebbleSlot struct {
	db *pebble.DB
}

// OpenPebbleSlot opens (or creates) a pebble database at path.
// opts may be nil; tests pass an in-memory vfs.
func OpenPebbleSlot(path string, opts *pebble.Options) (*PebbleSlot, error) {
	if opts == nil {
		opts = &pebble.Options{}
	}
	db, err := pebble.Open(path, opts)
	if err != nil {
		return nil, fmt.Errorf("open pebble %s: %w", path, err)
	}
	return &PebbleSlot{db: db}, nil
}

func (s *PebbleSlot) Get(key string) ([]byte, error) {
	v, closer, err := s.db.Get([]byte(key))
	if errors.Is(err, pebble.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	defer closer.Close()
	// v is only valid until closer is closed
	return append([]byte(nil), v...), nil
}

func (s *PebbleSlot) Set(key string, value []byte) error {
	return s.db.Set([]byte(key), value, pebble.Sync)
}

func (s *PebbleSlot) Delete(key string) error {
	return s.db.Delete([]byte(key), pebble.Sync)
}

func (s *PebbleSlot) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}
