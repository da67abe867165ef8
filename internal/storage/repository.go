package storage

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/yourusername/roomchat/internal/protocol"
)

// DefaultKey is the slot key holding the room log
const DefaultKey = "chatMessages"

// Repository persists the whole message log under one slot key.
// Every Save overwrites the previous value.
type Repository struct {
	slot     Slot
	key      string
	log      zerolog.Logger
	lastSize int
}

// NewRepository binds a slot key to the message log
func NewRepository(slot Slot, key string, log zerolog.Logger) *Repository {
	if key == "" {
		key = DefaultKey
	}
	return &Repository{slot: slot, key: key, log: log}
}

// Key returns the slot key in use
func (r *Repository) Key() string { return r.key }

// Load returns the stored log, ErrNotFound when the slot is empty, or a
// decode error when the stored value is not a message array
func (r *Repository) Load() ([]protocol.Message, error) {
	data, err := r.slot.Get(r.key)
	if err != nil {
		return nil, err
	}
	r.lastSize = len(data)

	messages, err := protocol.DecodeLog(data)
	if err != nil {
		return nil, fmt.Errorf("slot %s: %w", r.key, err)
	}
	r.log.Debug().Str("key", r.key).Int("messages", len(messages)).Int("bytes", len(data)).Msg("log_loaded")
	return messages, nil
}

// Save overwrites the slot with the full log
func (r *Repository) Save(messages []protocol.Message) error {
	data, err := protocol.EncodeLog(messages)
	if err != nil {
		return fmt.Errorf("encode log: %w", err)
	}
	if err := r.slot.Set(r.key, data); err != nil {
		return fmt.Errorf("write slot %s: %w", r.key, err)
	}
	r.lastSize = len(data)
	r.log.Debug().Str("key", r.key).Int("messages", len(messages)).Int("bytes", len(data)).Msg("log_saved")
	return nil
}

// Clear removes the stored log
func (r *Repository) Clear() error {
	r.lastSize = 0
	return r.slot.Delete(r.key)
}

// LastSize is the byte size of the last log read or written
func (r *Repository) LastSize() int { return r.lastSize }
