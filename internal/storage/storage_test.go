package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cockroachdb/pebble"
	"github.com/cockroachdb/pebble/vfs"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/roomchat/internal/protocol"
)

func slotBackends(t *testing.T) map[string]Slot {
	t.Helper()
	dir := t.TempDir()

	file, err := NewFileSlot(filepath.Join(dir, "file"))
	require.NoError(t, err)

	peb, err := OpenPebbleSlot("db", &pebble.Options{FS: vfs.NewMem()})
	require.NoError(t, err)

	lite, err := OpenSQLiteSlot(filepath.Join(dir, "lite", "slots.db"))
	require.NoError(t, err)

	slots := map[string]Slot{
		BackendMemory: NewMemorySlot(),
		BackendFile:   file,
		BackendPebble: peb,
		BackendSQLite: lite,
	}
	t.Cleanup(func() {
		for _, s := range slots {
			s.Close()
		}
	})
	return slots
}

func TestSlotRoundTrip(t *testing.T) {
	for name, slot := range slotBackends(t) {
		t.Run(name, func(t *testing.T) {
			_, err := slot.Get("chatMessages")
			require.ErrorIs(t, err, ErrNotFound)

			require.NoError(t, slot.Set("chatMessages", []byte(`[1]`)))
			require.NoError(t, slot.Set("chatMessages", []byte(`[1,2]`)))

			got, err := slot.Get("chatMessages")
			require.NoError(t, err)
			assert.Equal(t, []byte(`[1,2]`), got)

			require.NoError(t, slot.Delete("chatMessages"))
			_, err = slot.Get("chatMessages")
			require.ErrorIs(t, err, ErrNotFound)

			// deleting an absent key is fine
			require.NoError(t, slot.Delete("chatMessages"))
		})
	}
}

func TestFileSlotRejectsPathKeys(t *testing.T) {
	slot, err := NewFileSlot(t.TempDir())
	require.NoError(t, err)

	require.Error(t, slot.Set("../escape", []byte("x")))
	_, err = slot.Get("a/b")
	require.Error(t, err)
}

func TestFileSlotLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	slot, err := NewFileSlot(dir)
	require.NoError(t, err)
	require.NoError(t, slot.Set("k", []byte("v")))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "k.json", entries[0].Name())
}

func TestOpenBackends(t *testing.T) {
	dir := t.TempDir()
	for _, backend := range []string{BackendMemory, BackendFile, BackendSQLite, BackendPebble} {
		slot, err := Open(backend, filepath.Join(dir, backend))
		require.NoError(t, err, backend)
		require.NoError(t, slot.Close())
	}

	_, err := Open("redis", dir)
	require.Error(t, err)
}

func TestRepositoryRoundTrip(t *testing.T) {
	slot := NewMemorySlot()
	repo := NewRepository(slot, "", zerolog.Nop())
	assert.Equal(t, DefaultKey, repo.Key())

	_, err := repo.Load()
	require.ErrorIs(t, err, ErrNotFound)

	log := []protocol.Message{
		{ID: 1, Sender: "a", Message: "hi", Type: protocol.TypeText},
		{ID: 2, Sender: "b", Message: "https://x/y.png", Type: protocol.TypeImage, Timestamp: "10:00"},
	}
	require.NoError(t, repo.Save(log))
	assert.Positive(t, repo.LastSize())

	// a fresh repository over the same slot sees the same log
	again := NewRepository(slot, DefaultKey, zerolog.Nop())
	got, err := again.Load()
	require.NoError(t, err)
	assert.Equal(t, log, got)

	require.NoError(t, again.Clear())
	_, err = again.Load()
	require.ErrorIs(t, err, ErrNotFound)
}

func TestRepositoryCorruptValue(t *testing.T) {
	slot := NewMemorySlot()
	require.NoError(t, slot.Set(DefaultKey, []byte(`{"oops"`)))

	_, err := NewRepository(slot, DefaultKey, zerolog.Nop()).Load()
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
}
