package room

import (
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/roomchat/internal/protocol"
	"github.com/yourusername/roomchat/internal/storage"
)

// fakeRepo is an in-memory LogRepository with injectable failures
type fakeRepo struct {
	stored  []protocol.Message
	loadErr error
	saveErr error
	saves   int
}

func (f *fakeRepo) Load() ([]protocol.Message, error) {
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	if f.stored == nil {
		return nil, storage.ErrNotFound
	}
	return append([]protocol.Message(nil), f.stored...), nil
}

func (f *fakeRepo) Save(messages []protocol.Message) error {
	f.saves++
	if f.saveErr != nil {
		return f.saveErr
	}
	f.stored = append([]protocol.Message(nil), messages...)
	return nil
}

func testRoom() protocol.Room {
	return protocol.Room{
		Name: "Support",
		Participants: []protocol.Participant{
			{ID: "a", Name: "Agent Smith", Role: protocol.RoleAgent},
			{ID: "b", Name: "Bea", Role: protocol.RoleLocalUser},
		},
	}
}

func testSeed() []protocol.Message {
	return []protocol.Message{
		{ID: 1, Sender: "a", Message: "hello", Type: protocol.TypeText},
		{ID: 2, Sender: "b", Message: "hi", Type: protocol.TypeText},
	}
}

func nopLogger() zerolog.Logger { return zerolog.Nop() }

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestLoadInitialUsesSeedWhenSlotEmpty(t *testing.T) {
	s := New(testRoom(), testSeed(), &fakeRepo{})
	assert.Equal(t, testSeed(), s.LoadInitial())
}

func TestLoadInitialPrefersPersistedLog(t *testing.T) {
	stored := []protocol.Message{{ID: 99, Sender: "b", Message: "saved", Type: protocol.TypeText}}
	s := New(testRoom(), testSeed(), &fakeRepo{stored: stored})
	assert.Equal(t, stored, s.LoadInitial())
}

func TestLoadInitialFallsBackOnCorruptStorage(t *testing.T) {
	slot := storage.NewMemorySlot()
	require.NoError(t, slot.Set(storage.DefaultKey, []byte(`[{"id":"not-a-number"`)))
	repo := storage.NewRepository(slot, storage.DefaultKey, nopLogger())

	s := New(testRoom(), testSeed(), repo)
	assert.Equal(t, testSeed(), s.LoadInitial())
}

func TestLoadInitialDoesNotAliasSeed(t *testing.T) {
	seed := make([]protocol.Message, 2, 8)
	copy(seed, testSeed())
	s := New(testRoom(), seed, &fakeRepo{})
	s.LoadInitial()
	s.Append("new one")
	assert.Zero(t, seed[:3][2])
}

func TestAppendOrderingAndLength(t *testing.T) {
	repo := &fakeRepo{}
	s := New(testRoom(), testSeed(), repo, WithClock(fixedClock(time.Date(2026, 10, 19, 9, 5, 0, 0, time.UTC))))
	initial := len(s.LoadInitial())

	sends := []string{"one", "  two  ", "three"}
	for _, text := range sends {
		_, ok := s.Append(text)
		require.True(t, ok)
	}

	got := s.Messages()
	require.Len(t, got, initial+len(sends))
	assert.Equal(t, "one", got[initial].Message)
	assert.Equal(t, "two", got[initial+1].Message)
	assert.Equal(t, "three", got[initial+2].Message)
	assert.Equal(t, 3, repo.saves)
	assert.Equal(t, got, repo.stored)
}

func TestAppendIDsStrictlyIncreaseUnderFrozenClock(t *testing.T) {
	s := New(testRoom(), nil, &fakeRepo{}, WithClock(fixedClock(time.UnixMilli(5000))))
	s.LoadInitial()

	var prev int64
	for i := 0; i < 5; i++ {
		msg, ok := s.Append("x")
		require.True(t, ok)
		assert.Greater(t, msg.ID, prev)
		prev = msg.ID
	}
	assert.Equal(t, int64(5004), prev)
}

func TestAppendIDsPassSeedIDs(t *testing.T) {
	seed := []protocol.Message{{ID: 1_000_000_000_000_000, Sender: "a", Message: "future", Type: protocol.TypeText}}
	s := New(testRoom(), seed, &fakeRepo{}, WithClock(fixedClock(time.UnixMilli(1))))
	s.LoadInitial()

	msg, ok := s.Append("later")
	require.True(t, ok)
	assert.Equal(t, seed[0].ID+1, msg.ID)
}

func TestAppendBuildsLocalTextMessage(t *testing.T) {
	s := New(testRoom(), nil, &fakeRepo{}, WithClock(fixedClock(time.Date(2026, 1, 2, 7, 3, 0, 0, time.Local))))
	s.LoadInitial()

	msg, ok := s.Append("  hello there ")
	require.True(t, ok)
	assert.Equal(t, "b", msg.Sender)
	assert.Equal(t, "hello there", msg.Message)
	assert.Equal(t, protocol.TypeText, msg.Type)
	assert.Equal(t, "07:03", msg.Timestamp)
}

func TestAppendRejectsBlank(t *testing.T) {
	repo := &fakeRepo{}
	s := New(testRoom(), testSeed(), repo)
	s.LoadInitial()

	for _, text := range []string{"", " ", "\t\n  "} {
		_, ok := s.Append(text)
		assert.False(t, ok)
	}
	assert.Equal(t, 2, s.Len())
	assert.Zero(t, repo.saves)
}

func TestAppendKeepsMessageWhenSaveFails(t *testing.T) {
	repo := &fakeRepo{saveErr: errors.New("quota exceeded")}
	s := New(testRoom(), testSeed(), repo)
	s.LoadInitial()

	_, ok := s.Append("still here")
	require.True(t, ok)
	assert.Equal(t, 3, s.Len())
	assert.Equal(t, 1, repo.saves)
}

func TestFallbackSender(t *testing.T) {
	room := protocol.Room{Participants: []protocol.Participant{{ID: "a", Role: protocol.RoleAgent}}}

	s := New(room, nil, &fakeRepo{})
	assert.Equal(t, DefaultFallbackSender, s.LocalSenderID())

	s = New(room, nil, &fakeRepo{}, WithFallbackSender("me@local"))
	s.LoadInitial()
	msg, _ := s.Append("hey")
	assert.Equal(t, "me@local", msg.Sender)
}

func TestLocalUserClassification(t *testing.T) {
	room := protocol.Room{Participants: []protocol.Participant{
		{ID: "a", Role: 1},
		{ID: "b", Role: 2},
	}}
	s := New(room, nil, &fakeRepo{})

	assert.True(t, s.IsLocalUser("b"))
	assert.False(t, s.IsLocalUser("a"))
	assert.False(t, s.IsLocalUser("c"))

	_, ok := s.ResolveParticipant("c")
	assert.False(t, ok)
	p, ok := s.ResolveParticipant("a")
	require.True(t, ok)
	assert.Equal(t, protocol.RoleAgent, p.Role)
}

func TestPersistenceRoundTrip(t *testing.T) {
	slot := storage.NewMemorySlot()
	clock := fixedClock(time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC))

	first := New(testRoom(), testSeed(), storage.NewRepository(slot, storage.DefaultKey, nopLogger()), WithClock(clock))
	first.LoadInitial()
	first.Append("persist me")
	first.Append("and me")
	want := first.Messages()

	// a fresh session over the same slot
	second := New(testRoom(), testSeed(), storage.NewRepository(slot, storage.DefaultKey, nopLogger()))
	assert.Equal(t, want, second.LoadInitial())
}

func TestParticipantCount(t *testing.T) {
	s := New(testRoom(), nil, &fakeRepo{})
	assert.Equal(t, 2, s.ParticipantCount())
	assert.Equal(t, "Support", s.Room().Name)
}
