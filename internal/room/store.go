package room

import (
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/yourusername/roomchat/internal/protocol"
)

// DefaultFallbackSender attributes outgoing messages when no roster entry has the local-user role
const DefaultFallbackSender = "customer@mail.com"

// LogRepository persists the full room log
type LogRepository interface {
	Load() ([]protocol.Message, error)
	Save(messages []protocol.Message) error
}

// Option configures a Store
type Option func(*Store)

// WithLogger sets the logger used for storage failures
func WithLogger(log zerolog.Logger) Option {
	return func(s *Store) { s.log = log }
}

// WithClock replaces time.Now, for ids and send timestamps
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithFallbackSender overrides DefaultFallbackSender
func WithFallbackSender(id string) Option {
	return func(s *Store) {
		if id != "" {
			s.fallbackSender = id
		}
	}
}

// Store owns the message log of one room session.
// It is not safe for concurrent use; the UI mutates it from a single goroutine.
type Store struct {
	room           protocol.Room
	seed           []protocol.Message
	repo           LogRepository
	log            zerolog.Logger
	now            func() time.Time
	fallbackSender string

	roster   map[string]protocol.Participant
	messages []protocol.Message
	lastID   int64
}

// New creates a store for room, seeded with the dataset comments
func New(room protocol.Room, seed []protocol.Message, repo LogRepository, opts ...Option) *Store {
	s := &Store{
		room:           room,
		seed:           seed,
		repo:           repo,
		log:            zerolog.Nop(),
		now:            time.Now,
		fallbackSender: DefaultFallbackSender,
		roster:         make(map[string]protocol.Participant, len(room.Participants)),
	}
	for _, o := range opts {
		o(s)
	}
	for _, p := range room.Participants {
		if _, ok := s.roster[p.ID]; !ok {
			s.roster[p.ID] = p
		}
	}
	return s
}

// LoadInitial reads the persisted log, falling back to the seed comments when
// the slot is empty or cannot be decoded
func (s *Store) LoadInitial() []protocol.Message {
	messages, err := s.repo.Load()
	switch {
	case err == nil:
		s.log.Info().Int("messages", len(messages)).Msg("room_log_restored")
	default:
		s.log.Warn().Err(err).Msg("room_log_unavailable_using_seed")
		messages = cloneMessages(s.seed)
	}

	s.messages = messages
	s.lastID = 0
	for _, m := range s.messages {
		if m.ID > s.lastID {
			s.lastID = m.ID
		}
	}
	return s.Messages()
}

// Append adds an outgoing text message and persists the whole log.
// Blank text is rejected and reported with ok == false.
func (s *Store) Append(text string) (msg protocol.Message, ok bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return protocol.Message{}, false
	}

	now := s.now()
	msg = protocol.Message{
		ID:        s.nextID(now),
		Sender:    s.LocalSenderID(),
		Message:   text,
		Type:      protocol.TypeText,
		Timestamp: now.Format("15:04"),
	}
	s.messages = append(s.messages, msg)

	// the in-memory append stands even when the write fails
	if err := s.repo.Save(s.messages); err != nil {
		s.log.Error().Err(err).Int64("id", msg.ID).Int("messages", len(s.messages)).Msg("room_log_persist_failed")
	}
	return msg, true
}

// nextID is the wall clock in milliseconds, bumped past the largest id seen
func (s *Store) nextID(now time.Time) int64 {
	id := now.UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return id
}

// ResolveParticipant looks a sender up in the roster
func (s *Store) ResolveParticipant(senderID string) (protocol.Participant, bool) {
	p, ok := s.roster[senderID]
	return p, ok
}

// IsLocalUser reports whether senderID belongs to a participant with the local-user role
func (s *Store) IsLocalUser(senderID string) bool {
	p, ok := s.ResolveParticipant(senderID)
	return ok && p.Role == protocol.RoleLocalUser
}

// LocalSenderID is the id outgoing messages are attributed to
func (s *Store) LocalSenderID() string {
	for _, p := range s.room.Participants {
		if p.Role == protocol.RoleLocalUser {
			return p.ID
		}
	}
	return s.fallbackSender
}

// Messages returns a copy of the log in display order
func (s *Store) Messages() []protocol.Message {
	return cloneMessages(s.messages)
}

// Len is the current log length
func (s *Store) Len() int { return len(s.messages) }

// Room returns the room identity and roster
func (s *Store) Room() protocol.Room { return s.room }

// ParticipantCount is the roster size, not a presence signal
func (s *Store) ParticipantCount() int { return len(s.room.Participants) }

func cloneMessages(in []protocol.Message) []protocol.Message {
	out := make([]protocol.Message, len(in))
	copy(out, in)
	return out
}
