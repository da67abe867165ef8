package protocol //room data model shared by the store, the renderer and the persisted log
// Seed dataset and persisted log formats
import (
	"encoding/json"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// MessageType defines how a message payload is rendered
type MessageType string

const (
	TypeText  MessageType = "text"  // payload is literal text
	TypeImage MessageType = "image" // payload is an image URL
	TypeVideo MessageType = "video" // payload is a video URL
	TypePDF   MessageType = "pdf"   // payload is a document URL
)

// Known reports whether t is one of the four renderable types
func (t MessageType) Known() bool {
	switch t {
	case TypeText, TypeImage, TypeVideo, TypePDF:
		return true
	}
	return false
}

// ParticipantRole enumerates participant kinds
type ParticipantRole int

const (
	RoleUnknown   ParticipantRole = 0
	RoleAgent     ParticipantRole = 1
	RoleLocalUser ParticipantRole = 2 // "me": outgoing attribution, right-aligned bubbles
)

// Participant is a party eligible to send in the room
type Participant struct {
	ID       string          `json:"id" yaml:"id"`
	Name     string          `json:"name" yaml:"name"`
	Role     ParticipantRole `json:"role" yaml:"role"`
	ImageURL string          `json:"image_url,omitempty" yaml:"image_url,omitempty"`
}

// UnmarshalJSON accepts both image_url and imageUrl
func (p *Participant) UnmarshalJSON(data []byte) error {
	type plain Participant
	var aux struct {
		plain
		ImageURLCamel string `json:"imageUrl"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	*p = Participant(aux.plain)
	if p.ImageURL == "" {
		p.ImageURL = aux.ImageURLCamel
	}
	return nil
}

// Room is the single chat context: identity plus roster
type Room struct {
	Name         string        `json:"name" yaml:"name"`
	ImageURL     string        `json:"image_url,omitempty" yaml:"image_url,omitempty"`
	Participants []Participant `json:"participant" yaml:"participant"`
}

// UnmarshalJSON accepts participant/participants and image_url/imageUrl
func (r *Room) UnmarshalJSON(data []byte) error {
	type plain Room
	var aux struct {
		plain
		ImageURLCamel   string        `json:"imageUrl"`
		ParticipantList []Participant `json:"participants"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	*r = Room(aux.plain)
	if r.ImageURL == "" {
		r.ImageURL = aux.ImageURLCamel
	}
	if len(r.Participants) == 0 {
		r.Participants = aux.ParticipantList
	}
	return nil
}

// UnmarshalYAML accepts the same aliases as UnmarshalJSON
func (r *Room) UnmarshalYAML(value *yaml.Node) error {
	type plain Room
	var aux struct {
		plain           `yaml:",inline"`
		ImageURLCamel   string        `yaml:"imageUrl"`
		ParticipantList []Participant `yaml:"participants"`
	}
	if err := value.Decode(&aux); err != nil {
		return err
	}
	*r = Room(aux.plain)
	if r.ImageURL == "" {
		r.ImageURL = aux.ImageURLCamel
	}
	if len(r.Participants) == 0 {
		r.Participants = aux.ParticipantList
	}
	return nil
}

// dedupe drops roster entries whose id was already seen, first one wins
func (r *Room) dedupe() {
	seen := make(map[string]struct{}, len(r.Participants))
	out := r.Participants[:0]
	for _, p := range r.Participants {
		if _, ok := seen[p.ID]; ok {
			continue
		}
		seen[p.ID] = struct{}{}
		out = append(out, p)
	}
	r.Participants = out
}

// Message is one entry of the room log
type Message struct {
	ID        int64       `json:"id" yaml:"id"`
	Sender    string      `json:"sender" yaml:"sender"`   // Participant id, may be absent from the roster
	Message   string      `json:"message" yaml:"message"` // Text or URL depending on Type
	Type      MessageType `json:"type" yaml:"type"`       // Stored verbatim, coerced only at render time
	Timestamp string      `json:"timestamp,omitempty" yaml:"timestamp,omitempty"`
}

// Result is one room with its comments
type Result struct {
	Room     Room      `json:"room" yaml:"room"`
	Comments []Message `json:"comments" yaml:"comments"`
}

// Dataset is the static seed: one or more results, only the first is used
type Dataset struct {
	Results []Result `json:"results" yaml:"results"`
}

// ErrNoResults is returned when a dataset carries no room
var ErrNoResults = errors.New("protocol: dataset has no results")

// ErrNullLog is returned when a persisted log decodes to null
var ErrNullLog = errors.New("protocol: persisted log is null")

// First returns the first result, the only one the client reads
func (d *Dataset) First() (Result, error) {
	if d == nil || len(d.Results) == 0 {
		return Result{}, ErrNoResults
	}
	return d.Results[0], nil
}

// EncodeLog serializes the full message log
func EncodeLog(messages []Message) ([]byte, error) {
	if messages == nil {
		messages = []Message{}
	}
	return json.Marshal(messages)
}

// DecodeLog decodes a persisted message log
func DecodeLog(data []byte) ([]Message, error) {
	var messages []Message
	if err := json.Unmarshal(data, &messages); err != nil {
		return nil, fmt.Errorf("decode log: %w", err)
	}
	if messages == nil {
		return nil, ErrNullLog
	}
	return messages, nil
}
