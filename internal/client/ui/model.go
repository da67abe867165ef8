package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/yourusername/roomchat/internal/client/media"
	"github.com/yourusername/roomchat/internal/client/render"
	"github.com/yourusername/roomchat/internal/protocol"
	"github.com/yourusername/roomchat/internal/room"
)

const maxInputRunes = 500

// SizeReporter reports the byte size of the persisted log
type SizeReporter interface {
	LastSize() int
}

// Options wires the model's collaborators; zero values get defaults
type Options struct {
	Prober media.Prober
	Opener media.Opener
	Logger *zerolog.Logger
	Clock  func() time.Time
	Sizer  SizeReporter
	Styles *render.Styles
}

// Model is the Bubble Tea model for the room view
type Model struct {
	store   *room.Store
	tracker *render.ImageTracker
	prober  media.Prober
	opener  media.Opener
	log     zerolog.Logger
	now     func() time.Time
	sizer   SizeReporter
	styles  render.Styles

	messages []protocol.Message // snapshot of the store log, refreshed after each change
	list     messageList
	input    string // composer text, not persisted until sent
	width    int
	height   int
	status   string
	err      error
}

// NewModel loads the room log and builds the view around it
func NewModel(store *room.Store, opts Options) Model {
	m := Model{
		store:   store,
		tracker: render.NewImageTracker(),
		prober:  opts.Prober,
		opener:  opts.Opener,
		log:     zerolog.Nop(),
		now:     opts.Clock,
		sizer:   opts.Sizer,
		styles:  render.DefaultStyles(),
		list:    newMessageList(),
		width:   80,
		height:  24,
	}
	if m.prober == nil {
		m.prober = media.URLProber{}
	}
	if m.opener == nil {
		m.opener = media.SystemOpener{}
	}
	if opts.Logger != nil {
		m.log = *opts.Logger
	}
	if m.now == nil {
		m.now = time.Now
	}
	if opts.Styles != nil {
		m.styles = *opts.Styles
	}

	m.messages = store.LoadInitial()
	m.list.follow()
	return m
}

// Init starts one probe per image message
func (m Model) Init() tea.Cmd {
	return m.probeImages()
}

func (m Model) probeImages() tea.Cmd {
	var cmds []tea.Cmd
	for _, msg := range m.messages {
		if render.ResolveType(msg.Type) != protocol.TypeImage {
			continue
		}
		if m.tracker.Track(msg.ID) {
			cmds = append(cmds, probeImageCmd(m.prober, msg.ID, msg.Message))
		}
	}
	return tea.Batch(cmds...)
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.updateRoom(msg)

	case mediaEventMsg:
		return m.handleMediaEvent(msg.event)
	}

	return m, nil
}

// View renders the room
func (m Model) View() string {
	return m.viewRoom()
}

// Input returns the composer text
func (m Model) Input() string { return m.input }

// Messages returns the log as currently displayed
func (m Model) Messages() []protocol.Message { return m.messages }

// Selected returns the index of the selected message, -1 for none
func (m Model) Selected() int { return m.list.selected }

func (m Model) handleMediaEvent(event media.Event) (tea.Model, tea.Cmd) {
	switch e := event.(type) {
	case media.ImageLoadedEvent:
		m.tracker.Resolve(e.MessageID, true)

	case media.ImageFailedEvent:
		m.tracker.Resolve(e.MessageID, false)
		m.log.Debug().Int64("id", e.MessageID).Err(e.Err).Msg("image_unavailable")

	case media.OpenedEvent:
		m.status = "opened " + e.URL
		m.err = nil

	case media.OpenFailedEvent:
		m.err = e.Err
		m.log.Warn().Str("url", e.URL).Err(e.Err).Msg("open_failed")
	}
	return m, nil
}
