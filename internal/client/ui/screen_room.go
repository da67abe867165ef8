package ui

import (
	"fmt"
	"strings"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/yourusername/roomchat/internal/client/render"
)

// updateRoom handles keys on the room screen
func (m Model) updateRoom(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Typed text goes straight to the composer
	if msg.Type == tea.KeyRunes {
		for _, r := range msg.Runes {
			if utf8.RuneCountInString(m.input) >= maxInputRunes {
				break
			}
			m.input += string(r)
		}
		return m, nil
	}

	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "esc":
		if m.list.selected >= 0 {
			m.list.follow()
			return m, nil
		}
		return m, tea.Quit

	case "enter":
		return m.send()

	case "backspace":
		if m.input != "" {
			_, size := utf8.DecodeLastRuneInString(m.input)
			m.input = m.input[:len(m.input)-size]
		}

	case " ":
		if utf8.RuneCountInString(m.input) < maxInputRunes {
			m.input += " "
		}

	case "up":
		m.list.move(-1, len(m.messages))
		m.revealSelected()

	case "down":
		m.list.move(1, len(m.messages))
		m.revealSelected()

	case "pgup":
		m.list.scrollBack += m.listHeight()
		m.clampList()

	case "pgdown":
		m.list.scrollBack -= m.listHeight()
		m.clampList()

	case "end":
		m.list.follow()

	case "ctrl+o":
		return m.openSelected()
	}

	return m, nil
}

// send appends the composer text; the input is cleared only when the store accepted it
func (m Model) send() (tea.Model, tea.Cmd) {
	if strings.TrimSpace(m.input) == "" {
		return m, nil
	}
	sent, ok := m.store.Append(m.input)
	if !ok {
		return m, nil
	}
	m.input = ""
	m.messages = m.store.Messages()
	m.list.follow()
	m.err = nil
	m.status = ""
	m.log.Debug().Int64("id", sent.ID).Int("messages", len(m.messages)).Msg("message_sent")
	return m, nil
}

// openSelected opens the selected image, video or pdf in an external viewer
func (m Model) openSelected() (tea.Model, tea.Cmd) {
	i := m.list.selected
	if i < 0 || i >= len(m.messages) {
		m.status = "select a message with ↑/↓ first"
		return m, nil
	}
	target := m.messages[i]
	url, ok := render.Openable(target, m.tracker.State(target.ID))
	if !ok {
		m.status = "nothing to open"
		return m, nil
	}
	return m, openCmd(m.opener, url)
}

// bubbles renders every message of the log in order
func (m Model) bubbles() []string {
	now := m.now()
	out := make([]string, len(m.messages))
	for i, msg := range m.messages {
		name := ""
		if p, ok := m.store.ResolveParticipant(msg.Sender); ok {
			name = p.Name
		}
		out[i] = render.Bubble{
			Message:  msg,
			Name:     name,
			Local:    m.store.IsLocalUser(msg.Sender),
			Image:    m.tracker.State(msg.ID),
			Selected: i == m.list.selected,
			Now:      now,
			Width:    m.width,
		}.Render(m.styles)
	}
	return out
}

func (m *Model) revealSelected() {
	if m.list.selected < 0 {
		return
	}
	lines, starts := layout(m.bubbles())
	start := starts[m.list.selected]
	end := len(lines)
	if m.list.selected+1 < len(starts) {
		end = starts[m.list.selected+1]
	}
	m.list.reveal(start, end, len(lines), m.listHeight())
}

func (m *Model) clampList() {
	lines, _ := layout(m.bubbles())
	m.list.clamp(len(lines), m.listHeight())
}

// listHeight is what is left for messages after header, composer and status bar
func (m Model) listHeight() int {
	used := lipgloss.Height(m.renderHeader()) +
		lipgloss.Height(m.renderComposer()) +
		lipgloss.Height(m.renderStatusBar())
	h := m.height - used
	if h < 3 {
		h = 3
	}
	return h
}

// viewRoom renders header, message list, composer and status bar
func (m Model) viewRoom() string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.renderHeader(),
		m.renderMessages(),
		m.renderComposer(),
		m.renderStatusBar(),
	)
}

// renderHeader shows the room avatar, name, roster size and call icons
func (m Model) renderHeader() string {
	r := m.store.Room()

	avatar := roomAvatarStyle.Render(render.Initials(r.Name, "#")) + onlineDotStyle.Render("●")
	identity := lipgloss.JoinVertical(
		lipgloss.Left,
		roomNameStyle.Render(render.SanitizeText(r.Name)),
		mutedStyle.Render(fmt.Sprintf("%d participants", m.store.ParticipantCount())),
	)
	left := lipgloss.JoinHorizontal(lipgloss.Center, avatar, "  ", identity)

	// call and video buttons are placeholders
	icons := iconStyle.Render("📞") + iconStyle.Render("🎥")

	inner := m.width - headerStyle.GetHorizontalFrameSize()
	gap := inner - lipgloss.Width(left) - lipgloss.Width(icons)
	if gap < 1 {
		gap = 1
	}
	row := lipgloss.JoinHorizontal(lipgloss.Center, left, strings.Repeat(" ", gap), icons)
	return headerStyle.Render(row)
}

// renderMessages renders the visible window of the log, tail-following by default
func (m Model) renderMessages() string {
	height := m.listHeight()
	if len(m.messages) == 0 {
		return lipgloss.Place(m.width, height, lipgloss.Center, lipgloss.Center,
			emptyStyle.Render("No messages yet. Say hello!"))
	}

	lines, _ := layout(m.bubbles())
	visible := m.list.window(lines, height)

	// bottom-anchor a short log so the newest message sits above the composer
	if pad := height - len(visible); pad > 0 {
		visible = append(make([]string, pad), visible...)
	}
	return strings.Join(visible, "\n")
}

// renderComposer renders the attachment icon, input and send button
func (m Model) renderComposer() string {
	var text string
	if m.input == "" {
		text = placeholderStyle.Render("Type a message...")
	} else {
		text = inputTextStyle.Render(render.SanitizeText(m.input)) + cursorStyle.Render("▊")
	}

	send := sendStyle.Render("➤ Send")
	if strings.TrimSpace(m.input) == "" {
		send = sendDisabledStyle.Render("➤ Send")
	}

	// attachment button is a placeholder
	attach := iconStyle.Render("📎")

	inner := m.width - composerStyle.GetHorizontalFrameSize()
	fieldWidth := inner - lipgloss.Width(attach) - lipgloss.Width(send) - 2
	if fieldWidth < 10 {
		fieldWidth = 10
	}
	field := lipgloss.NewStyle().Width(fieldWidth).MaxHeight(3).Render(text)

	return composerStyle.Render(lipgloss.JoinHorizontal(lipgloss.Center, attach, " ", field, " ", send))
}

// renderStatusBar shows key hints, log size and the last status or error
func (m Model) renderStatusBar() string {
	hints := mutedStyle.Render("ENTER send  •  ↑/↓ select  •  CTRL+O open  •  PGUP/PGDN scroll  •  ESC quit")

	// status first so truncation eats the hints, not the feedback
	var parts []string
	if m.err != nil {
		parts = append(parts, errorStyle.Render("✗ "+m.err.Error()))
	} else if m.status != "" {
		parts = append(parts, highlightStyle.Render(m.status))
	}
	if m.sizer != nil {
		parts = append(parts, mutedStyle.Render(humanize.Bytes(uint64(m.sizer.LastSize()))+" saved"))
	}
	parts = append(parts, hints)
	return lipgloss.NewStyle().MaxWidth(m.width).Render(strings.Join(parts, "  •  "))
}
