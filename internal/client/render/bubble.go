package render

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/yourusername/roomchat/internal/protocol"
)

// Palette - same earthy tones as the room view
var (
	localColor  = lipgloss.Color("#7EBB81") // forest green
	remoteColor = lipgloss.Color("#E8C4A0") // warm beige
	mutedColor  = lipgloss.Color("#B8A890") // taupe
	fgColor     = lipgloss.Color("#F5F3ED") // warm white
	errorColor  = lipgloss.Color("#E07B7B")
	linkColor   = lipgloss.Color("#A8C9A4") // sage
)

// Styles groups every style a bubble uses
type Styles struct {
	LocalBox    lipgloss.Style
	RemoteBox   lipgloss.Style
	LocalBadge  lipgloss.Style
	RemoteBadge lipgloss.Style
	Name        lipgloss.Style
	Time        lipgloss.Style
	Link        lipgloss.Style
	Caption     lipgloss.Style
	Unavailable lipgloss.Style
	Cursor      lipgloss.Style
}

// DefaultStyles is the colored theme used by the TUI
func DefaultStyles() Styles {
	return Styles{
		LocalBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(localColor).
			Foreground(fgColor).
			Padding(0, 1),
		RemoteBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(remoteColor).
			Foreground(fgColor).
			Padding(0, 1),
		LocalBadge: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#1C1C1C")).
			Background(localColor).
			Bold(true).
			Padding(0, 1),
		RemoteBadge: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#1C1C1C")).
			Background(remoteColor).
			Bold(true).
			Padding(0, 1),
		Name:        lipgloss.NewStyle().Foreground(mutedColor).Bold(true),
		Time:        lipgloss.NewStyle().Foreground(mutedColor).Faint(true),
		Link:        lipgloss.NewStyle().Foreground(linkColor).Underline(true),
		Caption:     lipgloss.NewStyle().Foreground(mutedColor).Italic(true),
		Unavailable: lipgloss.NewStyle().Foreground(errorColor),
		Cursor:      lipgloss.NewStyle().Foreground(localColor).Bold(true),
	}
}

// PlainStyles keeps the layout but drops colors, for non-terminal output
func PlainStyles() Styles {
	box := lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(0, 1)
	badge := lipgloss.NewStyle().Padding(0, 1)
	plain := lipgloss.NewStyle()
	return Styles{
		LocalBox:    box,
		RemoteBox:   box,
		LocalBadge:  badge,
		RemoteBadge: badge,
		Name:        plain,
		Time:        plain,
		Link:        plain,
		Caption:     plain,
		Unavailable: plain,
		Cursor:      plain,
	}
}

// Bubble is everything needed to draw one message
type Bubble struct {
	Message  protocol.Message
	Name     string // display name from the roster, empty when unknown
	Local    bool
	Image    ImageState
	Selected bool
	Now      time.Time
	Width    int // available width of the message list
}

// Label is the sender name shown above remote bubbles
func (b Bubble) Label() string {
	if b.Name != "" {
		return b.Name
	}
	if b.Local {
		return LocalFallbackLabel
	}
	return b.Message.Sender
}

// Initials for the avatar badge
func (b Bubble) Initials() string {
	if b.Local {
		return Initials(b.Name, LocalFallbackLabel)
	}
	return Initials(b.Name, b.Message.Sender)
}

// Render draws the bubble. Local messages sit on the right with their badge
// after the box; everyone else sits on the left with badge and name on top.
func (b Bubble) Render(s Styles) string {
	width := b.Width
	if width <= 0 {
		width = 80
	}
	maxBox := width * 7 / 10
	if maxBox < 16 {
		maxBox = min(16, width)
	}

	box := s.RemoteBox
	if b.Local {
		box = s.LocalBox
	}
	body := b.body(s)
	frame := box.GetHorizontalFrameSize()
	if lipgloss.Width(body)+frame > maxBox {
		box = box.Width(maxBox - box.GetHorizontalBorderSize())
	}
	boxed := box.Render(body)
	ts := s.Time.Render(Timestamp(b.Message.Timestamp, b.Now))

	gutter := "  "
	if b.Selected {
		gutter = s.Cursor.Render("› ")
	}

	var block string
	if b.Local {
		badge := s.LocalBadge.Render(b.Initials())
		inner := lipgloss.JoinVertical(lipgloss.Right, boxed, ts)
		block = lipgloss.JoinHorizontal(lipgloss.Top, inner, " ", badge)
		block = lipgloss.PlaceHorizontal(width-lipgloss.Width(gutter), lipgloss.Right, block)
	} else {
		badge := s.RemoteBadge.Render(b.Initials())
		header := badge + " " + s.Name.Render(b.Label())
		block = lipgloss.JoinVertical(lipgloss.Left, header, boxed, ts)
	}
	return prefixLines(block, gutter)
}

// body renders the per-variant content inside the box
func (b Bubble) body(s Styles) string {
	payload := SanitizeText(b.Message.Message)

	switch ResolveType(b.Message.Type) {
	case protocol.TypeImage:
		switch b.Image {
		case ImageLoaded:
			return "🖼  " + s.Link.Render(payload) + "\n" + s.Caption.Render("ctrl+o to open")
		case ImageFailed:
			return s.Unavailable.Render("🖼  Image unavailable")
		default:
			return s.Caption.Render("loading image…")
		}

	case protocol.TypeVideo:
		src, embedded := VideoEmbed(payload)
		if embedded {
			return "▶ YouTube  " + s.Link.Render(src)
		}
		return "▶ Video  " + s.Link.Render(src)

	case protocol.TypePDF:
		return "📄 PDF Document\n" + s.Caption.Render("Click to view (ctrl+o)")
	}

	return payload
}

func prefixLines(block, prefix string) string {
	lines := strings.Split(block, "\n")
	pad := strings.Repeat(" ", lipgloss.Width(prefix))
	for i := range lines {
		if i == 0 {
			lines[i] = prefix + lines[i]
			continue
		}
		lines[i] = pad + lines[i]
	}
	return strings.Join(lines, "\n")
}
