package ui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/yourusername/roomchat/internal/client/media"
)

// mediaEventMsg wraps events from image probes and the external opener
type mediaEventMsg struct {
	event media.Event
}

// probeImageCmd checks one image source in the background
func probeImageCmd(p media.Prober, messageID int64, src string) tea.Cmd {
	return func() tea.Msg {
		return mediaEventMsg{event: media.Probe(context.Background(), p, messageID, src)}
	}
}

// openCmd hands a URL to the external viewer
func openCmd(o media.Opener, url string) tea.Cmd {
	return func() tea.Msg {
		return mediaEventMsg{event: media.Open(o, url)}
	}
}
