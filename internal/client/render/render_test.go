package render

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/yourusername/roomchat/internal/protocol"
)

func TestInitials(t *testing.T) {
	cases := []struct {
		name, fallback, want string
	}{
		{"Jane Doe", "", "JD"},
		{"cher", "", "C"},
		{"", "You", "YO"},
		{"  mary   ann  smith ", "", "MA"},
		{"élodie durand", "", "ÉD"},
		{"", "c", "C"},
		{"", "agent@mail.com", "AG"},
		{"", "", ""},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, Initials(c.name, c.fallback), "name=%q fallback=%q", c.name, c.fallback)
	}
}

func TestTimestamp(t *testing.T) {
	now := time.Date(2026, 10, 19, 7, 4, 59, 0, time.UTC)
	assert.Equal(t, "07:04", Timestamp("", now))
	assert.Equal(t, "23:00", Timestamp("", time.Date(2026, 1, 1, 23, 0, 0, 0, time.UTC)))
	assert.Equal(t, "yesterday", Timestamp("yesterday", now))
}

func TestVideoEmbed(t *testing.T) {
	const want = "https://www.youtube.com/embed/dQw4w9WgXcQ"

	src, embedded := VideoEmbed("https://www.youtube.com/watch?v=dQw4w9WgXcQ&t=42s")
	assert.True(t, embedded)
	assert.Equal(t, want, src)

	src2, embedded := VideoEmbed("https://youtu.be/dQw4w9WgXcQ?si=abc")
	assert.True(t, embedded)
	assert.Equal(t, src, src2)

	src, embedded = VideoEmbed("https://www.youtube.com/embed/dQw4w9WgXcQ")
	assert.True(t, embedded)
	assert.Equal(t, want, src)

	// youtube host without an id still embeds, with the raw url
	src, embedded = VideoEmbed("https://www.youtube.com/feed/trending")
	assert.True(t, embedded)
	assert.Equal(t, "https://www.youtube.com/feed/trending", src)

	src, embedded = VideoEmbed("https://cdn.example.com/clip.mp4")
	assert.False(t, embedded)
	assert.Equal(t, "https://cdn.example.com/clip.mp4", src)
}

func TestResolveType(t *testing.T) {
	assert.Equal(t, protocol.TypeImage, ResolveType(protocol.TypeImage))
	assert.Equal(t, protocol.TypePDF, ResolveType(protocol.TypePDF))
	assert.Equal(t, protocol.TypeText, ResolveType("unknown"))
	assert.Equal(t, protocol.TypeText, ResolveType(""))
}

func TestUnknownTypeRendersAsText(t *testing.T) {
	b := Bubble{
		Message: protocol.Message{ID: 1, Sender: "a", Message: "https://x/doc.pdf", Type: "unknown"},
		Width:   200,
		Now:     time.Now(),
	}
	out := b.Render(PlainStyles())
	assert.Contains(t, out, "https://x/doc.pdf")
	assert.NotContains(t, out, "PDF Document")
	assert.NotContains(t, out, "▶")
}

func TestImageStateMachine(t *testing.T) {
	assert.Equal(t, ImageLoaded, ImageLoading.Transition(true))
	assert.Equal(t, ImageFailed, ImageLoading.Transition(false))

	// terminal states never move
	for _, s := range []ImageState{ImageLoaded, ImageFailed} {
		assert.True(t, s.Terminal())
		assert.Equal(t, s, s.Transition(true))
		assert.Equal(t, s, s.Transition(false))
	}

	tr := NewImageTracker()
	assert.True(t, tr.Track(7))
	assert.False(t, tr.Track(7))
	assert.Equal(t, ImageLoading, tr.State(7))
	assert.Equal(t, ImageFailed, tr.Resolve(7, false))
	assert.Equal(t, ImageFailed, tr.Resolve(7, true))
	assert.False(t, tr.Track(7))
}

func TestBubbleVariants(t *testing.T) {
	now := time.Date(2026, 10, 19, 8, 30, 0, 0, time.UTC)
	base := Bubble{Width: 200, Now: now}

	img := base
	img.Message = protocol.Message{ID: 1, Sender: "a", Message: "https://x/cat.png", Type: protocol.TypeImage}
	assert.Contains(t, img.Render(PlainStyles()), "loading image")

	img.Image = ImageLoaded
	assert.Contains(t, img.Render(PlainStyles()), "https://x/cat.png")

	img.Image = ImageFailed
	out := img.Render(PlainStyles())
	assert.Contains(t, out, "Image unavailable")
	assert.NotContains(t, out, "https://x/cat.png")

	vid := base
	vid.Message = protocol.Message{ID: 2, Sender: "a", Message: "https://youtu.be/abc123", Type: protocol.TypeVideo}
	assert.Contains(t, vid.Render(PlainStyles()), "https://www.youtube.com/embed/abc123")

	vid.Message.Message = "https://cdn.example.com/v.mp4"
	out = vid.Render(PlainStyles())
	assert.Contains(t, out, "▶ Video")
	assert.Contains(t, out, "https://cdn.example.com/v.mp4")

	pdf := base
	pdf.Message = protocol.Message{ID: 3, Sender: "a", Message: "https://x/a.pdf", Type: protocol.TypePDF}
	assert.Contains(t, pdf.Render(PlainStyles()), "PDF Document")
}

func TestBubbleLabelsAndTime(t *testing.T) {
	now := time.Date(2026, 10, 19, 8, 30, 0, 0, time.UTC)

	remote := Bubble{
		Message: protocol.Message{ID: 1, Sender: "ghost@mail.com", Message: "boo", Type: protocol.TypeText},
		Width:   120,
		Now:     now,
	}
	out := remote.Render(PlainStyles())
	assert.Contains(t, out, "ghost@mail.com")
	assert.Contains(t, out, "GH")
	assert.Contains(t, out, "08:30")

	named := remote
	named.Name = "Jane Doe"
	named.Message.Timestamp = "11:11"
	out = named.Render(PlainStyles())
	assert.Contains(t, out, "Jane Doe")
	assert.Contains(t, out, "JD")
	assert.Contains(t, out, "11:11")
	assert.NotContains(t, out, "08:30")

	local := Bubble{
		Message: protocol.Message{ID: 2, Sender: "me", Message: "mine", Type: protocol.TypeText},
		Local:   true,
		Width:   120,
		Now:     now,
	}
	out = local.Render(PlainStyles())
	assert.Contains(t, out, "YO")
	// right aligned: the first line starts with padding
	first := strings.Split(out, "\n")[0]
	assert.True(t, strings.HasPrefix(first, "          "), "local bubble should be right aligned: %q", first)
}

func TestSanitizeText(t *testing.T) {
	assert.Equal(t, "red text", SanitizeText("\x1b[31mred\x1b[0m text"))
	assert.Equal(t, "bell", SanitizeText("be\x07ll"))
	assert.Equal(t, "two\nlines", SanitizeText("two\nlines"))
}

func TestOpenable(t *testing.T) {
	img := protocol.Message{Message: "https://x/i.png", Type: protocol.TypeImage}
	_, ok := Openable(img, ImageLoading)
	assert.False(t, ok)
	_, ok = Openable(img, ImageFailed)
	assert.False(t, ok)
	url, ok := Openable(img, ImageLoaded)
	assert.True(t, ok)
	assert.Equal(t, "https://x/i.png", url)

	url, ok = Openable(protocol.Message{Message: "https://x/d.pdf", Type: protocol.TypePDF}, ImageLoading)
	assert.True(t, ok)
	assert.Equal(t, "https://x/d.pdf", url)

	_, ok = Openable(protocol.Message{Message: "https://x/d.pdf", Type: "unknown"}, ImageLoaded)
	assert.False(t, ok)
}
