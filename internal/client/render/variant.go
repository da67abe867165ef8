package render

import (
	"regexp"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/x/ansi"

	"github.com/yourusername/roomchat/internal/protocol"
)

// LocalFallbackLabel names the local user when the roster has no display name
const LocalFallbackLabel = "You"

// ResolveType restricts a stored type to the four renderable variants.
// Anything else renders as text.
func ResolveType(t protocol.MessageType) protocol.MessageType {
	if t.Known() {
		return t
	}
	return protocol.TypeText
}

// Initials builds the avatar badge text.
// A display name yields the first letter of each word, capped at two.
// Without a name, the first two letters of the fallback label are used.
func Initials(name, fallback string) string {
	if fields := strings.Fields(name); len(fields) > 0 {
		var b strings.Builder
		for _, f := range fields {
			r, _ := utf8.DecodeRuneInString(f)
			b.WriteRune(r)
		}
		return truncateRunes(strings.ToUpper(b.String()), 2)
	}
	return truncateRunes(strings.ToUpper(strings.TrimSpace(fallback)), 2)
}

func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) > n {
		runes = runes[:n]
	}
	return string(runes)
}

// Timestamp returns the stored display time, or now as zero-padded 24h HH:MM
func Timestamp(stored string, now time.Time) string {
	if stored != "" {
		return stored
	}
	return now.Format("15:04")
}

const youTubeEmbedTemplate = "https://www.youtube.com/embed/"

var (
	youTubeIDPattern   = regexp.MustCompile(`(?:youtube\.com/watch\?v=|youtu\.be/|youtube\.com/embed/)([^&\n?#]+)`)
	youTubeHostPattern = regexp.MustCompile(`(?:youtube\.com|youtu\.be)`)
)

// VideoEmbed maps a video payload to a player source. YouTube links are
// embedded through the canonical embed URL; anything else plays natively
// from the original URL.
func VideoEmbed(url string) (src string, embedded bool) {
	if !youTubeHostPattern.MatchString(url) {
		return url, false
	}
	if m := youTubeIDPattern.FindStringSubmatch(url); m != nil {
		return youTubeEmbedTemplate + m[1], true
	}
	return url, true
}

// SanitizeText strips terminal escape sequences and control characters
// so a payload cannot drive the terminal
func SanitizeText(s string) string {
	s = ansi.Strip(s)
	return strings.Map(func(r rune) rune {
		if r == '\n' || r == '\t' {
			return r
		}
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, s)
}

// Openable returns the URL a message opens in an external viewer.
// Images only open once loaded; text never opens.
func Openable(msg protocol.Message, image ImageState) (string, bool) {
	switch ResolveType(msg.Type) {
	case protocol.TypeImage:
		return msg.Message, image == ImageLoaded
	case protocol.TypeVideo, protocol.TypePDF:
		return msg.Message, strings.TrimSpace(msg.Message) != ""
	}
	return "", false
}
