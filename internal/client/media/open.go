package media

import (
	"fmt"
	"os/exec"
	"runtime"
	"strings"
)

// Opener shows a URL in a new viewing context (browser, document viewer)
type Opener interface {
	Open(url string) error
}

// OpenerFunc adapts a function to Opener
type OpenerFunc func(url string) error

func (f OpenerFunc) Open(url string) error { return f(url) }

// SystemOpener hands the URL to the desktop's default handler
type SystemOpener struct{}

func (SystemOpener) Open(url string) error {
	url = strings.TrimSpace(url)
	if url == "" {
		return ErrEmptySource
	}
	name, args := openCommand(runtime.GOOS, url)
	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start %s: %w", name, err)
	}
	// reap in the background, the viewer outlives us
	go cmd.Wait()
	return nil
}

func openCommand(goos, url string) (string, []string) {
	switch goos {
	case "darwin":
		return "open", []string{url}
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", url}
	default:
		return "xdg-open", []string{url}
	}
}

// Open runs o and converts the result into an event
func Open(o Opener, url string) Event {
	if err := o.Open(url); err != nil {
		return OpenFailedEvent{URL: url, Err: err}
	}
	return OpenedEvent{URL: url}
}
