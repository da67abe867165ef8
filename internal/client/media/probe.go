package media

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"
)

// Prober decides whether an image source can be loaded
type Prober interface {
	Probe(ctx context.Context, src string) error
}

// ErrEmptySource is returned for a blank payload
var ErrEmptySource = errors.New("media: empty source")

// URLProber checks an image source without touching the network:
// absolute http(s) URLs pass, file URLs and plain paths must exist on disk
type URLProber struct{}

func (URLProber) Probe(_ context.Context, src string) error {
	src = strings.TrimSpace(src)
	if src == "" {
		return ErrEmptySource
	}

	u, err := url.Parse(src)
	if err != nil {
		return fmt.Errorf("parse %q: %w", src, err)
	}

	switch u.Scheme {
	case "http", "https":
		if u.Host == "" {
			return fmt.Errorf("missing host in %q", src)
		}
		return nil
	case "file":
		return statFile(u.Path)
	case "":
		return statFile(src)
	default:
		return fmt.Errorf("unsupported scheme %q", u.Scheme)
	}
}

func statFile(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if info.IsDir() {
		return fmt.Errorf("%s is a directory", path)
	}
	return nil
}

// HTTPProber sends a HEAD request and requires a 2xx image/* answer.
// Non-http sources go through URLProber.
type HTTPProber struct {
	Client  *http.Client
	Timeout time.Duration
}

// NewHTTPProber creates a prober with a bounded per-request timeout
func NewHTTPProber(timeout time.Duration) *HTTPProber {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &HTTPProber{Client: &http.Client{}, Timeout: timeout}
}

func (p *HTTPProber) Probe(ctx context.Context, src string) error {
	if err := (URLProber{}).Probe(ctx, src); err != nil {
		return err
	}
	u, _ := url.Parse(strings.TrimSpace(src))
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, p.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, u.String(), nil)
	if err != nil {
		return err
	}
	resp, err := p.Client.Do(req)
	if err != nil {
		return fmt.Errorf("probe %s: %w", u, err)
	}
	resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("probe %s: status %d", u, resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "image/") {
		return fmt.Errorf("probe %s: content type %q is not an image", u, ct)
	}
	return nil
}

// Probe runs p and converts the result into an event
func Probe(ctx context.Context, p Prober, messageID int64, src string) Event {
	if err := p.Probe(ctx, src); err != nil {
		return ImageFailedEvent{MessageID: messageID, Err: err}
	}
	return ImageLoadedEvent{MessageID: messageID}
}
