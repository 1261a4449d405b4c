package source

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// Reason distinguishes classes of fetch failure.
type Reason int

const (
	// ReasonUnreachable covers DNS and connection-level failures.
	ReasonUnreachable Reason = iota
	// ReasonNotFound is an HTTP 404 from the source.
	ReasonNotFound
	// ReasonUpstream is any other non-2xx status or an unreadable body.
	ReasonUpstream
)

// Error is a fetch failure carrying a classified reason.
type Error struct {
	Reason Reason
	Err    error
}

func (e *Error) Error() string { return fmt.Sprintf("fetch failed: %v", e.Err) }
func (e *Error) Unwrap() error { return e.Err }

// Client fetches one fresh face image per call from a fixed endpoint.
// The endpoint returns a new synthetic face on every request, so there
// is nothing to cache and no retry policy: each requested image is one
// network round trip.
type Client struct {
	url  string
	http *http.Client
	log  zerolog.Logger
}

// New creates a Client against url. timeout bounds the full round trip
// of each fetch, including reading the body.
func New(url string, timeout time.Duration, log zerolog.Logger) *Client {
	return &Client{
		url:  url,
		http: &http.Client{Timeout: timeout},
		log:  log,
	}
}

// Fetch performs one GET against the source and returns the raw encoded
// image bytes.
func (c *Client) Fetch(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, &Error{Reason: ReasonUnreachable, Err: err}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &Error{Reason: ReasonUnreachable, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, &Error{Reason: ReasonNotFound, Err: fmt.Errorf("source returned 404 for %s", c.url)}
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &Error{Reason: ReasonUpstream, Err: fmt.Errorf("source returned status %d", resp.StatusCode)}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{Reason: ReasonUpstream, Err: fmt.Errorf("reading source body: %w", err)}
	}

	c.log.Debug().Int("bytes", len(body)).Msg("fetched face image")
	return body, nil
}
