package dictionary

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

// DefaultBaseURL is the public words API.
const DefaultBaseURL = "https://words.dev-apis.com"

// ErrBadResponse reports a non-2xx status or an unusable body.
var ErrBadResponse = errors.New("dictionary: bad response")

// wordRes is the body of GET /word-of-the-day.
type wordRes struct {
	Word string `json:"word"`
}

// validateReq/Res are the bodies of POST /validate-word.
type validateReq struct {
	Word string `json:"word"`
}
type validateRes struct {
	Word      string `json:"word"`
	ValidWord bool   `json:"validWord"`
}

// Client talks to a words API over HTTP.
type Client struct {
	base    string
	http    *http.Client
	random  bool
	timeout time.Duration
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient sets a custom HTTP client. The client is used as given;
// WithTimeout does not modify it.
func WithHTTPClient(c *http.Client) ClientOption { return func(cl *Client) { cl.http = c } }

// WithRandom asks the API for a random word instead of the daily one.
func WithRandom(random bool) ClientOption { return func(cl *Client) { cl.random = random } }

// WithTimeout sets the total per-request timeout of the default HTTP client.
func WithTimeout(d time.Duration) ClientOption {
	return func(cl *Client) {
		if d > 0 {
			cl.timeout = d
		}
	}
}

// NewClient builds a Client for baseURL (DefaultBaseURL when empty).
func NewClient(baseURL string, opts ...ClientOption) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		base:    strings.TrimRight(baseURL, "/"),
		timeout: 10 * time.Second,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.http == nil {
		c.http = newHTTPClient(c.timeout)
	}
	return c
}

// newHTTPClient returns a client with bounded dial/handshake/header timeouts.
func newHTTPClient(timeout time.Duration) *http.Client {
	dialer := &net.Dialer{Timeout: 5 * time.Second, KeepAlive: 30 * time.Second}
	return &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			Proxy:                 http.ProxyFromEnvironment,
			DialContext:           dialer.DialContext,
			ForceAttemptHTTP2:     true,
			MaxIdleConns:          10,
			IdleConnTimeout:       90 * time.Second,
			TLSHandshakeTimeout:   5 * time.Second,
			ResponseHeaderTimeout: 10 * time.Second,
		},
	}
}

// WordOfTheDay fetches the secret word and uppercases it.
func (c *Client) WordOfTheDay(ctx context.Context) (string, error) {
	url := c.base + "/word-of-the-day"
	if c.random {
		url += "?random=1"
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	var res wordRes
	if err := c.do(req, &res); err != nil {
		return "", fmt.Errorf("word of the day: %w", err)
	}
	w := strings.ToUpper(strings.TrimSpace(res.Word))
	if w == "" {
		return "", fmt.Errorf("word of the day: %w: empty word", ErrBadResponse)
	}
	return w, nil
}

// Validate asks the API whether word is a valid guess.
func (c *Client) Validate(ctx context.Context, word string) (bool, error) {
	body, err := json.Marshal(validateReq{Word: strings.ToLower(word)})
	if err != nil {
		return false, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+"/validate-word", bytes.NewReader(body))
	if err != nil {
		return false, err
	}
	req.Header.Set("Content-Type", "application/json")
	var res validateRes
	if err := c.do(req, &res); err != nil {
		return false, fmt.Errorf("validate %q: %w", word, err)
	}
	return res.ValidWord, nil
}

// do sends req and decodes a JSON body into out.
func (c *Client) do(req *http.Request, out any) error {
	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	log.Debug().
		Str("method", req.Method).
		Str("url", req.URL.String()).
		Int("status", resp.StatusCode).
		Dur("took", time.Since(start)).
		Msg("words api")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4<<10))
		return fmt.Errorf("%w: status %d", ErrBadResponse, resp.StatusCode)
	}
	if err := json.NewDecoder(io.LimitReader(resp.Body, 64<<10)).Decode(out); err != nil {
		return fmt.Errorf("%w: %v", ErrBadResponse, err)
	}
	return nil
}
