// Package client is a Go client for the PC builder REST API. It keeps the
// login session in a SessionStore and refuses protected and admin calls
// locally when the session does not allow them.
package client

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/goccy/go-json"

	"pcbuilder/internal/models"
)

var (
	// ErrNotLoggedIn is returned by protected calls without a session.
	ErrNotLoggedIn = errors.New("not logged in")
	// ErrNotAdmin is returned by admin calls when the session user is not an admin.
	ErrNotAdmin = errors.New("admin access required")
)

// FieldError is one itemized validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// APIError is a non-2xx answer from the server.
type APIError struct {
	Status  int
	Message string
	Errors  []FieldError
	// RawResponse carries the unparsed model output when generation fails
	// to parse.
	RawResponse string
	// Detail is the underlying error text some 500 answers include.
	Detail string
}

func (e *APIError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d: %s", e.Status, e.Message)
	for _, fe := range e.Errors {
		fmt.Fprintf(&b, "; %s: %s", fe.Field, fe.Message)
	}
	if e.Detail != "" {
		fmt.Fprintf(&b, " (%s)", e.Detail)
	}
	return b.String()
}

// StatusCode extracts the HTTP status from an *APIError, or 0.
func StatusCode(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}
	return 0
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// Client talks to one API server.
type Client struct {
	baseURL string
	http    *http.Client
	store   SessionStore

	mu      sync.RWMutex
	session *Session
}

// New creates a client and rehydrates the session from store. A nil store
// keeps the session in memory only.
func New(baseURL string, store SessionStore, opts ...Option) (*Client, error) {
	base := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if _, err := url.ParseRequestURI(base); err != nil || base == "" {
		return nil, fmt.Errorf("invalid API URL %q", baseURL)
	}
	if store == nil {
		store = &MemoryStore{}
	}
	c := &Client{
		baseURL: base,
		http:    &http.Client{Timeout: 2 * time.Minute},
		store:   store,
	}
	for _, opt := range opts {
		opt(c)
	}

	s, err := store.Load()
	if err != nil {
		return nil, err
	}
	c.session = s
	return c, nil
}

// Session returns a copy of the current session, or nil.
func (c *Client) Session() *Session {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.session == nil {
		return nil
	}
	s := *c.session
	return &s
}

// LoggedIn reports whether a session is present.
func (c *Client) LoggedIn() bool {
	return c.Session() != nil
}

func (c *Client) setSession(s *Session) error {
	if err := c.store.Save(s); err != nil {
		return err
	}
	c.mu.Lock()
	c.session = s
	c.mu.Unlock()
	return nil
}

func (c *Client) clearSession() error {
	c.mu.Lock()
	c.session = nil
	c.mu.Unlock()
	return c.store.Clear()
}

func (c *Client) token() (string, error) {
	s := c.Session()
	if s == nil {
		return "", ErrNotLoggedIn
	}
	return s.Token, nil
}

func (c *Client) requireAdmin() (string, error) {
	s := c.Session()
	if s == nil {
		return "", ErrNotLoggedIn
	}
	if !s.User.IsAdmin {
		return "", ErrNotAdmin
	}
	return s.Token, nil
}

type errorBody struct {
	Message     string       `json:"message"`
	Error       string       `json:"error"`
	Errors      []FieldError `json:"errors"`
	RawResponse string       `json:"rawResponse"`
}

// do sends one request. token may be empty for public routes; out may be nil.
func (c *Client) do(ctx context.Context, method, path, token string, in, out any) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{Status: resp.StatusCode}
		var eb errorBody
		if json.Unmarshal(data, &eb) == nil {
			apiErr.Message = eb.Message
			apiErr.Errors = eb.Errors
			apiErr.RawResponse = eb.RawResponse
			if apiErr.Message == "" {
				apiErr.Message = eb.Error
			} else {
				apiErr.Detail = eb.Error
			}
		}
		if apiErr.Message == "" {
			apiErr.Message = strings.TrimSpace(string(data))
		}
		if apiErr.Message == "" {
			apiErr.Message = http.StatusText(resp.StatusCode)
		}
		return apiErr
	}

	if out == nil || len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// envelope is the {success, count, data} shape of the benchmark routes.
type envelope[T any] struct {
	Success bool `json:"success"`
	Count   int  `json:"count"`
	Data    T    `json:"data"`
}

type authBody struct {
	Message string             `json:"message"`
	Token   string             `json:"token"`
	User    models.UserProfile `json:"user"`
}
