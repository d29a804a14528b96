package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/oauth2"
)

const (
	DefaultBaseURL = "http://localhost:8000"
	defaultTimeout = 15 * time.Second
	maxErrorBody   = 1 << 20
)

// Client talks to the HRMS record store over its REST API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	timeout    time.Duration
	logger     *slog.Logger
	token      string

	Employees  *EmployeeService
	Attendance *AttendanceService
	Leaves     *LeaveService
	Users      *UserService
	Stats      *StatsService
}

type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client. The client is copied,
// never modified.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithTimeout sets the per-request timeout, overriding the timeout of a
// client given to WithHTTPClient.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithToken authenticates every request with a bearer token.
func WithToken(token string) Option {
	return func(c *Client) {
		c.token = token
	}
}

// New creates a client for the API rooted at baseURL.
func New(baseURL string, opts ...Option) (*Client, error) {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("invalid base URL %q: scheme must be http or https", baseURL)
	}

	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: defaultTimeout},
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}

	hc := *c.httpClient
	if c.timeout > 0 {
		hc.Timeout = c.timeout
	}
	if c.token != "" {
		hc.Transport = &oauth2.Transport{
			Source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: c.token, TokenType: "Bearer"}),
			Base:   c.httpClient.Transport,
		}
	}
	c.httpClient = &hc

	c.Employees = &EmployeeService{client: c}
	c.Attendance = &AttendanceService{client: c}
	c.Leaves = &LeaveService{client: c}
	c.Users = &UserService{client: c}
	c.Stats = &StatsService{client: c}
	return c, nil
}

// BaseURL returns the API root this client talks to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// WithToken returns a copy of the client that sends token on every request.
func (c *Client) WithToken(token string) *Client {
	base := *c.httpClient
	if t, ok := base.Transport.(*oauth2.Transport); ok && c.token != "" {
		base.Transport = t.Base
	}
	clone, _ := New(c.baseURL, WithHTTPClient(&base), WithLogger(c.logger), WithToken(token))
	return clone
}

// do issues one request. A 204 or an empty body leaves out untouched.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	rawURL := c.baseURL + path
	if len(query) > 0 {
		rawURL += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, rawURL, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Debug("API request failed", "method", method, "path", path, "request_id", requestID, "error", err)
		return networkError(err)
	}
	defer resp.Body.Close()

	c.logger.Debug("API request",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"duration", time.Since(start),
		"request_id", requestID,
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp)
	}

	if resp.StatusCode == http.StatusNoContent || out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return networkError(err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return &RequestError{
			Message: "Received an invalid response from the server",
			Status:  resp.StatusCode,
			Kind:    KindUnknown,
			Err:     err,
		}
	}
	return nil
}

func decodeError(resp *http.Response) error {
	reqErr := &RequestError{
		Status: resp.StatusCode,
		Kind:   kindFromStatus(resp.StatusCode),
	}

	data, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	var body map[string]any
	if len(data) > 0 && json.Unmarshal(data, &body) == nil {
		reqErr.Details = body
	}
	reqErr.Message = errorMessage(resp.StatusCode, body)
	return reqErr
}
