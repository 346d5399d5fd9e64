package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/orderdesk/orderdesk/internal/domain"
)

const requestIDHeader = "X-Request-ID"

// Client implements domain.APIClient over HTTP. Each call makes exactly one
// attempt: no retries, no caching.
type Client struct {
	baseURL   string
	http      *http.Client
	logger    *log.Logger
	userAgent string
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying *http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithLogger sets the logger used for per-request debug lines.
func WithLogger(l *log.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// New creates a Client for the API at cfg.BaseURL.
func New(cfg domain.ClientConfig, opts ...Option) *Client {
	cfg = cfg.WithDefaults()
	c := &Client{
		baseURL:   strings.TrimRight(cfg.BaseURL, "/"),
		http:      &http.Client{},
		logger:    log.New(io.Discard),
		userAgent: cfg.UserAgent,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the API root requests are sent to.
func (c *Client) BaseURL() string { return c.baseURL }

// Get issues GET path with params appended as a query string.
func (c *Client) Get(ctx context.Context, path string, params *domain.Params, out any) error {
	u, err := c.buildURL(path, params)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	return c.do(req, out)
}

// Post sends body as JSON to path.
func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	u, err := c.buildURL(path, nil)
	if err != nil {
		return err
	}
	data, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encoding request body: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

func (c *Client) buildURL(path string, params *domain.Params) (string, error) {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	u, err := url.Parse(c.baseURL + path)
	if err != nil {
		return "", fmt.Errorf("building url for %s: %w", path, err)
	}
	if params.Len() > 0 {
		q := u.Query()
		for k, vs := range params.Values() {
			for _, v := range vs {
				q.Add(k, v)
			}
		}
		u.RawQuery = q.Encode()
	}
	return u.String(), nil
}

func (c *Client) do(req *http.Request, out any) error {
	id := uuid.NewString()
	req.Header.Set(requestIDHeader, id)
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Debug("request failed", "method", req.Method, "url", req.URL.String(), "request_id", id, "err", err)
		return &domain.APIError{Message: fmt.Sprintf("Request failed: %v", err)}
	}
	defer resp.Body.Close()

	c.logger.Debug("api call",
		"method", req.Method,
		"url", req.URL.String(),
		"status", resp.StatusCode,
		"duration", time.Since(start).Round(time.Millisecond),
		"request_id", id,
	)
	return handleResponse(resp, out)
}

// handleResponse turns a failure status into *domain.APIError and decodes
// a JSON success body into out.
func handleResponse(resp *http.Response, out any) error {
	body, err := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		if err != nil {
			return &domain.APIError{Status: resp.StatusCode, Message: domain.StatusMessage(resp.StatusCode)}
		}
		return &domain.APIError{Status: resp.StatusCode, Message: failureMessage(resp.StatusCode, body)}
	}
	if err != nil {
		return &domain.APIError{Status: resp.StatusCode, Message: fmt.Sprintf("Reading response: %v", err)}
	}

	if !strings.Contains(resp.Header.Get("Content-Type"), "application/json") {
		return nil
	}
	if out == nil || len(bytes.TrimSpace(body)) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return &domain.APIError{Status: resp.StatusCode, Message: fmt.Sprintf("Invalid response body: %v", err)}
	}
	return nil
}

// failureMessage prefers the server's "detail" field. A body that is not
// JSON falls back to the generic status message.
func failureMessage(status int, body []byte) string {
	var data any
	if err := json.Unmarshal(body, &data); err != nil {
		return domain.StatusMessage(status)
	}
	if obj, ok := data.(map[string]any); ok {
		switch detail := obj["detail"].(type) {
		case string:
			if detail != "" {
				return detail
			}
		case nil:
		default:
			if b, err := json.Marshal(detail); err == nil {
				return string(b)
			}
		}
	}
	if data == nil {
		return domain.StatusMessage(status)
	}
	b, err := json.Marshal(data)
	if err != nil {
		return domain.StatusMessage(status)
	}
	return string(b)
}
