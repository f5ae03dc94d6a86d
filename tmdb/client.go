package tmdb

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// DefaultBaseURL is the TMDB API v3 root
const DefaultBaseURL = "https://api.themoviedb.org/3"

// maxErrorBody bounds how much of a failed response body ends up in an error
const maxErrorBody = 512

// Config holds the fixed per-process settings of the client
type Config struct {
	BaseURL   string
	APIKey    string
	Language  string
	UserAgent string
	Headers   map[string]string
}

// Client represents a TMDB API client. It is safe for concurrent use and
// carries no per-request state.
type Client struct {
	baseURL    string
	defaults   Params
	headers    http.Header
	httpClient *http.Client
	logger     zerolog.Logger
}

// NewClient creates a new TMDB client
func NewClient(cfg Config, logger zerolog.Logger, opts ...Option) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("%w: base URL is required", ErrInvalidConfig)
	}
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("%w: API key is required", ErrInvalidConfig)
	}
	if _, err := url.Parse(cfg.BaseURL); err != nil {
		return nil, fmt.Errorf("%w: invalid base URL: %v", ErrInvalidConfig, err)
	}

	defaults := Params{{Key: "api_key", Value: cfg.APIKey}}
	if cfg.Language != "" {
		defaults = append(defaults, Param{Key: "language", Value: cfg.Language})
	}

	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = "reloop"
	}

	headers := make(http.Header)
	for key, value := range cfg.Headers {
		headers.Set(key, value)
	}
	headers.Set("Accept", "application/json")
	headers.Set("User-Agent", userAgent)

	client := &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		defaults:   defaults,
		headers:    headers,
		httpClient: &http.Client{},
		logger:     logger.With().Str("component", "tmdb").Logger(),
	}

	for _, opt := range opts {
		opt(client)
	}

	return client, nil
}

// BaseURL returns the configured upstream root
func (c *Client) BaseURL() string {
	return c.baseURL
}

// GetJSON performs a GET on path with the default parameters plus extra and
// decodes the JSON body into out.
func (c *Client) GetJSON(ctx context.Context, path string, extra url.Values, out any) error {
	body, err := c.doRequest(ctx, path, extra)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(body, out); err != nil {
		return &TransportError{Op: "decode", Path: path, Err: err}
	}

	return nil
}

// doRequest performs an HTTP GET and returns the raw body of a 2xx response
func (c *Client) doRequest(ctx context.Context, path string, extra url.Values) ([]byte, error) {
	params, dropped := mergeParams(c.defaults, extra)
	if len(dropped) > 0 {
		c.logger.Debug().
			Strs("keys", dropped).
			Str("path", path).
			Msg("Ignoring query parameters that shadow client defaults")
	}

	endpoint := c.baseURL + path
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, &TransportError{Op: "build", Path: path, Err: err}
	}
	for key, values := range c.headers {
		req.Header[key] = values
	}

	start := time.Now()
	defer func() {
		upstreamRequestDuration.WithLabelValues(path).Observe(time.Since(start).Seconds())
	}()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		upstreamRequestsTotal.WithLabelValues(path, "network_error").Inc()
		return nil, &TransportError{Op: "get", Path: path, Err: err}
	}
	defer resp.Body.Close()

	upstreamRequestsTotal.WithLabelValues(path, strconv.Itoa(resp.StatusCode)).Inc()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Op: "read", Path: path, StatusCode: resp.StatusCode, Err: err}
	}

	c.logger.Debug().
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(start)).
		Msg("TMDB request completed")

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &TransportError{
			Op:         "get",
			Path:       path,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("%w: %s", ErrUnexpectedStatus, statusMessage(body)),
		}
	}

	return body, nil
}

// apiStatus is the error envelope TMDB sends with failed responses
type apiStatus struct {
	StatusCode    int    `json:"status_code"`
	StatusMessage string `json:"status_message"`
}

// statusMessage extracts TMDB's status message, falling back to the raw body
func statusMessage(body []byte) string {
	var status apiStatus
	if err := json.Unmarshal(body, &status); err == nil && status.StatusMessage != "" {
		return status.StatusMessage
	}

	msg := strings.TrimSpace(string(body))
	if len(msg) > maxErrorBody {
		msg = msg[:maxErrorBody] + "..."
	}
	return msg
}

// Get fetches path and decodes the response into a T
func Get[T any](ctx context.Context, getter JSONGetter, path string, extra url.Values) (T, error) {
	var out T
	if err := getter.GetJSON(ctx, path, extra, &out); err != nil {
		var zero T
		return zero, err
	}
	return out, nil
}
