package api

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

	"github.com/mailrify/mailrify-go/internal/apierrors"
)

// Default values for client configuration.
const (
	DefaultBaseURL   = "https://app.mailrify.com/api"
	DefaultTimeout   = 30 * time.Second
	DefaultUserAgent = "mailrify-go"

	// PathPrefix is the API version prefix joined between the base URL and
	// every resource path.
	PathPrefix = "/v1"

	maxResponseSize = 10 << 20
)

// Config holds configuration for creating a new API client.
type Config struct {
	// BaseURL is the API root, e.g. https://app.mailrify.com/api.
	BaseURL string
	// APIKey is sent as a bearer token on every request.
	APIKey string
	// HTTPClient is used as-is when set. Its transport is not closed by Close.
	HTTPClient *http.Client
	// Timeout bounds a whole call (connect, write and read). Zero uses DefaultTimeout.
	Timeout time.Duration
	// UserAgent overrides DefaultUserAgent.
	UserAgent string
	// Logger receives one record per call. Nil discards.
	Logger *slog.Logger
}

// Client is the HTTP API client. It is safe for concurrent use; the pooled
// transport is the only shared state.
type Client struct {
	baseURL       string
	apiKey        string
	userAgent     string
	timeout       time.Duration
	httpClient    *http.Client
	ownsTransport bool
	logger        *slog.Logger
}

// NewClient creates a new API client from cfg.
func NewClient(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, &apierrors.ConfigError{Field: "api_key", Err: apierrors.ErrMissingAPIKey}
	}
	if cfg.BaseURL == "" {
		return nil, &apierrors.ConfigError{Field: "base_url", Err: fmt.Errorf("base URL is required")}
	}
	u, err := url.Parse(cfg.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, &apierrors.ConfigError{Field: "base_url", Err: fmt.Errorf("invalid base URL %q", cfg.BaseURL)}
	}
	if cfg.Timeout < 0 {
		return nil, &apierrors.ConfigError{Field: "timeout", Err: fmt.Errorf("timeout must be positive, got %v", cfg.Timeout)}
	}

	c := &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		userAgent:  cfg.UserAgent,
		timeout:    cfg.Timeout,
		httpClient: cfg.HTTPClient,
		logger:     cfg.Logger,
	}
	if c.timeout == 0 {
		c.timeout = DefaultTimeout
	}
	if c.userAgent == "" {
		c.userAgent = DefaultUserAgent
	}
	if c.logger == nil {
		c.logger = slog.New(slog.DiscardHandler)
	}
	if c.httpClient == nil {
		transport := http.DefaultTransport.(*http.Transport).Clone()
		c.httpClient = &http.Client{
			Transport: transport,
			Timeout:   c.timeout,
		}
		c.ownsTransport = true
	}

	return c, nil
}

// BaseURL returns the configured base URL without a trailing slash.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Timeout returns the per-call timeout.
func (c *Client) Timeout() time.Duration {
	return c.timeout
}

// Close releases idle pooled connections. Transports supplied through
// Config.HTTPClient are left alone. Close may be called more than once.
func (c *Client) Close() {
	if c.ownsTransport {
		c.httpClient.CloseIdleConnections()
	}
}

// NewRequest builds the request for one logical call without sending it.
// query is encoded with Query.Encode; body, when non-nil, is marshaled as JSON.
func (c *Client) NewRequest(ctx context.Context, method, path string, query Query, body any) (*http.Request, error) {
	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	fullURL := c.baseURL + PathPrefix + path
	if qs := query.Encode(); qs != "" {
		fullURL += "?" + qs
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return req, nil
}

// Do executes one API call. On a 2xx response the body is decoded into
// result (unless result is nil). Any other status yields an *apierrors.APIError;
// failures before a response arrives yield an *apierrors.NetworkError.
func (c *Client) Do(ctx context.Context, method, path string, query Query, body, result any) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := c.NewRequest(ctx, method, path, query, body)
	if err != nil {
		return err
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.WarnContext(ctx, "mailrify request failed",
			slog.String("method", method),
			slog.String("path", path),
			slog.Duration("duration", time.Since(start)),
			slog.Any("error", err),
		)
		return &apierrors.NetworkError{Err: err, Method: method, URL: req.URL.String()}
	}
	// Drain before closing so the connection goes back to the pool.
	defer func() {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseSize))
		resp.Body.Close()
	}()

	level := slog.LevelDebug
	if !isSuccess(resp.StatusCode) {
		level = slog.LevelWarn
	}
	c.logger.Log(ctx, level, "mailrify request",
		slog.String("method", method),
		slog.String("path", path),
		slog.Int("status", resp.StatusCode),
		slog.Duration("duration", time.Since(start)),
	)

	if !isSuccess(resp.StatusCode) {
		return parseErrorResponse(resp)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return &apierrors.NetworkError{Err: err, Method: method, URL: req.URL.String()}
	}
	if result == nil {
		return nil
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return &apierrors.DecodeError{StatusCode: resp.StatusCode, Err: fmt.Errorf("empty response body")}
	}
	if err := json.Unmarshal(data, result); err != nil {
		return &apierrors.DecodeError{StatusCode: resp.StatusCode, Err: err}
	}
	return nil
}

func isSuccess(status int) bool {
	return status >= 200 && status < 300
}
