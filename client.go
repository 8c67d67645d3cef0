package mailrify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/mailrify/mailrify-go/internal/api"
	"github.com/mailrify/mailrify-go/internal/apierrors"
)

// Version is the SDK version sent in the User-Agent header.
const Version = "0.3.0"

// transportFunc yields the transport for one call. Clients return their own
// transport; the package-level services build the default client lazily.
type transportFunc func() (*api.Client, error)

// Client is the blocking Mailrify client. Each call runs on the calling
// goroutine. A Client is safe for concurrent use.
type Client struct {
	Emails    *EmailsService
	Domains   *DomainsService
	Campaigns *CampaignsService
	Contacts  *ContactsService

	config    Config
	apiClient *api.Client
	mu        sync.RWMutex
	closed    bool
}

// buildAPIClient creates and configures an API client from the given config.
func buildAPIClient(resolved Config, cfg *clientConfig) (*api.Client, error) {
	ua := cfg.userAgent
	if ua == "" {
		ua = api.DefaultUserAgent + "/" + Version
	}
	return api.NewClient(api.Config{
		BaseURL:    resolved.BaseURL,
		APIKey:     resolved.APIKey,
		HTTPClient: cfg.httpClient,
		Timeout:    resolved.Timeout,
		UserAgent:  ua,
		Logger:     cfg.logger,
	})
}

// New creates a new Mailrify client. An empty apiKey falls back to
// MAILRIFY_API_KEY; if neither is set, New returns a *ConfigError wrapping
// ErrMissingAPIKey without touching the network.
func New(apiKey string, opts ...Option) (*Client, error) {
	cfg := &clientConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	resolved, err := ResolveConfig(apiKey, cfg.baseURL, cfg.timeout)
	if err != nil {
		return nil, err
	}
	if resolved.APIKey == "" {
		return nil, &ConfigError{Field: "api_key", Err: ErrMissingAPIKey}
	}

	apiClient, err := buildAPIClient(resolved, cfg)
	if err != nil {
		return nil, err
	}

	c := &Client{
		config:    resolved,
		apiClient: apiClient,
	}
	c.Emails = &EmailsService{transport: c.transport}
	c.Domains = &DomainsService{transport: c.transport}
	c.Campaigns = &CampaignsService{transport: c.transport}
	c.Contacts = &ContactsService{transport: c.transport}

	return c, nil
}

// Config returns the resolved settings the client was built with.
func (c *Client) Config() Config {
	return c.config
}

// transport returns ErrClientClosed if the client has been closed.
func (c *Client) transport() (*api.Client, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.closed {
		return nil, ErrClientClosed
	}
	return c.apiClient, nil
}

// Async returns an AsyncClient sharing this client's transport. Closing
// either closes both.
func (c *Client) Async() *AsyncClient {
	return newAsyncClient(c)
}

// Close releases pooled connections. It is safe to call more than once;
// later calls on the client fail with ErrClientClosed.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil
	}
	c.closed = true
	c.apiClient.Close()
	return nil
}

// requiredFields is implemented by response models that must carry certain
// non-empty values to be usable.
type requiredFields interface {
	missingFields() []string
}

// requiredKeys is implemented by response models whose listed JSON keys must
// be present and non-null in the body.
type requiredKeys interface {
	requiredKeys() []string
}

func checkRequired(v any, prefix string) error {
	r, ok := v.(requiredFields)
	if !ok {
		return nil
	}
	missing := r.missingFields()
	if len(missing) == 0 {
		return nil
	}
	for i := range missing {
		missing[i] = prefix + missing[i]
	}
	return missingFieldsError(missing)
}

func missingFieldsError(missing []string) error {
	return &DecodeError{Err: fmt.Errorf("response missing required fields: %s", strings.Join(missing, ", "))}
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

// decodeValue decodes one JSON value into v, which must be a pointer. A null
// value or an absent required key is a *DecodeError.
func decodeValue(raw json.RawMessage, v any, prefix string) error {
	if isNull(raw) {
		if prefix == "" {
			return &DecodeError{Err: errors.New("response body is null")}
		}
		return &DecodeError{Err: fmt.Errorf("response element %s is null", strings.TrimSuffix(prefix, "."))}
	}

	if rk, ok := v.(requiredKeys); ok {
		var fields map[string]json.RawMessage
		if err := json.Unmarshal(raw, &fields); err != nil {
			return &DecodeError{Err: err}
		}
		var missing []string
		for _, k := range rk.requiredKeys() {
			if f, ok := fields[k]; !ok || isNull(f) {
				missing = append(missing, prefix+k)
			}
		}
		if len(missing) > 0 {
			return missingFieldsError(missing)
		}
	}

	if err := json.Unmarshal(raw, v); err != nil {
		return &DecodeError{Err: err}
	}
	return checkRequired(v, prefix)
}

// call performs one API call and decodes the response into a T.
func call[T any](ctx context.Context, transport transportFunc, rt ResourceType, method, path string, query api.Query, body any) (*T, error) {
	t, err := transport()
	if err != nil {
		return nil, err
	}

	var raw json.RawMessage
	if err := t.Do(ctx, method, path, query, body, &raw); err != nil {
		return nil, apierrors.WithResourceType(err, rt)
	}
	var out T
	if err := decodeValue(raw, &out, ""); err != nil {
		return nil, err
	}
	return &out, nil
}

// callList is call for endpoints that answer with a bare JSON array.
func callList[T any](ctx context.Context, transport transportFunc, rt ResourceType, method, path string, query api.Query) ([]T, error) {
	t, err := transport()
	if err != nil {
		return nil, err
	}

	var raw json.RawMessage
	if err := t.Do(ctx, method, path, query, nil, &raw); err != nil {
		return nil, apierrors.WithResourceType(err, rt)
	}
	if isNull(raw) {
		return nil, &DecodeError{Err: errors.New("response body is null")}
	}
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, &DecodeError{Err: err}
	}
	out := make([]T, len(items))
	for i, item := range items {
		if err := decodeValue(item, &out[i], fmt.Sprintf("[%d].", i)); err != nil {
			return nil, err
		}
	}
	return out, nil
}
