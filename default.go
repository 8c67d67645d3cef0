package mailrify

import (
	"sync"

	"github.com/mailrify/mailrify-go/internal/api"
)

// defaultClientState owns the process-wide client behind the package-level
// services. The client is built on first use from the key given to SetAPIKey.
type defaultClientState struct {
	mu     sync.Mutex
	apiKey string
	opts   []Option
	client *Client
}

var defaultState = &defaultClientState{}

// Package-level services backed by the default client.
//
//	mailrify.SetAPIKey("key")
//	resp, err := mailrify.Emails.Send(ctx, req)
var (
	Emails    = &EmailsService{transport: defaultState.transport}
	Domains   = &DomainsService{transport: defaultState.transport}
	Campaigns = &CampaignsService{transport: defaultState.transport}
	Contacts  = &ContactsService{transport: defaultState.transport}
)

// SetAPIKey sets the key used by the package-level services. Changing the
// key discards the cached default client.
func SetAPIKey(key string) {
	s := defaultState
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.apiKey == key {
		return
	}
	s.apiKey = key
	s.dropLocked()
}

// APIKey returns the key set with SetAPIKey.
func APIKey() string {
	s := defaultState
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.apiKey
}

// SetDefaultOptions sets the options used when the default client is built
// and discards the cached one.
func SetDefaultOptions(opts ...Option) {
	s := defaultState
	s.mu.Lock()
	defer s.mu.Unlock()
	s.opts = append([]Option(nil), opts...)
	s.dropLocked()
}

// DefaultClient returns the default client, building it if needed. It fails
// with ErrMissingAPIKey until SetAPIKey has been called with a non-empty key.
func DefaultClient() (*Client, error) {
	return defaultState.get()
}

// ResetDefaultClient closes and discards the default client. The next
// package-level call builds a fresh one from the current key and options.
func ResetDefaultClient() {
	s := defaultState
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dropLocked()
}

func (s *defaultClientState) get() (*Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.client != nil {
		return s.client, nil
	}
	if s.apiKey == "" {
		return nil, &ConfigError{Field: "api_key", Err: ErrMissingAPIKey}
	}
	c, err := New(s.apiKey, s.opts...)
	if err != nil {
		return nil, err
	}
	s.client = c
	return c, nil
}

func (s *defaultClientState) transport() (*api.Client, error) {
	c, err := s.get()
	if err != nil {
		return nil, err
	}
	return c.transport()
}

func (s *defaultClientState) dropLocked() {
	if s.client != nil {
		_ = s.client.Close()
		s.client = nil
	}
}
