// Package apierrors provides shared error types for the Mailrify client.
package apierrors

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"
)

// Sentinel errors for errors.Is() checks
var (
	// ErrMissingAPIKey is returned when no API key could be resolved.
	ErrMissingAPIKey = errors.New("API key is required")

	// ErrInvalidConfig is matched by every *ConfigError.
	ErrInvalidConfig = errors.New("invalid client configuration")

	// ErrClientClosed is returned when operations are attempted on a closed client.
	ErrClientClosed = errors.New("client has been closed")

	// ErrValidation is matched by every *ValidationError.
	ErrValidation = errors.New("request validation failed")

	// ErrBadRequest is matched by API errors with status 400.
	ErrBadRequest = errors.New("bad request")

	// ErrUnauthorized is matched by API errors with status 401 or 403.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrNotFound is matched by API errors with status 404.
	ErrNotFound = errors.New("resource not found")

	// ErrRateLimited is matched by API errors with status 429.
	ErrRateLimited = errors.New("rate limit exceeded")

	// ErrServer is matched by API errors with a 5xx status.
	ErrServer = errors.New("server error")
)

// ResourceType indicates which type of resource an error relates to.
type ResourceType string

const (
	// ResourceUnknown indicates the resource type is not specified.
	ResourceUnknown ResourceType = ""
	// ResourceEmail indicates the error relates to an email.
	ResourceEmail ResourceType = "email"
	// ResourceDomain indicates the error relates to a domain.
	ResourceDomain ResourceType = "domain"
	// ResourceCampaign indicates the error relates to a campaign.
	ResourceCampaign ResourceType = "campaign"
	// ResourceContact indicates the error relates to a contact.
	ResourceContact ResourceType = "contact"
)

// APIError represents a non-2xx response from the Mailrify API.
type APIError struct {
	StatusCode   int
	Message      string
	Code         string // machine-readable code, if the service sent one
	ResourceType ResourceType
}

func (e *APIError) Error() string {
	if e.Code != "" {
		if e.Message != "" {
			return fmt.Sprintf("API error %d: %s (code: %s)", e.StatusCode, e.Message, e.Code)
		}
		return fmt.Sprintf("API error %d (code: %s)", e.StatusCode, e.Code)
	}
	if e.Message != "" {
		return fmt.Sprintf("API error %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("API error %d", e.StatusCode)
}

// MailrifyError implements the MailrifyError interface.
func (e *APIError) MailrifyError() {}

// Is implements errors.Is for sentinel error matching.
func (e *APIError) Is(target error) bool {
	switch {
	case e.StatusCode == 400:
		return target == ErrBadRequest
	case e.StatusCode == 401, e.StatusCode == 403:
		return target == ErrUnauthorized
	case e.StatusCode == 404:
		return target == ErrNotFound
	case e.StatusCode == 429:
		return target == ErrRateLimited
	case e.StatusCode >= 500 && e.StatusCode <= 599:
		return target == ErrServer
	}
	return false
}

// WithResourceType returns a copy of the error with the resource type set.
// If the error is not an *APIError, it is returned unchanged.
func WithResourceType(err error, rt ResourceType) error {
	if err == nil {
		return nil
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return &APIError{
			StatusCode:   apiErr.StatusCode,
			Message:      apiErr.Message,
			Code:         apiErr.Code,
			ResourceType: rt,
		}
	}
	return err
}

// NetworkError represents a network-level failure: DNS, dial, TLS, timeout
// or cancellation before a response was received.
type NetworkError struct {
	Err    error
	Method string
	URL    string
}

func (e *NetworkError) Error() string {
	if e.Method != "" {
		return fmt.Sprintf("network error: %s %s: %v", e.Method, e.URL, e.Err)
	}
	return fmt.Sprintf("network error: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *NetworkError) Unwrap() error {
	return e.Err
}

// MailrifyError implements the MailrifyError interface.
func (e *NetworkError) MailrifyError() {}

// Timeout reports whether the failure was caused by a deadline.
func (e *NetworkError) Timeout() bool {
	if errors.Is(e.Err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(e.Err, &ne) && ne.Timeout()
}

// DecodeError is returned when a 2xx response body cannot be turned into the
// expected response model.
type DecodeError struct {
	StatusCode int
	Err        error
}

func (e *DecodeError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("decode response: %v", e.Err)
	}
	return fmt.Sprintf("decode response (status %d): %v", e.StatusCode, e.Err)
}

// Unwrap returns the underlying error.
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// MailrifyError implements the MailrifyError interface.
func (e *DecodeError) MailrifyError() {}

// ConfigError is a local configuration failure. It never involves the network.
type ConfigError struct {
	Field string
	Err   error
}

func (e *ConfigError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("config: %v", e.Err)
	}
	return fmt.Sprintf("config %s: %v", e.Field, e.Err)
}

// Unwrap returns the underlying error.
func (e *ConfigError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for sentinel error matching.
func (e *ConfigError) Is(target error) bool {
	return target == ErrInvalidConfig
}

// MailrifyError implements the MailrifyError interface.
func (e *ConfigError) MailrifyError() {}

// ValidationError contains multiple validation failures for a request model.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Errors, "; ")
}

// Is implements errors.Is for sentinel error matching.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// MailrifyError implements the MailrifyError interface.
func (e *ValidationError) MailrifyError() {}
