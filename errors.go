package mailrify

import (
	"github.com/mailrify/mailrify-go/internal/apierrors"
)

// Sentinel errors for errors.Is() checks
var (
	// ErrMissingAPIKey is returned when no API key is provided or found in
	// MAILRIFY_API_KEY. It is always wrapped in a *ConfigError.
	ErrMissingAPIKey = apierrors.ErrMissingAPIKey

	// ErrInvalidConfig is matched by every *ConfigError.
	ErrInvalidConfig = apierrors.ErrInvalidConfig

	// ErrClientClosed is returned when operations are attempted on a closed client.
	ErrClientClosed = apierrors.ErrClientClosed

	// ErrValidation is matched by every *ValidationError.
	ErrValidation = apierrors.ErrValidation

	// ErrBadRequest is matched by API errors with status 400.
	ErrBadRequest = apierrors.ErrBadRequest

	// ErrUnauthorized is matched by API errors with status 401 or 403.
	ErrUnauthorized = apierrors.ErrUnauthorized

	// ErrNotFound is matched by API errors with status 404.
	ErrNotFound = apierrors.ErrNotFound

	// ErrRateLimited is matched by API errors with status 429.
	ErrRateLimited = apierrors.ErrRateLimited

	// ErrServer is matched by API errors with a 5xx status.
	ErrServer = apierrors.ErrServer
)

// MailrifyError is implemented by all SDK errors.
type MailrifyError interface {
	error
	MailrifyError() // marker method
}

// APIError represents a non-2xx response from the Mailrify API. Use
// errors.Is with ErrBadRequest, ErrUnauthorized, ErrNotFound, ErrRateLimited
// or ErrServer to classify it.
type APIError = apierrors.APIError

// NetworkError represents a failure before any response was received
// (DNS, connection refused, timeout, cancellation).
type NetworkError = apierrors.NetworkError

// DecodeError is returned when a successful response cannot be decoded into
// the expected model.
type DecodeError = apierrors.DecodeError

// ConfigError represents a local configuration failure.
type ConfigError = apierrors.ConfigError

// ValidationError is returned when a request model fails validation. No
// request is sent.
type ValidationError = apierrors.ValidationError

// ResourceType indicates which API resource an APIError relates to.
type ResourceType = apierrors.ResourceType

// Resource types attached to APIError.ResourceType by the resource services.
const (
	ResourceUnknown  = apierrors.ResourceUnknown
	ResourceEmail    = apierrors.ResourceEmail
	ResourceDomain   = apierrors.ResourceDomain
	ResourceCampaign = apierrors.ResourceCampaign
	ResourceContact  = apierrors.ResourceContact
)

// Compile-time interface checks.
var (
	_ MailrifyError = (*APIError)(nil)
	_ MailrifyError = (*NetworkError)(nil)
	_ MailrifyError = (*DecodeError)(nil)
	_ MailrifyError = (*ConfigError)(nil)
	_ MailrifyError = (*ValidationError)(nil)
)
