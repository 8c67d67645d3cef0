package apierrors

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAPIError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *APIError
		expected string
	}{
		{
			name:     "status code only",
			err:      &APIError{StatusCode: 500},
			expected: "API error 500",
		},
		{
			name:     "with message",
			err:      &APIError{StatusCode: 400, Message: "bad request"},
			expected: "API error 400: bad request",
		},
		{
			name:     "with code",
			err:      &APIError{StatusCode: 500, Code: "internal"},
			expected: "API error 500 (code: internal)",
		},
		{
			name:     "with message and code",
			err:      &APIError{StatusCode: 404, Message: "not found", Code: "missing"},
			expected: "API error 404: not found (code: missing)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestAPIError_Is(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		target   error
		expected bool
	}{
		{"400 matches ErrBadRequest", 400, ErrBadRequest, true},
		{"401 matches ErrUnauthorized", 401, ErrUnauthorized, true},
		{"403 matches ErrUnauthorized", 403, ErrUnauthorized, true},
		{"404 matches ErrNotFound", 404, ErrNotFound, true},
		{"429 matches ErrRateLimited", 429, ErrRateLimited, true},
		{"500 matches ErrServer", 500, ErrServer, true},
		{"503 matches ErrServer", 503, ErrServer, true},
		{"404 does not match ErrUnauthorized", 404, ErrUnauthorized, false},
		{"409 matches nothing", 409, ErrBadRequest, false},
		{"422 does not match ErrServer", 422, ErrServer, false},
		{"401 does not match ErrMissingAPIKey", 401, ErrMissingAPIKey, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := &APIError{StatusCode: tt.status}
			assert.Equal(t, tt.expected, errors.Is(err, tt.target))
		})
	}
}

func TestAPIError_IsThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("get email: %w", &APIError{StatusCode: 404, Code: "missing"})

	assert.ErrorIs(t, wrapped, ErrNotFound)
	var apiErr *APIError
	require.ErrorAs(t, wrapped, &apiErr)
	assert.Equal(t, "missing", apiErr.Code)
}

func TestWithResourceType(t *testing.T) {
	t.Run("nil error", func(t *testing.T) {
		assert.NoError(t, WithResourceType(nil, ResourceEmail))
	})

	t.Run("api error", func(t *testing.T) {
		orig := &APIError{StatusCode: 404, Message: "gone", Code: "missing"}
		err := WithResourceType(orig, ResourceContact)

		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, ResourceContact, apiErr.ResourceType)
		assert.Equal(t, "missing", apiErr.Code)
		assert.Equal(t, "gone", apiErr.Message)
		assert.Equal(t, ResourceUnknown, orig.ResourceType, "original error was modified")
	})

	t.Run("other error", func(t *testing.T) {
		other := errors.New("boom")
		assert.Same(t, other, WithResourceType(other, ResourceDomain))
	})
}

func TestNetworkError(t *testing.T) {
	inner := errors.New("connection refused")
	err := &NetworkError{Err: inner, Method: "GET", URL: "https://example.test/v1/emails"}

	assert.Equal(t, "network error: GET https://example.test/v1/emails: connection refused", err.Error())
	assert.ErrorIs(t, err, inner)
	assert.False(t, err.Timeout(), "refused connection is not a timeout")

	deadline := &NetworkError{Err: fmt.Errorf("do: %w", context.DeadlineExceeded)}
	assert.True(t, deadline.Timeout())
}

func TestConfigError(t *testing.T) {
	err := &ConfigError{Field: "api_key", Err: ErrMissingAPIKey}

	assert.ErrorIs(t, err, ErrInvalidConfig)
	assert.ErrorIs(t, err, ErrMissingAPIKey)
	assert.NotErrorIs(t, err, ErrUnauthorized, "missing key must not look like an authentication failure")
	assert.Equal(t, "config api_key: API key is required", err.Error())
}

func TestValidationError(t *testing.T) {
	err := &ValidationError{Errors: []string{"to is required", "from is required"}}

	assert.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, "validation failed: to is required; from is required", err.Error())
}

func TestDecodeError(t *testing.T) {
	inner := errors.New("unexpected EOF")
	err := &DecodeError{StatusCode: 200, Err: inner}

	assert.ErrorIs(t, err, inner)
	assert.Equal(t, "decode response (status 200): unexpected EOF", err.Error())
}
