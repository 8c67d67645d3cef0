package mailrify

import (
	"fmt"
	"math"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/mailrify/mailrify-go/internal/api"
)

// Environment variables consulted when a setting is not given explicitly.
const (
	EnvAPIKey  = "MAILRIFY_API_KEY"
	EnvBaseURL = "MAILRIFY_BASE_URL"
	EnvTimeout = "MAILRIFY_TIMEOUT"
)

// Defaults used when neither an explicit value nor an environment variable
// is present.
const (
	DefaultBaseURL = api.DefaultBaseURL
	DefaultTimeout = api.DefaultTimeout
)

// Config holds the resolved connection settings for a client.
type Config struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
}

type envConnection struct {
	APIKey  string `env:"MAILRIFY_API_KEY"`
	BaseURL string `env:"MAILRIFY_BASE_URL" envDefault:"https://app.mailrify.com/api"`
}

// envTimeout is parsed on its own so a malformed MAILRIFY_TIMEOUT only
// matters when no explicit timeout was given.
type envTimeout struct {
	Seconds float64 `env:"MAILRIFY_TIMEOUT" envDefault:"30"`
}

// maxTimeoutSeconds is the largest timeout a time.Duration can hold.
const maxTimeoutSeconds = float64(math.MaxInt64) / float64(time.Second)

// ResolveConfig derives connection settings. Explicit non-zero arguments win
// over environment variables, which win over the defaults.
//
// A missing API key is not an error here; New and the default client report
// ErrMissingAPIKey before any request is attempted. An unparsable or
// non-positive MAILRIFY_TIMEOUT, one too large for a time.Duration, or a
// negative explicit timeout yields a *ConfigError.
func ResolveConfig(apiKey, baseURL string, timeout time.Duration) (Config, error) {
	var conn envConnection
	if err := env.Parse(&conn); err != nil {
		return Config{}, &ConfigError{Err: err}
	}

	cfg := Config{
		APIKey:  conn.APIKey,
		BaseURL: conn.BaseURL,
		Timeout: timeout,
	}
	if apiKey != "" {
		cfg.APIKey = apiKey
	}
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}

	switch {
	case timeout < 0:
		return Config{}, &ConfigError{Field: "timeout", Err: fmt.Errorf("timeout must be positive, got %v", timeout)}
	case timeout == 0:
		var t envTimeout
		if err := env.Parse(&t); err != nil {
			return Config{}, &ConfigError{Field: "timeout", Err: fmt.Errorf("parse %s: %w", EnvTimeout, err)}
		}
		if math.IsNaN(t.Seconds) || t.Seconds <= 0 {
			return Config{}, &ConfigError{Field: "timeout", Err: fmt.Errorf("%s must be positive, got %v", EnvTimeout, t.Seconds)}
		}
		if t.Seconds >= maxTimeoutSeconds {
			return Config{}, &ConfigError{Field: "timeout", Err: fmt.Errorf("%s is out of range, got %v", EnvTimeout, t.Seconds)}
		}
		cfg.Timeout = time.Duration(t.Seconds * float64(time.Second))
	}

	return cfg, nil
}

// ConfigFromEnv resolves settings from the environment alone.
func ConfigFromEnv() (Config, error) {
	return ResolveConfig("", "", 0)
}

// LoadDotEnv loads .env files into the process environment without
// overriding variables that are already set. With no paths it reads ".env"
// in the working directory.
func LoadDotEnv(paths ...string) error {
	if err := godotenv.Load(paths...); err != nil {
		return fmt.Errorf("load env file: %w", err)
	}
	return nil
}
