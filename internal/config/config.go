package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds the application's configuration values. Tags like
// `envconfig:"HTTP_SERVER_PORT"` name the environment variable; `default`
// supplies a fallback and `required:"true"` makes a variable mandatory.
type Config struct {
	AppEnv     string `envconfig:"APP_ENV" default:"development"`
	LogLevel   string `envconfig:"LOG_LEVEL" default:"info"`
	HttpServer ServerConfig
	Upstream   UpstreamConfig
	Session    SessionConfig
}

// ServerConfig holds HTTP server-specific configuration.
type ServerConfig struct {
	Port         string        `envconfig:"HTTP_SERVER_PORT" default:"8080"`
	TimeoutRead  time.Duration `envconfig:"HTTP_SERVER_TIMEOUT_READ" default:"15s"`
	TimeoutWrite time.Duration `envconfig:"HTTP_SERVER_TIMEOUT_WRITE" default:"15s"`
	TimeoutIdle  time.Duration `envconfig:"HTTP_SERVER_TIMEOUT_IDLE" default:"60s"`
}

// UpstreamConfig points at the REST API this frontend consumes.
type UpstreamConfig struct {
	APIBaseURL   string        `envconfig:"UPSTREAM_API_BASE_URL" required:"true"`
	MediaBaseURL string        `envconfig:"UPSTREAM_MEDIA_BASE_URL"` // defaults to APIBaseURL
	Timeout      time.Duration `envconfig:"UPSTREAM_TIMEOUT" default:"30s"`
}

// SessionConfig controls the signed session cookie.
type SessionConfig struct {
	Secret     string        `envconfig:"SESSION_SECRET" required:"true"`
	CookieName string        `envconfig:"SESSION_COOKIE_NAME" default:"fdw_session"`
	TTL        time.Duration `envconfig:"SESSION_TTL" default:"24h"`
	Secure     bool          `envconfig:"SESSION_COOKIE_SECURE" default:"true"`
}

// Load initializes the configuration from environment variables. It should be
// called once during application startup.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process configuration: %w", err)
	}
	if cfg.Upstream.MediaBaseURL == "" {
		cfg.Upstream.MediaBaseURL = cfg.Upstream.APIBaseURL
	}
	return &cfg, nil
}
