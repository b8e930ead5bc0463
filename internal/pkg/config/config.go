package config

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// UnderConstruction is the initial site mode when no flag is stored in Redis.
	UnderConstruction bool `env:"UNDER_CONSTRUCTION, default=false"`
	// DefaultRoleName is the role that grants no dashboard access.
	DefaultRoleName string `env:"DEFAULT_ROLE_NAME, default=usuario"`
	// SessionCookie overrides the auth cookie name. When empty it is derived
	// from the backend project reference: sb-<ref>-auth-token.
	SessionCookie string `env:"SESSION_COOKIE_NAME"`

	RateLimitPerMinute    int `env:"RATE_LIMIT_PER_MINUTE,   default=120"`
	RoleLookupConcurrency int `env:"ROLE_LOOKUP_CONCURRENCY, default=8"`

	Backend   BackendConfig
	Redis     RedisConfig
	Telemetry TelemetryConfig
}

type BackendConfig struct {
	URL        string        `env:"BACKEND_URL"`
	AnonKey    string        `env:"BACKEND_ANON_KEY"`
	ServiceKey string        `env:"BACKEND_SERVICE_ROLE_KEY"`
	Timeout    time.Duration `env:"BACKEND_TIMEOUT, default=10s"`
}

// RedisConfig is optional: with an empty Addr the site-mode flag lives in process.
// Addr accepts host:port or a redis:// URL.
type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB, default=0"`
}

// TelemetryConfig selects the trace exporter: OTLP/HTTP when Endpoint is set,
// pretty-printed spans on stderr when Stdout is true, otherwise none.
type TelemetryConfig struct {
	Endpoint    string `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	ServiceName string `env:"OTEL_SERVICE_NAME, default=portal-api"`
	Stdout      bool   `env:"OTEL_TRACES_STDOUT, default=false"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() (*Config, error) {
	return load(envconfig.OsLookuper())
}

func load(l envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(context.Background(), &envconfig.Config{
		Target:   &cfg,
		Lookuper: l,
	}); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}

// MustLoad is Load for process entrypoints.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return cfg
}

// Validate reports settings the server cannot start without. The service key
// is optional; admin endpoints answer 500 when it is missing.
func (c *Config) Validate() error {
	var errs []error
	if c.Backend.URL == "" {
		errs = append(errs, errors.New("BACKEND_URL is required"))
	} else if u, err := url.Parse(c.Backend.URL); err != nil || u.Scheme == "" || u.Host == "" {
		errs = append(errs, fmt.Errorf("BACKEND_URL %q is not an absolute URL", c.Backend.URL))
	}
	if c.Backend.AnonKey == "" {
		errs = append(errs, errors.New("BACKEND_ANON_KEY is required"))
	}
	if c.RateLimitPerMinute < 0 {
		errs = append(errs, errors.New("RATE_LIMIT_PER_MINUTE must not be negative"))
	}
	return errors.Join(errs...)
}

func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Env, "production")
}

// SessionCookieName returns the configured cookie name or the one the hosted
// backend's SSR helpers use for this project.
func (c *Config) SessionCookieName() string {
	if c.SessionCookie != "" {
		return c.SessionCookie
	}
	u, err := url.Parse(c.Backend.URL)
	if err != nil || u.Hostname() == "" {
		return "sb-auth-token"
	}
	ref, _, _ := strings.Cut(u.Hostname(), ".")
	return "sb-" + ref + "-auth-token"
}
