package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/portal-comunidad/portal-api/internal/core/domain"
	"github.com/portal-comunidad/portal-api/internal/core/ports"
)

const (
	defaultTimeout = 10 * time.Second
	maxErrorBody   = 512
)

// Config captures the settings for reaching the hosted backend.
type Config struct {
	URL        string
	AnonKey    string
	ServiceKey string
	Timeout    time.Duration
}

// Client is a thin REST client for the hosted backend's auth and data APIs.
// It holds no per-user state: every call carries its own Credential.
type Client struct {
	baseURL    *url.URL
	anonKey    string
	serviceKey string
	http       *http.Client
	log        zerolog.Logger
}

// NewClient validates cfg and builds a Client with a traced transport.
func NewClient(cfg Config, log zerolog.Logger) (*Client, error) {
	base, err := url.Parse(strings.TrimRight(cfg.URL, "/"))
	if err != nil || base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("backend: invalid url %q", cfg.URL)
	}
	if cfg.AnonKey == "" {
		return nil, errors.New("backend: anon key is required")
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &Client{
		baseURL:    base,
		anonKey:    cfg.AnonKey,
		serviceKey: cfg.ServiceKey,
		http: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		log: log,
	}, nil
}

// HasServiceKey reports whether privileged calls can be made.
func (c *Client) HasServiceKey() bool {
	return c.serviceKey != ""
}

type call struct {
	op     string // metric/log label
	method string
	path   string
	query  url.Values
	cred   ports.Credential
	body   any
}

// do executes the call and decodes a JSON response into out (when non-nil).
func (c *Client) do(ctx context.Context, in call, out any) error {
	apiKey, bearer, err := c.keys(in.cred)
	if err != nil {
		return fmt.Errorf("%s: %w", in.op, err)
	}

	var body io.Reader
	if in.body != nil {
		buf, err := json.Marshal(in.body)
		if err != nil {
			return fmt.Errorf("%s: encode body: %w", in.op, err)
		}
		body = bytes.NewReader(buf)
	}

	u := *c.baseURL
	u.Path = c.baseURL.Path + in.path
	if len(in.query) > 0 {
		u.RawQuery = in.query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, in.method, u.String(), body)
	if err != nil {
		return fmt.Errorf("%s: build request: %w", in.op, err)
	}
	req.Header.Set("apikey", apiKey)
	req.Header.Set("Authorization", "Bearer "+bearer)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	requestDuration.WithLabelValues(in.op).Observe(time.Since(start).Seconds())
	if err != nil {
		requestsTotal.WithLabelValues(in.op, "error").Inc()
		return fmt.Errorf("%s: %w: %w", in.op, domain.ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.statusError(in, resp)
	}
	requestsTotal.WithLabelValues(in.op, "ok").Inc()

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s: decode response: %w: %w", in.op, domain.ErrUpstream, err)
	}
	return nil
}

// keys returns the apikey header and bearer token for cred.
func (c *Client) keys(cred ports.Credential) (apiKey, bearer string, err error) {
	if cred.Privileged {
		if c.serviceKey == "" {
			return "", "", domain.ErrMissingServiceKey
		}
		return c.serviceKey, c.serviceKey, nil
	}
	if cred.Token != "" {
		return c.anonKey, cred.Token, nil
	}
	return c.anonKey, c.anonKey, nil
}

// statusError maps a non-2xx response. A 401 or 403 on an end-user session
// (expired, revoked or signed out) is an authentication failure; anything
// else, including a rejected service key, is an upstream failure.
func (c *Client) statusError(in call, resp *http.Response) error {
	snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

	rejected := resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden
	if rejected && !in.cred.Privileged && in.cred.Token != "" {
		c.log.Debug().
			Str("operation", in.op).
			Int("status", resp.StatusCode).
			Str("body", string(snippet)).
			Msg("session rejected by backend")
		requestsTotal.WithLabelValues(in.op, "unauthorized").Inc()
		return fmt.Errorf("%s: %w", in.op, domain.ErrUnauthenticated)
	}

	requestsTotal.WithLabelValues(in.op, "error").Inc()
	c.log.Warn().
		Str("operation", in.op).
		Int("status", resp.StatusCode).
		Str("body", string(snippet)).
		Msg("backend request failed")
	return fmt.Errorf("%s: %w: status %d", in.op, domain.ErrUpstream, resp.StatusCode)
}

// Ping checks that the auth service answers.
func (c *Client) Ping(ctx context.Context) error {
	return c.do(ctx, call{
		op:     "health",
		method: http.MethodGet,
		path:   "/auth/v1/health",
	}, nil)
}
