package redis

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultTimeout = 5 * time.Second

// Config locates the shared site-mode Redis. Addr is either host:port or a
// redis:// (rediss:// for TLS) URL; a URL's credentials and database win over
// Password and DB.
type Config struct {
	Addr       string
	Password   string
	DB         int
	ClientName string
	Timeout    time.Duration
}

// Connect opens a client and fails fast when the server does not answer.
func Connect(ctx context.Context, cfg Config) (*redis.Client, error) {
	opts, err := clientOptions(cfg)
	if err != nil {
		return nil, err
	}
	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, opts.DialTimeout)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping %s: %w", opts.Addr, err)
	}
	return client, nil
}

// Probe adapts client to a readiness check.
func Probe(client *redis.Client) func(context.Context) error {
	return func(ctx context.Context) error {
		return client.Ping(ctx).Err()
	}
}

func clientOptions(cfg Config) (*redis.Options, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	var opts *redis.Options
	if strings.Contains(cfg.Addr, "://") {
		parsed, err := redis.ParseURL(cfg.Addr)
		if err != nil {
			return nil, fmt.Errorf("redis url: %w", err)
		}
		opts = parsed
	} else {
		opts = &redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}
	}

	opts.ClientName = cfg.ClientName
	opts.DialTimeout = timeout
	opts.ReadTimeout = timeout
	opts.WriteTimeout = timeout
	return opts, nil
}
