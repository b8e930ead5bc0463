package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const siteModeKey = "portal:site:under_construction"

// SiteModeStore keeps the "under construction" flag in Redis so every
// instance sees the same value and it can be toggled without a redeploy.
// Until the key is first written, the configured default applies.
type SiteModeStore struct {
	client   *redis.Client
	fallback bool
}

// NewSiteModeStore creates a SiteModeStore wrapping the given Redis client.
func NewSiteModeStore(client *redis.Client, fallback bool) *SiteModeStore {
	return &SiteModeStore{client: client, fallback: fallback}
}

// UnderConstruction reports the stored flag, or the fallback when unset.
func (s *SiteModeStore) UnderConstruction(ctx context.Context) (bool, error) {
	v, err := s.client.Get(ctx, siteModeKey).Result()
	if errors.Is(err, redis.Nil) {
		return s.fallback, nil
	}
	if err != nil {
		return s.fallback, fmt.Errorf("site mode get: %w", err)
	}
	return v == "1", nil
}

// SetUnderConstruction persists the flag without expiry.
func (s *SiteModeStore) SetUnderConstruction(ctx context.Context, on bool) error {
	v := "0"
	if on {
		v = "1"
	}
	if err := s.client.Set(ctx, siteModeKey, v, 0).Err(); err != nil {
		return fmt.Errorf("site mode set: %w", err)
	}
	return nil
}
