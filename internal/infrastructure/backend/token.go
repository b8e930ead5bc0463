package backend

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/portal-comunidad/portal-api/internal/core/domain"
)

// precheckToken rejects access tokens that are malformed, expired or lack a
// subject without a round trip. The signature is verified by the auth service.
func precheckToken(raw string, now time.Time) error {
	claims := jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(raw, &claims); err != nil {
		return fmt.Errorf("malformed access token: %w", domain.ErrUnauthenticated)
	}
	if claims.Subject == "" {
		return fmt.Errorf("access token without subject: %w", domain.ErrUnauthenticated)
	}
	if claims.ExpiresAt != nil && !claims.ExpiresAt.After(now) {
		return fmt.Errorf("access token expired: %w", domain.ErrUnauthenticated)
	}
	return nil
}
