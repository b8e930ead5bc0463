package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/portal-comunidad/portal-api/internal/api/metrics"
	"github.com/portal-comunidad/portal-api/internal/core/ports"
)

// PlaceholderPath is the page served while the site is under construction.
const PlaceholderPath = "/en-construccion"

// DefaultExemptPrefixes are never redirected to the placeholder page.
var DefaultExemptPrefixes = []string{
	PlaceholderPath,
	"/api",
	"/static",
	"/assets",
	"/favicon.ico",
	"/health",
	"/metrics",
	"/swagger",
}

// Construction redirects every non-exempt path to the placeholder page while
// the site-mode flag is on, and sends visitors of the placeholder back home
// once it is off. A store failure leaves the request untouched.
func Construction(store ports.SiteModeStore, exempt []string, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			path := c.Request().URL.Path

			on, err := store.UnderConstruction(c.Request().Context())
			if err != nil {
				log.Warn().Err(err).Str("path", path).Msg("site mode lookup failed")
				return next(c)
			}

			if !on {
				if path == PlaceholderPath {
					return c.Redirect(http.StatusTemporaryRedirect, "/")
				}
				return next(c)
			}

			if isExempt(path, exempt) {
				return next(c)
			}
			metrics.ConstructionRedirectsTotal.Inc()
			return c.Redirect(http.StatusTemporaryRedirect, PlaceholderPath)
		}
	}
}

// isExempt matches whole path segments: "/api" exempts "/api" and "/api/x"
// but not "/apiary".
func isExempt(path string, prefixes []string) bool {
	for _, p := range prefixes {
		if path == p || strings.HasPrefix(path, strings.TrimRight(p, "/")+"/") {
			return true
		}
	}
	return false
}
