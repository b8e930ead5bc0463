package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/portal-comunidad/portal-api/internal/api/metrics"
	"github.com/portal-comunidad/portal-api/internal/core/domain"
	"github.com/portal-comunidad/portal-api/internal/core/ports"
)

// RequireDashboard admits only callers that pass the dashboard gate. It must
// run after Session.
func RequireDashboard(access ports.AccessService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			caller := CallerFrom(c)
			if caller == nil {
				metrics.AccessDecisionsTotal.WithLabelValues("unauthenticated").Inc()
				return domain.ErrUnauthenticated
			}
			if !access.Access(caller).HasAccess {
				metrics.AccessDecisionsTotal.WithLabelValues("denied").Inc()
				return domain.ErrForbidden
			}
			metrics.AccessDecisionsTotal.WithLabelValues("granted").Inc()
			return next(c)
		}
	}
}
