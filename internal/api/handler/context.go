package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/portal-comunidad/portal-api/internal/api/middleware"
	"github.com/portal-comunidad/portal-api/internal/core/domain"
)

// ctxCaller returns the caller resolved by the Session middleware. Routes
// mounted behind a required session fail fast when it is missing, which means
// the middleware was not wired.
func ctxCaller(c echo.Context) (*domain.Caller, error) {
	caller := middleware.CallerFrom(c)
	if caller == nil {
		return nil, domain.ErrUnauthenticated
	}
	return caller, nil
}
