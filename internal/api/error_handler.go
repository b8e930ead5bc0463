package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/portal-comunidad/portal-api/internal/core/domain"
)

// Client-facing messages. The dashboard front end matches on these strings.
const (
	msgUnauthenticated   = "No autorizado"
	msgForbidden         = "No tienes permisos para acceder al dashboard"
	msgNotFound          = "Recurso no encontrado"
	msgMissingServiceKey = "Configuración de servidor incompleta"
	msgInternal          = "Error interno del servidor"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error string `json:"error"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps domain errors to their HTTP status codes and Spanish messages.
//   - Logs server-side failures without leaking details to the client.
//   - Renders a consistent JSON envelope: {"error": "<message>"}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(code)
			return
		}
		_ = c.JSON(code, errorResponse{Error: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, router 404/405) and handler-specific messages.
	var he *echo.HTTPError
	if errors.As(err, &he) {
		if he.Code >= http.StatusInternalServerError {
			logFailure(log, c, he.Code, he.Unwrap())
		}
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	switch {
	case errors.Is(err, domain.ErrUnauthenticated):
		return http.StatusUnauthorized, msgUnauthenticated
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, msgForbidden
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, msgNotFound
	case errors.Is(err, domain.ErrMissingServiceKey):
		logFailure(log, c, http.StatusInternalServerError, err)
		return http.StatusInternalServerError, msgMissingServiceKey
	}

	logFailure(log, c, http.StatusInternalServerError, err)
	return http.StatusInternalServerError, msgInternal
}

func logFailure(log zerolog.Logger, c echo.Context, status int, cause error) {
	log.Error().
		Err(cause).
		Int("status", status).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Str("request_id", c.Response().Header().Get(echo.HeaderXRequestID)).
		Msg("request failed")
}
