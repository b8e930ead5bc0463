package middleware

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/portal-comunidad/portal-api/internal/core/domain"
	"github.com/portal-comunidad/portal-api/internal/core/ports"
)

// callerKey is the echo context key holding the resolved *domain.Caller.
const callerKey = "caller"

// maxCookieChunks bounds the number of split cookie parts read.
const maxCookieChunks = 16

// Session resolves the session cookie into a caller and stores it on the
// context. When required is false a missing or rejected session continues as
// an anonymous (nil) caller; when true it fails with domain.ErrUnauthenticated.
func Session(access ports.AccessService, cookieName string, required bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := SessionToken(c.Request(), cookieName)
			ctx := c.Request().Context()

			var (
				caller *domain.Caller
				err    error
			)
			if required {
				caller, err = access.Authenticate(ctx, token)
			} else {
				caller, err = access.Identify(ctx, token)
			}
			if err != nil {
				return err
			}

			c.Set(callerKey, caller)
			return next(c)
		}
	}
}

// CallerFrom returns the caller stored by Session, or nil for anonymous requests.
func CallerFrom(c echo.Context) *domain.Caller {
	caller, _ := c.Get(callerKey).(*domain.Caller)
	return caller
}

// SessionToken extracts the access token from the auth cookie, which may be a
// bare token, a JSON session (optionally "base64-" prefixed) or such a value
// split across name.0, name.1, ... cookies. An Authorization bearer header is
// accepted as a fallback for API clients.
func SessionToken(r *http.Request, cookieName string) string {
	if raw := cookieValue(r, cookieName); raw != "" {
		if token := parseSessionCookie(raw); token != "" {
			return token
		}
	}

	authHeader := r.Header.Get(echo.HeaderAuthorization)
	scheme, token, ok := strings.Cut(authHeader, " ")
	if ok && strings.EqualFold(scheme, "bearer") {
		return strings.TrimSpace(token)
	}
	return ""
}

func cookieValue(r *http.Request, name string) string {
	if c, err := r.Cookie(name); err == nil {
		return c.Value
	}

	var b strings.Builder
	for i := 0; i < maxCookieChunks; i++ {
		c, err := r.Cookie(name + "." + strconv.Itoa(i))
		if err != nil {
			break
		}
		b.WriteString(c.Value)
	}
	return b.String()
}

func parseSessionCookie(raw string) string {
	if unescaped, err := url.QueryUnescape(raw); err == nil {
		raw = unescaped
	}

	if encoded, ok := strings.CutPrefix(raw, "base64-"); ok {
		decoded, err := base64.RawURLEncoding.DecodeString(strings.TrimRight(encoded, "="))
		if err != nil {
			decoded, err = base64.StdEncoding.DecodeString(encoded)
			if err != nil {
				return ""
			}
		}
		raw = string(decoded)
	}
	raw = strings.TrimSpace(raw)

	switch {
	case strings.HasPrefix(raw, "{"):
		var session struct {
			AccessToken string `json:"access_token"`
		}
		if err := json.Unmarshal([]byte(raw), &session); err != nil {
			return ""
		}
		return session.AccessToken
	case strings.HasPrefix(raw, "["):
		var parts []any
		if err := json.Unmarshal([]byte(raw), &parts); err != nil || len(parts) == 0 {
			return ""
		}
		token, _ := parts[0].(string)
		return token
	case strings.Count(raw, ".") == 2:
		return raw
	default:
		return ""
	}
}
