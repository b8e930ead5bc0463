package middleware

import (
	"net/http"
	"time"

	"github.com/go-chi/httprate"
	"github.com/labstack/echo/v4"
	"github.com/unrolled/secure"
)

// SecureHeaders sets the standard browser hardening headers. HTTPS redirects
// are only enforced in production, behind the proxy's X-Forwarded-Proto.
func SecureHeaders(production bool) echo.MiddlewareFunc {
	s := secure.New(secure.Options{
		FrameDeny:          true,
		ContentTypeNosniff: true,
		BrowserXssFilter:   true,
		ReferrerPolicy:     "strict-origin-when-cross-origin",
		SSLRedirect:        production,
		SSLProxyHeaders:    map[string]string{"X-Forwarded-Proto": "https"},
		IsDevelopment:      !production,
	})
	return echo.WrapMiddleware(s.Handler)
}

// RateLimit limits requests per client IP. A non-positive limit disables it.
func RateLimit(perMinute int) echo.MiddlewareFunc {
	if perMinute <= 0 {
		return func(next echo.HandlerFunc) echo.HandlerFunc { return next }
	}
	limiter := httprate.Limit(perMinute, time.Minute,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set(echo.HeaderContentType, echo.MIMEApplicationJSONCharsetUTF8)
			w.WriteHeader(http.StatusTooManyRequests)
			_, _ = w.Write([]byte(`{"error":"Demasiadas solicitudes"}` + "\n"))
		}),
	)
	return echo.WrapMiddleware(limiter)
}
