package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/portal-comunidad/portal-api/internal/api/metrics"
	"github.com/portal-comunidad/portal-api/internal/core/domain"
)

func TestRequireDashboard(t *testing.T) {
	tests := []struct {
		name      string
		caller    *domain.Caller
		hasAccess bool
		wantErr   error
		result    string
	}{
		{"granted", &domain.Caller{AccessToken: "tok"}, true, nil, "granted"},
		{"default role only", &domain.Caller{AccessToken: "tok"}, false, domain.ErrForbidden, "denied"},
		{"anonymous", nil, true, domain.ErrUnauthenticated, "unauthenticated"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/admin/users", nil), rec)
			if tt.caller != nil {
				c.Set(callerKey, tt.caller)
			}

			counter := metrics.AccessDecisionsTotal.WithLabelValues(tt.result)
			before := testutil.ToFloat64(counter)

			called := false
			err := RequireDashboard(&stubAccess{hasAccess: tt.hasAccess})(func(c echo.Context) error {
				called = true
				return c.NoContent(http.StatusOK)
			})(c)

			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
			if called != (tt.wantErr == nil) {
				t.Fatalf("next called = %v", called)
			}
			if got := testutil.ToFloat64(counter) - before; got != 1 {
				t.Fatalf("expected %q decision counted once, got %v", tt.result, got)
			}
		})
	}
}
