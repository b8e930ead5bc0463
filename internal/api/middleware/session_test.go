package middleware

import (
	"context"
	"encoding/base64"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/portal-comunidad/portal-api/internal/core/domain"
	"github.com/portal-comunidad/portal-api/internal/core/ports"
	"github.com/portal-comunidad/portal-api/internal/core/service"
	"github.com/portal-comunidad/portal-api/internal/infrastructure/backend"
)

const (
	cookieName = "sb-abcd-auth-token"
	jwtLike    = "eyJhbGciOiJIUzI1NiJ9.eyJzdWIiOiJ4In0.sig"
)

type stubAccess struct {
	authenticateFn func(ctx context.Context, token string) (*domain.Caller, error)
	hasAccess      bool
}

func (s *stubAccess) Authenticate(ctx context.Context, token string) (*domain.Caller, error) {
	return s.authenticateFn(ctx, token)
}

func (s *stubAccess) Identify(ctx context.Context, token string) (*domain.Caller, error) {
	if token == "" {
		return nil, nil
	}
	c, err := s.authenticateFn(ctx, token)
	if errors.Is(err, domain.ErrUnauthenticated) {
		return nil, nil
	}
	return c, err
}

func (s *stubAccess) Access(*domain.Caller) ports.AccessResult {
	return ports.AccessResult{HasAccess: s.hasAccess, Roles: []domain.Role{}}
}

func acceptToken(valid string) func(context.Context, string) (*domain.Caller, error) {
	return func(_ context.Context, token string) (*domain.Caller, error) {
		if token != valid {
			return nil, domain.ErrUnauthenticated
		}
		return &domain.Caller{AccessToken: token}, nil
	}
}

func TestSessionToken_Formats(t *testing.T) {
	sessionJSON := `{"access_token":"` + jwtLike + `","refresh_token":"r","token_type":"bearer"}`
	encoded := "base64-" + base64.RawURLEncoding.EncodeToString([]byte(sessionJSON))

	tests := []struct {
		name    string
		cookies []*http.Cookie
		header  string
		want    string
	}{
		{"plain token", []*http.Cookie{{Name: cookieName, Value: jwtLike}}, "", jwtLike},
		{"json session", []*http.Cookie{{Name: cookieName, Value: url.QueryEscape(sessionJSON)}}, "", jwtLike},
		{"base64 session", []*http.Cookie{{Name: cookieName, Value: encoded}}, "", jwtLike},
		{"legacy array", []*http.Cookie{{Name: cookieName, Value: url.QueryEscape(`["` + jwtLike + `","refresh"]`)}}, "", jwtLike},
		{"chunked", []*http.Cookie{
			{Name: cookieName + ".0", Value: encoded[:20]},
			{Name: cookieName + ".1", Value: encoded[20:]},
		}, "", jwtLike},
		{"bearer fallback", nil, "Bearer " + jwtLike, jwtLike},
		{"cookie wins over header", []*http.Cookie{{Name: cookieName, Value: jwtLike}}, "Bearer other", jwtLike},
		{"garbage cookie", []*http.Cookie{{Name: cookieName, Value: "nonsense"}}, "", ""},
		{"other scheme", nil, "Basic dXNlcjpwYXNz", ""},
		{"nothing", nil, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			for _, c := range tt.cookies {
				req.AddCookie(c)
			}
			if tt.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.header)
			}
			assert.Equal(t, tt.want, SessionToken(req, cookieName))
		})
	}
}

func runSession(t *testing.T, mw echo.MiddlewareFunc, token string) (*domain.Caller, bool, error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if token != "" {
		req.AddCookie(&http.Cookie{Name: cookieName, Value: token})
	}
	c := e.NewContext(req, httptest.NewRecorder())

	var caller *domain.Caller
	called := false
	err := mw(func(c echo.Context) error {
		called = true
		caller = CallerFrom(c)
		return nil
	})(c)
	return caller, called, err
}

func TestSession_Optional(t *testing.T) {
	mw := Session(&stubAccess{authenticateFn: acceptToken(jwtLike)}, cookieName, false)

	caller, called, err := runSession(t, mw, "")
	require.NoError(t, err)
	assert.True(t, called)
	assert.Nil(t, caller)

	caller, called, err = runSession(t, mw, "a.b.c")
	require.NoError(t, err)
	assert.True(t, called, "rejected sessions continue anonymously")
	assert.Nil(t, caller)

	caller, _, err = runSession(t, mw, jwtLike)
	require.NoError(t, err)
	require.NotNil(t, caller)
	assert.Equal(t, jwtLike, caller.AccessToken)

	// A signed-out session still carries an unexpired token; the auth
	// service answers 403 and the request continues anonymously.
	revoked, token := revokedSessionAccess(t)
	caller, called, err = runSession(t, Session(revoked, cookieName, false), token)
	require.NoError(t, err)
	assert.True(t, called)
	assert.Nil(t, caller)
}

func TestSession_RevokedSessionRequired(t *testing.T) {
	revoked, token := revokedSessionAccess(t)

	_, called, err := runSession(t, Session(revoked, cookieName, true), token)
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)
	assert.NotErrorIs(t, err, domain.ErrUpstream)
	assert.False(t, called)
}

// revokedSessionAccess wires the real access service to an auth server that
// rejects every session with 403 session_not_found.
func revokedSessionAccess(t *testing.T) (ports.AccessService, string) {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"code":403,"error_code":"session_not_found","msg":"Session from session_id claim in JWT does not exist"}`))
	}))
	t.Cleanup(srv.Close)

	client, err := backend.NewClient(backend.Config{URL: srv.URL, AnonKey: "anon"}, zerolog.Nop())
	require.NoError(t, err)
	access := service.NewAccessService(
		backend.NewAuthGateway(client),
		backend.NewRoleRepository(client),
		domain.DefaultRoleName,
		zerolog.Nop(),
	)

	claims := jwt.RegisteredClaims{Subject: "7c9e6679-7425-40de-944b-e07fc1f90ae7", ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return access, token
}

func TestSession_Required(t *testing.T) {
	mw := Session(&stubAccess{authenticateFn: acceptToken(jwtLike)}, cookieName, true)

	_, called, err := runSession(t, mw, "")
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)
	assert.False(t, called)

	caller, called, err := runSession(t, mw, jwtLike)
	require.NoError(t, err)
	assert.True(t, called)
	assert.NotNil(t, caller)
}

func TestSession_UpstreamFailure(t *testing.T) {
	access := &stubAccess{authenticateFn: func(context.Context, string) (*domain.Caller, error) {
		return nil, domain.ErrUpstream
	}}

	_, called, err := runSession(t, Session(access, cookieName, false), jwtLike)
	assert.ErrorIs(t, err, domain.ErrUpstream)
	assert.False(t, called)
}
