package backend

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/portal-comunidad/portal-api/internal/core/domain"
	"github.com/portal-comunidad/portal-api/internal/core/ports"
)

const (
	anonKey    = "anon-key"
	serviceKey = "service-key"
)

func newTestClient(t *testing.T, h http.HandlerFunc, withServiceKey bool) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	cfg := Config{URL: srv.URL, AnonKey: anonKey, Timeout: 2 * time.Second}
	if withServiceKey {
		cfg.ServiceKey = serviceKey
	}
	c, err := NewClient(cfg, zerolog.Nop())
	require.NoError(t, err)
	return c
}

func signedToken(t *testing.T, subject string, exp time.Time) string {
	t.Helper()
	claims := jwt.RegisteredClaims{Subject: subject, ExpiresAt: jwt.NewNumericDate(exp)}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return tok
}

func TestNewClient_Validation(t *testing.T) {
	_, err := NewClient(Config{URL: "not a url", AnonKey: anonKey}, zerolog.Nop())
	assert.Error(t, err)

	_, err = NewClient(Config{URL: "https://abc.example.co"}, zerolog.Nop())
	assert.Error(t, err)

	c, err := NewClient(Config{URL: "https://abc.example.co/", AnonKey: anonKey}, zerolog.Nop())
	require.NoError(t, err)
	assert.False(t, c.HasServiceKey())
}

func TestClient_CredentialHeaders(t *testing.T) {
	type seen struct{ apikey, auth string }
	var got []seen
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		got = append(got, seen{r.Header.Get("apikey"), r.Header.Get("Authorization")})
		_, _ = io.WriteString(w, `[]`)
	}, true)
	repo := NewRoleRepository(c)
	ctx := context.Background()

	_, err := repo.ListRoles(ctx, ports.Anonymous())
	require.NoError(t, err)
	_, err = repo.ListRoles(ctx, ports.AsUser("user-jwt"))
	require.NoError(t, err)
	_, err = repo.ListRoles(ctx, ports.AsService())
	require.NoError(t, err)

	assert.Equal(t, []seen{
		{anonKey, "Bearer " + anonKey},
		{anonKey, "Bearer user-jwt"},
		{serviceKey, "Bearer " + serviceKey},
	}, got)
}

func TestClient_MissingServiceKey(t *testing.T) {
	called := false
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
	}, false)

	_, err := NewAuthGateway(c).ListUsers(context.Background(), ports.AsService())
	assert.ErrorIs(t, err, domain.ErrMissingServiceKey)
	assert.False(t, called, "no request may be sent without a service key")
}

func TestClient_StatusMapping(t *testing.T) {
	for _, status := range []int{http.StatusUnauthorized, http.StatusForbidden} {
		t.Run(http.StatusText(status), func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(status)
				_, _ = io.WriteString(w, `{"error_code":"session_not_found"}`)
			}, true)
			repo := NewRoleRepository(c)
			ctx := context.Background()

			_, err := repo.ListRoles(ctx, ports.AsUser("user-jwt"))
			assert.ErrorIs(t, err, domain.ErrUnauthenticated)
			assert.NotErrorIs(t, err, domain.ErrUpstream)

			_, err = repo.ListRoles(ctx, ports.AsService())
			assert.ErrorIs(t, err, domain.ErrUpstream)
			assert.NotErrorIs(t, err, domain.ErrUnauthenticated)

			_, err = repo.ListRoles(ctx, ports.Anonymous())
			assert.ErrorIs(t, err, domain.ErrUpstream)
		})
	}
}

func TestAuthGateway_GetUserRevokedSession(t *testing.T) {
	token := signedToken(t, uuid.NewString(), time.Now().Add(time.Hour))
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = io.WriteString(w, `{"code":403,"error_code":"session_not_found"}`)
	}, false)

	_, err := NewAuthGateway(c).GetUser(context.Background(), token)
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)
}

func TestClient_ServerErrorAndBadJSON(t *testing.T) {
	status := http.StatusInternalServerError
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		_, _ = io.WriteString(w, `{not json`)
	}, false)
	repo := NewRoleRepository(c)

	_, err := repo.ListRoles(context.Background(), ports.Anonymous())
	assert.ErrorIs(t, err, domain.ErrUpstream)

	status = http.StatusOK
	_, err = repo.ListRoles(context.Background(), ports.Anonymous())
	assert.ErrorIs(t, err, domain.ErrUpstream)
}

func TestAuthGateway_GetUser(t *testing.T) {
	id := uuid.New()
	token := signedToken(t, id.String(), time.Now().Add(time.Hour))
	requests := 0
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		requests++
		assert.Equal(t, "/auth/v1/user", r.URL.Path)
		assert.Equal(t, "Bearer "+token, r.Header.Get("Authorization"))
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id":              id,
			"email":           "ana@example.org",
			"created_at":      "2024-01-02T03:04:05.123456Z",
			"last_sign_in_at": nil,
			"user_metadata":   map[string]string{"name": "Ana"},
		})
	}, false)
	gw := NewAuthGateway(c)

	user, err := gw.GetUser(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, id, user.ID)
	assert.Equal(t, "Ana", user.FullName)
	assert.Nil(t, user.LastSignInAt)
	assert.Equal(t, 2024, user.CreatedAt.Year())

	expired := signedToken(t, id.String(), time.Now().Add(-time.Minute))
	_, err = gw.GetUser(context.Background(), expired)
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)

	_, err = gw.GetUser(context.Background(), "garbage")
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)

	assert.Equal(t, 1, requests, "rejected tokens must not reach the auth service")
}

func TestAuthGateway_ListUsers_Pages(t *testing.T) {
	var pages []string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		page := r.URL.Query().Get("page")
		pages = append(pages, page)
		assert.Equal(t, "500", r.URL.Query().Get("per_page"))

		n := usersPerPage
		if page == "2" {
			n = 3
		}
		users := make([]map[string]any, n)
		for i := range users {
			users[i] = map[string]any{"id": uuid.New(), "email": "u@example.org", "created_at": "2024-05-01 10:00:00+00"}
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"users": users})
	}, true)

	users, err := NewAuthGateway(c).ListUsers(context.Background(), ports.AsService())
	require.NoError(t, err)
	assert.Len(t, users, usersPerPage+3)
	assert.Equal(t, []string{"1", "2"}, pages)
}

func TestRoleRepository_UserRoles(t *testing.T) {
	userID := uuid.New()
	roleID := uuid.New()
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/rest/v1/rpc/get_user_roles", r.URL.Path)
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, userID.String(), body["p_user_id"])
		_, _ = io.WriteString(w, `[{"role_id":"`+roleID.String()+`","role_name":"admin"}]`)
	}, false)

	roles, err := NewRoleRepository(c).UserRoles(context.Background(), ports.AsUser("tok"), userID)
	require.NoError(t, err)
	assert.Equal(t, []domain.Role{{ID: roleID, Name: "admin"}}, roles)
}

func TestEventRepository(t *testing.T) {
	roleID := uuid.New()
	eventID := uuid.New()
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "/rest/v1/events", r.URL.Path)
		assert.Contains(t, q.Get("select"), "event_roles(role_id)")
		if q.Get("id") == "eq."+eventID.String() {
			_, _ = io.WriteString(w, `[]`)
			return
		}
		assert.Equal(t, "start_date.asc", q.Get("order"))
		_, _ = io.WriteString(w, `[
			{"id":"`+uuid.NewString()+`","title":"Misa","start_date":"2026-03-01T10:00:00+00:00","end_date":null,"is_public":true,"visible_to_all_roles":false,"event_roles":[]},
			{"id":"`+uuid.NewString()+`","title":"Retiro","start_date":"2026-03-02","end_date":"2026-03-03","is_public":false,"visible_to_all_roles":false,"event_roles":[{"role_id":"`+roleID.String()+`"}]}
		]`)
	}, false)
	repo := NewEventRepository(c)

	events, err := repo.ListEvents(context.Background(), ports.Anonymous())
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.True(t, events[0].Access.IsPublic)
	assert.Nil(t, events[0].EndDate)
	assert.Equal(t, []uuid.UUID{roleID}, events[1].Access.PermittedRoleIDs)
	require.NotNil(t, events[1].EndDate)
	assert.Equal(t, time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC), *events[1].EndDate)

	_, err = repo.FindEvent(context.Background(), ports.Anonymous(), eventID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPostRepository_Paging(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "eq.true", q.Get("published"))
		assert.Equal(t, "5", q.Get("limit"))
		assert.Equal(t, "10", q.Get("offset"))
		_, _ = io.WriteString(w, `[]`)
	}, false)

	posts, err := NewPostRepository(c).ListPublished(context.Background(), ports.Anonymous(), 3, 5)
	require.NoError(t, err)
	assert.NotNil(t, posts)
	assert.Empty(t, posts)
}

func TestClient_Ping(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/v1/health", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}, false)
	assert.NoError(t, c.Ping(context.Background()))
}
