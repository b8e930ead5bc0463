package backend

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/portal-comunidad/portal-api/internal/core/domain"
	"github.com/portal-comunidad/portal-api/internal/core/ports"
)

const (
	usersPerPage = 500
	maxUserPages = 200
)

type authUser struct {
	ID           uuid.UUID  `json:"id"`
	Email        string     `json:"email"`
	CreatedAt    timestamp  `json:"created_at"`
	LastSignInAt *timestamp `json:"last_sign_in_at"`
	UserMetadata struct {
		FullName string `json:"full_name"`
		Name     string `json:"name"`
	} `json:"user_metadata"`
}

func (u authUser) toDomain() domain.User {
	name := u.UserMetadata.FullName
	if name == "" {
		name = u.UserMetadata.Name
	}
	return domain.User{
		ID:           u.ID,
		Email:        u.Email,
		FullName:     name,
		CreatedAt:    u.CreatedAt.Time,
		LastSignInAt: u.LastSignInAt.ptr(),
	}
}

// AuthGateway implements ports.AuthGateway against the hosted auth service.
type AuthGateway struct {
	client *Client
	now    func() time.Time
}

func NewAuthGateway(client *Client) *AuthGateway {
	return &AuthGateway{client: client, now: time.Now}
}

// GetUser resolves the session behind accessToken.
func (g *AuthGateway) GetUser(ctx context.Context, accessToken string) (*domain.User, error) {
	if accessToken == "" {
		return nil, domain.ErrUnauthenticated
	}
	if err := precheckToken(accessToken, g.now()); err != nil {
		return nil, err
	}

	var u authUser
	if err := g.client.do(ctx, call{
		op:     "get_user",
		method: http.MethodGet,
		path:   "/auth/v1/user",
		cred:   ports.AsUser(accessToken),
	}, &u); err != nil {
		return nil, err
	}
	if u.ID == uuid.Nil {
		return nil, fmt.Errorf("get_user: %w", domain.ErrUnauthenticated)
	}

	user := u.toDomain()
	return &user, nil
}

// ListUsers pages through the admin users endpoint until a short page.
func (g *AuthGateway) ListUsers(ctx context.Context, cred ports.Credential) ([]domain.User, error) {
	var out []domain.User
	for page := 1; page <= maxUserPages; page++ {
		var resp struct {
			Users []authUser `json:"users"`
		}
		if err := g.client.do(ctx, call{
			op:     "list_users",
			method: http.MethodGet,
			path:   "/auth/v1/admin/users",
			query: url.Values{
				"page":     {strconv.Itoa(page)},
				"per_page": {strconv.Itoa(usersPerPage)},
			},
			cred: cred,
		}, &resp); err != nil {
			return nil, err
		}

		for _, u := range resp.Users {
			out = append(out, u.toDomain())
		}
		if len(resp.Users) < usersPerPage {
			break
		}
	}
	if out == nil {
		out = []domain.User{}
	}
	return out, nil
}
