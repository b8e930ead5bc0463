package backend

import (
	"context"
	"net/http"
	"net/url"

	"github.com/google/uuid"

	"github.com/portal-comunidad/portal-api/internal/core/domain"
	"github.com/portal-comunidad/portal-api/internal/core/ports"
)

// userRolesProcedure is the stored procedure returning a user's roles.
const userRolesProcedure = "get_user_roles"

type roleRow struct {
	RoleID   uuid.UUID `json:"role_id"`
	RoleName string    `json:"role_name"`
}

type RoleRepository struct {
	client *Client
}

func NewRoleRepository(client *Client) *RoleRepository {
	return &RoleRepository{client: client}
}

// UserRoles calls the role-lookup procedure for userID.
func (r *RoleRepository) UserRoles(ctx context.Context, cred ports.Credential, userID uuid.UUID) ([]domain.Role, error) {
	var rows []roleRow
	if err := r.client.do(ctx, call{
		op:     "user_roles",
		method: http.MethodPost,
		path:   "/rest/v1/rpc/" + userRolesProcedure,
		cred:   cred,
		body:   map[string]string{"p_user_id": userID.String()},
	}, &rows); err != nil {
		return nil, err
	}

	roles := make([]domain.Role, 0, len(rows))
	for _, row := range rows {
		roles = append(roles, domain.Role{ID: row.RoleID, Name: row.RoleName})
	}
	return roles, nil
}

// ListRoles returns the role catalogue ordered by name.
func (r *RoleRepository) ListRoles(ctx context.Context, cred ports.Credential) ([]domain.Role, error) {
	var roles []domain.Role
	if err := r.client.do(ctx, call{
		op:     "list_roles",
		method: http.MethodGet,
		path:   "/rest/v1/roles",
		query: url.Values{
			"select": {"id,name"},
			"order":  {"name.asc"},
		},
		cred: cred,
	}, &roles); err != nil {
		return nil, err
	}
	if roles == nil {
		roles = []domain.Role{}
	}
	return roles, nil
}
