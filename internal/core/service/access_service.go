package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/portal-comunidad/portal-api/internal/core/domain"
	"github.com/portal-comunidad/portal-api/internal/core/ports"
)

// AccessService resolves session tokens into callers and evaluates the
// dashboard gate. Nothing is cached between requests.
type AccessService struct {
	auth        ports.AuthGateway
	roles       ports.RoleRepository
	defaultRole string
	log         zerolog.Logger
}

func NewAccessService(auth ports.AuthGateway, roles ports.RoleRepository, defaultRole string, log zerolog.Logger) *AccessService {
	if defaultRole == "" {
		defaultRole = domain.DefaultRoleName
	}
	return &AccessService{auth: auth, roles: roles, defaultRole: defaultRole, log: log}
}

// Authenticate resolves the user behind accessToken and loads their roles
// with the user's own session.
func (s *AccessService) Authenticate(ctx context.Context, accessToken string) (*domain.Caller, error) {
	if accessToken == "" {
		return nil, domain.ErrUnauthenticated
	}

	user, err := s.auth.GetUser(ctx, accessToken)
	if err != nil {
		return nil, fmt.Errorf("authenticate: %w", err)
	}

	roles, err := s.roles.UserRoles(ctx, ports.AsUser(accessToken), user.ID)
	if err != nil {
		return nil, fmt.Errorf("authenticate: roles: %w", err)
	}

	return &domain.Caller{User: *user, AccessToken: accessToken, Roles: roles}, nil
}

// Identify treats a missing or rejected session as an anonymous caller.
func (s *AccessService) Identify(ctx context.Context, accessToken string) (*domain.Caller, error) {
	if accessToken == "" {
		return nil, nil
	}
	caller, err := s.Authenticate(ctx, accessToken)
	if errors.Is(err, domain.ErrUnauthenticated) {
		s.log.Debug().Msg("session rejected, continuing anonymously")
		return nil, nil
	}
	return caller, err
}

// Access applies the dashboard gate to caller.
func (s *AccessService) Access(caller *domain.Caller) ports.AccessResult {
	if caller == nil {
		return ports.AccessResult{Roles: []domain.Role{}}
	}
	roles := caller.Roles
	if roles == nil {
		roles = []domain.Role{}
	}
	return ports.AccessResult{
		HasAccess: domain.HasDashboardAccess(roles, s.defaultRole),
		Roles:     roles,
	}
}
