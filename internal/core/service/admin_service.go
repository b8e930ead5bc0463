package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/portal-comunidad/portal-api/internal/core/domain"
	"github.com/portal-comunidad/portal-api/internal/core/ports"
)

const defaultRoleLookupConcurrency = 8

type AdminService struct {
	auth        ports.AuthGateway
	roles       ports.RoleRepository
	siteMode    ports.SiteModeStore
	concurrency int
	log         zerolog.Logger
}

func NewAdminService(
	auth ports.AuthGateway,
	roles ports.RoleRepository,
	siteMode ports.SiteModeStore,
	concurrency int,
	log zerolog.Logger,
) *AdminService {
	if concurrency <= 0 {
		concurrency = defaultRoleLookupConcurrency
	}
	return &AdminService{
		auth:        auth,
		roles:       roles,
		siteMode:    siteMode,
		concurrency: concurrency,
		log:         log,
	}
}

// ListUsers fetches the roster with the service credential and decorates each
// user with their roles. Any failed lookup fails the whole listing.
func (s *AdminService) ListUsers(ctx context.Context, caller *domain.Caller) ([]domain.UserWithRoles, error) {
	users, err := s.auth.ListUsers(ctx, ports.AsService())
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	out := make([]domain.UserWithRoles, len(users))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)
	for i, u := range users {
		g.Go(func() error {
			roles, err := s.roles.UserRoles(gctx, ports.AsService(), u.ID)
			if err != nil {
				return fmt.Errorf("roles for %s: %w", u.ID, err)
			}
			if roles == nil {
				roles = []domain.Role{}
			}
			out[i] = domain.UserWithRoles{User: u, Roles: roles}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	s.log.Info().
		Str("requested_by", caller.User.ID.String()).
		Int("users", len(out)).
		Msg("user roster listed")
	return out, nil
}

// ListRoles returns the role catalogue visible to caller.
func (s *AdminService) ListRoles(ctx context.Context, caller *domain.Caller) ([]domain.Role, error) {
	roles, err := s.roles.ListRoles(ctx, ports.AsUser(caller.Token()))
	if err != nil {
		return nil, fmt.Errorf("list roles: %w", err)
	}
	return roles, nil
}

func (s *AdminService) SiteMode(ctx context.Context) (bool, error) {
	on, err := s.siteMode.UnderConstruction(ctx)
	if err != nil {
		return false, fmt.Errorf("site mode: %w", err)
	}
	return on, nil
}

func (s *AdminService) SetSiteMode(ctx context.Context, caller *domain.Caller, underConstruction bool) error {
	if err := s.siteMode.SetUnderConstruction(ctx, underConstruction); err != nil {
		return fmt.Errorf("set site mode: %w", err)
	}
	s.log.Info().
		Str("requested_by", caller.User.ID.String()).
		Bool("under_construction", underConstruction).
		Msg("site mode changed")
	return nil
}
