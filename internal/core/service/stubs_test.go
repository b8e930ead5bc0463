package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/portal-comunidad/portal-api/internal/core/domain"
	"github.com/portal-comunidad/portal-api/internal/core/ports"
)

type stubAuthGateway struct {
	getUserFn   func(ctx context.Context, accessToken string) (*domain.User, error)
	listUsersFn func(ctx context.Context, cred ports.Credential) ([]domain.User, error)
}

func (s *stubAuthGateway) GetUser(ctx context.Context, accessToken string) (*domain.User, error) {
	return s.getUserFn(ctx, accessToken)
}

func (s *stubAuthGateway) ListUsers(ctx context.Context, cred ports.Credential) ([]domain.User, error) {
	return s.listUsersFn(ctx, cred)
}

type stubRoleRepo struct {
	userRolesFn func(ctx context.Context, cred ports.Credential, userID uuid.UUID) ([]domain.Role, error)
	listRolesFn func(ctx context.Context, cred ports.Credential) ([]domain.Role, error)
}

func (s *stubRoleRepo) UserRoles(ctx context.Context, cred ports.Credential, userID uuid.UUID) ([]domain.Role, error) {
	return s.userRolesFn(ctx, cred, userID)
}

func (s *stubRoleRepo) ListRoles(ctx context.Context, cred ports.Credential) ([]domain.Role, error) {
	return s.listRolesFn(ctx, cred)
}

type stubEventRepo struct {
	listFn func(ctx context.Context, cred ports.Credential) ([]domain.Event, error)
	findFn func(ctx context.Context, cred ports.Credential, id uuid.UUID) (*domain.Event, error)
}

func (s *stubEventRepo) ListEvents(ctx context.Context, cred ports.Credential) ([]domain.Event, error) {
	return s.listFn(ctx, cred)
}

func (s *stubEventRepo) FindEvent(ctx context.Context, cred ports.Credential, id uuid.UUID) (*domain.Event, error) {
	return s.findFn(ctx, cred, id)
}

type stubArchivoRepo struct {
	listFn func(ctx context.Context, cred ports.Credential, filter ports.ArchivoFilter) ([]domain.Archivo, error)
}

func (s *stubArchivoRepo) ListArchivos(ctx context.Context, cred ports.Credential, filter ports.ArchivoFilter) ([]domain.Archivo, error) {
	return s.listFn(ctx, cred, filter)
}

type stubPostRepo struct {
	listFn func(ctx context.Context, cred ports.Credential, page, limit int) ([]domain.Post, error)
	findFn func(ctx context.Context, cred ports.Credential, slug string) (*domain.Post, error)
}

func (s *stubPostRepo) ListPublished(ctx context.Context, cred ports.Credential, page, limit int) ([]domain.Post, error) {
	return s.listFn(ctx, cred, page, limit)
}

func (s *stubPostRepo) FindPublishedBySlug(ctx context.Context, cred ports.Credential, slug string) (*domain.Post, error) {
	return s.findFn(ctx, cred, slug)
}

type stubSiteMode struct {
	on  bool
	err error
}

func (s *stubSiteMode) UnderConstruction(context.Context) (bool, error) { return s.on, s.err }

func (s *stubSiteMode) SetUnderConstruction(_ context.Context, on bool) error {
	if s.err != nil {
		return s.err
	}
	s.on = on
	return nil
}
