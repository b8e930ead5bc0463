package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/portal-comunidad/portal-api/internal/core/domain"
)

// AccessResult is the dashboard gate decision for a caller.
type AccessResult struct {
	HasAccess bool
	Roles     []domain.Role
}

// AccessService resolves sessions and applies the dashboard gate.
type AccessService interface {
	// Authenticate resolves accessToken to a caller with roles.
	// Returns domain.ErrUnauthenticated for a missing or rejected token.
	Authenticate(ctx context.Context, accessToken string) (*domain.Caller, error)
	// Identify is Authenticate for optional sessions: a missing or rejected
	// token yields a nil caller and no error.
	Identify(ctx context.Context, accessToken string) (*domain.Caller, error)
	// Access evaluates the dashboard gate for an authenticated caller.
	Access(caller *domain.Caller) AccessResult
}

// EventService lists calendar events filtered by visibility.
type EventService interface {
	ListEvents(ctx context.Context, caller *domain.Caller) ([]domain.Event, error)
	GetEvent(ctx context.Context, caller *domain.Caller, id uuid.UUID) (*domain.Event, error)
}

// ArchivoService lists the file library filtered by visibility.
type ArchivoService interface {
	ListArchivos(ctx context.Context, caller *domain.Caller, filter ArchivoFilter) ([]domain.Archivo, error)
}

// ListPostsInput carries blog pagination.
type ListPostsInput struct {
	Page  int
	Limit int
}

// PostService reads the public blog.
type PostService interface {
	ListPosts(ctx context.Context, input ListPostsInput) ([]domain.Post, error)
	GetPost(ctx context.Context, slug string) (*domain.Post, error)
}

// DelegacionService reads the delegations directory.
type DelegacionService interface {
	ListDelegaciones(ctx context.Context) ([]domain.Delegacion, error)
	GetDelegacion(ctx context.Context, slug string) (*domain.Delegacion, error)
}

// AdminService backs the user-management panel. Callers must already have
// passed the dashboard gate.
type AdminService interface {
	ListUsers(ctx context.Context, caller *domain.Caller) ([]domain.UserWithRoles, error)
	ListRoles(ctx context.Context, caller *domain.Caller) ([]domain.Role, error)
	SiteMode(ctx context.Context) (bool, error)
	SetSiteMode(ctx context.Context, caller *domain.Caller, underConstruction bool) error
}
