package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/portal-comunidad/portal-api/internal/core/domain"
)

// AuthGateway talks to the hosted authentication service.
type AuthGateway interface {
	// GetUser resolves a session access token to its user.
	// Returns domain.ErrUnauthenticated when the token is not accepted.
	GetUser(ctx context.Context, accessToken string) (*domain.User, error)
	// ListUsers returns the full account roster. Requires a privileged credential.
	ListUsers(ctx context.Context, cred Credential) ([]domain.User, error)
}

// RoleRepository reads role assignments.
type RoleRepository interface {
	// UserRoles calls the role-lookup procedure for userID.
	UserRoles(ctx context.Context, cred Credential, userID uuid.UUID) ([]domain.Role, error)
	ListRoles(ctx context.Context, cred Credential) ([]domain.Role, error)
}

// EventRepository reads calendar events ordered by start date ascending.
type EventRepository interface {
	ListEvents(ctx context.Context, cred Credential) ([]domain.Event, error)
	// FindEvent returns domain.ErrNotFound when no row matches.
	FindEvent(ctx context.Context, cred Credential, id uuid.UUID) (*domain.Event, error)
}

// ArchivoFilter narrows the file library listing.
type ArchivoFilter struct {
	Category string // optional exact match
}

// ArchivoRepository reads the file library, newest first.
type ArchivoRepository interface {
	ListArchivos(ctx context.Context, cred Credential, filter ArchivoFilter) ([]domain.Archivo, error)
}

// PostRepository reads published blog posts, newest first.
type PostRepository interface {
	ListPublished(ctx context.Context, cred Credential, page, limit int) ([]domain.Post, error)
	FindPublishedBySlug(ctx context.Context, cred Credential, slug string) (*domain.Post, error)
}

// DelegacionRepository reads the delegations directory ordered by name.
type DelegacionRepository interface {
	ListDelegaciones(ctx context.Context, cred Credential) ([]domain.Delegacion, error)
	FindDelegacionBySlug(ctx context.Context, cred Credential, slug string) (*domain.Delegacion, error)
}

// SiteModeStore holds the global "under construction" flag.
type SiteModeStore interface {
	UnderConstruction(ctx context.Context) (bool, error)
	SetUnderConstruction(ctx context.Context, on bool) error
}
