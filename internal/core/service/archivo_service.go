package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/portal-comunidad/portal-api/internal/core/domain"
	"github.com/portal-comunidad/portal-api/internal/core/ports"
)

type ArchivoService struct {
	repo ports.ArchivoRepository
	log  zerolog.Logger
}

func NewArchivoService(repo ports.ArchivoRepository, log zerolog.Logger) *ArchivoService {
	return &ArchivoService{repo: repo, log: log}
}

// ListArchivos returns the library entries visible to an authenticated caller.
func (s *ArchivoService) ListArchivos(ctx context.Context, caller *domain.Caller, filter ports.ArchivoFilter) ([]domain.Archivo, error) {
	if caller == nil {
		return nil, domain.ErrUnauthenticated
	}

	archivos, err := s.repo.ListArchivos(ctx, ports.AsUser(caller.Token()), filter)
	if err != nil {
		return nil, fmt.Errorf("list archivos: %w", err)
	}

	visible := domain.FilterVisible(archivos, caller.RoleSet())
	s.log.Debug().
		Str("user_id", caller.User.ID.String()).
		Int("fetched", len(archivos)).
		Int("visible", len(visible)).
		Msg("archivos filtered")
	return visible, nil
}
