package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/portal-comunidad/portal-api/internal/core/domain"
	"github.com/portal-comunidad/portal-api/internal/core/ports"
)

type DelegacionService struct {
	repo ports.DelegacionRepository
	log  zerolog.Logger
}

func NewDelegacionService(repo ports.DelegacionRepository, log zerolog.Logger) *DelegacionService {
	return &DelegacionService{repo: repo, log: log}
}

func (s *DelegacionService) ListDelegaciones(ctx context.Context) ([]domain.Delegacion, error) {
	delegaciones, err := s.repo.ListDelegaciones(ctx, ports.Anonymous())
	if err != nil {
		return nil, fmt.Errorf("list delegaciones: %w", err)
	}
	return delegaciones, nil
}

func (s *DelegacionService) GetDelegacion(ctx context.Context, slug string) (*domain.Delegacion, error) {
	if slug == "" {
		return nil, domain.ErrNotFound
	}
	d, err := s.repo.FindDelegacionBySlug(ctx, ports.Anonymous(), slug)
	if err != nil {
		return nil, fmt.Errorf("get delegacion %q: %w", slug, err)
	}
	return d, nil
}
