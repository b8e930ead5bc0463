package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/portal-comunidad/portal-api/internal/core/domain"
	"github.com/portal-comunidad/portal-api/internal/core/ports"
)

type EventService struct {
	repo ports.EventRepository
	log  zerolog.Logger
}

func NewEventService(repo ports.EventRepository, log zerolog.Logger) *EventService {
	return &EventService{repo: repo, log: log}
}

// ListEvents returns the events caller may see, in upstream (start date) order.
// A nil caller is anonymous and only sees public events.
func (s *EventService) ListEvents(ctx context.Context, caller *domain.Caller) ([]domain.Event, error) {
	events, err := s.repo.ListEvents(ctx, ports.AsUser(caller.Token()))
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}

	visible := domain.FilterVisible(events, caller.RoleSet())
	s.log.Debug().
		Int("fetched", len(events)).
		Int("visible", len(visible)).
		Msg("events filtered")
	return visible, nil
}

// GetEvent returns a single event. Events hidden from caller are reported as
// not found.
func (s *EventService) GetEvent(ctx context.Context, caller *domain.Caller, id uuid.UUID) (*domain.Event, error) {
	event, err := s.repo.FindEvent(ctx, ports.AsUser(caller.Token()), id)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}
	if !event.Access.VisibleTo(caller.RoleSet()) {
		return nil, fmt.Errorf("get event %s: %w", id, domain.ErrNotFound)
	}
	return event, nil
}
