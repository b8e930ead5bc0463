package backend

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/google/uuid"

	"github.com/portal-comunidad/portal-api/internal/core/domain"
	"github.com/portal-comunidad/portal-api/internal/core/ports"
)

const eventColumns = "id,title,description,location,start_date,end_date,image_url,created_at," +
	"is_public,visible_to_all_roles,event_roles(role_id)"

type eventRow struct {
	ID                uuid.UUID  `json:"id"`
	Title             string     `json:"title"`
	Description       string     `json:"description"`
	Location          string     `json:"location"`
	StartDate         timestamp  `json:"start_date"`
	EndDate           *timestamp `json:"end_date"`
	ImageURL          string     `json:"image_url"`
	CreatedAt         timestamp  `json:"created_at"`
	IsPublic          bool       `json:"is_public"`
	VisibleToAllRoles bool       `json:"visible_to_all_roles"`
	EventRoles        []roleRef  `json:"event_roles"`
}

// roleRef is an embedded join-table row carrying a permitted role.
type roleRef struct {
	RoleID uuid.UUID `json:"role_id"`
}

func permittedRoles(refs []roleRef) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(refs))
	for _, ref := range refs {
		ids = append(ids, ref.RoleID)
	}
	return ids
}

func (r eventRow) toDomain() domain.Event {
	return domain.Event{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		Location:    r.Location,
		StartDate:   r.StartDate.Time,
		EndDate:     r.EndDate.ptr(),
		ImageURL:    r.ImageURL,
		CreatedAt:   r.CreatedAt.Time,
		Access: domain.Visibility{
			IsPublic:          r.IsPublic,
			VisibleToAllRoles: r.VisibleToAllRoles,
			PermittedRoleIDs:  permittedRoles(r.EventRoles),
		},
	}
}

type EventRepository struct {
	client *Client
}

func NewEventRepository(client *Client) *EventRepository {
	return &EventRepository{client: client}
}

// ListEvents returns every event readable with cred, by start date ascending.
func (r *EventRepository) ListEvents(ctx context.Context, cred ports.Credential) ([]domain.Event, error) {
	var rows []eventRow
	if err := r.client.do(ctx, call{
		op:     "list_events",
		method: http.MethodGet,
		path:   "/rest/v1/events",
		query: url.Values{
			"select": {eventColumns},
			"order":  {"start_date.asc"},
		},
		cred: cred,
	}, &rows); err != nil {
		return nil, err
	}

	events := make([]domain.Event, 0, len(rows))
	for _, row := range rows {
		events = append(events, row.toDomain())
	}
	return events, nil
}

func (r *EventRepository) FindEvent(ctx context.Context, cred ports.Credential, id uuid.UUID) (*domain.Event, error) {
	var rows []eventRow
	if err := r.client.do(ctx, call{
		op:     "find_event",
		method: http.MethodGet,
		path:   "/rest/v1/events",
		query: url.Values{
			"select": {eventColumns},
			"id":     {"eq." + id.String()},
			"limit":  {"1"},
		},
		cred: cred,
	}, &rows); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("event %s: %w", id, domain.ErrNotFound)
	}

	event := rows[0].toDomain()
	return &event, nil
}
