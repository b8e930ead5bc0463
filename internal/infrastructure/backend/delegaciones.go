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

const delegacionColumns = "id,slug,name,description,city,address,email,phone,image_url,created_at"

type delegacionRow struct {
	ID          uuid.UUID `json:"id"`
	Slug        string    `json:"slug"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	City        string    `json:"city"`
	Address     string    `json:"address"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	ImageURL    string    `json:"image_url"`
	CreatedAt   timestamp `json:"created_at"`
}

func (r delegacionRow) toDomain() domain.Delegacion {
	return domain.Delegacion{
		ID:          r.ID,
		Slug:        r.Slug,
		Name:        r.Name,
		Description: r.Description,
		City:        r.City,
		Address:     r.Address,
		Email:       r.Email,
		Phone:       r.Phone,
		ImageURL:    r.ImageURL,
		CreatedAt:   r.CreatedAt.Time,
	}
}

type DelegacionRepository struct {
	client *Client
}

func NewDelegacionRepository(client *Client) *DelegacionRepository {
	return &DelegacionRepository{client: client}
}

func (r *DelegacionRepository) ListDelegaciones(ctx context.Context, cred ports.Credential) ([]domain.Delegacion, error) {
	var rows []delegacionRow
	if err := r.client.do(ctx, call{
		op:     "list_delegaciones",
		method: http.MethodGet,
		path:   "/rest/v1/delegaciones",
		query: url.Values{
			"select": {delegacionColumns},
			"order":  {"name.asc"},
		},
		cred: cred,
	}, &rows); err != nil {
		return nil, err
	}

	out := make([]domain.Delegacion, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *DelegacionRepository) FindDelegacionBySlug(ctx context.Context, cred ports.Credential, slug string) (*domain.Delegacion, error) {
	var rows []delegacionRow
	if err := r.client.do(ctx, call{
		op:     "find_delegacion",
		method: http.MethodGet,
		path:   "/rest/v1/delegaciones",
		query: url.Values{
			"select": {delegacionColumns},
			"slug":   {"eq." + slug},
			"limit":  {"1"},
		},
		cred: cred,
	}, &rows); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("delegacion %q: %w", slug, domain.ErrNotFound)
	}

	d := rows[0].toDomain()
	return &d, nil
}
