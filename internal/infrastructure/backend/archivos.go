package backend

import (
	"context"
	"net/http"
	"net/url"

	"github.com/google/uuid"

	"github.com/portal-comunidad/portal-api/internal/core/domain"
	"github.com/portal-comunidad/portal-api/internal/core/ports"
)

const archivoColumns = "id,name,description,category,file_url,mime_type,size_bytes,created_at," +
	"is_public,visible_to_all_roles,archivo_roles(role_id)"

type archivoRow struct {
	ID                uuid.UUID `json:"id"`
	Name              string    `json:"name"`
	Description       string    `json:"description"`
	Category          string    `json:"category"`
	FileURL           string    `json:"file_url"`
	MimeType          string    `json:"mime_type"`
	SizeBytes         int64     `json:"size_bytes"`
	CreatedAt         timestamp `json:"created_at"`
	IsPublic          bool      `json:"is_public"`
	VisibleToAllRoles bool      `json:"visible_to_all_roles"`
	ArchivoRoles      []roleRef `json:"archivo_roles"`
}

type ArchivoRepository struct {
	client *Client
}

func NewArchivoRepository(client *Client) *ArchivoRepository {
	return &ArchivoRepository{client: client}
}

// ListArchivos returns library entries readable with cred, newest first.
func (r *ArchivoRepository) ListArchivos(ctx context.Context, cred ports.Credential, filter ports.ArchivoFilter) ([]domain.Archivo, error) {
	q := url.Values{
		"select": {archivoColumns},
		"order":  {"created_at.desc"},
	}
	if filter.Category != "" {
		q.Set("category", "eq."+filter.Category)
	}

	var rows []archivoRow
	if err := r.client.do(ctx, call{
		op:     "list_archivos",
		method: http.MethodGet,
		path:   "/rest/v1/archivos",
		query:  q,
		cred:   cred,
	}, &rows); err != nil {
		return nil, err
	}

	out := make([]domain.Archivo, 0, len(rows))
	for _, row := range rows {
		out = append(out, domain.Archivo{
			ID:          row.ID,
			Name:        row.Name,
			Description: row.Description,
			Category:    row.Category,
			FileURL:     row.FileURL,
			MimeType:    row.MimeType,
			SizeBytes:   row.SizeBytes,
			CreatedAt:   row.CreatedAt.Time,
			Access: domain.Visibility{
				IsPublic:          row.IsPublic,
				VisibleToAllRoles: row.VisibleToAllRoles,
				PermittedRoleIDs:  permittedRoles(row.ArchivoRoles),
			},
		})
	}
	return out, nil
}
