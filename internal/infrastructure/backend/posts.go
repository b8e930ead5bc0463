package backend

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/google/uuid"

	"github.com/portal-comunidad/portal-api/internal/core/domain"
	"github.com/portal-comunidad/portal-api/internal/core/ports"
)

const postColumns = "id,slug,title,excerpt,content,cover_image_url,author,published,published_at,created_at"

type postRow struct {
	ID            uuid.UUID  `json:"id"`
	Slug          string     `json:"slug"`
	Title         string     `json:"title"`
	Excerpt       string     `json:"excerpt"`
	Content       string     `json:"content"`
	CoverImageURL string     `json:"cover_image_url"`
	Author        string     `json:"author"`
	Published     bool       `json:"published"`
	PublishedAt   *timestamp `json:"published_at"`
	CreatedAt     timestamp  `json:"created_at"`
}

func (r postRow) toDomain() domain.Post {
	return domain.Post{
		ID:            r.ID,
		Slug:          r.Slug,
		Title:         r.Title,
		Excerpt:       r.Excerpt,
		Content:       r.Content,
		CoverImageURL: r.CoverImageURL,
		Author:        r.Author,
		Published:     r.Published,
		PublishedAt:   r.PublishedAt.ptr(),
		CreatedAt:     r.CreatedAt.Time,
	}
}

type PostRepository struct {
	client *Client
}

func NewPostRepository(client *Client) *PostRepository {
	return &PostRepository{client: client}
}

// ListPublished returns one page of published posts, newest first. page is 1-based.
func (r *PostRepository) ListPublished(ctx context.Context, cred ports.Credential, page, limit int) ([]domain.Post, error) {
	var rows []postRow
	if err := r.client.do(ctx, call{
		op:     "list_posts",
		method: http.MethodGet,
		path:   "/rest/v1/posts",
		query: url.Values{
			"select":    {postColumns},
			"published": {"eq.true"},
			"order":     {"published_at.desc.nullslast,created_at.desc"},
			"limit":     {strconv.Itoa(limit)},
			"offset":    {strconv.Itoa((page - 1) * limit)},
		},
		cred: cred,
	}, &rows); err != nil {
		return nil, err
	}

	posts := make([]domain.Post, 0, len(rows))
	for _, row := range rows {
		posts = append(posts, row.toDomain())
	}
	return posts, nil
}

func (r *PostRepository) FindPublishedBySlug(ctx context.Context, cred ports.Credential, slug string) (*domain.Post, error) {
	var rows []postRow
	if err := r.client.do(ctx, call{
		op:     "find_post",
		method: http.MethodGet,
		path:   "/rest/v1/posts",
		query: url.Values{
			"select":    {postColumns},
			"slug":      {"eq." + slug},
			"published": {"eq.true"},
			"limit":     {"1"},
		},
		cred: cred,
	}, &rows); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("post %q: %w", slug, domain.ErrNotFound)
	}

	post := rows[0].toDomain()
	return &post, nil
}
