package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/portal-comunidad/portal-api/internal/core/domain"
	"github.com/portal-comunidad/portal-api/internal/core/ports"
)

const (
	defaultPostLimit = 10
	maxPostLimit     = 50
	// Keeps (page-1)*limit far from overflowing the upstream offset.
	maxPostPage = 10000
)

type PostService struct {
	repo ports.PostRepository
	log  zerolog.Logger
}

func NewPostService(repo ports.PostRepository, log zerolog.Logger) *PostService {
	return &PostService{repo: repo, log: log}
}

// ListPosts returns a page of published posts, newest first.
func (s *PostService) ListPosts(ctx context.Context, input ports.ListPostsInput) ([]domain.Post, error) {
	page := min(max(input.Page, 1), maxPostPage)
	limit := input.Limit
	switch {
	case limit <= 0:
		limit = defaultPostLimit
	case limit > maxPostLimit:
		limit = maxPostLimit
	}

	posts, err := s.repo.ListPublished(ctx, ports.Anonymous(), page, limit)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	return posts, nil
}

// GetPost returns a published post by slug.
func (s *PostService) GetPost(ctx context.Context, slug string) (*domain.Post, error) {
	if slug == "" {
		return nil, domain.ErrNotFound
	}
	post, err := s.repo.FindPublishedBySlug(ctx, ports.Anonymous(), slug)
	if err != nil {
		return nil, fmt.Errorf("get post %q: %w", slug, err)
	}
	return post, nil
}
