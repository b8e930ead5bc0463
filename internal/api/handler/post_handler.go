package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/portal-comunidad/portal-api/internal/core/domain"
	"github.com/portal-comunidad/portal-api/internal/core/ports"
)

// PostHandler serves the public blog.
type PostHandler struct {
	service ports.PostService
}

func NewPostHandler(service ports.PostService) *PostHandler {
	return &PostHandler{service: service}
}

// List handles GET /api/posts.
//
// @Summary      List published posts
// @Tags         posts
// @Produce      json
// @Param        page   query     int  false  "Page number (1 to 10000)"
// @Param        limit  query     int  false  "Page size (1-50, default 10)"
// @Success      200    {object}  postsResponse
// @Failure      400    {object}  errorResponse
// @Failure      500    {object}  errorResponse
// @Router       /api/posts [get]
func (h *PostHandler) List(c echo.Context) error {
	var q listPostsQuery
	if err := c.Bind(&q); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Parámetros inválidos")
	}
	if err := c.Validate(&q); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	posts, err := h.service.ListPosts(c.Request().Context(), ports.ListPostsInput{Page: q.Page, Limit: q.Limit})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, postsResponse{Posts: toPostResponses(posts)})
}

// Get handles GET /api/posts/:slug.
//
// @Summary      Get a published post
// @Tags         posts
// @Produce      json
// @Param        slug  path      string  true  "Post slug"
// @Success      200   {object}  postEnvelope
// @Failure      404   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /api/posts/{slug} [get]
func (h *PostHandler) Get(c echo.Context) error {
	post, err := h.service.GetPost(c.Request().Context(), c.Param("slug"))
	if errors.Is(err, domain.ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "Publicación no encontrada")
	}
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, postEnvelope{Post: toPostResponse(*post)})
}
