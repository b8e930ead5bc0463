package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/portal-comunidad/portal-api/internal/core/domain"
	"github.com/portal-comunidad/portal-api/internal/core/ports"
)

type DelegacionHandler struct {
	service ports.DelegacionService
}

func NewDelegacionHandler(service ports.DelegacionService) *DelegacionHandler {
	return &DelegacionHandler{service: service}
}

// List handles GET /api/delegaciones.
//
// @Summary      List delegations
// @Tags         delegaciones
// @Produce      json
// @Success      200  {object}  delegacionesResponse
// @Failure      500  {object}  errorResponse
// @Router       /api/delegaciones [get]
func (h *DelegacionHandler) List(c echo.Context) error {
	ds, err := h.service.ListDelegaciones(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, delegacionesResponse{Delegaciones: toDelegacionResponses(ds)})
}

// Get handles GET /api/delegaciones/:slug.
//
// @Summary      Get a delegation
// @Tags         delegaciones
// @Produce      json
// @Param        slug  path      string  true  "Delegation slug"
// @Success      200   {object}  delegacionEnvelope
// @Failure      404   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /api/delegaciones/{slug} [get]
func (h *DelegacionHandler) Get(c echo.Context) error {
	d, err := h.service.GetDelegacion(c.Request().Context(), c.Param("slug"))
	if errors.Is(err, domain.ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "Delegación no encontrada")
	}
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, delegacionEnvelope{Delegacion: toDelegacionResponse(*d)})
}
