package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/portal-comunidad/portal-api/internal/core/domain"
	"github.com/portal-comunidad/portal-api/internal/core/ports"
)

// AdminHandler backs the user-management panel. Every route is mounted behind
// the dashboard gate.
type AdminHandler struct {
	service ports.AdminService
}

func NewAdminHandler(service ports.AdminService) *AdminHandler {
	return &AdminHandler{service: service}
}

// ListUsers handles GET /api/admin/users.
//
// @Summary      List users with their roles
// @Tags         admin
// @Produce      json
// @Security     SessionCookie
// @Success      200  {object}  usersResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /api/admin/users [get]
func (h *AdminHandler) ListUsers(c echo.Context) error {
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}

	users, err := h.service.ListUsers(c.Request().Context(), caller)
	if err != nil {
		if errors.Is(err, domain.ErrMissingServiceKey) {
			return err
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "Error al obtener usuarios").SetInternal(err)
	}
	return c.JSON(http.StatusOK, usersResponse{Users: toUserResponses(users)})
}

// ListRoles handles GET /api/admin/roles.
//
// @Summary      List assignable roles
// @Tags         admin
// @Produce      json
// @Security     SessionCookie
// @Success      200  {object}  rolesResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /api/admin/roles [get]
func (h *AdminHandler) ListRoles(c echo.Context) error {
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}

	roles, err := h.service.ListRoles(c.Request().Context(), caller)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, rolesResponse{Roles: toRoleResponses(roles)})
}

// SiteMode handles GET /api/admin/site-mode.
//
// @Summary      Read the under-construction flag
// @Tags         admin
// @Produce      json
// @Security     SessionCookie
// @Success      200  {object}  siteModeResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /api/admin/site-mode [get]
func (h *AdminHandler) SiteMode(c echo.Context) error {
	on, err := h.service.SiteMode(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, siteModeResponse{UnderConstruction: on})
}

// SetSiteMode handles PUT /api/admin/site-mode.
//
// @Summary      Toggle the under-construction flag
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     SessionCookie
// @Param        body  body      siteModeRequest  true  "New site mode"
// @Success      200   {object}  siteModeResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /api/admin/site-mode [put]
func (h *AdminHandler) SetSiteMode(c echo.Context) error {
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}

	var req siteModeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Cuerpo de la solicitud inválido")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.service.SetSiteMode(c.Request().Context(), caller, *req.UnderConstruction); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, siteModeResponse{UnderConstruction: *req.UnderConstruction})
}
