package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/portal-comunidad/portal-api/internal/core/ports"
)

// DashboardHandler reports the dashboard gate decision to the front end.
type DashboardHandler struct {
	access ports.AccessService
}

func NewDashboardHandler(access ports.AccessService) *DashboardHandler {
	return &DashboardHandler{access: access}
}

// Access handles GET /api/dashboard/access.
//
// @Summary      Dashboard access check
// @Description  hasAccess is true when the caller holds any role other than the default one.
// @Tags         dashboard
// @Produce      json
// @Security     SessionCookie
// @Success      200  {object}  accessResponse
// @Failure      401  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /api/dashboard/access [get]
func (h *DashboardHandler) Access(c echo.Context) error {
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}
	res := h.access.Access(caller)
	return c.JSON(http.StatusOK, accessResponse{HasAccess: res.HasAccess, Roles: toRoleResponses(res.Roles)})
}
