package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/portal-comunidad/portal-api/internal/api/metrics"
	"github.com/portal-comunidad/portal-api/internal/core/ports"
)

// ArchivoHandler serves the file library to signed-in members.
type ArchivoHandler struct {
	service ports.ArchivoService
}

func NewArchivoHandler(service ports.ArchivoService) *ArchivoHandler {
	return &ArchivoHandler{service: service}
}

// List handles GET /api/archivos.
//
// @Summary      List visible files
// @Tags         archivos
// @Produce      json
// @Security     SessionCookie
// @Param        categoria  query     string  false  "Category filter"
// @Success      200        {object}  archivosResponse
// @Failure      400        {object}  errorResponse
// @Failure      401        {object}  errorResponse
// @Failure      500        {object}  errorResponse
// @Router       /api/archivos [get]
func (h *ArchivoHandler) List(c echo.Context) error {
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}

	var q listArchivosQuery
	if err := c.Bind(&q); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Parámetros inválidos")
	}
	if err := c.Validate(&q); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	archivos, err := h.service.ListArchivos(c.Request().Context(), caller, ports.ArchivoFilter{Category: q.Categoria})
	if err != nil {
		return err
	}
	metrics.VisibleItemsTotal.WithLabelValues("archivos").Add(float64(len(archivos)))
	return c.JSON(http.StatusOK, archivosResponse{Archivos: toArchivoResponses(archivos)})
}
