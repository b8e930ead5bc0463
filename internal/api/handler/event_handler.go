package handler

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/portal-comunidad/portal-api/internal/api/metrics"
	"github.com/portal-comunidad/portal-api/internal/api/middleware"
	"github.com/portal-comunidad/portal-api/internal/core/domain"
	"github.com/portal-comunidad/portal-api/internal/core/ports"
)

// EventHandler serves the events calendar. Sessions are optional: anonymous
// callers only see public events.
type EventHandler struct {
	service ports.EventService
}

func NewEventHandler(service ports.EventService) *EventHandler {
	return &EventHandler{service: service}
}

// List handles GET /api/events.
//
// @Summary      List visible events
// @Description  Events ordered by start date. Anonymous callers only receive public events.
// @Tags         events
// @Produce      json
// @Success      200  {object}  eventsResponse
// @Failure      500  {object}  errorResponse
// @Router       /api/events [get]
func (h *EventHandler) List(c echo.Context) error {
	events, err := h.service.ListEvents(c.Request().Context(), middleware.CallerFrom(c))
	if err != nil {
		return err
	}
	metrics.VisibleItemsTotal.WithLabelValues("events").Add(float64(len(events)))
	return c.JSON(http.StatusOK, eventsResponse{Events: toEventResponses(events)})
}

// Get handles GET /api/events/:id.
//
// @Summary      Get a visible event
// @Tags         events
// @Produce      json
// @Param        id   path      string  true  "Event ID"
// @Success      200  {object}  eventEnvelope
// @Failure      404  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /api/events/{id} [get]
func (h *EventHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Evento no encontrado")
	}

	event, err := h.service.GetEvent(c.Request().Context(), middleware.CallerFrom(c), id)
	if errors.Is(err, domain.ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "Evento no encontrado")
	}
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, eventEnvelope{Event: toEventResponse(*event)})
}
