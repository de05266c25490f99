package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/agrovia/farm-management/internal/core/ports"
)

// CalendarHandler handles HTTP requests for the action calendar.
type CalendarHandler struct {
	calendarService ports.CalendarService
}

func NewCalendarHandler(calendarService ports.CalendarService) *CalendarHandler {
	return &CalendarHandler{calendarService: calendarService}
}

type eventRequest struct {
	Date        time.Time `json:"date"  validate:"required"`
	Title       string    `json:"title" validate:"required"`
	Description string    `json:"description"`
	Type        string    `json:"type" validate:"omitempty,oneof=irrigation fertilizer pesticide harvest custom"`
}

type updateEventRequest struct {
	Date        time.Time `json:"date"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Type        string    `json:"type" validate:"omitempty,oneof=irrigation fertilizer pesticide harvest custom"`
}

// List returns the session user's calendar events.
//
// @Summary      List calendar events
// @Tags         calendar
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.CalendarEvent
// @Router       /v1/events [get]
func (h *CalendarHandler) List(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	events, err := h.calendarService.ListEvents(c.Request().Context(), sess)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, events)
}

// Create adds a calendar event and triggers a fire-and-forget notification.
//
// @Summary      Create a calendar event
// @Tags         calendar
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      eventRequest  true  "Event details"
// @Success      201   {object}  domain.CalendarEvent
// @Failure      400   {object}  map[string]string
// @Router       /v1/events [post]
func (h *CalendarHandler) Create(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	var req eventRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	event, err := h.calendarService.CreateEvent(c.Request().Context(), sess, ports.CalendarEventInput{
		Date:        req.Date,
		Title:       req.Title,
		Description: req.Description,
		Type:        req.Type,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, event)
}

// Update modifies a calendar event.
//
// @Summary      Update a calendar event
// @Tags         calendar
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string              true  "Event ID"
// @Param        body  body      updateEventRequest  true  "Fields to update"
// @Success      200   {object}  domain.CalendarEvent
// @Failure      404   {object}  map[string]string
// @Router       /v1/events/{id} [put]
func (h *CalendarHandler) Update(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	var req updateEventRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	event, err := h.calendarService.UpdateEvent(c.Request().Context(), sess, c.Param("id"), ports.CalendarEventInput{
		Date:        req.Date,
		Title:       req.Title,
		Description: req.Description,
		Type:        req.Type,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, event)
}

// Delete removes a calendar event.
//
// @Summary      Delete a calendar event
// @Tags         calendar
// @Security     BearerAuth
// @Param        id  path  string  true  "Event ID"
// @Success      204  "event deleted"
// @Failure      404  {object}  map[string]string
// @Router       /v1/events/{id} [delete]
func (h *CalendarHandler) Delete(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	if err := h.calendarService.DeleteEvent(c.Request().Context(), sess, c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
