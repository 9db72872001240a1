// Package handler contains the HTTP handlers for the reservation API. All
// business decisions live in the engine; handlers bind requests, translate
// engine sentinel errors into HTTP status codes and shape responses.
package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/tablebook/reservation-api/internal/engine"
	"github.com/tablebook/reservation-api/internal/model"
	"github.com/tablebook/reservation-api/internal/queue"
	queuepub "github.com/tablebook/reservation-api/internal/service"
)

// publishTimeout bounds the fire-and-forget event publish that follows a
// successful create or cancel. Publishing outlives the request context on
// purpose: the booking is already durable when the event goes out.
const publishTimeout = 5 * time.Second

// BookingHandler exposes the availability and booking operations over HTTP.
// Events is optional; when false the handler skips broker publishes, which
// keeps tests and broker-less deployments quiet.
type BookingHandler struct {
	Engine *engine.Engine
	Events bool
}

// NewBookingHandler constructs a BookingHandler around the engine.
func NewBookingHandler(eng *engine.Engine, events bool) *BookingHandler {
	if eng == nil {
		panic("nil engine passed to NewBookingHandler")
	}
	return &BookingHandler{Engine: eng, Events: events}
}

// CheckAvailability handles POST /v1/availability. It answers with the
// exact-match slot (when the requested start is free) and every other free
// slot on the same date, ascending.
func (h *BookingHandler) CheckAvailability(c echo.Context) error {
	var req model.SlotRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}

	avail, err := h.Engine.CheckAvailability(c.Request().Context(), req)
	if err != nil {
		return writeEngineError(c, "check availability", err)
	}
	return c.JSON(http.StatusOK, avail)
}

// CreateBooking handles POST /v1/bookings. On success it returns the
// confirmed booking with the assigned table and publishes a
// booking.created event.
func (h *BookingHandler) CreateBooking(c echo.Context) error {
	var req model.BookingRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}

	booking, err := h.Engine.CreateBooking(c.Request().Context(), req)
	if err != nil {
		return writeEngineError(c, "create booking", err)
	}

	if h.Events {
		go func(b model.Booking) {
			ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
			defer cancel()
			if err := queuepub.PublishBookingCreated(ctx, queue.NewBookingCreatedEvent(b)); err != nil {
				logrus.Error(fmt.Errorf("%s : %w", "could not publish booking.created", err))
			}
		}(*booking)
	}

	return c.JSON(http.StatusCreated, booking)
}

// ListBookings handles GET /v1/bookings. Optional venue_id and date query
// parameters narrow the result; page and limit control pagination.
func (h *BookingHandler) ListBookings(c echo.Context) error {
	var filter model.BookingsFilter
	if v := c.QueryParam("venue_id"); v != "" {
		filter.VenueID = &v
	}
	if d := c.QueryParam("date"); d != "" {
		if _, err := time.Parse(model.DateFormat, d); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid date; expected YYYY-MM-DD"})
		}
		filter.Date = &d
	}

	page, err := queryInt(c, "page", 0)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid page"})
	}
	limit, err := queryInt(c, "limit", 0)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid limit"})
	}

	result, err := h.Engine.ListBookings(c.Request().Context(), filter, page, limit)
	if err != nil {
		return writeEngineError(c, "list bookings", err)
	}
	return c.JSON(http.StatusOK, result)
}

// CancelBooking handles DELETE /v1/bookings/:id. The deleted record is
// returned so callers can confirm what was removed.
func (h *BookingHandler) CancelBooking(c echo.Context) error {
	booking, err := h.Engine.CancelBooking(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeEngineError(c, "cancel booking", err)
	}

	if h.Events {
		go func(b model.Booking) {
			ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
			defer cancel()
			if err := queuepub.PublishBookingCancelled(ctx, queue.NewBookingCancelledEvent(b)); err != nil {
				logrus.Error(fmt.Errorf("%s : %w", "could not publish booking.cancelled", err))
			}
		}(*booking)
	}

	return c.JSON(http.StatusOK, booking)
}

// writeEngineError maps engine sentinels onto HTTP responses. Invalid input
// is rejected with 400, unsatisfiable-but-well-formed requests with 404 and
// everything else is logged server-side and reported as an opaque 500 so
// store or directory detail never leaks to callers.
func writeEngineError(c echo.Context, op string, err error) error {
	switch {
	case errors.Is(err, engine.ErrInvalidStartTime),
		errors.Is(err, engine.ErrInvalidRequest),
		errors.Is(err, engine.ErrInvalidID),
		errors.Is(err, engine.ErrVenueClosed),
		errors.Is(err, engine.ErrNoTableCapacity):
		logrus.Info(fmt.Errorf("%s : %w", op, err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	case errors.Is(err, engine.ErrNoFreeSlot),
		errors.Is(err, engine.ErrBookingNotFound):
		logrus.Info(fmt.Errorf("%s : %w", op, err))
		return c.JSON(http.StatusNotFound, echo.Map{"error": err.Error()})
	default:
		logrus.Error(fmt.Errorf("%s : %w", op, err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal error"})
	}
}

// queryInt parses an optional non-negative integer query parameter.
func queryInt(c echo.Context, name string, def int) (int, error) {
	s := c.QueryParam(name)
	if s == "" {
		return def, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("invalid %s: %q", name, s)
	}
	return n, nil
}
