package engine

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/tablebook/reservation-api/internal/model"
	"github.com/tablebook/reservation-api/internal/repository"
)

// defaultPageLimit bounds a list page when the caller does not supply one.
const defaultPageLimit = 50

// ListBookings returns one page of stored bookings matching the filter,
// ascending by start time, together with page metadata. It fetches limit+1
// rows so has_next_page can be derived without a second count of the
// remainder; the probe row is trimmed from the response.
func (e *Engine) ListBookings(ctx context.Context, filter model.BookingsFilter, page, limit int) (*model.BookingsPage, error) {
	if page < 0 {
		return nil, fmt.Errorf("%w: page must not be negative", ErrInvalidRequest)
	}
	if limit <= 0 {
		limit = defaultPageLimit
	}

	count, err := e.store.CountBookings(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("could not count bookings: %w", err)
	}

	rows, err := e.store.GetBookings(ctx, filter, page*limit, limit+1)
	if err != nil {
		return nil, fmt.Errorf("could not get bookings: %w", err)
	}

	hasNext := len(rows) > limit
	if hasNext {
		rows = rows[:limit]
	}

	pages := int((count + int64(limit) - 1) / int64(limit))

	return &model.BookingsPage{
		Bookings:    rows,
		HasNextPage: hasNext,
		Pages:       pages,
	}, nil
}

// CancelBooking deletes a booking and returns the prior record. The
// identifier must be a well-formed token; an unknown identifier maps to
// ErrBookingNotFound. No partial state is possible: the store deletes and
// returns in one transaction.
func (e *Engine) CancelBooking(ctx context.Context, id string) (*model.Booking, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidID, id)
	}

	booking, err := e.store.DeleteBooking(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("could not cancel booking: %w", err)
	}
	return booking, nil
}
