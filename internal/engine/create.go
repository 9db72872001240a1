package engine

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/tablebook/reservation-api/internal/model"
)

// allocateTable picks one specific table for a booking at start. Candidates
// are ordered least-loaded first, counting each table's existing bookings
// on the date; ties keep directory order, so identical inputs always yield
// the same table. Returns "" when every candidate is occupied.
func allocateTable(tableIDs []string, bookings []model.Booking, start time.Time, duration int) string {
	load := make(map[string]int, len(tableIDs))
	for i := range bookings {
		load[bookings[i].TableID]++
	}

	ordered := make([]string, len(tableIDs))
	copy(ordered, tableIDs)
	sort.SliceStable(ordered, func(i, j int) bool {
		return load[ordered[i]] < load[ordered[j]]
	})

	return freeTableAt(ordered, bookings, start, duration)
}

// CreateBooking validates the request the same way CheckAvailability does,
// allocates a table for the single requested start and writes the booking
// through the store. The read of existing bookings and the insert are not
// serialized against concurrent requests; two simultaneous creations for
// the same table and interval can both succeed.
func (e *Engine) CreateBooking(ctx context.Context, req model.BookingRequest) (*model.Booking, error) {
	startsAt, err := parseStartsAt(req.StartsAt)
	if err != nil {
		return nil, err
	}
	if err := validateSlotFields(req.VenueID, req.People, req.Duration); err != nil {
		return nil, err
	}

	win, tbl := e.resolveConcurrently(ctx, req.VenueID, startsAt, req.People)
	if win.err != nil {
		return nil, win.err
	}
	if tbl.err != nil {
		return nil, tbl.err
	}

	endsAt := startsAt.Add(time.Duration(req.Duration) * time.Minute)
	if startsAt.Before(win.opens) || endsAt.After(win.closes) {
		return nil, ErrVenueClosed
	}
	if len(tbl.tableIDs) == 0 {
		return nil, ErrNoTableCapacity
	}

	date := startsAt.Format(model.DateFormat)
	bookings, err := e.bookingsForDate(ctx, req.VenueID, date)
	if err != nil {
		return nil, fmt.Errorf("could not get bookings: %w", err)
	}

	tableID := allocateTable(tbl.tableIDs, bookings, startsAt, req.Duration)
	if tableID == "" {
		return nil, ErrNoFreeSlot
	}

	booking := model.Booking{
		ID:         e.ids.NewID(),
		VenueID:    req.VenueID,
		TableID:    tableID,
		Email:      req.Email,
		FamilyName: req.FamilyName,
		GivenName:  req.GivenName,
		People:     req.People,
		Date:       date,
		StartsAt:   startsAt,
		EndsAt:     endsAt,
		Duration:   req.Duration,
	}
	if err := e.store.CreateBooking(ctx, booking); err != nil {
		return nil, fmt.Errorf("could not create booking: %w", err)
	}
	return &booking, nil
}
