package engine

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/tablebook/reservation-api/internal/model"
)

// overlaps reports whether two half-open intervals [aStart, aEnd) and
// [bStart, bEnd) intersect. Touching endpoints do not conflict: a booking
// ending at 15:00 leaves the table free for one starting at 15:00.
func overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

// tableFreeAt reports whether a table has no stored booking overlapping the
// interval starting at start. Bookings for other tables are ignored.
func tableFreeAt(tableID string, bookings []model.Booking, start time.Time, duration int) bool {
	end := start.Add(time.Duration(duration) * time.Minute)
	for i := range bookings {
		if bookings[i].TableID != tableID {
			continue
		}
		if overlaps(start, end, bookings[i].StartsAt, bookings[i].EndsAt) {
			return false
		}
	}
	return true
}

// freeTableAt returns the first candidate table free at start, in candidate
// order, or "" when every candidate is occupied.
func freeTableAt(tableIDs []string, bookings []model.Booking, start time.Time, duration int) string {
	for _, id := range tableIDs {
		if tableFreeAt(id, bookings, start, duration) {
			return id
		}
	}
	return ""
}

// enumerateFreeSlots walks the opening window in fixed 30-minute steps and
// collects every start instant at which at least one candidate table is
// free for the full duration. The walk stops once a slot would run past
// closing. The result is keyed by instant; callers impose ordering.
func enumerateFreeSlots(opens, closes time.Time, duration int, tableIDs []string, bookings []model.Booking) map[time.Time]struct{} {
	free := make(map[time.Time]struct{})
	d := time.Duration(duration) * time.Minute
	for t := opens; !t.Add(d).After(closes); t = t.Add(slotStep) {
		if freeTableAt(tableIDs, bookings, t, duration) != "" {
			free[t] = struct{}{}
		}
	}
	return free
}

// CheckAvailability answers a SlotRequest with the exact-match slot, when
// the requested start itself is free, and every other free slot on the same
// date sorted ascending. The opening-window and capacity lookups run
// concurrently; stored bookings are read once afterwards.
func (e *Engine) CheckAvailability(ctx context.Context, req model.SlotRequest) (*model.Availability, error) {
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

	end := startsAt.Add(time.Duration(req.Duration) * time.Minute)
	if startsAt.Before(win.opens) || end.After(win.closes) {
		return nil, ErrVenueClosed
	}
	if len(tbl.tableIDs) == 0 {
		return nil, ErrNoTableCapacity
	}

	bookings, err := e.bookingsForDate(ctx, req.VenueID, startsAt.Format(model.DateFormat))
	if err != nil {
		return nil, fmt.Errorf("could not get bookings: %w", err)
	}

	free := enumerateFreeSlots(win.opens, win.closes, req.Duration, tbl.tableIDs, bookings)

	avail := &model.Availability{OtherAvailableSlots: make([]model.Slot, 0, len(free))}
	for t := range free {
		avail.OtherAvailableSlots = append(avail.OtherAvailableSlots, projectSlot(req, t))
	}
	sort.Slice(avail.OtherAvailableSlots, func(i, j int) bool {
		return avail.OtherAvailableSlots[i].StartsAt.Before(avail.OtherAvailableSlots[j].StartsAt)
	})

	if _, ok := free[startsAt]; ok {
		match := projectSlot(req, startsAt)
		avail.Match = &match
	}
	return avail, nil
}

// projectSlot shapes one free start instant into a presentation Slot for
// the requesting party.
func projectSlot(req model.SlotRequest, start time.Time) model.Slot {
	return model.Slot{
		VenueID:  req.VenueID,
		Email:    req.Email,
		People:   req.People,
		StartsAt: start,
		EndsAt:   start.Add(time.Duration(req.Duration) * time.Minute),
		Duration: req.Duration,
	}
}

// parseStartsAt normalizes the wire timestamp to UTC. All engine
// computation happens in the reference timezone.
func parseStartsAt(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s", ErrInvalidStartTime, s)
	}
	return t.UTC(), nil
}

func validateSlotFields(venueID string, people, duration int) error {
	if venueID == "" {
		return fmt.Errorf("%w: venue_id is required", ErrInvalidRequest)
	}
	if people < 1 {
		return fmt.Errorf("%w: people must be positive", ErrInvalidRequest)
	}
	if duration < 1 {
		return fmt.Errorf("%w: duration must be positive", ErrInvalidRequest)
	}
	return nil
}
