package engine

import (
	"context"
	"time"

	"github.com/tablebook/reservation-api/internal/model"
)

// slotStep is the spacing between candidate slot starts. It is a design
// constant of the engine, not venue configuration.
const slotStep = 30 * time.Minute

// VenueDirectory resolves venue documents, including weekly opening hours.
type VenueDirectory interface {
	GetVenue(ctx context.Context, venueID string) (*model.Venue, error)
}

// TableDirectory resolves the tables of a venue able to seat a party.
// Implementations return table identifiers in directory order; the engine
// relies on that order being stable between calls.
type TableDirectory interface {
	GetTablesWithCapacity(ctx context.Context, venueID string, capacity int) ([]string, error)
}

// BookingStore is durable storage for confirmed bookings. GetBookings
// returns rows ascending by start time; a limit <= 0 means no pagination.
type BookingStore interface {
	GetBookings(ctx context.Context, filter model.BookingsFilter, offset, limit int) ([]model.Booking, error)
	CountBookings(ctx context.Context, filter model.BookingsFilter) (int64, error)
	CreateBooking(ctx context.Context, booking model.Booking) error
	DeleteBooking(ctx context.Context, id string) (*model.Booking, error)
}

// IDGenerator mints opaque unique booking identifiers. It is injected so
// tests can substitute a deterministic source.
type IDGenerator interface {
	NewID() string
}

// Engine is the request-level orchestrator. It owns no state beyond its
// collaborators and is safe for concurrent use.
type Engine struct {
	venues VenueDirectory
	tables TableDirectory
	store  BookingStore
	ids    IDGenerator
}

// New constructs an Engine. All dependencies must be non-nil.
func New(venues VenueDirectory, tables TableDirectory, store BookingStore, ids IDGenerator) *Engine {
	if venues == nil || tables == nil || store == nil || ids == nil {
		panic("nil dependency passed to engine.New")
	}
	return &Engine{venues: venues, tables: tables, store: store, ids: ids}
}

// windowResult carries one leg of the concurrent directory resolution.
type windowResult struct {
	opens  time.Time
	closes time.Time
	err    error
}

type tablesResult struct {
	tableIDs []string
	err      error
}

// resolveConcurrently issues the opening-window and capacity lookups in
// parallel and joins both before returning. The two lookups are independent
// of each other and of stored bookings; a failure of either aborts the
// request with that error, window errors taking precedence when both fail.
func (e *Engine) resolveConcurrently(ctx context.Context, venueID string, date time.Time, people int) (windowResult, tablesResult) {
	winCh := make(chan windowResult, 1)
	tblCh := make(chan tablesResult, 1)

	go func() {
		venue, err := e.venues.GetVenue(ctx, venueID)
		if err != nil {
			winCh <- windowResult{err: err}
			return
		}
		opens, closes, err := openingWindow(venue.OpeningHours, date)
		winCh <- windowResult{opens: opens, closes: closes, err: err}
	}()

	go func() {
		ids, err := e.tables.GetTablesWithCapacity(ctx, venueID, people)
		tblCh <- tablesResult{tableIDs: ids, err: err}
	}()

	return <-winCh, <-tblCh
}

// bookingsForDate reads every stored booking for a venue on a calendar
// date. The read is unpaginated: conflict detection needs the full day.
func (e *Engine) bookingsForDate(ctx context.Context, venueID string, date string) ([]model.Booking, error) {
	filter := model.BookingsFilter{VenueID: &venueID, Date: &date}
	return e.store.GetBookings(ctx, filter, 0, 0)
}
