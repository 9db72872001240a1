package model

import "time"

// DateFormat is the wire and storage representation of a calendar date.
const DateFormat = "2006-01-02"

// Booking is a confirmed reservation of one table for one contiguous
// interval.  Records are created by the engine on successful allocation and
// deleted wholesale on cancellation; they are never mutated in place.
//
// Invariants:
//  EndsAt   – always StartsAt plus Duration minutes.
//  Date     – the calendar date of StartsAt in UTC, the service's
//             reference timezone.
type Booking struct {
	ID         string    `json:"id"`          // bookings.id (opaque token)
	VenueID    string    `json:"venue_id"`    // bookings.venue_id
	TableID    string    `json:"table_id"`    // bookings.table_id
	Email      string    `json:"email"`       // bookings.customer_email
	FamilyName string    `json:"family_name"` // bookings.family_name
	GivenName  string    `json:"given_name"`  // bookings.given_name
	People     int       `json:"people"`      // bookings.people (party size, > 0)
	Date       string    `json:"date"`        // bookings.date (YYYY-MM-DD, UTC)
	StartsAt   time.Time `json:"starts_at"`   // bookings.starts_at
	EndsAt     time.Time `json:"ends_at"`     // bookings.ends_at
	Duration   int       `json:"duration"`    // bookings.duration (minutes)
}

// BookingsFilter is a conjunctive predicate over stored bookings.  A nil
// field means no constraint on that field.
type BookingsFilter struct {
	VenueID *string
	Date    *string // YYYY-MM-DD
}

// BookingsPage is one page of stored bookings together with the pagination
// metadata derived from the full match count.
type BookingsPage struct {
	Bookings    []Booking `json:"bookings"`
	HasNextPage bool      `json:"has_next_page"`
	Pages       int       `json:"pages"`
}
