package model

import "time"

// SlotRequest asks whether a venue can seat a party at a given time.
// StartsAt travels as a timezone-qualified RFC3339 string; the engine
// normalizes it to UTC before any computation.
type SlotRequest struct {
	VenueID  string `json:"venue_id"`
	Email    string `json:"email"`
	People   int    `json:"people"`
	StartsAt string `json:"starts_at"`
	Duration int    `json:"duration"` // minutes
}

// BookingRequest is a SlotRequest plus the customer name fields required to
// actually create a booking.
type BookingRequest struct {
	VenueID    string `json:"venue_id"`
	Email      string `json:"email"`
	People     int    `json:"people"`
	StartsAt   string `json:"starts_at"`
	Duration   int    `json:"duration"` // minutes
	FamilyName string `json:"family_name"`
	GivenName  string `json:"given_name"`
}

// Slot is a candidate time window for a party at a venue.  It is a
// presentation projection only: it carries no table identifier because
// availability is an existence claim over the candidate tables, not a
// commitment to one of them.
type Slot struct {
	VenueID  string    `json:"venue_id"`
	Email    string    `json:"email"`
	People   int       `json:"people"`
	StartsAt time.Time `json:"starts_at"`
	EndsAt   time.Time `json:"ends_at"`
	Duration int       `json:"duration"` // minutes
}

// Availability is the answer to a SlotRequest.  Match is non-nil when the
// exact requested start is free; OtherAvailableSlots lists every free
// 30-minute-aligned start for the same date, ascending.  The two views are
// computed independently over the same free set, so a free requested start
// appears in both.
type Availability struct {
	Match               *Slot  `json:"match,omitempty"`
	OtherAvailableSlots []Slot `json:"other_available_slots"`
}
