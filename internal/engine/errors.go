// Package engine implements the availability and allocation logic for table
// reservations: resolving a venue's opening window, filtering tables by
// capacity, detecting booking conflicts, enumerating free slots and
// allocating a table for a new booking. These sentinel values let the
// handler layer translate engine failures into HTTP status codes with
// errors.Is without inspecting error text.
package engine

import "errors"

// ErrInvalidStartTime is returned when the wire starts_at value cannot be
// parsed as an RFC3339 timestamp. Handlers should translate this into an
// HTTP 400 response.
var ErrInvalidStartTime = errors.New("could not parse starting time")

// ErrVenueClosed is returned when the requested interval falls outside the
// venue's opening window for that date, or when the venue has no opening
// hours entry for that weekday at all.
var ErrVenueClosed = errors.New("venue is closed at that time")

// ErrNoTableCapacity is returned when the venue has no table large enough
// to seat the requested party.
var ErrNoTableCapacity = errors.New("venue does not have tables that large")

// ErrNoFreeSlot is returned by CreateBooking when every candidate table is
// occupied at the requested start. The request was well-formed; the slot is
// simply taken. Handlers should translate this into an HTTP 404 response.
var ErrNoFreeSlot = errors.New("could not find a free slot")

// ErrBookingNotFound is returned by CancelBooking when no booking exists
// with the given identifier.
var ErrBookingNotFound = errors.New("booking not found")

// ErrInvalidID is returned when a booking identifier is malformed.
var ErrInvalidID = errors.New("invalid booking identifier")

// ErrInvalidRequest is returned when a request fails basic field
// validation (non-positive party size or duration, missing venue).
var ErrInvalidRequest = errors.New("invalid request")
