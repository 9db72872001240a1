// Package queue defines message payloads exchanged over the message broker
// and the background consumer that records them.
package queue

import (
	"time"

	"github.com/tablebook/reservation-api/internal/model"
)

// BookingCreatedEvent is published when a booking is successfully created.
// It carries enough for downstream consumers to notify the venue or feed
// analytics without querying the primary store.
type BookingCreatedEvent struct {
	BookingID  string `json:"booking_id"`
	VenueID    string `json:"venue_id"`
	TableID    string `json:"table_id"`
	Email      string `json:"email"`
	FamilyName string `json:"family_name"`
	GivenName  string `json:"given_name"`
	People     int    `json:"people"`
	Date       string `json:"date"`
	StartsAt   string `json:"starts_at"`
	EndsAt     string `json:"ends_at"`
	Duration   int    `json:"duration"`
	CreatedAt  string `json:"created_at"`
}

// BookingCancelledEvent is published when a booking is cancelled. The
// interval travels along so consumers can release derived state (venue
// dashboards, notification fan-out) without a lookup.
type BookingCancelledEvent struct {
	BookingID   string `json:"booking_id"`
	VenueID     string `json:"venue_id"`
	TableID     string `json:"table_id"`
	Email       string `json:"email"`
	Date        string `json:"date"`
	StartsAt    string `json:"starts_at"`
	EndsAt      string `json:"ends_at"`
	CancelledAt string `json:"cancelled_at"`
}

// NewBookingCreatedEvent projects a confirmed booking into its event.
func NewBookingCreatedEvent(b model.Booking) BookingCreatedEvent {
	return BookingCreatedEvent{
		BookingID:  b.ID,
		VenueID:    b.VenueID,
		TableID:    b.TableID,
		Email:      b.Email,
		FamilyName: b.FamilyName,
		GivenName:  b.GivenName,
		People:     b.People,
		Date:       b.Date,
		StartsAt:   b.StartsAt.Format(time.RFC3339),
		EndsAt:     b.EndsAt.Format(time.RFC3339),
		Duration:   b.Duration,
		CreatedAt:  time.Now().UTC().Format(time.RFC3339),
	}
}

// NewBookingCancelledEvent projects a deleted booking into its event.
func NewBookingCancelledEvent(b model.Booking) BookingCancelledEvent {
	return BookingCancelledEvent{
		BookingID:   b.ID,
		VenueID:     b.VenueID,
		TableID:     b.TableID,
		Email:       b.Email,
		Date:        b.Date,
		StartsAt:    b.StartsAt.Format(time.RFC3339),
		EndsAt:      b.EndsAt.Format(time.RFC3339),
		CancelledAt: time.Now().UTC().Format(time.RFC3339),
	}
}
