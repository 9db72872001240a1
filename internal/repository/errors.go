// Package repository implements durable storage for bookings on MySQL.
// Sentinel values defined here let higher layers distinguish failure
// scenarios with errors.Is instead of matching on driver error strings.
package repository

import "errors"

// ErrBookingNotFound is returned when an operation targets a booking
// identifier that does not exist in the store.
var ErrBookingNotFound = errors.New("booking not found")
