// Package utils holds small helpers shared across the service.
package utils

import "github.com/google/uuid"

// UUIDGenerator mints random version-4 UUIDs as booking identifiers. It
// satisfies the engine's IDGenerator interface; tests substitute a fixed
// sequence instead.
type UUIDGenerator struct{}

// NewID returns a fresh UUID string.
func (UUIDGenerator) NewID() string { return uuid.NewString() }
