package impl_platform

import (
	"time"

	"github.com/google/uuid"
)

// SystemClock reads the wall clock in UTC.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}

// UUIDGenerator produces random v4 UUIDs.
type UUIDGenerator struct{}

func (UUIDGenerator) NewUUID() uuid.UUID {
	return uuid.New()
}
