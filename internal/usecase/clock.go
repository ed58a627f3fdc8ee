package usecase

import (
	"time"

	"github.com/google/uuid"
)

// Clock abstracts time retrieval so store timestamps are deterministic in tests
type Clock interface {
	Now() time.Time
}

// RealClock returns the actual current time
type RealClock struct{}

func (RealClock) Now() time.Time { return time.Now() }

// IDGenerator produces recovery plan identifiers
type IDGenerator interface {
	New() string
}

// UUIDGenerator produces random UUIDs
type UUIDGenerator struct{}

func (UUIDGenerator) New() string { return uuid.New().String() }
