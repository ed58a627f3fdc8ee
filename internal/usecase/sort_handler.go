package usecase

import (
	"aeron-recovery-service/internal/domain/entity"
)

// Sort keys accepted by the query engine. These are the labels the dashboard sends.
const (
	SortPriority      = "Priority"
	SortDepartureTime = "Departure Time"
	SortFlightNumber  = "Flight Number"
	SortStatus        = "Status"
	SortPassengers    = "Passengers"
)

// SortHandler defines the interface for a selectable flight ordering
type SortHandler interface {
	// CanHandle determines if this handler serves the given sort key
	CanHandle(sortKey string) bool

	// Less reports whether a sorts before b
	Less(a, b *entity.FlightRecord) bool
}

// SortRouter routes a sort key to the handler that implements it
type SortRouter interface {
	// Register registers a handler for its sort keys
	Register(handler SortHandler)

	// GetHandler returns the handler for a sort key, or nil when none matches
	GetHandler(sortKey string) SortHandler
}
