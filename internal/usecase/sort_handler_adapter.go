package usecase

import (
	"strings"

	"aeron-recovery-service/internal/domain/entity"
)

// SortHandlerAdapter adapts a comparison function to the SortHandler interface
type SortHandlerAdapter struct {
	less func(a, b *entity.FlightRecord) bool
	name string
	keys []string
}

// NewSortHandlerAdapter creates a handler answering to the given keys
func NewSortHandlerAdapter(name string, keys []string, less func(a, b *entity.FlightRecord) bool) *SortHandlerAdapter {
	return &SortHandlerAdapter{
		less: less,
		name: name,
		keys: keys,
	}
}

// CanHandle matches the sort key case-insensitively
func (a *SortHandlerAdapter) CanHandle(sortKey string) bool {
	for _, key := range a.keys {
		if strings.EqualFold(strings.TrimSpace(sortKey), key) {
			return true
		}
	}
	return false
}

// Less delegates to the wrapped comparison
func (a *SortHandlerAdapter) Less(x, y *entity.FlightRecord) bool {
	return a.less(x, y)
}

func (a *SortHandlerAdapter) String() string {
	return a.name
}

// DefaultSortHandlers returns the orderings offered by the dashboard
func DefaultSortHandlers() []SortHandler {
	return []SortHandler{
		NewSortHandlerAdapter("priority", []string{SortPriority}, func(a, b *entity.FlightRecord) bool {
			return a.Priority.Rank() > b.Priority.Rank()
		}),
		NewSortHandlerAdapter("departure-time", []string{SortDepartureTime}, func(a, b *entity.FlightRecord) bool {
			return strings.Compare(a.DepartureTime, b.DepartureTime) < 0
		}),
		NewSortHandlerAdapter("flight-number", []string{SortFlightNumber}, func(a, b *entity.FlightRecord) bool {
			return strings.Compare(a.FlightNumber, b.FlightNumber) < 0
		}),
		NewSortHandlerAdapter("status", []string{SortStatus}, func(a, b *entity.FlightRecord) bool {
			return strings.Compare(string(a.Status), string(b.Status)) < 0
		}),
		NewSortHandlerAdapter("passengers", []string{SortPassengers}, func(a, b *entity.FlightRecord) bool {
			return a.Passengers > b.Passengers
		}),
	}
}
