package testutil

import (
	"time"

	"aeron-recovery-service/internal/domain/entity"
)

// StrPtr returns a pointer to s.
func StrPtr(s string) *string { return &s }

// FlightFields returns a valid create payload that tests can tweak.
func FlightFields(flightNumber string, priority entity.Priority, impact time.Time) entity.FlightFields {
	return entity.FlightFields{
		FlightNumber:    flightNumber,
		Aircraft:        "A380-800",
		Origin:          "JFK",
		Destination:     "DXB",
		OriginName:      "New York",
		DestinationName: "Dubai",
		DepartureTime:   "15:30",
		DepartureDate:   "Jun 6",
		Status:          entity.StatusDelayed,
		StatusDetail:    StrPtr("+120m"),
		Priority:        priority,
		Passengers:      300,
		Connections:     5,
		ImpactSeverity:  "high severity",
		ImpactTimestamp: impact,
	}
}
