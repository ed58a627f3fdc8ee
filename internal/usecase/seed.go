package usecase

import (
	"time"

	"aeron-recovery-service/internal/domain/entity"
)

// SampleFlights returns the demo disruption set, with impacts relative to now
func SampleFlights(now time.Time) []entity.FlightFields {
	detail := func(s string) *string { return &s }
	ago := func(mins int) time.Time { return now.Add(-time.Duration(mins) * time.Minute) }

	return []entity.FlightFields{
		{
			FlightNumber: "EK203", Aircraft: "B777-300ER",
			Origin: "JFK", Destination: "LHR", OriginName: "New York", DestinationName: "London",
			DepartureTime: "16:45", DepartureDate: "Jun 6",
			Status: entity.StatusCancelled, Priority: entity.PriorityCritical,
			Passengers: 354, Connections: 8,
			ImpactSeverity: "high severity", ImpactTimestamp: ago(5),
		},
		{
			FlightNumber: "EK215", Aircraft: "A380-800",
			Origin: "JFK", Destination: "DXB", OriginName: "New York", DestinationName: "Dubai",
			DepartureTime: "15:30", DepartureDate: "Jun 6",
			Status: entity.StatusDelayed, StatusDetail: detail("+120m"), Priority: entity.PriorityHigh,
			Passengers: 487, Connections: 12,
			ImpactSeverity: "high severity", ImpactTimestamp: ago(2),
		},
		{
			FlightNumber: "EK235", Aircraft: "A380-800",
			Origin: "DXB", Destination: "JFK", OriginName: "Dubai", DestinationName: "New York",
			DepartureTime: "08:30", DepartureDate: "Jun 6",
			Status: entity.StatusDiverted, StatusDetail: detail("+180m"), Priority: entity.PriorityHigh,
			Passengers: 511, Connections: 15,
			ImpactSeverity: "medium severity", ImpactTimestamp: ago(8),
		},
		{
			FlightNumber: "EK147", Aircraft: "B777-300ER",
			Origin: "LHR", Destination: "DXB", OriginName: "London", DestinationName: "Dubai",
			DepartureTime: "21:15", DepartureDate: "Jun 6",
			Status: entity.StatusDelayed, StatusDetail: detail("+45m"), Priority: entity.PriorityMedium,
			Passengers: 342, Connections: 6,
			ImpactSeverity: "medium severity", ImpactTimestamp: ago(12),
		},
		{
			FlightNumber: "EK181", Aircraft: "A350-900",
			Origin: "DXB", Destination: "SIN", OriginName: "Dubai", DestinationName: "Singapore",
			DepartureTime: "14:20", DepartureDate: "Jun 6",
			Status: entity.StatusDelayed, StatusDetail: detail("+90m"), Priority: entity.PriorityMedium,
			Passengers: 298, Connections: 4,
			ImpactSeverity: "medium severity", ImpactTimestamp: ago(15),
		},
	}
}
