// internal/domain/entity/flight_record.go
package entity

import (
	"time"
)

// FlightStatus is the disruption state of a flight
type FlightStatus string

const (
	StatusCancelled FlightStatus = "Cancelled"
	StatusDelayed   FlightStatus = "Delayed"
	StatusDiverted  FlightStatus = "Diverted"
)

// IsKnown reports whether the status is one of the enumerated values
func (s FlightStatus) IsKnown() bool {
	switch s {
	case StatusCancelled, StatusDelayed, StatusDiverted:
		return true
	}
	return false
}

// Priority is the operational priority of a disrupted flight
type Priority string

const (
	PriorityCritical Priority = "Critical"
	PriorityHigh     Priority = "High"
	PriorityMedium   Priority = "Medium"
)

// Rank returns the ordinal used for priority ordering. Unrecognized values rank 0.
func (p Priority) Rank() int {
	switch p {
	case PriorityCritical:
		return 3
	case PriorityHigh:
		return 2
	case PriorityMedium:
		return 1
	}
	return 0
}

// FlightRecord is a disrupted flight tracked by the record store
type FlightRecord struct {
	ID              int          `json:"id"`
	FlightNumber    string       `json:"flightNumber"`
	Aircraft        string       `json:"aircraft"`
	Origin          string       `json:"origin"`
	Destination     string       `json:"destination"`
	OriginName      string       `json:"originName"`
	DestinationName string       `json:"destinationName"`
	DepartureTime   string       `json:"departureTime"`
	DepartureDate   string       `json:"departureDate"`
	Status          FlightStatus `json:"status"`
	StatusDetail    *string      `json:"statusDetail"` // "+120m" for delays, nil otherwise
	Priority        Priority     `json:"priority"`
	Passengers      int          `json:"passengers"`
	Connections     int          `json:"connections"`
	ImpactSeverity  string       `json:"impactSeverity"` // "high severity", "medium severity"
	ImpactTimestamp time.Time    `json:"impactTimestamp"`
	UpdatedAt       time.Time    `json:"updatedAt"`
}

// Clone returns a deep copy so callers never alias stored records
func (r *FlightRecord) Clone() *FlightRecord {
	c := *r
	if r.StatusDetail != nil {
		detail := *r.StatusDetail
		c.StatusDetail = &detail
	}
	return &c
}

// Fields returns the creatable portion of the record
func (r *FlightRecord) Fields() FlightFields {
	f := FlightFields{
		FlightNumber:    r.FlightNumber,
		Aircraft:        r.Aircraft,
		Origin:          r.Origin,
		Destination:     r.Destination,
		OriginName:      r.OriginName,
		DestinationName: r.DestinationName,
		DepartureTime:   r.DepartureTime,
		DepartureDate:   r.DepartureDate,
		Status:          r.Status,
		Priority:        r.Priority,
		Passengers:      r.Passengers,
		Connections:     r.Connections,
		ImpactSeverity:  r.ImpactSeverity,
		ImpactTimestamp: r.ImpactTimestamp,
	}
	if r.StatusDetail != nil {
		detail := *r.StatusDetail
		f.StatusDetail = &detail
	}
	return f
}

// HasDetail reports whether a non-empty status detail is present
func (r *FlightRecord) HasDetail() bool {
	return r.StatusDetail != nil && *r.StatusDetail != ""
}
