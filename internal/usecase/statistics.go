package usecase

import (
	"math"

	"aeron-recovery-service/internal/domain/entity"
	"aeron-recovery-service/pkg/utils"
)

// StatisticsAggregator summarises a record set. It holds no state.
type StatisticsAggregator struct{}

// NewStatisticsAggregator creates a statistics aggregator
func NewStatisticsAggregator() *StatisticsAggregator {
	return &StatisticsAggregator{}
}

// Compute returns the headline metrics for records.
// The average delay only counts records whose detail carries a "+<N>m" delay.
func (a *StatisticsAggregator) Compute(records []*entity.FlightRecord) entity.FlightStatistics {
	stats := entity.FlightStatistics{TotalFlights: len(records)}

	delaySum, delayed := 0, 0
	for _, r := range records {
		switch r.Priority {
		case entity.PriorityCritical:
			stats.CriticalCount++
			stats.HighPriorityCount++
		case entity.PriorityHigh:
			stats.HighPriorityCount++
		}
		stats.TotalPassengers += r.Passengers
		stats.TotalConnections += r.Connections

		if !r.HasDetail() {
			continue
		}
		if minutes, ok := utils.ParseDelayMinutes(*r.StatusDetail); ok {
			delaySum += minutes
			delayed++
		}
	}

	if delayed > 0 {
		stats.AverageDelayMinutes = int(math.Round(float64(delaySum) / float64(delayed)))
	}
	return stats
}

// Facets lists distinct statuses, priorities and origins in first-seen order
func (a *StatisticsAggregator) Facets(records []*entity.FlightRecord) entity.Facets {
	facets := entity.Facets{
		Statuses:   []entity.FlightStatus{},
		Priorities: []entity.Priority{},
		Origins:    []string{},
	}
	seenStatus := make(map[entity.FlightStatus]bool)
	seenPriority := make(map[entity.Priority]bool)
	seenOrigin := make(map[string]bool)

	for _, r := range records {
		if !seenStatus[r.Status] {
			seenStatus[r.Status] = true
			facets.Statuses = append(facets.Statuses, r.Status)
		}
		if !seenPriority[r.Priority] {
			seenPriority[r.Priority] = true
			facets.Priorities = append(facets.Priorities, r.Priority)
		}
		if !seenOrigin[r.Origin] {
			seenOrigin[r.Origin] = true
			facets.Origins = append(facets.Origins, r.Origin)
		}
	}
	return facets
}
