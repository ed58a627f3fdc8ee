package usecase_test

import (
	"testing"

	"aeron-recovery-service/internal/domain/entity"
	"aeron-recovery-service/internal/testutil"
	"aeron-recovery-service/internal/usecase"

	"github.com/stretchr/testify/assert"
)

func withDetail(r *entity.FlightRecord, detail string) *entity.FlightRecord {
	r.StatusDetail = testutil.StrPtr(detail)
	return r
}

func TestStatisticsAggregator_Compute(t *testing.T) {
	now := testutil.FixedClock().Now()
	records := []*entity.FlightRecord{
		withDetail(record(1, "A", entity.PriorityCritical, now), "+120m"),
		withDetail(record(2, "B", entity.PriorityHigh, now), "+180m"),
		withDetail(record(3, "C", entity.PriorityMedium, now), "+45m"),
		record(4, "D", entity.PriorityCritical, now),
		record(5, "E", entity.Priority("Low"), now),
	}
	for i, r := range records {
		r.Passengers = 100 * (i + 1)
		r.Connections = i
	}

	stats := usecase.NewStatisticsAggregator().Compute(records)

	assert.Equal(t, entity.FlightStatistics{
		TotalFlights:        5,
		CriticalCount:       2,
		HighPriorityCount:   3,
		TotalPassengers:     1500,
		TotalConnections:    10,
		AverageDelayMinutes: 115,
	}, stats)
}

func TestStatisticsAggregator_AverageDelay(t *testing.T) {
	now := testutil.FixedClock().Now()

	tests := []struct {
		name    string
		details []string
		want    int
	}{
		{"no delayed flights", nil, 0},
		{"malformed details are not counted", []string{"diverted", "120m", "+m"}, 0},
		{"malformed details do not skew the mean", []string{"+10m", "late", "+20m"}, 15},
		{"rounds half up", []string{"+1m", "+2m"}, 2},
		{"rounds down below half", []string{"+1m", "+1m", "+2m"}, 1},
		{"pattern inside longer text", []string{"Delayed +30m"}, 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records := []*entity.FlightRecord{record(100, "NONE", entity.PriorityHigh, now)}
			for i, d := range tt.details {
				records = append(records, withDetail(record(i+1, "X", entity.PriorityMedium, now), d))
			}
			assert.Equal(t, tt.want, usecase.NewStatisticsAggregator().Compute(records).AverageDelayMinutes)
		})
	}
}

func TestStatisticsAggregator_EmptySet(t *testing.T) {
	assert.Equal(t, entity.FlightStatistics{}, usecase.NewStatisticsAggregator().Compute(nil))
}

func TestStatisticsAggregator_SampleData(t *testing.T) {
	records := sampleStore(testutil.FixedClock()).List()

	stats := usecase.NewStatisticsAggregator().Compute(records)

	assert.Equal(t, 1, stats.CriticalCount)
	assert.Equal(t, 3, stats.HighPriorityCount)
	assert.Equal(t, 1992, stats.TotalPassengers)
	assert.Equal(t, 45, stats.TotalConnections)
	// (120 + 180 + 45 + 90) / 4
	assert.Equal(t, 109, stats.AverageDelayMinutes)
}

func TestStatisticsAggregator_Facets(t *testing.T) {
	records := sampleStore(testutil.FixedClock()).List()

	facets := usecase.NewStatisticsAggregator().Facets(records)

	assert.Equal(t, []entity.FlightStatus{entity.StatusCancelled, entity.StatusDelayed, entity.StatusDiverted}, facets.Statuses)
	assert.Equal(t, []entity.Priority{entity.PriorityCritical, entity.PriorityHigh, entity.PriorityMedium}, facets.Priorities)
	assert.Equal(t, []string{"JFK", "DXB", "LHR"}, facets.Origins)
}
