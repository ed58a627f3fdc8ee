package usecase_test

import (
	"testing"

	"aeron-recovery-service/internal/domain/entity"
	"aeron-recovery-service/internal/testutil"
	"aeron-recovery-service/internal/usecase"

	"github.com/stretchr/testify/assert"
)

func TestQueryEngine_Search(t *testing.T) {
	records := sampleStore(testutil.FixedClock()).List()
	engine := newEngine()

	tests := []struct {
		name string
		term string
		want []string
	}{
		{"empty term matches everything", "", []string{"EK203", "EK215", "EK235", "EK147", "EK181"}},
		{"airport code ignores case", "dxb", []string{"EK215", "EK235", "EK147", "EK181"}},
		{"flight number substring", "ek2", []string{"EK203", "EK215", "EK235"}},
		{"city name", "singa", []string{"EK181"}},
		{"destination name", "LONDON", []string{"EK203", "EK147"}},
		{"no match", "zzz", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, flightNumbers(engine.Search(records, tt.term)))
		})
	}
}

func TestQueryEngine_Filter(t *testing.T) {
	records := sampleStore(testutil.FixedClock()).List()
	engine := newEngine()

	tests := []struct {
		name string
		spec usecase.FilterSpec
		want []string
	}{
		{
			name: "sentinels return the unfiltered set",
			spec: usecase.FilterSpec{Status: usecase.AllStatuses, Priority: usecase.AllPriorities, Origin: usecase.AllOrigins},
			want: []string{"EK203", "EK215", "EK235", "EK147", "EK181"},
		},
		{
			name: "absent values return the unfiltered set",
			spec: usecase.FilterSpec{},
			want: []string{"EK203", "EK215", "EK235", "EK147", "EK181"},
		},
		{
			name: "status",
			spec: usecase.FilterSpec{Status: "Delayed"},
			want: []string{"EK215", "EK147", "EK181"},
		},
		{
			name: "priority and origin are conjunctive",
			spec: usecase.FilterSpec{Priority: "High", Origin: "DXB"},
			want: []string{"EK235"},
		},
		{
			name: "exact match only",
			spec: usecase.FilterSpec{Origin: "dxb"},
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, flightNumbers(engine.Filter(records, tt.spec)))
		})
	}
}

func TestQueryEngine_Sort(t *testing.T) {
	records := sampleStore(testutil.FixedClock()).List()

	tests := []struct {
		sortBy string
		want   []string
	}{
		{usecase.SortPriority, []string{"EK203", "EK215", "EK235", "EK147", "EK181"}},
		{usecase.SortDepartureTime, []string{"EK235", "EK181", "EK215", "EK203", "EK147"}},
		{usecase.SortFlightNumber, []string{"EK147", "EK181", "EK203", "EK215", "EK235"}},
		{usecase.SortStatus, []string{"EK203", "EK215", "EK147", "EK181", "EK235"}},
		{usecase.SortPassengers, []string{"EK235", "EK215", "EK203", "EK147", "EK181"}},
		{"Aircraft", []string{"EK203", "EK215", "EK235", "EK147", "EK181"}},
	}

	for _, tt := range tests {
		t.Run(tt.sortBy, func(t *testing.T) {
			out := append([]*entity.FlightRecord(nil), records...)
			newEngine().Sort(out, tt.sortBy)
			assert.Equal(t, tt.want, flightNumbers(out))
		})
	}
}

func TestQueryEngine_ApplyComposes(t *testing.T) {
	records := sampleStore(testutil.FixedClock()).List()
	engine := newEngine()

	out := engine.Apply(records, usecase.Query{
		Search:     "dxb",
		FilterSpec: usecase.FilterSpec{Status: "Delayed", Priority: usecase.AllPriorities, Origin: usecase.AllOrigins},
		SortBy:     usecase.SortPassengers,
	})

	assert.Equal(t, []string{"EK215", "EK147", "EK181"}, flightNumbers(out))
}

func TestQueryEngine_ApplyDefaultsToPriority(t *testing.T) {
	now := testutil.FixedClock().Now()
	records := []*entity.FlightRecord{
		record(1, "M", entity.PriorityMedium, now),
		record(2, "C", entity.PriorityCritical, now),
		record(3, "H", entity.PriorityHigh, now),
	}

	out := newEngine().Apply(records, usecase.Query{})

	assert.Equal(t, []string{"C", "H", "M"}, flightNumbers(out))
	assert.Equal(t, []string{"M", "C", "H"}, flightNumbers(records), "input must not be reordered")
}

func TestQueryEngine_NilRouterLeavesOrder(t *testing.T) {
	now := testutil.FixedClock().Now()
	records := []*entity.FlightRecord{
		record(1, "M", entity.PriorityMedium, now),
		record(2, "C", entity.PriorityCritical, now),
	}

	usecase.NewQueryEngine(nil).Sort(records, usecase.SortPriority)

	assert.Equal(t, []string{"M", "C"}, flightNumbers(records))
}
