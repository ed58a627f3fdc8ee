package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPriority_Rank(t *testing.T) {
	tests := []struct {
		priority Priority
		want     int
	}{
		{PriorityCritical, 3},
		{PriorityHigh, 2},
		{PriorityMedium, 1},
		{Priority("Low"), 0},
		{Priority(""), 0},
		{Priority("critical"), 0},
	}

	for _, tt := range tests {
		t.Run(string(tt.priority), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.priority.Rank())
		})
	}
}

func TestFlightStatus_IsKnown(t *testing.T) {
	assert.True(t, StatusCancelled.IsKnown())
	assert.True(t, StatusDelayed.IsKnown())
	assert.True(t, StatusDiverted.IsKnown())
	assert.False(t, FlightStatus("On Time").IsKnown())
}

func TestFlightRecord_CloneDoesNotAliasDetail(t *testing.T) {
	detail := "+45m"
	r := &FlightRecord{ID: 1, StatusDetail: &detail, ImpactTimestamp: time.Now()}

	c := r.Clone()
	*c.StatusDetail = "+90m"

	assert.Equal(t, "+45m", *r.StatusDetail)
	assert.Equal(t, r.ID, c.ID)
}

func TestFlightRecord_HasDetail(t *testing.T) {
	empty := ""
	set := "+10m"

	assert.False(t, (&FlightRecord{}).HasDetail())
	assert.False(t, (&FlightRecord{StatusDetail: &empty}).HasDetail())
	assert.True(t, (&FlightRecord{StatusDetail: &set}).HasDetail())
}
