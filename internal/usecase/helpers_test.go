package usecase_test

import (
	"time"

	"aeron-recovery-service/internal/domain/entity"
	"aeron-recovery-service/internal/infrastructure/router"
	"aeron-recovery-service/internal/testutil"
	"aeron-recovery-service/internal/usecase"
	"aeron-recovery-service/pkg/logger"
)

// sampleStore returns a store holding the demo flights
func sampleStore(clock *testutil.StubClock) *usecase.RecordStore {
	store := usecase.NewRecordStore(clock)
	for _, f := range usecase.SampleFlights(clock.Now()) {
		store.Create(f)
	}
	return store
}

func newEngine() *usecase.QueryEngine {
	return usecase.NewQueryEngine(router.NewDefaultSortRouter(logger.NewNopLogger()))
}

func flightNumbers(records []*entity.FlightRecord) []string {
	out := make([]string, 0, len(records))
	for _, r := range records {
		out = append(out, r.FlightNumber)
	}
	return out
}

func record(id int, number string, priority entity.Priority, impact time.Time) *entity.FlightRecord {
	return &entity.FlightRecord{ID: id, FlightNumber: number, Priority: priority, ImpactTimestamp: impact}
}
