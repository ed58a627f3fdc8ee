package repository

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"aeron-recovery-service/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// newTestDB opens a file-backed sqlite database under t.TempDir with both models migrated
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "aeron.db")), &gorm.Config{
		Logger: gormlogger.Discard,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&Flights{}, &Airports{}))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func testFlight(id int, detail *string) *entity.FlightRecord {
	return &entity.FlightRecord{
		ID:              id,
		FlightNumber:    "EK215",
		Aircraft:        "A380-800",
		Origin:          "JFK",
		Destination:     "DXB",
		OriginName:      "New York",
		DestinationName: "Dubai",
		DepartureTime:   "15:30",
		DepartureDate:   "Jun 6",
		Status:          entity.StatusDelayed,
		StatusDetail:    detail,
		Priority:        entity.PriorityHigh,
		Passengers:      487,
		Connections:     12,
		ImpactSeverity:  "high severity",
		ImpactTimestamp: time.Date(2025, 6, 6, 11, 58, 0, 0, time.UTC),
		UpdatedAt:       time.Date(2025, 6, 6, 12, 0, 0, 0, time.UTC),
	}
}

// normalize drops the driver's time zone so records compare field by field
func normalize(records []*entity.FlightRecord) []*entity.FlightRecord {
	for _, r := range records {
		r.ImpactTimestamp = r.ImpactTimestamp.UTC()
		r.UpdatedAt = r.UpdatedAt.UTC()
	}
	return records
}

func TestGormFlightRecordRepository_RoundTrip(t *testing.T) {
	repo := NewGormFlightRecordRepository(newTestDB(t))
	ctx := context.Background()

	detail := "+120m"
	delayed := testFlight(1, &detail)
	cancelled := testFlight(2, nil)
	cancelled.Status = entity.StatusCancelled
	cancelled.Priority = entity.PriorityCritical

	require.NoError(t, repo.Save(ctx, cancelled))
	require.NoError(t, repo.Save(ctx, delayed))

	loaded, err := repo.LoadAll(ctx)
	require.NoError(t, err)

	assert.Equal(t, []*entity.FlightRecord{delayed, cancelled}, normalize(loaded))
	assert.Nil(t, loaded[1].StatusDetail)
}

func TestGormFlightRecordRepository_SaveOverwrites(t *testing.T) {
	repo := NewGormFlightRecordRepository(newTestDB(t))
	ctx := context.Background()

	detail := "+45m"
	record := testFlight(4, &detail)
	require.NoError(t, repo.Save(ctx, record))

	record.Passengers = 999
	record.StatusDetail = nil
	record.Status = entity.StatusCancelled
	require.NoError(t, repo.Save(ctx, record))

	loaded, err := repo.LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, 999, loaded[0].Passengers)
	assert.Equal(t, entity.StatusCancelled, loaded[0].Status)
	assert.Nil(t, loaded[0].StatusDetail)
}

func TestGormFlightRecordRepository_DeleteKeepsLastID(t *testing.T) {
	repo := NewGormFlightRecordRepository(newTestDB(t))
	ctx := context.Background()

	last, err := repo.LastID(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, last)

	require.NoError(t, repo.Save(ctx, testFlight(1, nil)))
	require.NoError(t, repo.Save(ctx, testFlight(2, nil)))
	require.NoError(t, repo.Delete(ctx, 2))

	loaded, err := repo.LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, 1, loaded[0].ID)

	last, err = repo.LastID(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, last)
}

func TestGormAirportRepository_GetByAirportCode(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, db.Create(&Airports{
		AirportCode: "DXB",
		AirportName: "Dubai International",
		CityCode:    "DXB",
		CityName:    "Dubai",
	}).Error)
	repo := NewGormAirportRepository(db)
	ctx := context.Background()

	airport, err := repo.GetByAirportCode(ctx, " dxb ")
	require.NoError(t, err)
	assert.Equal(t, "Dubai", airport.DisplayName())
	assert.Equal(t, "DXB", airport.AirportCode)

	_, err = repo.GetByAirportCode(ctx, "ZZZ")
	assert.ErrorIs(t, err, entity.ErrNotFound)
}
