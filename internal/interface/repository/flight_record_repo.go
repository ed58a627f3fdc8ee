package repository

import (
	"context"
	"fmt"
	"time"

	"aeron-recovery-service/internal/domain/entity"
	"aeron-recovery-service/internal/domain/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormFlightRecordRepository implements FlightRecordRepository on PostgreSQL
type GormFlightRecordRepository struct {
	db *gorm.DB
}

// NewGormFlightRecordRepository creates a new GORM flight record repository
func NewGormFlightRecordRepository(db *gorm.DB) repository.FlightRecordRepository {
	return &GormFlightRecordRepository{
		db: db,
	}
}

// Flights GORM model for database mapping. Ids are assigned by the record store.
// Deletes are soft so the highest issued id survives a restart.
type Flights struct {
	ID              int            `gorm:"column:id;primaryKey;autoIncrement:false"`
	FlightNumber    string         `gorm:"column:flight_number;size:10;not null"`
	Aircraft        string         `gorm:"column:aircraft;size:20;not null"`
	Origin          string         `gorm:"column:origin;size:3;not null;index"`
	Destination     string         `gorm:"column:destination;size:3;not null"`
	OriginName      string         `gorm:"column:origin_name;size:50;not null"`
	DestinationName string         `gorm:"column:destination_name;size:50;not null"`
	DepartureTime   string         `gorm:"column:departure_time;size:5;not null"`
	DepartureDate   string         `gorm:"column:departure_date;size:10;not null"`
	Status          string         `gorm:"column:status;size:20;not null"`
	StatusDetail    *string        `gorm:"column:status_detail;size:20"`
	Priority        string         `gorm:"column:priority;size:10;not null"`
	Passengers      int            `gorm:"column:passengers;not null"`
	Connections     int            `gorm:"column:connections;not null"`
	ImpactSeverity  string         `gorm:"column:impact_severity;size:20;not null"`
	ImpactTimestamp time.Time      `gorm:"column:impact_timestamp;not null"`
	UpdatedAt       time.Time      `gorm:"column:updated_at;autoUpdateTime:false;not null"`
	DeletedAt       gorm.DeletedAt `gorm:"column:deleted_at;index"`
}

// TableName overrides the default table name
func (Flights) TableName() string {
	return "flights"
}

// LoadAll returns every live persisted flight
func (r *GormFlightRecordRepository) LoadAll(ctx context.Context) ([]*entity.FlightRecord, error) {
	var rows []Flights
	if err := r.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("load flights: %w", err)
	}

	// Convert to domain entities
	records := make([]*entity.FlightRecord, 0, len(rows))
	for i := range rows {
		records = append(records, toFlightEntity(&rows[i]))
	}
	return records, nil
}

// Save inserts or fully overwrites the row for record.ID
func (r *GormFlightRecordRepository) Save(ctx context.Context, record *entity.FlightRecord) error {
	model := toFlightModel(record)
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&model).Error
}

// Delete soft-deletes the row for id
func (r *GormFlightRecordRepository) Delete(ctx context.Context, id int) error {
	return r.db.WithContext(ctx).Delete(&Flights{}, id).Error
}

// LastID returns the highest id ever saved, including soft-deleted rows
func (r *GormFlightRecordRepository) LastID(ctx context.Context) (int, error) {
	var last int
	err := r.db.WithContext(ctx).
		Unscoped().
		Model(&Flights{}).
		Select("COALESCE(MAX(id), 0)").
		Scan(&last).Error
	if err != nil {
		return 0, fmt.Errorf("read last flight id: %w", err)
	}
	return last, nil
}

func toFlightModel(record *entity.FlightRecord) Flights {
	return Flights{
		ID:              record.ID,
		FlightNumber:    record.FlightNumber,
		Aircraft:        record.Aircraft,
		Origin:          record.Origin,
		Destination:     record.Destination,
		OriginName:      record.OriginName,
		DestinationName: record.DestinationName,
		DepartureTime:   record.DepartureTime,
		DepartureDate:   record.DepartureDate,
		Status:          string(record.Status),
		StatusDetail:    record.StatusDetail,
		Priority:        string(record.Priority),
		Passengers:      record.Passengers,
		Connections:     record.Connections,
		ImpactSeverity:  record.ImpactSeverity,
		ImpactTimestamp: record.ImpactTimestamp,
		UpdatedAt:       record.UpdatedAt,
	}
}

func toFlightEntity(row *Flights) *entity.FlightRecord {
	return &entity.FlightRecord{
		ID:              row.ID,
		FlightNumber:    row.FlightNumber,
		Aircraft:        row.Aircraft,
		Origin:          row.Origin,
		Destination:     row.Destination,
		OriginName:      row.OriginName,
		DestinationName: row.DestinationName,
		DepartureTime:   row.DepartureTime,
		DepartureDate:   row.DepartureDate,
		Status:          entity.FlightStatus(row.Status),
		StatusDetail:    row.StatusDetail,
		Priority:        entity.Priority(row.Priority),
		Passengers:      row.Passengers,
		Connections:     row.Connections,
		ImpactSeverity:  row.ImpactSeverity,
		ImpactTimestamp: row.ImpactTimestamp,
		UpdatedAt:       row.UpdatedAt,
	}
}
