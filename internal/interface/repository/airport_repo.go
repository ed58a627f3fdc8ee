package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"aeron-recovery-service/internal/domain/entity"
	"aeron-recovery-service/internal/domain/repository"

	"gorm.io/gorm"
)

// GormAirportRepository reads the airport master table used to name routes
type GormAirportRepository struct {
	db *gorm.DB
}

// NewGormAirportRepository creates a new GORM airport repository
func NewGormAirportRepository(db *gorm.DB) repository.AirportRepository {
	return &GormAirportRepository{
		db: db,
	}
}

// Airports GORM model for database mapping
type Airports struct {
	ID          uint           `gorm:"primaryKey"`
	AirportCode string         `gorm:"column:airportcode;unique"`
	AirportName string         `gorm:"column:airport_name"`
	CityCode    string         `gorm:"column:citycode"`
	CityName    string         `gorm:"column:cityname"`
	DeletedAt   gorm.DeletedAt `gorm:"index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName overrides the default table name
func (Airports) TableName() string {
	return "m_airports"
}

// GetByAirportCode finds an airport by its IATA code, ignoring case.
// Unknown codes yield entity.ErrNotFound.
func (r *GormAirportRepository) GetByAirportCode(ctx context.Context, code string) (*entity.Airport, error) {
	var airport Airports
	err := r.db.WithContext(ctx).
		Where("airportcode = ?", strings.ToUpper(strings.TrimSpace(code))).
		First(&airport).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, entity.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find airport %s: %w", code, err)
	}
	return airport.toEntity(), nil
}

func (a Airports) toEntity() *entity.Airport {
	return &entity.Airport{
		ID:          a.ID,
		AirportCode: a.AirportCode,
		AirportName: a.AirportName,
		CityCode:    a.CityCode,
		CityName:    a.CityName,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
		DeletedAt:   a.DeletedAt,
	}
}
