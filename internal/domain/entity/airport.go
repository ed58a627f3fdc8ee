package entity

import (
	"time"

	"gorm.io/gorm"
)

// Airport is master data used to name flight origins and destinations
type Airport struct {
	ID          uint
	AirportCode string
	AirportName string
	CityCode    string
	CityName    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt
}

// DisplayName is the label used for originName/destinationName
func (a *Airport) DisplayName() string {
	if a.CityName != "" {
		return a.CityName
	}
	return a.AirportName
}
